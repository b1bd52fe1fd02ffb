package log

type Event struct{}

func (e *Event) Msg(string) {}

func (e *Event) Err(error) *Event { return e }

func Fatal() *Event { return &Event{} }

func Panic() *Event { return &Event{} }

func Error() *Event { return &Event{} }
