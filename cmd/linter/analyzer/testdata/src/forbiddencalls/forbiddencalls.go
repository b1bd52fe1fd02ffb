package forbiddencalls

import (
	"log"
	"os"

	zlog "github.com/rs/zerolog/log"
)

func SomePanicFunction() {
	panic("this is forbidden") // want "panic is forbidden outside main function"
}

func SomeLogFatalFunction() {
	log.Fatal("this is forbidden") // want `log.Fatal is forbidden outside main function`
}

func SomeLogFatalfFunction() {
	log.Fatalf("this is %s", "forbidden") // want `log.Fatalf is forbidden outside main function`
}

func SomeOsExitFunction() {
	os.Exit(1) // want `os.Exit is forbidden outside main function`
}

func SomeZerologFunction() {
	zlog.Fatal().Msg("this is forbidden") // want `zlog.Fatal is forbidden outside main function`
	zlog.Panic().Msg("this is forbidden") // want `zlog.Panic is forbidden outside main function`
	zlog.Error().Msg("this is allowed")
}

// main outside package main is an ordinary function.
func main() {
	os.Exit(0) // want `os.Exit is forbidden outside main function`
}

func ShadowedPanic() {
	panic := func(string) {}
	panic("not the builtin")
}

func AllowedCalls() {
	log.Println("allowed")
	_ = os.Getenv("HOME")
}
