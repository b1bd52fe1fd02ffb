package pool

// Resettable is a constraint for types that have a Reset() method.
type Resettable interface {
	Reset()
}

// Poolable is a constraint for types that can be pooled (must be resettable and comparable).
type Poolable interface {
	Resettable
	comparable
}

// Pool is a bounded free list of reusable objects of type T.
type Pool[T Poolable] struct {
	items chan T
	newFn func() T
}

// New creates a Pool holding at most capacity idle objects. newFn builds
// an object when the pool is empty; if nil, Get returns the zero value.
func New[T Poolable](capacity int, newFn func() T) *Pool[T] {
	return &Pool[T]{
		items: make(chan T, capacity),
		newFn: newFn,
	}
}

// Get takes an idle object from the pool or builds a new one.
func (p *Pool[T]) Get() T {
	select {
	case item := <-p.items:
		return item
	default:
		if p.newFn != nil {
			return p.newFn()
		}
		var zero T
		return zero
	}
}

// Put resets item and keeps it for reuse. Zero values are ignored and
// items beyond capacity are dropped.
func (p *Pool[T]) Put(item T) {
	var zero T
	if item == zero {
		return
	}

	item.Reset()

	select {
	case p.items <- item:
	default:
	}
}

// Len returns the number of idle objects.
func (p *Pool[T]) Len() int {
	return len(p.items)
}
