package clock

import "time"

// Clock supplies the current instant. Handlers take one so tests can pin time.
type Clock interface {
	Now() time.Time
}

// System reads the wall clock.
type System struct{}

func (System) Now() time.Time {
	return time.Now()
}

// Fixed always returns the same instant.
type Fixed struct {
	At time.Time
}

func (f Fixed) Now() time.Time {
	return f.At
}

// Func adapts a plain function to Clock.
type Func func() time.Time

func (fn Func) Now() time.Time {
	return fn()
}
