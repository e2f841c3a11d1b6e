package rop

import "fmt"

// Result holds either a success value of type T or a failure E, never both.
//
// Result is a plain value: copies are independent and every read copies out,
// so a Result can be inspected and unwrapped any number of times. Result is
// comparable with == whenever T and E are.
//
// The zero value is an empty placeholder. It reports Failed and IsEmpty, and
// handing its error to a handler panics with ErrEmpty. Success and Fail never
// produce it.
type Result[T any, E Failure] struct {
	value T
	err   E
	ok    bool
}

func Success[T any, E Failure](r T) Result[T, E] {
	return Result[T, E]{
		value: r,
		ok:    true,
	}
}

func Fail[T any, E Failure](err E) Result[T, E] {
	return Result[T, E]{
		err: err,
		ok:  false,
	}
}

// FailFrom carries the failure of from over to a Result of another value type.
// It is meant for failed inputs: a successful from yields an empty Result.
func FailFrom[Out, In any, E Failure](from Result[In, E]) Result[Out, E] {
	return Result[Out, E]{
		err: from.err,
	}
}

func (r Result[T, E]) Successful() bool {
	return r.ok
}

func (r Result[T, E]) Failed() bool {
	return !r.ok
}

func (r Result[T, E]) IsEmpty() bool {
	return !r.ok && r.err.IsEmpty()
}

// Value returns the success value, or the zero value and false on failure.
func (r Result[T, E]) Value() (T, bool) {
	if !r.ok {
		var zero T
		return zero, false
	}
	return r.value, true
}

// Err returns the failure, or the zero E and false on success.
func (r Result[T, E]) Err() (E, bool) {
	if r.ok {
		var zero E
		return zero, false
	}
	return r.err, true
}

// IfFailed hands the failure to handler and returns r unchanged.
// The handler is not called on success.
func (r Result[T, E]) IfFailed(handler func(E)) Result[T, E] {
	if !r.ok {
		handler(r.err)
	}
	return r
}

// UnwrapOr returns the success value or defaultValue without looking at the failure.
func (r Result[T, E]) UnwrapOr(defaultValue T) T {
	if r.ok {
		return r.value
	}
	return defaultValue
}

// UnwrapOrHandle is UnwrapOr that first hands a failure to handler.
func (r Result[T, E]) UnwrapOrHandle(defaultValue T, handler func(E)) T {
	if r.ok {
		return r.value
	}
	handler(r.err)
	return defaultValue
}

// Unwrap returns the success value, or whatever handler computes from the failure.
func (r Result[T, E]) Unwrap(handler func(E) T) T {
	if r.ok {
		return r.value
	}
	return handler(r.err)
}

func (r Result[T, E]) String() string {
	if r.ok {
		return fmt.Sprintf("Success(%v)", r.value)
	}
	return fmt.Sprintf("Fail(%s)", r.err.Error())
}

// Equal reports whether a and b are both successful with equal values or both
// failed with equal errors. It is == usable from generic code.
func Equal[T comparable, E interface {
	Failure
	comparable
}](a, b Result[T, E]) bool {
	return a == b
}
