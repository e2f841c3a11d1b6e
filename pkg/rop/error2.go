package rop

// Error2 holds exactly one of two failure shapes. Only the active slot is
// populated, so two values compare equal with == iff they hold the same variant
// with equal payloads. == compiles only when both A and B are comparable.
//
// The zero value is empty: it holds no variant and processing it panics with
// ErrEmpty. Every constructor yields a non-empty value.
type Error2[A, B any] struct {
	tag uint8
	a   A
	b   B
}

// Error2A builds an Error2 holding its first variant.
func Error2A[A, B any](a A) Error2[A, B] {
	return Error2[A, B]{tag: 1, a: a}
}

// Error2B builds an Error2 holding its second variant.
func Error2B[A, B any](b B) Error2[A, B] {
	return Error2[A, B]{tag: 2, b: b}
}

func (e Error2[A, B]) failure() {}

func (e Error2[A, B]) Index() int { return int(e.tag) - 1 }

func (e Error2[A, B]) IsEmpty() bool { return e.tag == emptyTag }

func (e Error2[A, B]) Variant() string { return variantName(e.tag, e.payload()) }

// Error renders the active payload. Payloads implementing error or
// fmt.Stringer render through those methods.
func (e Error2[A, B]) Error() string { return render(e.tag, e.payload()) }

// Unwrap exposes the payload to errors.Is and errors.As when it is an error.
func (e Error2[A, B]) Unwrap() error { return unwrapPayload(e.payload()) }

func (e Error2[A, B]) payload() any {
	switch e.tag {
	case 1:
		return e.a
	case 2:
		return e.b
	}
	return nil
}

// Process2 calls the handler of the active variant with its payload and returns
// what that handler returns. Every handler must be supplied.
func Process2[A, B, R any](e Error2[A, B], onA func(A) R, onB func(B) R) R {
	switch e.tag {
	case 1:
		return call(onA, e.a, 0)
	case 2:
		return call(onB, e.b, 1)
	}
	panic(ErrEmpty)
}

// Matcher2 combines one handler per variant into a single dispatcher.
// Default, when set, receives the payload of any variant whose handler is nil.
type Matcher2[A, B, R any] struct {
	OnA     func(A) R
	OnB     func(B) R
	Default func(any) R
}

// Handle dispatches e to the matching handler.
func (m Matcher2[A, B, R]) Handle(e Error2[A, B]) R {
	return Process2(e, fallback(m.OnA, m.Default), fallback(m.OnB, m.Default))
}

// Do dispatches e and drops the handler's return value.
func (m Matcher2[A, B, R]) Do(e Error2[A, B]) {
	m.Handle(e)
}

// Match2 combines side-effect handlers into the func(Error2) that
// Result.IfFailed and Result.UnwrapOrHandle accept.
func Match2[A, B any](onA func(A), onB func(B)) func(Error2[A, B]) {
	return func(e Error2[A, B]) {
		Process2(e, sink(onA), sink(onB))
	}
}
