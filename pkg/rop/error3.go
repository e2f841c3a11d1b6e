package rop

// Error3 holds exactly one of three failure shapes. See Error2.
type Error3[A, B, C any] struct {
	tag uint8
	a   A
	b   B
	c   C
}

func Error3A[A, B, C any](a A) Error3[A, B, C] {
	return Error3[A, B, C]{tag: 1, a: a}
}

func Error3B[A, B, C any](b B) Error3[A, B, C] {
	return Error3[A, B, C]{tag: 2, b: b}
}

func Error3C[A, B, C any](c C) Error3[A, B, C] {
	return Error3[A, B, C]{tag: 3, c: c}
}

func (e Error3[A, B, C]) failure() {}

func (e Error3[A, B, C]) Index() int { return int(e.tag) - 1 }

func (e Error3[A, B, C]) IsEmpty() bool { return e.tag == emptyTag }

func (e Error3[A, B, C]) Variant() string { return variantName(e.tag, e.payload()) }

func (e Error3[A, B, C]) Error() string { return render(e.tag, e.payload()) }

func (e Error3[A, B, C]) Unwrap() error { return unwrapPayload(e.payload()) }

func (e Error3[A, B, C]) payload() any {
	switch e.tag {
	case 1:
		return e.a
	case 2:
		return e.b
	case 3:
		return e.c
	}
	return nil
}

func Process3[A, B, C, R any](e Error3[A, B, C], onA func(A) R, onB func(B) R, onC func(C) R) R {
	switch e.tag {
	case 1:
		return call(onA, e.a, 0)
	case 2:
		return call(onB, e.b, 1)
	case 3:
		return call(onC, e.c, 2)
	}
	panic(ErrEmpty)
}

// Matcher3 combines one handler per variant of Error3.
type Matcher3[A, B, C, R any] struct {
	OnA     func(A) R
	OnB     func(B) R
	OnC     func(C) R
	Default func(any) R
}

func (m Matcher3[A, B, C, R]) Handle(e Error3[A, B, C]) R {
	return Process3(e, fallback(m.OnA, m.Default), fallback(m.OnB, m.Default), fallback(m.OnC, m.Default))
}

func (m Matcher3[A, B, C, R]) Do(e Error3[A, B, C]) {
	m.Handle(e)
}

func Match3[A, B, C any](onA func(A), onB func(B), onC func(C)) func(Error3[A, B, C]) {
	return func(e Error3[A, B, C]) {
		Process3(e, sink(onA), sink(onB), sink(onC))
	}
}
