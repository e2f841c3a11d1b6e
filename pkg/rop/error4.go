package rop

// Error4 holds exactly one of four failure shapes. See Error2.
type Error4[A, B, C, D any] struct {
	tag uint8
	a   A
	b   B
	c   C
	d   D
}

func Error4A[A, B, C, D any](a A) Error4[A, B, C, D] {
	return Error4[A, B, C, D]{tag: 1, a: a}
}

func Error4B[A, B, C, D any](b B) Error4[A, B, C, D] {
	return Error4[A, B, C, D]{tag: 2, b: b}
}

func Error4C[A, B, C, D any](c C) Error4[A, B, C, D] {
	return Error4[A, B, C, D]{tag: 3, c: c}
}

func Error4D[A, B, C, D any](d D) Error4[A, B, C, D] {
	return Error4[A, B, C, D]{tag: 4, d: d}
}

func (e Error4[A, B, C, D]) failure() {}

func (e Error4[A, B, C, D]) Index() int { return int(e.tag) - 1 }

func (e Error4[A, B, C, D]) IsEmpty() bool { return e.tag == emptyTag }

func (e Error4[A, B, C, D]) Variant() string { return variantName(e.tag, e.payload()) }

func (e Error4[A, B, C, D]) Error() string { return render(e.tag, e.payload()) }

func (e Error4[A, B, C, D]) Unwrap() error { return unwrapPayload(e.payload()) }

func (e Error4[A, B, C, D]) payload() any {
	switch e.tag {
	case 1:
		return e.a
	case 2:
		return e.b
	case 3:
		return e.c
	case 4:
		return e.d
	}
	return nil
}

func Process4[A, B, C, D, R any](e Error4[A, B, C, D], onA func(A) R, onB func(B) R, onC func(C) R, onD func(D) R) R {
	switch e.tag {
	case 1:
		return call(onA, e.a, 0)
	case 2:
		return call(onB, e.b, 1)
	case 3:
		return call(onC, e.c, 2)
	case 4:
		return call(onD, e.d, 3)
	}
	panic(ErrEmpty)
}

// Matcher4 combines one handler per variant of Error4.
type Matcher4[A, B, C, D, R any] struct {
	OnA     func(A) R
	OnB     func(B) R
	OnC     func(C) R
	OnD     func(D) R
	Default func(any) R
}

func (m Matcher4[A, B, C, D, R]) Handle(e Error4[A, B, C, D]) R {
	return Process4(e, fallback(m.OnA, m.Default), fallback(m.OnB, m.Default), fallback(m.OnC, m.Default), fallback(m.OnD, m.Default))
}

func (m Matcher4[A, B, C, D, R]) Do(e Error4[A, B, C, D]) {
	m.Handle(e)
}

func Match4[A, B, C, D any](onA func(A), onB func(B), onC func(C), onD func(D)) func(Error4[A, B, C, D]) {
	return func(e Error4[A, B, C, D]) {
		Process4(e, sink(onA), sink(onB), sink(onC), sink(onD))
	}
}
