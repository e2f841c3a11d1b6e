package rop

// Error5 holds exactly one of five failure shapes. See Error2.
type Error5[A, B, C, D, E any] struct {
	tag uint8
	a   A
	b   B
	c   C
	d   D
	e   E
}

func Error5A[A, B, C, D, E any](a A) Error5[A, B, C, D, E] {
	return Error5[A, B, C, D, E]{tag: 1, a: a}
}

func Error5B[A, B, C, D, E any](b B) Error5[A, B, C, D, E] {
	return Error5[A, B, C, D, E]{tag: 2, b: b}
}

func Error5C[A, B, C, D, E any](c C) Error5[A, B, C, D, E] {
	return Error5[A, B, C, D, E]{tag: 3, c: c}
}

func Error5D[A, B, C, D, E any](d D) Error5[A, B, C, D, E] {
	return Error5[A, B, C, D, E]{tag: 4, d: d}
}

func Error5E[A, B, C, D, E any](e E) Error5[A, B, C, D, E] {
	return Error5[A, B, C, D, E]{tag: 5, e: e}
}

func (e Error5[A, B, C, D, E]) failure() {}

func (e Error5[A, B, C, D, E]) Index() int { return int(e.tag) - 1 }

func (e Error5[A, B, C, D, E]) IsEmpty() bool { return e.tag == emptyTag }

func (e Error5[A, B, C, D, E]) Variant() string { return variantName(e.tag, e.payload()) }

func (e Error5[A, B, C, D, E]) Error() string { return render(e.tag, e.payload()) }

func (e Error5[A, B, C, D, E]) Unwrap() error { return unwrapPayload(e.payload()) }

func (e Error5[A, B, C, D, E]) payload() any {
	switch e.tag {
	case 1:
		return e.a
	case 2:
		return e.b
	case 3:
		return e.c
	case 4:
		return e.d
	case 5:
		return e.e
	}
	return nil
}

func Process5[A, B, C, D, E, R any](e Error5[A, B, C, D, E], onA func(A) R, onB func(B) R, onC func(C) R, onD func(D) R, onE func(E) R) R {
	switch e.tag {
	case 1:
		return call(onA, e.a, 0)
	case 2:
		return call(onB, e.b, 1)
	case 3:
		return call(onC, e.c, 2)
	case 4:
		return call(onD, e.d, 3)
	case 5:
		return call(onE, e.e, 4)
	}
	panic(ErrEmpty)
}

// Matcher5 combines one handler per variant of Error5.
type Matcher5[A, B, C, D, E, R any] struct {
	OnA     func(A) R
	OnB     func(B) R
	OnC     func(C) R
	OnD     func(D) R
	OnE     func(E) R
	Default func(any) R
}

func (m Matcher5[A, B, C, D, E, R]) Handle(e Error5[A, B, C, D, E]) R {
	return Process5(e, fallback(m.OnA, m.Default), fallback(m.OnB, m.Default), fallback(m.OnC, m.Default), fallback(m.OnD, m.Default), fallback(m.OnE, m.Default))
}

func (m Matcher5[A, B, C, D, E, R]) Do(e Error5[A, B, C, D, E]) {
	m.Handle(e)
}

func Match5[A, B, C, D, E any](onA func(A), onB func(B), onC func(C), onD func(D), onE func(E)) func(Error5[A, B, C, D, E]) {
	return func(e Error5[A, B, C, D, E]) {
		Process5(e, sink(onA), sink(onB), sink(onC), sink(onD), sink(onE))
	}
}
