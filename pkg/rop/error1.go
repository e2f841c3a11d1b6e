package rop

// Error1 is the degenerate union with a single failure shape.
type Error1[A any] struct {
	tag uint8
	a   A
}

func Error1A[A any](a A) Error1[A] {
	return Error1[A]{tag: 1, a: a}
}

func (e Error1[A]) failure() {}

func (e Error1[A]) Index() int { return int(e.tag) - 1 }

func (e Error1[A]) IsEmpty() bool { return e.tag == emptyTag }

func (e Error1[A]) Variant() string { return variantName(e.tag, e.payload()) }

func (e Error1[A]) Error() string { return render(e.tag, e.payload()) }

func (e Error1[A]) Unwrap() error { return unwrapPayload(e.payload()) }

func (e Error1[A]) payload() any {
	switch e.tag {
	case 1:
		return e.a
	}
	return nil
}

// Process1 calls onA with the payload.
func Process1[A, R any](e Error1[A], onA func(A) R) R {
	switch e.tag {
	case 1:
		return call(onA, e.a, 0)
	}
	panic(ErrEmpty)
}

// Matcher1 combines one handler per variant of Error1.
type Matcher1[A, R any] struct {
	OnA     func(A) R
	Default func(any) R
}

func (m Matcher1[A, R]) Handle(e Error1[A]) R {
	return Process1(e, fallback(m.OnA, m.Default))
}

func (m Matcher1[A, R]) Do(e Error1[A]) {
	m.Handle(e)
}

func Match1[A any](onA func(A)) func(Error1[A]) {
	return func(e Error1[A]) {
		Process1(e, sink(onA))
	}
}
