package rop

// Void is the Result of an operation that produces no value: it records only
// whether the operation succeeded and, if not, the failure.
type Void[E Failure] struct {
	err E
	ok  bool
}

func Done[E Failure]() Void[E] {
	return Void[E]{ok: true}
}

func FailVoid[E Failure](err E) Void[E] {
	return Void[E]{err: err}
}

// Discard drops the success value of r and keeps its failure.
func Discard[T any, E Failure](r Result[T, E]) Void[E] {
	return Void[E]{err: r.err, ok: r.ok}
}

func (v Void[E]) Successful() bool {
	return v.ok
}

func (v Void[E]) Failed() bool {
	return !v.ok
}

func (v Void[E]) IsEmpty() bool {
	return !v.ok && v.err.IsEmpty()
}

func (v Void[E]) Err() (E, bool) {
	if v.ok {
		var zero E
		return zero, false
	}
	return v.err, true
}

// IfFailed hands the failure to handler and returns v unchanged.
func (v Void[E]) IfFailed(handler func(E)) Void[E] {
	if !v.ok {
		handler(v.err)
	}
	return v
}

func (v Void[E]) String() string {
	if v.ok {
		return "Done"
	}
	return "Fail(" + v.err.Error() + ")"
}

func EqualVoid[E interface {
	Failure
	comparable
}](a, b Void[E]) bool {
	return a == b
}

var (
	_ Status             = Void[Error1[string]]{}
	_ ValueProvider[int] = Result[int, Error1[string]]{}
	_ Failure            = Error1[string]{}
	_ Failure            = Error2[string, int]{}
	_ Failure            = Error3[string, int, bool]{}
	_ Failure            = Error4[string, int, bool, float64]{}
	_ Failure            = Error5[string, int, bool, float64, uint]{}
)
