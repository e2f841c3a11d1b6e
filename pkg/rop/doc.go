// Package rop provides a value-or-failure Result whose failure side is a closed
// tagged union of concrete error shapes.
//
// A fallible function declares every failure it can produce in its signature:
//
//	type CalcErr = rop.Error2[DivideZero, HasNegative]
//
//	func Divide(d, n int) rop.Result[int, CalcErr] {
//		if n == 0 {
//			return rop.Fail[int](rop.Error2A[DivideZero, HasNegative](DivideZero{d, n}))
//		}
//		...
//	}
//
// Callers either take a fallback (UnwrapOr) or handle every variant:
//
//	v := Divide(3, 0).Unwrap(rop.Matcher2[DivideZero, HasNegative, int]{
//		OnA: func(DivideZero) int { return 0 },
//		OnB: func(HasNegative) int { return -1 },
//	}.Handle)
//
// Highlights:
// - Error1..Error5: closed unions, comparable with == when every variant is
// - Process1..Process5: exhaustive dispatch, one positional handler per variant
// - Matcher1..Matcher5 / Match1..Match5: combine per-variant handlers
// - Result: IfFailed, UnwrapOr, UnwrapOrHandle, Unwrap; reads never consume
// - Void: the same state machine for operations without a value
package rop
