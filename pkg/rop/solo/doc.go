// Package solo contains single-value, synchronous primitives that operate
// on Result[T, E]. These functions form the building blocks for
// failure-aware pipelines without channels.
//
// Highlights:
// - Succeed/Fail: construct Result[T, E]
// - Validate/AndValidate: apply validation producing a typed failure on invalid input
// - Switch: move from Result[In, E] to Result[Out, E]
// - Map/DoubleMap: transform successful values
// - MapError: move a failure into another error algebra
// - Try/FailOnError: call (Out, error) code and classify the error into E
// - Tee/TeeIf/DoubleTee: side-effect helpers
// - Finally: reduce to a concrete value via success/failure handlers
// - Join: run a sequence of steps, optionally stopping at the first failure
package solo
