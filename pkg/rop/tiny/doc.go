// Package tiny provides a minimal fluent Chain[T, E] for synchronous
// composition of Result[T, E] values whose value type never changes.
//
// It parallels the chain package but keeps the API surface very small:
// - Start/FromValue: create a Chain
// - Then/ThenTry: compose result-returning or error-returning functions
// - Map: transform the value
// - RepeatUntil/While: loop a step while the chain succeeds
// - Or/And: pick among alternative or required chains
// - Ensure: trigger side effects without changing the result
// - Finally: reduce to a concrete value via handlers
package tiny
