// Package tiny provides a minimal fluent Chain[T] for synchronous
// composition of rop.Result[T] values.
//
// - Start/FromValue: create a Chain
// - Then/ThenTry: compose result-returning or error-returning functions
// - Map: transform the value; To/MapTo switch to another type
// - Or/And: pick between chains
// - RepeatUntil/While: loop a step while the chain succeeds
// - Ensure: trigger side effects
// - Finally: reduce to a concrete value via handlers
package tiny
