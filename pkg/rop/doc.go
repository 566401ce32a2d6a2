// Package rop provides two immutable containers with Rust-style combinators:
// Result[T], a success value or a failure error, and Option[T], a value or
// nothing. Both carry an explicit variant tag.
//
// Highlights:
// - Ok/Err/ErrMsg, Some/None: construct containers
// - From/FromValue: run a function and capture its error or panic as a failure
// - OptionFrom/OptionFromPtr/OptionFromPair: turn nil and comma-ok misses into None
// - Map/MapErr/MapOr/Or/UnwrapOr*: transform and extract without panicking
// - Unwrap/Expect/Throw: the only operations that panic (see ContractError)
// - Ok/OkOr: convert between the two containers
// - Partition/Collect: bulk helpers over []Result[T]
// - IsOkResult/IsErrResult/IsSomeOption/IsNoneOption: predicates standing in
//   for a type-membership test on the constructors
//
// Changes of element type live in package solo, asynchronous capture in
// package async.
package rop
