// Package async captures the outcome of computations running in other
// goroutines into rop containers.
//
// - Go/NewFuture: start a computation, or settle a Future by hand
// - Capture: wait for an in-flight Future and wrap its outcome in a Result
// - From: start and capture in one call
// - OptionFrom: start and map a nil outcome to None, leaving failures uncaught
//
// Waiting never gives up on its own. Cancellation belongs to the computation,
// typically through the context it receives.
package async
