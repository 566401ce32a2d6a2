// Package solo holds the combinators of package rop that change the element
// type. Go methods cannot declare type parameters, so Result[In] -> Result[Out]
// and Option[In] -> Option[Out] steps are plain functions.
//
// Highlights:
// - Validate/AndValidate/ValidateAll: turn predicates into failures
// - Switch: continue with a function returning Result[Out]
// - Map/MapOr/MapOrElse: transform the success value
// - Try: call a (Out, error) function, capturing errors and panics
// - Tee/TeeIf/DoubleTee: side effects that keep the result
// - Finally: reduce to a plain value, one handler per variant
// - MapOption/FlatMapOption/MatchOption/Zip/Transpose: the Option side
package solo
