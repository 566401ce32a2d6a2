package rop

import (
	"iter"
	"slices"
)

// Partition splits rs into success values and failures, both in input order.
func Partition[T any](rs []Result[T]) ([]T, []error) {
	return PartitionSeq(slices.Values(rs))
}

func PartitionSeq[T any](seq iter.Seq[Result[T]]) (oks []T, errs []error) {
	oks = []T{}
	errs = []error{}

	for r := range seq {
		if r.ok {
			oks = append(oks, r.value)
		} else {
			errs = append(errs, r.failure())
		}
	}
	return oks, errs
}

// Collect gathers all success values, or returns the first failure.
func Collect[T any](rs []Result[T]) Result[[]T] {
	out := make([]T, 0, len(rs))
	for _, r := range rs {
		if !r.ok {
			return FailFrom[T, []T](r)
		}
		out = append(out, r.value)
	}
	return Ok(out)
}
