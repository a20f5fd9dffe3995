// Package strata provides a composable storage abstraction: a uniform
// four-operation contract over heterogeneous backing stores, plus
// combinators that add caching, routing, serialization, path remapping,
// encryption and operation logging without changing the contract.
//
// A caller always holds a single Storage, built by nesting combinators
// around one or more leaf stores. Every call flows top-down through the
// nesting and terminates at a leaf.
package strata

import "errors"

// Storage is the contract every leaf store and combinator implements.
type Storage interface {
	Get(Ref) (interface{}, error)
	Put(Ref, interface{}) error
	Merge(Ref, interface{}) error
	Delete(Ref) error
}

var (
	// if Get cannot find the reference, or a switch has no store for a
	// routing key, the store should return something that wraps this error:
	NotFound = errors.New("reference not found")

	// if an operation cannot be performed at all, the store or filter
	// should return something that wraps this error:
	NotSupported = errors.New("operation not supported")

	// an underlying filesystem or database operation failed:
	IOFailure = errors.New("i/o failure")

	// a codec could not encode or decode a payload:
	EncodingError = errors.New("encoding error")

	// a construction-time argument was invalid:
	ConfigError = errors.New("invalid configuration")
)
