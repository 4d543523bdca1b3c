package patcher

import (
	"errors"
	"fmt"
	"reflect"
)

var (
	// ErrUnsupported is returned for Go types that have no node kind.
	ErrUnsupported = errors.New("unsupported type")

	// ErrDepth is recorded for fields nested deeper than the configured
	// maximum depth, which is how self-referential types are cut off.
	ErrDepth = errors.New("maximum depth exceeded")

	// ErrShadowed is recorded for fields hidden by a shallower field of the
	// same name.
	ErrShadowed = errors.New("shadowed by another field")

	// ErrDestination is returned by ApplyTo for destinations which are not
	// pointers to the patcher's type.
	ErrDestination = errors.New("invalid destination")
)

// BuildError reports a type for which no patcher can be built.
type BuildError struct {
	Type reflect.Type
	Path string // Go field path, empty for the root
	Err  error
}

func (e *BuildError) Error() string {
	if e.Path != "" {
		return fmt.Sprintf("build error at %s (%v): %v", e.Path, e.Type, e.Err)
	}
	return fmt.Sprintf("build error for %v: %v", e.Type, e.Err)
}

func (e *BuildError) Unwrap() error {
	return e.Err
}
