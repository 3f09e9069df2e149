package taskrun

import "errors"

var (
	// ErrUnknownAttribute is returned by Resolve for a name that is not
	// registered and has no override configured.
	ErrUnknownAttribute = errors.New("unknown runtime attribute")

	// ErrCoercion is returned when an override value cannot be parsed as
	// the attribute's declared kind.
	ErrCoercion = errors.New("cannot coerce override value")
)
