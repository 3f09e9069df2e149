package taskrun

import (
	"fmt"
	"strconv"

	"github.com/araddon/dateparse"
)

// Kind declares how an attribute's override string is coerced back into the
// type its resolver produces. The kind is fixed at registration, so coercion
// never has to inspect the resolved value.
type Kind int

const (
	// KindString covers plain and optional string attributes; overrides
	// are used as-is.
	KindString Kind = iota

	// KindStringList and KindMap take the override string unchanged. No
	// structural coercion is attempted, so overriding such an attribute
	// changes its value's type to string.
	KindStringList
	KindMap

	// KindBool treats any non-empty override as true. Note that "false"
	// is a non-empty string and also coerces to true.
	KindBool

	KindInt
	KindFloat

	// KindTime parses the override as a free-form date.
	KindTime
)

func (k Kind) String() string {
	switch k {
	case KindString:
		return "string"
	case KindStringList:
		return "string-list"
	case KindMap:
		return "map"
	case KindBool:
		return "bool"
	case KindInt:
		return "int"
	case KindFloat:
		return "float"
	case KindTime:
		return "time"
	default:
		return "unknown"
	}
}

// coerce converts a raw override string to the kind's Go type.
func coerce(attr Attr, kind Kind, raw string) (any, error) {
	switch kind {
	case KindBool:
		return raw != "", nil
	case KindInt:
		n, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("%w: attribute %q: %q is not an integer", ErrCoercion, attr, raw)
		}
		return int(n), nil
	case KindFloat:
		f, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			return nil, fmt.Errorf("%w: attribute %q: %q is not a number", ErrCoercion, attr, raw)
		}
		return f, nil
	case KindTime:
		ts, err := dateparse.ParseAny(raw)
		if err != nil {
			return nil, fmt.Errorf("%w: attribute %q: %q is not a recognizable date", ErrCoercion, attr, raw)
		}
		return ts, nil
	default:
		return raw, nil
	}
}
