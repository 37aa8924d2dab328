// SPDX-License-Identifier: MPL-2.0

package spawn

import (
	"errors"
	"fmt"
)

// Sentinel errors wrapped by OptionError, for programmatic detection with
// errors.Is.
var (
	// ErrInvalidFieldType is wrapped when a field has the wrong shape or type.
	ErrInvalidFieldType = errors.New("invalid field type")
	// ErrPathNotFound is wrapped when a resolved working directory does not exist.
	ErrPathNotFound = errors.New("path not found")
	// ErrHomeDirectoryUnavailable is wrapped when tilde expansion is requested
	// but no home directory could be determined.
	ErrHomeDirectoryUnavailable = errors.New("home directory unavailable")
	// ErrInvalidEnvironmentEntry is wrapped when the env mapping contains a
	// non-string key or value.
	ErrInvalidEnvironmentEntry = errors.New("invalid environment entry")
)

// OptionError reports a validation failure for a single field of a spawn
// configuration object.
type OptionError struct {
	// Field is the source key in the configuration object (e.g. "cwd").
	Field string
	// Kind is the sentinel error categorizing the failure.
	Kind error
	// Detail describes what was wrong with the received value.
	Detail string
}

// Error implements the error interface.
func (e *OptionError) Error() string {
	return fmt.Sprintf("invalid value for option '%s': %s", e.Field, e.Detail)
}

// Unwrap returns the sentinel kind so callers can use errors.Is.
func (e *OptionError) Unwrap() error {
	return e.Kind
}

// newTypeError builds the InvalidFieldType error for a field, naming the
// expected and received types.
func newTypeError(field, expected string, got any) *OptionError {
	return &OptionError{
		Field:  field,
		Kind:   ErrInvalidFieldType,
		Detail: fmt.Sprintf("expected %s, got %s", expected, typeName(got)),
	}
}

// typeName names a dynamic value's type in configuration-level terms rather
// than Go terms, so errors read the same regardless of which decoder produced
// the value.
func typeName(v any) string {
	switch v.(type) {
	case nil:
		return "nil"
	case bool:
		return "boolean"
	case string:
		return "string"
	case int, int8, int16, int32, int64, uint, uint8, uint16, uint32, uint64, float32, float64:
		return "number"
	case map[string]any, map[any]any:
		return "mapping"
	case []any, []string:
		return "list"
	default:
		return fmt.Sprintf("%T", v)
	}
}
