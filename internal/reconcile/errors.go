package reconcile

import "fmt"

// FieldTypeError reports a profile value that is neither a scalar nor nil.
// This is the only error the engine surfaces; every other malformed input
// degrades to a low similarity score instead.
type FieldTypeError struct {
	Field string
	Value any
}

func (e *FieldTypeError) Error() string {
	return fmt.Sprintf("profile field %q has unsupported type %T", e.Field, e.Value)
}
