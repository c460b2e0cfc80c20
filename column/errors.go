package column

import "fmt"

// UnsupportedFieldTypeError reports a schema naming an unrecognized kind, or
// a Set value whose runtime shape cannot be coerced into its field.
type UnsupportedFieldTypeError struct {
	Field string
	Kind  Kind
	Value any
}

func (e UnsupportedFieldTypeError) Error() string {
	if e.Value != nil {
		return fmt.Sprintf("unsupported field type for %q: %T", e.Field, e.Value)
	}
	return fmt.Sprintf("unsupported field kind for %q: %d", e.Field, e.Kind)
}

// InvalidIndexError reports a negative write index.
type InvalidIndexError struct {
	Index int
}

func (e InvalidIndexError) Error() string {
	return fmt.Sprintf("invalid index %d", e.Index)
}

// OutOfRangeError reports a range-checked index at or beyond the store's
// logical size.
type OutOfRangeError struct {
	Index int
	Size  int
}

func (e OutOfRangeError) Error() string {
	return fmt.Sprintf("index %d out of range (size %d)", e.Index, e.Size)
}

// KindMismatchError indicates paired buffers disagreeing on their kind during
// a copy. This is a construction-time bug, not a user input error.
type KindMismatchError struct {
	Field string
	Want  Kind
	Got   Kind
}

func (e KindMismatchError) Error() string {
	return fmt.Sprintf("buffer kind mismatch for %q: want %s, got %s", e.Field, e.Want, e.Got)
}
