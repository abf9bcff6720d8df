package patch

import (
	"bytes"
	"encoding/json"
)

// Field is a tri-state optional used in patch-style requests. A plain
// two-state optional cannot distinguish "leave the stored value unchanged"
// from "clear the stored value", so each field decodes into one of:
//
//   - absent from the payload: keep the stored value
//   - explicit JSON null: clear the stored value
//   - a value: overwrite the stored value
//
// The zero Field is the absent state, which is what encoding/json leaves
// behind for keys missing from the payload.
type Field[T any] struct {
	present bool
	null    bool
	value   T
}

// Set returns a field carrying a value.
func Set[T any](value T) Field[T] {
	return Field[T]{present: true, value: value}
}

// Clear returns a field that erases the stored value.
func Clear[T any]() Field[T] {
	return Field[T]{present: true, null: true}
}

// IsSet reports whether the field appeared in the payload at all.
func (f Field[T]) IsSet() bool {
	return f.present
}

// IsNull reports whether the field was an explicit null.
func (f Field[T]) IsNull() bool {
	return f.present && f.null
}

// Value returns the decoded value and whether one was supplied.
func (f Field[T]) Value() (T, bool) {
	return f.value, f.present && !f.null
}

// Apply merges the field into dest, leaving dest untouched for the absent
// state, nilling it for explicit null, and overwriting it otherwise.
func (f Field[T]) Apply(dest **T) {
	switch {
	case !f.present:
	case f.null:
		*dest = nil
	default:
		v := f.value
		*dest = &v
	}
}

func (f *Field[T]) UnmarshalJSON(data []byte) error {
	f.present = true
	if bytes.Equal(data, []byte("null")) {
		f.null = true
		return nil
	}
	return json.Unmarshal(data, &f.value)
}

func (f Field[T]) MarshalJSON() ([]byte, error) {
	if !f.present || f.null {
		return []byte("null"), nil
	}
	return json.Marshal(f.value)
}
