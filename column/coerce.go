package column

import (
	"math"
	"strconv"
	"strings"

	"github.com/x448/float16"
)

type integer interface {
	~int8 | ~int16 | ~int32 | ~int64 | ~uint8 | ~uint16 | ~uint32 | ~uint64
}

type floating interface {
	~float32 | ~float64
}

// convInt coerces an arbitrary runtime value into an integer slot. Narrowing
// follows two's-complement truncation; 64-bit inputs land exactly in 64-bit
// slots.
func convInt[V integer](field string, v any) (V, error) {
	switch v := v.(type) {
	case nil:
		return 0, nil
	case int64:
		return V(v), nil
	case uint64:
		return V(v), nil
	case int:
		return V(v), nil
	case int8:
		return V(v), nil
	case int16:
		return V(v), nil
	case int32:
		return V(v), nil
	case uint:
		return V(v), nil
	case uint8:
		return V(v), nil
	case uint16:
		return V(v), nil
	case uint32:
		return V(v), nil
	case float32:
		return V(int64(v)), nil
	case float64:
		return V(int64(v)), nil
	case bool:
		if v {
			return 1, nil
		}
		return 0, nil
	case string:
		n, err := parseInt(field, v)
		return V(n), err
	}
	return 0, UnsupportedFieldTypeError{Field: field, Value: v}
}

// convFloat coerces an arbitrary runtime value into a floating-point slot.
func convFloat[V floating](field string, v any) (V, error) {
	switch v := v.(type) {
	case nil:
		return 0, nil
	case float64:
		return V(v), nil
	case float32:
		return V(v), nil
	case int64:
		return V(v), nil
	case uint64:
		return V(v), nil
	case int:
		return V(v), nil
	case int8:
		return V(v), nil
	case int16:
		return V(v), nil
	case int32:
		return V(v), nil
	case uint:
		return V(v), nil
	case uint8:
		return V(v), nil
	case uint16:
		return V(v), nil
	case uint32:
		return V(v), nil
	case bool:
		if v {
			return 1, nil
		}
		return 0, nil
	case string:
		f, err := parseFloat(field, v)
		return V(f), err
	}
	return 0, UnsupportedFieldTypeError{Field: field, Value: v}
}

func convFloat16(field string, v any) (float16.Float16, error) {
	f, err := convFloat[float32](field, v)
	if err != nil {
		return 0, err
	}
	return float16.Fromfloat32(f), nil
}

// convClamped coerces into a clamped byte: rounds half-to-even and saturates
// at [0, 255] instead of wrapping.
func convClamped(field string, v any) (uint8, error) {
	f, err := convFloat[float64](field, v)
	if err != nil {
		return 0, err
	}
	f = math.RoundToEven(f)
	if f <= 0 || math.IsNaN(f) {
		return 0, nil
	}
	if f >= 255 {
		return 255, nil
	}
	return uint8(f), nil
}

// convBool encodes into a one-byte slot: 1/0 for booleans, the usual integer
// narrowing otherwise. Reads decode as raw != 0.
func convBool(field string, v any) (uint8, error) {
	return convInt[uint8](field, v)
}

// Textual numerics parse as floating point when they carry a decimal point or
// exponent marker, as integers otherwise.
func hasFloatMarker(s string) bool {
	return strings.ContainsAny(s, ".eE")
}

func parseInt(field, s string) (int64, error) {
	if hasFloatMarker(s) {
		f, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return 0, UnsupportedFieldTypeError{Field: field, Value: s}
		}
		return int64(f), nil
	}
	n, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		// a non-negative value may only fit in a uint64
		u, uerr := strconv.ParseUint(s, 10, 64)
		if uerr != nil {
			return 0, UnsupportedFieldTypeError{Field: field, Value: s}
		}
		return int64(u), nil
	}
	return n, nil
}

func parseFloat(field, s string) (float64, error) {
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, UnsupportedFieldTypeError{Field: field, Value: s}
	}
	return f, nil
}
