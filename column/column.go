package column

import "github.com/x448/float16"

// buffer is one growable homogeneous field buffer. Index bounds are the
// owning Store's responsibility; a buffer only converts, stores and moves
// elements.
type buffer interface {
	kind() Kind
	// coerce validates and converts a runtime value into the buffer's element
	// type without mutating anything. The returned value is only valid as an
	// argument to store.
	coerce(v any) (any, error)
	store(i int, v any)
	load(i int) any
	copyWithin(dst, src int)
	copyFrom(dst int, src buffer, srcIdx int) error
	grow(newCap int)
}

type col[V any] struct {
	field string
	knd   Kind
	data  []V
	conv  func(field string, v any) (V, error)
	dec   func(V) any
}

func (c *col[V]) kind() Kind {
	return c.knd
}

func (c *col[V]) coerce(v any) (any, error) {
	return c.conv(c.field, v)
}

func (c *col[V]) store(i int, v any) {
	c.data[i] = v.(V)
}

func (c *col[V]) load(i int) any {
	return c.dec(c.data[i])
}

func (c *col[V]) copyWithin(dst, src int) {
	c.data[dst] = c.data[src]
}

func (c *col[V]) copyFrom(dst int, src buffer, srcIdx int) error {
	other, ok := src.(*col[V])
	if !ok || other.knd != c.knd {
		return KindMismatchError{Field: c.field, Want: c.knd, Got: src.kind()}
	}
	c.data[dst] = other.data[srcIdx]
	return nil
}

func (c *col[V]) grow(newCap int) {
	next := make([]V, newCap)
	copy(next, c.data)
	c.data = next
}

func identity[V any](v V) any {
	return v
}

func newBuffer(f Field, capacity int) (buffer, error) {
	switch f.Kind {
	case Float16:
		return &col[float16.Float16]{
			field: f.Name,
			knd:   f.Kind,
			data:  make([]float16.Float16, capacity),
			conv:  convFloat16,
			dec:   func(v float16.Float16) any { return v.Float32() },
		}, nil
	case Float32:
		return &col[float32]{
			field: f.Name, knd: f.Kind,
			data: make([]float32, capacity),
			conv: convFloat[float32], dec: identity[float32],
		}, nil
	case Float64:
		return &col[float64]{
			field: f.Name, knd: f.Kind,
			data: make([]float64, capacity),
			conv: convFloat[float64], dec: identity[float64],
		}, nil
	case Int8:
		return &col[int8]{
			field: f.Name, knd: f.Kind,
			data: make([]int8, capacity),
			conv: convInt[int8], dec: identity[int8],
		}, nil
	case Int16:
		return &col[int16]{
			field: f.Name, knd: f.Kind,
			data: make([]int16, capacity),
			conv: convInt[int16], dec: identity[int16],
		}, nil
	case Int32:
		return &col[int32]{
			field: f.Name, knd: f.Kind,
			data: make([]int32, capacity),
			conv: convInt[int32], dec: identity[int32],
		}, nil
	case Uint8:
		return &col[uint8]{
			field: f.Name, knd: f.Kind,
			data: make([]uint8, capacity),
			conv: convInt[uint8], dec: identity[uint8],
		}, nil
	case Uint8Clamped:
		return &col[uint8]{
			field: f.Name, knd: f.Kind,
			data: make([]uint8, capacity),
			conv: convClamped, dec: identity[uint8],
		}, nil
	case Uint16:
		return &col[uint16]{
			field: f.Name, knd: f.Kind,
			data: make([]uint16, capacity),
			conv: convInt[uint16], dec: identity[uint16],
		}, nil
	case Uint32:
		return &col[uint32]{
			field: f.Name, knd: f.Kind,
			data: make([]uint32, capacity),
			conv: convInt[uint32], dec: identity[uint32],
		}, nil
	case Bool:
		return &col[uint8]{
			field: f.Name, knd: f.Kind,
			data: make([]uint8, capacity),
			conv: convBool,
			dec:  func(v uint8) any { return v != 0 },
		}, nil
	case Int64:
		return &col[int64]{
			field: f.Name, knd: f.Kind,
			data: make([]int64, capacity),
			conv: convInt[int64], dec: identity[int64],
		}, nil
	case Uint64:
		return &col[uint64]{
			field: f.Name, knd: f.Kind,
			data: make([]uint64, capacity),
			conv: convInt[uint64], dec: identity[uint64],
		}, nil
	}
	return nil, UnsupportedFieldTypeError{Field: f.Name, Kind: f.Kind}
}
