package column

// DefaultCapacity is the initial per-field buffer capacity when the builder
// is not given one.
const DefaultCapacity = 8

// Events holds optional callbacks fired by a Store.
type Events struct {
	// OnGrow fires after every buffer has been regrown.
	OnGrow func(oldCap, newCap int)
}

// Store holds one growable homogeneous buffer per schema field, indexed by
// row position (structure-of-arrays layout).
type Store struct {
	schema  Schema
	buffers []buffer
	size    int
	cap     int
	events  Events
}

// StoreBuilder assembles a Store.
type StoreBuilder struct {
	schema   Schema
	capacity int
	events   Events
}

func NewStoreBuilder() *StoreBuilder {
	return &StoreBuilder{}
}

func (b *StoreBuilder) WithSchema(s Schema) *StoreBuilder {
	b.schema = s
	return b
}

func (b *StoreBuilder) WithCapacity(n int) *StoreBuilder {
	b.capacity = n
	return b
}

func (b *StoreBuilder) WithEvents(ev Events) *StoreBuilder {
	b.events = ev
	return b
}

func (b *StoreBuilder) Build() (*Store, error) {
	capacity := b.capacity
	if capacity <= 0 {
		capacity = DefaultCapacity
	}
	buffers := make([]buffer, len(b.schema))
	for i, field := range b.schema {
		buf, err := newBuffer(field, capacity)
		if err != nil {
			return nil, err
		}
		buffers[i] = buf
	}
	return &Store{
		schema:  b.schema,
		buffers: buffers,
		cap:     capacity,
		events:  b.events,
	}, nil
}

// Set writes one record's fields at index, coercing each value per its
// field's declared kind. Missing (or nil) fields write the zero default.
// Every field is coerced before any buffer is touched, so a bad value leaves
// the store unchanged.
func (s *Store) Set(index int, rec Record) error {
	if index < 0 {
		return InvalidIndexError{Index: index}
	}
	staged := make([]any, len(s.buffers))
	for i, field := range s.schema {
		v, err := s.buffers[i].coerce(rec[field.Name])
		if err != nil {
			return err
		}
		staged[i] = v
	}
	if index >= s.cap {
		s.grow(index)
	}
	for i, buf := range s.buffers {
		buf.store(index, staged[i])
	}
	if index+1 > s.size {
		s.size = index + 1
	}
	return nil
}

// Get reconstructs the record at index, decoding each field per its kind.
// Indices at or beyond size read whatever the buffers hold (unspecified after
// removals); indices outside the buffers read as the schema's zero record.
func (s *Store) Get(index int) Record {
	if index < 0 || index >= s.cap {
		return s.schema.Zero()
	}
	rec := make(Record, len(s.schema))
	for i, field := range s.schema {
		rec[field.Name] = s.buffers[i].load(index)
	}
	return rec
}

// SwapRemove removes the record at index by moving the last occupied row into
// its place, then shrinking the logical size by one.
func (s *Store) SwapRemove(index int) error {
	if index < 0 || index >= s.size {
		return OutOfRangeError{Index: index, Size: s.size}
	}
	last := s.size - 1
	if index != last {
		for _, buf := range s.buffers {
			buf.copyWithin(index, last)
		}
	}
	s.size = last
	return nil
}

// CopyFrom copies one full record from src at srcIdx into this store at dst.
// Both stores must share the same schema.
func (s *Store) CopyFrom(dst int, src *Store, srcIdx int) error {
	if srcIdx < 0 || srcIdx >= src.size {
		return OutOfRangeError{Index: srcIdx, Size: src.size}
	}
	if dst < 0 {
		return InvalidIndexError{Index: dst}
	}
	if dst >= s.cap {
		s.grow(dst)
	}
	for i, buf := range s.buffers {
		if err := buf.copyFrom(dst, src.buffers[i], srcIdx); err != nil {
			return err
		}
	}
	if dst+1 > s.size {
		s.size = dst + 1
	}
	return nil
}

// Len is the logical record count.
func (s *Store) Len() int {
	return s.size
}

// Cap is the allocated buffer length, always a power-of-two multiple of the
// initial capacity.
func (s *Store) Cap() int {
	return s.cap
}

func (s *Store) Schema() Schema {
	return s.schema
}

// grow doubles capacity until index fits, copying every buffer. Buffers never
// shrink.
func (s *Store) grow(index int) {
	oldCap := s.cap
	newCap := s.cap
	for newCap <= index {
		newCap *= 2
	}
	for _, buf := range s.buffers {
		buf.grow(newCap)
	}
	s.cap = newCap
	if s.events.OnGrow != nil {
		s.events.OnGrow(oldCap, newCap)
	}
}
