package column

// Kind identifies one of the fixed primitive field kinds a schema may use.
type Kind uint8

const (
	Invalid Kind = iota
	Float16
	Float32
	Float64
	Int8
	Int16
	Int32
	Uint8
	Uint8Clamped
	Uint16
	Uint32
	Bool
	Int64
	Uint64
)

var kindNames = map[Kind]string{
	Float16:      "f16",
	Float32:      "f32",
	Float64:      "f64",
	Int8:         "i8",
	Int16:        "i16",
	Int32:        "i32",
	Uint8:        "u8",
	Uint8Clamped: "u8c",
	Uint16:       "u16",
	Uint32:       "u32",
	Bool:         "bool",
	Int64:        "i64",
	Uint64:       "u64",
}

func (k Kind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return "invalid"
}

// Field declares one named slot in a schema.
type Field struct {
	Name string
	Kind Kind
}

// Schema is the ordered field layout of a component type.
type Schema []Field

// Zero builds a default-constructed record for the schema.
func (s Schema) Zero() Record {
	rec := make(Record, len(s))
	for _, f := range s {
		rec[f.Name] = zeroValue(f.Kind)
	}
	return rec
}

func zeroValue(k Kind) any {
	switch k {
	case Float16, Float32:
		return float32(0)
	case Float64:
		return float64(0)
	case Int8:
		return int8(0)
	case Int16:
		return int16(0)
	case Int32:
		return int32(0)
	case Uint8, Uint8Clamped:
		return uint8(0)
	case Uint16:
		return uint16(0)
	case Uint32:
		return uint32(0)
	case Bool:
		return false
	case Int64:
		return int64(0)
	case Uint64:
		return uint64(0)
	}
	return nil
}

// Record is one component instance, keyed by field name. Values written
// through a Store are coerced per the field's declared kind; values read back
// carry the kind's natural Go type.
type Record map[string]any

// ElementType is the contract a component type satisfies: a stable unique
// identifier and an ordered field schema. Default construction comes from
// Schema().Zero().
type ElementType interface {
	ID() string
	Schema() Schema
}

type elementType struct {
	id     string
	schema Schema
}

// NewElementType builds the stock ElementType implementation.
func NewElementType(id string, fields ...Field) ElementType {
	return &elementType{id: id, schema: Schema(fields)}
}

func (e *elementType) ID() string {
	return e.id
}

func (e *elementType) Schema() Schema {
	return e.schema
}
