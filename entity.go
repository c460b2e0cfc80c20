package silo

import (
	"log/slog"
	"strconv"
)

// Entity is an opaque identifier carrying no data of its own. A World hands
// them out monotonically starting at 1 and never reuses one.
type Entity uint64

func (e Entity) String() string {
	return strconv.FormatUint(uint64(e), 10)
}

func (e Entity) LogValue() slog.Value {
	return slog.StringValue(e.String())
}
