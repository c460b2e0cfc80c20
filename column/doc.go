/*
Package column provides schema-driven columnar storage for component records.

A Store is built from an ordered field schema over a closed set of primitive
kinds and holds one growable typed buffer per field. Records are written and
read by row position; removal is swap-and-pop; growth doubles geometrically.

	store, _ := column.NewStoreBuilder().
		WithSchema(column.Schema{
			{Name: "x", Kind: column.Float32},
			{Name: "y", Kind: column.Float32},
		}).
		Build()

	store.Set(0, column.Record{"x": 5, "y": 7})
	rec := store.Get(0)
*/
package column
