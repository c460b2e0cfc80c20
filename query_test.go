package silo

import (
	"testing"

	"github.com/TheBitDrifter/silo/column"
)

// TestQueryFiltering tests the basic query filtering capabilities
func TestQueryFiltering(t *testing.T) {
	type entitySetup struct {
		components []Component
		count      int
	}

	tests := []struct {
		name            string
		entitySetups    []entitySetup
		queryType       string // "and", "or", "not", "complex"
		queryComponents []Component
		expectedMatches int
	}{
		{
			name: "And query matches supersets",
			entitySetups: []entitySetup{
				{[]Component{positionType, velocityType}, 5},
				{[]Component{positionType}, 10},
				{[]Component{velocityType}, 15},
			},
			queryType:       "and",
			queryComponents: []Component{positionType, velocityType},
			expectedMatches: 5,
		},
		{
			name: "Or query matches either",
			entitySetups: []entitySetup{
				{[]Component{positionType, velocityType}, 5},
				{[]Component{positionType}, 10},
				{[]Component{velocityType}, 15},
			},
			queryType:       "or",
			queryComponents: []Component{positionType, velocityType},
			expectedMatches: 30, // 5 + 10 + 15
		},
		{
			name: "Not query excludes",
			entitySetups: []entitySetup{
				{[]Component{positionType, velocityType}, 5},
				{[]Component{positionType}, 10},
				{[]Component{velocityType}, 15},
				{[]Component{healthType}, 20},
			},
			queryType:       "not",
			queryComponents: []Component{velocityType},
			expectedMatches: 30, // 10 + 20
		},
		{
			name: "Complex query",
			entitySetups: []entitySetup{
				{[]Component{positionType, velocityType, healthType}, 5},
				{[]Component{positionType, velocityType}, 10},
				{[]Component{positionType, healthType}, 15},
				{[]Component{velocityType, healthType}, 20},
				{[]Component{positionType}, 25},
				{[]Component{velocityType}, 30},
				{[]Component{healthType}, 35},
			},
			queryType:       "complex",
			queryComponents: []Component{positionType, velocityType, healthType},
			expectedMatches: 30, // (P AND V) OR (P AND H) = 10 + 15 + 5 (counted once)
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			world := Factory.NewWorld()

			for _, setup := range tt.entitySetups {
				for i := 0; i < setup.count; i++ {
					e := world.CreateEntity()
					values := make(Values, len(setup.components))
					for _, c := range setup.components {
						values[c] = nil
					}
					if err := world.AddEntityWithComponents(e, values); err != nil {
						t.Fatalf("Failed to create entity: %v", err)
					}
				}
			}

			query := Factory.NewQuery()
			var queryNode QueryNode

			switch tt.queryType {
			case "and":
				items := make([]interface{}, len(tt.queryComponents))
				for i, comp := range tt.queryComponents {
					items[i] = comp
				}
				queryNode = query.And(items...)
			case "or":
				items := make([]interface{}, len(tt.queryComponents))
				for i, comp := range tt.queryComponents {
					items[i] = comp
				}
				queryNode = query.Or(items...)
			case "not":
				items := make([]interface{}, len(tt.queryComponents))
				for i, comp := range tt.queryComponents {
					items[i] = comp
				}
				queryNode = query.Not(items...)
			case "complex":
				// (position AND velocity) OR (position AND health)
				inner := Factory.NewQuery()
				left := inner.And(tt.queryComponents[0], tt.queryComponents[1])
				right := inner.And(tt.queryComponents[0], tt.queryComponents[2])
				queryNode = query.Or(left, right)
			}

			cursor := Factory.NewCursor(queryNode, world)
			count := 0
			for cursor.Next() {
				count++
			}

			if count != tt.expectedMatches {
				t.Errorf("Matched %d entities, want %d", count, tt.expectedMatches)
			}
		})
	}
}

// TestQueryOrderIndependence checks that argument order affects only the
// tuple layout, never the matched set.
func TestQueryOrderIndependence(t *testing.T) {
	world := Factory.NewWorld()

	const n = 4
	for i := 0; i < n; i++ {
		e := world.CreateEntity()
		err := world.AddEntityWithComponents(e, Values{
			positionType: {"x": i},
			healthType:   {"hp": 100 + i},
		})
		if err != nil {
			t.Fatalf("AddEntityWithComponents failed: %v", err)
		}
	}

	collect := func(a, b Component) map[Entity][]any {
		out := make(map[Entity][]any)
		cursor := world.Query(a, b)
		for cursor.Next() {
			tuple := cursor.Components()
			out[cursor.Entity()] = []any{tuple[0], tuple[1]}
		}
		return out
	}

	forward := collect(positionType, healthType)
	reversed := collect(healthType, positionType)

	if len(forward) != n || len(reversed) != n {
		t.Fatalf("matched %d and %d entities, want %d", len(forward), len(reversed), n)
	}

	for e, tuple := range forward {
		rev, ok := reversed[e]
		if !ok {
			t.Fatalf("entity %v missing from reversed query", e)
		}
		pos := tuple[0].(column.Record)
		hp := tuple[1].(column.Record)
		if _, ok := pos["x"]; !ok {
			t.Errorf("forward tuple[0] is not position: %v", pos)
		}
		revHP := rev[0].(column.Record)
		revPos := rev[1].(column.Record)
		if _, ok := revHP["hp"]; !ok {
			t.Errorf("reversed tuple[0] is not health: %v", revHP)
		}
		if pos["x"] != revPos["x"] || hp["hp"] != revHP["hp"] {
			t.Errorf("tuples disagree for entity %v: %v vs %v", e, tuple, rev)
		}
	}
}

// TestQuerySupersetSpansArchetypes verifies that one query walks every
// archetype carrying the requested types.
func TestQuerySupersetSpansArchetypes(t *testing.T) {
	world := Factory.NewWorld()

	setups := []Values{
		{positionType: {"x": 1}},
		{positionType: {"x": 2}, velocityType: nil},
		{positionType: {"x": 3}, healthType: nil},
		{positionType: {"x": 4}, velocityType: nil, healthType: nil},
		{velocityType: nil},
	}
	for _, values := range setups {
		e := world.CreateEntity()
		if err := world.AddEntityWithComponents(e, values); err != nil {
			t.Fatalf("AddEntityWithComponents failed: %v", err)
		}
	}

	var xs []float64
	cursor := world.Query(positionType)
	for cursor.Next() {
		xs = append(xs, cursor.Component(positionType)["x"].(float64))
	}
	if len(xs) != 4 {
		t.Fatalf("matched %d entities, want 4", len(xs))
	}
	sum := 0.0
	for _, x := range xs {
		sum += x
	}
	if sum != 10 {
		t.Errorf("sum of matched x values = %v, want 10", sum)
	}
}

func TestCursorHelpers(t *testing.T) {
	world := Factory.NewWorld()

	for i := 0; i < 3; i++ {
		e := world.CreateEntity()
		if err := world.AddEntityWithComponents(e, Values{positionType: {"x": i}}); err != nil {
			t.Fatalf("AddEntityWithComponents failed: %v", err)
		}
	}

	cursor := world.Query(positionType)
	if total := cursor.TotalMatched(); total != 3 {
		t.Errorf("TotalMatched() = %d, want 3", total)
	}
	cursor.Reset()

	accessor := NewAccessor(positionType)
	missing := NewAccessor(healthType)
	count := 0
	for cursor.Next() {
		count++
		if rec := accessor.GetFromCursor(cursor); rec == nil {
			t.Error("accessor read nil record for present component")
		}
		if ok, _ := missing.GetFromCursorSafe(cursor); ok {
			t.Error("accessor reported presence for missing component")
		}
	}
	if count != 3 {
		t.Errorf("iterated %d entities, want 3", count)
	}

	// Each() yields entity and fetch-ordered tuple
	seen := 0
	for e, tuple := range world.Query(positionType).Each() {
		seen++
		if e == 0 {
			t.Error("Each() yielded zero entity")
		}
		if len(tuple) != 1 {
			t.Errorf("Each() tuple len = %d, want 1", len(tuple))
		}
	}
	if seen != 3 {
		t.Errorf("Each() visited %d entities, want 3", seen)
	}
}
