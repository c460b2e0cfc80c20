package silo_bench

import (
	"testing"

	"github.com/TheBitDrifter/silo"
	"github.com/TheBitDrifter/silo/column"
)

// go test -bench=. ./silo_bench -benchmem

const (
	nPos    = 9000
	nPosVel = 1000
)

var (
	position = silo.NewComponentType("position",
		column.Field{Name: "x", Kind: column.Float64},
		column.Field{Name: "y", Kind: column.Float64},
	)
	velocity = silo.NewComponentType("velocity",
		column.Field{Name: "dx", Kind: column.Float64},
		column.Field{Name: "dy", Kind: column.Float64},
	)
)

func setupWorld(b *testing.B) silo.World {
	b.Helper()
	world := silo.Factory.NewWorld()
	for i := 0; i < nPos; i++ {
		e := world.CreateEntity()
		if err := world.AddEntityWithComponents(e, silo.Values{position: nil}); err != nil {
			b.Fatal(err)
		}
	}
	for i := 0; i < nPosVel; i++ {
		e := world.CreateEntity()
		err := world.AddEntityWithComponents(e, silo.Values{
			position: {"x": float64(i)},
			velocity: {"dx": 1.0, "dy": 1.0},
		})
		if err != nil {
			b.Fatal(err)
		}
	}
	return world
}

func BenchmarkIterCursorGet(b *testing.B) {
	b.StopTimer()
	world := setupWorld(b)
	b.StartTimer()

	for i := 0; i < b.N; i++ {
		cursor := world.Query(position, velocity)
		for cursor.Next() {
			pos := cursor.Component(position)
			vel := cursor.Component(velocity)
			_ = pos["x"].(float64) + vel["dx"].(float64)
		}
	}
}

func BenchmarkCreateDestroy(b *testing.B) {
	world := silo.Factory.NewWorld()
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		e := world.CreateEntity()
		if err := world.AddEntityWithComponents(e, silo.Values{position: nil}); err != nil {
			b.Fatal(err)
		}
		if err := world.DestroyEntity(e); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkMigration(b *testing.B) {
	world := silo.Factory.NewWorld()
	e := world.CreateEntity()
	if err := world.AddEntityWithComponents(e, silo.Values{position: {"x": 1.0}}); err != nil {
		b.Fatal(err)
	}
	value := column.Record{"dx": 1.0, "dy": 2.0}
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		if err := world.AddComponent(e, velocity, value); err != nil {
			b.Fatal(err)
		}
		if err := world.RemoveComponent(e, velocity); err != nil {
			b.Fatal(err)
		}
	}
}
