// Profiling:
// go build ./profile/world
// go tool pprof -http=":8000" -nodefraction=0.001 ./world cpu.pprof

package main

import (
	"github.com/pkg/profile"

	"github.com/TheBitDrifter/silo"
	"github.com/TheBitDrifter/silo/column"
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

func main() {
	rounds := 50
	iters := 200
	entities := 1000
	p := profile.Start(profile.CPUProfile, profile.ProfilePath("."), profile.NoShutdownHook)
	run(rounds, iters, entities)
	p.Stop()
}

func run(rounds, iters, numEntities int) {
	for r := 0; r < rounds; r++ {
		world := silo.Factory.NewWorld()

		spawned := make([]silo.Entity, 0, numEntities)
		for i := 0; i < numEntities; i++ {
			e := world.CreateEntity()
			err := world.AddEntityWithComponents(e, silo.Values{
				position: {"x": float64(i)},
				velocity: {"dx": 1.0, "dy": 1.0},
			})
			if err != nil {
				panic(err)
			}
			spawned = append(spawned, e)
		}

		for i := 0; i < iters; i++ {
			cursor := world.Query(position, velocity)
			for cursor.Next() {
				pos := cursor.Component(position)
				vel := cursor.Component(velocity)
				next := column.Record{
					"x": pos["x"].(float64) + vel["dx"].(float64),
					"y": pos["y"].(float64) + vel["dy"].(float64),
				}
				if err := world.EnqueueAddComponent(cursor.Entity(), position, next); err != nil {
					panic(err)
				}
			}
		}

		for _, e := range spawned {
			if err := world.DestroyEntity(e); err != nil {
				panic(err)
			}
		}
	}
}
