// Profiling:
// go build ./profile/step
// go tool pprof -http=":8000" -nodefraction=0.001 ./step cpu.pprof

package main

import (
	"github.com/l1jgo/ecs"
	"github.com/pkg/profile"
)

type velocity struct {
	DX float64
	DY float64
}

type position struct {
	X float64
	Y float64
}

func (p *position) Update(e *ecs.Entity) {
	if v := ecs.Get[velocity](e); v != nil {
		p.X += v.DX
		p.Y += v.DY
	}
}

func main() {
	rounds := 10
	steps := 500
	entities := 200
	p := profile.Start(profile.CPUProfile, profile.ProfilePath("."), profile.NoShutdownHook)
	run(rounds, steps, entities)
	p.Stop()
}

func run(rounds, steps, numEntities int) {
	for r := 0; r < rounds; r++ {
		m := ecs.NewManager()
		es := m.CreateEntities(numEntities)
		for i, e := range es {
			ecs.Add(e, position{})
			ecs.Add(e, velocity{DX: float64(i % 3), DY: float64(i % 5)})
		}
		for s := 0; s < steps; s++ {
			m.Step()
		}
		for _, e := range es {
			e.Destroy()
		}
	}
}
