package sim_test

import (
	"os"
	"path/filepath"
	"testing"

	"go.uber.org/zap"

	"github.com/l1jgo/ecs"
	"github.com/l1jgo/ecs/internal/data"
	"github.com/l1jgo/ecs/internal/scripting"
	"github.com/l1jgo/ecs/internal/sim"
)

func TestSpawnAttachesComponents(t *testing.T) {
	m := ecs.NewManager()
	env := &sim.Env{Log: zap.NewNop()}

	ids := sim.Spawn(m, env, []data.ActorTemplate{
		{Name: "player", Count: 1, Health: 15, PoisonRate: 5},
		{Name: "rat", Count: 2, Health: 4},
	})
	if len(ids) != 3 {
		t.Fatalf("spawned %d entities, want 3", len(ids))
	}

	player := m.GetByID(ids[0])
	if n := ecs.Get[sim.Name](player); n == nil || n.Value != "player" {
		t.Errorf("player name = %+v", n)
	}
	if h := ecs.Get[sim.Health](player); h == nil || h.HP != 15 {
		t.Errorf("player health = %+v", h)
	}
	if !ecs.Has[sim.Poison](player) {
		t.Error("player missing poison")
	}

	rat := m.GetByID(ids[1])
	if ecs.Has[sim.Poison](rat) {
		t.Error("unpoisoned actor carries poison")
	}
}

func TestPoisonKillsOverSteps(t *testing.T) {
	m := ecs.NewManager()
	env := &sim.Env{Log: zap.NewNop()}
	ids := sim.Spawn(m, env, []data.ActorTemplate{
		{Name: "player", Count: 1, Health: 15, PoisonRate: 5},
		{Name: "bystander", Count: 1, Health: 2},
	})

	for step := 1; step <= 3; step++ {
		env.Step = step
		m.Step()
	}

	if m.GetByID(ids[0]) != nil {
		t.Error("poisoned actor survived three lethal steps")
	}
	if m.GetByID(ids[1]) == nil {
		t.Error("unpoisoned actor died")
	}
}

func TestRecoverHealsSurvivors(t *testing.T) {
	m := ecs.NewManager()
	env := &sim.Env{Log: zap.NewNop()}
	ids := sim.Spawn(m, env, []data.ActorTemplate{
		{Name: "a", Count: 1, Health: 3},
		{Name: "b", Count: 1, Health: 7},
	})

	sim.Recover(m, 2)

	if h := ecs.Get[sim.Health](m.GetByID(ids[0])); h == nil || h.HP != 5 {
		t.Errorf("a healed to %+v, want 5", h)
	}
	if h := ecs.Get[sim.Health](m.GetByID(ids[1])); h == nil || h.HP != 9 {
		t.Errorf("b healed to %+v, want 9", h)
	}
}

func TestRecoverNoopCases(t *testing.T) {
	m := ecs.NewManager()
	sim.Recover(m, 1) // no health store exists yet

	env := &sim.Env{Log: zap.NewNop()}
	ids := sim.Spawn(m, env, []data.ActorTemplate{{Name: "a", Count: 1, Health: 3}})

	sim.Recover(m, 0)
	if h := ecs.Get[sim.Health](m.GetByID(ids[0])); h == nil || h.HP != 3 {
		t.Errorf("health after zero recovery = %+v, want 3", h)
	}
}

func TestScriptedPoisonOverridesRate(t *testing.T) {
	dir := t.TempDir()
	script := "function poison_damage(ctx) return 1 end"
	if err := os.WriteFile(filepath.Join(dir, "poison.lua"), []byte(script), 0o644); err != nil {
		t.Fatal(err)
	}
	eng, err := scripting.NewEngine(dir, zap.NewNop())
	if err != nil {
		t.Fatal(err)
	}
	defer eng.Close()

	m := ecs.NewManager()
	env := &sim.Env{Log: zap.NewNop(), Script: eng}
	ids := sim.Spawn(m, env, []data.ActorTemplate{
		{Name: "p", Count: 1, Health: 5, PoisonRate: 3},
	})

	env.Step = 1
	m.Step()

	if h := ecs.Get[sim.Health](m.GetByID(ids[0])); h == nil || h.HP != 4 {
		t.Errorf("health = %+v, want 4 under scripted damage 1", h)
	}
}
