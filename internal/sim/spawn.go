package sim

import (
	"github.com/l1jgo/ecs"
	"github.com/l1jgo/ecs/internal/data"
)

// Spawn instantiates every scenario actor and returns their entity ids in
// spawn order.
func Spawn(m *ecs.Manager, env *Env, actors []data.ActorTemplate) []ecs.EntityID {
	var ids []ecs.EntityID
	for _, tpl := range actors {
		for i := 0; i < tpl.Count; i++ {
			e := m.CreateEntity()
			ecs.Add(e, Name{Value: tpl.Name, Env: env})
			ecs.Add(e, Health{HP: tpl.Health, Env: env})
			if tpl.PoisonRate > 0 {
				ecs.Add(e, Poison{Rate: tpl.PoisonRate, Env: env})
			}
			ids = append(ids, e.ID())
		}
	}
	return ids
}

// Recover restores amount health to every surviving actor by transforming a
// snapshot of the health store and swapping it back in.
func Recover(m *ecs.Manager, amount int) {
	if amount == 0 {
		return
	}
	snap := ecs.SnapshotStore[Health](m)
	if snap == nil {
		return
	}
	snap.Each(func(_ ecs.EntityID, h *Health) { h.HP += amount })
	ecs.ReplaceStore(m, snap)
}
