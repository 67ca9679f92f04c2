package sim

import (
	"go.uber.org/zap"

	"github.com/l1jgo/ecs"
	"github.com/l1jgo/ecs/internal/scripting"
)

// Env is shared by every simulation component. One Env per run; the driver
// advances Step before each Manager.Step call.
type Env struct {
	Log    *zap.Logger
	Script *scripting.Engine
	Step   int
}

// Name labels an actor.
type Name struct {
	Value string
	Env   *Env
}

func (n *Name) OnAdd(e *ecs.Entity) {
	n.Env.Log.Debug("actor spawned",
		zap.String("name", n.Value),
		zap.Uint64("entity", uint64(e.ID())))
}

func (n *Name) OnRemove(e *ecs.Entity) {
	n.Env.Log.Debug("actor removed",
		zap.String("name", n.Value),
		zap.Uint64("entity", uint64(e.ID())))
}

// Health destroys its owner when it falls to zero or below. Priority 0 puts
// the death check after every damage pass.
type Health struct {
	HP  int
	Env *Env
}

func (Health) Priority() uint32 { return 0 }

func (h *Health) Update(e *ecs.Entity) {
	if h.HP > 0 {
		return
	}
	h.Env.Log.Info("actor died",
		zap.String("name", actorName(e)),
		zap.Uint64("entity", uint64(e.ID())),
		zap.Int("step", h.Env.Step))
	e.Destroy()
}

// Poison drains the owner's Health once per step, at default priority so it
// lands before the Health pass. A loaded poison_damage script overrides the
// flat rate.
type Poison struct {
	Rate int
	Env  *Env
}

func (p *Poison) Update(e *ecs.Entity) {
	h := ecs.Get[Health](e)
	if h == nil {
		return
	}
	dmg := p.Rate
	if p.Env.Script != nil {
		if d, ok := p.Env.Script.PoisonDamage(scripting.PoisonContext{
			Actor:  actorName(e),
			Health: h.HP,
			Rate:   p.Rate,
			Step:   p.Env.Step,
		}); ok {
			dmg = d
		}
	}
	h.HP -= dmg
}

func actorName(e *ecs.Entity) string {
	if n := ecs.Get[Name](e); n != nil {
		return n.Value
	}
	return "?"
}
