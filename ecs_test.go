package ecs_test

import (
	"github.com/l1jgo/ecs"
)

// Health drains under poison. Its pass runs after every default-priority
// store, and an owner at or below zero is destroyed during it.
type Health struct {
	HP int
}

func (Health) Priority() uint32 { return 0 }

func (h *Health) Update(e *ecs.Entity) {
	if h.HP <= 0 {
		e.Destroy()
	}
}

// PoisonDamage subtracts its rate from the owner's Health each step, at
// default priority.
type PoisonDamage struct {
	Rate int
}

func (p *PoisonDamage) Update(e *ecs.Entity) {
	if h := ecs.Get[Health](e); h != nil {
		h.HP -= p.Rate
	}
}

// vitalSign records the owner's Health value between the poison pass and
// the health pass.
type vitalSign struct {
	seen *[]int
}

func (vitalSign) Priority() uint32 { return 100 }

func (v *vitalSign) Update(e *ecs.Entity) {
	if h := ecs.Get[Health](e); h != nil {
		*v.seen = append(*v.seen, h.HP)
	}
}

// probe records every update call and destroys its victim, once, the first
// time it runs.
type probe struct {
	seen   *[]ecs.EntityID
	victim *ecs.Entity
}

func (p *probe) Update(e *ecs.Entity) {
	*p.seen = append(*p.seen, e.ID())
	if p.victim != nil {
		v := p.victim
		p.victim = nil
		v.Destroy()
	}
}

// marked carries on-add / on-remove hooks that append to a shared trace.
type marked struct {
	tag   string
	trace *[]string
}

func (m *marked) OnAdd(e *ecs.Entity) {
	*m.trace = append(*m.trace, "add:"+m.tag)
}

func (m *marked) OnRemove(e *ecs.Entity) {
	*m.trace = append(*m.trace, "remove:"+m.tag)
}

// passHigh, passMid and passLow exist to observe store execution order.
type passHigh struct {
	log *[]string
}

func (passHigh) Priority() uint32 { return 10 }

func (p *passHigh) Update(e *ecs.Entity) {
	*p.log = append(*p.log, "high")
}

type passMid struct {
	log *[]string
}

func (passMid) Priority() uint32 { return 5 }

func (p *passMid) Update(e *ecs.Entity) {
	*p.log = append(*p.log, "mid")
}

type passMidTwo struct {
	log *[]string
}

func (passMidTwo) Priority() uint32 { return 5 }

func (p *passMidTwo) Update(e *ecs.Entity) {
	*p.log = append(*p.log, "mid2")
}

type passLow struct {
	log *[]string
}

func (passLow) Priority() uint32 { return 0 }

func (p *passLow) Update(e *ecs.Entity) {
	*p.log = append(*p.log, "low")
}

// tagged is inert data with no hooks at all.
type tagged struct {
	Label string
}
