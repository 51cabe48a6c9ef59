package core

import "time"

// RecomputeGate rate-limits full recomputes. Parameter edits mark the gate
// dirty; Ready lets at most one recompute through per interval and keeps the
// request pending until then, so the last edit always gets rendered.
type RecomputeGate struct {
	interval time.Duration
	last     time.Time
	dirty    bool

	now func() time.Time
}

// NewRecomputeGate allows up to perSecond recomputes per second.
func NewRecomputeGate(perSecond int) *RecomputeGate {
	g := &RecomputeGate{now: time.Now, dirty: true}
	g.SetRate(perSecond)
	return g
}

// SetRate changes the allowed recompute rate.
func (g *RecomputeGate) SetRate(perSecond int) {
	if perSecond <= 0 {
		perSecond = 30
	}
	g.interval = time.Second / time.Duration(perSecond)
}

// MarkDirty requests a recompute.
func (g *RecomputeGate) MarkDirty() { g.dirty = true }

// Dirty reports whether a recompute is pending.
func (g *RecomputeGate) Dirty() bool { return g.dirty }

// Ready reports whether a pending recompute should run now and, if so,
// clears the request.
func (g *RecomputeGate) Ready() bool {
	if !g.dirty {
		return false
	}
	now := g.now()
	if !g.last.IsZero() && now.Sub(g.last) < g.interval {
		return false
	}
	g.last = now
	g.dirty = false
	return true
}
