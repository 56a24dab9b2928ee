package runngun

import "math"

// EntitySnapshot is the observable state of one entity.
type EntitySnapshot struct {
	ID     EntityID
	Kind   Kind
	X, Y   float64
	VX, VY float64
}

// Snapshot captures the session for determinism testing and replay.
type Snapshot struct {
	Tick             uint64
	State            SessionState
	Score            int
	PlayerHP         int
	BulletSpeedLevel int
	FireRateLevel    int
	Entities         []EntitySnapshot
}

// Snapshot returns the current session snapshot.
func (s *Session) Snapshot() Snapshot {
	snap := Snapshot{
		Tick:     s.tick,
		State:    s.state,
		Score:    s.score,
		Entities: make([]EntitySnapshot, 0, len(s.entities)),
	}
	if p := s.player; p != nil {
		snap.PlayerHP = p.HP
		snap.BulletSpeedLevel = p.BulletSpeedLevel
		snap.FireRateLevel = p.FireRateLevel
	}
	for _, e := range s.entities {
		b := e.Base()
		snap.Entities = append(snap.Entities, EntitySnapshot{
			ID: b.ID, Kind: b.Kind,
			X: b.Pos.X, Y: b.Pos.Y,
			VX: b.Vel.X, VY: b.Vel.Y,
		})
	}
	return snap
}

// Hash returns a simple hash of the snapshot for quick comparison.
// Positions are hashed by bit pattern, so any divergence shows.
func (s Snapshot) Hash() uint64 {
	h := s.Tick
	h = h*31 + uint64(s.State)
	h = h*31 + uint64(s.Score)
	h = h*31 + uint64(s.PlayerHP)
	h = h*31 + uint64(s.BulletSpeedLevel)
	h = h*31 + uint64(s.FireRateLevel)
	for _, e := range s.Entities {
		h = h*31 + uint64(e.ID)
		h = h*31 + uint64(e.Kind)
		h = h*31 + math.Float64bits(e.X)
		h = h*31 + math.Float64bits(e.Y)
		h = h*31 + math.Float64bits(e.VX)
		h = h*31 + math.Float64bits(e.VY)
	}
	return h
}
