package runngun

import (
	"github.com/vovakirdan/runngun/internal/config"
)

// Roller supplies the randomness of enemy drops. *core.SimpleRNG satisfies
// it; tests substitute fixed sequences.
type Roller interface {
	Float64() float64
}

// ResolveInteractions runs the per-tick combat and pickup pass over the live
// set and returns the score earned. Drops are handed to spawn.
//
// Order matters and is fixed: enemy bodies hurt the player, then every bullet
// is tested, then pickups are collected.
func ResolveInteractions(entities []Entity, spawn func(Entity), cfg *config.RunGunConfig, rng Roller) int {
	player := findPlayer(entities)
	if player == nil {
		return 0
	}

	var (
		enemies []Enemy
		bullets []*Bullet
		pickups []*Pickup
	)
	for _, e := range entities {
		if !e.Base().Active {
			continue
		}
		switch v := e.(type) {
		case Enemy:
			enemies = append(enemies, v)
		case *Bullet:
			bullets = append(bullets, v)
		case *Pickup:
			pickups = append(pickups, v)
		}
	}

	playerBox := player.Bounds()

	// One damage point per touching enemy; the invincibility window absorbs
	// everything after the first.
	for _, enemy := range enemies {
		if Overlap(playerBox, enemy.Base().Bounds()) {
			player.TakeDamage(1)
		}
	}

	score := 0
	for _, b := range bullets {
		box := b.Bounds()
		if !b.FromPlayer {
			if Overlap(box, playerBox) {
				b.Active = false
				player.TakeDamage(1)
			}
			continue
		}

		for _, enemy := range enemies {
			body := enemy.Base()
			// An enemy killed earlier in this pass can neither absorb
			// another bullet nor score twice.
			if !body.Active || !Overlap(box, body.Bounds()) {
				continue
			}
			b.Active = false
			enemy.TakeDamage(1)
			if !body.Active {
				score += enemy.ScoreValue()
				rollDrop(body, spawn, cfg, rng)
			}
			break
		}
	}

	for _, p := range pickups {
		if Overlap(playerBox, p.Bounds()) {
			p.Active = false
			p.PickupKind.Apply(player)
		}
	}

	return score
}

// rollDrop spawns a pickup where a killed enemy stood, with the configured
// chance and an even split between kinds.
func rollDrop(at *Body, spawn func(Entity), cfg *config.RunGunConfig, rng Roller) {
	if rng == nil || spawn == nil {
		return
	}
	if rng.Float64() >= cfg.Pickups.DropChance {
		return
	}
	kind := PickupFireRate
	if rng.Float64() < 0.5 {
		kind = PickupBulletSpeed
	}
	spawn(NewPickup(at.Pos.X, at.Pos.Y, kind, cfg))
}
