// Package shooter implements a vertical shooter: the ship fires
// continuously while enemies fall from the top of the field.
package shooter

import (
	"github.com/vovakirdan/pixel-arcade/internal/config"
	"github.com/vovakirdan/pixel-arcade/internal/core"
)

// State is one shooter session. Step and MovePlayer return new values and
// never modify their input.
type State struct {
	Field   core.Size
	Player  core.RectF
	Bullets []core.RectF
	Enemies []core.RectF
	Score   int
	Lost    bool
}

// NewState places the ship at the bottom center of an empty field.
func NewState(cfg config.ShooterConfig) State {
	return State{
		Field: core.Size{W: cfg.Field.Width, H: cfg.Field.Height},
		Player: core.NewRectF(
			(cfg.Field.Width-cfg.Player.Width)/2,
			cfg.Field.Height-cfg.Player.BottomOffset,
			cfg.Player.Width,
			cfg.Player.Height,
		),
	}
}

// MovePlayer centers the ship on pointer x, keeping it fully on the field.
func MovePlayer(s State, pointerX float64) State {
	if s.Lost {
		return s
	}
	s.Player.X = core.ClampF(pointerX-s.Player.W/2, 0, s.Field.W-s.Player.W)
	return s
}

// Step advances the field by one tick. Bullets that reached the top and
// enemies that reached the bottom are dropped before the rest move; then an
// enemy may spawn, the ship fires, bullets destroy what they overlap and
// any enemy touching the ship ends the game.
func Step(prev State, cfg config.ShooterConfig, rng core.Rand) State {
	if prev.Lost {
		return prev
	}
	s := prev

	s.Bullets = advance(prev.Bullets, func(b core.RectF) bool { return b.Y > 0 }, -cfg.Bullet.Speed)
	s.Enemies = advance(prev.Enemies, func(e core.RectF) bool { return e.Y < s.Field.H }, cfg.Enemy.Speed)

	if rng.Float64() < cfg.Enemy.SpawnChance {
		x := rng.Float64() * (s.Field.W - cfg.Enemy.Width)
		s.Enemies = append(s.Enemies, core.NewRectF(x, 0, cfg.Enemy.Width, cfg.Enemy.Height))
	}

	s.Bullets = append(s.Bullets, core.NewRectF(
		s.Player.X+s.Player.W/2-cfg.Bullet.Width/2,
		s.Player.Y,
		cfg.Bullet.Width,
		cfg.Bullet.Height,
	))

	var kills int
	s.Bullets, s.Enemies, kills = resolveHits(s.Bullets, s.Enemies)
	s.Score += kills * cfg.Enemy.Points

	for _, e := range s.Enemies {
		if e.Intersects(s.Player) {
			s.Lost = true
			break
		}
	}
	return s
}

// advance returns a new slice of the rects that pass keep, each moved
// vertically by dy.
func advance(in []core.RectF, keep func(core.RectF) bool, dy float64) []core.RectF {
	out := make([]core.RectF, 0, len(in)+1)
	for _, r := range in {
		if keep(r) {
			r.Y += dy
			out = append(out, r)
		}
	}
	return out
}

// resolveHits removes every enemy overlapped by a bullet, and every bullet
// that overlapped at least one enemy. Bullets are checked in order, so an
// enemy removed by an earlier bullet cannot absorb a later one.
func resolveHits(bullets, enemies []core.RectF) ([]core.RectF, []core.RectF, int) {
	alive := make([]bool, len(enemies))
	for i := range alive {
		alive[i] = true
	}

	kills := 0
	keptBullets := make([]core.RectF, 0, len(bullets))
	for _, b := range bullets {
		hit := false
		for i, e := range enemies {
			if alive[i] && b.Intersects(e) {
				alive[i] = false
				kills++
				hit = true
			}
		}
		if !hit {
			keptBullets = append(keptBullets, b)
		}
	}

	keptEnemies := make([]core.RectF, 0, len(enemies))
	for i, e := range enemies {
		if alive[i] {
			keptEnemies = append(keptEnemies, e)
		}
	}
	return keptBullets, keptEnemies, kills
}
