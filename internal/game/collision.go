package game

import "github.com/vovakirdan/birdfeed/internal/config"

// Bonus returns the calm bonus for catching food after idle frames without
// any button held.
func Bonus(idle uint32, rules config.ScoringConfig) int {
	b := idle / 2
	if b > uint32(rules.BonusCap) {
		b = uint32(rules.BonusCap)
	}
	if b < uint32(rules.BonusFloor) {
		return 0
	}
	return int(b)
}

// AddScore adds points to score, saturating at ceiling.
func AddScore(score uint32, points, ceiling int) uint32 {
	if points < 0 {
		points = 0
	}
	sum := uint64(score) + uint64(points)
	if sum > uint64(ceiling) {
		return uint32(ceiling)
	}
	return uint32(sum)
}

// updateFoods moves every enabled entity in slot order and resolves catches
// and escapes.
func updateFoods(s *State, env *Env) {
	box := s.Character.Box()
	scroll := s.Character.Scroll

	for i := range s.Foods.Slots {
		f := &s.Foods.Slots[i]
		if !f.Enabled {
			continue
		}
		s.Foods.Move(i, s.Frame)

		switch {
		case box.Intersects(f.Box(scroll)):
			catchFood(s, env, i)
		case f.OutOfRange():
			s.Stats.Escaped++
			s.Foods.Disable(i, env.Renderer)
		default:
			s.Foods.Animate(i, s.Frame)
			s.Foods.Redraw(i, env.Renderer, scroll)
		}
	}
}

func catchFood(s *State, env *Env, i int) {
	f := &s.Foods.Slots[i]
	rules := env.Rules.Scoring

	bonus := Bonus(s.Frame-s.LastInput, rules)
	s.Score = AddScore(s.Score, f.Value+bonus, rules.MaxScore)
	s.Stats.Caught[f.Type]++
	sfxCatch.play(env.Audio)
	s.Foods.Disable(i, env.Renderer)
}

// spawnFood fills the first available slot when the gate draw passes.
func spawnFood(s *State, env *Env) {
	slot := s.Foods.NextAvailableSlot(s.Frame - s.GameStart)
	if slot < 0 {
		return
	}
	if int(env.RNG.Next()) <= env.Rules.Food.SpawnThreshold {
		return
	}

	f := s.Foods.Spawn(slot, env.RNG, s.Frame)
	s.Stats.Spawned[f.Type]++
	if f.Type == FoodBerry {
		sfxBerry.play(env.Audio)
	}
	s.Foods.Redraw(slot, env.Renderer, s.Character.Scroll)
}
