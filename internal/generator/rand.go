package generator

import "time"

// intBetween draws an integer uniformly from [low, high], both inclusive.
func (g *Generator) intBetween(low, high int) int {
	return low + g.rng.Intn(high-low+1)
}

// uniform draws a float uniformly from [low, high).
func (g *Generator) uniform(low, high float64) float64 {
	return low + g.rng.Float64()*(high-low)
}

// sample picks n distinct members from pool without replacement.
func (g *Generator) sample(pool []ConsultantView, n int) []ConsultantView {
	picked := make([]ConsultantView, 0, n)
	for _, idx := range g.rng.Perm(len(pool))[:n] {
		picked = append(picked, pool[idx])
	}
	return picked
}

func dateOf(year int, month time.Month, day int) time.Time {
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}

// daysBetween is the whole-day distance from a to b, negative when b is
// before a. Both arguments are expected at UTC midnight.
func daysBetween(a, b time.Time) int {
	return int(b.Sub(a).Hours() / 24)
}
