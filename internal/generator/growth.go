package generator

// StaticGrowth is a config-backed GrowthProvider: per-year overrides with
// a flat default.
type StaticGrowth struct {
	Default float64
	Years   map[int]float64
}

func (s StaticGrowth) GrowthRate(year int) float64 {
	if rate, ok := s.Years[year]; ok {
		return rate
	}
	return s.Default
}
