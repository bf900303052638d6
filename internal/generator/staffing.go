package generator

import "sort"

// Senior title tiers, scanned in this fixed order; the first non-empty
// tier contributes exactly one member.
var seniorTitleIDs = []int{5, 6}

const (
	minAdditionalMembers = 2
	maxAdditionalMembers = 5
)

// assignTeam builds a team from the year's pool: one consultant from the
// first non-empty senior tier (when any), then 2-5 more sampled without
// replacement from everyone left. An empty pool yields an empty team.
func (g *Generator) assignTeam(pool []ConsultantView) []ConsultantView {
	byTitle := make(map[int][]ConsultantView)
	for _, c := range pool {
		if c.TitleID == 0 {
			continue
		}
		byTitle[c.TitleID] = append(byTitle[c.TitleID], c)
	}

	team := make([]ConsultantView, 0, 1+maxAdditionalMembers)
	for _, titleID := range seniorTitleIDs {
		candidates := byTitle[titleID]
		if len(candidates) == 0 {
			continue
		}
		pick := g.rng.Intn(len(candidates))
		team = append(team, candidates[pick])
		byTitle[titleID] = append(candidates[:pick:pick], candidates[pick+1:]...)
		break
	}

	// Flatten the remainder in title order so a fixed seed replays the
	// same draws.
	titles := make([]int, 0, len(byTitle))
	for titleID := range byTitle {
		titles = append(titles, titleID)
	}
	sort.Ints(titles)

	var rest []ConsultantView
	for _, titleID := range titles {
		rest = append(rest, byTitle[titleID]...)
	}

	n := g.intBetween(minAdditionalMembers, maxAdditionalMembers)
	if n > len(rest) {
		n = len(rest)
	}
	return append(team, g.sample(rest, n)...)
}
