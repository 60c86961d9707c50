package matchgraph

// Score thresholds. Each band includes its lower bound.
const (
	PerfectScore = 100
	Tier1Floor   = 90
	Tier2Floor   = 70
	Tier3Floor   = 50
)

// DefaultShortlistSize is the number of top matches surfaced to the viewer.
// It is also the upper bound: a Builder never returns more.
const DefaultShortlistSize = 5

// DistanceRule computes a link distance from the target's score:
// Base - score*PerPoint.
type DistanceRule struct {
	Base     int
	PerPoint int
}

// Distance applies the rule to a target score.
func (d DistanceRule) Distance(targetScore int) int {
	return d.Base - targetScore*d.PerPoint
}

// Layout holds the tunable knobs of graph construction.
type Layout struct {
	ShortlistSize int

	// Per tier-pair distance rules. The coefficients differ on purpose.
	Tier1ToTier2 DistanceRule
	Tier2ToTier3 DistanceRule
	Tier3ToTier4 DistanceRule
}

// Defaults returns the standard layout.
func Defaults() Layout {
	return Layout{
		ShortlistSize: DefaultShortlistSize,
		Tier1ToTier2:  DistanceRule{Base: 1000, PerPoint: 20},
		Tier2ToTier3:  DistanceRule{Base: 500, PerPoint: 20},
		Tier3ToTier4:  DistanceRule{Base: 500, PerPoint: 100},
	}
}
