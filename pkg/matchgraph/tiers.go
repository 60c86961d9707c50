package matchgraph

import "github.com/guestmatch/guestmatch/pkg/roster"

// TierOf buckets a score. A perfect score belongs to no tier so that an
// identical duplicate of the viewer is never linked or shortlisted.
func TierOf(score int) Tier {
	switch {
	case score >= PerfectScore:
		return TierNone
	case score >= Tier1Floor:
		return Tier1
	case score >= Tier2Floor:
		return Tier2
	case score >= Tier3Floor:
		return Tier3
	default:
		return Tier4
	}
}

// Classify partitions every guest except the viewer into tiers, keeping
// roster order within each tier.
func Classify(viewer roster.Guest, r *roster.Roster) Tiers {
	var ts Tiers
	for i := 0; i < r.Len(); i++ {
		g := r.At(i)
		if g.Name == viewer.Name {
			continue
		}
		c := Candidate{Guest: g, Score: Resolve(viewer, g)}
		switch TierOf(c.Score) {
		case Tier1:
			ts.Tier1 = append(ts.Tier1, c)
		case Tier2:
			ts.Tier2 = append(ts.Tier2, c)
		case Tier3:
			ts.Tier3 = append(ts.Tier3, c)
		case Tier4:
			ts.Tier4 = append(ts.Tier4, c)
		}
	}
	return ts
}
