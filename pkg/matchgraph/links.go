package matchgraph

// BuildLinks connects every member of each tier to every member of the next
// tier down. Tiers are never linked to themselves or across a gap.
func BuildLinks(ts Tiers, layout Layout) []Link {
	n := len(ts.Tier1)*len(ts.Tier2) + len(ts.Tier2)*len(ts.Tier3) + len(ts.Tier3)*len(ts.Tier4)
	links := make([]Link, 0, n)
	links = appendCrossLinks(links, ts.Tier1, ts.Tier2, layout.Tier1ToTier2)
	links = appendCrossLinks(links, ts.Tier2, ts.Tier3, layout.Tier2ToTier3)
	links = appendCrossLinks(links, ts.Tier3, ts.Tier4, layout.Tier3ToTier4)
	return links
}

func appendCrossLinks(links []Link, sources, targets []Candidate, rule DistanceRule) []Link {
	for _, src := range sources {
		for _, dst := range targets {
			links = append(links, Link{
				Source:   src.Guest.Name,
				Target:   dst.Guest.Name,
				Value:    dst.Score,
				Distance: rule.Distance(dst.Score),
			})
		}
	}
	return links
}
