package matchgraph

// SelectShortlist takes the first n tier-1 candidates in roster order.
// It does not sort by score and never pads.
func SelectShortlist(tier1 []Candidate, n int) []Match {
	if n < 0 {
		n = 0
	}
	if len(tier1) < n {
		n = len(tier1)
	}
	out := make([]Match, 0, n)
	for _, c := range tier1[:n] {
		out = append(out, Match{
			Name:             c.Guest.Name,
			DiscussionTopics: append([]string{}, c.Guest.DiscussionTopics...),
			Description:      c.Guest.TalkingPoints(),
			MatchingScore:    c.Score,
		})
	}
	return out
}
