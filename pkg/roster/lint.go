package roster

import (
	"fmt"
	"sort"
)

// Issue is a non-fatal problem found in a roster. Scores keyed by a name
// that is not spelled exactly like a guest are silently treated as 0 by
// lookups, so they are worth surfacing before an event.
type Issue struct {
	Guest   string
	Message string
}

func (i Issue) String() string {
	return i.Guest + ": " + i.Message
}

// Lint reports issues in roster order.
func Lint(r *Roster) []Issue {
	var issues []Issue
	for _, g := range r.Guests() {
		if len(g.DiscussionTopics) == 0 {
			issues = append(issues, Issue{Guest: g.Name, Message: "has no discussion topics"})
		}

		peers := make([]string, 0, len(g.MatchingScores))
		for peer := range g.MatchingScores {
			peers = append(peers, peer)
		}
		sort.Strings(peers)

		for _, peer := range peers {
			match, ok := r.Find(peer)
			switch {
			case !ok:
				issues = append(issues, Issue{Guest: g.Name, Message: fmt.Sprintf("scores unknown guest %q", peer)})
			case match.Name != peer:
				issues = append(issues, Issue{Guest: g.Name, Message: fmt.Sprintf("score key %q does not match %q exactly and is ignored", peer, match.Name)})
			case match.Name == g.Name:
				issues = append(issues, Issue{Guest: g.Name, Message: "scores itself"})
			}
		}
	}
	return issues
}
