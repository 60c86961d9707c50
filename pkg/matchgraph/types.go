// Package matchgraph turns a guest roster into a render-ready match graph
// for one viewer: colored nodes, affinity tiers, inter-tier links with
// layout distances, and a short list of top matches.
//
// Everything here is pure. A Result is built from scratch on every call and
// is never mutated afterwards, so Build may be called concurrently against a
// shared roster.
package matchgraph

import "github.com/guestmatch/guestmatch/pkg/roster"

// Node groups.
const (
	GroupViewer = 1
	GroupGuest  = 2
)

// Result is the complete output of building a graph for one viewer.
type Result struct {
	Viewer    string  `json:"viewer"` // canonical roster name of the viewer
	Nodes     []Node  `json:"nodes"`
	Links     []Link  `json:"links"`
	Shortlist []Match `json:"shortlist"`
	Tiers     Tiers   `json:"-"`
}

// Node is one guest as seen by the viewer.
type Node struct {
	ID            string `json:"id"`
	Name          string `json:"name"`
	Group         int    `json:"group"`
	Description   string `json:"description"`             // talking points, one per line
	MatchingScore *int   `json:"matchingScore,omitempty"` // nil for the viewer's own node
	Color         string `json:"color"`
	Tier          Tier   `json:"tier,omitempty"`
}

// Link is a directed edge between guests in adjacent tiers.
type Link struct {
	Source   string `json:"source"`
	Target   string `json:"target"`
	Value    int    `json:"value"`    // target's score
	Distance int    `json:"distance"` // layout hint, may be negative
}

// Match is a shortlist entry for quick access.
type Match struct {
	Name             string   `json:"name"`
	DiscussionTopics []string `json:"discussion_topics"`
	Description      string   `json:"description"`
	MatchingScore    int      `json:"matchingScore"`
}

// Candidate pairs a guest with its score relative to the viewer.
type Candidate struct {
	Guest roster.Guest
	Score int
}

// Tier is a viewer-relative affinity bucket.
type Tier int

const (
	TierNone Tier = iota // viewer, or a perfect score
	Tier1                // [90,100)
	Tier2                // [70,90)
	Tier3                // [50,70)
	Tier4                // below 50
)

func (t Tier) String() string {
	switch t {
	case Tier1:
		return "tier1"
	case Tier2:
		return "tier2"
	case Tier3:
		return "tier3"
	case Tier4:
		return "tier4"
	default:
		return "none"
	}
}

// Tiers holds the classified candidates, each tier in roster order.
type Tiers struct {
	Tier1 []Candidate
	Tier2 []Candidate
	Tier3 []Candidate
	Tier4 []Candidate
}

// Get returns the members of tier t.
func (ts Tiers) Get(t Tier) []Candidate {
	switch t {
	case Tier1:
		return ts.Tier1
	case Tier2:
		return ts.Tier2
	case Tier3:
		return ts.Tier3
	case Tier4:
		return ts.Tier4
	default:
		return nil
	}
}

// Len returns the total number of classified candidates.
func (ts Tiers) Len() int {
	return len(ts.Tier1) + len(ts.Tier2) + len(ts.Tier3) + len(ts.Tier4)
}
