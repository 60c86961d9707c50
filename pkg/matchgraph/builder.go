package matchgraph

import (
	"github.com/guestmatch/guestmatch/pkg/roster"
)

// Builder assembles match graphs using a fixed layout.
type Builder struct {
	layout Layout
}

// NewBuilder creates a Builder. A shortlist size outside (0, DefaultShortlistSize]
// falls back to DefaultShortlistSize.
func NewBuilder(layout Layout) *Builder {
	if layout.ShortlistSize <= 0 || layout.ShortlistSize > DefaultShortlistSize {
		layout.ShortlistSize = DefaultShortlistSize
	}
	return &Builder{layout: layout}
}

// Layout returns the builder's layout.
func (b *Builder) Layout() Layout {
	return b.layout
}

// Build resolves the viewer and produces the full graph. On a lookup miss it
// returns a *GuestNotFoundError and no partial result.
func (b *Builder) Build(viewerName string, r *roster.Roster) (*Result, error) {
	viewer, err := ResolveViewer(viewerName, r)
	if err != nil {
		return nil, err
	}

	tiers := Classify(viewer, r)

	return &Result{
		Viewer:    viewer.Name,
		Nodes:     buildNodes(viewer, r),
		Links:     BuildLinks(tiers, b.layout),
		Shortlist: SelectShortlist(tiers.Tier1, b.layout.ShortlistSize),
		Tiers:     tiers,
	}, nil
}

// Build runs a default Builder.
func Build(viewerName string, r *roster.Roster) (*Result, error) {
	return NewBuilder(Defaults()).Build(viewerName, r)
}

func buildNodes(viewer roster.Guest, r *roster.Roster) []Node {
	nodes := make([]Node, 0, r.Len())
	for i := 0; i < r.Len(); i++ {
		g := r.At(i)
		score := Resolve(viewer, g)
		node := Node{
			ID:          g.Name,
			Name:        g.Name,
			Group:       GroupGuest,
			Description: g.TalkingPoints(),
			Color:       ColorFor(score),
		}
		if g.Name == viewer.Name {
			node.Group = GroupViewer
		} else {
			s := score
			node.MatchingScore = &s
			node.Tier = TierOf(score)
		}
		nodes = append(nodes, node)
	}
	return nodes
}
