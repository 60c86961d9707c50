package surface

import (
	"fmt"
	"io"
	"strings"

	"github.com/guestmatch/guestmatch/pkg/matchgraph"
	"github.com/guestmatch/guestmatch/pkg/roster"
)

// Card is what a chip or node click pops up.
type Card struct {
	Name            string   `json:"name"`
	TalkingPoints   []string `json:"talking_points"`
	CommonInterests []string `json:"common_interests,omitempty"`
	MatchingScore   *int     `json:"matchingScore,omitempty"` // absent without a viewer, or for the viewer's own card
	Color           string   `json:"color"`
}

// LookupCard finds guestName and, when viewerName is set, scores it from the
// viewer's side. Both names are matched case-insensitively.
func LookupCard(r *roster.Roster, viewerName, guestName string) (Card, error) {
	g, err := matchgraph.ResolveViewer(guestName, r)
	if err != nil {
		return Card{}, err
	}

	card := Card{
		Name:            g.Name,
		TalkingPoints:   append([]string{}, g.DiscussionTopics...),
		CommonInterests: append([]string(nil), g.CommonInterests...),
		Color:           matchgraph.ColorPerfect,
	}
	if viewerName == "" {
		return card, nil
	}

	viewer, err := matchgraph.ResolveViewer(viewerName, r)
	if err != nil {
		return Card{}, err
	}
	score := matchgraph.Resolve(viewer, g)
	card.Color = matchgraph.ColorFor(score)
	if viewer.Name != g.Name {
		card.MatchingScore = &score
	}
	return card, nil
}

// RenderCard writes a card as plain text.
func RenderCard(w io.Writer, c Card) error {
	if _, err := fmt.Fprintln(w, bold(c.Name)); err != nil {
		return err
	}
	if len(c.TalkingPoints) == 0 {
		fmt.Fprintln(w, MsgNoPrompts)
	}
	for _, tp := range c.TalkingPoints {
		fmt.Fprintf(w, "  • %s\n", tp)
	}
	if len(c.CommonInterests) > 0 {
		fmt.Fprintf(w, "In common: %s\n", dim(strings.Join(c.CommonInterests, ", ")))
	}
	if c.MatchingScore != nil {
		fmt.Fprintf(w, "Match: %s\n", swatch(c.Color, fmt.Sprintf("%d", *c.MatchingScore)))
	}
	return nil
}
