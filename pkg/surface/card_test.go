package surface_test

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/guestmatch/guestmatch/pkg/matchgraph"
	"github.com/guestmatch/guestmatch/pkg/roster"
	"github.com/guestmatch/guestmatch/pkg/surface"
)

func TestLookupCard(t *testing.T) {
	r := sampleRoster(t)

	card, err := surface.LookupCard(r, "ALICE", "carol")
	if err != nil {
		t.Fatalf("LookupCard() error: %v", err)
	}
	if card.Name != "Carol" {
		t.Errorf("Name = %q, want Carol", card.Name)
	}
	if card.MatchingScore == nil || *card.MatchingScore != 72 {
		t.Errorf("MatchingScore = %v, want 72", card.MatchingScore)
	}
	if card.Color != matchgraph.ColorFor(72) {
		t.Errorf("Color = %q, want %q", card.Color, matchgraph.ColorFor(72))
	}
}

func TestLookupCardWithoutViewer(t *testing.T) {
	card, err := surface.LookupCard(sampleRoster(t), "", "Bob")
	if err != nil {
		t.Fatalf("LookupCard() error: %v", err)
	}
	if card.MatchingScore != nil {
		t.Errorf("MatchingScore = %d, want none without a viewer", *card.MatchingScore)
	}
}

func TestLookupCardOwnCard(t *testing.T) {
	card, err := surface.LookupCard(sampleRoster(t), "alice", "Alice")
	if err != nil {
		t.Fatalf("LookupCard() error: %v", err)
	}
	if card.MatchingScore != nil {
		t.Error("own card should carry no score")
	}
}

func TestLookupCardNotFound(t *testing.T) {
	r := sampleRoster(t)
	if _, err := surface.LookupCard(r, "alice", "zed"); !errors.Is(err, matchgraph.ErrGuestNotFound) {
		t.Errorf("unknown guest: err = %v", err)
	}
	if _, err := surface.LookupCard(r, "zed", "bob"); !errors.Is(err, matchgraph.ErrGuestNotFound) {
		t.Errorf("unknown viewer: err = %v", err)
	}
}

func TestRenderCard(t *testing.T) {
	t.Setenv("NO_COLOR", "1")

	score := 91
	var buf bytes.Buffer
	err := surface.RenderCard(&buf, surface.Card{
		Name:            "Bob",
		TalkingPoints:   []string{"Chips", "Climbing"},
		CommonInterests: []string{"Hiking", "Jazz"},
		MatchingScore:   &score,
		Color:           matchgraph.ColorFor(score),
	})
	if err != nil {
		t.Fatalf("RenderCard() error: %v", err)
	}

	output := buf.String()
	for _, want := range []string{"Bob", "• Chips", "• Climbing", "In common: Hiking, Jazz", "Match: 91"} {
		if !strings.Contains(output, want) {
			t.Errorf("expected %q in:\n%s", want, output)
		}
	}
}

func TestRenderCardFallback(t *testing.T) {
	t.Setenv("NO_COLOR", "1")

	r, err := roster.New([]roster.Guest{{Name: "Quiet"}})
	if err != nil {
		t.Fatal(err)
	}
	card, err := surface.LookupCard(r, "", "quiet")
	if err != nil {
		t.Fatal(err)
	}

	var buf bytes.Buffer
	if err := surface.RenderCard(&buf, card); err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(buf.String(), surface.MsgNoPrompts) {
		t.Errorf("expected fallback prompt, got %q", buf.String())
	}
}
