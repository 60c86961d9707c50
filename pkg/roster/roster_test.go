package roster

import (
	"errors"
	"path/filepath"
	"testing"
)

func TestNewPreservesOrder(t *testing.T) {
	r, err := New([]Guest{
		{Name: "Zed"},
		{Name: "Amy"},
		{Name: "Moe"},
	})
	if err != nil {
		t.Fatalf("New() error: %v", err)
	}
	want := []string{"Zed", "Amy", "Moe"}
	if r.Len() != len(want) {
		t.Fatalf("Len() = %d, want %d", r.Len(), len(want))
	}
	for i, name := range want {
		if got := r.At(i).Name; got != name {
			t.Errorf("At(%d) = %q, want %q", i, got, name)
		}
	}
}

func TestFindIsCaseInsensitiveExact(t *testing.T) {
	r, err := New([]Guest{{Name: "Alice Smith"}, {Name: "Bob"}})
	if err != nil {
		t.Fatalf("New() error: %v", err)
	}

	tests := []struct {
		input string
		want  string
		found bool
	}{
		{"Alice Smith", "Alice Smith", true},
		{"alice smith", "Alice Smith", true},
		{"ALICE SMITH", "Alice Smith", true},
		{"BoB", "Bob", true},
		{"Alice", "", false},
		{"alice smith ", "", false},
		{"", "", false},
	}

	for _, tt := range tests {
		g, ok := r.Find(tt.input)
		if ok != tt.found {
			t.Errorf("Find(%q) found = %v, want %v", tt.input, ok, tt.found)
			continue
		}
		if g.Name != tt.want {
			t.Errorf("Find(%q) = %q, want %q", tt.input, g.Name, tt.want)
		}
	}
}

func TestNewRejectsCaseCollisions(t *testing.T) {
	_, err := New([]Guest{{Name: "Dana"}, {Name: "DANA"}})
	if !errors.Is(err, ErrDuplicateGuest) {
		t.Fatalf("expected ErrDuplicateGuest, got %v", err)
	}
}

func TestNewRejectsInvalidGuests(t *testing.T) {
	tests := []struct {
		name  string
		guest Guest
	}{
		{"empty name", Guest{Name: ""}},
		{"blank name", Guest{Name: "   "}},
		{"score above 100", Guest{Name: "A", MatchingScores: map[string]int{"B": 101}}},
		{"negative score", Guest{Name: "A", MatchingScores: map[string]int{"B": -1}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := New([]Guest{tt.guest})
			if !errors.Is(err, ErrInvalidGuest) {
				t.Errorf("expected ErrInvalidGuest, got %v", err)
			}
		})
	}
}

func TestRosterIsIsolatedFromInput(t *testing.T) {
	in := []Guest{{Name: "A", DiscussionTopics: []string{"x"}, MatchingScores: map[string]int{"B": 10}}}
	r, err := New(in)
	if err != nil {
		t.Fatalf("New() error: %v", err)
	}

	in[0].Name = "mutated"
	in[0].DiscussionTopics[0] = "mutated"
	in[0].MatchingScores["B"] = 99

	g := r.At(0)
	if g.Name != "A" || g.DiscussionTopics[0] != "x" || g.MatchingScores["B"] != 10 {
		t.Errorf("roster changed after input mutation: %+v", g)
	}

	guests := r.Guests()
	guests[0].Name = "mutated"
	if r.At(0).Name != "A" {
		t.Error("Guests() exposed internal slice")
	}
}

func TestGuestHelpers(t *testing.T) {
	g := Guest{
		Name:             "A",
		DiscussionTopics: []string{"one", "two"},
		MatchingScores:   map[string]int{"B": 42},
	}
	if got := g.TalkingPoints(); got != "one\ntwo" {
		t.Errorf("TalkingPoints() = %q, want %q", got, "one\ntwo")
	}
	if got := (Guest{}).TalkingPoints(); got != "" {
		t.Errorf("TalkingPoints() on empty topics = %q, want empty", got)
	}
	if got := g.ScoreFor("B"); got != 42 {
		t.Errorf("ScoreFor(B) = %d, want 42", got)
	}
	if got := g.ScoreFor("missing"); got != 0 {
		t.Errorf("ScoreFor(missing) = %d, want 0", got)
	}
}

func TestLoadFixture(t *testing.T) {
	r, err := Load("../../testdata/roster_small.json")
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	if r.Len() != 4 {
		t.Fatalf("Len() = %d, want 4", r.Len())
	}
	alice, ok := r.Find("alice")
	if !ok {
		t.Fatal("expected to find alice")
	}
	if alice.ScoreFor("Bob") != 95 {
		t.Errorf("Alice->Bob = %d, want 95", alice.ScoreFor("Bob"))
	}
}

func TestParseErrors(t *testing.T) {
	if _, err := Parse([]byte(`{"not":"an array"}`)); err == nil {
		t.Error("expected error for non-array JSON")
	}
	if _, err := Load(filepath.Join(t.TempDir(), "missing.json")); err == nil {
		t.Error("expected error for missing file")
	}
}

func TestBundled(t *testing.T) {
	r, err := Bundled()
	if err != nil {
		t.Fatalf("Bundled() error: %v", err)
	}
	if r.Len() == 0 {
		t.Fatal("bundled roster is empty")
	}
	if _, ok := r.Find("amara okafor"); !ok {
		t.Error("expected bundled roster to contain Amara Okafor")
	}
}
