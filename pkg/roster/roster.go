package roster

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrDuplicateGuest is returned when two guests share a name after case folding.
	ErrDuplicateGuest = errors.New("roster: duplicate guest name")

	// ErrInvalidGuest is returned when a guest record fails validation.
	ErrInvalidGuest = errors.New("roster: invalid guest")
)

// Roster is an ordered, immutable collection of guests.
type Roster struct {
	guests []Guest
	index  map[string]int // normalized name -> position
}

// New validates the guests and builds a Roster preserving their order.
func New(guests []Guest) (*Roster, error) {
	r := &Roster{
		guests: make([]Guest, len(guests)),
		index:  make(map[string]int, len(guests)),
	}
	for i, g := range guests {
		if err := validateGuest(g); err != nil {
			return nil, fmt.Errorf("guest %d (%q): %w", i, g.Name, err)
		}
		key := Normalize(g.Name)
		if prev, ok := r.index[key]; ok {
			return nil, fmt.Errorf("%w: %q collides with %q", ErrDuplicateGuest, g.Name, r.guests[prev].Name)
		}
		r.index[key] = i
		r.guests[i] = cloneGuest(g)
	}
	return r, nil
}

// Normalize case-folds a name for lookup. No other sanitization is applied.
func Normalize(name string) string {
	return strings.ToLower(name)
}

// Len returns the number of guests.
func (r *Roster) Len() int {
	return len(r.guests)
}

// At returns the guest at position i in roster order.
func (r *Roster) At(i int) Guest {
	return r.guests[i]
}

// Guests returns a copy of the guest list in roster order.
func (r *Roster) Guests() []Guest {
	out := make([]Guest, len(r.guests))
	copy(out, r.guests)
	return out
}

// Find looks up a guest by exact, case-insensitive full name.
func (r *Roster) Find(name string) (Guest, bool) {
	i, ok := r.index[Normalize(name)]
	if !ok {
		return Guest{}, false
	}
	return r.guests[i], true
}

func cloneGuest(g Guest) Guest {
	c := g
	if g.DiscussionTopics != nil {
		c.DiscussionTopics = append([]string(nil), g.DiscussionTopics...)
	}
	if g.CommonInterests != nil {
		c.CommonInterests = append([]string(nil), g.CommonInterests...)
	}
	if g.MatchingScores != nil {
		c.MatchingScores = make(map[string]int, len(g.MatchingScores))
		for k, v := range g.MatchingScores {
			c.MatchingScores[k] = v
		}
	}
	return c
}
