package matchgraph

import "github.com/guestmatch/guestmatch/pkg/roster"

// Resolve returns the viewer's score for candidate, defaulting to 0.
// Scores are not clamped; the roster loader owns the [0,100] bound.
func Resolve(viewer, candidate roster.Guest) int {
	return viewer.ScoreFor(candidate.Name)
}

// ResolveViewer finds the viewer by case-insensitive exact name.
func ResolveViewer(input string, r *roster.Roster) (roster.Guest, error) {
	g, ok := r.Find(input)
	if !ok {
		return roster.Guest{}, &GuestNotFoundError{Name: input}
	}
	return g, nil
}
