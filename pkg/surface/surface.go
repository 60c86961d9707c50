// Package surface renders match graphs and guest cards for people: the
// terminal, JSON for the force-graph client, and the user-facing messages
// shared by every front end.
package surface

import (
	"errors"
	"io"
	"strings"

	"github.com/guestmatch/guestmatch/pkg/matchgraph"
)

// Renderer produces formatted output from a match graph.
type Renderer interface {
	Render(w io.Writer, result *matchgraph.Result) error
}

// User-facing messages.
const (
	MsgBlankName = "Please enter your name"
	MsgNotFound  = "We couldn't find that name. Please enter your name exactly as registered."
	MsgNoPrompts = "No prompts this time. Chat with them!"
)

// ErrBlankName is returned by CheckName for empty or whitespace-only input.
var ErrBlankName = errors.New("surface: name is blank")

// CheckName rejects blank submissions before any roster lookup.
func CheckName(name string) error {
	if strings.TrimSpace(name) == "" {
		return ErrBlankName
	}
	return nil
}

// Message maps a lookup error to the text shown to the person who typed the name.
func Message(err error) string {
	switch {
	case err == nil:
		return ""
	case errors.Is(err, ErrBlankName):
		return MsgBlankName
	case errors.Is(err, matchgraph.ErrGuestNotFound):
		return MsgNotFound
	default:
		return "Something went wrong. Please try again."
	}
}
