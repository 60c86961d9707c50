// Package roster defines the guest data model shared across guestmatch.
// A Roster is built once from a snapshot and is read-only afterwards.
package roster

import "strings"

// Guest is a single attendee record as it appears in a roster snapshot.
type Guest struct {
	Name             string         `json:"name" validate:"required,notblank"`
	Description      string         `json:"description,omitempty"`
	DiscussionTopics []string       `json:"discussion_topics"`
	CommonInterests  []string       `json:"common_interests,omitempty"`
	MatchingScores   map[string]int `json:"matching_scores" validate:"dive,min=0,max=100"` // peer name -> score
}

// TalkingPoints renders the guest's discussion topics one per line.
func (g Guest) TalkingPoints() string {
	return strings.Join(g.DiscussionTopics, "\n")
}

// ScoreFor returns this guest's score for the named peer, or 0 if absent.
func (g Guest) ScoreFor(peer string) int {
	return g.MatchingScores[peer]
}
