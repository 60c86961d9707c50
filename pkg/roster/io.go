package roster

import (
	_ "embed"
	"encoding/json"
	"fmt"
	"os"
)

//go:embed snapshot/people_data.json
var bundledSnapshot []byte

// Parse decodes a JSON array of guests and builds a Roster from it.
func Parse(data []byte) (*Roster, error) {
	var guests []Guest
	if err := json.Unmarshal(data, &guests); err != nil {
		return nil, fmt.Errorf("unmarshaling roster: %w", err)
	}
	return New(guests)
}

// Load reads a roster snapshot from disk.
func Load(path string) (*Roster, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading roster: %w", err)
	}
	return Parse(data)
}

// Bundled returns the roster snapshot compiled into the binary.
func Bundled() (*Roster, error) {
	r, err := Parse(bundledSnapshot)
	if err != nil {
		return nil, fmt.Errorf("bundled snapshot: %w", err)
	}
	return r, nil
}
