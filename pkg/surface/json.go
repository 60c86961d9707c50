package surface

import (
	"encoding/json"
	"io"

	"github.com/guestmatch/guestmatch/pkg/matchgraph"
)

// JSONRenderer writes the {nodes, links, shortlist} document the graph
// client consumes.
type JSONRenderer struct{}

func (r *JSONRenderer) Render(w io.Writer, result *matchgraph.Result) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(result)
}
