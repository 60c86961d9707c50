package surface

import (
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/guestmatch/guestmatch/pkg/matchgraph"
)

// TerminalRenderer renders a match graph as colored terminal output.
type TerminalRenderer struct {
	// Guests lists every node with its talking points, not just the summary.
	Guests bool
}

// ANSI color codes
const (
	colorReset = "\033[0m"
	colorBold  = "\033[1m"
	colorDim   = "\033[2m"
)

func noColor() bool {
	_, ok := os.LookupEnv("NO_COLOR")
	return ok
}

func bold(s string) string {
	if noColor() {
		return s
	}
	return colorBold + s + colorReset
}

func dim(s string) string {
	if noColor() {
		return s
	}
	return colorDim + s + colorReset
}

// swatch paints s on the node's hex background color using 24-bit escapes.
func swatch(hex, s string) string {
	if noColor() {
		return s
	}
	r, g, b, ok := parseHex(hex)
	if !ok {
		return s
	}
	fg := "30" // black text on light swatches
	if (r*299+g*587+b*114)/1000 < 128 {
		fg = "97"
	}
	return fmt.Sprintf("\033[48;2;%d;%d;%dm\033[%sm %s %s", r, g, b, fg, s, colorReset)
}

func parseHex(hex string) (r, g, b int, ok bool) {
	hex = strings.TrimPrefix(hex, "#")
	if len(hex) != 6 {
		return 0, 0, 0, false
	}
	v, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return 0, 0, 0, false
	}
	return int(v >> 16 & 0xff), int(v >> 8 & 0xff), int(v & 0xff), true
}

func (r *TerminalRenderer) Render(w io.Writer, result *matchgraph.Result) error {
	// Header
	fmt.Fprintf(w, "%s\n\n", bold("Matches for "+result.Viewer))

	// Shortlist chips
	if len(result.Shortlist) == 0 {
		fmt.Fprintln(w, "No top matches yet. Explore the graph!")
	} else {
		fmt.Fprintln(w, "Top matches:")
		for _, m := range result.Shortlist {
			fmt.Fprintf(w, "  %s %s\n",
				swatch(matchgraph.ColorFor(m.MatchingScore), strconv.Itoa(m.MatchingScore)), bold(m.Name))
			if m.Description == "" {
				fmt.Fprintf(w, "      %s\n", dim(MsgNoPrompts))
				continue
			}
			for _, line := range strings.Split(m.Description, "\n") {
				fmt.Fprintf(w, "      %s\n", dim(line))
			}
		}
	}
	fmt.Fprintln(w)

	// Tier summary
	counts := make([]string, 0, 4)
	for t := matchgraph.Tier1; t <= matchgraph.Tier4; t++ {
		counts = append(counts, strconv.Itoa(len(result.Tiers.Get(t))))
	}
	fmt.Fprintf(w, "Tiers: %s  (%d guests, %d links)\n",
		strings.Join(counts, " / "), len(result.Nodes), len(result.Links))

	if !r.Guests {
		return nil
	}

	fmt.Fprintln(w)
	fmt.Fprintln(w, "Guests:")
	for _, n := range result.Nodes {
		score := "you"
		if n.MatchingScore != nil {
			score = strconv.Itoa(*n.MatchingScore)
		}
		label := n.Name
		if n.Tier != matchgraph.TierNone {
			label += " " + dim("("+n.Tier.String()+")")
		}
		fmt.Fprintf(w, "  %s %s\n", swatch(n.Color, fmt.Sprintf("%3s", score)), label)
	}

	return nil
}
