package matchgraph

// Node colors, from the perfect match down to the weakest.
const (
	ColorPerfect = "#ffffff"
	ColorLowest  = "#071929"
)

var colorBands = []struct {
	floor int
	color string
}{
	{90, "#6a8aab"},
	{80, "#52769c"},
	{70, "#41648a"},
	{60, "#32557a"},
	{50, "#224366"},
	{40, "#1e3d5e"},
	{30, "#163352"},
}

// ColorFor maps a score to its node color.
func ColorFor(score int) string {
	if score == PerfectScore {
		return ColorPerfect
	}
	for _, b := range colorBands {
		if score >= b.floor {
			return b.color
		}
	}
	return ColorLowest
}
