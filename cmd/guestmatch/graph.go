package main

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/guestmatch/guestmatch/pkg/matchgraph"
	"github.com/guestmatch/guestmatch/pkg/surface"
)

func newGraphCmd(g *globalOpts) *cobra.Command {
	var (
		name      string
		outputFmt string
		guests    bool
	)

	cmd := &cobra.Command{
		Use:   "graph",
		Short: "Build the match graph for one guest",
		Long: `Resolves the guest by their full name (case-insensitive), then prints the
graph: every guest as a colored node, links between adjacent affinity tiers,
and the top matches.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			res, err := buildGraph(cmd, g, name)
			if err != nil {
				return err
			}
			r, err := newRenderer(outputFmt, guests)
			if err != nil {
				return err
			}
			return r.Render(cmd.OutOrStdout(), res)
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "Full name of the viewing guest (required)")
	cmd.Flags().StringVar(&outputFmt, "output", "text", "Output format: text or json")
	cmd.Flags().BoolVar(&guests, "guests", false, "List every guest node in text output")
	_ = cmd.MarkFlagRequired("name")

	return cmd
}

func newShortlistCmd(g *globalOpts) *cobra.Command {
	var (
		name      string
		outputFmt string
	)

	cmd := &cobra.Command{
		Use:   "shortlist",
		Short: "Print a guest's top matches",
		RunE: func(cmd *cobra.Command, args []string) error {
			res, err := buildGraph(cmd, g, name)
			if err != nil {
				return err
			}

			w := cmd.OutOrStdout()
			if outputFmt == "json" {
				enc := json.NewEncoder(w)
				enc.SetIndent("", "  ")
				return enc.Encode(res.Shortlist)
			}
			if len(res.Shortlist) == 0 {
				fmt.Fprintln(w, "No top matches yet. Explore the graph!")
				return nil
			}
			for _, m := range res.Shortlist {
				fmt.Fprintf(w, "%3d  %s\n", m.MatchingScore, m.Name)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "Full name of the viewing guest (required)")
	cmd.Flags().StringVar(&outputFmt, "output", "text", "Output format: text or json")
	_ = cmd.MarkFlagRequired("name")

	return cmd
}

func buildGraph(cmd *cobra.Command, g *globalOpts, name string) (*matchgraph.Result, error) {
	if err := surface.CheckName(name); err != nil {
		return nil, lookupError{err}
	}

	cfg, r, err := openRoster(cmd.Context(), g)
	if err != nil {
		return nil, err
	}

	res, err := matchgraph.NewBuilder(cfg.MatchLayout()).Build(name, r)
	if err != nil {
		return nil, lookupError{err}
	}
	return res, nil
}

// lookupError shows the person-facing message for a failed name lookup
// while keeping the underlying error for errors.Is.
type lookupError struct {
	err error
}

func (e lookupError) Error() string { return surface.Message(e.err) }
func (e lookupError) Unwrap() error { return e.err }

func newRenderer(format string, guests bool) (surface.Renderer, error) {
	switch format {
	case "text":
		return &surface.TerminalRenderer{Guests: guests}, nil
	case "json":
		return &surface.JSONRenderer{}, nil
	default:
		return nil, fmt.Errorf("unknown output format %q (want text or json)", format)
	}
}
