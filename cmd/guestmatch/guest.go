package main

import (
	"encoding/json"

	"github.com/spf13/cobra"

	"github.com/guestmatch/guestmatch/pkg/surface"
)

func newGuestCmd(g *globalOpts) *cobra.Command {
	var (
		viewer    string
		outputFmt string
	)

	cmd := &cobra.Command{
		Use:   "guest NAME",
		Short: "Show a guest's card: talking points and match score",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := surface.CheckName(args[0]); err != nil {
				return lookupError{err}
			}

			_, r, err := openRoster(cmd.Context(), g)
			if err != nil {
				return err
			}

			card, err := surface.LookupCard(r, viewer, args[0])
			if err != nil {
				return lookupError{err}
			}

			if outputFmt == "json" {
				enc := json.NewEncoder(cmd.OutOrStdout())
				enc.SetIndent("", "  ")
				return enc.Encode(card)
			}
			return surface.RenderCard(cmd.OutOrStdout(), card)
		},
	}

	cmd.Flags().StringVar(&viewer, "viewer", "", "Score the card from this guest's point of view")
	cmd.Flags().StringVar(&outputFmt, "output", "text", "Output format: text or json")

	return cmd
}
