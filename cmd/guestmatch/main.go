// Package main provides the guestmatch CLI entry point.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var version = "dev"

// globalOpts are the persistent flags shared by every subcommand.
type globalOpts struct {
	configPath string
	event      string
	roster     string
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	g := &globalOpts{}

	rootCmd := &cobra.Command{
		Use:   "guestmatch",
		Short: "Find the people worth meeting at an event",
		Long: `guestmatch reads an event roster with pairwise matching scores and builds,
for one guest, a graph of everyone else grouped into affinity tiers plus a
short list of top matches with talking points.`,
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	f := rootCmd.PersistentFlags()
	f.StringVar(&g.configPath, "config", "", "Path to config file (default: .guestmatch/config.yaml in cwd or a parent)")
	f.StringVar(&g.event, "event", "", "Event slug from the config file (default: first configured event)")
	f.StringVar(&g.roster, "roster", "", "Roster source: path, file://, s3://, gs://, postgres:// (overrides the event's source)")

	rootCmd.AddCommand(
		newGraphCmd(g),
		newShortlistCmd(g),
		newGuestCmd(g),
		newValidateCmd(g),
		newServeCmd(g),
	)
	return rootCmd
}
