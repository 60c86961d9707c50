package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/guestmatch/guestmatch/pkg/roster"
)

func newValidateCmd(g *globalOpts) *cobra.Command {
	var strict bool

	cmd := &cobra.Command{
		Use:   "validate",
		Short: "Check a roster snapshot for errors and suspicious scores",
		Long: `Loads the roster the same way the server does, failing on malformed records
or duplicate names, then lists non-fatal issues such as score keys that do
not name a guest exactly.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			_, r, err := openRoster(cmd.Context(), g)
			if err != nil {
				return err
			}

			w := cmd.OutOrStdout()
			issues := roster.Lint(r)
			for _, issue := range issues {
				fmt.Fprintf(w, "  warning: %s\n", issue)
			}
			fmt.Fprintf(w, "%s, %s\n", plural(r.Len(), "guest"), plural(len(issues), "warning"))

			if strict && len(issues) > 0 {
				return fmt.Errorf("roster has %s", plural(len(issues), "warning"))
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&strict, "strict", false, "Exit non-zero when warnings are found")

	return cmd
}

func plural(n int, noun string) string {
	if n == 1 {
		return fmt.Sprintf("1 %s", noun)
	}
	return fmt.Sprintf("%d %ss", n, noun)
}
