package cli

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/sant0-9/icebreaker/internal/question"
)

func newStylesCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "styles",
		Short: "List the available question styles",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			for _, s := range question.Styles() {
				fmt.Fprintf(w, "%s  %s\t%s\n", s.Icon, s.Name, s.Description)
			}
			return w.Flush()
		},
	}
}
