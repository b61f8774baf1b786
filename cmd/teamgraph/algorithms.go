package teamgraph

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/scholargraph/teamgraph/pkg/formation"
)

var algorithmsCmd = &cobra.Command{
	Use:   "algorithms",
	Short: "List the available team formation algorithms",
	RunE: func(cmd *cobra.Command, args []string) error {
		w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
		fmt.Fprintln(w, "CODE\tNAME\tDESCRIPTION")
		for _, info := range formation.Algorithms() {
			fmt.Fprintf(w, "%s\t%s\t%s\n", info.Code, info.Name, info.Description)
		}
		return w.Flush()
	},
}

func init() {
	rootCmd.AddCommand(algorithmsCmd)
}
