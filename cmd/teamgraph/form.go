package teamgraph

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/cobra"

	"github.com/scholargraph/teamgraph"
	"github.com/scholargraph/teamgraph/pkg/config"
	"github.com/scholargraph/teamgraph/pkg/export"
)

var formCmd = &cobra.Command{
	Use:   "form [keywords...]",
	Short: "Form teams covering the given skills",
	Long: `Form teams covering the given skills and print the result as JSON.

The first keyword selects the seed authors; each further keyword adds one
member per team. Example:

  teamgraph form "machine learning" "databases" --algorithm CAT --teams 2`,
	Args: cobra.MinimumNArgs(1),
	RunE: runForm,
}

var (
	formAlgorithm string
	formTeams     int
	formExcluded  []string
	formOutput    string
	formSeed      int64
)

func init() {
	rootCmd.AddCommand(formCmd)

	formCmd.Flags().StringVarP(&formAlgorithm, "algorithm", "a", "ACET", "Formation algorithm (ACET, CAT, OAT, PRT, COT, TAT, CIT)")
	formCmd.Flags().IntVarP(&formTeams, "teams", "t", 1, "Number of teams to form")
	formCmd.Flags().StringSliceVar(&formExcluded, "exclude", nil, "Author IDs to exclude from every team")
	formCmd.Flags().StringVarP(&formOutput, "output", "o", "", "Write the batch to a Parquet file (default prints JSON only)")
	formCmd.Flags().Int64Var(&formSeed, "seed", 0, "Random seed for reproducible runs")
}

func runForm(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Minute)
	defer cancel()

	client, err := teamgraph.New(ctx, cfg)
	if err != nil {
		return fmt.Errorf("failed to initialize teamgraph: %w", err)
	}
	defer client.Close(context.Background())

	result, err := client.FormTeams(ctx, teamgraph.FormRequest{
		Keywords:    args,
		Algorithm:   formAlgorithm,
		TeamCount:   formTeams,
		ExcludedIDs: formExcluded,
		RandSeed:    formSeed,
	})
	if err != nil {
		return fmt.Errorf("team formation failed: %w", err)
	}

	out, err := json.MarshalIndent(result, "", "  ")
	if err != nil {
		return err
	}
	fmt.Println(string(out))

	if formOutput != "" {
		path := formOutput
		if !filepath.IsAbs(path) && cfg.Export.Dir != "" && filepath.Dir(path) == "." {
			path = filepath.Join(cfg.Export.Dir, path)
		}
		if err := export.WriteTeams(path, result); err != nil {
			return err
		}
		fmt.Fprintln(os.Stderr, "Wrote", path)
	}
	return nil
}
