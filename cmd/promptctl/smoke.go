package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/JaimeStill/promptmatch/internal/smoke"
)

func newSmokeCmd(root *rootOptions) *cobra.Command {
	var (
		file        string
		concurrency int
	)

	cmd := &cobra.Command{
		Use:   "smoke",
		Short: "Run request scenarios and report PASS/FAIL",
		Long: `Run request scenarios against the service.

Without --file the built-in scenarios are used. Exits non-zero when any
scenario fails.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			scenarios, err := loadScenarios(file)
			if err != nil {
				return err
			}

			c, err := root.client()
			if err != nil {
				return err
			}

			results := smoke.Run(cmd.Context(), c, scenarios, concurrency)
			out := cmd.OutOrStdout()
			for _, r := range results {
				fmt.Fprintln(out, r)
			}

			failed := smoke.Failed(results)
			fmt.Fprintf(out, "%d passed, %d failed\n", len(results)-failed, failed)
			if failed > 0 {
				return &exitError{msg: fmt.Sprintf("%d scenarios failed", failed)}
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&file, "file", "f", "", "YAML scenario file")
	cmd.Flags().IntVarP(&concurrency, "concurrency", "c", 4, "Maximum requests in flight")

	return cmd
}

func loadScenarios(file string) ([]smoke.Scenario, error) {
	if file == "" {
		return smoke.Default()
	}
	return smoke.LoadFile(file)
}
