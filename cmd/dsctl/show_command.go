package main

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"
)

const showRowLimit = 10

func newShowCommand(env *commandEnv) *cobra.Command {
	return &cobra.Command{
		Use:   "show <sample-id>",
		Short: "Show one resolved sample: paths, CSV head, stats, and QA",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id := args[0]

			catalog, resolver, err := env.open()
			if err != nil {
				return err
			}
			idx, ok := catalog.IndexOf(id)
			if !ok {
				return fmt.Errorf("sample %q not in catalog", id)
			}

			s := resolver.Resolve(id)
			out := cmd.OutOrStdout()

			fmt.Fprintf(out, "Sample %s (%d / %d)\n\n", id, idx+1, catalog.Len())
			fmt.Fprintf(out, "Figure:     %s\n", pathOrMissing(s.FigurePath))
			fmt.Fprintf(out, "Screenshot: %s\n", pathOrMissing(s.ScreenshotPath))
			fmt.Fprintf(out, "CSV:        %s\n", pathOrMissing(s.DataPath))
			fmt.Fprintf(out, "JSON:       %s\n", pathOrMissing(s.QAPath))

			rows := s.Data.Rows
			truncated := len(rows) > showRowLimit
			if truncated {
				rows = rows[:showRowLimit]
			}
			fmt.Fprintf(out, "\nData (%d rows):\n", len(s.Data.Rows))
			fmt.Fprintln(out, renderTable(s.Data.Columns, rows))
			if truncated {
				fmt.Fprintf(out, "... %d more rows\n", len(s.Data.Rows)-showRowLimit)
			}

			if stats := s.Data.ColumnStats(); len(stats) > 0 {
				statRows := make([][]string, 0, len(stats))
				for _, cs := range stats {
					statRows = append(statRows, []string{
						cs.Column,
						fmt.Sprintf("%d", cs.Count),
						fmt.Sprintf("%.4g", cs.Min),
						fmt.Sprintf("%.4g", cs.Max),
						fmt.Sprintf("%.4g", cs.Mean),
						fmt.Sprintf("%.4g", cs.StdDev),
					})
				}
				fmt.Fprintln(out, "\nNumeric columns:")
				fmt.Fprintln(out, renderTable(
					[]string{"Column", "N", "Min", "Max", "Mean", "StdDev"},
					statRows, 2, 3, 4, 5, 6))
			}

			qa, err := json.MarshalIndent(s.QA.Value, "", "  ")
			if err != nil {
				return fmt.Errorf("format QA: %w", err)
			}
			fmt.Fprintf(out, "\nQA:\n%s\n", qa)
			return nil
		},
	}
}

func pathOrMissing(path string) string {
	if path == "" {
		return "(missing)"
	}
	return path
}
