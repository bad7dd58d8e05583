package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
)

func newListCommand(env *commandEnv) *cobra.Command {
	var missingOnly bool

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List catalog samples and companion file presence",
		RunE: func(cmd *cobra.Command, args []string) error {
			catalog, resolver, err := env.open()
			if err != nil {
				return err
			}

			headers := []string{"#", "Sample", "Figure", "Screenshot", "CSV", "JSON"}
			var rows [][]string
			for i := 0; i < catalog.Len(); i++ {
				id := catalog.At(i)
				loc := resolver.Locate(id)

				complete := loc.FigurePath != "" && loc.ScreenshotPath != "" &&
					loc.DataPath != "" && loc.QAPath != ""
				if missingOnly && complete {
					continue
				}

				rows = append(rows, []string{
					strconv.Itoa(i + 1),
					id,
					presence(loc.FigurePath),
					presence(loc.ScreenshotPath),
					presence(loc.DataPath),
					presence(loc.QAPath),
				})
			}

			fmt.Fprintln(cmd.OutOrStdout(), renderTable(headers, rows, 1))
			fmt.Fprintf(cmd.OutOrStdout(), "%d of %d samples shown\n", len(rows), catalog.Len())
			return nil
		},
	}

	cmd.Flags().BoolVar(&missingOnly, "missing", false, "Only show samples with missing companion files")
	return cmd
}

func presence(path string) string {
	if path == "" {
		return "-"
	}
	return "ok"
}
