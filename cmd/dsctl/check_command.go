package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
)

// checkTotals accumulates dataset problems by kind.
type checkTotals struct {
	missingScreenshot int
	missingCSV        int
	missingJSON       int
	badFigure         int
	badScreenshot     int
	badCSV            int
	badJSON           int
}

func (t checkTotals) problems() int {
	return t.missingScreenshot + t.missingCSV + t.missingJSON +
		t.badFigure + t.badScreenshot + t.badCSV + t.badJSON
}

func newCheckCommand(env *commandEnv) *cobra.Command {
	return &cobra.Command{
		Use:   "check",
		Short: "Verify every sample's companion files exist and parse",
		Long: "Resolves every catalog sample and reports missing or unparsable " +
			"companion files. Exits non-zero when any problem is found.",
		RunE: func(cmd *cobra.Command, args []string) error {
			catalog, resolver, err := env.open()
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			var totals checkTotals

			for i := 0; i < catalog.Len(); i++ {
				id := catalog.At(i)
				s := resolver.Resolve(id)

				if s.FigureErr != nil {
					totals.badFigure++
					fmt.Fprintf(out, "%s: figure decode failed: %v\n", id, s.FigureErr)
				}
				switch {
				case s.ScreenshotPath == "":
					totals.missingScreenshot++
					fmt.Fprintf(out, "%s: no screenshot\n", id)
				case s.ScreenshotErr != nil:
					totals.badScreenshot++
					fmt.Fprintf(out, "%s: screenshot decode failed: %v\n", id, s.ScreenshotErr)
				}
				switch {
				case s.DataPath == "":
					totals.missingCSV++
					fmt.Fprintf(out, "%s: no CSV\n", id)
				case s.DataErr != nil:
					totals.badCSV++
					fmt.Fprintf(out, "%s: CSV parse failed: %v\n", id, s.DataErr)
				}
				switch {
				case s.QAPath == "":
					totals.missingJSON++
					fmt.Fprintf(out, "%s: no JSON\n", id)
				case s.QAErr != nil:
					totals.badJSON++
					fmt.Fprintf(out, "%s: JSON parse failed: %v\n", id, s.QAErr)
				}
			}

			fmt.Fprintln(out, renderTable(
				[]string{"Problem", "Count"},
				[][]string{
					{"Missing screenshot", strconv.Itoa(totals.missingScreenshot)},
					{"Missing CSV", strconv.Itoa(totals.missingCSV)},
					{"Missing JSON", strconv.Itoa(totals.missingJSON)},
					{"Undecodable figure", strconv.Itoa(totals.badFigure)},
					{"Undecodable screenshot", strconv.Itoa(totals.badScreenshot)},
					{"Unparsable CSV", strconv.Itoa(totals.badCSV)},
					{"Unparsable JSON", strconv.Itoa(totals.badJSON)},
				},
				2,
			))

			if n := totals.problems(); n > 0 {
				return fmt.Errorf("%d problems in %d samples", n, catalog.Len())
			}
			fmt.Fprintf(out, "%d samples, no problems\n", catalog.Len())
			return nil
		},
	}
}
