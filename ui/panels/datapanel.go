package panels

import (
	"fmt"
	"strings"

	"chartqa-viewer/internal/dataset"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"
)

const dataColumnWidth = 140

// DataPanel renders the sample's CSV table and numeric column summaries.
type DataPanel struct {
	table      *widget.Table
	statsLabel *widget.Label
	content    fyne.CanvasObject

	current dataset.Table
}

// NewDataPanel creates the CSV data panel.
func NewDataPanel() *DataPanel {
	dp := &DataPanel{}

	dp.statsLabel = widget.NewLabel("")
	dp.statsLabel.Wrapping = fyne.TextWrapWord
	dp.statsLabel.TextStyle = fyne.TextStyle{Italic: true}

	dp.table = widget.NewTable(
		func() (int, int) {
			if len(dp.current.Columns) == 0 {
				return 0, 0
			}
			return len(dp.current.Rows) + 1, len(dp.current.Columns)
		},
		func() fyne.CanvasObject {
			return widget.NewLabel("")
		},
		func(id widget.TableCellID, obj fyne.CanvasObject) {
			label := obj.(*widget.Label)
			label.TextStyle = fyne.TextStyle{}
			if id.Row == 0 {
				label.TextStyle = fyne.TextStyle{Bold: true}
				label.SetText(dp.current.Columns[id.Col])
				return
			}
			row := dp.current.Rows[id.Row-1]
			if id.Col < len(row) {
				label.SetText(row[id.Col])
			} else {
				label.SetText("")
			}
		},
	)

	dp.content = container.NewBorder(
		widget.NewLabelWithStyle("Data (CSV)", fyne.TextAlignLeading, fyne.TextStyle{Bold: true}),
		dp.statsLabel,
		nil, nil,
		dp.table,
	)
	return dp
}

// Container returns the panel container.
func (dp *DataPanel) Container() fyne.CanvasObject {
	return dp.content
}

// SetTable replaces the displayed table.
func (dp *DataPanel) SetTable(t dataset.Table) {
	dp.current = t
	for i := range t.Columns {
		dp.table.SetColumnWidth(i, dataColumnWidth)
	}
	dp.table.Refresh()
	dp.statsLabel.SetText(formatStats(t.ColumnStats()))
}

// formatStats renders column summaries on one line per column.
func formatStats(stats []dataset.ColumnStat) string {
	if len(stats) == 0 {
		return ""
	}
	lines := make([]string, 0, len(stats))
	for _, cs := range stats {
		lines = append(lines, fmt.Sprintf("%s: n=%d min=%.4g max=%.4g mean=%.4g std=%.4g",
			cs.Column, cs.Count, cs.Min, cs.Max, cs.Mean, cs.StdDev))
	}
	return strings.Join(lines, "\n")
}
