package cli

import (
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
)

// tableGroup is a block of rows separated from the next one by a rule.
type tableGroup struct {
	rows [][]string
}

// renderTable renders grouped rows with a rounded border.
// colorize adds ANSI colors to the header and footer.
func renderTable(headers []string, groups []tableGroup, footer []string, colorize bool) string {
	columns := len(headers)
	if columns == 0 {
		return ""
	}

	tw := table.NewWriter()
	tw.SetStyle(table.StyleRounded)
	if colorize {
		tw.Style().Color.Header = text.Colors{text.FgHiCyan, text.Bold}
		tw.Style().Color.Footer = text.Colors{text.FgHiBlack}
	}

	tw.AppendHeader(toRow(headers, columns))
	for i, g := range groups {
		if i > 0 {
			tw.AppendSeparator()
		}
		for _, row := range g.rows {
			tw.AppendRow(toRow(row, columns))
		}
	}
	if len(footer) > 0 {
		tw.AppendFooter(toRow(footer, columns))
	}

	configs := make([]table.ColumnConfig, 0, columns)
	for i := 0; i < columns; i++ {
		configs = append(configs, table.ColumnConfig{
			Number:      i + 1,
			Align:       text.AlignLeft,
			AlignHeader: text.AlignLeft,
			AlignFooter: text.AlignLeft,
			WidthMax:    60,
		})
	}
	tw.SetColumnConfigs(configs)

	return tw.Render()
}

func toRow(values []string, columns int) table.Row {
	r := make(table.Row, columns)
	for i := 0; i < columns; i++ {
		if i < len(values) {
			r[i] = values[i]
		} else {
			r[i] = ""
		}
	}
	return r
}
