package main

import (
	"github.com/jedib0t/go-pretty/v6/table"
)

// renderSettings draws key/value rows as a rounded two-column table.
func renderSettings(rows [][2]string) string {
	tw := table.NewWriter()
	tw.SetStyle(table.StyleRounded)
	tw.AppendHeader(table.Row{"Setting", "Value"})
	for _, row := range rows {
		tw.AppendRow(table.Row{row[0], row[1]})
	}
	return tw.Render()
}
