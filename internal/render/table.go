// Package render turns collected values into the bordered text table the
// tool prints, plus the byte/timestamp display formats used in its cells.
package render

import (
	"strings"

	"github.com/mattn/go-runewidth"
)

// Row is one label/value pair of the table.
type Row struct {
	Label string
	Value string
}

// DefaultHeader is the header the tool prints above its metric rows.
var DefaultHeader = Row{Label: "Property", Value: "Value"}

// Table renders rows into bordered table lines. A nil header omits the
// header row and its double rule. Column widths are the maximum display
// width of each column across the header and all rows; cells are
// left-justified with one space of padding. An empty rows slice still
// yields a well-formed table.
func Table(rows []Row, header *Row) []string {
	var labelW, valueW int
	if header != nil {
		labelW = runewidth.StringWidth(header.Label)
		valueW = runewidth.StringWidth(header.Value)
	}
	for _, r := range rows {
		if w := runewidth.StringWidth(r.Label); w > labelW {
			labelW = w
		}
		if w := runewidth.StringWidth(r.Value); w > valueW {
			valueW = w
		}
	}

	rule := func(ch string) string {
		return "+-" + strings.Repeat(ch, labelW) + "-+-" + strings.Repeat(ch, valueW) + "-+"
	}
	cells := func(r Row) string {
		return "| " + runewidth.FillRight(r.Label, labelW) + " | " + runewidth.FillRight(r.Value, valueW) + " |"
	}

	lines := make([]string, 0, len(rows)+3)
	lines = append(lines, rule("-"))
	if header != nil {
		lines = append(lines, cells(*header), rule("="))
	}
	for _, r := range rows {
		lines = append(lines, cells(r))
	}
	lines = append(lines, rule("-"))
	return lines
}
