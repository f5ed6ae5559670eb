package cli

import (
	"strings"
	"unicode/utf8"
)

// Table renders rows as left-aligned columns.
type Table struct {
	headers []string
	rows    [][]string
	padding int
	// widthOverride fixes the display width of columns whose cells carry
	// escape sequences, such as colour previews.
	widthOverride map[int]int
}

// NewTable creates a new table with the given headers.
func NewTable(headers []string) *Table {
	return &Table{
		headers:       headers,
		padding:       2,
		widthOverride: make(map[int]int),
	}
}

// SetColumnWidth fixes the display width of a column.
func (t *Table) SetColumnWidth(col, width int) {
	t.widthOverride[col] = width
}

// AddRow adds a row, padding or truncating it to the header count.
func (t *Table) AddRow(row []string) {
	normalised := make([]string, len(t.headers))
	copy(normalised, row)
	t.rows = append(t.rows, normalised)
}

// Render formats and returns the table as a string.
func (t *Table) Render() string {
	if len(t.headers) == 0 {
		return ""
	}

	widths := make([]int, len(t.headers))
	for i, h := range t.headers {
		widths[i] = utf8.RuneCountInString(h)
	}
	for _, row := range t.rows {
		for i, cell := range row {
			if _, fixed := t.widthOverride[i]; fixed {
				continue
			}
			widths[i] = max(widths[i], utf8.RuneCountInString(cell))
		}
	}
	for i, w := range t.widthOverride {
		if i < len(widths) {
			widths[i] = max(widths[i], w)
		}
	}

	var sb strings.Builder
	t.writeRow(&sb, t.headers, widths, false)
	sep := make([]string, len(widths))
	for i, w := range widths {
		sep[i] = strings.Repeat("─", w)
	}
	t.writeRow(&sb, sep, widths, false)
	for _, row := range t.rows {
		t.writeRow(&sb, row, widths, true)
	}
	return sb.String()
}

func (t *Table) writeRow(sb *strings.Builder, cells []string, widths []int, useOverride bool) {
	for i, cell := range cells {
		sb.WriteString(cell)
		if i == len(cells)-1 {
			break
		}
		visible := utf8.RuneCountInString(cell)
		if w, fixed := t.widthOverride[i]; fixed && useOverride {
			visible = w
		}
		sb.WriteString(strings.Repeat(" ", max(widths[i]-visible, 0)+t.padding))
	}
	sb.WriteString("\n")
}
