package logger

import (
	"fmt"
	"io"
	"strings"
)

// Table renders a small box-drawn summary table.
type Table struct {
	out     io.Writer
	headers []string
	rows    [][]string
	widths  []int
}

func NewTable(headers []string, out io.Writer) *Table {
	widths := make([]int, len(headers))
	for i, h := range headers {
		widths[i] = len(h)
	}

	return &Table{out: out, headers: headers, widths: widths}
}

func (t *Table) AddRow(cells ...string) {
	row := make([]string, len(t.headers))
	for i := range row {
		if i < len(cells) {
			row[i] = cells[i]
		}
		if len(row[i]) > t.widths[i] {
			t.widths[i] = len(row[i])
		}
	}
	t.rows = append(t.rows, row)
}

func (t *Table) Print() {
	fmt.Fprint(t.out, t.Render())
}

func (t *Table) Render() string {
	var sb strings.Builder

	t.rule(&sb, "┌", "┬", "┐")
	t.line(&sb, t.headers)
	t.rule(&sb, "├", "┼", "┤")
	for _, row := range t.rows {
		t.line(&sb, row)
	}
	t.rule(&sb, "└", "┴", "┘")

	return sb.String()
}

func (t *Table) rule(sb *strings.Builder, left, mid, right string) {
	sb.WriteString(left)
	for i, w := range t.widths {
		if i > 0 {
			sb.WriteString(mid)
		}
		sb.WriteString(strings.Repeat("─", w+2))
	}
	sb.WriteString(right)
	sb.WriteByte('\n')
}

func (t *Table) line(sb *strings.Builder, cells []string) {
	sb.WriteString("│")
	for i, w := range t.widths {
		cell := ""
		if i < len(cells) {
			cell = cells[i]
		}
		fmt.Fprintf(sb, " %-*s │", w, cell)
	}
	sb.WriteByte('\n')
}
