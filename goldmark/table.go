package goldmark

import (
	"bytes"
	"strings"

	"github.com/mattn/go-runewidth"
	"github.com/yuin/goldmark/ast"
	east "github.com/yuin/goldmark/extension/ast"
)

const (
	columnSep    = " │ "
	minColumnCap = 3
)

// renderTable lays out a GFM table as aligned columns separated by a
// vertical bar, with a rule under the header row. Cell text is plain so
// column widths can be measured; the header row is styled after padding.
// When the table is wider than width, the widest columns are truncated.
func (r *ansiRenderer) renderTable(node *east.Table, source []byte, width int, buf *bytes.Buffer) {
	var rows [][]string
	header := -1
	for c := node.FirstChild(); c != nil; c = c.NextSibling() {
		switch c.(type) {
		case *east.TableHeader:
			header = len(rows)
		case *east.TableRow:
		default:
			continue
		}
		var cells []string
		for cell := c.FirstChild(); cell != nil; cell = cell.NextSibling() {
			cells = append(cells, strings.TrimSpace(plainText(cell, source)))
		}
		rows = append(rows, cells)
	}

	cols := len(node.Alignments)
	for _, row := range rows {
		cols = max(cols, len(row))
	}
	if cols == 0 {
		return
	}

	widths := columnWidths(rows, cols, width)

	for i, row := range rows {
		parts := make([]string, cols)
		for j := range cols {
			var cell string
			if j < len(row) {
				cell = row[j]
			}
			align := east.AlignNone
			if j < len(node.Alignments) {
				align = node.Alignments[j]
			}
			parts[j] = alignCell(runewidth.Truncate(cell, widths[j], "…"), widths[j], align)
		}
		line := strings.TrimRight(strings.Join(parts, columnSep), " ")
		if i == header {
			line = r.bold.Render(line)
		}
		buf.WriteString(line)
		buf.WriteString("\n")
		if i == header {
			rule := make([]string, cols)
			for j, w := range widths {
				rule[j] = strings.Repeat("─", w)
			}
			buf.WriteString(r.muted.Render(strings.Join(rule, "─┼─")))
			buf.WriteString("\n")
		}
	}
}

// columnWidths returns the display width of each column, shrinking the
// widest columns until the table fits width or every column is at the cap.
func columnWidths(rows [][]string, cols, width int) []int {
	widths := make([]int, cols)
	for _, row := range rows {
		for j, cell := range row {
			if j < cols {
				widths[j] = max(widths[j], runewidth.StringWidth(cell))
			}
		}
	}

	total := func() int {
		t := runewidth.StringWidth(columnSep) * (cols - 1)
		for _, w := range widths {
			t += w
		}
		return t
	}
	for total() > width {
		widest := 0
		for j, w := range widths {
			if w > widths[widest] {
				widest = j
			}
		}
		if widths[widest] <= minColumnCap {
			break
		}
		widths[widest]--
	}
	return widths
}

func alignCell(s string, w int, align east.Alignment) string {
	switch align {
	case east.AlignRight:
		return runewidth.FillLeft(s, w)
	case east.AlignCenter:
		pad := w - runewidth.StringWidth(s)
		if pad <= 0 {
			return s
		}
		left := pad / 2
		return strings.Repeat(" ", left) + s + strings.Repeat(" ", pad-left)
	default:
		return runewidth.FillRight(s, w)
	}
}

// plainText collects the unstyled text of an inline subtree.
func plainText(node ast.Node, source []byte) string {
	var buf bytes.Buffer
	var walk func(n ast.Node)
	walk = func(n ast.Node) {
		switch t := n.(type) {
		case *ast.Text:
			buf.Write(t.Segment.Value(source))
			if t.SoftLineBreak() {
				buf.WriteByte(' ')
			}
			return
		case *ast.String:
			buf.Write(t.Value)
			return
		}
		for c := n.FirstChild(); c != nil; c = c.NextSibling() {
			walk(c)
		}
	}
	walk(node)
	return buf.String()
}
