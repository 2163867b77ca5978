package goldmark

import (
	"bytes"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/fwojciec/fitcoach"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/extension"
	east "github.com/yuin/goldmark/extension/ast"
	"github.com/yuin/goldmark/text"
)

// md is safe for concurrent use once built.
var md = goldmark.New(goldmark.WithExtensions(extension.Table, extension.Strikethrough))

type ansiRenderer struct {
	h1        lipgloss.Style
	h2        lipgloss.Style
	bold      lipgloss.Style
	italic    lipgloss.Style
	muted     lipgloss.Style
	underline lipgloss.Style
	strike    lipgloss.Style
}

func newRenderer(theme fitcoach.Theme) *ansiRenderer {
	accent := lipgloss.NewStyle().Foreground(ansiColor(theme.Accent)).Bold(true)
	return &ansiRenderer{
		h1:        accent.Underline(true),
		h2:        accent,
		bold:      lipgloss.NewStyle().Bold(true),
		italic:    lipgloss.NewStyle().Italic(true),
		muted:     lipgloss.NewStyle().Foreground(ansiColor(theme.Muted)).Faint(true),
		underline: lipgloss.NewStyle().Underline(true),
		strike:    lipgloss.NewStyle().Strikethrough(true),
	}
}

func ansiColor(index int) lipgloss.TerminalColor {
	if index < 0 {
		return lipgloss.NoColor{}
	}
	return lipgloss.Color(strconv.Itoa(index))
}

func (r *ansiRenderer) render(source []byte, width int) string {
	doc := md.Parser().Parse(text.NewReader(source))
	var buf bytes.Buffer
	r.walkBlock(doc, source, width, &buf)
	return strings.TrimRight(buf.String(), "\n")
}

// walkBlock renders the children of node with a blank line between blocks.
func (r *ansiRenderer) walkBlock(node ast.Node, source []byte, width int, buf *bytes.Buffer) {
	for c := node.FirstChild(); c != nil; c = c.NextSibling() {
		r.renderBlock(c, source, width, buf)
		if c.NextSibling() != nil && c.Kind() != ast.KindHTMLBlock {
			buf.WriteString("\n")
		}
	}
}

func (r *ansiRenderer) renderBlock(node ast.Node, source []byte, width int, buf *bytes.Buffer) {
	switch n := node.(type) {
	case *ast.Paragraph:
		writeWrapped(buf, r.collectInline(n, source), width)
	case *ast.Heading:
		writeWrapped(buf, r.headingStyle(n.Level).Render(r.collectInline(n, source)), width)
	case *ast.FencedCodeBlock:
		if lang := n.Language(source); len(lang) > 0 {
			buf.WriteString(r.muted.Render(string(lang)) + "\n")
		}
		r.writeCode(n.Lines(), source, buf)
	case *ast.CodeBlock:
		r.writeCode(n.Lines(), source, buf)
	case *ast.List:
		r.renderList(n, source, width, buf, 0)
	case *east.Table:
		r.renderTable(n, source, width, buf)
	case *ast.Blockquote:
		r.renderQuote(n, source, width, buf)
	case *ast.ThematicBreak:
		buf.WriteString(r.muted.Render("---") + "\n")
	case *ast.HTMLBlock:
		lines := n.Lines()
		for i := 0; i < lines.Len(); i++ {
			seg := lines.At(i)
			buf.Write(seg.Value(source))
		}
	default:
		r.walkBlock(node, source, width, buf)
	}
}

// headingStyle underlines top-level headings so day and meal titles stand
// out from their sub-sections. Level 3 and below are plain bold.
func (r *ansiRenderer) headingStyle(level int) lipgloss.Style {
	switch level {
	case 1:
		return r.h1
	case 2:
		return r.h2
	default:
		return r.bold
	}
}

func writeWrapped(buf *bytes.Buffer, s string, width int) {
	buf.WriteString(lipgloss.NewStyle().Width(width).Render(s))
	buf.WriteString("\n")
}

// writeCode writes code lines verbatim behind a gutter, without reflow.
func (r *ansiRenderer) writeCode(lines *text.Segments, source []byte, buf *bytes.Buffer) {
	gutter := r.muted.Render("│") + " "
	for i := 0; i < lines.Len(); i++ {
		seg := lines.At(i)
		buf.WriteString(gutter)
		buf.WriteString(strings.TrimRight(string(seg.Value(source)), "\n"))
		buf.WriteString("\n")
	}
}

func (r *ansiRenderer) renderQuote(node *ast.Blockquote, source []byte, width int, buf *bytes.Buffer) {
	var inner bytes.Buffer
	r.walkBlock(node, source, max(width-2, 10), &inner)
	bar := r.muted.Render("┃") + " "
	for _, line := range strings.Split(strings.TrimRight(inner.String(), "\n"), "\n") {
		buf.WriteString(bar + line + "\n")
	}
}

func (r *ansiRenderer) renderList(node *ast.List, source []byte, width int, buf *bytes.Buffer, depth int) {
	indent := strings.Repeat("  ", depth)
	n := node.Start
	for c := node.FirstChild(); c != nil; c = c.NextSibling() {
		item, ok := c.(*ast.ListItem)
		if !ok {
			continue
		}
		marker := "- "
		if node.IsOrdered() {
			marker = strconv.Itoa(n) + ". "
			n++
		}

		var content bytes.Buffer
		for ic := item.FirstChild(); ic != nil; ic = ic.NextSibling() {
			switch in := ic.(type) {
			case *ast.Paragraph, *ast.TextBlock:
				content.WriteString(r.collectInline(in, source))
			case *ast.List:
				if content.Len() > 0 {
					writeListItem(buf, indent+marker, content.String(), width)
					content.Reset()
				}
				r.renderList(in, source, width, buf, depth+1)
				// Text after a sublist continues the item without a second marker.
				marker = strings.Repeat(" ", len(marker))
			default:
				r.renderBlock(ic, source, width, &content)
			}
		}
		if content.Len() > 0 {
			writeListItem(buf, indent+marker, content.String(), width)
		}
	}
}

// writeListItem wraps content beside prefix and aligns continuation lines
// under the first character after the marker.
func writeListItem(buf *bytes.Buffer, prefix, content string, width int) {
	itemWidth := max(width-len(prefix), 10)
	wrapped := lipgloss.NewStyle().Width(itemWidth).Render(content)
	pad := strings.Repeat(" ", len(prefix))
	for i, line := range strings.Split(wrapped, "\n") {
		if i == 0 {
			buf.WriteString(prefix)
		} else {
			buf.WriteString(pad)
		}
		buf.WriteString(line)
		buf.WriteString("\n")
	}
}

// collectInline returns the styled inline text of node's children.
func (r *ansiRenderer) collectInline(node ast.Node, source []byte) string {
	var buf bytes.Buffer
	for c := node.FirstChild(); c != nil; c = c.NextSibling() {
		r.renderInline(c, source, &buf)
	}
	return buf.String()
}

func (r *ansiRenderer) renderInline(node ast.Node, source []byte, buf *bytes.Buffer) {
	switch n := node.(type) {
	case *ast.Text:
		buf.Write(n.Segment.Value(source))
		switch {
		case n.HardLineBreak():
			buf.WriteByte('\n')
		case n.SoftLineBreak():
			buf.WriteByte(' ')
		}
	case *ast.String:
		buf.Write(n.Value)
	case *ast.Emphasis:
		style := r.bold
		if n.Level == 1 {
			style = r.italic
		}
		buf.WriteString(style.Render(r.collectInline(n, source)))
	case *east.Strikethrough:
		buf.WriteString(r.strike.Render(r.collectInline(n, source)))
	case *ast.CodeSpan:
		buf.WriteString(r.bold.Render(r.collectInline(n, source)))
	case *ast.Link:
		r.writeLink(buf, r.collectInline(n, source), string(n.Destination))
	case *ast.Image:
		r.writeLink(buf, r.collectInline(n, source), string(n.Destination))
	case *ast.AutoLink:
		buf.WriteString(r.underline.Render(string(n.URL(source))))
	case *ast.RawHTML:
		for i := 0; i < n.Segments.Len(); i++ {
			seg := n.Segments.At(i)
			buf.Write(seg.Value(source))
		}
	default:
		for c := node.FirstChild(); c != nil; c = c.NextSibling() {
			r.renderInline(c, source, buf)
		}
	}
}

func (r *ansiRenderer) writeLink(buf *bytes.Buffer, label, dest string) {
	buf.WriteString(r.underline.Render(label))
	buf.WriteString(" ")
	buf.WriteString(r.muted.Render("(" + dest + ")"))
}
