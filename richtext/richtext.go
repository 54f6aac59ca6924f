// Package richtext converts free-form model prose into a normalized
// sequence of typed, stylable document nodes.
//
// Replies from Coach Max arrive as loosely markdown-flavored text:
// inconsistent headers, stray quotes, half-closed emphasis markers.
// Format runs a normalizing pass over the raw text and then parses it
// into Blocks and Spans that a presentation layer can walk. It never
// fails; malformed markup degrades to plain text.
package richtext

import (
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Style is the opaque base style carried into every leaf span. The
// formatter never inspects it; renderers apply it as their default
// typography.
type Style = lipgloss.Style

// Document is an ordered sequence of blocks, in reading order.
type Document []Block

// Block is a top-level structural unit of a formatted document.
type Block interface {
	Markdown() string
	Plain() string
}

// Span is an inline fragment of text within a block.
type Span interface {
	Markdown() string
	Plain() string
}

// Sequence is an ordered run of inline spans.
type Sequence []Span

type Heading struct {
	Level int // 1..3
	Text  Sequence
}

// SectionHeader is a line ending in ":" that introduces a section,
// such as "Meal Breakdown:". The colon is part of the text.
type SectionHeader struct {
	Text Sequence
}

type Paragraph struct {
	Spans Sequence

	// Indented is set on every paragraph that follows a SectionHeader,
	// for the remainder of the document. The flag is sticky on purpose:
	// the mobile renderer keys its left inset off the exact same
	// behavior, so "fixing" it here would change visual output.
	Indented bool
}

type List struct {
	Ordered bool
	Items   []Sequence
}

// Spacer is a blank line between blocks. Blank lines directly under a
// heading or section header are suppressed during parsing and never
// reach the document.
type Spacer struct{}

type Text struct {
	Content string
	Style   Style
}

// Bold holds the content of a **...** pair. Its spans are always plain
// Text; bold content is not re-scanned for italics.
type Bold struct {
	Spans Sequence
}

// Italic holds the content of a *...* pair. Always a leaf.
type Italic struct {
	Content string
	Style   Style
}

// Format is the single entry point. It is total: any input, including
// the empty string, produces a document without error. The base style
// is threaded unchanged into every Text and Italic leaf.
func Format(raw string, base Style) Document {
	if raw == "" {
		return nil
	}
	text := normalize(raw)
	if text == "" {
		return nil
	}
	return parseBlocks(text, base)
}

func (d Document) Markdown() string {
	parts := make([]string, 0, len(d))
	for _, b := range d {
		parts = append(parts, b.Markdown())
	}
	return strings.Join(parts, "\n")
}

func (d Document) Plain() string {
	parts := make([]string, 0, len(d))
	for _, b := range d {
		parts = append(parts, b.Plain())
	}
	return strings.Join(parts, "\n")
}

func (h Heading) Markdown() string {
	switch h.Level {
	case 1:
		return "__**" + h.Text.Markdown() + "**__"
	case 2:
		return "__" + h.Text.Markdown() + "__"
	}
	return "**" + h.Text.Markdown() + "**"
}

func (h Heading) Plain() string { return h.Text.Plain() }

func (s SectionHeader) Markdown() string {
	return "**" + s.Text.Markdown() + "**"
}

func (s SectionHeader) Plain() string { return s.Text.Plain() }

func (p Paragraph) Markdown() string {
	if p.Indented {
		return "> " + p.Spans.Markdown()
	}
	return p.Spans.Markdown()
}

func (p Paragraph) Plain() string { return p.Spans.Plain() }

const bullet = "• "

func (l List) prefix(n int) string {
	if l.Ordered {
		return strconv.Itoa(n) + ". "
	}
	return bullet
}

func (l List) Markdown() string {
	var b strings.Builder
	for i, item := range l.Items {
		if i > 0 {
			b.WriteRune('\n')
		}
		b.WriteString(l.prefix(i + 1))
		b.WriteString(item.Markdown())
	}
	return b.String()
}

func (l List) Plain() string {
	var b strings.Builder
	for i, item := range l.Items {
		if i > 0 {
			b.WriteRune('\n')
		}
		b.WriteString(l.prefix(i + 1))
		b.WriteString(item.Plain())
	}
	return b.String()
}

func (Spacer) Markdown() string { return "" }
func (Spacer) Plain() string    { return "" }

func (s Sequence) Markdown() string {
	var b strings.Builder
	for _, sp := range s {
		b.WriteString(sp.Markdown())
	}
	return b.String()
}

func (s Sequence) Plain() string {
	var b strings.Builder
	for _, sp := range s {
		b.WriteString(sp.Plain())
	}
	return b.String()
}

func (t Text) Markdown() string { return t.Content }
func (t Text) Plain() string    { return t.Content }

func (b Bold) Markdown() string { return "**" + b.Spans.Markdown() + "**" }
func (b Bold) Plain() string    { return b.Spans.Plain() }

func (i Italic) Markdown() string { return "*" + i.Content + "*" }
func (i Italic) Plain() string    { return i.Content }
