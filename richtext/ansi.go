package richtext

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Render draws the document for a terminal, applying the lipgloss
// style each leaf span carries. Used by the preview tool; the bot
// renders Markdown instead.
func (d Document) Render(width int) string {
	if width <= 0 {
		width = 80
	}

	heading := lipgloss.NewStyle().Bold(true).Underline(true)
	section := lipgloss.NewStyle().Bold(true)
	indent := lipgloss.NewStyle().PaddingLeft(4).Width(width)
	wrap := lipgloss.NewStyle().Width(width)

	var b strings.Builder
	for i, block := range d {
		if i > 0 {
			b.WriteRune('\n')
		}
		switch v := block.(type) {
		case Heading:
			b.WriteString(heading.Render(v.Text.Plain()))
		case SectionHeader:
			b.WriteString(section.Render(v.Text.Plain()))
		case Paragraph:
			text := renderSequence(v.Spans)
			if v.Indented {
				b.WriteString(indent.Render(text))
			} else {
				b.WriteString(wrap.Render(text))
			}
		case List:
			for j, item := range v.Items {
				if j > 0 {
					b.WriteRune('\n')
				}
				b.WriteString(v.prefix(j + 1))
				b.WriteString(renderSequence(item))
			}
		case Spacer:
		}
	}
	return b.String()
}

func renderSequence(seq Sequence) string {
	var b strings.Builder
	for _, sp := range seq {
		b.WriteString(renderSpan(sp, false))
	}
	return b.String()
}

func renderSpan(sp Span, bold bool) string {
	switch v := sp.(type) {
	case Text:
		st := v.Style
		if bold {
			st = st.Copy().Bold(true)
		}
		return st.Render(v.Content)
	case Bold:
		var b strings.Builder
		for _, inner := range v.Spans {
			b.WriteString(renderSpan(inner, true))
		}
		return b.String()
	case Italic:
		return v.Style.Copy().Italic(true).Render(v.Content)
	}
	return ""
}
