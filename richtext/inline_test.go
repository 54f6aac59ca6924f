package richtext

import (
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/stretchr/testify/assert"
)

func TestParseInline(t *testing.T) {
	cases := []struct {
		name string
		in   string
		want Sequence
	}{
		{
			name: "plain",
			in:   "hello world",
			want: seq(txt("hello world")),
		},
		{
			name: "bold round trip",
			in:   "**hello**",
			want: seq(Bold{Spans: seq(txt("hello"))}),
		},
		{
			name: "bold mid sentence",
			in:   "a **b** c",
			want: seq(txt("a "), Bold{Spans: seq(txt("b"))}, txt(" c")),
		},
		{
			name: "empty bold discarded",
			in:   "**** world",
			want: seq(txt("world")),
		},
		{
			name: "whitespace only bold discarded",
			in:   "**  ** world",
			want: seq(txt("world")),
		},
		{
			name: "unmatched bold opener dropped",
			in:   "start **rest",
			want: seq(txt("start "), txt("rest")),
		},
		{
			name: "italic",
			in:   "a *b* c",
			want: seq(txt("a "), Italic{Content: "b"}, txt(" c")),
		},
		{
			name: "no italics inside bold",
			in:   "**a *b* c**",
			want: seq(Bold{Spans: seq(txt("a *b* c"))}),
		},
		{
			name: "bold and italic interleaved",
			in:   "**bold** and *slanted* end",
			want: seq(
				Bold{Spans: seq(txt("bold"))},
				txt(" and "),
				Italic{Content: "slanted"},
				txt(" end"),
			),
		},
		{
			name: "unmatched single star dropped",
			in:   "2 * 3",
			want: seq(txt("2 "), txt(" 3")),
		},
		{
			name: "empty italic discarded",
			in:   "a * * b",
			want: seq(txt("a "), txt(" b")),
		},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			assert.Equal(t, c.want, parseInline(c.in, Style{}))
		})
	}
}

func TestInlineStyleThreading(t *testing.T) {
	base := lipgloss.NewStyle().Foreground(lipgloss.Color("86"))

	got := parseInline("plain **strong** *soft*", base)
	for _, sp := range got {
		switch v := sp.(type) {
		case Text:
			assert.Equal(t, base, v.Style)
		case Italic:
			assert.Equal(t, base, v.Style)
		case Bold:
			for _, inner := range v.Spans {
				assert.Equal(t, base, inner.(Text).Style)
			}
		}
	}
}
