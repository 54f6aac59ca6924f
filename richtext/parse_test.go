package richtext

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func seq(spans ...Span) Sequence { return spans }

func txt(s string) Text { return Text{Content: s} }

func TestParseBlocksClassification(t *testing.T) {
	cases := []struct {
		name string
		in   string
		want Document
	}{
		{
			name: "plain paragraph",
			in:   "eat whole foods",
			want: Document{Paragraph{Spans: seq(txt("eat whole foods"))}},
		},
		{
			name: "heading levels",
			in:   "# One\n## Two\n### Three",
			want: Document{
				Heading{Level: 1, Text: seq(txt("One"))},
				Heading{Level: 2, Text: seq(txt("Two"))},
				Heading{Level: 3, Text: seq(txt("Three"))},
			},
		},
		{
			name: "heading with redundant bold",
			in:   "# **Title**",
			want: Document{Heading{Level: 1, Text: seq(txt("Title"))}},
		},
		{
			name: "list grouping by kind",
			in:   "- a\n- b\n1. c",
			want: Document{
				List{Items: []Sequence{seq(txt("a")), seq(txt("b"))}},
				List{Ordered: true, Items: []Sequence{seq(txt("c"))}},
			},
		},
		{
			name: "bullet variants",
			in:   "* a\n- b\n• c",
			want: Document{
				List{Items: []Sequence{seq(txt("a")), seq(txt("b")), seq(txt("c"))}},
			},
		},
		{
			name: "section header keeps colon",
			in:   "Notes:\n\nBody",
			want: Document{
				SectionHeader{Text: seq(txt("Notes:"))},
				Paragraph{Spans: seq(txt("Body")), Indented: true},
			},
		},
		{
			name: "section header wins over ordered list",
			in:   "1. Overview:",
			want: Document{SectionHeader{Text: seq(txt("1. Overview:"))}},
		},
		{
			name: "url line is not a section header",
			in:   "see https://example.com/a:",
			want: Document{Paragraph{Spans: seq(txt("see https://example.com/a:"))}},
		},
		{
			name: "hash line ending in colon is a heading",
			in:   "## Tips:",
			want: Document{Heading{Level: 2, Text: seq(txt("Tips:"))}},
		},
		{
			name: "spacer between paragraphs",
			in:   "a\n\nb",
			want: Document{
				Paragraph{Spans: seq(txt("a"))},
				Spacer{},
				Paragraph{Spans: seq(txt("b"))},
			},
		},
		{
			name: "spacer suppressed under heading",
			in:   "# Title\n\nbody",
			want: Document{
				Heading{Level: 1, Text: seq(txt("Title"))},
				Paragraph{Spans: seq(txt("body"))},
			},
		},
		{
			name: "blank line flushes open list",
			in:   "- a\n\n- b",
			want: Document{
				List{Items: []Sequence{seq(txt("a"))}},
				Spacer{},
				List{Items: []Sequence{seq(txt("b"))}},
			},
		},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			assert.Equal(t, c.want, Format(c.in, Style{}))
		})
	}
}

func TestIndentedIsSticky(t *testing.T) {
	doc := Format("before\n\nMacros:\n\nfirst\n\nsecond", Style{})

	want := Document{
		Paragraph{Spans: seq(txt("before"))},
		Spacer{},
		SectionHeader{Text: seq(txt("Macros:"))},
		Paragraph{Spans: seq(txt("first")), Indented: true},
		Spacer{},
		Paragraph{Spans: seq(txt("second")), Indented: true},
	}
	assert.Equal(t, want, doc)
}

func TestListFlushedAtEOF(t *testing.T) {
	doc := Format("1. a\n2. b", Style{})
	assert.Equal(t, Document{
		List{Ordered: true, Items: []Sequence{seq(txt("a")), seq(txt("b"))}},
	}, doc)
}
