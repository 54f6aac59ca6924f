package richtext

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFormatTotality(t *testing.T) {
	inputs := []string{
		"",
		" ",
		"   \n\n  ",
		"*",
		"**",
		"***",
		"****",
		"*****",
		"**a",
		"a**",
		"* *",
		":",
		"::",
		"---",
		"---\n---\n---",
		`"`,
		`""`,
		"'",
		"#",
		"# ",
		"####### deep",
		"1.",
		"1. ",
		"intro",
		"Introduction:",
		"🍎 **fruit** *fresh*",
		strings.Repeat("*-• ", 200),
	}

	for _, in := range inputs {
		assert.NotPanics(t, func() { Format(in, Style{}) }, "input %q", in)
	}
}

func TestFormatEmptyInput(t *testing.T) {
	assert.Len(t, Format("", Style{}), 0)
	assert.Len(t, Format("---", Style{}), 0)
}

func TestFormatPlainTextPreserved(t *testing.T) {
	inputs := []string{
		"Great job logging that meal",
		"  padded either side  ",
		"carbs are fuel, not the enemy",
	}
	for _, in := range inputs {
		doc := Format(in, Style{})
		if assert.Len(t, doc, 1, "input %q", in) {
			p, ok := doc[0].(Paragraph)
			if assert.True(t, ok, "input %q", in) {
				assert.Equal(t, strings.TrimSpace(in), p.Spans.Plain())
			}
		}
	}
}

func TestFormatCoachReply(t *testing.T) {
	raw := "Introduction: **Meal Plan**\n" +
		"---\n" +
		"Breakfast:\n" +
		"- **Oats** with berries\n" +
		"- Greek yogurt\n" +
		"\n" +
		"Tips:\n" +
		"1. Drink *water* early.\n" +
		"2. Keep protein high."

	doc := Format(raw, Style{})

	want := Document{
		Paragraph{Spans: seq(Bold{Spans: seq(txt("Meal Plan"))})},
		Spacer{},
		SectionHeader{Text: seq(txt("Breakfast:"))},
		List{Items: []Sequence{
			seq(Bold{Spans: seq(txt("Oats"))}, txt(" with berries")),
			seq(txt("Greek yogurt")),
		}},
		Spacer{},
		SectionHeader{Text: seq(txt("Tips:"))},
		List{Ordered: true, Items: []Sequence{
			seq(txt("Drink "), Italic{Content: "water"}, txt(" early.")),
			seq(txt("Keep protein high.")),
		}},
	}
	assert.Equal(t, want, doc)
}

func TestDocumentMarkdown(t *testing.T) {
	doc := Format("Snacks:\n- **almonds**\n- an *apple*", Style{})

	want := "**Snacks:**\n" +
		"• **almonds**\n" +
		"• an *apple*"
	assert.Equal(t, want, doc.Markdown())
}

func TestDocumentPlain(t *testing.T) {
	doc := Format("# **Day One**\nlog every meal", Style{})
	assert.Equal(t, "Day One\nlog every meal", doc.Plain())
}

func TestRenderKeepsContent(t *testing.T) {
	doc := Format("Focus:\n\nsmall wins add up", Style{})
	out := doc.Render(60)

	assert.Contains(t, out, "Focus:")
	assert.Contains(t, out, "small wins add up")
}
