package richtext

import (
	"regexp"
	"strings"
)

var (
	headingRe = regexp.MustCompile(`^(#{1,3})\s+(.+)$`)
	bulletRe  = regexp.MustCompile(`^[*\-•]\s+(.+)$`)
	orderedRe = regexp.MustCompile(`^(\d+)\.\s+(.+)$`)
)

// parseBlocks folds over the normalized text line by line. All state
// is local to the call: the open list accumulator, whether the last
// line was a header, and whether a section header has appeared yet.
//
// Classification order is fixed and significant: blank, section
// header, heading, list item, paragraph. A line like "1. Overview:"
// is a section header, not a list item, because the section check
// runs first.
func parseBlocks(text string, base Style) Document {
	var doc Document
	var list *List

	lastLineWasHeader := false
	inSection := false

	flush := func() {
		if list != nil {
			doc = append(doc, *list)
			list = nil
		}
	}

	for _, raw := range strings.Split(text, "\n") {
		line := strings.TrimSpace(raw)

		switch {
		case line == "":
			flush()
			if lastLineWasHeader {
				// One gap under a header is the header's own; a
				// Spacer here would double it.
				lastLineWasHeader = false
				continue
			}
			doc = append(doc, Spacer{})

		case isSectionHeader(line):
			flush()
			doc = append(doc, SectionHeader{Text: parseInline(line, base)})
			lastLineWasHeader = true
			inSection = true

		case headingRe.MatchString(line):
			flush()
			m := headingRe.FindStringSubmatch(line)
			body := m[2]
			// "# **Title**" means a heading, not a bold heading.
			if strings.HasPrefix(body, "**") && strings.HasSuffix(body, "**") && len(body) > 4 {
				body = body[2 : len(body)-2]
			}
			doc = append(doc, Heading{Level: len(m[1]), Text: parseInline(body, base)})
			lastLineWasHeader = true

		case bulletRe.MatchString(line):
			item := bulletRe.FindStringSubmatch(line)[1]
			if list == nil || list.Ordered {
				flush()
				list = &List{}
			}
			list.Items = append(list.Items, parseInline(item, base))
			lastLineWasHeader = false

		case orderedRe.MatchString(line):
			item := orderedRe.FindStringSubmatch(line)[2]
			if list == nil || !list.Ordered {
				flush()
				list = &List{Ordered: true}
			}
			list.Items = append(list.Items, parseInline(item, base))
			lastLineWasHeader = false

		default:
			flush()
			doc = append(doc, Paragraph{Spans: parseInline(line, base), Indented: inSection})
			lastLineWasHeader = false
		}
	}
	flush()

	return doc
}

// isSectionHeader reports whether a line reads as a section title:
// it ends in a colon, is not a #-heading, and the colon is not part
// of a URL scheme.
func isSectionHeader(line string) bool {
	return strings.HasSuffix(line, ":") &&
		!strings.Contains(line, "://") &&
		!strings.HasPrefix(line, "#")
}
