package richtext

import "strings"

// parseInline runs the two emphasis passes over one line: bold first,
// then italics over the plain fragments the bold pass left behind.
// Bold content is never re-scanned, so *...* inside **...** stays
// literal. Two flat passes, not a recursive grammar; the mobile
// renderer's output depends on exactly this shape.
func parseInline(line string, base Style) Sequence {
	var out Sequence
	for _, sp := range parseBold(line, base) {
		if t, ok := sp.(Text); ok {
			out = append(out, parseItalic(t.Content, base)...)
			continue
		}
		out = append(out, sp)
	}
	return trimEdges(out)
}

// parseBold pairs successive ** markers as open/close. Text between a
// pair becomes a Bold span; an empty pair is dropped along with its
// markers, and an unmatched opener is dropped while the text after it
// passes through as plain text.
func parseBold(s string, base Style) Sequence {
	var seq Sequence
	cursor, open := 0, -1

	for i := 0; i+1 < len(s); {
		if s[i] != '*' || s[i+1] != '*' {
			i++
			continue
		}
		if open < 0 {
			if i > cursor {
				seq = append(seq, Text{Content: s[cursor:i], Style: base})
			}
			open = i + 2
		} else {
			if content := s[open:i]; strings.TrimSpace(content) != "" {
				seq = append(seq, Bold{Spans: Sequence{Text{Content: content, Style: base}}})
			}
			open = -1
		}
		i += 2
		cursor = i
	}

	if cursor < len(s) {
		seq = append(seq, Text{Content: s[cursor:], Style: base})
	}
	return seq
}

// parseItalic is the single-star counterpart of parseBold, applied
// only to plain fragments. Italic spans are leaves.
func parseItalic(s string, base Style) Sequence {
	var seq Sequence
	cursor, open := 0, -1

	for i := 0; i < len(s); i++ {
		if s[i] != '*' {
			continue
		}
		if open < 0 {
			if i > cursor {
				seq = append(seq, Text{Content: s[cursor:i], Style: base})
			}
			open = i + 1
		} else {
			if content := s[open:i]; strings.TrimSpace(content) != "" {
				seq = append(seq, Italic{Content: content, Style: base})
			}
			open = -1
		}
		cursor = i + 1
	}

	if cursor < len(s) {
		seq = append(seq, Text{Content: s[cursor:], Style: base})
	}
	return seq
}

// trimEdges drops the whitespace that dropped delimiters leave at the
// ends of a sequence, e.g. the leading space of "**** world". Interior
// spacing is untouched.
func trimEdges(seq Sequence) Sequence {
	for len(seq) > 0 {
		t, ok := seq[0].(Text)
		if !ok {
			break
		}
		t.Content = strings.TrimLeft(t.Content, " \t")
		if t.Content == "" {
			seq = seq[1:]
			continue
		}
		seq[0] = t
		break
	}
	for len(seq) > 0 {
		t, ok := seq[len(seq)-1].(Text)
		if !ok {
			break
		}
		t.Content = strings.TrimRight(t.Content, " \t")
		if t.Content == "" {
			seq = seq[:len(seq)-1]
			continue
		}
		seq[len(seq)-1] = t
		break
	}
	return seq
}
