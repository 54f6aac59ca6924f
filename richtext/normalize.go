package richtext

import (
	"regexp"
	"strings"
)

var (
	introRe = regexp.MustCompile(`(?i)^\s*(introduction|intro)\b:?\s*`)

	dividerRe = regexp.MustCompile(`^\s*---\s*$`)

	dquoteWrapRe = regexp.MustCompile(`^\s*"(.+)"\s*$`)
	dquoteLeadRe = regexp.MustCompile(`^\s*"([^"]+)\s*$`)
	dquoteTailRe = regexp.MustCompile(`^\s*([^"]+)"\s*$`)
	squoteWrapRe = regexp.MustCompile(`^\s*'(.+)'\s*$`)
)

// normalize rewrites raw model output before structural parsing. The
// transformations run in a fixed order; later rules assume the earlier
// cleanup already happened. Not idempotent: the trailing-colon rule
// inserts a blank line on every run, so normalize must be applied to
// a string exactly once.
func normalize(raw string) string {
	s := introRe.ReplaceAllString(raw, "")
	s = stripOuterQuotes(s)

	if dividerRe.MatchString(s) {
		return ""
	}

	lines := strings.Split(s, "\n")
	out := make([]string, 0, len(lines)+4)
	for i, line := range lines {
		line = stripLineQuotes(line)
		if dividerRe.MatchString(line) {
			line = ""
		}
		out = append(out, line)

		// Model replies routinely skip the blank line after a section
		// title, gluing it to the body. Force the gap here; the block
		// parser collapses it again when it directly follows a header.
		t := strings.TrimSpace(line)
		if t != "" && strings.HasSuffix(t, ":") && !strings.Contains(t, "://") {
			if i+1 >= len(lines) || strings.TrimSpace(lines[i+1]) != "" {
				out = append(out, "")
			}
		}
	}
	return strings.Join(out, "\n")
}

// stripOuterQuotes removes a single pair of quotes wrapping the entire
// string, a common artifact of models echoing their reply as a quoted
// literal.
func stripOuterQuotes(s string) string {
	if len(s) < 2 {
		return s
	}
	first, last := s[0], s[len(s)-1]
	if first != last || (first != '"' && first != '\'') {
		return s
	}
	// A single pair only: leave strings whose interior quotes make the
	// outer pair ambiguous alone, they get the per-line treatment.
	if strings.ContainsRune(s[1:len(s)-1], rune(first)) {
		return s
	}
	return s[1 : len(s)-1]
}

// stripLineQuotes unwraps quoting applied to a whole line. Double
// quotes are stripped even one-sided; single quotes only when the line
// is short and holds no other apostrophe, so contractions such as
// "let's" survive.
func stripLineQuotes(line string) string {
	if m := dquoteWrapRe.FindStringSubmatch(line); m != nil {
		return m[1]
	}
	if m := dquoteLeadRe.FindStringSubmatch(line); m != nil {
		return m[1]
	}
	if m := dquoteTailRe.FindStringSubmatch(line); m != nil {
		return m[1]
	}
	if m := squoteWrapRe.FindStringSubmatch(line); m != nil {
		return m[1]
	}

	t := strings.TrimSpace(line)
	if len(t) > 0 && len(t) <= 40 && strings.Count(t, "'") == 1 {
		if strings.HasPrefix(t, "'") {
			return t[1:]
		}
		if strings.HasSuffix(t, "'") {
			return t[:len(t)-1]
		}
	}
	return line
}
