package multiline

import "strings"

// Dedent removes the longest whitespace prefix common to all non-blank
// lines of s, then trims leading and trailing whitespace from the result.
// Whitespace-only lines are normalized to empty and do not contribute to
// the common prefix. An empty or whitespace-only input yields "".
//
// Dedent is idempotent: a dedented string dedents to itself.
func Dedent(s string) string {
	lines := strings.Split(s, "\n")

	// Longest common whitespace prefix across non-blank lines.
	prefix := ""
	first := true
	for _, line := range lines {
		if strings.TrimSpace(line) == "" {
			continue
		}
		ws := line[:len(line)-len(strings.TrimLeft(line, " \t"))]
		if first {
			prefix = ws
			first = false
			continue
		}
		prefix = commonPrefix(prefix, ws)
	}

	for i, line := range lines {
		if strings.TrimSpace(line) == "" {
			lines[i] = ""
		} else {
			lines[i] = line[len(prefix):]
		}
	}

	return strings.TrimSpace(strings.Join(lines, "\n"))
}

// Indent dedents s, prepends prefix to every resulting line including
// blank ones, and trims the surrounding whitespace of the whole result.
// The trim removes the first line's prefix: the caller's own text is
// expected to supply indentation up to the insertion point. Blank lines
// in the middle keep the prefix so multi-paragraph blocks stay aligned.
// An empty or whitespace-only s yields "" for any prefix.
func Indent(s, prefix string) string {
	s = Dedent(s)
	if s == "" {
		return ""
	}

	lines := strings.Split(s, "\n")
	for i, line := range lines {
		lines[i] = prefix + line
	}

	return strings.TrimSpace(strings.Join(lines, "\n"))
}

// commonPrefix returns the longest shared leading substring of a and b.
func commonPrefix(a, b string) string {
	n := len(a)
	if len(b) < n {
		n = len(b)
	}
	for i := 0; i < n; i++ {
		if a[i] != b[i] {
			return a[:i]
		}
	}
	return a[:n]
}
