package multiline

import (
	"fmt"
	"strings"
)

// Marker is the placeholder sequence recognized by Fill.
const Marker = "{}"

// Fill substitutes each {} marker in the template with the corresponding
// argument, matched positionally in the order markers appear. When an
// argument spans multiple lines and its marker is the first non-whitespace
// token on its line, the argument is re-indented via Indent using the text
// before the marker as the prefix; otherwise the argument is substituted
// verbatim. The assembled result is returned dedented and trimmed.
//
// A template with no markers returns Dedent(template); extra arguments are
// ignored. Fill fails with ErrMultiplePlaceholders if any single line
// contains more than one marker, and with ErrTooFewArgs if a marker has no
// matching argument.
func Fill(template string, args ...string) (string, error) {
	var replacements []string

	for i, line := range strings.Split(template, "\n") {
		switch n := strings.Count(line, Marker); {
		case n == 0:
			continue
		case n > 1:
			return "", fmt.Errorf("%w: line %d contains %d markers", ErrMultiplePlaceholders, i+1, n)
		}

		if len(replacements) >= len(args) {
			return "", fmt.Errorf("%w: placeholder %d on line %d has no argument (%d supplied)",
				ErrTooFewArgs, len(replacements)+1, i+1, len(args))
		}

		arg := args[len(replacements)]
		if isMultiline(arg) && strings.HasPrefix(strings.TrimLeft(line, " \t"), Marker) {
			arg = Indent(arg, line[:strings.Index(line, Marker)])
		}
		replacements = append(replacements, arg)
	}

	return Dedent(substitute(template, replacements)), nil
}

// isMultiline reports whether s spans more than one line. A single
// trailing newline does not count as a second line.
func isMultiline(s string) bool {
	return strings.Contains(strings.TrimSuffix(s, "\n"), "\n")
}

// substitute replaces the template's markers, in order, with the prepared
// replacements. The scan pass guarantees one replacement per marker.
func substitute(template string, replacements []string) string {
	var b strings.Builder
	rest := template
	for _, r := range replacements {
		before, after, ok := strings.Cut(rest, Marker)
		if !ok {
			break
		}
		b.WriteString(before)
		b.WriteString(r)
		rest = after
	}
	b.WriteString(rest)
	return b.String()
}
