// Package multiline composes cleanly indented multiline strings.
//
// Raw Go string literals are convenient for embedding multiline text, but
// they carry the indentation of the surrounding code, and splicing one
// multiline string into another breaks the indentation of every line after
// the first. This package solves both problems with three operations,
// layered from simplest to most composed.
//
// # Dedenting
//
// Dedent strips the leading whitespace common to all non-blank lines and
// trims surrounding blank lines, so literals can be written at the natural
// nesting depth of the code:
//
//	text := multiline.Dedent(`
//	    First line:
//	        Indented second line
//	    Third line
//	`)
//	// First line:
//	//     Indented second line
//	// Third line
//
// # Indenting inner blocks
//
// Indent dedents a block and re-indents every line to a caller-supplied
// prefix. The overall result is trimmed, so the first line's prefix
// disappears; the caller's own text supplies the indentation up to the
// insertion point:
//
//	multiline.Indent(text, "    ")
//
// # Filling templates
//
// Fill substitutes {} placeholders in a template with positional arguments.
// When an argument is itself multiline and its placeholder is the first
// token on its line, the argument is re-indented to the placeholder's
// column, so nested blocks line up:
//
//	body := `
//	    if x > 0 {
//	        return x
//	    }
//	`
//	out, err := multiline.Fill(`
//	    func abs(x int) int {
//	        {}
//	        return -x
//	    }
//	`, body)
//	// func abs(x int) int {
//	//     if x > 0 {
//	//         return x
//	//     }
//	//     return -x
//	// }
//
// A line may contain at most one placeholder, and every placeholder must
// have an argument; violations are reported via the package's sentinel
// errors (see ErrMultiplePlaceholders and ErrTooFewArgs).
//
// # Snippet libraries
//
// The library subpackage loads named templates from YAML or TOML files and
// renders them through Fill:
//
//	import "github.com/randalmurphal/multiline/library"
//	lib, _ := library.Load("snippets.yaml")
//	out, _ := lib.Render("handler", "getUser", body)
//
// All operations are pure functions over their inputs: no I/O, no shared
// state, safe for concurrent use.
package multiline
