// Package normalize implements the free-text cleanup stages that run before
// any markup is converted: whitespace and punctuation around emphasis tags,
// dash runs, and spacing at emphasis boundaries.
package normalize

import "strings"

// whitespaceRules are applied in order. The header rules appear twice so a
// single pass already collapses a triple newline.
var whitespaceRules = [][2]string{
	{" </em>", "</em>"},
	{"<em> ", "<em>"},
	{"<strong> ", "<strong>"},
	{" </strong>", "</strong>"},
	{"\n\n<h2>", "\n<h2>"},
	{"</h2>\n\n", "</h2>\n"},
	{"</em>.", ".</em>"},
	{"</em>,", ",</em>"},
	{"</strong>.", ".</strong>"},
	{"</strong>,", ",</strong>"},
	{"\n\n<h2>", "\n<h2>"},
	{"</h2>\n\n", "</h2>\n"},
}

// maxPasses bounds the fixpoint loop. Every rule shortens the string or
// moves punctuation left, so real input settles in a handful of passes.
const maxPasses = 64

// Whitespace strips spaces just inside emphasis tags, collapses blank lines
// around headers and pulls trailing periods and commas inside the closing
// emphasis tag. The rule table is repeated until nothing changes, so the
// result is stable under a second call.
func Whitespace(post string) string {
	for i := 0; i < maxPasses; i++ {
		next := applyRules(post)
		if next == post {
			break
		}
		post = next
	}
	return post
}

func applyRules(post string) string {
	for _, r := range whitespaceRules {
		post = strings.ReplaceAll(post, r[0], r[1])
	}
	return post
}
