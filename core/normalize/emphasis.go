package normalize

import "regexp"

type boundaryRule struct {
	re   *regexp.Regexp
	repl string
}

// boundaryRules run in order: bold open, bold close, italics open, italics close.
var boundaryRules = []boundaryRule{
	{regexp.MustCompile(`(\S)<strong>`), "$1 <strong>"},
	{regexp.MustCompile(`</strong>(\S)`), "</strong> $1"},
	{regexp.MustCompile(`(\S)<em>`), "$1 <em>"},
	{regexp.MustCompile(`</em>(\S)`), "</em> $1"},
}

// EmphasisBoundaries puts a space between an emphasis tag and any
// non-whitespace character touching it from outside. The plain-text markers
// the tags become are only honoured next to whitespace. Each rule replaces
// all of its matches in a single pass.
func EmphasisBoundaries(post string) string {
	for _, r := range boundaryRules {
		post = r.re.ReplaceAllString(post, r.repl)
	}
	return post
}
