package normalize

import (
	"regexp"
	"strings"
)

// dashReplacer checks longer runs first at each position, so "---" never
// degrades into "--" plus a leftover dash.
var dashReplacer = strings.NewReplacer(
	"---", ", ",
	"--", ", ",
	"—", ", ",
	"&mdash;", ", ",
	"&#8212;", ", ",
)

// tagRegex matches markup left alone by Dashes: comments first, since they
// may hold '>', then ordinary tags.
var tagRegex = regexp.MustCompile(`(?s)<!--.*?-->|<[^>]*>`)

// Dashes turns double and triple dashes (and em-dashes) into ", ".
// Only text between tags is rewritten; attribute values and comments keep
// their dashes.
func Dashes(post string) string {
	var b strings.Builder
	last := 0
	for _, loc := range tagRegex.FindAllStringIndex(post, -1) {
		b.WriteString(dashReplacer.Replace(post[last:loc[0]]))
		b.WriteString(post[loc[0]:loc[1]])
		last = loc[1]
	}
	b.WriteString(dashReplacer.Replace(post[last:]))
	return b.String()
}
