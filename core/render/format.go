package render

import (
	"regexp"
	"strings"
)

var (
	headingOpenRegex  = regexp.MustCompile(`(?i)<h[1-6](?:\s[^>]*)?>`)
	headingCloseRegex = regexp.MustCompile(`(?i)</h[1-6]\s*>`)
)

// Headers turns each heading into a bold line of its own.
func Headers(post string) string {
	post = headingOpenRegex.ReplaceAllString(post, "\n*")
	return headingCloseRegex.ReplaceAllString(post, "*\n")
}

var emphasisReplacer = strings.NewReplacer(
	"<em>", "_",
	"</em>", "_",
	"<strong>", "*",
	"</strong>", "*",
)

// Emphasis maps <em> to _ and <strong> to *. Overlapping tags are converted
// literally; nothing checks that the result nests.
func Emphasis(post string) string {
	return emphasisReplacer.Replace(post)
}
