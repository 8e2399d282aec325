// Package extract lifts WordPress caption shortcodes out of a post.
// Figures are removed from the body before any other stage runs and are
// formatted on their own.
package extract

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/gaurav-prasanna/wp2plus/core"
)

// Caption shortcode markers.
const (
	CaptionStart = "[caption id="
	CaptionEnd   = "[/caption]"
)

// captionRegex matches from an opening marker to the earliest closing marker.
var captionRegex = regexp.MustCompile(`(?s)` + regexp.QuoteMeta(CaptionStart) + `.+?` + regexp.QuoteMeta(CaptionEnd))

// Figures returns every caption block in order of appearance together with
// the body left once they are gone. Removal is by value: a caption that
// appears twice verbatim is removed everywhere.
func Figures(post string) ([]core.Figure, string, error) {
	matches := captionRegex.FindAllString(post, -1)
	figures := make([]core.Figure, 0, len(matches))

	body := post
	for _, m := range matches {
		figures = append(figures, core.Figure(m))
		body = strings.ReplaceAll(body, m, "")
	}

	if i := strings.Index(body, CaptionStart); i >= 0 {
		return nil, "", fmt.Errorf("%w: unterminated %q at offset %d", core.ErrMalformedCaption, CaptionStart, i)
	}
	if strings.Contains(body, CaptionEnd) {
		return nil, "", fmt.Errorf("%w: %q without opening marker", core.ErrMalformedCaption, CaptionEnd)
	}

	return figures, strings.TrimSpace(body), nil
}

// Duplicates lists figures whose text occurs more than once, each reported once.
func Duplicates(figures []core.Figure) []core.Figure {
	seen := make(map[core.Figure]int, len(figures))
	var dups []core.Figure
	for _, f := range figures {
		seen[f]++
		if seen[f] == 2 {
			dups = append(dups, f)
		}
	}
	return dups
}
