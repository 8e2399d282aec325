package render

import (
	"regexp"
	"strings"

	"github.com/gaurav-prasanna/wp2plus/core"
	"github.com/gaurav-prasanna/wp2plus/core/extract"
	"github.com/gaurav-prasanna/wp2plus/core/normalize"
)

var imageRegex = regexp.MustCompile(`(?i)<img\b[^>]*>`)

// Figure formats one caption block as a single line: caption text with
// credit links inlined, followed by their URLs. The first anchor is dropped
// only when it wraps an <img>; a caption whose image is not linked keeps its
// first anchor as a credit link. Unwrapped <img> tags are cut out of the text.
func Figure(fig core.Figure) (string, error) {
	s := normalize.Whitespace(string(fig))
	s = normalize.EmphasisBoundaries(s)
	s = Headers(s)
	s = Emphasis(s)

	if i := strings.Index(s, "]"); i >= 0 {
		s = s[i+1:]
	}
	s = strings.TrimSuffix(s, extract.CaptionEnd)

	links, err := findAnchors(s)
	if err != nil {
		return "", err
	}

	var urls []string
	for i, link := range links {
		if i == 0 && wrapsImage(link.Raw) {
			s = strings.Replace(s, link.Raw, "", 1)
			continue
		}
		s = strings.Replace(s, link.Raw, link.Text, 1)
		urls = append(urls, link.Href)
	}

	s = strings.TrimSpace(imageRegex.ReplaceAllString(s, ""))
	for _, u := range urls {
		s += " " + u
	}
	return s, nil
}

func wrapsImage(raw string) bool {
	sel, err := parseSnippet(raw, imageSelector)
	return err == nil && sel.Length() > 0
}
