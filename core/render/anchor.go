// Package render converts normalized post markup into the plain-text form
// understood by the target network: `*bold*`, `_italics_`, numbered lists and
// footnote-style references.
//
// Free-text rewrites work on the string directly. Anchors and list items are
// parsed with goquery, one snippet at a time, so the surrounding text is
// never re-serialized.
package render

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/andybalholm/cascadia"
	"golang.org/x/net/html"

	"github.com/gaurav-prasanna/wp2plus/core"
)

var (
	anchorSelector = cascadia.MustCompile("a")
	itemSelector   = cascadia.MustCompile("li")
	imageSelector  = cascadia.MustCompile("img")
)

// anchorRegex locates anchor markup in the raw text. The match is the
// replacement key; parseAnchor reads its attributes.
var anchorRegex = regexp.MustCompile(`(?is)<a(?:\s[^>]*)?>.*?</a>`)

// findAnchors returns every anchor in post, in document order.
func findAnchors(post string) ([]core.Link, error) {
	raws := anchorRegex.FindAllString(post, -1)
	links := make([]core.Link, 0, len(raws))
	for _, raw := range raws {
		link, err := parseAnchor(raw)
		if err != nil {
			return nil, err
		}
		links = append(links, link)
	}
	return links, nil
}

func parseAnchor(raw string) (core.Link, error) {
	sel, err := parseSnippet(raw, anchorSelector)
	if err != nil {
		return core.Link{}, err
	}
	if sel.Length() == 0 {
		return core.Link{}, fmt.Errorf("%w: %s", core.ErrMalformedAnchor, raw)
	}
	return linkFromSelection(raw, sel.First())
}

func linkFromSelection(raw string, a *goquery.Selection) (core.Link, error) {
	href, ok := a.Attr("href")
	if !ok {
		return core.Link{}, fmt.Errorf("%w: missing href in %s", core.ErrMalformedAnchor, raw)
	}
	return core.Link{
		Raw:  raw,
		Text: escape(strings.TrimSpace(a.Text())),
		Href: escape(href),
	}, nil
}

// parseSnippet parses an HTML fragment and selects m inside it.
func parseSnippet(snippet string, m goquery.Matcher) (*goquery.Selection, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(snippet))
	if err != nil {
		return nil, fmt.Errorf("parsing HTML: %w", err)
	}
	return doc.FindMatcher(m), nil
}

// escape keeps text pulled out of the parse tree in the same entity-encoded
// form as the rest of the document. Entities decodes everything at the end.
func escape(s string) string {
	return html.EscapeString(s)
}

// Entities decodes HTML character references in the finished text.
func Entities(post string) string {
	return html.UnescapeString(post)
}
