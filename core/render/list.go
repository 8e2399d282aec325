package render

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/PuerkitoBio/goquery"

	"github.com/gaurav-prasanna/wp2plus/core"
)

var listRegex = regexp.MustCompile(`(?is)<ul(?:\s[^>]*)?>.*?</ul>`)

// Lists rewrites every unordered list as numbered lines. Each item must hold
// exactly one anchor: its text stays inline, its URL goes on the next line.
func Lists(post string) (string, error) {
	var firstErr error
	out := listRegex.ReplaceAllStringFunc(post, func(block string) string {
		if firstErr != nil {
			return block
		}
		text, err := convertList(block)
		if err != nil {
			firstErr = err
			return block
		}
		return text
	})
	if firstErr != nil {
		return "", firstErr
	}
	return out, nil
}

func convertList(block string) (string, error) {
	items, err := parseSnippet(block, itemSelector)
	if err != nil {
		return "", err
	}

	var b strings.Builder
	b.WriteString("\n")

	var itemErr error
	items.EachWithBreak(func(i int, li *goquery.Selection) bool {
		anchors := li.FindMatcher(anchorSelector)
		if anchors.Length() != 1 {
			itemErr = fmt.Errorf("%w: item %d has %d anchors, want 1", core.ErrMalformedListItem, i+1, anchors.Length())
			return false
		}
		raw, err := goquery.OuterHtml(anchors)
		if err != nil {
			itemErr = fmt.Errorf("serializing anchor: %w", err)
			return false
		}
		link, err := linkFromSelection(raw, anchors)
		if err != nil {
			itemErr = err
			return false
		}
		fmt.Fprintf(&b, "*%d.* %s\n%s\n\n", i+1, escape(strings.TrimSpace(li.Text())), link.Href)
		return true
	})
	if itemErr != nil {
		return "", itemErr
	}
	return b.String(), nil
}
