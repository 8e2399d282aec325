package render

import (
	"fmt"
	"log/slog"
	"strings"
)

// ReferencesHeader opens the footnote block appended to the body.
const ReferencesHeader = "*References*"

// References replaces each anchor with "text [n]" and appends "[n] url" lines
// under ReferencesHeader. Substitution is by markup value: identical anchors
// share one number, and logger gets a warning for each such duplicate.
func References(post string, logger *slog.Logger) (string, error) {
	if logger == nil {
		logger = slog.Default()
	}

	links, err := findAnchors(post)
	if err != nil {
		return "", err
	}

	var refs strings.Builder
	numbered := make(map[string]int, len(links))
	for _, link := range links {
		if n, ok := numbered[link.Raw]; ok {
			logger.Warn("duplicate anchor shares a reference", "ref", n, "href", link.Href)
			continue
		}
		n := len(numbered) + 1
		numbered[link.Raw] = n
		post = strings.ReplaceAll(post, link.Raw, fmt.Sprintf("%s [%d]", link.Text, n))
		fmt.Fprintf(&refs, "[%d] %s\n", n, link.Href)
	}

	return post + "\n\n" + ReferencesHeader + "\n" + refs.String() + "\n", nil
}
