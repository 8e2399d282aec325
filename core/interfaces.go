// Package core defines the pipeline interfaces for wp2plus.
// Each stage of the pipeline is a clean, testable function over the post string.
package core

import "context"

// Figure is a raw caption block ([caption id=...]...[/caption]) lifted out of a post.
type Figure string

// Link represents a hyperlink found in the content.
type Link struct {
	Raw  string // exact source markup, used as the replacement key
	Text string
	Href string
}

// Result holds the converted post: formatted figures and the body text.
type Result struct {
	Figures []string
	Body    string
}

// Loader retrieves the raw post text from a named source.
type Loader interface {
	Load(ctx context.Context, source string) (string, error)
}

// Transform rewrites the post document. Implementations must not keep state
// between calls.
type Transform func(post string) (string, error)

// Stage is a named step of the pipeline.
type Stage struct {
	Name  string
	Apply Transform
}

// Pure lifts an infallible rewrite into a Transform.
func Pure(fn func(string) string) Transform {
	return func(post string) (string, error) {
		return fn(post), nil
	}
}
