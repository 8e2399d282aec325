// Package pipeline runs a post through the conversion stages in order:
// figure extraction, free-text normalization, then structural conversion.
// Normalization must come first because the structural stages expect
// emphasis tags with clean boundaries.
package pipeline

import (
	"log/slog"

	"github.com/gaurav-prasanna/wp2plus/core"
	"github.com/gaurav-prasanna/wp2plus/core/extract"
	"github.com/gaurav-prasanna/wp2plus/core/normalize"
	"github.com/gaurav-prasanna/wp2plus/core/render"
)

// Stage names, used in logs and in *core.StageError.
const (
	StageFigures    = "extract figures"
	StageWhitespace = "normalize whitespace"
	StageDashes     = "normalize dashes"
	StageBoundaries = "fix emphasis boundaries"
	StageHeaders    = "convert headers"
	StageEmphasis   = "convert emphasis"
	StageLists      = "convert lists"
	StageReferences = "convert links"
	StageEntities   = "decode entities"
	StageFigure     = "format figure"
)

// Pipeline converts WordPress post markup to plain text.
type Pipeline struct {
	logger *slog.Logger
	body   []core.Stage
}

// New creates a Pipeline. A nil logger falls back to slog.Default().
func New(logger *slog.Logger) *Pipeline {
	if logger == nil {
		logger = slog.Default()
	}
	p := &Pipeline{logger: logger}
	p.body = []core.Stage{
		{Name: StageWhitespace, Apply: core.Pure(normalize.Whitespace)},
		{Name: StageDashes, Apply: core.Pure(normalize.Dashes)},
		{Name: StageBoundaries, Apply: core.Pure(normalize.EmphasisBoundaries)},
		{Name: StageHeaders, Apply: core.Pure(render.Headers)},
		{Name: StageEmphasis, Apply: core.Pure(render.Emphasis)},
		{Name: StageLists, Apply: render.Lists},
		{Name: StageReferences, Apply: func(post string) (string, error) {
			return render.References(post, p.logger)
		}},
		{Name: StageEntities, Apply: core.Pure(render.Entities)},
	}
	return p
}

// Stages returns the names of the body stages in execution order.
func (p *Pipeline) Stages() []string {
	names := make([]string, len(p.body))
	for i, s := range p.body {
		names[i] = s.Name
	}
	return names
}

// Convert runs raw through every stage. Nothing is returned on failure; the
// error is a *core.StageError naming the stage.
func (p *Pipeline) Convert(raw string) (*core.Result, error) {
	figures, body, err := extract.Figures(raw)
	if err != nil {
		return nil, &core.StageError{Stage: StageFigures, Err: err}
	}
	p.logger.Debug("stage done", "stage", StageFigures, "figures", len(figures), "bytes", len(body))
	for _, dup := range extract.Duplicates(figures) {
		p.logger.Warn("figure appears more than once", "figure", truncate(string(dup), 60))
	}

	body, err = Run(p.logger, body, p.body)
	if err != nil {
		return nil, err
	}

	formatted := make([]string, 0, len(figures))
	for i, fig := range figures {
		text, err := render.Figure(fig)
		if err != nil {
			return nil, &core.StageError{Stage: StageFigure, Err: err}
		}
		formatted = append(formatted, render.Entities(text))
		p.logger.Debug("stage done", "stage", StageFigure, "index", i)
	}

	return &core.Result{Figures: formatted, Body: body}, nil
}

// Run threads post through stages, stopping at the first failure.
func Run(logger *slog.Logger, post string, stages []core.Stage) (string, error) {
	for _, s := range stages {
		next, err := s.Apply(post)
		if err != nil {
			return "", &core.StageError{Stage: s.Name, Err: err}
		}
		logger.Debug("stage done", "stage", s.Name, "in", len(post), "out", len(next))
		post = next
	}
	return post, nil
}

func truncate(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n]) + "..."
}
