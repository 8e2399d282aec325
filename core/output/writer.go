// Package output emits converted posts.
// Figures come first, each closed by a divider, then the body.
package output

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/gaurav-prasanna/wp2plus/core"
)

// DefaultDivider separates figures from each other and from the body.
const DefaultDivider = "----------"

// Writer writes rendered output to stdout or a file.
type Writer struct {
	Path    string
	Divider string
	stdout  io.Writer
}

// New creates a Writer. An empty path means stdout; an empty divider means
// DefaultDivider.
func New(path, divider string) *Writer {
	if divider == "" {
		divider = DefaultDivider
	}
	return &Writer{Path: path, Divider: divider, stdout: os.Stdout}
}

// Write emits res to the configured destination.
func (w *Writer) Write(res *core.Result) error {
	if w.Path == "" {
		return Emit(w.stdout, res, w.Divider)
	}

	if dir := filepath.Dir(w.Path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("creating directory %s: %w", dir, err)
		}
	}
	var b strings.Builder
	if err := Emit(&b, res, w.Divider); err != nil {
		return err
	}
	if err := os.WriteFile(w.Path, []byte(b.String()), 0o644); err != nil {
		return fmt.Errorf("writing file %s: %w", w.Path, err)
	}
	return nil
}

// Emit writes a divider line, each figure followed by a divider, then the body.
func Emit(w io.Writer, res *core.Result, divider string) error {
	if _, err := fmt.Fprintln(w, divider); err != nil {
		return fmt.Errorf("writing output: %w", err)
	}
	for _, fig := range res.Figures {
		if _, err := fmt.Fprintf(w, "%s\n%s\n", fig, divider); err != nil {
			return fmt.Errorf("writing output: %w", err)
		}
	}
	if _, err := io.WriteString(w, res.Body); err != nil {
		return fmt.Errorf("writing output: %w", err)
	}
	return nil
}
