// Package output prints midir results as plain text, styled terminal text,
// JSON or YAML.
package output

import (
	"encoding/json"
	stderrors "errors"
	"fmt"
	"io"
	"os"

	"github.com/arthur-debert/midir/pkg/errors"
	"github.com/charmbracelet/lipgloss"
	"gopkg.in/yaml.v3"
)

// Renderer writes results in a fixed format
type Renderer struct {
	writer io.Writer
	format Format
	styles map[string]lipgloss.Style
}

// NewRenderer creates a Renderer. FormatAuto is resolved against w when w is
// a file and falls back to FormatText otherwise.
func NewRenderer(w io.Writer, format Format) *Renderer {
	if format == FormatAuto {
		format = FormatText
		if f, ok := w.(*os.File); ok {
			format = DetectFormat(f)
		}
	}
	return &Renderer{
		writer: w,
		format: format,
		styles: newStyles(lipgloss.NewRenderer(w)),
	}
}

// Format returns the resolved format
func (r *Renderer) Format() Format {
	return r.format
}

// Value renders a single path or string
func (r *Renderer) Value(v string) error {
	switch r.format {
	case FormatJSON:
		return r.json(v)
	case FormatYAML:
		return r.yaml(v)
	case FormatTerminal:
		return r.line(r.styles[StylePath].Render(v))
	default:
		return r.line(v)
	}
}

// List renders an ordered list of paths. The title is only shown on terminals.
func (r *Renderer) List(title string, items []string) error {
	if items == nil {
		items = []string{}
	}

	switch r.format {
	case FormatJSON:
		return r.json(items)
	case FormatYAML:
		return r.yaml(items)
	case FormatTerminal:
		if title != "" {
			if err := r.line(r.styles[StyleHeading].Render(title)); err != nil {
				return err
			}
		}
		if len(items) == 0 {
			return r.line(r.styles[StyleMuted].Render("(empty)"))
		}
		for _, item := range items {
			if err := r.line(r.styles[StylePath].Render(item)); err != nil {
				return err
			}
		}
		return nil
	default:
		for _, item := range items {
			if err := r.line(item); err != nil {
				return err
			}
		}
		return nil
	}
}

// Raw writes pre-formatted text unchanged
func (r *Renderer) Raw(text string) error {
	_, err := io.WriteString(r.writer, text)
	return err
}

// Error renders err in the error style, including its code when it has one
func (r *Renderer) Error(err error) {
	if err == nil {
		return
	}
	msg := fmt.Sprintf("Error: %v", err)
	var midirErr *errors.MidirError
	if stderrors.As(err, &midirErr) {
		msg = fmt.Sprintf("Error (%s): %s", midirErr.Code, midirErr.Message)
		if midirErr.Wrapped != nil {
			msg = fmt.Sprintf("%s: %v", msg, midirErr.Wrapped)
		}
	}
	_ = r.line(r.styles[StyleError].Render(msg))
}

func (r *Renderer) line(s string) error {
	_, err := fmt.Fprintln(r.writer, s)
	return err
}

func (r *Renderer) json(v interface{}) error {
	enc := json.NewEncoder(r.writer)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func (r *Renderer) yaml(v interface{}) error {
	enc := yaml.NewEncoder(r.writer)
	enc.SetIndent(2)
	if err := enc.Encode(v); err != nil {
		return err
	}
	return enc.Close()
}
