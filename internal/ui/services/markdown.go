package services

import (
	"strings"
	"sync"

	"github.com/charmbracelet/glamour"
)

// MarkdownRenderer renders markdown for a given terminal width.
type MarkdownRenderer interface {
	Render(content string, width int) (string, error)
}

// GlamourRenderer renders markdown with glamour. Term renderers are cached
// per width since building one parses the whole style sheet.
type GlamourRenderer struct {
	style string

	mu        sync.Mutex
	renderers map[int]*glamour.TermRenderer
}

// NewGlamourRenderer creates a renderer that picks dark/light from the terminal.
func NewGlamourRenderer() *GlamourRenderer {
	return NewGlamourRendererWithStyle("")
}

// NewGlamourRendererWithStyle uses a named glamour style ("dark", "light",
// "notty", ...). An empty style means auto-detect.
func NewGlamourRendererWithStyle(style string) *GlamourRenderer {
	return &GlamourRenderer{
		style:     style,
		renderers: make(map[int]*glamour.TermRenderer),
	}
}

// Render renders content wrapped at width.
func (g *GlamourRenderer) Render(content string, width int) (string, error) {
	r, err := g.renderer(width)
	if err != nil {
		return "", err
	}
	out, err := r.Render(content)
	if err != nil {
		return "", err
	}
	return strings.Trim(out, "\n"), nil
}

func (g *GlamourRenderer) renderer(width int) (*glamour.TermRenderer, error) {
	g.mu.Lock()
	defer g.mu.Unlock()

	if r, ok := g.renderers[width]; ok {
		return r, nil
	}

	styleOpt := glamour.WithAutoStyle()
	if g.style != "" {
		styleOpt = glamour.WithStandardStyle(g.style)
	}
	r, err := glamour.NewTermRenderer(styleOpt, glamour.WithWordWrap(width))
	if err != nil {
		return nil, err
	}
	g.renderers[width] = r
	return r, nil
}

// RenderMarkdown renders content, falling back to the raw text on error or
// when no renderer is available.
func RenderMarkdown(content string, width int, renderer MarkdownRenderer) string {
	if renderer == nil || width < 10 {
		return content
	}
	out, err := renderer.Render(content, width)
	if err != nil {
		return content
	}
	return out
}
