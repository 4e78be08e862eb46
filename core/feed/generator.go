// ABOUTME: Feed generator orchestrates podcast rendering through a writer
// ABOUTME: Provides the library-facing entry point with structured logging

package feed

import (
	"io"

	"podcast-feed-api/core/domain"
	"podcast-feed-api/core/interfaces"
	"podcast-feed-api/core/render"
)

// Generator turns a validated Podcast into its XML document through an
// injected generic writer.
type Generator struct {
	writer render.Writer
	deps   interfaces.Dependencies
}

// NewGenerator creates a generator around the given writer and
// dependencies. The logger is optional.
func NewGenerator(writer render.Writer, deps interfaces.Dependencies) *Generator {
	return &Generator{
		writer: writer,
		deps:   deps,
	}
}

// Generate renders the podcast into a complete XML document string.
// Validation failures abort before any output is produced.
func (g *Generator) Generate(podcast *domain.Podcast) (string, error) {
	out, err := podcast.Render(g.writer)
	if err != nil {
		if g.deps.Logger != nil {
			g.deps.Logger.Error("Failed to render feed", map[string]interface{}{
				"title": podcast.Title(),
				"error": err.Error(),
			})
		}
		return "", err
	}

	if g.deps.Logger != nil {
		g.deps.Logger.Info("Rendered feed", map[string]interface{}{
			"title":    podcast.Title(),
			"episodes": len(podcast.Episodes()),
			"bytes":    len(out),
		})
	}
	return out, nil
}

// WriteTo renders the podcast and streams the document to w.
func (g *Generator) WriteTo(podcast *domain.Podcast, w io.Writer) error {
	out, err := g.Generate(podcast)
	if err != nil {
		return err
	}
	_, err = io.WriteString(w, out)
	return err
}
