// Package export turns built documents into files on disk: named
// downloads into the output directory and transient preview files.
package export

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/elivatehq/planner/internal/document"
)

// Renderer produces the final document bytes. The PDF backend is the
// production implementation; tests substitute fakes.
type Renderer interface {
	Render(*document.Document) ([]byte, error)
}

// ErrBusy is returned when an export for the same document type is
// already in flight. Exports of different document types may overlap.
var ErrBusy = errors.New("export already in progress")

// User-visible status strings, surfaced verbatim in the UI.
const (
	StatusGenerating        = "Generating PDF..."
	StatusDownloaded        = "Downloaded."
	StatusFailed            = "Failed to generate PDF. Try again."
	StatusPreviewGenerating = "Generating preview..."
	StatusPreviewFailed     = "Failed to generate preview."
)

// Pipeline coordinates document exports.
type Pipeline struct {
	renderer  Renderer
	outputDir string

	mu   sync.Mutex
	busy map[document.Type]bool
}

// NewPipeline returns a pipeline writing downloads into outputDir.
func NewPipeline(r Renderer, outputDir string) *Pipeline {
	return &Pipeline{
		renderer:  r,
		outputDir: outputDir,
		busy:      make(map[document.Type]bool),
	}
}

func (p *Pipeline) acquire(t document.Type) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.busy[t] {
		return ErrBusy
	}
	p.busy[t] = true
	return nil
}

func (p *Pipeline) release(t document.Type) {
	p.mu.Lock()
	p.busy[t] = false
	p.mu.Unlock()
}

// Download renders the document and writes it to the output directory
// under its deterministic name. It returns the written path. Failures
// are retryable; the busy guard is always released.
func (p *Pipeline) Download(doc *document.Document) (string, error) {
	if err := p.acquire(doc.Type); err != nil {
		return "", err
	}
	defer p.release(doc.Type)

	data, err := p.renderer.Render(doc)
	if err != nil {
		return "", fmt.Errorf("rendering %s: %w", doc.Type, err)
	}

	if err := os.MkdirAll(p.outputDir, 0o755); err != nil {
		return "", fmt.Errorf("creating output dir: %w", err)
	}
	path := filepath.Join(p.outputDir, Filename(doc))
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return "", fmt.Errorf("writing %s: %w", path, err)
	}
	return path, nil
}

// PreviewHandle is an open preview: a transient file that disappears
// when the handle is closed.
type PreviewHandle struct {
	Path string
}

// Close removes the preview file.
func (h *PreviewHandle) Close() error {
	if h == nil || h.Path == "" {
		return nil
	}
	err := os.Remove(h.Path)
	h.Path = ""
	if err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("removing preview: %w", err)
	}
	return nil
}

// Preview renders the document into a transient file. A failed preview
// leaves nothing on disk.
func (p *Pipeline) Preview(doc *document.Document) (*PreviewHandle, error) {
	if err := p.acquire(doc.Type); err != nil {
		return nil, err
	}
	defer p.release(doc.Type)

	data, err := p.renderer.Render(doc)
	if err != nil {
		return nil, fmt.Errorf("rendering %s preview: %w", doc.Type, err)
	}

	f, err := os.CreateTemp("", "planner-preview-*.pdf")
	if err != nil {
		return nil, fmt.Errorf("creating preview file: %w", err)
	}
	if _, err := f.Write(data); err != nil {
		_ = f.Close()
		_ = os.Remove(f.Name())
		return nil, fmt.Errorf("writing preview: %w", err)
	}
	if err := f.Close(); err != nil {
		_ = os.Remove(f.Name())
		return nil, fmt.Errorf("closing preview: %w", err)
	}
	return &PreviewHandle{Path: f.Name()}, nil
}
