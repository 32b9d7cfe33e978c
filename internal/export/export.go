// Package export writes the launcher icon at every target size.
package export

import (
	"fmt"
	"image"
	"io"
	"os"
	"path/filepath"

	"github.com/simplechat/appicon/internal/icon"
	"github.com/simplechat/appicon/internal/render"
)

type logger interface {
	Infof(string, string, ...interface{})
	Errorf(string, string, ...interface{})
}

type noopLogger struct{}

func (noopLogger) Infof(string, string, ...interface{})  {}
func (noopLogger) Errorf(string, string, ...interface{}) {}

// Result describes one written file.
type Result struct {
	Target Target
	Path   string // on disk, including the root
	Image  *image.NRGBA
}

// Exporter renders and saves Targets under Root.
type Exporter struct {
	Root    string
	Targets []Target
	Out     io.Writer // progress lines; nil discards them
	Logger  logger
	Render  func(sizePx int) *image.NRGBA
}

func NewExporter(root string) *Exporter {
	return &Exporter{Root: root, Targets: Targets, Out: io.Discard, Logger: noopLogger{}, Render: icon.Compose}
}

// Run writes every target in order. It stops at the first failure and returns
// the results written so far together with the error; files already written
// are left in place. Existing files are overwritten.
func (e *Exporter) Run() ([]Result, error) {
	out := e.Out
	if out == nil {
		out = io.Discard
	}
	var log logger = noopLogger{}
	if e.Logger != nil {
		log = e.Logger
	}
	renderFn := e.Render
	if renderFn == nil {
		renderFn = icon.Compose
	}

	results := make([]Result, 0, len(e.Targets))
	for _, t := range e.Targets {
		dir := filepath.Join(e.Root, t.Dir)
		if err := os.MkdirAll(dir, 0o755); err != nil {
			log.Errorf("export", "mkdir %s failed: %v", dir, err)
			return results, fmt.Errorf("create directory %s: %w", dir, err)
		}

		img := renderFn(t.SizePx)
		path := filepath.Join(e.Root, t.Path())
		if err := render.SavePNG(path, img); err != nil {
			log.Errorf("export", "save %s failed: %v", path, err)
			return results, err
		}
		log.Infof("export", "wrote %s (%s, %dpx)", path, t.Name, t.SizePx)
		fmt.Fprintf(out, "Created %s (%dx%d)\n", t.Path(), t.SizePx, t.SizePx)

		results = append(results, Result{Target: t, Path: path, Image: img})
	}
	return results, nil
}
