package app

import (
	"fmt"
	"image"
	"io"

	"github.com/simplechat/appicon/internal/export"
	"github.com/simplechat/appicon/internal/render"
)

// SuccessMessage is printed once every icon has been written.
const SuccessMessage = "All app icons created successfully!"

type App struct {
	Config Config
	Out    io.Writer
	Logger Logger

	// ShowFunc displays the contact sheet; defaults to the framebuffer.
	ShowFunc func(device string, sheet image.Image) error
}

func New(cfg Config, out io.Writer) *App {
	return &App{Config: cfg, Out: out, Logger: NoopLogger{}, ShowFunc: render.ShowOnFramebuffer}
}

// Run exports every icon, then produces the optional preview outputs.
func (app *App) Run() error {
	if app.Logger == nil {
		app.Logger = NoopLogger{}
	}
	out := app.Out
	if out == nil {
		out = io.Discard
	}

	exporter := export.NewExporter(app.Config.Root)
	exporter.Out = out
	exporter.Logger = app.Logger
	results, err := exporter.Run()
	if err != nil {
		return err
	}
	app.Logger.Infof("app", "exported %d icons under %s", len(results), app.Config.Root)

	if err := app.preview(out, results); err != nil {
		return err
	}
	fmt.Fprintln(out, SuccessMessage)
	return nil
}

func (app *App) preview(out io.Writer, results []export.Result) error {
	if app.Config.PreviewPath == "" && app.Config.Framebuffer == "" {
		return nil
	}
	tiles := make([]render.Tile, 0, len(results))
	for _, res := range results {
		tiles = append(tiles, render.Tile{
			Label: render.TileLabel(res.Target.Name, res.Target.SizePx),
			Image: res.Image,
		})
	}
	sheet := render.ContactSheet(tiles)

	if path := app.Config.PreviewPath; path != "" {
		if err := render.SavePNG(path, sheet); err != nil {
			app.Logger.Errorf("preview", "save contact sheet failed: %v", err)
			return err
		}
		b := sheet.Bounds()
		fmt.Fprintf(out, "Created %s (%dx%d)\n", path, b.Dx(), b.Dy())
	}
	if device := app.Config.Framebuffer; device != "" {
		show := app.ShowFunc
		if show == nil {
			show = render.ShowOnFramebuffer
		}
		if err := show(device, sheet); err != nil {
			app.Logger.Errorf("preview", "framebuffer display failed: %v", err)
			return err
		}
		app.Logger.Infof("preview", "contact sheet shown on %s", device)
	}
	return nil
}
