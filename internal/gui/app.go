// Package gui provides the desktop signature pad using Fyne.
package gui

import (
	"fmt"
	"image/color"
	"io"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/storage"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"

	"sigpad/internal/config"
	"sigpad/internal/logging"
	"sigpad/pkg/export"
	"sigpad/pkg/graphics"
	"sigpad/pkg/signature"
)

// App represents the signature pad application.
type App struct {
	fyneApp    fyne.App
	mainWindow fyne.Window
	cfg        config.Config

	sig *signature.Signature

	// UI components
	pad     *SignaturePad
	preview *PreviewPane
	toolbar *Toolbar
	status  *StatusBar
}

// NewApp creates a new signature pad application from a validated config.
func NewApp(cfg config.Config) *App {
	return newApp(app.New(), cfg)
}

func newApp(fyneApp fyne.App, cfg config.Config) *App {
	a := &App{
		fyneApp: fyneApp,
		cfg:     cfg,
		sig:     signature.New(),
	}

	a.mainWindow = a.fyneApp.NewWindow("Sigpad")
	a.mainWindow.Resize(fyne.NewSize(cfg.Window.Width, cfg.Window.Height))

	return a
}

// Run starts the application.
func (a *App) Run() {
	a.buildUI()
	a.mainWindow.ShowAndRun()
}

// buildUI constructs the user interface.
func (a *App) buildUI() {
	opts := signature.NewOptions(a.cfg.SignatureOptions()...)

	a.pad = NewSignaturePad(a.sig)
	a.pad.SetPathOptions(opts)
	if pen, err := a.cfg.PenColor(); err == nil {
		a.pad.SetPen(pen, a.cfg.Pen.Width)
	}
	a.pad.OnChanged = a.onChanged

	a.preview = NewPreviewPane(a.sig, graphics.Sz(float64(a.cfg.Preview.Width), float64(a.cfg.Preview.Height)))
	a.preview.SetPathOptions(opts)

	a.toolbar = NewToolbar()
	a.toolbar.SetState(a.cfg.Pen.Width, opts.Smoothed, opts.IncludeLine)
	a.toolbar.SetSaveEnabled(false)
	a.toolbar.OnColor = func(c color.NRGBA) {
		_, w := a.pad.Pen()
		a.pad.SetPen(c, w)
	}
	a.toolbar.OnWidth = func(w float64) {
		c, _ := a.pad.Pen()
		a.pad.SetPen(c, w)
	}
	a.toolbar.OnSmoothed = func(on bool) {
		o := a.pad.PathOptions()
		o.Smoothed = on
		a.setPathOptions(o)
	}
	a.toolbar.OnGuideline = func(on bool) {
		o := a.pad.PathOptions()
		o.IncludeLine = on
		a.setPathOptions(o)
	}
	a.toolbar.OnClear = a.pad.Clear
	a.toolbar.OnSave = a.save

	a.status = NewStatusBar()

	zoomOutBtn := widget.NewButtonWithIcon("", theme.ZoomOutIcon(), a.preview.ZoomOut)
	zoomInBtn := widget.NewButtonWithIcon("", theme.ZoomInIcon(), a.preview.ZoomIn)
	previewBar := container.NewHBox(
		widget.NewLabel("Preview"),
		zoomOutBtn,
		zoomInBtn,
	)

	// Main layout
	content := container.NewBorder(
		container.NewPadded(a.toolbar.Container()), // Top
		container.NewVBox( // Bottom
			widget.NewSeparator(),
			previewBar,
			container.NewHScroll(a.preview),
			a.status.Container(),
		),
		nil,   // Left
		nil,   // Right
		a.pad, // Center
	)

	a.mainWindow.SetContent(content)
	a.mainWindow.Canvas().SetOnTypedKey(a.handleKey)
}

// handleKey handles keyboard shortcuts.
func (a *App) handleKey(key *fyne.KeyEvent) {
	switch key.Name {
	case fyne.KeyDelete, fyne.KeyBackspace, fyne.KeyEscape:
		a.pad.Clear()
	case fyne.KeyPlus, fyne.KeyEqual:
		a.preview.ZoomIn()
	case fyne.KeyMinus:
		a.preview.ZoomOut()
	case fyne.Key0:
		a.preview.ResetZoom()
	}
}

func (a *App) setPathOptions(o signature.Options) {
	a.pad.SetPathOptions(o)
	a.preview.SetPathOptions(o)
}

// onChanged keeps the preview and status in step with the pad.
func (a *App) onChanged() {
	a.preview.Update()
	a.status.SetStrokes(a.sig.StrokeCount())
	a.toolbar.SetSaveEnabled(!a.sig.IsEmpty())
}

// save shows a file dialog, exports the signature and clears the pad.
func (a *App) save() {
	d := dialog.NewFileSave(func(writer fyne.URIWriteCloser, err error) {
		if err != nil {
			dialog.ShowError(err, a.mainWindow)
			return
		}
		if writer == nil {
			return // Cancelled
		}

		format, err := export.ParseFormat(writer.URI().Extension())
		if err != nil {
			writer.Close()
			dialog.ShowError(err, a.mainWindow)
			return
		}
		if err := a.saveTo(writer, format); err != nil {
			writer.Close()
			dialog.ShowError(err, a.mainWindow)
			return
		}
		if err := writer.Close(); err != nil {
			dialog.ShowError(fmt.Errorf("failed to close file: %w", err), a.mainWindow)
			return
		}
		a.status.SetStatus("Saved " + writer.URI().Name())
	}, a.mainWindow)
	d.SetFileName("signature." + a.cfg.Export.Format)
	d.SetFilter(storage.NewExtensionFileFilter([]string{".png", ".jpg", ".jpeg", ".pdf"}))
	d.Show()
}

// saveTo writes the signature as it appears on the pad and then clears it.
func (a *App) saveTo(w io.Writer, format export.Format) error {
	exportOpts, err := a.cfg.ExportOptions()
	if err != nil {
		return err
	}
	exportOpts = append(exportOpts,
		export.As(format),
		export.Signature(signature.WithOptions(a.pad.PathOptions())),
	)

	size := a.pad.SurfaceSize()
	if err := export.Encode(w, a.sig, size, export.NewOptions(exportOpts...)); err != nil {
		return fmt.Errorf("failed to save signature: %w", err)
	}
	logging.Log.WithField("format", format).Infof("saved %d strokes", a.sig.StrokeCount())
	a.pad.Clear()
	return nil
}
