package gui

import (
	"image/color"
	"strconv"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"

	"sigpad/pkg/graphics"
)

// Pen widths offered by the toolbar.
var penWidths = []string{"1", "2", "3", "4"}

// colorSwatch is a tappable square of one pen color.
type colorSwatch struct {
	widget.BaseWidget
	Color    color.NRGBA
	OnTapped func(color.NRGBA)
}

func newColorSwatch(c color.NRGBA, tapped func(color.NRGBA)) *colorSwatch {
	s := &colorSwatch{Color: c, OnTapped: tapped}
	s.ExtendBaseWidget(s)
	return s
}

func (s *colorSwatch) CreateRenderer() fyne.WidgetRenderer {
	rect := canvas.NewRectangle(s.Color)
	rect.SetMinSize(fyne.NewSize(28, 28))

	border := canvas.NewRectangle(color.Transparent)
	border.StrokeColor = color.Gray{Y: 150}
	border.StrokeWidth = 1

	return widget.NewSimpleRenderer(container.NewStack(rect, border))
}

func (s *colorSwatch) Tapped(_ *fyne.PointEvent) {
	if s.OnTapped != nil {
		s.OnTapped(s.Color)
	}
}

// Toolbar provides pen, rendering and file controls.
type Toolbar struct {
	container *fyne.Container

	// Callbacks
	OnColor     func(c color.NRGBA)
	OnWidth     func(width float64)
	OnSmoothed  func(on bool)
	OnGuideline func(on bool)
	OnClear     func()
	OnSave      func()

	// Components
	swatches  []*colorSwatch
	widths    *widget.RadioGroup
	smoothed  *widget.Check
	guideline *widget.Check
	saveBtn   *widget.Button
}

// NewToolbar creates a new toolbar.
func NewToolbar() *Toolbar {
	t := &Toolbar{}
	t.build()
	return t
}

func (t *Toolbar) build() {
	onColor := func(c color.NRGBA) {
		if t.OnColor != nil {
			t.OnColor(c)
		}
	}
	colors := container.NewHBox()
	for _, c := range []color.NRGBA{graphics.Black, graphics.Blue, graphics.Red, graphics.Green} {
		s := newColorSwatch(c, onColor)
		t.swatches = append(t.swatches, s)
		colors.Add(s)
	}

	t.widths = widget.NewRadioGroup(penWidths, func(s string) {
		w, err := strconv.ParseFloat(s, 64)
		if err == nil && t.OnWidth != nil {
			t.OnWidth(w)
		}
	})
	t.widths.Horizontal = true
	t.widths.Required = true

	t.smoothed = widget.NewCheck("Smooth", func(on bool) {
		if t.OnSmoothed != nil {
			t.OnSmoothed(on)
		}
	})
	t.guideline = widget.NewCheck("Guideline", func(on bool) {
		if t.OnGuideline != nil {
			t.OnGuideline(on)
		}
	})

	clearBtn := widget.NewButtonWithIcon("Clear", theme.ContentClearIcon(), func() {
		if t.OnClear != nil {
			t.OnClear()
		}
	})
	t.saveBtn = widget.NewButtonWithIcon("Save", theme.DocumentSaveIcon(), func() {
		if t.OnSave != nil {
			t.OnSave()
		}
	})

	t.container = container.NewHBox(
		colors,
		widget.NewSeparator(),
		widget.NewLabel("Width"),
		t.widths,
		widget.NewSeparator(),
		t.smoothed,
		t.guideline,
		widget.NewSeparator(),
		clearBtn,
		t.saveBtn,
	)
}

// Container returns the toolbar container.
func (t *Toolbar) Container() *fyne.Container {
	return t.container
}

// SetState shows the given settings without firing callbacks.
func (t *Toolbar) SetState(width float64, smoothed, guideline bool) {
	onWidth, onSmoothed, onGuideline := t.OnWidth, t.OnSmoothed, t.OnGuideline
	t.OnWidth, t.OnSmoothed, t.OnGuideline = nil, nil, nil
	defer func() {
		t.OnWidth, t.OnSmoothed, t.OnGuideline = onWidth, onSmoothed, onGuideline
	}()

	t.widths.SetSelected(strconv.FormatFloat(width, 'f', -1, 64))
	t.smoothed.SetChecked(smoothed)
	t.guideline.SetChecked(guideline)
}

// SetSaveEnabled enables Save only when there is something to save.
func (t *Toolbar) SetSaveEnabled(on bool) {
	if on {
		t.saveBtn.Enable()
	} else {
		t.saveBtn.Disable()
	}
}

// StatusBar provides status information.
type StatusBar struct {
	container   *fyne.Container
	label       *widget.Label
	strokeLabel *widget.Label
}

// NewStatusBar creates a new status bar.
func NewStatusBar() *StatusBar {
	s := &StatusBar{
		label:       widget.NewLabel("Ready"),
		strokeLabel: widget.NewLabel("0 strokes"),
	}

	s.container = container.NewHBox(
		s.label,
		widget.NewSeparator(),
		s.strokeLabel,
	)

	return s
}

// Container returns the status bar container.
func (s *StatusBar) Container() *fyne.Container {
	return s.container
}

// SetStatus sets the status message.
func (s *StatusBar) SetStatus(msg string) {
	s.label.SetText(msg)
}

// SetStrokes sets the stroke count display.
func (s *StatusBar) SetStrokes(n int) {
	if n == 1 {
		s.strokeLabel.SetText("1 stroke")
		return
	}
	s.strokeLabel.SetText(strconv.Itoa(n) + " strokes")
}
