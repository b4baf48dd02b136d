// Package toggleswitch provides a sliding on/off switch for the climate
// controls.
package toggleswitch

import (
	"image/color"
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/widget"
)

const (
	trackWidth  float32 = 56
	trackHeight float32 = 28
	knobPad     float32 = 3
	slideTime           = 120 * time.Millisecond
)

var (
	trackOffColor = color.NRGBA{R: 70, G: 72, B: 84, A: 255}
	trackOnColor  = color.NRGBA{R: 0x21, G: 0x99, B: 0xF3, A: 255}
	knobColor     = color.NRGBA{R: 230, G: 230, B: 230, A: 255}
)

type Switch struct {
	widget.BaseWidget

	Label     string
	OnChanged func(bool)

	on bool
	// knobFrac is the animated knob position, 0 left, 1 right.
	knobFrac float32

	track *canvas.Rectangle
	knob  *canvas.Circle
	text  *canvas.Text
}

var _ fyne.Tappable = (*Switch)(nil)

func New(label string, onChanged func(bool)) *Switch {
	s := &Switch{
		Label:     label,
		OnChanged: onChanged,
	}
	s.ExtendBaseWidget(s)

	s.track = canvas.NewRectangle(trackOffColor)
	s.track.CornerRadius = trackHeight / 2
	s.knob = canvas.NewCircle(knobColor)
	s.text = canvas.NewText(label, color.NRGBA{R: 220, G: 220, B: 220, A: 255})
	return s
}

func (s *Switch) State() bool { return s.on }

func (s *Switch) Tapped(_ *fyne.PointEvent) {
	s.SetState(!s.on)
}

// SetState slides the knob to the new position and notifies the change
// handler. Setting the current state again is a no-op.
func (s *Switch) SetState(on bool) {
	if on == s.on {
		return
	}
	s.on = on
	s.slide()
	if s.OnChanged != nil {
		s.OnChanged(on)
	}
}

func (s *Switch) slide() {
	from := s.knobFrac
	to := float32(0)
	if s.on {
		to = 1
	}
	if fyne.CurrentApp() == nil || fyne.CurrentApp().Driver() == nil {
		s.knobFrac = to
		return
	}
	an := fyne.NewAnimation(slideTime, func(p float32) {
		s.knobFrac = from + (to-from)*p
		s.Refresh()
	})
	an.Curve = fyne.AnimationEaseInOut
	an.Start()
}

func (s *Switch) CreateRenderer() fyne.WidgetRenderer {
	return &switchRenderer{s: s}
}

type switchRenderer struct {
	s *Switch
}

func (r *switchRenderer) Layout(size fyne.Size) {
	trackY := (size.Height - trackHeight) / 2
	r.s.track.Move(fyne.NewPos(0, trackY))
	r.s.track.Resize(fyne.NewSize(trackWidth, trackHeight))

	knobD := trackHeight - 2*knobPad
	knobX := knobPad + r.s.knobFrac*(trackWidth-2*knobPad-knobD)
	r.s.knob.Move(fyne.NewPos(knobX, trackY+knobPad))
	r.s.knob.Resize(fyne.NewSize(knobD, knobD))

	textH := r.s.text.MinSize().Height
	r.s.text.Move(fyne.NewPos(trackWidth+8, (size.Height-textH)/2))
}

func (r *switchRenderer) MinSize() fyne.Size {
	return fyne.NewSize(trackWidth+8+r.s.text.MinSize().Width, trackHeight)
}

func (r *switchRenderer) Refresh() {
	if r.s.on {
		r.s.track.FillColor = trackOnColor
	} else {
		r.s.track.FillColor = trackOffColor
	}
	r.Layout(r.s.Size())
	canvas.Refresh(r.s.track)
	canvas.Refresh(r.s.knob)
	canvas.Refresh(r.s.text)
}

func (r *switchRenderer) Objects() []fyne.CanvasObject {
	return []fyne.CanvasObject{r.s.track, r.s.knob, r.s.text}
}

func (r *switchRenderer) Destroy() {}
