package windows

import (
	"image/color"
	"log"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"
	"github.com/lusingander/colorpicker"

	"github.com/opendash/cardash/pkg/capture"
	"github.com/opendash/cardash/pkg/colors"
	"github.com/opendash/cardash/pkg/debug"
	"github.com/opendash/cardash/pkg/layout"
)

// SettingsPage adjusts the cluster appearance at runtime and takes
// screenshots of the whole window.
type SettingsPage struct {
	mw *MainWindow

	content fyne.CanvasObject
}

func NewSettingsPage(mw *MainWindow) *SettingsPage {
	p := &SettingsPage{mw: mw}

	picker := colorpicker.New(250, colorpicker.StyleHueCircle)
	picker.SetOnChanged(func(c color.Color) {
		mw.dashboard.speed.SetNeedleColor(c)
		mw.dashboard.rpm.SetNeedleColor(c)
		if nrgba, ok := color.NRGBAModel.Convert(c).(color.NRGBA); ok {
			mw.app.Preferences().SetIntList(prefsNeedleColor, []int{
				int(nrgba.R), int(nrgba.G), int(nrgba.B), int(nrgba.A),
			})
		}
	})

	bandCheck := widget.NewCheck("Show scale band", func(on bool) {
		mw.dashboard.rpm.SetBandVisible(on)
		mw.dashboard.coolant.SetBandVisible(on)
		mw.dashboard.fuel.SetBandVisible(on)
	})
	bandCheck.SetChecked(true)

	minorCheck := widget.NewCheck("Show minor ticks", func(on bool) {
		mw.dashboard.speed.SetMinorTicksVisible(on)
		mw.dashboard.rpm.SetMinorTicksVisible(on)
		mw.dashboard.coolant.SetMinorTicksVisible(on)
		mw.dashboard.fuel.SetMinorTicksVisible(on)
	})
	minorCheck.SetChecked(true)

	visionSelect := widget.NewSelect(colors.SupportedVisionModes[:], func(s string) {
		stops := colors.BandStops(colors.StringToVisionMode(s))
		mw.dashboard.rpm.SetColorStops(stops)
		mw.dashboard.coolant.SetColorStops(stops)
		mw.dashboard.fuel.SetColorStops(stops)
		mw.app.Preferences().SetString(prefsVisionMode, s)
	})
	visionSelect.PlaceHolder = "Band palette"

	sweepBtn := widget.NewButton("Needle sweep", mw.dashboard.Sweep)
	captureBtn := widget.NewButton("Screenshot", func() {
		name, err := capture.Screenshot(mw.Canvas())
		if err != nil {
			log.Println(err)
			return
		}
		debug.Log("screenshot saved: " + name)
	})

	p.content = container.NewVBox(
		widget.NewLabel("Needle color"),
		container.NewCenter(picker),
		layout.NewFixedWidth(250, container.NewVBox(
			bandCheck,
			minorCheck,
			visionSelect,
		)),
		container.NewHBox(sweepBtn, captureBtn),
	)
	return p
}

// RestorePreferences applies appearance choices saved by a previous
// session.
func (p *SettingsPage) RestorePreferences() {
	if saved := p.mw.app.Preferences().IntList(prefsNeedleColor); len(saved) == 4 {
		c := color.NRGBA{R: uint8(saved[0]), G: uint8(saved[1]), B: uint8(saved[2]), A: uint8(saved[3])}
		p.mw.dashboard.speed.SetNeedleColor(c)
		p.mw.dashboard.rpm.SetNeedleColor(c)
	}
	if mode := p.mw.app.Preferences().String(prefsVisionMode); mode != "" {
		stops := colors.BandStops(colors.StringToVisionMode(mode))
		p.mw.dashboard.rpm.SetColorStops(stops)
		p.mw.dashboard.coolant.SetColorStops(stops)
		p.mw.dashboard.fuel.SetColorStops(stops)
	}
}

func (p *SettingsPage) Content() fyne.CanvasObject { return p.content }
