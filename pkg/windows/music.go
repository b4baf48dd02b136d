package windows

import (
	"image/color"
	"path/filepath"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"

	"github.com/opendash/cardash/pkg/sound"
	"github.com/opendash/cardash/pkg/widgets"
	"github.com/opendash/cardash/pkg/widgets/analoggauge"
)

// MusicPage plays local mp3 files. Volume and balance are gauge dials,
// the same widget the instrument cluster uses, dragged with the mouse.
type MusicPage struct {
	volume  *analoggauge.AnalogGauge
	balance *analoggauge.AnalogGauge
	track   *sound.Track
	title   *widget.Label

	content fyne.CanvasObject
}

func NewMusicPage() *MusicPage {
	white := color.NRGBA{R: 255, G: 255, B: 255, A: 255}

	p := &MusicPage{}
	p.title = widget.NewLabel("no track loaded")
	p.title.Alignment = fyne.TextAlignCenter

	p.volume = analoggauge.New(&widgets.GaugeConfig{
		Title:            "volume",
		Min:              0,
		Max:              100,
		MajorTicks:       10,
		SnapZone:         0.1,
		NeedleColorDrag:  white,
		ValueTextColor:   white,
		ScaleTextColor:   white,
		CenterPointColor: white,
		OnValueChanged: func(v int) {
			if p.track != nil {
				p.track.SetVolume(float64(v) / 100)
			}
		},
	})
	p.volume.SetValue(70)

	p.balance = analoggauge.New(&widgets.GaugeConfig{
		Title:            "balance",
		Min:              -10,
		Max:              10,
		MajorTicks:       4,
		MinorTicks:       2,
		SnapZone:         0.2,
		NeedleColorDrag:  white,
		ValueTextColor:   white,
		ScaleTextColor:   white,
		CenterPointColor: white,
	})
	p.balance.SetBandVisible(false)
	p.balance.SetValue(0)

	openBtn := widget.NewButtonWithIcon("Open", theme.FolderOpenIcon(), p.openTrack)
	playBtn := widget.NewButtonWithIcon("Play", theme.MediaPlayIcon(), func() {
		if p.track != nil {
			p.track.Play()
		}
	})
	pauseBtn := widget.NewButtonWithIcon("Pause", theme.MediaPauseIcon(), func() {
		if p.track != nil {
			p.track.Pause()
		}
	})

	controls := container.NewHBox(openBtn, playBtn, pauseBtn)

	p.content = container.NewBorder(
		nil,
		container.NewVBox(p.title, container.NewCenter(controls)),
		nil, nil,
		container.NewGridWithColumns(2,
			cell(p.volume, "Volume"),
			cell(p.balance, "Balance"),
		),
	)
	return p
}

func (p *MusicPage) openTrack() {
	widgets.SelectFilename(func(filename string) {
		track, err := sound.OpenTrack(filename)
		if err != nil {
			fyne.LogError("Error opening track", err)
			return
		}
		if p.track != nil {
			p.track.Close()
		}
		p.track = track
		p.track.SetVolume(p.volume.Value() / 100)
		p.title.SetText(filepath.Base(filename))
		p.track.Play()
	}, "MP3 files", "mp3")
}

func (p *MusicPage) Content() fyne.CanvasObject { return p.content }

func (p *MusicPage) Close() {
	if p.track != nil {
		p.track.Close()
		p.track = nil
	}
}
