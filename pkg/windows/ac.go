package windows

import (
	"fmt"
	"image/color"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"

	"github.com/opendash/cardash/pkg/layout"
	"github.com/opendash/cardash/pkg/widgets"
	"github.com/opendash/cardash/pkg/widgets/analoggauge"
	"github.com/opendash/cardash/pkg/widgets/toggleswitch"
)

// ACPage holds the climate controls: a draggable target temperature dial
// and the blower switches.
type ACPage struct {
	cabinTemp *analoggauge.AnalogGauge
	acSwitch  *toggleswitch.Switch
	recirc    *toggleswitch.Switch
	defrost   *toggleswitch.Switch
	status    *widget.Label

	content fyne.CanvasObject
}

func NewACPage() *ACPage {
	white := color.NRGBA{R: 255, G: 255, B: 255, A: 255}

	p := &ACPage{}
	p.status = widget.NewLabel("A/C off")

	p.cabinTemp = analoggauge.New(&widgets.GaugeConfig{
		Title:            "cabin",
		Min:              16,
		Max:              30,
		MajorTicks:       7,
		MinorTicks:       2,
		SnapZone:         0.1,
		NeedleColorDrag:  white,
		ValueTextColor:   white,
		ScaleTextColor:   white,
		CenterPointColor: white,
		ColorStops: []widgets.ColorStop{
			{Position: 0, Color: color.NRGBA{R: 255, G: 80, B: 40, A: 255}},
			{Position: 0.4, Color: color.NRGBA{R: 255, G: 200, B: 60, A: 255}},
			{Position: 0.75, Color: color.NRGBA{R: 60, G: 120, B: 255, A: 255}},
			{Position: 1, Color: color.NRGBA{R: 60, G: 120, B: 255, A: 255}},
		},
		OnValueChanged: func(v int) {
			p.updateStatus()
		},
	})
	p.acSwitch = toggleswitch.New("A/C", func(bool) { p.updateStatus() })
	p.recirc = toggleswitch.New("recirculate", nil)
	p.defrost = toggleswitch.New("defrost", nil)

	p.cabinTemp.SetValue(21)

	switches := container.New(&layout.Horizontal{}, p.acSwitch, p.recirc, p.defrost)

	p.content = container.NewBorder(
		nil,
		container.NewVBox(switches, p.status),
		nil, nil,
		cell(p.cabinTemp, "target °C"),
	)
	return p
}

func (p *ACPage) updateStatus() {
	if !p.acSwitch.State() {
		p.status.SetText("A/C off")
		return
	}
	p.status.SetText(fmt.Sprintf("A/C on, target %d °C", int(p.cabinTemp.Value())))
}

func (p *ACPage) Content() fyne.CanvasObject { return p.content }
