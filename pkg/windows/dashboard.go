package windows

import (
	"fmt"
	"image/color"
	"log"
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"

	"github.com/opendash/cardash/pkg/ebus"
	"github.com/opendash/cardash/pkg/layout"
	"github.com/opendash/cardash/pkg/sim"
	"github.com/opendash/cardash/pkg/widgets"
	"github.com/opendash/cardash/pkg/widgets/analoggauge"
)

// topicAvgSpeed carries the moving average the trip row displays.
const topicAvgSpeed = "speed.avg"

// DashboardPage is the primary instrument cluster: speedometer,
// tachometer, coolant temperature and fuel level, all fed from the event
// bus.
type DashboardPage struct {
	speed   *analoggauge.AnalogGauge
	rpm     *analoggauge.AnalogGauge
	coolant *analoggauge.AnalogGauge
	fuel    *analoggauge.AnalogGauge

	avgSpeed *widget.Label

	content fyne.CanvasObject
	cancels []func()
}

func NewDashboardPage() *DashboardPage {
	white := color.NRGBA{R: 255, G: 255, B: 255, A: 255}
	dim := color.NRGBA{R: 200, G: 200, B: 200, A: 255}

	p := &DashboardPage{}

	p.speed = analoggauge.New(&widgets.GaugeConfig{
		Title:            "speed",
		Min:              0,
		Max:              100,
		NeedleColor:      color.NRGBA{R: 255, G: 255, B: 200, A: 255},
		NeedleColorDrag:  white,
		ValueTextColor:   dim,
		ScaleTextColor:   color.NRGBA{R: 255, G: 200, B: 255, A: 255},
		CenterPointColor: white,
		UseTimerEvent:    true,
		// dragging the speedometer feeds the bus like the simulator does,
		// so the trip average tracks manual input too
		OnValueChanged: func(v int) {
			if err := ebus.Publish(sim.TopicSpeed, float64(v)); err != nil {
				log.Println(err)
			}
		},
	})
	p.speed.SetBandVisible(false)
	p.speed.SetBarGraphStyle(false)
	p.speed.SetValue(65)

	p.rpm = analoggauge.New(&widgets.GaugeConfig{
		Title:            "rpm",
		Min:              0,
		Max:              6,
		MajorTicks:       6,
		NeedleColorDrag:  white,
		ValueTextColor:   dim,
		ScaleTextColor:   white,
		CenterPointColor: white,
	})
	p.rpm.SetValue(3.5)

	p.coolant = analoggauge.New(&widgets.GaugeConfig{
		Title:            "coolant",
		Min:              0,
		Max:              120,
		MajorTicks:       6,
		ValueTextColor:   dim,
		ScaleTextColor:   white,
		CenterPointColor: white,
		ColorStops: []widgets.ColorStop{
			{Position: 0, Color: color.NRGBA{R: 255, A: 255}},
			{Position: 0.12, Color: color.NRGBA{R: 255, G: 255, A: 255}},
			{Position: 0.2, Color: color.NRGBA{G: 200, A: 255}},
			{Position: 0.75, Color: color.NRGBA{R: 60, G: 120, B: 255, A: 255}},
			{Position: 1, Color: color.NRGBA{R: 60, G: 120, B: 255, A: 255}},
		},
	})

	p.fuel = analoggauge.New(&widgets.GaugeConfig{
		Title:            "fuel",
		Min:              0,
		Max:              100,
		MajorTicks:       4,
		ValueTextColor:   dim,
		ScaleTextColor:   white,
		CenterPointColor: white,
		ColorStops: []widgets.ColorStop{
			{Position: 0, Color: color.NRGBA{G: 200, A: 255}},
			{Position: 0.55, Color: color.NRGBA{G: 200, A: 255}},
			{Position: 0.65, Color: color.NRGBA{R: 255, G: 255, A: 255}},
			{Position: 0.75, Color: color.NRGBA{R: 255, A: 255}},
			{Position: 1, Color: color.NRGBA{R: 255, A: 255}},
		},
	})
	p.fuel.SetValue(100)

	ebus.RegisterAggregator(ebus.SMAAggregator(sim.TopicSpeed, topicAvgSpeed, 20))

	p.avgSpeed = widget.NewLabel("avg: - Km/h")
	p.subscribe()

	grid := container.NewGridWithColumns(4,
		cell(p.speed, "Km/h"),
		cell(p.rpm, "x1000 rpm"),
		cell(p.coolant, "coolant °C"),
		cell(p.fuel, "fuel %"),
	)
	status := container.New(&layout.Horizontal{}, p.avgSpeed)
	p.content = container.NewBorder(nil, status, nil, nil, grid)
	return p
}

func cell(g fyne.CanvasObject, unit string) fyne.CanvasObject {
	label := widget.NewLabel(unit)
	label.Alignment = fyne.TextAlignCenter
	return container.NewBorder(nil, label, nil, nil, g)
}

func (p *DashboardPage) subscribe() {
	feed := func(topic string, g *analoggauge.AnalogGauge, scale float64) {
		p.cancels = append(p.cancels, ebus.SubscribeFunc(topic, func(v float64) {
			uiDo(func() { g.SetValue(v * scale) })
		}))
	}
	feed(sim.TopicSpeed, p.speed, 1)
	feed(sim.TopicRPM, p.rpm, 0.001)
	feed(sim.TopicCoolant, p.coolant, 1)
	feed(sim.TopicFuel, p.fuel, 1)

	p.cancels = append(p.cancels, ebus.SubscribeFunc(topicAvgSpeed, func(v float64) {
		uiDo(func() {
			p.avgSpeed.SetText(fmt.Sprintf("avg: %d Km/h", int(v)))
		})
	}))
}

// uiDo marshals bus callbacks onto the fyne thread. Without a running
// app the callback runs inline.
func uiDo(fn func()) {
	if fyne.CurrentApp() == nil {
		fn()
		return
	}
	fyne.Do(fn)
}

func (p *DashboardPage) Content() fyne.CanvasObject { return p.content }

// Sweep swings every needle to full scale and back, the classic power-on
// check.
func (p *DashboardPage) Sweep() {
	an := fyne.NewAnimation(900*time.Millisecond, func(pp float32) {
		pa := float64(pp)
		p.speed.SetValue(100 * pa)
		p.rpm.SetValue(6 * pa)
		p.coolant.SetValue(120 * pa)
		p.fuel.SetValue(100 * pa)
	})
	an.AutoReverse = true
	an.Curve = fyne.AnimationEaseInOut
	an.Start()
}

func (p *DashboardPage) Close() {
	for _, cancel := range p.cancels {
		cancel()
	}
	p.cancels = nil
	p.speed.Close()
}
