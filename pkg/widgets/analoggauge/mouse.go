package analoggauge

import (
	"fyne.io/fyne/v2/driver/desktop"
	"github.com/opendash/cardash/pkg/common"
)

var (
	_ desktop.Mouseable = (*AnalogGauge)(nil)
	_ desktop.Hoverable = (*AnalogGauge)(nil)
)

func (g *AnalogGauge) MouseDown(e *desktop.MouseEvent) {
	if e.Button&desktop.MouseButtonPrimary != desktop.MouseButtonPrimary {
		return
	}
	g.pressed = true
}

func (g *AnalogGauge) MouseUp(e *desktop.MouseEvent) {
	g.pressed = false
	if g.dragActive {
		g.dragActive = false
		g.needleColor = g.cfg.NeedleColor
		g.repaint()
	}
}

func (g *AnalogGauge) MouseIn(_ *desktop.MouseEvent) {}

func (g *AnalogGauge) MouseOut() {}

// MouseMoved turns a primary-button drag into needle movement. The raw
// pointer value only takes if it lands inside the snap zone around the
// current needle position, so a stray drag across the face cannot yank
// the needle.
func (g *AnalogGauge) MouseMoved(e *desktop.MouseEvent) {
	if !g.pressed && e.Button&desktop.MouseButtonPrimary != desktop.MouseButtonPrimary {
		return
	}
	raw, ok := g.valueFromPointer(e.Position)
	if !ok {
		return
	}
	v, grabbed := g.applyDrag(raw)
	if !grabbed {
		return
	}
	g.dragActive = true
	g.needleColor = g.cfg.NeedleColorDrag
	g.value = common.Clamp(v, g.cfg.Min, g.cfg.Max)
	g.notify()
	g.repaint()
}
