package layout

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
)

// Horizontal spreads its objects evenly along the x axis, each at its
// minimum size and centered in its slot. Offset reserves room on the left
// for an object managed outside the layout.
type Horizontal struct {
	Offset fyne.CanvasObject
}

func (l *Horizontal) Layout(objects []fyne.CanvasObject, size fyne.Size) {
	var offset float32
	if l.Offset != nil {
		offset = l.Offset.Size().Width
	}
	width := (size.Width - offset) / float32(len(objects))
	for i, o := range objects {
		o.Resize(fyne.NewSize(o.MinSize().Width, o.MinSize().Height))
		o.Move(fyne.NewPos(offset+(float32(i)*width)+(width*.5)-o.MinSize().Width*.5, 0))
	}
}

func (l *Horizontal) MinSize(objects []fyne.CanvasObject) fyne.Size {
	var offset float32
	if l.Offset != nil {
		offset = l.Offset.Size().Width
	}
	var width, height int
	for _, o := range objects {
		width += int(o.MinSize().Width)
		if int(o.MinSize().Height) > height {
			height = int(o.MinSize().Height)
		}
	}
	return fyne.NewSize(float32(width+int(offset)), float32(height))
}

// Vertical stacks its objects in even slots along the y axis.
type Vertical struct {
}

func (l *Vertical) Layout(objects []fyne.CanvasObject, size fyne.Size) {
	for i, o := range objects {
		height := size.Height / float32(len(objects))
		o.Resize(fyne.NewSize(o.MinSize().Width, o.MinSize().Height))
		o.Move(fyne.NewPos(0, (float32(i)*height)+(height/2)-o.MinSize().Height/2))
	}
}

func (l *Vertical) MinSize(objects []fyne.CanvasObject) fyne.Size {
	var width int
	var height int
	for _, o := range objects {
		if int(o.MinSize().Width) > width {
			width = int(o.MinSize().Width)
		}
		height += int(o.MinSize().Height)
	}
	return fyne.NewSize(float32(width), float32(height))
}

func NewFixedWidth(width float32, obj fyne.CanvasObject) *fyne.Container {
	return container.New(&FixedWidthContainer{width: width}, obj)
}

type FixedWidthContainer struct {
	width float32
}

func (d *FixedWidthContainer) MinSize(objects []fyne.CanvasObject) fyne.Size {
	var h float32
	for _, o := range objects {
		childSize := o.MinSize()
		if childSize.Height > h {
			h += childSize.Height
		}
	}
	return fyne.NewSize(d.width, h)
}

func (d *FixedWidthContainer) Layout(objects []fyne.CanvasObject, containerSize fyne.Size) {
	pos := fyne.NewPos(0, 0)
	for _, o := range objects {
		size := o.MinSize()
		o.Move(pos)
		o.Resize(fyne.NewSize(d.width, size.Height))
		pos = pos.Add(fyne.NewPos(d.width, size.Height))
	}
}
