package main

import (
	"image"
	"image/color"

	"gioui.org/io/event"
	"gioui.org/io/pointer"
	"gioui.org/layout"
	"gioui.org/op/clip"
	"gioui.org/op/paint"
)

// DragDivider is a draggable vertical handle between the keypad and the
// tape panel. Dragging left widens the panel; a double click resets it.
type DragDivider struct {
	dragging   bool
	startX     float32
	startWidth int
	tag        bool
}

var (
	dividerColor      = color.NRGBA{R: 0x40, G: 0x40, B: 0x40, A: 0xFF}
	dividerHoverColor = color.NRGBA{R: 0x60, G: 0x60, B: 0x60, A: 0xFF}
)

const (
	dividerWidthPx = 6
	minTapeWidth   = 120
)

// Layout renders the handle and updates *width from drag deltas, keeping
// the panel between minTapeWidth and half the window. resetWidth is applied
// on double click.
func (d *DragDivider) Layout(gtx layout.Context, width *int, windowWidth, resetWidth int) layout.Dimensions {
	height := gtx.Constraints.Max.Y
	maxWidth := windowWidth / 2
	if maxWidth < minTapeWidth {
		maxWidth = minTapeWidth
	}

	for {
		ev, ok := gtx.Event(pointer.Filter{
			Target: &d.tag,
			Kinds:  pointer.Press | pointer.Drag | pointer.Release | pointer.Cancel,
		})
		if !ok {
			break
		}
		pe, ok := ev.(pointer.Event)
		if !ok {
			continue
		}
		switch pe.Kind {
		case pointer.Press:
			if pe.NumClicks == 2 {
				*width = resetWidth
				d.dragging = false
				continue
			}
			d.dragging = true
			d.startX = pe.Position.X
			d.startWidth = *width
		case pointer.Drag:
			if d.dragging {
				*width = d.startWidth - int(pe.Position.X-d.startX)
			}
		case pointer.Release, pointer.Cancel:
			d.dragging = false
		}
	}
	*width = clampInt(*width, minTapeWidth, maxWidth)

	c := dividerColor
	if d.dragging {
		c = dividerHoverColor
	}
	rect := image.Rect(0, 0, dividerWidthPx, height)
	paint.FillShape(gtx.Ops, c, clip.Rect(rect).Op())

	area := clip.Rect(rect).Push(gtx.Ops)
	event.Op(gtx.Ops, &d.tag)
	pointer.CursorColResize.Add(gtx.Ops)
	area.Pop()

	return layout.Dimensions{Size: image.Pt(dividerWidthPx, height)}
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
