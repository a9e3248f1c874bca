package main

import (
	"image"
	"image/color"

	"gioui.org/layout"
	"gioui.org/op/clip"
	"gioui.org/op/paint"
	"gioui.org/text"
	"gioui.org/unit"
	"gioui.org/widget"
	"gioui.org/widget/material"

	"keycalc/app/calc"
)

var (
	tapeBg         = color.NRGBA{R: 0x25, G: 0x25, B: 0x26, A: 0xFF}
	tapeExprColor  = color.NRGBA{R: 0x85, G: 0x85, B: 0x85, A: 0xFF}
	resultColor    = color.NRGBA{R: 0x4E, G: 0xC9, B: 0xB0, A: 0xFF} // teal
	resultErrColor = color.NRGBA{R: 0xF4, G: 0x47, B: 0x47, A: 0xFF} // red
)

// TapePanel lists past computations, newest at the bottom.
type TapePanel struct {
	list widget.List
}

// NewTapePanel creates a panel that follows the newest entry.
func NewTapePanel() *TapePanel {
	tp := &TapePanel{}
	tp.list.Axis = layout.Vertical
	tp.list.ScrollToEnd = true
	return tp
}

// Layout draws the panel widthPx wide and as tall as the constraints allow.
func (tp *TapePanel) Layout(gtx layout.Context, th *material.Theme, entries []calc.TapeEntry, widthPx int) layout.Dimensions {
	size := image.Pt(widthPx, gtx.Constraints.Max.Y)
	paint.FillShape(gtx.Ops, tapeBg, clip.Rect(image.Rectangle{Max: size}).Op())
	gtx.Constraints = layout.Exact(size)

	if len(entries) == 0 {
		return layout.UniformInset(unit.Dp(8)).Layout(gtx, func(gtx C) D {
			lbl := material.Body2(th, "No calculations yet")
			lbl.Color = tapeExprColor
			return lbl.Layout(gtx)
		})
	}

	return material.List(th, &tp.list).Layout(gtx, len(entries), func(gtx C, i int) D {
		e := entries[i]
		return layout.Inset{Top: unit.Dp(4), Bottom: unit.Dp(4), Left: unit.Dp(8), Right: unit.Dp(8)}.Layout(gtx, func(gtx C) D {
			gtx.Constraints.Min.X = gtx.Constraints.Max.X
			return layout.Flex{Axis: layout.Vertical}.Layout(gtx,
				layout.Rigid(func(gtx C) D {
					lbl := material.Label(th, th.TextSize*0.8, e.Expr)
					lbl.Color = tapeExprColor
					lbl.Alignment = text.End
					lbl.MaxLines = 1
					return lbl.Layout(gtx)
				}),
				layout.Rigid(func(gtx C) D {
					lbl := material.Label(th, th.TextSize, "= "+e.Result)
					lbl.Color = resultColor
					if e.IsErr {
						lbl.Color = resultErrColor
					}
					lbl.Alignment = text.End
					lbl.MaxLines = 1
					return lbl.Layout(gtx)
				}),
			)
		})
	})
}
