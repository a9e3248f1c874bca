package main

import (
	"image/color"

	"gioui.org/layout"
	"gioui.org/unit"
	"gioui.org/widget"
	"gioui.org/widget/material"

	"keycalc/app/calc"
)

var (
	digitKeyBg    = color.NRGBA{R: 0x33, G: 0x33, B: 0x33, A: 0xFF}
	operatorKeyBg = color.NRGBA{R: 0x3A, G: 0x3D, B: 0x41, A: 0xFF}
	commandKeyBg  = color.NRGBA{R: 0x5A, G: 0x2E, B: 0x2E, A: 0xFF}
	computeKeyBg  = color.NRGBA{R: 0x0E, G: 0x63, B: 0x9C, A: 0xFF}
)

// Keypad is the on-screen button grid laid out from calc.Keys.
type Keypad struct {
	buttons map[string]*widget.Clickable
}

// NewKeypad creates a clickable for every key.
func NewKeypad() *Keypad {
	k := &Keypad{buttons: make(map[string]*widget.Clickable)}
	for _, row := range calc.Keys {
		for _, label := range row {
			k.buttons[label] = new(widget.Clickable)
		}
	}
	return k
}

// Update reports clicked keys, in keypad order, to press.
func (k *Keypad) Update(gtx layout.Context, press func(label string)) {
	for _, row := range calc.Keys {
		for _, label := range row {
			for k.buttons[label].Clicked(gtx) {
				press(label)
			}
		}
	}
}

// Layout draws the grid filling the available space.
func (k *Keypad) Layout(gtx layout.Context, th *material.Theme) layout.Dimensions {
	rows := make([]layout.FlexChild, 0, len(calc.Keys))
	for _, row := range calc.Keys {
		row := row
		rows = append(rows, layout.Flexed(1, func(gtx C) D {
			cells := make([]layout.FlexChild, 0, len(row))
			for _, label := range row {
				label := label
				cells = append(cells, layout.Flexed(1, func(gtx C) D {
					return layout.UniformInset(unit.Dp(3)).Layout(gtx, func(gtx C) D {
						gtx.Constraints.Min = gtx.Constraints.Max
						btn := material.Button(th, k.buttons[label], label)
						btn.Background = keyBackground(label)
						btn.TextSize = th.TextSize
						btn.CornerRadius = unit.Dp(6)
						return btn.Layout(gtx)
					})
				}))
			}
			return layout.Flex{Axis: layout.Horizontal}.Layout(gtx, cells...)
		}))
	}
	return layout.Flex{Axis: layout.Vertical}.Layout(gtx, rows...)
}

func keyBackground(label string) color.NRGBA {
	cmd := calc.ParseKey(label)
	switch {
	case cmd.Kind == calc.CmdCompute:
		return computeKeyBg
	case cmd.Kind != calc.CmdAppend:
		return commandKeyBg
	case label >= "0" && label <= "9" || label == ".":
		return digitKeyBg
	default:
		return operatorKeyBg
	}
}
