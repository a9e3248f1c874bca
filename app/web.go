//go:build js && wasm

package main

import (
	"syscall/js"

	"gioui.org/app"
)

func registerWebCallbacks(cs *CalcState, w *app.Window) {
	js.Global().Set("getDisplayText", js.FuncOf(func(this js.Value, args []js.Value) interface{} {
		return cs.Display()
	}))
	js.Global().Set("pressKey", js.FuncOf(func(this js.Value, args []js.Value) interface{} {
		if len(args) > 0 {
			cs.Press(args[0].String())
			w.Invalidate()
		}
		return cs.Display()
	}))

	// Replay keys from the URL (decoded by JS before WASM started)
	initialKeys := js.Global().Get("_initialKeys")
	if !initialKeys.IsUndefined() && !initialKeys.IsNull() && initialKeys.String() != "" {
		if err := cs.ReplayScript([]byte(initialKeys.String())); err != nil {
			cs.log.Warn("replaying initial keys: %v", err)
		}
	}
}
