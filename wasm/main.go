//go:build js && wasm

package main

import (
	"strings"
	"syscall/js"

	"keycalc/app/calc"
	"keycalc/app/lang"
)

var (
	evalState   = &lang.EvalState{}
	displayText string
	session     = calc.NewSession(calc.WithDisplay(calc.DisplayFunc(func(text string) {
		displayText = text
	})))
)

func main() {
	// Register evaluate function: one result per line of text
	js.Global().Set("evaluate", js.FuncOf(func(this js.Value, args []js.Value) interface{} {
		if len(args) < 1 {
			return nil
		}
		lines := strings.Split(args[0].String(), "\n")
		results := evalState.EvalAll(lines)

		arr := js.Global().Get("Array").New(len(results))
		for i, r := range results {
			obj := js.Global().Get("Object").New()
			obj.Set("text", r.Text)
			obj.Set("isErr", r.IsErr)
			arr.SetIndex(i, obj)
		}
		return arr
	}))

	// Register press for the HTML keypad
	js.Global().Set("press", js.FuncOf(func(this js.Value, args []js.Value) interface{} {
		for _, a := range args {
			session.Press(a.String())
		}
		return displayText
	}))

	js.Global().Set("getDisplayText", js.FuncOf(func(this js.Value, args []js.Value) interface{} {
		return displayText
	}))

	// Signal that WASM is ready
	js.Global().Set("_wasmReady", true)
	onReady := js.Global().Get("_onWasmReady")
	if !onReady.IsUndefined() && !onReady.IsNull() {
		onReady.Invoke()
	}

	// Block forever
	select {}
}
