//go:build !(js && wasm)

package main

import "gioui.org/app"

func registerWebCallbacks(*CalcState, *app.Window) {}
