package main

import (
	"errors"
	"fmt"
	"io"

	"gioui.org/x/explorer"
)

// maxScriptSize bounds how much of a chosen keystroke script is read.
const maxScriptSize = 1 << 20

// ScriptResult is a keystroke script picked in the open dialog.
type ScriptResult struct {
	Name string // file path when the platform exposes one
	Data []byte
	Err  error
}

// SaveResult is the outcome of saving the tape through the save dialog.
type SaveResult struct {
	Path  string // file path when the platform exposes one
	Bytes int
	Err   error
}

// Canceled reports whether the user dismissed the dialog.
func (r ScriptResult) Canceled() bool { return errors.Is(r.Err, explorer.ErrUserDecline) }

// Canceled reports whether the user dismissed the dialog.
func (r SaveResult) Canceled() bool { return errors.Is(r.Err, explorer.ErrUserDecline) }

// fileName returns the path behind a file returned by the explorer. Desktop
// platforms hand back an *os.File; others have no path and give "".
func fileName(f any) string {
	if n, ok := f.(interface{ Name() string }); ok {
		return n.Name()
	}
	return ""
}

// OpenScriptAsync shows the open dialog in a goroutine and reads the chosen
// script. The result arrives on the returned channel.
func OpenScriptAsync(expl *explorer.Explorer) <-chan ScriptResult {
	ch := make(chan ScriptResult, 1)
	go func() {
		file, err := expl.ChooseFile(".txt", ".keys")
		if err != nil {
			ch <- ScriptResult{Err: err}
			return
		}
		ch <- readScript(file)
	}()
	return ch
}

func readScript(file io.ReadCloser) ScriptResult {
	defer file.Close()
	res := ScriptResult{Name: fileName(file)}
	res.Data, res.Err = io.ReadAll(io.LimitReader(file, maxScriptSize+1))
	if res.Err == nil && len(res.Data) > maxScriptSize {
		res.Data = nil
		res.Err = fmt.Errorf("script larger than %d bytes", maxScriptSize)
	}
	return res
}

// SaveTapeAsync shows the save dialog in a goroutine and writes tape to the
// chosen file. The result, including the path when known, arrives on the
// returned channel.
func SaveTapeAsync(expl *explorer.Explorer, tape []byte, defaultName string) <-chan SaveResult {
	ch := make(chan SaveResult, 1)
	go func() {
		w, err := expl.CreateFile(defaultName)
		if err != nil {
			ch <- SaveResult{Err: err}
			return
		}
		ch <- writeTape(w, tape)
	}()
	return ch
}

func writeTape(w io.WriteCloser, tape []byte) SaveResult {
	res := SaveResult{Path: fileName(w)}
	res.Bytes, res.Err = w.Write(tape)
	if closeErr := w.Close(); res.Err == nil {
		res.Err = closeErr
	}
	if res.Err != nil {
		res.Err = fmt.Errorf("saving tape: %w", res.Err)
	}
	return res
}
