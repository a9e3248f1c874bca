package main

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"

	"keycalc/app/calc"
	"keycalc/app/logger"
)

// CalcState holds the calculator session and the window-level state around it.
type CalcState struct {
	Session  *calc.Session
	TapePath string // last path the tape was saved to
	Dirty    bool   // tape has entries not yet saved

	display string
	log     *logger.Logger
}

// NewCalcState creates a state with an empty session.
func NewCalcState(log *logger.Logger) *CalcState {
	cs := &CalcState{log: log}
	cs.Session = calc.NewSession(
		calc.WithDisplay(calc.DisplayFunc(cs.render)),
		calc.WithLogger(log.WithPrefix("session")),
	)
	return cs
}

func (cs *CalcState) render(text string) {
	cs.display = text
}

// Display returns the text currently shown on the display.
func (cs *CalcState) Display() string {
	return cs.display
}

// Press forwards a keypad label to the session.
func (cs *CalcState) Press(label string) {
	before := len(cs.Session.Tape())
	cs.Session.Press(label)
	if len(cs.Session.Tape()) != before {
		cs.Dirty = true
	}
}

// ReplayScript presses every key label in data.
func (cs *CalcState) ReplayScript(data []byte) error {
	before := len(cs.Session.Tape())
	if err := calc.Replay(cs.Session, bytes.NewReader(data)); err != nil {
		return err
	}
	if len(cs.Session.Tape()) != before {
		cs.Dirty = true
	}
	return nil
}

// LoadScript reads a keystroke script from path and replays it.
func (cs *CalcState) LoadScript(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	cs.log.Info("replaying %s", path)
	return cs.ReplayScript(data)
}

// TapeBytes renders the tape as text.
func (cs *CalcState) TapeBytes() []byte {
	var buf bytes.Buffer
	// Writes to a bytes.Buffer cannot fail.
	_ = calc.WriteTape(&buf, cs.Session.Tape())
	return buf.Bytes()
}

// SaveTape writes the tape to the given path.
func (cs *CalcState) SaveTape(path string) error {
	if err := os.WriteFile(path, cs.TapeBytes(), 0644); err != nil {
		return fmt.Errorf("saving tape: %w", err)
	}
	cs.MarkSaved(path)
	return nil
}

// MarkSaved records that the tape was written. An empty path, from a
// platform that does not expose file paths, keeps the previous one.
func (cs *CalcState) MarkSaved(path string) {
	if path != "" {
		cs.TapePath = path
	}
	cs.Dirty = false
}

// Title returns a window title string showing the tape file and dirty state.
func (cs *CalcState) Title() string {
	name := "untitled"
	if cs.TapePath != "" {
		name = filepath.Base(cs.TapePath)
	}
	if cs.Dirty {
		return "* " + name + " — keycalc"
	}
	return name + " — keycalc"
}
