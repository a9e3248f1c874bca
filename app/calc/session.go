package calc

import (
	"keycalc/app/lang"
	"keycalc/app/logger"
)

// Display renders the current buffer text.
type Display interface {
	Render(text string)
}

// DisplayFunc adapts a function to Display.
type DisplayFunc func(text string)

// Render calls f(text).
func (f DisplayFunc) Render(text string) { f(text) }

// Session is one calculator: an input buffer, the last computed value and
// the tape of past computations. A Session must only be used from one
// goroutine at a time.
type Session struct {
	buf     Buffer
	result  float64
	lastErr error
	tape    []TapeEntry
	display Display
	log     *logger.Logger
}

// Option configures a Session.
type Option func(*Session)

// WithDisplay sets the display notified after every command.
func WithDisplay(d Display) Option {
	return func(s *Session) { s.display = d }
}

// WithLogger sets the session logger.
func WithLogger(l *logger.Logger) Option {
	return func(s *Session) { s.log = l }
}

// NewSession returns an empty session.
func NewSession(opts ...Option) *Session {
	s := &Session{}
	for _, opt := range opts {
		opt(s)
	}
	if s.log == nil {
		s.log = logger.Global()
	}
	return s
}

// Press handles a keypad label: "=" computes, "AC" clears, "Del" deletes
// the last character and anything else is appended.
func (s *Session) Press(label string) {
	s.Do(ParseKey(label))
}

// Do runs a single command.
func (s *Session) Do(cmd Command) {
	switch cmd.Kind {
	case CmdAppend:
		s.Append(cmd.Token)
	case CmdCompute:
		s.Compute()
	case CmdClear:
		s.Clear()
	case CmdBackspace:
		s.Backspace()
	default:
		s.log.Warn("ignoring unknown command %v", cmd.Kind)
	}
}

// Append adds token to the end of the input.
func (s *Session) Append(token string) {
	s.buf.Append(token)
	s.render()
}

// Backspace removes the last character of the input.
func (s *Session) Backspace() {
	if s.buf.Len() == 0 {
		return
	}
	s.buf.DeleteLast()
	s.render()
}

// Clear empties the input and resets the last result to 0.
func (s *Session) Clear() {
	s.buf.Clear()
	s.result = 0
	s.lastErr = nil
	s.render()
}

// Compute evaluates the input. The display text of the outcome replaces the
// input, so a number becomes the start of the next expression and a failure
// leaves the sentinel text "Error".
func (s *Session) Compute() lang.Result {
	expr := s.buf.Text()
	res := lang.Evaluate(expr)
	if res.IsErr() {
		s.log.Debug("evaluate %q: %v", expr, res.Err)
		s.result = 0
		s.lastErr = res.Err
	} else {
		s.log.Debug("evaluate %q = %s", expr, res.Text())
		s.result = res.Value
		s.lastErr = nil
	}
	s.tape = append(s.tape, TapeEntry{Expr: expr, Result: res.Text(), IsErr: res.IsErr()})
	s.buf.Set(res.Text())
	s.render()
	return res
}

// Text returns the text to display.
func (s *Session) Text() string {
	return s.buf.Text()
}

// Result returns the last computed value, 0 after a clear or a failure.
func (s *Session) Result() float64 {
	return s.result
}

// Err returns why the last computation failed, or nil.
func (s *Session) Err() error {
	return s.lastErr
}

// Tape returns a copy of the computation history.
func (s *Session) Tape() []TapeEntry {
	return append([]TapeEntry(nil), s.tape...)
}

// ClearTape forgets the computation history.
func (s *Session) ClearTape() {
	s.tape = nil
}

func (s *Session) render() {
	if s.display == nil {
		s.log.Debug("no display attached, text is %q", s.buf.Text())
		return
	}
	s.display.Render(s.buf.Text())
}
