package calc

import (
	"bufio"
	"fmt"
	"io"
)

// TapeEntry records one computation.
type TapeEntry struct {
	Expr   string
	Result string // display text, "Error" on failure
	IsErr  bool
}

func (e TapeEntry) String() string {
	return e.Expr + " = " + e.Result
}

// WriteTape writes one "expr = result" line per entry.
func WriteTape(w io.Writer, entries []TapeEntry) error {
	bw := bufio.NewWriter(w)
	for _, e := range entries {
		if _, err := fmt.Fprintln(bw, e.String()); err != nil {
			return err
		}
	}
	return bw.Flush()
}

// Replay presses every whitespace-separated key label read from r.
// Only read errors are returned; bad expressions end up as "Error" on the
// display like any other keystrokes would.
func Replay(s *Session, r io.Reader) error {
	sc := bufio.NewScanner(r)
	sc.Split(bufio.ScanWords)
	for sc.Scan() {
		s.Press(sc.Text())
	}
	if err := sc.Err(); err != nil {
		return fmt.Errorf("reading keys: %w", err)
	}
	return nil
}
