package lang

import (
	"math"
	"strconv"
)

// ErrorText is the only text shown to the user when evaluation fails.
const ErrorText = "Error"

// Display spellings of the IEEE special values. They are also accepted as
// mod operands so a previous result can seed the next expression.
const (
	NaNText    = "NaN"
	InfText    = "Infinity"
	NegInfText = "-Infinity"
)

// Result is the outcome of evaluating an expression: a number when Err is
// nil, otherwise an error whose kind can be inspected with errors.Is.
type Result struct {
	Value float64
	Err   error
}

// Number returns a successful Result.
func Number(v float64) Result {
	return Result{Value: v}
}

// Failure returns a failed Result.
func Failure(err error) Result {
	return Result{Err: err}
}

// IsErr reports whether the evaluation failed.
func (r Result) IsErr() bool {
	return r.Err != nil
}

// Text returns what the display shows for this result.
func (r Result) Text() string {
	if r.Err != nil {
		return ErrorText
	}
	return FormatNumber(r.Value)
}

func (r Result) String() string {
	return r.Text()
}

// FormatNumber renders v as the shortest decimal string that parses back to
// exactly v, in positional notation (never with an exponent) so that the
// text can be fed back to Evaluate.
func FormatNumber(v float64) string {
	switch {
	case math.IsNaN(v):
		return NaNText
	case math.IsInf(v, 1):
		return InfText
	case math.IsInf(v, -1):
		return NegInfText
	}
	return strconv.FormatFloat(v, 'f', -1, 64)
}
