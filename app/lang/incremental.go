package lang

import "strings"

// CachedLine holds the cached state for a single line.
type CachedLine struct {
	Text    string
	Result  Result
	IsEmpty bool // line was blank
}

// EvalResult is the result of evaluating a single line.
type EvalResult struct {
	Text  string // formatted result, "" for blank lines
	IsErr bool
	Err   error
}

// EvalState holds the per-line evaluation cache for a multi-line pad.
// Lines are independent of each other, so a line is re-evaluated only when
// its own text changes.
type EvalState struct {
	Lines []CachedLine

	hits, misses int
}

// EvalAll evaluates every line, reusing cached results for lines whose text
// is unchanged since the previous call.
func (es *EvalState) EvalAll(lines []string) []EvalResult {
	results := make([]EvalResult, len(lines))
	cache := make([]CachedLine, len(lines))

	for i, line := range lines {
		if i < len(es.Lines) && es.Lines[i].Text == line {
			cache[i] = es.Lines[i]
			es.hits++
		} else {
			cache[i] = evalCachedLine(line)
			es.misses++
		}
		results[i] = cache[i].toEvalResult()
	}

	es.Lines = cache
	return results
}

// Stats returns the number of cache hits and misses so far.
func (es *EvalState) Stats() (hits, misses int) {
	return es.hits, es.misses
}

func evalCachedLine(line string) CachedLine {
	if strings.TrimSpace(line) == "" {
		return CachedLine{Text: line, IsEmpty: true}
	}
	return CachedLine{Text: line, Result: Evaluate(line)}
}

func (cl CachedLine) toEvalResult() EvalResult {
	if cl.IsEmpty {
		return EvalResult{}
	}
	return EvalResult{Text: cl.Result.Text(), IsErr: cl.Result.IsErr(), Err: cl.Result.Err}
}
