package lang

// ErrorKind classifies evaluation failures. Every kind is shown to the user
// as the same sentinel text; the kind is kept for logging and tests.
type ErrorKind int

const (
	KindParse ErrorKind = iota + 1
	KindMalformedMod
	KindMalformedExpression
)

func (k ErrorKind) String() string {
	switch k {
	case KindParse:
		return "parse error"
	case KindMalformedMod:
		return "malformed mod expression"
	case KindMalformedExpression:
		return "malformed expression"
	default:
		return "unknown error"
	}
}

// EvalError is returned for any expression that cannot be evaluated.
type EvalError struct {
	Kind ErrorKind
	Msg  string
}

func (e *EvalError) Error() string {
	if e.Msg == "" {
		return e.Kind.String()
	}
	return e.Kind.String() + ": " + e.Msg
}

// Is matches any *EvalError of the same kind, so the sentinels below work
// with errors.Is.
func (e *EvalError) Is(target error) bool {
	t, ok := target.(*EvalError)
	if !ok {
		return false
	}
	return t.Kind == e.Kind
}

var (
	ErrParse               = &EvalError{Kind: KindParse}
	ErrMalformedMod        = &EvalError{Kind: KindMalformedMod}
	ErrMalformedExpression = &EvalError{Kind: KindMalformedExpression}
)

func parseErr(msg string) error {
	return &EvalError{Kind: KindParse, Msg: msg}
}

func malformed(msg string) error {
	return &EvalError{Kind: KindMalformedExpression, Msg: msg}
}
