package lang

import (
	"errors"
	"math"
	"strconv"
	"strings"
)

// ModOperator is the word that switches evaluation to the modulo path.
const ModOperator = "mod"

// Eval evaluates an AST node with IEEE-754 double semantics. Division by
// zero yields ±Inf or NaN rather than an error.
func Eval(node Node) float64 {
	switch n := node.(type) {
	case *NumberLit:
		return n.Value
	case *BinaryExpr:
		left := Eval(n.Left)
		right := Eval(n.Right)
		switch n.Op {
		case TOKEN_PLUS:
			return left + right
		case TOKEN_MINUS:
			return left - right
		case TOKEN_STAR:
			return left * right
		case TOKEN_SLASH:
			return left / right
		}
	}
	return math.NaN()
}

// RewritePercent replaces every '%' with "/100", so "50%" reads as 50/100.
func RewritePercent(text string) string {
	return strings.ReplaceAll(text, "%", "/100")
}

// ParseLine applies the percentage rewrite, lexes and parses text into an
// AST node without evaluating it.
func ParseLine(text string) (Node, error) {
	tokens, err := Lex(RewritePercent(text))
	if err != nil {
		return nil, err
	}
	return Parse(tokens)
}

// Evaluate computes the value of a calculator expression.
//
// Any text containing "mod" is a modulo expression: exactly two numeric
// literals around a single "mod". Everything else is general arithmetic over
// + - * / with the usual precedence, after the percentage rewrite.
func Evaluate(text string) Result {
	if strings.Contains(text, ModOperator) {
		return evalMod(text)
	}
	node, err := ParseLine(text)
	if err != nil {
		return Failure(err)
	}
	return Number(Eval(node))
}

// evalMod computes the floating-point remainder of the two operands. The
// result has the sign of the dividend; a zero divisor gives NaN.
func evalMod(text string) Result {
	parts := strings.Split(text, ModOperator)
	if len(parts) != 2 {
		return Failure(&EvalError{
			Kind: KindMalformedMod,
			Msg:  "expected one '" + ModOperator + "', found " + strconv.Itoa(len(parts)-1),
		})
	}
	left, err := parseOperand(parts[0])
	if err != nil {
		return Failure(err)
	}
	right, err := parseOperand(parts[1])
	if err != nil {
		return Failure(err)
	}
	return Number(math.Mod(left, right))
}

// parseOperand parses one side of a mod expression. Only a single signed
// decimal literal or a special-value spelling is accepted; no arithmetic.
func parseOperand(s string) (float64, error) {
	s = strings.TrimSpace(s)
	switch s {
	case NaNText:
		return math.NaN(), nil
	case InfText:
		return math.Inf(1), nil
	case NegInfText:
		return math.Inf(-1), nil
	}
	if !isDecimalLiteral(s) {
		if s == "" {
			return 0, parseErr("missing mod operand")
		}
		return 0, parseErr("invalid mod operand: " + strconv.Quote(s))
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil && !errors.Is(err, strconv.ErrRange) {
		return 0, parseErr("invalid mod operand: " + strconv.Quote(s))
	}
	return v, nil
}

// isDecimalLiteral matches [+-]? digits with at most one '.', at least one digit.
func isDecimalLiteral(s string) bool {
	if s != "" && (s[0] == '+' || s[0] == '-') {
		s = s[1:]
	}
	digits := 0
	dotSeen := false
	for i := 0; i < len(s); i++ {
		switch {
		case isDigit(s[i]):
			digits++
		case s[i] == '.' && !dotSeen:
			dotSeen = true
		default:
			return false
		}
	}
	return digits > 0
}
