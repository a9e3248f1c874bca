package lang

import (
	"errors"
	"math"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEvaluate(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"2+3", "5"},
		{"10-3", "7"},
		{"4*5", "20"},
		{"10/4", "2.5"},
		{"1/3", "0.3333333333333333"},
		{"0.1+0.2", "0.30000000000000004"},
		{"5+3*2", "11"},
		{"2*3+4*5", "26"},
		{"10-2-3", "5"},
		{"100/10/2", "5"},
		{"8-6/2", "5"},
		{"7", "7"},
		{"5.", "5"},
		{".5+.5", "1"},
		{"5 + 3", "8"},
		{" 12 * 2\t", "24"},
		{"2-5", "-3"},
		{"-5", "-5"},
		{"-3+1", "-2"},
		{"+4*2", "8"},
		{" -2.5*2", "-5"},
		{"-.5", "-0.5"},
		{"-0", "-0"},
		{"Infinity+1", "Infinity"},
		{"-Infinity*2", "-Infinity"},
		{"NaN*0", "NaN"},
		{"1000000*1000000*1000000*1000", "1000000000000000000000"},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			res := Evaluate(tt.input)
			require.NoError(t, res.Err, "Evaluate(%q)", tt.input)
			assert.Equal(t, tt.want, res.Text(), "Evaluate(%q)", tt.input)
		})
	}
}

func TestEvaluatePercent(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"50%", "0.5"},
		{"50%+10", "10.5"},
		{"200*10%", "20"},
	}

	for _, tt := range tests {
		res := Evaluate(tt.input)
		if res.IsErr() {
			t.Errorf("Evaluate(%q) error: %v", tt.input, res.Err)
			continue
		}
		if got := res.Text(); got != tt.want {
			t.Errorf("Evaluate(%q) = %q, want %q", tt.input, got, tt.want)
		}
	}
}

func TestEvaluateMod(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"10mod3", "1"},
		{"10.5mod3", "1.5"},
		{"10 mod 3", "1"},
		{"-7mod3", "-1"},
		{"7mod-3", "1"},
		{"-5mod5", "-0"},
		{"3mod10", "3"},
		{"+9mod4", "1"},
		{"Infinitymod3", "NaN"},
		{"3modInfinity", "3"},
	}

	for _, tt := range tests {
		res := Evaluate(tt.input)
		if res.IsErr() {
			t.Errorf("Evaluate(%q) error: %v", tt.input, res.Err)
			continue
		}
		if got := res.Text(); got != tt.want {
			t.Errorf("Evaluate(%q) = %q, want %q", tt.input, got, tt.want)
		}
	}
}

func TestEvaluateModMatchesFmod(t *testing.T) {
	pairs := [][2]float64{{10, 3}, {10.5, 3}, {-10.5, 3}, {5.25, -0.5}, {1e15, 7}, {0.3, 0.1}}
	for _, p := range pairs {
		input := FormatNumber(p[0]) + "mod" + FormatNumber(p[1])
		res := Evaluate(input)
		require.NoError(t, res.Err, input)
		want := math.Mod(p[0], p[1])
		assert.Equal(t, math.Float64bits(want), math.Float64bits(res.Value), "Evaluate(%q)", input)
	}
}

func TestEvaluateErrors(t *testing.T) {
	tests := []struct {
		input string
		kind  error
	}{
		{"", ErrMalformedExpression},
		{"   ", ErrMalformedExpression},
		{"5+", ErrMalformedExpression},
		{"5++3", ErrMalformedExpression},
		{"*5", ErrMalformedExpression},
		{"-", ErrMalformedExpression},
		{"--5", ErrMalformedExpression},
		{"5*-3", ErrMalformedExpression},
		{"1+-2", ErrMalformedExpression},
		{"1.2.3", ErrMalformedExpression},
		{"%", ErrMalformedExpression},
		{".", ErrParse},
		{"5+.", ErrParse},
		{"abc", ErrParse},
		{"1e5", ErrParse},
		{"(1+2)", ErrParse},
		{"Error", ErrParse},
		{"1+NaN", ErrParse},
		{"2*Infinity", ErrParse},
		{"-Inf", ErrParse},
		{"-.", ErrParse},
		{"10mod3mod2", ErrMalformedMod},
		{"modmod", ErrMalformedMod},
		{"mod", ErrParse},
		{"10mod", ErrParse},
		{"mod3", ErrParse},
		{"1+2mod3", ErrParse},
		{"10mod1.2.3", ErrParse},
		{"50%mod3", ErrParse},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			res := Evaluate(tt.input)
			require.Error(t, res.Err, "Evaluate(%q) should fail", tt.input)
			assert.ErrorIs(t, res.Err, tt.kind)
			assert.Equal(t, ErrorText, res.Text())
		})
	}
}

func TestEvaluateErrorKindsAreDistinct(t *testing.T) {
	res := Evaluate("1mod2mod3")
	assert.True(t, errors.Is(res.Err, ErrMalformedMod))
	assert.False(t, errors.Is(res.Err, ErrParse))
	assert.False(t, errors.Is(res.Err, ErrMalformedExpression))

	var ee *EvalError
	require.True(t, errors.As(res.Err, &ee))
	assert.Equal(t, KindMalformedMod, ee.Kind)
	assert.Contains(t, ee.Error(), "malformed mod expression")
}

// Division and modulo by zero stay IEEE values instead of becoming errors.
func TestEvaluateDivisionByZero(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"1/0", "Infinity"},
		{"0-1/0", "-Infinity"},
		{"0/0", "NaN"},
		{"5mod0", "NaN"},
		{"0mod0", "NaN"},
		{"5/0*0", "NaN"},
	}

	for _, tt := range tests {
		res := Evaluate(tt.input)
		require.NoError(t, res.Err, "Evaluate(%q)", tt.input)
		assert.Equal(t, tt.want, res.Text(), "Evaluate(%q)", tt.input)
	}
}

func TestEvaluateModPathTakesPrecedence(t *testing.T) {
	// Each of these would be valid (or differently invalid) arithmetic without
	// the mod word, so a parse error proves the mod path ran.
	for _, input := range []string{"4+4mod3", "2*3mod4", "8mod2/1", "1-1mod1"} {
		res := Evaluate(input)
		assert.ErrorIs(t, res.Err, ErrParse, "Evaluate(%q)", input)
	}
}

func TestEvaluateResultFeedsBack(t *testing.T) {
	first := Evaluate("4+4")
	require.NoError(t, first.Err)
	second := Evaluate(first.Text())
	require.NoError(t, second.Err)
	assert.Equal(t, "8", second.Text())

	for _, input := range []string{"1/3", "0.1+0.2", "123456789*1000", "10.5mod3", "2/1024",
		"2-5", "1/0", "0/0", "0-1/0", "0-0", "-7mod3"} {
		res := Evaluate(input)
		require.NoError(t, res.Err, input)
		again := Evaluate(res.Text())
		require.NoError(t, again.Err, "re-evaluating %q", res.Text())
		assert.Equal(t, res.Text(), again.Text(), "Evaluate(%q) did not round-trip", input)
		if math.IsNaN(res.Value) {
			assert.True(t, math.IsNaN(again.Value), "Evaluate(%q) did not round-trip", input)
		} else {
			assert.Equal(t, res.Value, again.Value, "Evaluate(%q) did not round-trip", input)
		}
	}
}

func TestEvaluateResultSeedsNextExpression(t *testing.T) {
	tests := []struct {
		first string
		next  string
		want  string
	}{
		{"2-5", "+1", "-2"},
		{"2-5", "*2", "-6"},
		{"2-5", "%", "-0.03"},
		{"1/0", "+1", "Infinity"},
		{"0-1/0", "*0", "NaN"},
		{"0/0", "-1", "NaN"},
		{"2-5", "mod2", "-1"},
	}
	for _, tt := range tests {
		seed := Evaluate(tt.first)
		require.NoError(t, seed.Err, tt.first)
		res := Evaluate(seed.Text() + tt.next)
		require.NoError(t, res.Err, "Evaluate(%q)", seed.Text()+tt.next)
		assert.Equal(t, tt.want, res.Text(), "Evaluate(%q)", seed.Text()+tt.next)
	}
}

func TestEvaluateHugeLiteral(t *testing.T) {
	res := Evaluate("1" + strings.Repeat("0", 400))
	require.NoError(t, res.Err)
	assert.Equal(t, "Infinity", res.Text())
}

func TestFormatNumber(t *testing.T) {
	tests := []struct {
		in   float64
		want string
	}{
		{0, "0"},
		{math.Copysign(0, -1), "-0"},
		{8, "8"},
		{-2.5, "-2.5"},
		{1e21, "1000000000000000000000"},
		{1e-7, "0.0000001"},
		{math.NaN(), "NaN"},
		{math.Inf(1), "Infinity"},
		{math.Inf(-1), "-Infinity"},
	}
	for _, tt := range tests {
		if got := FormatNumber(tt.in); got != tt.want {
			t.Errorf("FormatNumber(%v) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestParseLineBuildsPrecedenceTree(t *testing.T) {
	node, err := ParseLine("1+2*3")
	require.NoError(t, err)

	add, ok := node.(*BinaryExpr)
	require.True(t, ok, "root should be a BinaryExpr, got %T", node)
	assert.Equal(t, TOKEN_PLUS, add.Op)
	assert.Equal(t, &NumberLit{Value: 1}, add.Left)

	mul, ok := add.Right.(*BinaryExpr)
	require.True(t, ok, "right should be a BinaryExpr, got %T", add.Right)
	assert.Equal(t, TOKEN_STAR, mul.Op)
	assert.Equal(t, 7.0, Eval(node))
}
