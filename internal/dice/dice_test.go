package dice

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParseLiteralForms(t *testing.T) {
	tests := []struct {
		in   string
		want Value
	}{
		{"5", Value{Base: 5}},
		{"2d8", Value{Dice: 2, Sides: 8}},
		{"d4", Value{Dice: 1, Sides: 4}},
		{"3+1d6", Value{Base: 3, Dice: 1, Sides: 6}},
		{"2d8+M10", Value{Dice: 2, Sides: 8, MBonus: 10}},
		{"1+2d3+M4", Value{Base: 1, Dice: 2, Sides: 3, MBonus: 4}},
	}
	for _, tt := range tests {
		d := New()
		require.True(t, d.Parse(tt.in), "Parse(%q)", tt.in)
		require.Equal(t, tt.want, d.Evaluate(), "Evaluate(%q)", tt.in)
	}
}

func TestParseRejectsMalformed(t *testing.T) {
	for _, in := range []string{"", "+", "1+2", "2d8+1d4", "xd4", "$"} {
		d := New()
		require.False(t, d.Parse(in), "Parse(%q)", in)
	}
}

func TestVariablesEvaluateToZeroWhenUnbound(t *testing.T) {
	d := New()
	require.True(t, d.Parse("$B+$Dd$S"))
	require.Equal(t, Value{}, d.Evaluate())
}

func TestBindExpression(t *testing.T) {
	d := New()
	require.True(t, d.Parse("$B+3d4"))

	expr := NewExpression()
	expr.SetBaseValue(func() int32 { return 10 })
	require.True(t, expr.AddOperationsString("/ 2 + 5"))

	require.True(t, d.BindExpression("B", expr))
	require.Equal(t, Value{Base: 10, Dice: 3, Sides: 4}, d.Evaluate())
}

func TestBindExpressionUnknownVariable(t *testing.T) {
	d := New()
	require.True(t, d.Parse("3d4"))
	require.False(t, d.BindExpression("B", NewExpression()))
}

func TestBindExpressionKeepsOwnCopy(t *testing.T) {
	d := New()
	require.True(t, d.Parse("$B"))

	expr := NewExpression()
	expr.SetBaseValue(func() int32 { return 7 })
	require.True(t, d.BindExpression("B", expr))

	// Mutating the caller's handle after binding must not leak into the dice.
	expr.AddOperationsString("+ 100")
	require.Equal(t, Value{Base: 7}, d.Evaluate())
}

func TestRollStaysInRange(t *testing.T) {
	d := New()
	require.True(t, d.Parse("2+3d4"))

	rng := rand.New(rand.NewSource(1))
	for i := 0; i < 100; i++ {
		got := d.Roll(rng)
		if got < 5 || got > 14 {
			t.Fatalf("Roll() = %d, want in [5,14]", got)
		}
	}
}

func TestExpressionOperations(t *testing.T) {
	tests := []struct {
		base int32
		ops  string
		want int32
	}{
		{10, "- 1 / 2 + 25", 29},
		{4, "* 3", 12},
		{5, "n", -5},
		{7, "", 7},
	}
	for _, tt := range tests {
		e := NewExpression()
		e.SetBaseValue(func() int32 { return tt.base })
		require.True(t, e.AddOperationsString(tt.ops), "ops %q", tt.ops)
		require.Equal(t, tt.want, e.Evaluate(), "ops %q", tt.ops)
	}
}

func TestExpressionRejectsBadStrings(t *testing.T) {
	for _, in := range []string{"+", "+ x", "/ 0", "foo"} {
		e := NewExpression()
		require.False(t, e.AddOperationsString(in), "ops %q", in)
	}
}

func TestExpressionNilBase(t *testing.T) {
	e := NewExpression()
	require.True(t, e.AddOperationsString("+ 3"))
	require.Equal(t, int32(3), e.Evaluate())
}

func TestProviderRegistries(t *testing.T) {
	require.Nil(t, SpellBaseByName("NO_SUCH_PROVIDER"))
	require.Nil(t, PowerBaseByName("NO_SUCH_PROVIDER"))

	RegisterSpellBase("TEST_LEVEL", func() int32 { return 42 })
	f := SpellBaseByName("TEST_LEVEL")
	require.NotNil(t, f)
	require.Equal(t, int32(42), f())
}
