package arith

import (
	"fmt"
	"testing"

	"github.com/DjordjeVuckovic/reasoner/internal/types/operator"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var operandPairs = [][2]int64{
	{0, 1}, {1, 1}, {15, 27}, {27, 15}, {100, 45}, {45, 100},
	{7, 0}, {0, 0}, {999999, 1}, {123456789, 987654321},
}

func TestSolve_Addition(t *testing.T) {
	for _, p := range operandPairs {
		if p[1] == 0 {
			continue
		}
		t.Run(fmt.Sprintf("%d+%d", p[0], p[1]), func(t *testing.T) {
			res, err := Solve(fmt.Sprintf("What is %d plus %d?", p[0], p[1]))
			require.NoError(t, err)

			got, ok := res.Value.Int64()
			require.True(t, ok, "expected an exact integer, got %s", res.Value)
			assert.Equal(t, p[0]+p[1], got)
		})
	}
}

func TestSolve_Subtraction(t *testing.T) {
	for _, p := range operandPairs {
		t.Run(fmt.Sprintf("%d-%d", p[0], p[1]), func(t *testing.T) {
			res, err := Solve(fmt.Sprintf("Calculate %d minus %d", p[0], p[1]))
			require.NoError(t, err)

			got, ok := res.Value.Int64()
			require.True(t, ok)
			assert.Equal(t, p[0]-p[1], got)
		})
	}
}

func TestSolve_Table(t *testing.T) {
	tests := []struct {
		name     string
		question string
		want     string
		line     string
	}{
		{"multiply", "8 times 7", "56", "8 times 7 = 56"},
		{"numbers on both sides of operator", "2 times 8 equals what?", "16", "2 times 8 = 16"},
		{"divide", "100 divided by 4", "25", "100 divided by 4 = 25"},
		{"divide fraction", "100 divided by 3", "33.333333333333336", "100 divided by 3 = 33.333333333333336"},
		{"division by zero", "100 divided by 0", UndefinedDivision, "100 divided by 0 = undefined (division by zero)"},
		{"number words", "two plus three", "5", "2 plus 3 = 5"},
		{"tens words", "twenty plus ten", "30", "20 plus 10 = 30"},
		{"symbol plus", "What is 4 + 5?", "9", "4 plus 5 = 9"},
		{"symbol divide", "9/3", "3", "9 divided by 3 = 3"},
		{"symbol minus glued", "10-4", "6", "10 minus 4 = 6"},
		{"x as multiply", "6 x 7", "42", "6 times 7 = 42"},
		{"sum and", "the sum of 4 and 5", "9", "4 plus 5 = 9"},
		{"first operator wins", "difference between 10 and 3", "7", "10 minus 3 = 7"},
		{"operator before numbers", "multiply 6 by 3", "18", "6 times 3 = 18"},
		{"negative result", "3 minus 10", "-7", "3 minus 10 = -7"},
		{"arabic-indic digits", "٣ plus ٤", "7", "3 plus 4 = 7"},
		{"fullwidth digits", "１２ plus ３", "15", "12 plus 3 = 15"},
		{"huge operands stay exact", "99999999999999999999 plus 1", "100000000000000000000", "99999999999999999999 plus 1 = 100000000000000000000"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res, err := Solve(tt.question)
			require.NoError(t, err)
			assert.Equal(t, tt.want, res.ValueString())
			assert.Equal(t, tt.line, res.String())
		})
	}
}

func TestSolve_CompoundNumberWordsAreNotCombined(t *testing.T) {
	res, err := Solve("twenty-one plus one")
	require.NoError(t, err)

	assert.NotEqual(t, "22", res.ValueString())
	assert.Equal(t, "20 plus 1 = 21", res.String())
}

func TestSolve_NotEnoughData(t *testing.T) {
	tests := []string{
		"What is seven?",
		"",
		"plus minus times",
		"4 and",
		"What is 4 5?",
		"Why is the sky blue?",
	}

	for _, q := range tests {
		t.Run(q, func(t *testing.T) {
			_, err := Solve(q)
			assert.ErrorIs(t, err, ErrNotEnoughData)
		})
	}
}

func TestSolve_Idempotent(t *testing.T) {
	q := "What is 15 plus 27?"
	first, err := Solve(q)
	require.NoError(t, err)
	second, err := Solve(q)
	require.NoError(t, err)

	assert.Equal(t, first.String(), second.String())
}

func TestEvaluate_DivisionByZeroIsNotAnError(t *testing.T) {
	res, err := Evaluate([]Number{Int(5), Int(0)}, []operator.Operator{operator.Divide})
	require.NoError(t, err)
	assert.True(t, res.Undefined)
	assert.Equal(t, UndefinedDivision, res.ValueString())
}

func TestEvaluate_UsesFirstOperatorAndFirstTwoNumbers(t *testing.T) {
	numbers := []Number{Int(9), Int(3), Int(100)}
	ops := []operator.Operator{operator.Divide, operator.Add}

	res, err := Evaluate(numbers, ops)
	require.NoError(t, err)
	assert.Equal(t, "3", res.ValueString())
	assert.Equal(t, operator.Divide, res.Expression.Operator)
}

func TestEvaluate_MixedFloatOperands(t *testing.T) {
	res, err := Evaluate([]Number{Float(2.5), Int(2)}, []operator.Operator{operator.Multiply})
	require.NoError(t, err)
	assert.False(t, res.Value.IsInt())
	assert.Equal(t, "5", res.Value.String())
}

func TestEvaluate_InvalidOperator(t *testing.T) {
	_, err := Evaluate([]Number{Int(1), Int(2)}, []operator.Operator{"power"})
	assert.ErrorContains(t, err, "invalid operator")
}
