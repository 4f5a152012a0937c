package operator

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLookup(t *testing.T) {
	tests := []struct {
		word string
		want Operator
	}{
		{"plus", Add}, {"add", Add}, {"sum", Add}, {"and", Add}, {"+", Add},
		{"minus", Subtract}, {"subtract", Subtract}, {"difference", Subtract}, {"less", Subtract}, {"-", Subtract},
		{"times", Multiply}, {"multiply", Multiply}, {"product", Multiply}, {"x", Multiply}, {"*", Multiply}, {"×", Multiply},
		{"divide", Divide}, {"divided", Divide}, {"over", Divide}, {"split", Divide}, {"/", Divide}, {"÷", Divide},
		{"PLUS", Add},
		{"Times", Multiply},
	}

	for _, tt := range tests {
		t.Run(tt.word, func(t *testing.T) {
			got, ok := Lookup(tt.word)
			require.True(t, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestLookup_Unknown(t *testing.T) {
	for _, word := range []string{"by", "equals", "what", "", "plus-one"} {
		_, ok := Lookup(word)
		assert.False(t, ok, word)
	}
}

func TestParse(t *testing.T) {
	op, err := Parse("Divide")
	require.NoError(t, err)
	assert.Equal(t, Divide, op)

	_, err = Parse("modulo")
	assert.ErrorContains(t, err, "invalid operator")

	_, err = Parse("")
	assert.Error(t, err)
}

func TestOperator_SymbolAndWord(t *testing.T) {
	tests := []struct {
		op     Operator
		symbol string
		word   string
	}{
		{Add, "+", "plus"},
		{Subtract, "-", "minus"},
		{Multiply, "*", "times"},
		{Divide, "/", "divided by"},
	}

	for _, tt := range tests {
		t.Run(tt.op.String(), func(t *testing.T) {
			assert.Equal(t, tt.symbol, tt.op.Symbol())
			assert.Equal(t, tt.word, tt.op.Word())
			assert.NoError(t, tt.op.Validate())
		})
	}

	assert.Error(t, Operator("power").Validate())
}

func TestOperator_JSONRoundTrip(t *testing.T) {
	type payload struct {
		Op Operator `json:"op"`
	}

	data, err := json.Marshal(payload{Op: Multiply})
	require.NoError(t, err)
	assert.JSONEq(t, `{"op":"multiply"}`, string(data))

	var p payload
	err = json.Unmarshal([]byte(`{"op":"nope"}`), &p)
	assert.Error(t, err)
}
