package suite

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestQuestionTemplate_Render(t *testing.T) {
	tmpl := &QuestionTemplate{
		ID:       "add",
		Question: "What is {{a}} plus {{b}}?",
	}

	result, err := tmpl.Render(TemplateParams{"a": 15, "b": "27"})
	require.NoError(t, err)
	assert.Equal(t, "What is 15 plus 27?", result)
}

func TestQuestionTemplate_Render_MissingParams(t *testing.T) {
	tmpl := &QuestionTemplate{
		ID:       "add",
		Question: "What is {{a}} plus {{b}}?",
	}

	_, err := tmpl.Render(TemplateParams{"a": 1})
	assert.ErrorContains(t, err, "missing params")
	assert.ErrorContains(t, err, "b")
}

func TestQuestionTemplate_Render_RepeatedPlaceholder(t *testing.T) {
	tmpl := &QuestionTemplate{ID: "square", Question: "{{n}} times {{n}}"}

	result, err := tmpl.Render(TemplateParams{"n": 9})
	require.NoError(t, err)
	assert.Equal(t, "9 times 9", result)
}

func TestQuestionTemplate_RequiredParams(t *testing.T) {
	tmpl := &QuestionTemplate{
		ID:       "op",
		Question: "{{a}} {{op}} {{b}} and {{a}} again",
	}

	assert.Equal(t, []string{"a", "op", "b"}, tmpl.RequiredParams())
	assert.Nil(t, (&QuestionTemplate{ID: "x", Question: "no params"}).RequiredParams())
}

func TestQuestionTemplate_Validate(t *testing.T) {
	tests := []struct {
		name    string
		tmpl    *QuestionTemplate
		wantErr bool
	}{
		{
			name:    "valid template",
			tmpl:    &QuestionTemplate{ID: "test", Question: "What is 1 plus 1?"},
			wantErr: false,
		},
		{
			name:    "missing id",
			tmpl:    &QuestionTemplate{Question: "What is 1 plus 1?"},
			wantErr: true,
		},
		{
			name:    "no question",
			tmpl:    &QuestionTemplate{ID: "test"},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.tmpl.Validate()
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestFormatValue(t *testing.T) {
	tests := []struct {
		name  string
		input any
		want  string
	}{
		{"string", "seven", "seven"},
		{"int", 42, "42"},
		{"int64", int64(9000000000), "9000000000"},
		{"uint64", uint64(18446744073709551615), "18446744073709551615"},
		{"float", 2.5, "2.5"},
		{"bool", true, "true"},
		{"string slice", []string{"a", "b"}, "a, b"},
		{"any slice", []any{1, "x"}, "1, x"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, formatValue(tt.input))
		})
	}
}

func TestTemplateRegistry(t *testing.T) {
	reg := NewTemplateRegistry()

	require.NoError(t, reg.Register(&QuestionTemplate{ID: "add", Question: "{{a}} plus {{b}}"}))
	assert.Error(t, reg.Register(&QuestionTemplate{ID: "add", Question: "dup"}))
	assert.Error(t, reg.Register(&QuestionTemplate{ID: "bad"}))

	q, err := reg.RenderQuestion("add", TemplateParams{"a": 2, "b": 3})
	require.NoError(t, err)
	assert.Equal(t, "2 plus 3", q)

	_, err = reg.RenderQuestion("missing", nil)
	assert.ErrorContains(t, err, "not found")

	assert.Equal(t, []string{"add"}, reg.List())
}
