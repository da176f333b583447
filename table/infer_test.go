package table

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tabmill/tabmill/errors"
)

func TestClassify(t *testing.T) {
	tests := []struct {
		name  string
		token string
		want  ColumnType
	}{
		{"fractional number is float", "3.14", Float},
		{"whole number is int, not float", "42", Int},
		{"leading zeros still int", "007", Int},
		{"lowercase true is bool", "true", Bool},
		{"mixed-case false is bool", "FaLsE", Bool},
		{"empty token is null", "", Null},
		{"whitespace-only token is null", "   ", Null},
		{"null literal is null", "null", Null},
		{"uppercase null literal is null", "NULL", Null},
		{"word falls through to string", "hello", String},
		{"signed number is string", "-5", String},
		{"decimal without integer part is string", ".5", String},
		{"decimal without fraction is string", "5.", String},
		{"number with surrounding spaces classifies trimmed", " 12 ", Int},
		{"float with spaces classifies trimmed", " 1.5 ", Float},
		{"embedded delimiter residue is string", `"quoted`, String},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Classify(tt.token))
		})
	}
}

func TestInferSchema(t *testing.T) {
	schema, err := InferSchema([]string{"5", "hello", "3.2", "true"})
	require.NoError(t, err)
	assert.Equal(t, Schema{Int, String, Float, Bool}, schema)
}

func TestInferSchema_OrderAndLengthMatchHeader(t *testing.T) {
	fields := []string{"a", "1", "b", "2.5"}
	schema, err := InferSchema(fields)
	require.NoError(t, err)
	require.Len(t, schema, len(fields))
	assert.Equal(t, Schema{String, Int, String, Float}, schema)
}

func TestInferSchema_InvalidHeaderRow(t *testing.T) {
	tests := []struct {
		name   string
		fields []string
	}{
		{"empty token", []string{"a", "", "c"}},
		{"whitespace-only token", []string{"a", "   ", "c"}},
		{"null literal", []string{"a", "null", "c"}},
		{"uppercase null literal", []string{"NULL"}},
		{"quotes-only token", []string{`""`, "b"}},
		{"quotes and whitespace token", []string{`" '  `, "b"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			schema, err := InferSchema(tt.fields)
			require.Error(t, err)
			assert.True(t, errors.IsInvalidHeaderRow(err))
			assert.Nil(t, schema, "no schema may be produced from a bad header")
		})
	}
}

func TestColumnTypeString(t *testing.T) {
	assert.Equal(t, "Null", Null.String())
	assert.Equal(t, "String", String.String())
	assert.Equal(t, "Int", Int.String())
	assert.Equal(t, "Float", Float.String())
	assert.Equal(t, "Bool", Bool.String())
}
