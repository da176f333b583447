package scan

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/tabmill/tabmill/config"
	"github.com/tabmill/tabmill/errors"
)

func testProcessor(t *testing.T) *Processor {
	t.Helper()
	v := viper.New()
	config.SetDefaults(v)
	cfg, err := config.LoadWithViper(v)
	require.NoError(t, err)
	return NewProcessor(cfg, zap.NewNop().Sugar())
}

func writeInput(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "input.csv")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestRun_CleanFile(t *testing.T) {
	p := testProcessor(t)
	path := writeInput(t, "5,hello,3.2\n1,foo,0.5\n2,bar,9.9\n")

	result, err := p.Run(path)
	require.NoError(t, err)

	assert.Equal(t, []string{"Int", "String", "Float"}, result.Schema)
	assert.Equal(t, 2, result.RowsRead)
	assert.Equal(t, 2, result.RowsAccepted)
	assert.Zero(t, result.RowsRejected)
	assert.True(t, result.Rendered)
	require.NotNil(t, result.Presentation)
	assert.Equal(t, []string{"Int", "String", "Float"}, result.Presentation.Headers)
	assert.Equal(t, [][]string{{"1", "foo", "0.5"}, {"2", "bar", "9.9"}}, result.Accepted)
}

func TestRun_DuplicateTypeHeaders(t *testing.T) {
	p := testProcessor(t)
	path := writeInput(t, "1,2\n3,4\n")

	result, err := p.Run(path)
	require.NoError(t, err)
	assert.Equal(t, []string{"Int", "Int2"}, result.Headers)
}

func TestRun_SuppressedOnSingleBadRow(t *testing.T) {
	p := testProcessor(t)
	// One bad row among good ones: warnings, no table, no error.
	path := writeInput(t, "1,2.5\n3,4.5\n6,nope\n7,8.5\n")

	result, err := p.Run(path)
	require.NoError(t, err)

	assert.False(t, result.Rendered)
	assert.Nil(t, result.Presentation)
	assert.Equal(t, 2, result.RowsAccepted)
	assert.Equal(t, 1, result.RowsRejected)
	require.Len(t, result.Warnings, 1)
	assert.Contains(t, result.Warnings[0], "row 2")
}

func TestRun_HeaderOnly(t *testing.T) {
	p := testProcessor(t)
	path := writeInput(t, "1,hello\n")

	result, err := p.Run(path)
	require.NoError(t, err)

	// Empty accepted set without errors still suppresses the table.
	assert.False(t, result.Rendered)
	assert.Zero(t, result.RowsRead)
	assert.Empty(t, result.Warnings)
}

func TestRun_InvalidHeader(t *testing.T) {
	p := testProcessor(t)
	path := writeInput(t, "1,null,3\n4,5,6\n")

	_, err := p.Run(path)
	require.Error(t, err)
	assert.True(t, errors.IsInvalidHeaderRow(err))
}

func TestRun_MissingFile(t *testing.T) {
	p := testProcessor(t)

	_, err := p.Run(filepath.Join(t.TempDir(), "absent.csv"))
	require.Error(t, err)
	assert.True(t, errors.IsFileNotFound(err))
}

func TestRun_EmptyFile(t *testing.T) {
	p := testProcessor(t)
	path := writeInput(t, "\n\n")

	_, err := p.Run(path)
	require.Error(t, err)
	assert.True(t, errors.IsEmptyInput(err))
}

func TestRun_RespectsMaxRows(t *testing.T) {
	v := viper.New()
	config.SetDefaults(v)
	v.Set("scan.max_rows", 3) // header + 2 data rows
	cfg, err := config.LoadWithViper(v)
	require.NoError(t, err)
	p := NewProcessor(cfg, zap.NewNop().Sugar())

	path := writeInput(t, "1\n2\n3\n4\n5\n")
	result, err := p.Run(path)
	require.NoError(t, err)
	assert.Equal(t, 2, result.RowsRead)
}

func TestRun_CustomDelimiter(t *testing.T) {
	v := viper.New()
	config.SetDefaults(v)
	v.Set("scan.delimiter", ";")
	cfg, err := config.LoadWithViper(v)
	require.NoError(t, err)
	p := NewProcessor(cfg, zap.NewNop().Sugar())

	path := writeInput(t, "1;true\n2;false\n")
	result, err := p.Run(path)
	require.NoError(t, err)
	assert.Equal(t, []string{"Int", "Bool"}, result.Schema)
	assert.True(t, result.Rendered)
}

func TestRun_QuoteUnawareTokenization(t *testing.T) {
	p := testProcessor(t)
	// A quoted field containing the delimiter splits into two fields and
	// trips the column-count check. Inherited tokenizer contract.
	path := writeInput(t, "a,b\n\"x,y\",z\n")

	result, err := p.Run(path)
	require.NoError(t, err)
	assert.False(t, result.Rendered)
	require.Len(t, result.Warnings, 1)
	assert.Contains(t, result.Warnings[0], "3 fields")
}
