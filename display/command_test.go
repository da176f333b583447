package display

import (
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestCommands() (*cobra.Command, *cobra.Command) {
	root := &cobra.Command{Use: "root"}
	root.PersistentFlags().Bool("json", false, "")

	child := &cobra.Command{Use: "child", Run: func(*cobra.Command, []string) {}}
	child.Flags().Bool("json", false, "")
	root.AddCommand(child)
	return root, child
}

func TestShouldOutputJSON_NilCommand(t *testing.T) {
	assert.False(t, ShouldOutputJSON(nil))
}

func TestShouldOutputJSON_Default(t *testing.T) {
	_, child := newTestCommands()
	assert.False(t, ShouldOutputJSON(child))
}

func TestShouldOutputJSON_LocalFlag(t *testing.T) {
	_, child := newTestCommands()
	require.NoError(t, child.Flags().Set("json", "true"))
	assert.True(t, ShouldOutputJSON(child))
}

func TestShouldOutputJSON_LocalFlagExplicitlyFalseWinsOverGlobal(t *testing.T) {
	root, child := newTestCommands()
	require.NoError(t, root.PersistentFlags().Set("json", "true"))
	require.NoError(t, child.Flags().Set("json", "false"))
	assert.False(t, ShouldOutputJSON(child))
}

func TestShouldOutputJSON_GlobalFlag(t *testing.T) {
	root, child := newTestCommands()
	require.NoError(t, root.PersistentFlags().Set("json", "true"))
	assert.True(t, ShouldOutputJSON(child))
}

func TestMarshalJSON(t *testing.T) {
	data, err := MarshalJSON(map[string]int{"rows": 3})
	require.NoError(t, err)
	assert.Equal(t, "{\n  \"rows\": 3\n}", string(data))
}
