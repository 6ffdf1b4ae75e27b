package cmd

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestGetExtractCmd_Exists verifies getExtractCmd returns
// a valid command.
func TestGetExtractCmd_Exists(t *testing.T) {
	cmd := getExtractCmd()
	require.NotNil(t, cmd, "Extract command should exist")
	assert.Equal(t, "extract", cmd.Use,
		"Command name should be extract")
}

// TestGetExtractCmd_Descriptions verifies descriptions.
func TestGetExtractCmd_Descriptions(t *testing.T) {
	cmd := getExtractCmd()

	assert.NotEmpty(t, cmd.Short)
	assert.Contains(t, cmd.Short, "TSV",
		"Short description should mention the output format")

	assert.NotEmpty(t, cmd.Long)
	assert.Contains(t, cmd.Long, "sample_attribute",
		"Long description should mention the attribute column")
	assert.Contains(t, cmd.Long, "profiles.yaml",
		"Long description should mention profiles")
}

// TestGetExtractCmd_Flags verifies the full flag set.
func TestGetExtractCmd_Flags(t *testing.T) {
	cmd := getExtractCmd()

	tests := []struct {
		name      string
		shorthand string
		defValue  string
	}{
		{"study", "s", ""},
		{"columns", "c", "[]"},
		{"profile", "p", ""},
		{"output", "o", ""},
		{"snapshot", "", ""},
		{"by-label", "", "false"},
		{"drop-empty-columns", "", "false"},
		{"empty-as-null", "", "true"},
	}

	for _, tt := range tests {
		flag := cmd.Flags().Lookup(tt.name)
		require.NotNil(t, flag, tt.name)
		assert.Equal(t, tt.shorthand, flag.Shorthand, tt.name)
		assert.Equal(t, tt.defValue, flag.DefValue, tt.name)
	}
}

// TestGetExtractCmd_Alias verifies the ex alias.
func TestGetExtractCmd_Alias(t *testing.T) {
	cmd := getExtractCmd()
	assert.Contains(t, cmd.Aliases, "ex")
}

// TestGetExtractCmd_IndependentInstances verifies each call
// returns a new instance.
func TestGetExtractCmd_IndependentInstances(t *testing.T) {
	cmd1 := getExtractCmd()
	cmd2 := getExtractCmd()
	assert.NotSame(t, cmd1, cmd2)
}

// TestGetInfoCmd_Exists verifies getInfoCmd returns a valid
// command.
func TestGetInfoCmd_Exists(t *testing.T) {
	cmd := getInfoCmd()
	require.NotNil(t, cmd)
	assert.Equal(t, "info", cmd.Use)
	assert.NotNil(t, cmd.RunE)

	flag := cmd.Flags().Lookup("snapshot")
	require.NotNil(t, flag)
}
