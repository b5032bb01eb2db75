package cmd

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// TestRootCommand verifies that the root command is properly initialized
// with the correct usage and description.
func TestRootCommand(t *testing.T) {
	assert.NotNil(t, rootCmd)
	assert.Equal(t, "plotdeck", rootCmd.Use)
	assert.True(t, rootCmd.SilenceErrors)
}

// TestRootSubcommands verifies that all user-facing subcommands are
// registered on the root command.
func TestRootSubcommands(t *testing.T) {
	names := map[string]bool{}
	for _, sub := range rootCmd.Commands() {
		names[sub.Name()] = true
	}

	assert.True(t, names["watch"])
	assert.True(t, names["export"])
	assert.True(t, names["sources"])
	assert.True(t, names["completion"])
}
