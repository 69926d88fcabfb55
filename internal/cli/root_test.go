package cli

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRootCommand(t *testing.T) {
	cmd := NewRootCommand()
	require.NotNil(t, cmd)
	assert.Equal(t, "quickcart", cmd.Use)
	assert.Contains(t, cmd.Long, "storefront")
}

func TestCommandPresence(t *testing.T) {
	cmd := NewRootCommand()
	commands := []string{"serve", "seed", "users"}

	for _, cmdName := range commands {
		t.Run(cmdName, func(t *testing.T) {
			subCmd, _, err := cmd.Find([]string{cmdName})
			require.NoError(t, err, "Command %s should exist", cmdName)
			require.NotNil(t, subCmd)
			assert.Equal(t, cmdName, subCmd.Name())
		})
	}
}

func TestGlobalFlags(t *testing.T) {
	cmd := NewRootCommand()

	verboseFlag := cmd.PersistentFlags().Lookup("verbose")
	require.NotNil(t, verboseFlag)
	assert.Equal(t, "v", verboseFlag.Shorthand)
	assert.Equal(t, "false", verboseFlag.DefValue)

	formatFlag := cmd.PersistentFlags().Lookup("format")
	require.NotNil(t, formatFlag)
	assert.Equal(t, "text", formatFlag.DefValue)
}

func TestServeCommandFlags(t *testing.T) {
	cmd := NewRootCommand()
	serveCmd, _, err := cmd.Find([]string{"serve"})
	require.NoError(t, err)

	for _, name := range []string{"listen", "db", "seed-dir"} {
		flag := serveCmd.Flags().Lookup(name)
		require.NotNil(t, flag, "serve should have --%s", name)
		// Overrides default to empty: the config file wins when unset.
		assert.Equal(t, "", flag.DefValue)
	}
}

func TestUsersCommandFlags(t *testing.T) {
	cmd := NewRootCommand()
	usersCmd, _, err := cmd.Find([]string{"users"})
	require.NoError(t, err)

	dbFlag := usersCmd.PersistentFlags().Lookup("db")
	require.NotNil(t, dbFlag)

	addCmd, _, err := cmd.Find([]string{"users", "add"})
	require.NoError(t, err)
	for _, name := range []string{"name", "email", "password", "admin"} {
		require.NotNil(t, addCmd.Flags().Lookup(name), "users add should have --%s", name)
	}
}

func TestFormatValidation(t *testing.T) {
	assert.True(t, isValidFormat("text"))
	assert.True(t, isValidFormat("json"))

	assert.False(t, isValidFormat("xml"))
	assert.False(t, isValidFormat(""))
	assert.False(t, isValidFormat("TEXT"))
}

func TestFormatValidationIntegration(t *testing.T) {
	cmd := NewRootCommand()
	cmd.SetArgs([]string{"--format", "invalid", "seed", "validate", "."})

	err := cmd.Execute()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid format")
}
