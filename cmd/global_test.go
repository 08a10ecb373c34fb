package cmd

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGlobalCmd(t *testing.T) {
	t.Run("sets the global environment", func(t *testing.T) {
		path := testConfigPath(t)
		seedEnvironments(t, path, "", "current-env", "other")

		res := runCCV(t, path, "", "global", "current-env")
		require.NoError(t, res.err)
		assert.Contains(t, res.stdout, "Global environment set to 'current-env'")
		assert.Equal(t, "current-env", loadStore(t, path).GlobalEnv)
	})

	t.Run("nonexistent keeps the previous global", func(t *testing.T) {
		path := testConfigPath(t)
		seedEnvironments(t, path, "other", "other")

		res := runCCV(t, path, "", "global", "nonexistent")
		require.Error(t, res.err)
		assert.Contains(t, res.err.Error(), "does not exist")
		assert.Equal(t, ExitNotFound, ExitCode(res.err))
		assert.Equal(t, "other", loadStore(t, path).GlobalEnv)
	})

	t.Run("requires a name", func(t *testing.T) {
		res := runCCV(t, testConfigPath(t), "", "global")
		assert.Error(t, res.err)
	})
}
