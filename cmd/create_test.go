package cmd

import (
	"os"
	"testing"

	"ccv/config"
	"ccv/config/models"
	"ccv/internal/prompt"

	"github.com/BurntSushi/toml"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testEnvAnswers = "https://test-endpoint.com\ntest_token\ntest_model\ntest_fastmodel\n"

func TestCreateCmd_Scenario(t *testing.T) {
	path := testConfigPath(t)

	res := runCCV(t, path, testEnvAnswers+"n\n", "create", "test-env")
	require.NoError(t, res.err)
	assert.Contains(t, res.stdout, "Environment 'test-env' created")
	assert.NotContains(t, res.stdout, "global environment")

	var raw map[string]any
	_, err := toml.DecodeFile(path, &raw)
	require.NoError(t, err)

	_, hasGlobal := raw["global_env"]
	assert.False(t, hasGlobal)

	envs := raw["environments"].(map[string]any)
	require.Len(t, envs, 1)
	vars := envs["test-env"].(map[string]any)["variables"]
	assert.Equal(t, map[string]any{
		"ANTHROPIC_BASE_URL":         "https://test-endpoint.com",
		"ANTHROPIC_AUTH_TOKEN":       "test_token",
		"ANTHROPIC_MODEL":            "test_model",
		"ANTHROPIC_SMALL_FAST_MODEL": "test_fastmodel",
	}, vars)
}

func TestCreateCmd_PromptsGoToStderr(t *testing.T) {
	res := runCCV(t, testConfigPath(t), testEnvAnswers+"\n", "create", "work")

	require.NoError(t, res.err)
	for _, step := range prompt.ProfileSteps {
		assert.Contains(t, res.stderr, step.Prompt+": ")
		assert.NotContains(t, res.stdout, step.Prompt+": ")
	}
	assert.Contains(t, res.stderr, prompt.SetActiveQuestion+" [Y/n]")
}

func TestCreateCmd_SetActive(t *testing.T) {
	path := testConfigPath(t)

	res := runCCV(t, path, testEnvAnswers+"y\n", "create", "work")
	require.NoError(t, res.err)
	assert.Contains(t, res.stdout, "'work' is now the global environment")

	assert.Equal(t, "work", loadStore(t, path).GlobalEnv)
}

func TestCreateCmd_NameFromPrompt(t *testing.T) {
	path := testConfigPath(t)

	res := runCCV(t, path, "prompted\n"+testEnvAnswers+"n\n", "create")
	require.NoError(t, res.err)
	assert.Contains(t, res.stderr, "Environment name: ")

	_, ok := loadStore(t, path).GetProfile("prompted")
	assert.True(t, ok)
}

func TestCreateCmd_Duplicate(t *testing.T) {
	path := testConfigPath(t)
	seedEnvironments(t, path, "", "work")
	before, err := os.ReadFile(path)
	require.NoError(t, err)

	res := runCCV(t, path, testEnvAnswers+"y\n", "create", "work")

	require.Error(t, res.err)
	assert.Contains(t, res.err.Error(), "already exists")
	assert.Equal(t, ExitDuplicate, ExitCode(res.err))
	assert.NotContains(t, res.stderr, "ANTHROPIC_BASE_URL: ", "duplicate is reported before prompting")

	after, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, before, after)
}

func TestCreateCmd_IncompleteInput(t *testing.T) {
	path := testConfigPath(t)

	res := runCCV(t, path, "https://test-endpoint.com\ntest_token\n", "create", "work")

	assert.ErrorIs(t, res.err, prompt.ErrIncompleteInput)
	assert.Equal(t, ExitIncompleteInput, ExitCode(res.err))
	_, err := os.Stat(path)
	assert.True(t, os.IsNotExist(err), "no store is written when input ends early")
}

func TestCreateCmd_InvalidName(t *testing.T) {
	res := runCCV(t, testConfigPath(t), testEnvAnswers+"n\n", "create", "has space")

	assert.ErrorContains(t, res.err, "whitespace")
	assert.Equal(t, ExitGeneral, ExitCode(res.err))
}

func TestCreateCmd_MultipleEnvironmentsThenList(t *testing.T) {
	path := testConfigPath(t)
	for _, name := range []string{"env3", "env1", "env2"} {
		res := runCCV(t, path, testEnvAnswers+"n\n", "create", name)
		require.NoError(t, res.err, name)
	}

	names, ok := config.List(loadStore(t, path))
	assert.True(t, ok)
	assert.Equal(t, []string{"env1", "env2", "env3"}, names)

	store := loadStore(t, path)
	assert.Equal(t, models.DefaultDescription, store.Environments["env1"].Description)
}

func TestCreateCmd_InvalidUTF8AnswerKeepsStoreReadable(t *testing.T) {
	path := testConfigPath(t)
	seedEnvironments(t, path, "", "existing")
	before, err := os.ReadFile(path)
	require.NoError(t, err)

	res := runCCV(t, path, "https://x\ntok\xff\xfe\nm\nf\nn\n", "create", "bad")
	require.Error(t, res.err)
	assert.Contains(t, res.err.Error(), "not valid UTF-8")
	assert.Equal(t, ExitGeneral, ExitCode(res.err))

	after, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, before, after)

	res = runCCV(t, path, "", "envs")
	require.NoError(t, res.err)
	assert.Contains(t, res.stdout, "existing")

	res = runCCV(t, path, testEnvAnswers+"n\n", "create", "next")
	require.NoError(t, res.err)
}

func TestCreateCmd_InvalidUTF8Name(t *testing.T) {
	path := testConfigPath(t)

	res := runCCV(t, path, testEnvAnswers, "create", "bad\xff")

	assert.ErrorContains(t, res.err, "not valid UTF-8")
	assert.NotContains(t, res.stderr, "ANTHROPIC_BASE_URL")
	_, err := os.Stat(path)
	assert.True(t, os.IsNotExist(err))
}
