package shell

import (
	"os/exec"
	"strings"
	"testing"

	"ccv/config/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testProfile() models.Profile {
	return models.Profile{Variables: map[string]string{
		models.KeyModel:     "claude-sonnet",
		models.KeyBaseURL:   "https://api.example.com",
		models.KeyAuthToken: "sk-test",
	}}
}

func render(t *testing.T, name string, p models.Profile, d Dialect) string {
	t.Helper()
	got, err := Render(name, p, d)
	require.NoError(t, err)
	return got
}

func TestRender_Bash(t *testing.T) {
	got := render(t, "work", testProfile(), Bash)

	assert.Equal(t, "export ANTHROPIC_AUTH_TOKEN=sk-test\n"+
		"export ANTHROPIC_BASE_URL=https://api.example.com\n"+
		"export ANTHROPIC_MODEL=claude-sonnet\n"+
		"export CLAUDE_CODE_ENV=work\n", got)
}

func TestRender_Fish(t *testing.T) {
	got := render(t, "work", testProfile(), Fish)

	assert.Contains(t, got, "set -gx ANTHROPIC_BASE_URL 'https://api.example.com';\n")
	assert.Contains(t, got, "set -gx CLAUDE_CODE_ENV 'work';\n")
	assert.NotContains(t, got, "export")
}

func TestRender_FishEscapesBackslashesAndQuotes(t *testing.T) {
	tests := []struct {
		value string
		want  string
	}{
		{value: `abc\`, want: `set -gx K 'abc\\';`},
		{value: `a\\b`, want: `set -gx K 'a\\\\b';`},
		{value: `it's`, want: `set -gx K 'it\'s';`},
		{value: `\'`, want: `set -gx K '\\\'';`},
		{value: "$HOME (x)", want: `set -gx K '$HOME (x)';`},
	}

	for _, tt := range tests {
		p := models.Profile{Variables: map[string]string{"K": tt.value}}
		got := render(t, "w", p, Fish)
		assert.Equal(t, tt.want+"\n", strings.SplitAfter(got, "\n")[0], "value %q", tt.value)
	}
}

func TestRender_FishEvaluatesInFish(t *testing.T) {
	fish, err := exec.LookPath("fish")
	if err != nil {
		t.Skip("fish not available")
	}

	value := `trailing\ and \\ double and it's`
	p := models.Profile{Variables: map[string]string{"CCV_TEST_VALUE": value}}
	script := render(t, "w", p, Fish) + `printf '%s' "$CCV_TEST_VALUE"`

	out, err := exec.Command(fish, "-c", script).Output()
	require.NoError(t, err)
	assert.Equal(t, value, string(out))
}

func TestRender_RejectsUnsafeKeys(t *testing.T) {
	for _, key := range []string{"X; echo PWNED", "1ABC", "A-B", "A=B", "$(id)", ""} {
		p := models.Profile{Variables: map[string]string{
			models.KeyModel: "m",
			key:             "v",
		}}
		for _, d := range Dialects {
			got, err := Render("w", p, d)
			require.Error(t, err, "key %q dialect %s", key, d)
			assert.Contains(t, err.Error(), "environment 'w'")
			assert.Empty(t, got)
		}

		_, err := Environ(nil, "w", p)
		assert.Error(t, err, "key %q", key)
	}
}

func TestRender_PowerShell(t *testing.T) {
	p := models.Profile{Variables: map[string]string{models.KeyAuthToken: "it's"}}
	got := render(t, "o'neil", p, PowerShell)

	assert.Equal(t, "$env:ANTHROPIC_AUTH_TOKEN = 'it''s'\n$env:CLAUDE_CODE_ENV = 'o''neil'\n", got)
}

func TestRender_QuotesUnsafeValues(t *testing.T) {
	p := models.Profile{Variables: map[string]string{
		"A": "two words",
		"B": `$(rm -rf /)`,
		"C": `it's "quoted"`,
		"D": "",
	}}

	got := render(t, "x", p, Sh)
	assert.Contains(t, got, "export A='two words'\n")
	assert.Contains(t, got, "export B='$(rm -rf /)'\n")
	assert.Contains(t, got, "export D=''\n")
}

func TestRender_EvaluatesInShell(t *testing.T) {
	sh, err := exec.LookPath("sh")
	if err != nil {
		t.Skip("sh not available")
	}

	p := models.Profile{Variables: map[string]string{
		"CCV_TEST_VALUE": `it's a "test" with $dollar and spaces`,
	}}
	script := render(t, "round trip", p, Sh) + `printf '%s|%s' "$CCV_TEST_VALUE" "$CLAUDE_CODE_ENV"`

	out, err := exec.Command(sh, "-c", script).Output()
	require.NoError(t, err)
	assert.Equal(t, `it's a "test" with $dollar and spaces|round trip`, string(out))
}

func TestParseDialect(t *testing.T) {
	tests := map[string]Dialect{
		"/bin/bash":      Bash,
		"/usr/bin/zsh":   Zsh,
		"dash":           Sh,
		"/opt/fish":      Fish,
		"pwsh.exe":       PowerShell,
		"PowerShell":     PowerShell,
		"/usr/local/ksh": Sh,
	}
	for input, want := range tests {
		got, err := ParseDialect(input)
		require.NoError(t, err, input)
		assert.Equal(t, want, got, input)
	}

	_, err := ParseDialect("tcsh")
	assert.ErrorContains(t, err, "unsupported shell")
}

func TestDetect(t *testing.T) {
	t.Setenv("SHELL", "/bin/zsh")
	assert.Equal(t, Zsh, Detect())

	t.Setenv("SHELL", "")
	assert.Equal(t, Sh, Detect())

	t.Setenv("SHELL", "/bin/tcsh")
	assert.Equal(t, Sh, Detect())
}

func TestEnviron(t *testing.T) {
	env, err := Environ([]string{"PATH=/bin"}, "work", testProfile())
	require.NoError(t, err)

	assert.Equal(t, "PATH=/bin", env[0])
	assert.Contains(t, env, "ANTHROPIC_MODEL=claude-sonnet")
	assert.Equal(t, "CLAUDE_CODE_ENV=work", env[len(env)-1])
}

func TestHookSnippet(t *testing.T) {
	assert.Equal(t, "eval \"$(ccv shell --shell zsh 2>/dev/null)\"\n", HookSnippet(Zsh))
	assert.True(t, strings.HasSuffix(HookSnippet(Fish), "| source\n"))
	assert.Contains(t, HookSnippet(PowerShell), "Invoke-Expression")
}
