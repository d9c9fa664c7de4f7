package npm

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"toolctl/internal/execx"
	"toolctl/internal/testutil"
)

func TestGlobalVersion(t *testing.T) {
	runner := testutil.NewFakeRunner()
	runner.Results["npm ls -g --depth=0 @anthropic-ai/claude-code --json"] = execx.Result{
		Success: true,
		Stdout:  `{"dependencies":{"@anthropic-ai/claude-code":{"version":"1.0.17"}}}`,
	}
	c := NewClient(runner)

	v, err := c.GlobalVersion(context.Background(), "@anthropic-ai/claude-code")
	require.NoError(t, err)
	assert.Equal(t, "1.0.17", v)
}

// npm exits non-zero for absent packages but still prints JSON; that must
// surface as "not found", not a parse error.
func TestGlobalVersion_PackageAbsent(t *testing.T) {
	runner := testutil.NewFakeRunner()
	runner.Results["npm ls -g --depth=0 missing --json"] = execx.Result{
		ExitCode: 1,
		Stdout:   `{"dependencies":{}}`,
	}
	c := NewClient(runner)

	_, err := c.GlobalVersion(context.Background(), "missing")
	assert.ErrorContains(t, err, "package not found")
}

func TestLatestVersion(t *testing.T) {
	runner := testutil.NewFakeRunner()
	runner.Results["npm view @openai/codex version --json"] = execx.Result{
		Success: true,
		Stdout:  "\"0.4.2\"\n",
	}
	c := NewClient(runner)

	v, err := c.LatestVersion(context.Background(), "@openai/codex")
	require.NoError(t, err)
	assert.Equal(t, "0.4.2", v)
}

func TestLatestVersion_NpmMissing(t *testing.T) {
	runner := testutil.NewFakeRunner() // every command fails
	c := NewClient(runner)

	_, err := c.LatestVersion(context.Background(), "@openai/codex")
	assert.Error(t, err)
}

func TestInstallGlobal_SurfacesStderr(t *testing.T) {
	runner := testutil.NewFakeRunner()
	runner.Results["npm install -g left-pad@latest --no-fund --no-audit"] = execx.Result{
		ExitCode: 1,
		Stderr:   "EACCES: permission denied",
	}
	c := NewClient(runner)

	err := c.InstallGlobal(context.Background(), "left-pad")
	assert.ErrorContains(t, err, "EACCES")
}

func TestUninstallGlobal(t *testing.T) {
	runner := testutil.NewFakeRunner()
	runner.Results["npm uninstall -g left-pad"] = execx.Result{Success: true}
	c := NewClient(runner)

	require.NoError(t, c.UninstallGlobal(context.Background(), "left-pad"))
	assert.Equal(t, 1, runner.CallCount("npm uninstall -g left-pad"))
}
