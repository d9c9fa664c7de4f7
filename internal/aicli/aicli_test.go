package aicli

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"toolctl/internal/detect"
	"toolctl/internal/execx"
	"toolctl/internal/testutil"
)

func newTestManager(t *testing.T, runner *testutil.FakeRunner, env map[string]string) *Manager {
	t.Helper()
	platform := detect.Platform{OS: detect.OSLinux, Getenv: func(string) string { return "" }}
	engine := detect.New(runner, detect.NewCache(time.Minute), detect.WithPlatform(platform))
	m := NewManager(engine, runner)
	m.getenv = func(key string) string { return env[key] }
	return m
}

func TestList_DetectsInstalledTool(t *testing.T) {
	home := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(home, ".claude.json"), []byte("{}"), 0o644))

	runner := testutil.NewFakeRunner()
	runner.Results["claude --version"] = execx.Result{Success: true, Stdout: "1.0.17 (Claude Code)"}
	runner.Results["npm view @anthropic-ai/claude-code version --json"] = execx.Result{Success: true, Stdout: `"1.0.20"`}
	m := newTestManager(t, runner, map[string]string{"HOME": home})

	tools := m.List(context.Background(), false)
	require.Len(t, tools, len(catalog))

	var claude Tool
	for _, tool := range tools {
		if tool.ID == "claude" {
			claude = tool
		}
	}
	assert.True(t, claude.Installed)
	assert.Equal(t, "1.0.17", claude.Version)
	assert.Equal(t, "1.0.20", claude.Latest)

	foundConfig := false
	for _, cf := range claude.ConfigFiles {
		if cf.Name == "Claude Config" {
			foundConfig = true
			assert.True(t, cf.Exists)
		}
	}
	assert.True(t, foundConfig, "expected .claude.json to be reported")
}

// A PATH miss with a live npm global record still counts as installed.
func TestList_NpmGlobalFallback(t *testing.T) {
	runner := testutil.NewFakeRunner()
	runner.Results["npm ls -g --depth=0 @openai/codex --json"] = execx.Result{
		Success: true,
		Stdout:  `{"dependencies":{"@openai/codex":{"version":"0.4.0"}}}`,
	}
	m := newTestManager(t, runner, nil)

	tools := m.List(context.Background(), false)
	for _, tool := range tools {
		if tool.ID == "codex" {
			assert.True(t, tool.Installed)
			assert.Equal(t, "0.4.0", tool.Version)
			return
		}
	}
	t.Fatal("codex missing from catalog")
}

func TestInstall_RefusesVendorDownloadTools(t *testing.T) {
	runner := testutil.NewFakeRunner()
	m := newTestManager(t, runner, nil)

	err := m.Install(context.Background(), "cursor")
	assert.ErrorContains(t, err, "manual install")
	assert.Empty(t, runner.Calls(), "nothing should have been executed")
}

func TestUninstall_InvalidatesDetectionCache(t *testing.T) {
	runner := testutil.NewFakeRunner()
	runner.Results["claude --version"] = execx.Result{Success: true, Stdout: "1.0.17"}
	runner.Results["npm uninstall -g @anthropic-ai/claude-code"] = execx.Result{Success: true}
	m := newTestManager(t, runner, nil)

	// Warm the detection cache, then uninstall.
	m.engine.DetectTool(context.Background(), "claude", false)
	require.NoError(t, m.Uninstall(context.Background(), "claude"))
	assert.Equal(t, 1, runner.CallCount("npm uninstall -g @anthropic-ai/claude-code"))

	// Next detection must re-probe instead of reusing the stale entry.
	m.engine.DetectTool(context.Background(), "claude", false)
	assert.Equal(t, 2, runner.CallCount("claude --version"))
}

func TestMutate_UnknownTool(t *testing.T) {
	m := newTestManager(t, testutil.NewFakeRunner(), nil)
	assert.Error(t, m.Update(context.Background(), "nonexistent"))
}

func TestUninstall_PipxTool(t *testing.T) {
	runner := testutil.NewFakeRunner()
	runner.Results["pipx uninstall aider-chat"] = execx.Result{Success: true}
	m := newTestManager(t, runner, nil)

	require.NoError(t, m.Uninstall(context.Background(), "aider"))
	assert.Equal(t, 1, runner.CallCount("pipx uninstall aider-chat"))
}
