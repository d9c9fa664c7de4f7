// Package aicli manages AI coding-assistant CLI tools: inventory via the
// detection engine, install/update/uninstall via the package manager that
// distributes each tool.
package aicli

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"toolctl/internal/detect"
	"toolctl/internal/execx"
	"toolctl/internal/npm"
)

// ConfigFile is one known config location for an AI CLI tool.
type ConfigFile struct {
	Name   string `json:"name"`
	Path   string `json:"path"`
	Exists bool   `json:"exists"`
}

// Tool is an AI CLI tool: catalog metadata plus detection state. Mutations
// go through the distributing package manager, never the raw uninstall
// table.
type Tool struct {
	ID          string       `json:"id"`
	Name        string       `json:"name"`
	Description string       `json:"description"`
	Command     string       `json:"command"`
	Package     string       `json:"packageName,omitempty"`
	Manager     string       `json:"manager,omitempty"` // "npm" or "pipx"; empty means vendor download
	Provider    string       `json:"provider"`
	Homepage    string       `json:"homepage"`
	Installed   bool         `json:"installed"`
	Version     string       `json:"version,omitempty"`
	Latest      string       `json:"latest,omitempty"`
	ConfigFiles []ConfigFile `json:"configFiles,omitempty"`
}

type catalogEntry struct {
	Tool
	configPatterns [][2]string // relative path, label
}

var catalog = []catalogEntry{
	{
		Tool: Tool{ID: "claude", Name: "Claude Code", Description: "Anthropic's Claude AI coding assistant",
			Command: "claude", Package: "@anthropic-ai/claude-code", Manager: "npm",
			Provider: "Anthropic", Homepage: "https://docs.anthropic.com/claude-code"},
		configPatterns: [][2]string{
			{".claude.json", "Claude Config"},
			{".claude", "Claude Directory"},
		},
	},
	{
		Tool: Tool{ID: "codex", Name: "OpenAI Codex CLI", Description: "OpenAI's Codex coding assistant",
			Command: "codex", Package: "@openai/codex", Manager: "npm",
			Provider: "OpenAI", Homepage: "https://github.com/openai/codex"},
		configPatterns: [][2]string{
			{".codex/config.json", "Codex Config"},
			{".codexrc", "Codex RC"},
		},
	},
	{
		Tool: Tool{ID: "gemini", Name: "Gemini CLI", Description: "Google's Gemini AI coding assistant",
			Command: "gemini", Package: "@google/gemini-cli", Manager: "npm",
			Provider: "Google", Homepage: "https://ai.google.dev/gemini-api/docs"},
		configPatterns: [][2]string{
			{".gemini/config.json", "Gemini Config"},
			{".geminirc", "Gemini RC"},
		},
	},
	{
		Tool: Tool{ID: "aider", Name: "Aider", Description: "AI pair programming in your terminal",
			Command: "aider", Package: "aider-chat", Manager: "pipx",
			Provider: "Aider", Homepage: "https://aider.chat"},
		configPatterns: [][2]string{
			{".aider.conf.yml", "Aider Config"},
			{".aider.model.settings.yml", "Aider Model Settings"},
		},
	},
	{
		Tool: Tool{ID: "continue", Name: "Continue", Description: "Open-source AI code assistant",
			Command: "continue", Package: "continue", Manager: "npm",
			Provider: "Continue", Homepage: "https://continue.dev"},
		configPatterns: [][2]string{
			{".continue/config.json", "Continue Config"},
			{".continue/config.yaml", "Continue Config YAML"},
		},
	},
	{
		Tool: Tool{ID: "cody", Name: "Sourcegraph Cody", Description: "Sourcegraph's AI coding assistant",
			Command: "cody", Package: "@sourcegraph/cody", Manager: "npm",
			Provider: "Sourcegraph", Homepage: "https://sourcegraph.com/cody"},
		configPatterns: [][2]string{
			{".sourcegraph/cody.json", "Cody Config"},
		},
	},
	{
		Tool: Tool{ID: "cursor", Name: "Cursor CLI", Description: "Cursor AI editor command line interface",
			Command: "cursor", // distributed with the editor, no package manager
			Provider: "Cursor", Homepage: "https://cursor.sh"},
		configPatterns: [][2]string{
			{".cursor/settings.json", "Cursor Settings"},
			{".cursorrules", "Cursor Rules"},
		},
	},
}

// Manager drives the AI CLI catalog against injected collaborators.
type Manager struct {
	engine *detect.Engine
	runner execx.Runner
	npm    *npm.Client
	getenv func(string) string
}

// NewManager builds a Manager sharing the session's engine and runner.
func NewManager(engine *detect.Engine, runner execx.Runner) *Manager {
	return &Manager{
		engine: engine,
		runner: runner,
		npm:    npm.NewClient(runner),
		getenv: os.Getenv,
	}
}

// List returns the catalog with live detection state: installed/version via
// the engine, latest version from npm for npm-distributed tools, and config
// file presence across the usual config homes.
func (m *Manager) List(ctx context.Context, forceRefresh bool) []Tool {
	out := make([]Tool, 0, len(catalog))
	for _, entry := range catalog {
		t := entry.Tool
		info := m.engine.DetectTool(ctx, t.Command, forceRefresh)
		t.Installed = info.Installed
		t.Version = info.Version
		if t.Manager == "npm" && t.Package != "" {
			if latest, err := m.npm.LatestVersion(ctx, t.Package); err == nil {
				t.Latest = latest
			}
			if !t.Installed {
				// PATH miss but npm may still have it (broken shim, shell cache).
				if v, err := m.npm.GlobalVersion(ctx, t.Package); err == nil {
					t.Installed = true
					t.Version = v
				}
			}
		}
		t.ConfigFiles = m.findConfigFiles(entry)
		out = append(out, t)
	}
	return out
}

// Get returns one catalog tool with live state.
func (m *Manager) Get(ctx context.Context, id string) (Tool, error) {
	for _, t := range m.List(ctx, false) {
		if t.ID == id {
			return t, nil
		}
	}
	return Tool{}, fmt.Errorf("unknown AI CLI tool: %s", id)
}

// Install installs a tool through its package manager. Tools distributed
// with a vendor download refuse automation.
func (m *Manager) Install(ctx context.Context, id string) error {
	return m.mutate(ctx, id, "install")
}

// Update updates a tool through its package manager.
func (m *Manager) Update(ctx context.Context, id string) error {
	return m.mutate(ctx, id, "update")
}

// Uninstall removes a tool through its package manager.
func (m *Manager) Uninstall(ctx context.Context, id string) error {
	return m.mutate(ctx, id, "uninstall")
}

func (m *Manager) mutate(ctx context.Context, id, action string) error {
	entry, ok := lookup(id)
	if !ok {
		return fmt.Errorf("unknown AI CLI tool: %s", id)
	}
	if entry.Manager == "" {
		return fmt.Errorf("%s requires manual %s; visit %s", entry.Name, action, entry.Homepage)
	}
	var err error
	switch entry.Manager {
	case "npm":
		switch action {
		case "install":
			err = m.npm.InstallGlobal(ctx, entry.Package)
		case "update":
			err = m.npm.UpdateGlobal(ctx, entry.Package)
		case "uninstall":
			err = m.npm.UninstallGlobal(ctx, entry.Package)
		}
	case "pipx":
		err = m.runPipx(ctx, action, entry.Package)
	default:
		err = fmt.Errorf("unsupported package manager: %s", entry.Manager)
	}
	if err != nil {
		return err
	}
	// Ground truth changed; the next detection must re-probe.
	m.engine.InvalidateCacheFor(entry.Command)
	return nil
}

func (m *Manager) runPipx(ctx context.Context, action, pkg string) error {
	verb := action
	if action == "update" {
		verb = "upgrade"
	}
	command := fmt.Sprintf("pipx %s %s", verb, pkg)
	res := m.runner.ExecuteSafe(ctx, command)
	if res.Success {
		return nil
	}
	reason := strings.TrimSpace(res.Stderr)
	if reason == "" {
		reason = fmt.Sprintf("exit code %d", res.ExitCode)
	}
	return fmt.Errorf("%s: %s", command, reason)
}

// findConfigFiles checks each config pattern under HOME, and on Windows
// additionally under APPDATA and LOCALAPPDATA. Dotfile patterns under HOME
// are always reported (with their existence flag); other hits only when
// present.
func (m *Manager) findConfigFiles(entry catalogEntry) []ConfigFile {
	home := m.getenv("HOME")
	if home == "" {
		home = m.getenv("USERPROFILE")
	}
	appData := m.getenv("APPDATA")
	localAppData := m.getenv("LOCALAPPDATA")

	var files []ConfigFile
	for _, pat := range entry.configPatterns {
		rel, label := pat[0], pat[1]
		if home != "" {
			p := filepath.Join(home, rel)
			exists := pathExists(p)
			if exists || strings.HasPrefix(rel, ".") {
				files = append(files, ConfigFile{Name: label, Path: p, Exists: exists})
			}
		}
		if appData != "" {
			if p := filepath.Join(appData, rel); pathExists(p) {
				files = append(files, ConfigFile{Name: label + " (AppData)", Path: p, Exists: true})
			}
		}
		if localAppData != "" {
			if p := filepath.Join(localAppData, rel); pathExists(p) {
				files = append(files, ConfigFile{Name: label + " (Local)", Path: p, Exists: true})
			}
		}
	}
	return files
}

func lookup(id string) (catalogEntry, bool) {
	for _, e := range catalog {
		if e.ID == id {
			return e, true
		}
	}
	return catalogEntry{}, false
}

func pathExists(p string) bool {
	_, err := os.Stat(p)
	return err == nil
}
