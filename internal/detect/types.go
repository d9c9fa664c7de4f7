// Package detect discovers installed developer tools by probing the host OS
// with version-check commands, caches results with a TTL, and resolves safe
// uninstall commands.
package detect

import (
	"path/filepath"
	"strings"
)

// Category classifies a detected tool.
type Category string

const (
	CategoryRuntime        Category = "runtime"
	CategoryPackageManager Category = "package-manager"
	CategoryTool           Category = "tool"
	CategoryOther          Category = "other"
)

// InstallMethod is the inferred provenance of a tool's binary, derived from
// path heuristics.
type InstallMethod string

const (
	InstallManual     InstallMethod = "manual"
	InstallHomebrew   InstallMethod = "homebrew"
	InstallChocolatey InstallMethod = "chocolatey"
	InstallApt        InstallMethod = "apt"
	InstallNpm        InstallMethod = "npm"
	InstallPip        InstallMethod = "pip"
	InstallUnknown    InstallMethod = "unknown"
)

// ToolInfo is one detection result. A value is immutable once returned;
// re-detection produces a fresh value that may overwrite a cache entry.
//
// When Installed is false, Version and Path are always empty. When Installed
// is true, Version may still be empty (unparsable output) but Path is
// attempted.
type ToolInfo struct {
	Name          string        `json:"name"`
	DisplayName   string        `json:"displayName"`
	Version       string        `json:"version,omitempty"`
	Path          string        `json:"path,omitempty"`
	Installed     bool          `json:"isInstalled"`
	InstallMethod InstallMethod `json:"installMethod"`
	Category      Category      `json:"category"`
	ErrorReason   string        `json:"errorReason,omitempty"`
}

// DetectionError records why one tool in a batch failed to detect.
type DetectionError struct {
	Tool   string `json:"toolName"`
	Reason string `json:"errorReason"`
}

// Summary aggregates one DetectAll batch run. Created once per call and
// never cached.
type Summary struct {
	TotalTools   int              `json:"totalTools"`
	SuccessCount int              `json:"successCount"`
	FailureCount int              `json:"failureCount"`
	TotalTimeMs  int64            `json:"totalTimeMs"`
	Errors       []DetectionError `json:"errors"`
}

// UninstallInfo is the pure lookup result for a (tool, platform) pair. When
// CanUninstall is false no command is ever fabricated; ManualInstructions
// explains what to do instead.
type UninstallInfo struct {
	CanUninstall       bool   `json:"canUninstall"`
	Command            string `json:"command,omitempty"`
	Warning            string `json:"warning,omitempty"`
	ManualInstructions string `json:"manualInstructions,omitempty"`
}

// UninstallResult is the outcome of executing a resolved uninstall command.
type UninstallResult struct {
	Success bool   `json:"success"`
	Command string `json:"command,omitempty"`
	Err     string `json:"error,omitempty"`
}

// inferInstallMethod guesses how a binary got onto the machine from
// substrings of its resolved path.
func inferInstallMethod(path, osName string) InstallMethod {
	if path == "" {
		return InstallUnknown
	}
	p := strings.ToLower(filepath.ToSlash(path))
	switch {
	case strings.Contains(p, "homebrew") || strings.Contains(p, "/cellar/"):
		return InstallHomebrew
	case strings.Contains(p, "chocolatey"):
		return InstallChocolatey
	case strings.Contains(p, "node_modules") || strings.Contains(p, "/npm/") || strings.Contains(p, "/npm-global/"):
		return InstallNpm
	case strings.Contains(p, "site-packages") || strings.Contains(p, "/pip/"):
		return InstallPip
	case osName == OSLinux && (strings.HasPrefix(p, "/usr/bin/") || strings.HasPrefix(p, "/usr/sbin/")):
		return InstallApt
	case strings.Contains(p, "/.local/") || strings.Contains(p, "program files") || strings.Contains(p, "/opt/"):
		return InstallManual
	}
	return InstallUnknown
}
