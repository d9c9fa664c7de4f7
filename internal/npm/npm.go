// Package npm wraps the npm CLI for global-package queries and mutations.
// All process spawning goes through the injected Runner so the Executor's
// timeout contract holds here too.
package npm

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"toolctl/internal/execx"
)

// Client runs npm commands through a Runner.
type Client struct {
	runner execx.Runner
}

// NewClient returns a Client backed by runner.
func NewClient(runner execx.Runner) *Client {
	return &Client{runner: runner}
}

// GlobalVersion queries npm for a globally installed package's version.
func (c *Client) GlobalVersion(ctx context.Context, pkg string) (string, error) {
	res := c.runner.ExecuteSafe(ctx, fmt.Sprintf("npm ls -g --depth=0 %s --json", pkg))
	// npm exits non-zero when the package is absent but still prints JSON.
	out := strings.TrimSpace(res.Stdout)
	if out == "" {
		return "", fmt.Errorf("npm ls produced no output for %s", pkg)
	}
	var data struct {
		Dependencies map[string]struct {
			Version string `json:"version"`
		} `json:"dependencies"`
	}
	if err := json.Unmarshal([]byte(out), &data); err != nil {
		return "", err
	}
	if d, ok := data.Dependencies[pkg]; ok && d.Version != "" {
		return d.Version, nil
	}
	return "", fmt.Errorf("package not found: %s", pkg)
}

// LatestVersion queries the npm registry for the latest dist-tag version.
func (c *Client) LatestVersion(ctx context.Context, pkg string) (string, error) {
	res := c.runner.ExecuteSafe(ctx, fmt.Sprintf("npm view %s version --json", pkg))
	s := strings.TrimSpace(res.Stdout)
	if !res.Success || s == "" {
		return "", fmt.Errorf("npm view failed for %s", pkg)
	}
	// npm may return a bare JSON string like "1.2.3" or plain 1.2.3.
	var v string
	if json.Unmarshal([]byte(s), &v) == nil && v != "" {
		return v, nil
	}
	return strings.Split(s, "\n")[0], nil
}

// InstallGlobal installs the latest version of pkg globally.
func (c *Client) InstallGlobal(ctx context.Context, pkg string) error {
	return c.run(ctx, fmt.Sprintf("npm install -g %s@latest --no-fund --no-audit", pkg))
}

// UpdateGlobal updates a globally installed package.
func (c *Client) UpdateGlobal(ctx context.Context, pkg string) error {
	return c.run(ctx, fmt.Sprintf("npm update -g %s --no-fund --no-audit", pkg))
}

// UninstallGlobal removes a globally installed package.
func (c *Client) UninstallGlobal(ctx context.Context, pkg string) error {
	return c.run(ctx, fmt.Sprintf("npm uninstall -g %s", pkg))
}

func (c *Client) run(ctx context.Context, command string) error {
	res := c.runner.ExecuteSafe(ctx, command)
	if res.Success {
		return nil
	}
	reason := strings.TrimSpace(res.Stderr)
	if reason == "" {
		reason = fmt.Sprintf("exit code %d", res.ExitCode)
	}
	return fmt.Errorf("%s: %s", command, reason)
}
