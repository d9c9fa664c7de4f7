package detect

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	clog "github.com/charmbracelet/log"
	"golang.org/x/sync/errgroup"

	"toolctl/internal/execx"
	"toolctl/internal/system"
)

// DefaultConcurrency caps simultaneous in-flight detections. Unbounded
// parallel process spawning is the failure mode being guarded against, so
// the cap may be raised via WithConcurrency but never removed.
const DefaultConcurrency = 3

// ProbeFunc probes one tool. Failures that should remove the tool from a
// batch result are returned as errors; a tool that is merely not installed
// is a ToolInfo value with Installed=false (see DetectTool).
type ProbeFunc func(ctx context.Context) (ToolInfo, error)

type registeredDetector struct {
	spec  toolSpec
	probe ProbeFunc
}

// Engine orchestrates tool detection. It owns no state beyond its injected
// collaborators: one Runner, one Cache, and a Platform description.
type Engine struct {
	runner    execx.Runner
	cache     *Cache
	platform  Platform
	width     int
	log       *clog.Logger
	detectors []registeredDetector
	byKey     map[string]int
}

// Option configures an Engine at construction time.
type Option func(*Engine)

// WithConcurrency sets the detection batch width (floor 1).
func WithConcurrency(n int) Option {
	return func(e *Engine) { e.width = n }
}

// WithPlatform overrides the host platform, mainly for tests.
func WithPlatform(p Platform) Option {
	return func(e *Engine) { e.platform = p }
}

// WithLogger overrides the engine's logger.
func WithLogger(l *clog.Logger) Option {
	return func(e *Engine) { e.log = l }
}

// New builds an Engine with the default detector registry. The runner and
// cache are dependency-injected; callers that want a shared engine own its
// lifetime (typically one per session).
func New(runner execx.Runner, cache *Cache, opts ...Option) *Engine {
	e := &Engine{
		runner:   runner,
		cache:    cache,
		platform: HostPlatform(),
		width:    DefaultConcurrency,
		log:      system.Logger,
		byKey:    make(map[string]int),
	}
	for _, opt := range opts {
		opt(e)
	}
	if e.width < 1 {
		e.width = 1
	}
	for _, spec := range registry {
		spec := spec
		e.register(spec, func(ctx context.Context) (ToolInfo, error) {
			return e.probeTool(ctx, spec), nil
		})
	}
	return e
}

func (e *Engine) register(spec toolSpec, probe ProbeFunc) {
	idx := len(e.detectors)
	e.detectors = append(e.detectors, registeredDetector{spec: spec, probe: probe})
	e.byKey[spec.key] = idx
	for _, a := range spec.aliases {
		e.byKey[a] = idx
	}
}

// Register appends a custom detector to the batch registry. Hosts use this
// for bespoke tools that need more than the generic "--version" probe.
func (e *Engine) Register(key, displayName string, category Category, probe ProbeFunc) {
	e.register(toolSpec{key: key, displayName: displayName, category: category}, probe)
}

// canonical lowercases a tool name and resolves registered synonyms
// ("nodejs", "node.js" → "node").
func (e *Engine) canonical(name string) string {
	n := strings.ToLower(strings.TrimSpace(name))
	if idx, ok := e.byKey[n]; ok {
		return e.detectors[idx].spec.key
	}
	return n
}

// DetectTool detects a single tool, serving from cache unless forceRefresh.
// Unknown names fall back to the generic custom-tool probe. Results —
// including failures — are written back to the cache so a missing tool does
// not respawn a process on every call within the TTL window.
func (e *Engine) DetectTool(ctx context.Context, name string, forceRefresh bool) ToolInfo {
	key := e.canonical(name)
	if !forceRefresh {
		if info, ok := e.cache.Get(key); ok {
			return info
		}
	}
	var info ToolInfo
	if idx, ok := e.byKey[key]; ok {
		d := e.detectors[idx]
		probed, err := d.probe(ctx)
		if err != nil {
			probed = notInstalled(d.spec, err.Error())
		}
		info = probed
	} else {
		info = e.probeCustom(ctx, key)
	}
	e.cache.Set(key, info)
	return info
}

// DetectAll runs every registered detector in registration order, in
// sequential batches of the configured width. Detectors within a batch run
// concurrently; results are collected positionally so completion order never
// reorders the output. A detector that returns an error is logged and
// omitted — one broken detector must never prevent the rest from reporting.
func (e *Engine) DetectAll(ctx context.Context) []ToolInfo {
	results := make([]*ToolInfo, len(e.detectors))
	for start := 0; start < len(e.detectors); start += e.width {
		end := start + e.width
		if end > len(e.detectors) {
			end = len(e.detectors)
		}
		g, gctx := errgroup.WithContext(ctx)
		for i := start; i < end; i++ {
			i := i
			d := e.detectors[i]
			g.Go(func() error {
				if info, ok := e.cache.Get(d.spec.key); ok {
					results[i] = &info
					return nil
				}
				info, err := d.probe(gctx)
				if err != nil {
					e.log.Warn("detector failed", "tool", d.spec.key, "err", err)
					return nil
				}
				e.cache.Set(d.spec.key, info)
				results[i] = &info
				return nil
			})
		}
		// Probe errors are swallowed above; Wait only joins the batch.
		_ = g.Wait()
	}
	out := make([]ToolInfo, 0, len(results))
	for _, r := range results {
		if r != nil {
			out = append(out, *r)
		}
	}
	return out
}

// DetectAllWithSummary wraps DetectAll with timing and per-failure reasons
// for diagnostics.
func (e *Engine) DetectAllWithSummary(ctx context.Context) ([]ToolInfo, Summary) {
	started := time.Now()
	tools := e.DetectAll(ctx)
	sum := Summary{
		TotalTools:  len(tools),
		TotalTimeMs: time.Since(started).Milliseconds(),
	}
	for _, t := range tools {
		if t.Installed {
			sum.SuccessCount++
			continue
		}
		sum.FailureCount++
		sum.Errors = append(sum.Errors, DetectionError{Tool: t.Name, Reason: t.ErrorReason})
	}
	return tools, sum
}

// InvalidateCache drops every cached detection result.
func (e *Engine) InvalidateCache() {
	e.cache.InvalidateAll()
}

// InvalidateCacheFor drops the cached result for one tool.
func (e *Engine) InvalidateCacheFor(name string) {
	e.cache.Invalidate(e.canonical(name))
}

// UninstallInfoFor resolves the uninstall command for a tool on the current
// platform without executing anything.
func (e *Engine) UninstallInfoFor(name string) UninstallInfo {
	return LookupUninstall(e.canonical(name), e.platform.OS)
}

// UninstallTool executes the resolved uninstall command for a tool. Tools
// with no entry for this platform return a structured failure telling the
// user to uninstall manually; no command is ever guessed. On success the
// tool's cache entry is invalidated so the next detection reflects removal.
func (e *Engine) UninstallTool(ctx context.Context, name string) UninstallResult {
	key := e.canonical(name)
	info := LookupUninstall(key, e.platform.OS)
	if !info.CanUninstall {
		return UninstallResult{Err: info.ManualInstructions}
	}
	res := e.runner.ExecuteSafe(ctx, info.Command)
	if !res.Success {
		reason := strings.TrimSpace(res.Stderr)
		if reason == "" {
			reason = fmt.Sprintf("uninstall command exited with code %d", res.ExitCode)
		}
		return UninstallResult{Command: info.Command, Err: reason}
	}
	e.cache.Invalidate(key)
	return UninstallResult{Success: true, Command: info.Command}
}

// probeTool is the single-tool detection state machine: try command variants
// in order; on success parse the version and resolve the path; on exhaustion
// fall back to the Windows filesystem search; otherwise report not installed.
func (e *Engine) probeTool(ctx context.Context, spec toolSpec) ToolInfo {
	for _, command := range e.platform.CommandVariants(spec.key) {
		res := e.runner.ExecuteSafe(ctx, command)
		if !res.Success {
			continue
		}
		return e.installedInfo(spec, command, res)
	}
	if e.platform.OS == OSWindows {
		if info, ok := e.fallbackSearch(ctx, spec); ok {
			return info
		}
	}
	return notInstalled(spec, "Tool not found")
}

// probeCustom is the generic custom-tool detector: run "<command> --version"
// and infer the display name from the command itself.
func (e *Engine) probeCustom(ctx context.Context, command string) ToolInfo {
	spec := toolSpec{key: command, displayName: displayNameFor(command), category: CategoryOther}
	res := e.runner.ExecuteSafe(ctx, command+" --version")
	if !res.Success {
		return notInstalled(spec, "Tool not found")
	}
	return e.installedInfo(spec, command, res)
}

// installedInfo builds the success-path ToolInfo from a probe result:
// version from stdout (stderr when stdout is blank — Java prints its banner
// there), path via PATH lookup of the variant that succeeded.
func (e *Engine) installedInfo(spec toolSpec, command string, res execx.Result) ToolInfo {
	text := res.Stdout
	if strings.TrimSpace(text) == "" {
		text = res.Stderr
	}
	info := ToolInfo{
		Name:          spec.key,
		DisplayName:   spec.displayName,
		Installed:     true,
		Version:       ParseVersion(text).Version,
		Category:      spec.category,
		InstallMethod: InstallUnknown,
	}
	if p, ok := e.runner.ToolPath(commandName(command)); ok {
		info.Path = p
		info.InstallMethod = inferInstallMethod(p, e.platform.OS)
	}
	return info
}

// fallbackSearch scans the Windows fallback roots for spec: each env-
// templated root is expanded, then the root itself and one level of
// subdirectories are checked for the expected executable. The first hit is
// invoked with its version flag and, on success, reported as installed.
func (e *Engine) fallbackSearch(ctx context.Context, spec toolSpec) (ToolInfo, bool) {
	for _, root := range e.platform.FallbackRoots(spec.key) {
		dir := e.platform.ExpandEnv(root.template)
		if dir == "" {
			continue
		}
		candidates := []string{filepath.Join(dir, root.exe)}
		if subs, err := os.ReadDir(dir); err == nil {
			for _, sub := range subs {
				if sub.IsDir() {
					candidates = append(candidates, filepath.Join(dir, sub.Name(), root.exe))
				}
			}
		}
		for _, candidate := range candidates {
			st, err := os.Stat(candidate)
			if err != nil || st.IsDir() {
				continue
			}
			res := e.runner.ExecuteSafe(ctx, fmt.Sprintf("%q %s", candidate, root.versionArg))
			if !res.Success {
				continue
			}
			info := e.installedInfo(spec, candidate, res)
			info.Path = candidate
			info.InstallMethod = inferInstallMethod(candidate, e.platform.OS)
			return info, true
		}
	}
	return ToolInfo{}, false
}

func notInstalled(spec toolSpec, reason string) ToolInfo {
	return ToolInfo{
		Name:          spec.key,
		DisplayName:   spec.displayName,
		Category:      spec.category,
		InstallMethod: InstallUnknown,
		ErrorReason:   reason,
	}
}

// displayNameFor derives a human label from a raw command string: base token
// without path or extension, first letter upper-cased.
func displayNameFor(command string) string {
	name := commandName(command)
	name = strings.TrimSuffix(filepath.Base(name), filepath.Ext(name))
	if name == "" {
		return command
	}
	return strings.ToUpper(name[:1]) + name[1:]
}
