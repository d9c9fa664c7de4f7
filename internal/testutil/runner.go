package testutil

import (
	"context"
	"sync"
	"time"

	"toolctl/internal/execx"
)

// FakeRunner is a scripted execx.Runner for tests: command strings map to
// canned results, unknown commands fail like a missing binary. It records
// every call so tests can assert on process-spawn counts.
type FakeRunner struct {
	mu      sync.Mutex
	Results map[string]execx.Result
	Paths   map[string]string
	Delays  map[string]time.Duration
	calls   []string
}

// NewFakeRunner returns an empty FakeRunner; add scripts to Results/Paths.
func NewFakeRunner() *FakeRunner {
	return &FakeRunner{
		Results: make(map[string]execx.Result),
		Paths:   make(map[string]string),
		Delays:  make(map[string]time.Duration),
	}
}

// ExecuteSafe implements execx.Runner.
func (f *FakeRunner) ExecuteSafe(ctx context.Context, command string) execx.Result {
	f.mu.Lock()
	f.calls = append(f.calls, command)
	res, ok := f.Results[command]
	delay := f.Delays[command]
	f.mu.Unlock()
	if delay > 0 {
		select {
		case <-time.After(delay):
		case <-ctx.Done():
			return execx.Result{ExitCode: -1}
		}
	}
	if !ok {
		return execx.Result{ExitCode: 127, Stderr: "command not found"}
	}
	return res
}

// ToolPath implements execx.Runner.
func (f *FakeRunner) ToolPath(name string) (string, bool) {
	p, ok := f.Paths[name]
	return p, ok
}

// Calls returns a copy of the executed command strings, in order.
func (f *FakeRunner) Calls() []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make([]string, len(f.calls))
	copy(out, f.calls)
	return out
}

// CallCount reports how many times command was executed.
func (f *FakeRunner) CallCount(command string) int {
	n := 0
	for _, c := range f.Calls() {
		if c == command {
			n++
		}
	}
	return n
}
