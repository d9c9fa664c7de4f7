package execx

import (
	"context"
	"runtime"
	"strings"
	"testing"
	"time"
)

func skipOnWindows(t *testing.T) {
	t.Helper()
	if runtime.GOOS == "windows" {
		t.Skip("unix shell commands")
	}
}

func TestExecuteSafe_Success(t *testing.T) {
	skipOnWindows(t)
	s := NewShell(5 * time.Second)

	res := s.ExecuteSafe(context.Background(), "echo hello")
	if !res.Success {
		t.Fatalf("expected success: %+v", res)
	}
	if strings.TrimSpace(res.Stdout) != "hello" {
		t.Fatalf("stdout = %q", res.Stdout)
	}
}

func TestExecuteSafe_NonZeroExit(t *testing.T) {
	skipOnWindows(t)
	s := NewShell(5 * time.Second)

	res := s.ExecuteSafe(context.Background(), "exit 3")
	if res.Success {
		t.Fatal("expected failure")
	}
	if res.ExitCode != 3 {
		t.Fatalf("exitCode = %d, want 3", res.ExitCode)
	}
}

func TestExecuteSafe_CommandNotFound(t *testing.T) {
	skipOnWindows(t)
	s := NewShell(5 * time.Second)

	res := s.ExecuteSafe(context.Background(), "definitely-not-a-real-binary-12345 --version")
	if res.Success {
		t.Fatal("expected failure")
	}
}

// A hanging probe is bounded by the runner's timeout, never by the caller's
// patience.
func TestExecuteSafe_Timeout(t *testing.T) {
	skipOnWindows(t)
	s := NewShell(100 * time.Millisecond)

	start := time.Now()
	res := s.ExecuteSafe(context.Background(), "sleep 5")
	if res.Success {
		t.Fatal("expected timeout failure")
	}
	if elapsed := time.Since(start); elapsed > 2*time.Second {
		t.Fatalf("timeout not enforced, took %v", elapsed)
	}
}

func TestExecuteSafe_EmptyCommand(t *testing.T) {
	s := NewShell(time.Second)
	if res := s.ExecuteSafe(context.Background(), "  "); res.Success {
		t.Fatal("blank command must fail")
	}
}

func TestToolPath(t *testing.T) {
	skipOnWindows(t)
	s := NewShell(time.Second)
	if p, ok := s.ToolPath("sh"); !ok || p == "" {
		t.Fatalf("sh not found on PATH: %q %v", p, ok)
	}
	if _, ok := s.ToolPath("definitely-not-a-real-binary-12345"); ok {
		t.Fatal("phantom binary resolved")
	}
}
