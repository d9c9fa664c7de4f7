package detect

import (
	"path/filepath"
	"testing"
)

func envMap(m map[string]string) func(string) string {
	return func(key string) string { return m[key] }
}

func TestCommandVariants_PerOS(t *testing.T) {
	win := Platform{OS: OSWindows, Getenv: envMap(nil)}
	got := win.CommandVariants("python")
	if len(got) == 0 || got[0] != "python --version" || got[1] != "py --version" {
		t.Fatalf("windows python variants = %v", got)
	}

	linux := Platform{OS: OSLinux, Getenv: envMap(nil)}
	got = linux.CommandVariants("python")
	if len(got) != 2 || got[0] != "python3 --version" {
		t.Fatalf("linux python variants = %v", got)
	}
}

// OSes without an override fall back to the Linux command set.
func TestCommandVariants_FallbackBucket(t *testing.T) {
	darwin := Platform{OS: OSDarwin, Getenv: envMap(nil)}
	got := darwin.CommandVariants("node")
	if len(got) != 1 || got[0] != "node --version" {
		t.Fatalf("darwin node variants = %v", got)
	}
	if vs := darwin.CommandVariants("no-such-tool"); vs != nil {
		t.Fatalf("unknown key yielded variants: %v", vs)
	}
}

func TestNormalizeOS(t *testing.T) {
	cases := map[string]string{
		"windows": OSWindows,
		"win32":   OSWindows,
		"darwin":  OSDarwin,
		"linux":   OSLinux,
		"freebsd": OSLinux, // unrecognized families default to linux
	}
	for in, want := range cases {
		if got := NormalizeOS(in); got != want {
			t.Fatalf("NormalizeOS(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestExpandEnv(t *testing.T) {
	p := Platform{OS: OSWindows, Getenv: envMap(map[string]string{"LOCALAPPDATA": "/home/u/appdata"})}

	got := p.ExpandEnv("%LOCALAPPDATA%/Programs/Python")
	want := filepath.FromSlash("/home/u/appdata/Programs/Python")
	if got != want {
		t.Fatalf("ExpandEnv = %q, want %q", got, want)
	}

	// Unset variables disqualify the whole candidate.
	if got := p.ExpandEnv("%PROGRAMFILES%/Python"); got != "" {
		t.Fatalf("expected empty expansion, got %q", got)
	}
}

func TestFallbackRoots_WindowsOnly(t *testing.T) {
	win := Platform{OS: OSWindows, Getenv: envMap(nil)}
	if len(win.FallbackRoots("python")) == 0 {
		t.Fatal("expected python fallback roots on windows")
	}
	linux := Platform{OS: OSLinux, Getenv: envMap(nil)}
	if linux.FallbackRoots("python") != nil {
		t.Fatal("fallback roots leaked off-windows")
	}
}

func TestCommandName(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"node --version", "node"},
		{`"C:\Python\python.exe" --version`, `C:\Python\python.exe`},
		{"", ""},
	}
	for _, tc := range cases {
		if got := commandName(tc.in); got != tc.want {
			t.Fatalf("commandName(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}
