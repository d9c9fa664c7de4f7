package detect

import "testing"

// Unknown tools must resolve to manual instructions, never a fabricated
// command.
func TestLookupUninstall_UnknownTool(t *testing.T) {
	info := LookupUninstall("totally-unknown-tool", OSLinux)
	if info.CanUninstall {
		t.Fatal("expected canUninstall=false")
	}
	if info.Command != "" {
		t.Fatalf("fabricated command: %q", info.Command)
	}
	if info.ManualInstructions == "" {
		t.Fatal("missing manual instructions")
	}
}

// A known tool without an entry for the platform is equally refused.
func TestLookupUninstall_KnownToolMissingPlatform(t *testing.T) {
	info := LookupUninstall("helm", OSWindows)
	if info.CanUninstall || info.Command != "" {
		t.Fatalf("expected refusal, got %+v", info)
	}
	if info.ManualInstructions == "" {
		t.Fatal("missing manual instructions")
	}
}

func TestLookupUninstall_KnownCombination(t *testing.T) {
	info := LookupUninstall("node", OSDarwin)
	if !info.CanUninstall {
		t.Fatalf("expected canUninstall=true, got %+v", info)
	}
	if info.Command != "brew uninstall node" {
		t.Fatalf("command = %q", info.Command)
	}
	if info.Warning == "" {
		t.Fatal("destructive command without a warning")
	}
}
