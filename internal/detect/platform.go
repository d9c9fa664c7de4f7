package detect

import (
	"os"
	"path/filepath"
	"regexp"
	"runtime"
	"strings"
)

// OS family buckets. Anything unrecognized resolves to the Linux command set.
const (
	OSWindows = "windows"
	OSDarwin  = "darwin"
	OSLinux   = "linux"
)

// Platform abstracts the host OS family and environment lookup so command
// resolution can be exercised for any OS in tests.
type Platform struct {
	OS     string
	Getenv func(key string) string
}

// HostPlatform describes the process's actual OS and environment.
func HostPlatform() Platform {
	return Platform{OS: NormalizeOS(runtime.GOOS), Getenv: os.Getenv}
}

// NormalizeOS maps a GOOS-style name onto one of the three OS buckets.
func NormalizeOS(goos string) string {
	switch goos {
	case "windows", "win32":
		return OSWindows
	case "darwin":
		return OSDarwin
	default:
		return OSLinux
	}
}

// commandSet holds per-OS probe variants for one tool key. The linux set is
// the base; darwin/windows override it only when they differ.
type commandSet struct {
	linux   []string
	darwin  []string
	windows []string
}

// CommandVariants returns the ordered command strings to attempt for a tool
// key on this platform. The first variant with a successful exit wins.
func (p Platform) CommandVariants(key string) []string {
	cs, ok := commandSets[key]
	if !ok {
		return nil
	}
	switch p.OS {
	case OSWindows:
		if len(cs.windows) > 0 {
			return cs.windows
		}
	case OSDarwin:
		if len(cs.darwin) > 0 {
			return cs.darwin
		}
	}
	return cs.linux
}

var envRefRe = regexp.MustCompile(`%([^%]+)%`)

// ExpandEnv expands %VAR% references in a Windows path template. Returns ""
// when any referenced variable is unset, so callers skip the candidate
// instead of probing a half-expanded path. Templates use forward slashes;
// the result is converted to the host separator.
func (p Platform) ExpandEnv(template string) string {
	missing := false
	out := envRefRe.ReplaceAllStringFunc(template, func(ref string) string {
		v := p.Getenv(ref[1 : len(ref)-1])
		if v == "" {
			missing = true
		}
		return v
	})
	if missing {
		return ""
	}
	return filepath.FromSlash(out)
}

// searchRoot is one Windows filesystem fallback candidate: an env-templated
// install root expected to contain exe directly or in one level of
// subdirectories (version-suffixed install folders like Python311).
type searchRoot struct {
	template   string
	exe        string
	versionArg string
}

// FallbackRoots returns the Windows filesystem fallback candidates for a
// tool key, or nil off-Windows. This exists because Windows installers often
// skip PATH registration (notably Python without "Add to PATH").
func (p Platform) FallbackRoots(key string) []searchRoot {
	if p.OS != OSWindows {
		return nil
	}
	return windowsFallbacks[key]
}

var windowsFallbacks = map[string][]searchRoot{
	"python": {
		{template: "%LOCALAPPDATA%/Programs/Python", exe: "python.exe", versionArg: "--version"},
		{template: "%PROGRAMFILES%/Python", exe: "python.exe", versionArg: "--version"},
	},
	"node": {
		{template: "%PROGRAMFILES%/nodejs", exe: "node.exe", versionArg: "--version"},
		{template: "%LOCALAPPDATA%/Programs/nodejs", exe: "node.exe", versionArg: "--version"},
	},
	"git": {
		{template: "%PROGRAMFILES%/Git/bin", exe: "git.exe", versionArg: "--version"},
	},
}

// commandSets maps tool keys to per-OS probe variants, ordered by
// preference. Windows entries lean on launcher shims (py, *.cmd) where the
// plain name is commonly absent from PATH.
var commandSets = map[string]commandSet{
	// Runtimes
	"node":   {linux: []string{"node --version"}},
	"deno":   {linux: []string{"deno --version"}},
	"bun":    {linux: []string{"bun --version"}},
	"python": {linux: []string{"python3 --version", "python --version"}, windows: []string{"python --version", "py --version", "python3 --version"}},
	"go":     {linux: []string{"go version"}},
	"rust":   {linux: []string{"rustc --version"}},
	"java":   {linux: []string{"java -version", "java --version"}},
	"ruby":   {linux: []string{"ruby --version"}},
	"php":    {linux: []string{"php --version"}},
	"dotnet": {linux: []string{"dotnet --version"}},

	// Language package managers
	"npm":      {linux: []string{"npm --version"}, windows: []string{"npm --version", "npm.cmd --version"}},
	"yarn":     {linux: []string{"yarn --version"}, windows: []string{"yarn --version", "yarn.cmd --version"}},
	"pnpm":     {linux: []string{"pnpm --version"}, windows: []string{"pnpm --version", "pnpm.cmd --version"}},
	"pip":      {linux: []string{"pip3 --version", "pip --version"}, windows: []string{"pip --version", "python -m pip --version", "py -m pip --version"}},
	"pipx":     {linux: []string{"pipx --version"}},
	"cargo":    {linux: []string{"cargo --version"}},
	"gem":      {linux: []string{"gem --version"}},
	"composer": {linux: []string{"composer --version"}},
	"poetry":   {linux: []string{"poetry --version"}},
	"uv":       {linux: []string{"uv --version"}},
	"maven":    {linux: []string{"mvn --version"}, windows: []string{"mvn --version", "mvn.cmd --version"}},
	"gradle":   {linux: []string{"gradle --version"}},

	// System package managers
	"brew":   {linux: []string{"brew --version"}},
	"apt":    {linux: []string{"apt --version", "apt-get --version"}},
	"choco":  {windows: []string{"choco --version"}, linux: []string{"choco --version"}},
	"winget": {windows: []string{"winget --version"}, linux: []string{"winget --version"}},
	"scoop":  {windows: []string{"scoop --version"}, linux: []string{"scoop --version"}},

	// Cloud / infra CLIs
	"aws":       {linux: []string{"aws --version"}},
	"gcloud":    {linux: []string{"gcloud --version"}, windows: []string{"gcloud --version", "gcloud.cmd --version"}},
	"az":        {linux: []string{"az version --output tsv"}, windows: []string{"az version --output tsv", "az.cmd version --output tsv"}},
	"kubectl":   {linux: []string{"kubectl version --client --short", "kubectl version --client"}},
	"helm":      {linux: []string{"helm version --short"}},
	"terraform": {linux: []string{"terraform version"}},
	"docker":    {linux: []string{"docker --version"}},

	// Version managers / dev tools
	"git":   {linux: []string{"git --version"}},
	"nvm":   {linux: []string{"nvm --version"}, windows: []string{"nvm version", "nvm --version"}},
	"pyenv": {linux: []string{"pyenv --version"}},
	"make":  {linux: []string{"make --version"}, windows: []string{"make --version", "mingw32-make --version"}},
	"cmake": {linux: []string{"cmake --version"}},
}

// commandName returns the executable token of a command string, used for
// PATH resolution of the command that actually succeeded.
func commandName(command string) string {
	fields := strings.Fields(command)
	if len(fields) == 0 {
		return ""
	}
	return strings.Trim(fields[0], `"`)
}
