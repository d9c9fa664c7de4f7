package detect

import "fmt"

type uninstallEntry struct {
	command string
	warning string
}

// uninstallTable maps (tool, platform) to a vetted uninstall command.
// Absence of a platform key, or of the tool entirely, resolves to "not
// automatable" — this table never guesses destructive commands for
// untested combinations.
var uninstallTable = map[string]map[string]uninstallEntry{
	"node": {
		OSDarwin:  {command: "brew uninstall node", warning: "Removes the Node.js runtime; globally installed npm packages will stop working."},
		OSLinux:   {command: "sudo apt-get remove -y nodejs", warning: "Removes the Node.js runtime; globally installed npm packages will stop working."},
		OSWindows: {command: "winget uninstall --id OpenJS.NodeJS -e", warning: "Removes the Node.js runtime; globally installed npm packages will stop working."},
	},
	"deno": {
		OSDarwin: {command: "brew uninstall deno", warning: "Removes the Deno runtime."},
	},
	"bun": {
		OSDarwin: {command: "brew uninstall bun", warning: "Removes the Bun runtime."},
		OSLinux:  {command: "rm -rf ~/.bun", warning: "Deletes the Bun install directory under your home folder."},
	},
	"python": {
		OSDarwin: {command: "brew uninstall python@3", warning: "Other tools may depend on this Python; virtualenvs built on it will break."},
		OSLinux:  {command: "sudo apt-get remove -y python3", warning: "System components commonly depend on python3; removing it can break your distribution."},
	},
	"go": {
		OSDarwin: {command: "brew uninstall go", warning: "Removes the Go toolchain. $GOPATH contents are left behind."},
		OSLinux:  {command: "sudo rm -rf /usr/local/go", warning: "Deletes the Go toolchain from /usr/local/go. $GOPATH contents are left behind."},
	},
	"rust": {
		OSDarwin: {command: "rustup self uninstall -y", warning: "Removes rustup and every installed Rust toolchain."},
		OSLinux:  {command: "rustup self uninstall -y", warning: "Removes rustup and every installed Rust toolchain."},
	},
	"ruby": {
		OSDarwin: {command: "brew uninstall ruby", warning: "Removes the Homebrew Ruby; the macOS system Ruby is unaffected."},
	},
	"php": {
		OSDarwin: {command: "brew uninstall php", warning: "Removes PHP and its CLI; Composer-installed tools will stop working."},
		OSLinux:  {command: "sudo apt-get remove -y php", warning: "Removes PHP and its CLI; Composer-installed tools will stop working."},
	},
	"yarn": {
		OSDarwin:  {command: "npm uninstall -g yarn", warning: "Removes the global Yarn install."},
		OSLinux:   {command: "npm uninstall -g yarn", warning: "Removes the global Yarn install."},
		OSWindows: {command: "npm uninstall -g yarn", warning: "Removes the global Yarn install."},
	},
	"pnpm": {
		OSDarwin:  {command: "npm uninstall -g pnpm", warning: "Removes the global pnpm install. The pnpm store is left behind."},
		OSLinux:   {command: "npm uninstall -g pnpm", warning: "Removes the global pnpm install. The pnpm store is left behind."},
		OSWindows: {command: "npm uninstall -g pnpm", warning: "Removes the global pnpm install. The pnpm store is left behind."},
	},
	"poetry": {
		OSDarwin: {command: "pipx uninstall poetry", warning: "Removes Poetry; project virtualenvs it created are left behind."},
		OSLinux:  {command: "pipx uninstall poetry", warning: "Removes Poetry; project virtualenvs it created are left behind."},
	},
	"uv": {
		OSDarwin: {command: "brew uninstall uv", warning: "Removes uv."},
	},
	"kubectl": {
		OSDarwin: {command: "brew uninstall kubernetes-cli", warning: "Removes kubectl. Cluster configs in ~/.kube are left behind."},
		OSLinux:  {command: "sudo apt-get remove -y kubectl", warning: "Removes kubectl. Cluster configs in ~/.kube are left behind."},
	},
	"helm": {
		OSDarwin: {command: "brew uninstall helm", warning: "Removes Helm. Release state lives in the cluster and is unaffected."},
	},
	"terraform": {
		OSDarwin: {command: "brew uninstall terraform", warning: "Removes Terraform. State files are left behind."},
	},
	"aws": {
		OSDarwin: {command: "brew uninstall awscli", warning: "Removes the AWS CLI. Credentials in ~/.aws are left behind."},
	},
	"gcloud": {
		OSDarwin: {command: "brew uninstall --cask google-cloud-sdk", warning: "Removes the Google Cloud SDK and all of its bundled components."},
	},
	"az": {
		OSDarwin: {command: "brew uninstall azure-cli", warning: "Removes the Azure CLI. Credentials in ~/.azure are left behind."},
		OSLinux:  {command: "sudo apt-get remove -y azure-cli", warning: "Removes the Azure CLI. Credentials in ~/.azure are left behind."},
	},
	"maven": {
		OSDarwin: {command: "brew uninstall maven", warning: "Removes Maven. The local repository in ~/.m2 is left behind."},
	},
	"gradle": {
		OSDarwin: {command: "brew uninstall gradle", warning: "Removes Gradle. Caches in ~/.gradle are left behind."},
	},
	"cmake": {
		OSDarwin: {command: "brew uninstall cmake", warning: "Removes CMake."},
		OSLinux:  {command: "sudo apt-get remove -y cmake", warning: "Removes CMake."},
	},
}

// LookupUninstall is the pure (tool, platform) table lookup behind
// UninstallInfoFor. It never executes anything and never fabricates a
// command.
func LookupUninstall(key, osName string) UninstallInfo {
	platforms, ok := uninstallTable[key]
	if ok {
		if entry, ok := platforms[osName]; ok {
			return UninstallInfo{CanUninstall: true, Command: entry.command, Warning: entry.warning}
		}
	}
	return UninstallInfo{
		ManualInstructions: fmt.Sprintf("Automated uninstall of %q is not supported on %s; remove it with the tool that installed it (or your system package manager).", key, osName),
	}
}
