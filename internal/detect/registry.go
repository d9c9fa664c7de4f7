package detect

// toolSpec describes one registry entry: canonical key, human label,
// category, and accepted synonyms. Probe commands come from the platform
// resolver, keyed by the canonical name.
type toolSpec struct {
	key         string
	displayName string
	category    Category
	aliases     []string
}

// registry is the fixed detector set, in detection order: runtimes first,
// then package managers, system package managers, cloud CLIs, and dev tools.
// DetectAll preserves this order in its results.
var registry = []toolSpec{
	{key: "node", displayName: "Node.js", category: CategoryRuntime, aliases: []string{"nodejs", "node.js"}},
	{key: "deno", displayName: "Deno", category: CategoryRuntime},
	{key: "bun", displayName: "Bun", category: CategoryRuntime},
	{key: "python", displayName: "Python", category: CategoryRuntime, aliases: []string{"python3", "py"}},
	{key: "go", displayName: "Go", category: CategoryRuntime, aliases: []string{"golang"}},
	{key: "rust", displayName: "Rust", category: CategoryRuntime, aliases: []string{"rustc"}},
	{key: "java", displayName: "Java", category: CategoryRuntime, aliases: []string{"jdk", "openjdk"}},
	{key: "ruby", displayName: "Ruby", category: CategoryRuntime},
	{key: "php", displayName: "PHP", category: CategoryRuntime},
	{key: "dotnet", displayName: ".NET SDK", category: CategoryRuntime, aliases: []string{".net"}},

	{key: "npm", displayName: "npm", category: CategoryPackageManager},
	{key: "yarn", displayName: "Yarn", category: CategoryPackageManager},
	{key: "pnpm", displayName: "pnpm", category: CategoryPackageManager},
	{key: "pip", displayName: "pip", category: CategoryPackageManager, aliases: []string{"pip3"}},
	{key: "pipx", displayName: "pipx", category: CategoryPackageManager},
	{key: "cargo", displayName: "Cargo", category: CategoryPackageManager},
	{key: "gem", displayName: "RubyGems", category: CategoryPackageManager, aliases: []string{"rubygems"}},
	{key: "composer", displayName: "Composer", category: CategoryPackageManager},
	{key: "poetry", displayName: "Poetry", category: CategoryPackageManager},
	{key: "uv", displayName: "uv", category: CategoryPackageManager},
	{key: "maven", displayName: "Maven", category: CategoryPackageManager, aliases: []string{"mvn"}},
	{key: "gradle", displayName: "Gradle", category: CategoryPackageManager},

	{key: "brew", displayName: "Homebrew", category: CategoryPackageManager, aliases: []string{"homebrew"}},
	{key: "apt", displayName: "APT", category: CategoryPackageManager, aliases: []string{"apt-get"}},
	{key: "choco", displayName: "Chocolatey", category: CategoryPackageManager, aliases: []string{"chocolatey"}},
	{key: "winget", displayName: "winget", category: CategoryPackageManager},
	{key: "scoop", displayName: "Scoop", category: CategoryPackageManager},

	{key: "aws", displayName: "AWS CLI", category: CategoryTool, aliases: []string{"awscli"}},
	{key: "gcloud", displayName: "Google Cloud CLI", category: CategoryTool},
	{key: "az", displayName: "Azure CLI", category: CategoryTool, aliases: []string{"azure-cli"}},
	{key: "kubectl", displayName: "kubectl", category: CategoryTool},
	{key: "helm", displayName: "Helm", category: CategoryTool},
	{key: "terraform", displayName: "Terraform", category: CategoryTool},
	{key: "docker", displayName: "Docker", category: CategoryTool},

	{key: "git", displayName: "Git", category: CategoryTool},
	{key: "nvm", displayName: "nvm", category: CategoryTool},
	{key: "pyenv", displayName: "pyenv", category: CategoryTool},
	{key: "make", displayName: "Make", category: CategoryTool},
	{key: "cmake", displayName: "CMake", category: CategoryTool},
}
