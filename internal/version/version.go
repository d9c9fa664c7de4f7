package version

// AppVersion is the toolctl release version. Overridden at build time via
// -ldflags "-X toolctl/internal/version.AppVersion=...".
var AppVersion = "0.3.0"
