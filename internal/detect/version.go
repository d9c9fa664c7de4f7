package detect

import (
	"regexp"
	"strings"
)

// Version probe output rarely is just a number: tools wrap it in prose
// ("Composer version 2.5.8 2023-06-09 ...", "pip 23.2.1 from /usr/lib ...").
// The strict pattern matches an optionally v-prefixed three-part version with
// an optional prerelease suffix; the loose one picks up two-part versions.
var (
	strictVerRe = regexp.MustCompile(`\bv?(\d+\.\d+\.\d+(?:-[0-9A-Za-z.-]+)?)\b`)
	looseVerRe  = regexp.MustCompile(`(\d+\.\d+(?:\.\d+)?)`)
)

// ParsedVersion is the outcome of ParseVersion. Version is empty when no
// version-shaped substring was found; Raw always carries the trimmed input.
type ParsedVersion struct {
	Version string
	Raw     string
}

// ParseVersion extracts the first version-shaped substring from arbitrary
// command output. Callers decide which output stream to feed in (some
// runtimes, notably Java, print the banner to stderr).
func ParseVersion(text string) ParsedVersion {
	raw := strings.TrimSpace(text)
	if raw == "" {
		return ParsedVersion{}
	}
	if m := strictVerRe.FindStringSubmatch(raw); len(m) > 1 {
		return ParsedVersion{Version: m[1], Raw: raw}
	}
	if m := looseVerRe.FindStringSubmatch(raw); len(m) > 1 {
		return ParsedVersion{Version: m[1], Raw: raw}
	}
	return ParsedVersion{Raw: raw}
}

// NormalizeVersion strips whitespace and a leading "v".
func NormalizeVersion(v string) string {
	return strings.TrimPrefix(strings.TrimSpace(v), "v")
}

// VersionLess compares two semantic versions (best-effort).
// Returns true if a < b.
func VersionLess(a, b string) bool {
	a = NormalizeVersion(a)
	b = NormalizeVersion(b)
	if a == "" || b == "" {
		return false
	}
	as := strings.SplitN(a, "-", 2)[0]
	bs := strings.SplitN(b, "-", 2)[0]
	ap := strings.Split(as, ".")
	bp := strings.Split(bs, ".")
	for len(ap) < 3 {
		ap = append(ap, "0")
	}
	for len(bp) < 3 {
		bp = append(bp, "0")
	}
	for i := 0; i < 3; i++ {
		av := atoiSafe(ap[i])
		bv := atoiSafe(bp[i])
		if av < bv {
			return true
		}
		if av > bv {
			return false
		}
	}
	// Equal numeric parts: a pre-release sorts below the release.
	if strings.Contains(a, "-") && !strings.Contains(b, "-") {
		return true
	}
	return false
}

func atoiSafe(s string) int {
	n := 0
	for _, r := range s {
		if r < '0' || r > '9' {
			break
		}
		n = n*10 + int(r-'0')
	}
	return n
}
