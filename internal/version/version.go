// Package version compares free-text software version strings.
//
// The comparison is a numeric heuristic, not semantic versioning: every
// character other than digits and dots is dropped, the rest is split on
// dots and compared component by component with zero padding.
package version

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/Masterminds/semver/v3"
)

// Ordering is the relation of an installed version to the latest known one.
type Ordering int

const (
	Unknown Ordering = iota
	UpToDate
	Outdated
	Newer
)

func (o Ordering) String() string {
	switch o {
	case UpToDate:
		return "up_to_date"
	case Outdated:
		return "outdated"
	case Newer:
		return "newer"
	default:
		return "unknown"
	}
}

var nonVersionChars = regexp.MustCompile(`[^0-9.]`)

// Parse turns a version string into its numeric components.
// Empty or non-numeric segments become 0.
func Parse(v string) []int {
	cleaned := nonVersionChars.ReplaceAllString(v, "")
	parts := strings.Split(cleaned, ".")
	components := make([]int, len(parts))
	for i, p := range parts {
		n, err := strconv.Atoi(p)
		if err != nil {
			n = 0
		}
		components[i] = n
	}
	return components
}

// compareComponents returns -1, 0 or 1. The shorter slice is treated as
// padded with trailing zeros.
func compareComponents(a, b []int) int {
	n := max(len(a), len(b))
	for i := 0; i < n; i++ {
		var x, y int
		if i < len(a) {
			x = a[i]
		}
		if i < len(b) {
			y = b[i]
		}
		if x < y {
			return -1
		}
		if x > y {
			return 1
		}
	}
	return 0
}

// Compare orders the installed version against the latest one.
// Unknown is returned when either version is missing.
func Compare(current, latest string) Ordering {
	current = strings.TrimSpace(current)
	latest = strings.TrimSpace(latest)
	if current == "" || latest == "" {
		return Unknown
	}

	switch compareComponents(Parse(current), Parse(latest)) {
	case -1:
		return Outdated
	case 1:
		return Newer
	default:
		return UpToDate
	}
}

// Less reports whether a sorts before b under the same numeric rule as Compare.
func Less(a, b string) bool {
	return compareComponents(Parse(a), Parse(b)) < 0
}

// Highest returns the greatest version in the list. On ties the first
// occurrence wins. It returns "" for an empty list.
func Highest(versions []string) string {
	best := ""
	for i, v := range versions {
		if i == 0 || Less(best, v) {
			best = v
		}
	}
	return best
}

// UpdateKind reports whether going from current to latest is a "major",
// "minor" or "patch" update. It returns "" when either string is not a
// semantic version or latest is not newer.
func UpdateKind(current, latest string) string {
	cur, err := semver.NewVersion(strings.TrimPrefix(strings.TrimSpace(current), "v"))
	if err != nil {
		return ""
	}
	lat, err := semver.NewVersion(strings.TrimPrefix(strings.TrimSpace(latest), "v"))
	if err != nil {
		return ""
	}
	if !lat.GreaterThan(cur) {
		return ""
	}

	switch {
	case lat.Major() != cur.Major():
		return "major"
	case lat.Minor() != cur.Minor():
		return "minor"
	case lat.Patch() != cur.Patch():
		return "patch"
	}
	return ""
}
