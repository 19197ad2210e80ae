package version

import (
	"errors"
	"fmt"
	"regexp"
	"strconv"
)

// ErrNoVersion is returned when the input holds no major.minor.patch triple.
var ErrNoVersion = errors.New("no version found")

// Version represents a semantic version with major, minor, patch components.
type Version struct {
	Major int
	Minor int
	Patch int
}

// String returns the version as a string.
func (v Version) String() string {
	return fmt.Sprintf("%d.%d.%d", v.Major, v.Minor, v.Patch)
}

// versionRegex matches a full triple like 1.2.3 anywhere in the input.
var versionRegex = regexp.MustCompile(`(\d+)\.(\d+)\.(\d+)`)

// Extract finds and parses the first major.minor.patch triple in a string.
// Surrounding text such as a tool name or a build description is ignored.
func Extract(s string) (Version, error) {
	matches := versionRegex.FindStringSubmatch(s)
	if matches == nil {
		return Version{}, fmt.Errorf("%w in: %q", ErrNoVersion, s)
	}

	var parts [3]int
	for i := range parts {
		n, err := strconv.Atoi(matches[i+1])
		if err != nil {
			// only reachable when a component overflows int
			return Version{}, fmt.Errorf("invalid version component %q: %w", matches[i+1], err)
		}
		parts[i] = n
	}

	return Version{Major: parts[0], Minor: parts[1], Patch: parts[2]}, nil
}

// MeetsMinimum reports whether v is present and its major component is at
// least requiredMajor. Minor and patch never gate.
func MeetsMinimum(v *Version, requiredMajor int) bool {
	return v != nil && v.Major >= requiredMajor
}
