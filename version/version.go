package version

import "fmt"

// Version represents a version of curl-diff
type Version struct {
	major int
	minor int
	patch int
}

func (v *Version) String() string {
	return fmt.Sprintf("%d.%d.%d", v.major, v.minor, v.patch)
}

// Current returns current version of curl-diff
func Current() *Version {
	return &Version{major: 0, minor: 1, patch: 0}
}
