// SPDX-License-Identifier: Apache-2.0

package report

import (
	"strconv"
	"strings"

	"golang.org/x/mod/semver"
)

// CompareVersions orders two dotted numeric versions, returning -1, 0 or +1.
// Versions that are valid semantic versions are compared as such; anything
// else (four components, leading zeros) is compared component by component.
func CompareVersions(a, b string) int {
	if sa, sb := "v"+a, "v"+b; semver.IsValid(sa) && semver.IsValid(sb) {
		return semver.Compare(sa, sb)
	}
	return compareComponents(strings.Split(a, "."), strings.Split(b, "."))
}

func compareComponents(a, b []string) int {
	for i := 0; i < len(a) && i < len(b); i++ {
		if c := compareComponent(a[i], b[i]); c != 0 {
			return c
		}
	}
	switch {
	case len(a) < len(b):
		return -1
	case len(a) > len(b):
		return 1
	}
	return 0
}

func compareComponent(a, b string) int {
	na, errA := strconv.Atoi(a)
	nb, errB := strconv.Atoi(b)
	if errA != nil || errB != nil {
		return strings.Compare(a, b)
	}
	switch {
	case na < nb:
		return -1
	case na > nb:
		return 1
	}
	return 0
}
