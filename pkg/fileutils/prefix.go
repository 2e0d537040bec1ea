package fileutils

import "sort"

// LongestCommonPrefix returns the longest string every item starts with.
// It is used to reduce absolute, machine specific coverage keys to paths
// relative to the repository.
func LongestCommonPrefix(items []string) string {
	if len(items) == 0 {
		return ""
	}
	if len(items) == 1 {
		return items[0]
	}

	sorted := make([]string, len(items))
	copy(sorted, items)
	sort.Strings(sorted)

	// the extremes of a sorted set diverge no later than any other pair
	first, last := sorted[0], sorted[len(sorted)-1]
	end := len(first)
	if len(last) < end {
		end = len(last)
	}

	i := 0
	for i < end && first[i] == last[i] {
		i++
	}
	return first[:i]
}
