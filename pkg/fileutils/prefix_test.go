package fileutils

import (
	"strings"
	"testing"
)

func TestLongestCommonPrefix(t *testing.T) {
	prefix := "/biscuits/a/b/c/"
	tests := []struct {
		name  string
		items []string
		want  string
	}{
		{"empty array returns empty string", []string{}, ""},
		{"nil returns empty string", nil, ""},
		{"array with one item returns item", []string{"abcd"}, "abcd"},
		{"works with multiple items", []string{
			prefix + "e",
			prefix + "f",
			prefix + "g",
			prefix + "h/i",
			prefix + "h/i/j",
		}, prefix},
		{"order does not matter", []string{prefix + "h/i", prefix + "e", prefix + "g"}, prefix},
		{"empty element", []string{"/a/b", "", "/a/c"}, ""},
		{"duplicates", []string{"/a/b.js", "/a/b.js"}, "/a/b.js"},
		{"nothing shared", []string{"lib/a.js", "bin/cmd.js"}, ""},
		{"prefix may end inside a name", []string{"/src/foo.js", "/src/foobar.js"}, "/src/foo"},
		{"one item is the prefix of the other", []string{"/src/a", "/src/a/b"}, "/src/a"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := LongestCommonPrefix(tt.items); got != tt.want {
				t.Errorf("LongestCommonPrefix() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestLongestCommonPrefix_Properties(t *testing.T) {
	sets := [][]string{
		{"/home/ci/work/repo/index.js", "/home/ci/work/repo/lib/a.js", "/home/ci/work/repo/lib/b.js"},
		{"C:\\work\\repo\\a.js", "C:\\work\\repo\\b\\c.js"},
		{"abc", "abd", "abe", "ab"},
		{"same", "same", "same"},
	}
	for _, items := range sets {
		got := LongestCommonPrefix(items)
		for _, item := range items {
			if !strings.HasPrefix(item, got) {
				t.Errorf("%q is not a prefix of %q", got, item)
			}
		}
		// maximal: one more character from any item breaks another item
		for _, item := range items {
			if len(item) == len(got) {
				continue
			}
			longer := item[:len(got)+1]
			broken := false
			for _, other := range items {
				if !strings.HasPrefix(other, longer) {
					broken = true
					break
				}
			}
			if !broken {
				t.Errorf("prefix %q of %v is not maximal", got, items)
			}
		}
	}
}

func TestLongestCommonPrefix_DoesNotMutateInput(t *testing.T) {
	items := []string{"/z/b", "/z/a"}
	LongestCommonPrefix(items)
	if items[0] != "/z/b" || items[1] != "/z/a" {
		t.Errorf("input was reordered: %v", items)
	}
}
