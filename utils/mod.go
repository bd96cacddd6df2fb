package utils

import "strings"

// IndexFold returns the position of name in names, ignoring case and surrounding
// whitespace, or -1.
func IndexFold(names []string, name string) int {
	name = strings.TrimSpace(name)
	for i, n := range names {
		if strings.EqualFold(n, name) {
			return i
		}
	}
	return -1
}
