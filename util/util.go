package util

import (
	"strings"
)

// StringListContains returns true if the list of strings contains item.
func StringListContains(list []string, item string) bool {
	if list != nil {
		for i := range list {
			if list[i] == item {
				return true
			}
		}
	}
	return false
}

// FilterStringList returns the members of list that contain query,
// ignoring case. An empty query returns the whole list. This backs the
// type and style pickers.
func FilterStringList(list []string, query string) []string {
	if query == "" {
		return list
	}
	lowerQuery := strings.ToLower(query)
	matches := make([]string, 0)
	for _, item := range list {
		if strings.Contains(strings.ToLower(item), lowerQuery) {
			matches = append(matches, item)
		}
	}
	return matches
}
