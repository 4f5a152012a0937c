package stringsutil

import "strings"

// CleanList trims every item and drops the ones left empty.
func CleanList(items []string) []string {
	var result []string

	for _, s := range items {
		if s = strings.TrimSpace(s); s != "" {
			result = append(result, s)
		}
	}

	return result
}

// SplitList splits a comma separated value into a cleaned list.
func SplitList(value string) []string {
	return CleanList(strings.Split(value, ","))
}
