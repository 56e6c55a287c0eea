package helpers

import "strings"

func StringTrim(s string) string {
	return strings.TrimSpace(s)
}

// RemoveDuplicates keeps the first occurrence of each string, preserving order.
func RemoveDuplicates(items []string) []string {
	seen := make(map[string]struct{}, len(items))
	result := make([]string, 0, len(items))
	for _, item := range items {
		if _, ok := seen[item]; ok {
			continue
		}
		seen[item] = struct{}{}
		result = append(result, item)
	}
	return result
}

// CleanStringList trims every entry and drops empties and duplicates.
func CleanStringList(items []string) []string {
	cleaned := make([]string, 0, len(items))
	for _, item := range items {
		trimmed := strings.TrimSpace(item)
		if trimmed == "" {
			continue
		}
		cleaned = append(cleaned, trimmed)
	}
	return RemoveDuplicates(cleaned)
}
