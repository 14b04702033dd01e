package utils

import "strings"

func RemoveEmptyStrings(slice []string) []string {
	var result []string

	for _, s := range slice {
		if s != "" {
			result = append(result, s)
		}
	}

	return result
}

// RemoveBlankStrings drops empty and whitespace-only strings.
func RemoveBlankStrings(slice []string) []string {
	var result []string

	for _, s := range slice {
		if strings.TrimSpace(s) != "" {
			result = append(result, s)
		}
	}

	return result
}

// SplitLines splits text on "\n", "\r\n" and "\r". A trailing line break does not
// produce an extra empty line.
func SplitLines(text string) []string {
	if text == "" {
		return nil
	}

	text = strings.ReplaceAll(text, "\r\n", "\n")
	text = strings.ReplaceAll(text, "\r", "\n")
	text = strings.TrimSuffix(text, "\n")

	return strings.Split(text, "\n")
}
