package usecases

import "strings"

// NormalizeFileURL converts a stored file path into a client-consumable URL:
// path separators become forward slashes and the result carries exactly one
// leading slash.
func NormalizeFileURL(path string) string {
	if path == "" {
		return ""
	}
	normalized := strings.ReplaceAll(path, "\\", "/")
	return "/" + strings.TrimLeft(normalized, "/")
}
