package validation

import "strings"

// ValidateCommand checks an executable name or path taken from configuration.
func ValidateCommand(field, value string) []string {
	value = strings.TrimSpace(value)
	if value == "" {
		return []string{field + " cannot be empty"}
	}
	if strings.ContainsAny(value, "\r\n\x00") {
		return []string{field + " cannot contain control characters"}
	}
	return nil
}
