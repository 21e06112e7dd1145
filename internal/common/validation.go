package common

import (
	"fmt"
	"slices"
	"strings"
)

// ValidateOutputFormat checks a requested output format against the formats
// configured in app.supportedFormats (json, text, and markdown by default).
// Matching is exact; "JSON" is not "json". An empty supported list disables
// the check entirely, which configuration normally never does.
func ValidateOutputFormat(format string, supportedFormats []string) error {
	if len(supportedFormats) == 0 {
		return nil
	}

	if slices.Contains(supportedFormats, format) {
		return nil
	}

	return fmt.Errorf("unsupported output format %q, expected one of: %s",
		format, strings.Join(supportedFormats, ", "))
}

// GetSupportedFormats returns the configured format list for flag completion.
func GetSupportedFormats(supportedFormats []string) []string {
	return supportedFormats
}
