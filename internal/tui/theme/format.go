package theme

import (
	"fmt"
	"strings"
)

// FormatWidths formats percentages for the status line
func FormatWidths(percentages []float64) string {
	parts := make([]string, len(percentages))
	for i, p := range percentages {
		parts[i] = fmt.Sprintf("%.1f%%", p)
	}
	return strings.Join(parts, " | ")
}

// FormatSuccessMessage formats a success message
func FormatSuccessMessage(operation, subject string) string {
	return fmt.Sprintf("%s %s", subject, operation)
}

// FormatErrorMessage formats an error message
func FormatErrorMessage(operation string, err error) string {
	return fmt.Sprintf("%s failed: %v", operation, err)
}
