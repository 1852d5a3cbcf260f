package render

import (
	"strings"

	"github.com/fatih/color"
)

var (
	labelStyle   = color.New(color.FgCyan)
	addressStyle = color.New(color.FgWhite, color.Bold)
	hashStyle    = color.New(color.FgYellow)
	faintStyle   = color.New(color.Faint)
	successStyle = color.New(color.FgGreen)
	errorStyle   = color.New(color.FgRed)
)

// FormatError formats an error message with the error icon
func FormatError(message string) string {
	// Extract just the error message part (after the last colon if it's an error chain)
	parts := strings.Split(message, ": ")
	msg := parts[len(parts)-1]

	// Capitalize first letter
	if len(msg) > 0 {
		msg = strings.ToUpper(msg[:1]) + msg[1:]
	}

	return errorStyle.Sprintf("❌ %s", msg)
}

// FormatSuccess formats a success message with the success icon
func FormatSuccess(message string) string {
	return successStyle.Sprintf("✅ %s", message)
}

// shortHash abbreviates a hex hash for table cells
func shortHash(hash string) string {
	if len(hash) <= 14 {
		return hash
	}
	return hash[:8] + "..." + hash[len(hash)-6:]
}
