package contract

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/fatih/color"
)

// Trend label constants.
const (
	SurgingValue   = "Surging"   // Surging value
	SlowingValue   = "Slowing"   // Slowing value
	DecliningValue = "Declining" // Declining value
	ContainedValue = "Contained" // Contained value
)

// Color variables for console output.
var (
	SurgingColor   = color.New(color.FgRed, color.Bold)     // SurgingColor represents standard danger.
	SlowingColor   = color.New(color.FgMagenta, color.Bold) // SlowingColor represents strong, distinct warning.
	DecliningColor = color.New(color.FgYellow)              // DecliningColor represents standard caution, not bold.
	ContainedColor = color.New(color.FgCyan)                // ContainedColor represents informational / low-priority signal.
)

// GetPlainLabel returns a plain text label describing where a country sits
// on its curve, given its latest daily count as a percentage of its peak.
// This is the core logic used for CSV, JSON, and table printing.
func GetPlainLabel(pctOfPeak float64) string {
	switch {
	case pctOfPeak >= 80:
		return SurgingValue
	case pctOfPeak >= 40:
		return SlowingValue
	case pctOfPeak >= 10:
		return DecliningValue
	default:
		return ContainedValue
	}
}

// GetColorLabel returns a colored text label for console output (table).
// It uses GetPlainLabel to determine the string, and then applies the appropriate color.
func GetColorLabel(pctOfPeak float64) string {
	text := GetPlainLabel(pctOfPeak)

	switch text {
	case SurgingValue:
		return SurgingColor.Sprint(text)
	case SlowingValue:
		return SlowingColor.Sprint(text)
	case DecliningValue:
		return DecliningColor.Sprint(text)
	default: // "Contained"
		return ContainedColor.Sprint(text)
	}
}

// SelectOutputFile returns the appropriate file handle for output, based on the provided
// file path. It returns os.Stdout when no path is given.
func SelectOutputFile(filePath string) (*os.File, error) {
	if filePath == "" {
		return os.Stdout, nil
	}
	return os.Create(filePath)
}

// LogFatal logs an error and exits the program.
func LogFatal(msg string, err error) {
	_, _ = fmt.Fprintf(os.Stderr, "Fatal %s: %v\n", msg, err)
	os.Exit(1)
}

// LogWarn logs a warning message to stderr.
func LogWarn(msg string, err error) {
	_, _ = fmt.Fprintf(os.Stderr, "Warn %s: %v\n", msg, err)
}

// GetHistoryDBFilePath returns the path to the SQLite DB file for run history.
func GetHistoryDBFilePath() string {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return ".trajectory_history.db"
	}
	return filepath.Join(homeDir, ".trajectory_history.db")
}

// TruncateName truncates a display name to a maximum width with an ellipsis suffix.
// Requires maxWidth > 3 to leave room for the ellipsis and at least one character.
func TruncateName(name string, maxWidth int) string {
	runes := []rune(name)
	if len(runes) > maxWidth && maxWidth > 3 {
		return string(runes[:maxWidth-3]) + "..."
	}
	return name
}

// ParseBoolString parses a string value into a boolean.
// Accepts "yes", "no", "true", "false", "1", "0" (case-insensitive).
// Returns an error for invalid values.
func ParseBoolString(s string) (bool, error) {
	switch strings.ToLower(s) {
	case "yes", "true", "1":
		return true, nil
	case "no", "false", "0":
		return false, nil
	default:
		return false, fmt.Errorf("invalid boolean string: %s (expected yes/no/true/false/1/0)", s)
	}
}
