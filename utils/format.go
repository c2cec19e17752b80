package utils

import (
	"fmt"
	"math"
	"time"
)

// MessageType is a custom type used as a placeholder for various message types.
type MessageType int

// The message types used across the CLI application.
const (
	DefaultMessage MessageType = iota
	SuccessMessage
	ErrorMessage
	StatusMessage
)

// ANSI colors used across the CLI application.
const (
	DefaultColor = "\x1b[0m"
	StatusColor  = "\x1b[36m"
	SuccessColor = "\x1b[32m"
	ErrorColor   = "\x1b[31m"
)

// Colorize toggles the ANSI decoration applied by DecorateText.
// The command line tool switches it off when the output is not a terminal.
var Colorize = true

// DecorateText shows the message types in different colors.
func DecorateText(s string, msgType MessageType) string {
	if !Colorize {
		return s
	}

	var prefix string
	switch msgType {
	case DefaultMessage:
		prefix = DefaultColor
	case StatusMessage:
		prefix = StatusColor
	case SuccessMessage:
		prefix = SuccessColor
	case ErrorMessage:
		prefix = ErrorColor
	default:
		return s
	}
	return prefix + s + DefaultColor
}

// FormatTime formats time.Duration output to a human readable value.
func FormatTime(d time.Duration) string {
	if d < time.Second {
		return fmt.Sprintf("%dms", d.Milliseconds())
	}
	if d.Minutes() < 1 {
		return fmt.Sprintf("%.2fs", d.Seconds())
	}
	remainingSeconds := math.Mod(d.Seconds(), 60)
	if d.Hours() < 1 {
		return fmt.Sprintf("%dm %.2fs", int64(d.Minutes()), remainingSeconds)
	}
	remainingMinutes := math.Mod(d.Minutes(), 60)
	return fmt.Sprintf("%dh %dm %.2fs", int64(d.Hours()), int64(remainingMinutes), remainingSeconds)
}
