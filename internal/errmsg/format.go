// Package errmsg provides consistent error formatting for user-facing messages.
package errmsg

import "fmt"

// Op represents an operation that can fail.
type Op string

// Operation constants - grouped by domain.
const (
	// Audio
	OpAudioUnlock  Op = "start audio output"
	OpSoundStart   Op = "play sound"
	OpSoundLoad    Op = "load sound"
	OpSoundsScan   Op = "scan sounds folder"
	OpFeedbackPlay Op = "play feedback sound"

	// Volumes
	OpVolumeSave Op = "save volume"
	OpVolumeLoad Op = "load volumes"

	// Profiles
	OpProfileSave   Op = "save profile"
	OpProfileLoad   Op = "load profile"
	OpProfileDelete Op = "delete profile"
	OpProfileList   Op = "list profiles"
	OpProfileImport Op = "import profiles"
	OpProfileExport Op = "export profiles"

	// Timer
	OpTimerStart Op = "start timer"
	OpNotify     Op = "send notification"

	// Preferences
	OpThemeSave Op = "save theme"
	OpUILoad    Op = "restore last session"

	// Initialization
	OpInitialize Op = "initialize application"
)

// Format creates a user-friendly error message.
func Format(op Op, err error) string {
	if err == nil {
		return ""
	}
	return fmt.Sprintf("Failed to %s: %v", op, err)
}

// FormatWith creates an error message with additional context.
func FormatWith(op Op, context string, err error) string {
	if err == nil {
		return ""
	}
	if context == "" {
		return Format(op, err)
	}
	return fmt.Sprintf("Failed to %s '%s': %v", op, context, err)
}
