// internal/app/popupctl/types.go
package popupctl

// Type identifies which popup is currently active.
type Type int

const (
	None Type = iota
	Help
	Confirm
	TextInput
)

// Priority defines which popup takes precedence (highest priority first).
var Priority = []Type{Help, Confirm, TextInput}

// RenderOrder defines the order popups are rendered (bottom to top).
var RenderOrder = []Type{TextInput, Confirm, Help}

// InputMode tells what a text input popup is collecting.
type InputMode int

const (
	InputNone InputMode = iota
	InputProfileName
	InputTimerMinutes
)
