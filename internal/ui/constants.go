// Package ui provides shared UI constants and utilities.
package ui

// Layout constants for consistent sizing across UI components.
const (
	// ScrollMargin is the number of items to keep visible above/below the cursor.
	ScrollMargin = 2

	// SoundCardWidth is the outer width of a sound card, borders included.
	SoundCardWidth = 28

	// SoundCardHeight is the outer height of a sound card.
	SoundCardHeight = 5

	// ChipWidth is the outer width of animation and timer preset chips.
	ChipWidth = 20

	// ChipHeight is the outer height of a chip.
	ChipHeight = 3

	// FeelingCardWidth is the outer width of a feelings card.
	FeelingCardWidth = 32

	// MinProgressBarWidth is the minimum width for a usable progress bar.
	MinProgressBarWidth = 5

	// MaxProgressBarWidth caps the timer progress bar.
	MaxProgressBarWidth = 60
)
