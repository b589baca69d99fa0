package styles

import (
	"strings"
	"sync"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
)

// Name identifies a palette.
type Name string

const (
	Dark  Name = "dark"
	Light Name = "light"
	Auto  Name = "auto"
)

// Theme defines the color palette and pre-built styles for the application.
type Theme struct {
	Name Name

	// Brand/accent colors
	Primary   lipgloss.Color // Lavender - focused items, active states
	Secondary lipgloss.Color // Soft teal - secondary accent

	// Text hierarchy (most to least prominent)
	FgBase   lipgloss.Color
	FgMuted  lipgloss.Color
	FgSubtle lipgloss.Color

	// Backgrounds
	BgBase   lipgloss.Color // Card backgrounds
	BgCursor lipgloss.Color // Focused card highlight

	// Borders
	Border      lipgloss.Color
	BorderFocus lipgloss.Color

	// Status colors
	Success lipgloss.Color // Green - playing
	Error   lipgloss.Color
	Warning lipgloss.Color // Paused

	// Gradient ends used for titles and progress bars
	GradientFrom lipgloss.Color
	GradientTo   lipgloss.Color

	styles *Styles
}

// Styles contains pre-built lipgloss styles for common UI patterns.
type Styles struct {
	Base    lipgloss.Style // Default text
	Muted   lipgloss.Style // Dimmed text
	Subtle  lipgloss.Style // Very dim text
	Title   lipgloss.Style // Bold, bright
	Playing lipgloss.Style // Active sound or animation
	Cursor  lipgloss.Style // Cursor background highlight
	Success lipgloss.Style
	Error   lipgloss.Style
	Warning lipgloss.Style
}

var darkTheme = Theme{
	Name:      Dark,
	Primary:   lipgloss.Color("#a78bfa"),
	Secondary: lipgloss.Color("#5eead4"),

	FgBase:   lipgloss.Color("#d4d4d8"),
	FgMuted:  lipgloss.Color("#8b8b94"),
	FgSubtle: lipgloss.Color("#5a5a63"),

	BgBase:   lipgloss.Color("#1a1a22"),
	BgCursor: lipgloss.Color("#2e2b3f"),

	Border:      lipgloss.Color("#4a4a55"),
	BorderFocus: lipgloss.Color("#a78bfa"),

	Success: lipgloss.Color("#42b883"),
	Error:   lipgloss.Color("#ff6b6b"),
	Warning: lipgloss.Color("#f1a208"),

	GradientFrom: lipgloss.Color("#a78bfa"),
	GradientTo:   lipgloss.Color("#5eead4"),
}

var lightTheme = Theme{
	Name:      Light,
	Primary:   lipgloss.Color("#6d28d9"),
	Secondary: lipgloss.Color("#0f766e"),

	FgBase:   lipgloss.Color("#27272a"),
	FgMuted:  lipgloss.Color("#5f5f68"),
	FgSubtle: lipgloss.Color("#9d9da6"),

	BgBase:   lipgloss.Color("#f8f7fc"),
	BgCursor: lipgloss.Color("#e7e3f7"),

	Border:      lipgloss.Color("#c4c4cc"),
	BorderFocus: lipgloss.Color("#6d28d9"),

	Success: lipgloss.Color("#15803d"),
	Error:   lipgloss.Color("#c62828"),
	Warning: lipgloss.Color("#b45309"),

	GradientFrom: lipgloss.Color("#6d28d9"),
	GradientTo:   lipgloss.Color("#0f766e"),
}

var (
	mu      sync.RWMutex
	current = &darkTheme
)

// T returns the active theme.
func T() *Theme {
	mu.RLock()
	defer mu.RUnlock()
	return current
}

// Set activates a palette. Unknown names select dark.
func Set(name Name) *Theme {
	mu.Lock()
	defer mu.Unlock()
	if name == Light {
		current = &lightTheme
	} else {
		current = &darkTheme
	}
	return current
}

// Toggle switches between light and dark and returns the new name.
func Toggle() Name {
	if T().Name == Dark {
		return Set(Light).Name
	}
	return Set(Dark).Name
}

// ParseName normalizes a configured theme name.
func ParseName(s string) Name {
	switch Name(strings.ToLower(strings.TrimSpace(s))) {
	case Light:
		return Light
	case Dark:
		return Dark
	default:
		return Auto
	}
}

// Resolve turns Auto into Light or Dark using the terminal background.
// hasDark may be nil to query the terminal.
func Resolve(name Name, hasDark func() bool) Name {
	if name != Auto {
		return name
	}
	if hasDark == nil {
		hasDark = termenv.HasDarkBackground
	}
	if hasDark() {
		return Dark
	}
	return Light
}

// S returns the pre-built styles for this theme.
func (t *Theme) S() *Styles {
	if t.styles == nil {
		t.styles = t.buildStyles()
	}
	return t.styles
}

func (t *Theme) buildStyles() *Styles {
	base := lipgloss.NewStyle().Foreground(t.FgBase)

	return &Styles{
		Base:   base,
		Muted:  lipgloss.NewStyle().Foreground(t.FgMuted),
		Subtle: lipgloss.NewStyle().Foreground(t.FgSubtle),
		Title:  base.Bold(true),
		Playing: lipgloss.NewStyle().
			Foreground(t.Primary).
			Bold(true),
		Cursor: lipgloss.NewStyle().
			Background(t.BgCursor).
			Foreground(t.FgBase),
		Success: lipgloss.NewStyle().Foreground(t.Success),
		Error:   lipgloss.NewStyle().Foreground(t.Error),
		Warning: lipgloss.NewStyle().Foreground(t.Warning),
	}
}
