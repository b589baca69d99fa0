// Package keymap defines key bindings for the application.
package keymap

// Context scopes a binding to one section of the UI. Global bindings apply
// everywhere unless the section binds the same key.
type Context string

const (
	Global   Context = "global"
	Sounds   Context = "sounds"
	Visuals  Context = "visuals"
	Timer    Context = "timer"
	Feelings Context = "feelings"
	Profiles Context = "profiles"
)

// Contexts lists contexts in help display order.
var Contexts = []Context{Global, Sounds, Visuals, Timer, Feelings, Profiles}

// Label returns the heading used for the context in help.
func (c Context) Label() string {
	switch c {
	case Global:
		return "Everywhere"
	case Sounds:
		return "Sounds"
	case Visuals:
		return "Visuals"
	case Timer:
		return "Timer"
	case Feelings:
		return "Feelings"
	case Profiles:
		return "Profiles"
	}
	return string(c)
}

// Action identifies what a key does.
type Action string

const (
	ActionQuit        Action = "quit"
	ActionNextSection Action = "next_section"
	ActionPrevSection Action = "prev_section"
	ActionSection1    Action = "section_1"
	ActionSection2    Action = "section_2"
	ActionSection3    Action = "section_3"
	ActionSection4    Action = "section_4"
	ActionSection5    Action = "section_5"
	ActionHelp        Action = "help"
	ActionTheme       Action = "theme"
	ActionPauseAll    Action = "pause_all"
	ActionStopAll     Action = "stop_all"
	ActionLeft        Action = "left"
	ActionRight       Action = "right"
	ActionUp          Action = "up"
	ActionDown        Action = "down"
	ActionSelect      Action = "select"

	ActionVolumeUp       Action = "volume_up"
	ActionVolumeDown     Action = "volume_down"
	ActionVolumeUpFine   Action = "volume_up_fine"
	ActionVolumeDownFine Action = "volume_down_fine"

	ActionFullscreen     Action = "fullscreen"
	ActionExitFullscreen Action = "exit_fullscreen"
	ActionNextVisual     Action = "next_visual"
	ActionPrevVisual     Action = "prev_visual"

	ActionTimerStart  Action = "timer_start"
	ActionTimerPause  Action = "timer_pause"
	ActionTimerStop   Action = "timer_stop"
	ActionTimerCustom Action = "timer_custom"

	ActionBack          Action = "back"
	ActionRestart       Action = "restart"
	ActionPlaySuggested Action = "play_suggested"

	ActionProfileSave   Action = "profile_save"
	ActionProfileDelete Action = "profile_delete"
	ActionProfileExport Action = "profile_export"
	ActionProfileImport Action = "profile_import"
)

// Binding describes a single key binding.
type Binding struct {
	Action      Action
	Keys        []string
	Description string
	Context     Context
}

// All contains every binding, in help display order within a context.
var All = []Binding{
	{ActionQuit, []string{"q", "ctrl+c"}, "Quit", Global},
	{ActionNextSection, []string{"tab"}, "Next section", Global},
	{ActionPrevSection, []string{"shift+tab"}, "Previous section", Global},
	{ActionSection1, []string{"1"}, "Sounds", Global},
	{ActionSection2, []string{"2"}, "Visuals", Global},
	{ActionSection3, []string{"3"}, "Timer", Global},
	{ActionSection4, []string{"4"}, "Feelings", Global},
	{ActionSection5, []string{"5"}, "Profiles", Global},
	{ActionHelp, []string{"?"}, "Show help", Global},
	{ActionTheme, []string{"t"}, "Toggle light/dark theme", Global},
	{ActionPauseAll, []string{" "}, "Pause/resume everything", Global},
	{ActionStopAll, []string{"s"}, "Stop all sounds", Global},
	{ActionLeft, []string{"h", "left"}, "Move left", Global},
	{ActionRight, []string{"l", "right"}, "Move right", Global},
	{ActionUp, []string{"k", "up"}, "Move up", Global},
	{ActionDown, []string{"j", "down"}, "Move down", Global},
	{ActionSelect, []string{"enter"}, "Select", Global},

	{ActionSelect, []string{"enter"}, "Play/stop sound", Sounds},
	{ActionVolumeUp, []string{"+", "="}, "Volume +10%", Sounds},
	{ActionVolumeDown, []string{"-"}, "Volume -10%", Sounds},
	{ActionVolumeUpFine, []string{"shift+right"}, "Volume +1%", Sounds},
	{ActionVolumeDownFine, []string{"shift+left"}, "Volume -1%", Sounds},

	{ActionSelect, []string{"enter"}, "Start/stop animation", Visuals},
	{ActionFullscreen, []string{"f"}, "Fullscreen canvas", Visuals},
	{ActionExitFullscreen, []string{"esc"}, "Leave fullscreen", Visuals},
	{ActionNextVisual, []string{"]"}, "Next animation", Visuals},
	{ActionPrevVisual, []string{"["}, "Previous animation", Visuals},

	{ActionSelect, []string{"enter"}, "Use preset", Timer},
	{ActionTimerStart, []string{"r"}, "Start", Timer},
	{ActionTimerPause, []string{"p"}, "Pause/resume", Timer},
	{ActionTimerStop, []string{"x"}, "Stop", Timer},
	{ActionTimerCustom, []string{"c"}, "Custom minutes", Timer},

	{ActionSelect, []string{"enter"}, "Choose", Feelings},
	{ActionBack, []string{"backspace", "b"}, "Back", Feelings},
	{ActionRestart, []string{"r"}, "Start over", Feelings},
	{ActionPlaySuggested, []string{"m"}, "Play a calming sound", Feelings},

	{ActionSelect, []string{"enter"}, "Load profile", Profiles},
	{ActionProfileSave, []string{"n"}, "Save current setup", Profiles},
	{ActionProfileDelete, []string{"d"}, "Delete profile", Profiles},
	{ActionProfileExport, []string{"e"}, "Export to JSON", Profiles},
	{ActionProfileImport, []string{"i"}, "Import from JSON", Profiles},
}

// ByContext returns all bindings for a given context.
func ByContext(ctx Context) []Binding {
	var result []Binding
	for _, b := range All {
		if b.Context == ctx {
			result = append(result, b)
		}
	}
	return result
}

// KeyLabel renders a key the way help shows it.
func KeyLabel(key string) string {
	if key == " " {
		return "space"
	}
	return key
}
