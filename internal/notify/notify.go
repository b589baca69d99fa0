// Package notify provides desktop notifications via D-Bus.
package notify

import "strconv"

// Urgency represents notification priority levels as defined by the freedesktop notification protocol.
type Urgency byte

const (
	UrgencyLow      Urgency = 0
	UrgencyNormal   Urgency = 1
	UrgencyCritical Urgency = 2
)

// Notification contains data for a desktop notification.
type Notification struct {
	Title      string  // Summary text (required)
	Body       string  // Body text (optional, supports basic markup)
	Icon       string  // Icon name or path (optional)
	Timeout    int32   // ms, -1 = server default, 0 = never expire
	ReplacesID uint32  // 0 = new notification, >0 = replace existing
	Urgency    Urgency // Low, Normal, Critical

	// Category groups notifications; a new one replaces the last shown
	// notification of the same category unless ReplacesID is set.
	Category      string
	SuppressSound bool // the app plays its own sound
}

const (
	appName      = "Bulle"
	desktopEntry = "bulle"

	// CategoryTimer tags break-finished notifications.
	CategoryTimer = "x-bulle.timer"
)

// Notifier sends desktop notifications.
type Notifier interface {
	// Notify sends a notification and returns its ID.
	// Returns 0 and nil error if notifications are disabled or unavailable.
	Notify(n Notification) (uint32, error)
	// Close closes a notification by ID.
	Close(id uint32) error
}

// TimerDone is the notification sent when a sensory break ends.
func TimerDone(minutes int) Notification {
	body := "Your sensory break is over."
	if minutes > 0 {
		body += " (" + plural(minutes, "minute") + ")"
	}
	return Notification{
		Title:   "Time's up!",
		Body:    body,
		Icon:    "alarm-symbolic",
		Timeout: 8000,
		Urgency: UrgencyNormal,

		Category:      CategoryTimer,
		SuppressSound: true,
	}
}

func plural(n int, unit string) string {
	s := strconv.Itoa(n) + " " + unit
	if n != 1 {
		s += "s"
	}
	return s
}

// Disabled returns a notifier that drops everything.
func Disabled() Notifier {
	return disabled{}
}

type disabled struct{}

func (disabled) Notify(Notification) (uint32, error) { return 0, nil }
func (disabled) Close(uint32) error                  { return nil }
