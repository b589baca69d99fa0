//go:build linux

package notify

import (
	"sync"

	"github.com/godbus/dbus/v5"
)

const (
	busName   = "org.freedesktop.Notifications"
	busPath   = "/org/freedesktop/Notifications"
	busNotify = busName + ".Notify"
	busClose  = busName + ".CloseNotification"
)

// caller is the part of dbus.BusObject the notifier uses.
type caller interface {
	Call(method string, flags dbus.Flags, args ...any) *dbus.Call
}

// busNotifier talks to the session notification daemon. Notifications
// sharing a category replace the previous one on screen.
type busNotifier struct {
	obj caller

	mu   sync.Mutex
	last map[string]uint32
}

// New connects to the session bus. Without one, notifications are dropped.
func New() (Notifier, error) {
	conn, err := dbus.SessionBus()
	if err != nil {
		return Disabled(), nil //nolint:nilerr // no session bus: notifications are optional
	}
	return newBusNotifier(conn.Object(busName, busPath)), nil
}

func newBusNotifier(obj caller) *busNotifier {
	return &busNotifier{obj: obj, last: make(map[string]uint32)}
}

func (n *busNotifier) Notify(notif Notification) (uint32, error) {
	n.mu.Lock()
	defer n.mu.Unlock()

	replaces := notif.ReplacesID
	if replaces == 0 && notif.Category != "" {
		replaces = n.last[notif.Category]
	}

	call := n.obj.Call(busNotify, 0,
		appName,
		replaces,
		notif.Icon,
		notif.Title,
		notif.Body,
		[]string{},
		hints(notif),
		notif.Timeout,
	)
	if call.Err != nil {
		return 0, call.Err
	}

	var id uint32
	if err := call.Store(&id); err != nil {
		return 0, err
	}
	if notif.Category != "" {
		n.last[notif.Category] = id
	}
	return id, nil
}

func (n *busNotifier) Close(id uint32) error {
	n.mu.Lock()
	for cat, last := range n.last {
		if last == id {
			delete(n.last, cat)
		}
	}
	n.mu.Unlock()
	return n.obj.Call(busClose, 0, id).Err
}

func hints(notif Notification) map[string]dbus.Variant {
	h := map[string]dbus.Variant{
		"urgency":       dbus.MakeVariant(byte(notif.Urgency)),
		"desktop-entry": dbus.MakeVariant(desktopEntry),
	}
	if notif.Category != "" {
		h["category"] = dbus.MakeVariant(notif.Category)
	}
	if notif.SuppressSound {
		h["suppress-sound"] = dbus.MakeVariant(true)
	}
	return h
}
