package editor

import (
	"time"
)

// NotificationTTL is how long a notification stays visible.
const NotificationTTL = 3 * time.Second

// Notification kinds.
const (
	KindSuccess = "success"
	KindError   = "error"
)

// Notification is a transient message shown to the user.
type Notification struct {
	Message string    `json:"message"`
	Kind    string    `json:"kind"`
	Shown   time.Time `json:"shown"`
	ID      int       `json:"id"`
}

// Expired reports whether the notification should no longer be shown.
func (n Notification) Expired(now time.Time) bool {
	return !now.Before(n.Shown.Add(NotificationTTL))
}

func (e *Editor) notify(msg, kind string) {
	e.mu.Lock()
	id := 1
	if e.note != nil {
		id = e.note.ID + 1
	}
	e.note = &Notification{Message: msg, Kind: kind, Shown: e.now(), ID: id}
	e.mu.Unlock()
	e.changed()
}

// Notification returns the current notification while it is visible.
// A newer notification replaces an older one.
func (e *Editor) Notification() (Notification, bool) {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.note == nil || e.note.Expired(e.now()) {
		return Notification{}, false
	}
	return *e.note, true
}

// Dismiss clears the notification with the given ID. Newer notifications
// are left alone, so a stale timer cannot hide a fresh message.
func (e *Editor) Dismiss(id int) {
	e.mu.Lock()
	if e.note != nil && e.note.ID == id {
		e.note = nil
	}
	e.mu.Unlock()
}
