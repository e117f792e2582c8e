package app

import (
	"strconv"

	"github.com/shepherd-cli/shepherd/internal/model"
)

// AddNotification records an in-app notification, prepending it to the
// reverse-chronological list. At most one notification with the same title
// and message is created per calendar day; a suppressed duplicate returns
// false.
func (a *App) AddNotification(typ model.NotificationType, title, message string, target model.Target) bool {
	a.mu.Lock()
	defer a.mu.Unlock()

	now := a.now()
	for _, n := range a.doc.Notifications {
		if n.Title == title && n.Message == message && sameDay(n.Date, now) {
			return false
		}
	}

	n := model.NewNotification(typ, title, message, target, now)
	a.doc.Notifications = append([]*model.Notification{n}, a.doc.Notifications...)
	a.persistLocked()
	return true
}

// MarkNotificationRead marks one notification as read. Idempotent: marking
// an already-read or unknown notification changes nothing. Returns true when
// the flag flipped.
func (a *App) MarkNotificationRead(id string) bool {
	a.mu.Lock()
	defer a.mu.Unlock()

	for _, n := range a.doc.Notifications {
		if n.ID == id {
			if n.Read {
				return false
			}
			n.Read = true
			a.persistLocked()
			return true
		}
	}
	return false
}

// ClearAllNotifications empties the notification list unconditionally.
func (a *App) ClearAllNotifications() {
	a.mu.Lock()
	defer a.mu.Unlock()

	a.doc.Notifications = []*model.Notification{}
	a.persistLocked()
}

// Notifications returns the notification list, newest first.
func (a *App) Notifications() []*model.Notification {
	a.mu.Lock()
	defer a.mu.Unlock()

	out := make([]*model.Notification, len(a.doc.Notifications))
	copy(out, a.doc.Notifications)
	return out
}

// UnreadCount returns the exact number of unread notifications.
func (a *App) UnreadCount() int {
	a.mu.Lock()
	defer a.mu.Unlock()

	n := 0
	for _, notif := range a.doc.Notifications {
		if !notif.Read {
			n++
		}
	}
	return n
}

// BadgeLabel renders the unread count for the badge: empty when zero,
// capped at "99+".
func (a *App) BadgeLabel() string {
	n := a.UnreadCount()
	switch {
	case n == 0:
		return ""
	case n > 99:
		return "99+"
	default:
		return strconv.Itoa(n)
	}
}
