package ui

import "time"

type NotificationKind string

const (
	NotificationSuccess NotificationKind = "success"
	NotificationError   NotificationKind = "error"
	NotificationInfo    NotificationKind = "info"
)

const DefaultDismissAfter = 5 * time.Second

// Notification is a toast. It removes itself after DismissAfter.
type Notification struct {
	Kind         NotificationKind
	Message      string
	DismissAfter time.Duration
}

func NewNotification(kind NotificationKind, message string, dismissAfter time.Duration) *Notification {
	if dismissAfter <= 0 {
		dismissAfter = DefaultDismissAfter
	}
	return &Notification{Kind: kind, Message: message, DismissAfter: dismissAfter}
}

func (n *Notification) DismissMillis() int64 {
	return n.DismissAfter.Milliseconds()
}
