package model

import "time"

// Account is the identity kept in the session after login.
type Account struct {
	UID      string
	Name     string
	Role     string
	LoggedIn time.Time
}

type NotificationKind string

const (
	NotifySuccess NotificationKind = "success"
	NotifyInfo    NotificationKind = "info"
	NotifyWarning NotificationKind = "warning"
	NotifyError   NotificationKind = "error"
)

// Notification is shown once as a toast on the next rendered page.
type Notification struct {
	Kind    NotificationKind
	Message string
}
