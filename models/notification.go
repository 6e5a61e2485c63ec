package models

// Notification is a best-effort message pushed to live sessions of an
// account. Method is the client-side handler name.
type Notification struct {
	Method    string
	Arguments []any
}
