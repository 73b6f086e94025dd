package ports

// Notifier shows a desktop notification
type Notifier interface {
	Notify(title, body string) error
}

// Alerter shows a blocking, user-facing message
type Alerter interface {
	Alert(message string)
}
