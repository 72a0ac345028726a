package api

//go:generate go run github.com/matryer/moq@latest -out mocks/notifier.go -pkg mocks . Notifier

// Severity is the visual weight of a notification.
type Severity string

const (
	// SeveritySuccess marks feedback for a completed operation.
	SeveritySuccess Severity = "success"

	// SeverityError marks feedback for a failed operation.
	SeverityError Severity = "error"
)

// Notification is a single piece of ephemeral user feedback.
type Notification struct {
	Message  string   `json:"message"`
	Severity Severity `json:"severity"`
}

// Notifier is the toast surface the facade reports to.
// Notify must not block; delivery is best effort.
type Notifier interface {
	Notify(n Notification)
}

// NotifierFunc adapts a function to the Notifier interface.
type NotifierFunc func(n Notification)

// Notify calls f(n).
func (f NotifierFunc) Notify(n Notification) {
	f(n)
}

type nopNotifier struct{}

func (nopNotifier) Notify(Notification) {}
