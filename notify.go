package agentone

import "log/slog"

// Notifier receives the user-visible outcome of session operations.
// The UI layer supplies its own implementation; LogNotifier is the default.
type Notifier interface {
	Success(msg string)
	Error(msg string)
	Info(msg string)
}

// NopNotifier discards all notifications.
type NopNotifier struct{}

func (NopNotifier) Success(string) {}
func (NopNotifier) Error(string)   {}
func (NopNotifier) Info(string)    {}

// LogNotifier routes notifications to a structured logger.
type LogNotifier struct {
	Logger *slog.Logger
}

func (n LogNotifier) logger() *slog.Logger {
	if n.Logger != nil {
		return n.Logger
	}
	return slog.Default()
}

// Success implements Notifier.
func (n LogNotifier) Success(msg string) { n.logger().Info(msg, "outcome", "success") }

// Error implements Notifier.
func (n LogNotifier) Error(msg string) { n.logger().Error(msg, "outcome", "error") }

// Info implements Notifier.
func (n LogNotifier) Info(msg string) { n.logger().Info(msg, "outcome", "info") }

// Compile-time checks that both notifiers implement Notifier.
var (
	_ Notifier = NopNotifier{}
	_ Notifier = LogNotifier{}
)
