// Package notify implements the notification fan-out. The current
// implementation emits structured log records; push delivery can be layered
// behind the same port later.
package notify

import (
	"context"
	"log/slog"
)

// SlogNotifier publishes notifications as structured log records.
type SlogNotifier struct {
	logger *slog.Logger
}

// NewSlogNotifier creates a log-backed notifier.
func NewSlogNotifier(logger *slog.Logger) *SlogNotifier {
	return &SlogNotifier{logger: logger}
}

// Notify emits the notification. Never fails.
func (n *SlogNotifier) Notify(_ context.Context, title, body, kind string) {
	n.logger.Info("notification",
		"kind", kind,
		"title", title,
		"body", body)
}
