package services

import "log"

// Notifier receives the completion signal of a report generation. The
// title/description pairs are fixed per document kind; the HTTP layer
// mirrors the same pair back to the caller.
type Notifier interface {
	Success(title, description string)
	Failure(title, description string)
}

// LogNotifier is the default Notifier: it writes the notification to the
// application log.
type LogNotifier struct{}

func (LogNotifier) Success(title, description string) {
	log.Printf("[Notify] SUCCESS: %s - %s", title, description)
}

func (LogNotifier) Failure(title, description string) {
	log.Printf("[Notify] FAILURE: %s - %s", title, description)
}
