package gallery

import "log"

// Notifier is the user-facing notification channel: fire-and-forget success
// and error messages shown transiently to whoever drives the UI.
type Notifier interface {
	Success(msg string)
	Error(msg string)
}

// LogNotifier writes notifications to the process log.
type LogNotifier struct{}

func (LogNotifier) Success(msg string) { log.Println("✅", msg) }
func (LogNotifier) Error(msg string)   { log.Println("❌", msg) }
