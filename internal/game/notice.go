package game

import (
	"time"

	"github.com/charmbracelet/log"
)

// Severity tags a notice for presentation.
type Severity int

const (
	SeverityInfo Severity = iota
	SeveritySuccess
	SeverityWarning
	SeverityError
)

// String returns a human-readable name for the severity.
func (s Severity) String() string {
	switch s {
	case SeverityInfo:
		return "info"
	case SeveritySuccess:
		return "success"
	case SeverityWarning:
		return "warning"
	case SeverityError:
		return "error"
	default:
		return "unknown"
	}
}

// Notice is a fire-and-forget message for the player.
type Notice struct {
	Title       string
	Description string // Optional
	Severity    Severity
	Duration    time.Duration // How long a renderer should show it
}

// Notifier receives notices in the order the session raised them.
// Implementations must not call back into the Session.
type Notifier interface {
	Notify(n Notice)
}

// NotifierFunc adapts a function to the Notifier interface.
type NotifierFunc func(n Notice)

// Notify calls f(n).
func (f NotifierFunc) Notify(n Notice) {
	f(n)
}

// Notifiers fans a notice out to each notifier in order. Nil entries are
// skipped.
type Notifiers []Notifier

// Notify implements Notifier.
func (ns Notifiers) Notify(n Notice) {
	for _, x := range ns {
		if x != nil {
			x.Notify(n)
		}
	}
}

// LogNotifier writes notices to a logger. Used by headless runs.
type LogNotifier struct {
	Logger *log.Logger
}

// Notify logs the notice at a level matching its severity.
func (n LogNotifier) Notify(notice Notice) {
	if n.Logger == nil {
		return
	}
	kv := []any{"severity", notice.Severity.String()}
	if notice.Description != "" {
		kv = append(kv, "detail", notice.Description)
	}
	switch notice.Severity {
	case SeverityError:
		n.Logger.Error(notice.Title, kv...)
	case SeverityWarning:
		n.Logger.Warn(notice.Title, kv...)
	default:
		n.Logger.Info(notice.Title, kv...)
	}
}

type discardNotifier struct{}

func (discardNotifier) Notify(Notice) {}
