package ports

type Severity string

const (
	SeverityInfo    Severity = "info"
	SeveritySuccess Severity = "success"
	SeverityWarning Severity = "warning"
	SeverityError   Severity = "error"
)

// Notifier surfaces user-facing notices. Fire and forget: implementations
// must not block and must not panic.
type Notifier interface {
	Notify(severity Severity, message string)
}

// NopNotifier discards every notice.
type NopNotifier struct{}

func (NopNotifier) Notify(Severity, string) {}
