package stores

// Notifier receives the transient notifications every store operation emits
// on success or failure. The UI layer decides how to render them.
type Notifier interface {
	Success(msg string)
	Error(msg string)
}

// NopNotifier discards all notifications.
type NopNotifier struct{}

func (NopNotifier) Success(string) {}
func (NopNotifier) Error(string)   {}
