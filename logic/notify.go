package logic

import "github.com/sirupsen/logrus"

// Notifier is the user-facing alert channel. The browser original
// raised toasts; the service default logs them.
type Notifier interface {
	Notify(title, message string)
}

type logNotifier struct{}

// NewLogNotifier returns a Notifier that records alerts via logrus.
func NewLogNotifier() Notifier { return logNotifier{} }

func (logNotifier) Notify(title, message string) {
	logrus.WithField("title", title).Warn(message)
}
