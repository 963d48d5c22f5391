package service

import "github.com/sirupsen/logrus"

// Mailer delivers password-reset instructions. Delivery is fire-and-forget:
// the caller never learns whether sending worked, so the reset flow cannot be
// used to probe which emails are registered.
type Mailer interface {
	SendPasswordReset(email string) error
}

// LogMailer is the stand-in delivery channel until a real provider is wired
// up. It only writes a log line.
type LogMailer struct{}

// SendPasswordReset logs the reset request instead of sending an email.
func (LogMailer) SendPasswordReset(email string) error {
	logrus.WithField("email", email).Info("Password reset instructions queued")
	return nil
}
