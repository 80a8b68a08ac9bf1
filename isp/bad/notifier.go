package bad

import "errors"

// ErrUnsupported is what a fat interface condemns its implementations to.
var ErrUnsupported = errors.New("unsupported operation")

// Notifier demands every capability from every channel.
type Notifier interface {
	SendEmail(recipient, message string) error
	SendSMS(recipient, message string) error
	AttachFile(recipient, path string) error
}

// EmailNotifier can mail and attach, but must answer for sms too.
type EmailNotifier struct{}

func (EmailNotifier) SendEmail(recipient, message string) error {
	// deliver via email gateway
	return nil
}

func (EmailNotifier) SendSMS(recipient, message string) error {
	return ErrUnsupported
}

func (EmailNotifier) AttachFile(recipient, path string) error {
	// attach to the next email
	return nil
}

// SMSNotifier has no concept of email or attachments,
// yet the interface forces it to answer for both at runtime.
type SMSNotifier struct{}

func (SMSNotifier) SendEmail(recipient, message string) error {
	return ErrUnsupported
}

func (SMSNotifier) SendSMS(recipient, message string) error {
	// deliver via sms gateway
	return nil
}

func (SMSNotifier) AttachFile(recipient, path string) error {
	return ErrUnsupported
}
