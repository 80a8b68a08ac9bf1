package good

// Notifier is the one capability every channel has.
type Notifier interface {
	SendMessage(recipient, message string) error
}

// Attacher is the capability only some channels have.
// Consumers that need it ask for it, nobody else pays for it.
type Attacher interface {
	AttachFile(recipient, path string) error
}

type EmailNotifier struct{}

func (EmailNotifier) SendMessage(recipient, message string) error {
	// deliver via email gateway
	return nil
}

func (EmailNotifier) AttachFile(recipient, path string) error {
	// attach to the next email
	return nil
}

// SMSNotifier implements Notifier and nothing more.
// "Can it attach?" is now a type assertion, not an error code.
type SMSNotifier struct{}

func (SMSNotifier) SendMessage(recipient, message string) error {
	// deliver via sms gateway
	return nil
}

// NotifyWithAttachment sends the attachment when the channel supports it,
// and quietly falls back to a plain message when it does not.
func NotifyWithAttachment(n Notifier, recipient, message, path string) error {
	if a, ok := n.(Attacher); ok {
		if err := a.AttachFile(recipient, path); err != nil {
			return err
		}
	}
	return n.SendMessage(recipient, message)
}
