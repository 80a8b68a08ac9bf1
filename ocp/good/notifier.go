package good

import (
	"context"
	"errors"
	"fmt"
)

// ErrUnknownChannel is returned when no Notifier is registered for a channel.
var ErrUnknownChannel = errors.New("unknown notify channel")

// Employee carries the channel it wants to be notified on.
type Employee struct {
	Name                  string
	SelectedNotifyChannel string
}

// Notifier is the role a delivery channel plays towards the manager.
// Email, sms, slack and whatever comes next implement this interface.
type Notifier interface {
	Name() string
	Notify(ctx context.Context, recipient, message string) error
}

// NotifyManager is closed for modification:
// it dispatches to whatever notifiers were registered,
// and never needs an edit when a new channel arrives.
type NotifyManager struct {
	notifiers map[string]Notifier
}

func (m *NotifyManager) Register(n Notifier) {
	if m.notifiers == nil {
		m.notifiers = make(map[string]Notifier)
	}
	m.notifiers[n.Name()] = n
}

func (m *NotifyManager) Notify(ctx context.Context, e Employee, message string) error {
	n, ok := m.notifiers[e.SelectedNotifyChannel]
	if !ok {
		return fmt.Errorf("%w: %q", ErrUnknownChannel, e.SelectedNotifyChannel)
	}
	return n.Notify(ctx, e.Name, message)
}

// Delivery records what a notifier would have sent.
// The example channels stop here on purpose, no gateway is involved.
type Delivery struct {
	Recipient string
	Message   string
}

type EmailNotifier struct {
	Sent []Delivery
}

func (*EmailNotifier) Name() string { return "email" }

func (n *EmailNotifier) Notify(ctx context.Context, recipient, message string) error {
	n.Sent = append(n.Sent, Delivery{Recipient: recipient, Message: message})
	return nil
}

type SMSNotifier struct {
	Sent []Delivery
}

func (*SMSNotifier) Name() string { return "sms" }

func (n *SMSNotifier) Notify(ctx context.Context, recipient, message string) error {
	n.Sent = append(n.Sent, Delivery{Recipient: recipient, Message: message})
	return nil
}

// SlackNotifier is the channel the bad package's switch never heard of.
// Here it is one more registration, not an edit.
type SlackNotifier struct {
	Sent []Delivery
}

func (*SlackNotifier) Name() string { return "slack" }

func (n *SlackNotifier) Notify(ctx context.Context, recipient, message string) error {
	n.Sent = append(n.Sent, Delivery{Recipient: recipient, Message: message})
	return nil
}
