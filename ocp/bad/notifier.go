package bad

import "fmt"

// Employee carries the channel it wants to be notified on.
type Employee struct {
	Name                  string
	SelectedNotifyChannel string
}

// Notifier dispatches with a switch over its selected channel.
// Every new channel is an edit to this method,
// and the unrecognized-channel error is the symptom of that closed world.
type Notifier struct {
	SelectedNotifyChannel string
}

func (n Notifier) Notify(recipient, message string) error {
	switch n.SelectedNotifyChannel {
	case "email":
		// deliver via email gateway
		return nil
	case "sms":
		// deliver via sms gateway
		return nil
	default:
		return fmt.Errorf("unrecognized notify channel: %q", n.SelectedNotifyChannel)
	}
}

// NotifyManager only wires employees to the switch above,
// yet it still ships with every channel edit, because the closed world is its dependency.
type NotifyManager struct{}

func (NotifyManager) Notify(e Employee, message string) error {
	n := Notifier{SelectedNotifyChannel: e.SelectedNotifyChannel}
	return n.Notify(e.Name, message)
}
