package good_test

import (
	"errors"
	"testing"

	"go.llib.dev/testcase"
	"go.llib.dev/testcase/assert"

	"go.llib.dev/solid/isp/good"
)

var (
	_ good.Notifier = good.EmailNotifier{}
	_ good.Attacher = good.EmailNotifier{}
	_ good.Notifier = good.SMSNotifier{}
)

func TestNotifyWithAttachment(t *testing.T) {
	s := testcase.NewSpec(t)

	s.Test("a channel with the Attacher capability gets both calls", func(t *testcase.T) {
		n := &spyNotifier{attacher: true}
		assert.NoError(t, good.NotifyWithAttachment(n, "Kate", t.Random.String(), "report.pdf"))
		assert.True(t, n.attached)
		assert.True(t, n.messaged)
	})

	s.Test("a plain channel falls back to the message alone", func(t *testcase.T) {
		n := &spyNotifier{attacher: false}
		assert.NoError(t, good.NotifyWithAttachment(notifierOnly{n}, "Kate", t.Random.String(), "report.pdf"))
		assert.False(t, n.attached)
		assert.True(t, n.messaged)
	})

	s.Test("an attach failure is surfaced, not swallowed", func(t *testcase.T) {
		expErr := errors.New("boom")
		n := &spyNotifier{attacher: true, attachErr: expErr}
		assert.ErrorIs(t, good.NotifyWithAttachment(n, "Kate", t.Random.String(), "report.pdf"), expErr)
	})
}

// spyNotifier records which capabilities were exercised.
type spyNotifier struct {
	attacher  bool
	attachErr error
	attached  bool
	messaged  bool
}

func (n *spyNotifier) SendMessage(recipient, message string) error {
	n.messaged = true
	return nil
}

func (n *spyNotifier) AttachFile(recipient, path string) error {
	n.attached = true
	return n.attachErr
}

// notifierOnly hides the Attacher method set,
// the same way SMSNotifier simply never had it.
type notifierOnly struct{ n *spyNotifier }

func (w notifierOnly) SendMessage(recipient, message string) error {
	return w.n.SendMessage(recipient, message)
}
