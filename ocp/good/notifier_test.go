package good_test

import (
	"context"
	"testing"

	"go.llib.dev/testcase"
	"go.llib.dev/testcase/assert"
	"go.llib.dev/testcase/let"

	"go.llib.dev/solid/ocp/good"
)

var (
	_ good.Notifier = (*good.EmailNotifier)(nil)
	_ good.Notifier = (*good.SMSNotifier)(nil)
	_ good.Notifier = (*good.SlackNotifier)(nil)
)

func TestNotifyManager_Notify(t *testing.T) {
	s := testcase.NewSpec(t)

	var (
		email   = let.Var(s, func(t *testcase.T) *good.EmailNotifier { return &good.EmailNotifier{} })
		slack   = let.Var(s, func(t *testcase.T) *good.SlackNotifier { return &good.SlackNotifier{} })
		manager = let.Var(s, func(t *testcase.T) *good.NotifyManager {
			m := &good.NotifyManager{}
			m.Register(email.Get(t))
			m.Register(&good.SMSNotifier{})
			m.Register(slack.Get(t))
			return m
		})
		message  = let.Var(s, func(t *testcase.T) string { return t.Random.String() })
		employee = let.Var(s, func(t *testcase.T) good.Employee {
			return good.Employee{Name: "Kate", SelectedNotifyChannel: "email"}
		})
	)
	act := func(t *testcase.T) error {
		return manager.Get(t).Notify(context.Background(), employee.Get(t), message.Get(t))
	}

	s.Then("the notifier registered for the employee's channel receives the delivery", func(t *testcase.T) {
		assert.NoError(t, act(t))

		assert.Equal(t, []good.Delivery{
			{Recipient: "Kate", Message: message.Get(t)},
		}, email.Get(t).Sent)
	})

	s.When("the employee prefers the slack channel", func(s *testcase.Spec) {
		employee.Let(s, func(t *testcase.T) good.Employee {
			return good.Employee{Name: "Kate", SelectedNotifyChannel: "slack"}
		})

		s.Then("the slack notifier receives the delivery", func(t *testcase.T) {
			assert.NoError(t, act(t))

			assert.Equal(t, []good.Delivery{
				{Recipient: "Kate", Message: message.Get(t)},
			}, slack.Get(t).Sent)
		})
	})

	s.When("the employee prefers a channel nobody registered", func(s *testcase.Spec) {
		employee.Let(s, func(t *testcase.T) good.Employee {
			return good.Employee{Name: "Kate", SelectedNotifyChannel: "carrier-pigeon"}
		})

		s.Then("the manager reports the unknown channel", func(t *testcase.T) {
			assert.ErrorIs(t, act(t), good.ErrUnknownChannel)
		})
	})

	s.When("a brand new channel type is registered", func(s *testcase.Spec) {
		webhook := let.Var(s, func(t *testcase.T) *recordingNotifier {
			return &recordingNotifier{name: "webhook"}
		})

		manager.Let(s, func(t *testcase.T) *good.NotifyManager {
			m := &good.NotifyManager{}
			m.Register(webhook.Get(t))
			return m
		})

		employee.Let(s, func(t *testcase.T) good.Employee {
			return good.Employee{Name: "Kate", SelectedNotifyChannel: "webhook"}
		})

		s.Then("dispatch works without any change to the manager", func(t *testcase.T) {
			assert.NoError(t, act(t))
			assert.Equal(t, 1, len(webhook.Get(t).sent))
		})
	})
}

// recordingNotifier stands in for the channel type a future team would add.
type recordingNotifier struct {
	name string
	sent []string
}

func (n *recordingNotifier) Name() string { return n.name }

func (n *recordingNotifier) Notify(ctx context.Context, recipient, message string) error {
	n.sent = append(n.sent, message)
	return nil
}
