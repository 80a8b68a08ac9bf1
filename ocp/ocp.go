/*
Package ocp demonstrates the Open/Closed Principle.

	"Software entities should be open for extension, but closed for modification."
	Bertrand Meyer, popularized by Robert Martin

The litmus test is simple: what do you have to touch to add a new case?
If the answer is "the switch statement in the middle of the dispatcher",
the dispatcher is open for modification,
and every new channel re-tests and re-ships code that already worked.

The bad package routes notifications with a switch over channel names;
adding a channel means editing the Notifier, and re-shipping the manager built on it.
The good package turns the channel into a Notifier role interface
and makes NotifyManager a registry,
so a new channel is a new type plus a Register call, nothing more.
*/
package ocp
