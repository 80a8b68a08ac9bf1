/*
Package isp demonstrates the Interface Segregation Principle.

	"Clients should not be forced to depend upon interfaces that they do not use."
	Robert Martin

A fat interface taxes two parties at once.
Implementations must stub out methods they cannot support,
usually with an "unsupported operation" error that turns a compile-time
question into a runtime surprise.
Consumers, on the other hand, declare a dependency on capabilities they never call,
which makes every test double bigger than the code under test.

Go's implicit interface satisfaction makes the refactor unusually cheap:
declare the small role interfaces at the consumer side,
and existing types satisfy them without being touched.
The bad package forces an sms channel to pretend it can mail and attach files.
The good package splits Notifier from Attacher,
and capability detection becomes a type assertion instead of an error code.
*/
package isp
