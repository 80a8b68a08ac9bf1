/*
Package dip demonstrates the Dependency Inversion Principle.

	"High-level modules should not depend on low-level modules. Both should depend on abstractions."
	Robert Martin

The inversion in the name is about ownership, not about injection frameworks.
The high-level module declares the interface it needs,
and the low-level detail conforms to it,
which flips the usual source-code dependency arrow:
the database driver now depends on the application's vocabulary
instead of the application depending on the driver's.

The bad package hardwires application startup to one concrete connection type,
complete with its DSN, so the only way to test AppInit is to have that database.
The good package lets AppInit own a Connection role interface,
takes the implementation as a constructor argument,
and its specs run against an in-memory double.
No real connector lives here, the stand-in is the point.
*/
package dip
