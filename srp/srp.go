/*
Package srp demonstrates the Single Responsibility Principle.

	"A class should have only one reason to change."
	Robert Martin

A reason to change is an actor: a person or group that can demand a modification.
Payroll rules come from the finance department,
report layout comes from whoever reads the report.
When both demands land on the same type, every change for one actor
risks breaking the other, and the type's test suite has to cover both concerns at once.

The bad package fuses wage calculation and report formatting into a single Salary type.
The good package keeps Salary as pure calculation
and moves presentation into a separate SalaryReporter,
so each type changes for exactly one reason.
*/
package srp
