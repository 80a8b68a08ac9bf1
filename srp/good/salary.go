package good

import "fmt"

// Salary calculates an employee's pay, and nothing else.
// Only a change in payroll rules is a reason to touch it.
type Salary struct {
	EmployeeName string
	BaseWage     float64
	Bonus        float64
}

func (s Salary) Total() float64 {
	return s.BaseWage + s.Bonus
}

// SalaryReporter owns the report layout.
// A new report format means a new reporter, not a change to Salary.
type SalaryReporter struct{}

func (SalaryReporter) Report(s Salary) string {
	return fmt.Sprintf("salary report\nemployee: %s\ntotal: %.2f\n",
		s.EmployeeName, s.Total())
}
