package bad

import "fmt"

// Salary knows how to calculate an employee's pay,
// but it also owns the report layout,
// so finance rule changes and report layout changes land on the same type.
type Salary struct {
	EmployeeName string
	BaseWage     float64
	Bonus        float64
}

func (s Salary) Total() float64 {
	return s.BaseWage + s.Bonus
}

func (s Salary) Report() string {
	return fmt.Sprintf("salary report\nemployee: %s\ntotal: %.2f\n",
		s.EmployeeName, s.Total())
}
