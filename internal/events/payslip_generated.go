package events

import "time"

const PayslipGeneratedTopic = "paie.payslip.generated.v1"

const PayslipGeneratedType = "payslip.generated"

type PayslipGeneratedEvent struct {
	EventType   string    `json:"event_type"`
	PayslipID   string    `json:"payslip_id"`
	EmployeeID  string    `json:"employee_id"`
	Month       int       `json:"month"`
	Year        int       `json:"year"`
	GrossSalary string    `json:"gross_salary"`
	NetSalary   string    `json:"net_salary"`
	TotalCost   string    `json:"total_cost"`
	OccurredAt  time.Time `json:"occurred_at"`
}
