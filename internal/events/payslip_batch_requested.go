package events

import "time"

const PayslipBatchRequestedTopic = "paie.payslip.batch.requested.v1"

const PayslipBatchRequestedType = "payslip.batch.requested"

// PayslipBatchRequestedEvent targets one employee when EmployeeID or Email is
// set, every active employee otherwise.
type PayslipBatchRequestedEvent struct {
	EventType   string    `json:"event_type"`
	Month       int       `json:"month"`
	Year        int       `json:"year"`
	EmployeeID  string    `json:"employee_id,omitempty"`
	Email       string    `json:"email,omitempty"`
	RequestedBy string    `json:"requested_by"`
	RequestID   string    `json:"request_id"`
	OccurredAt  time.Time `json:"occurred_at"`
}
