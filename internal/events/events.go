package events

import "time"

const EmployeeCreatedTopic = "employee.created"

// EmployeeCreatedEvent is published best-effort after an employee record is
// persisted. Consumers must tolerate duplicates and gaps; the write path
// never fails because of publishing.
type EmployeeCreatedEvent struct {
	EventType    string    `json:"event_type"`
	RequestID    string    `json:"request_id,omitempty"`
	EmployeeID   uint      `json:"employee_id"`
	DepartmentID uint      `json:"department_id"`
	Email        string    `json:"email"`
	OccurredAt   time.Time `json:"occurred_at"`
}
