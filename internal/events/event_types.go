package events

import (
	"time"

	"github.com/trackops/ticket-tracker/internal/domain"
)

// EventType enumerates supported event identifiers.
type EventType string

const (
	EventTicketCreated    EventType = "ticket_created"
	EventTicketUpdated    EventType = "ticket_updated"
	EventTicketsDeleted   EventType = "tickets_deleted"
	EventTicketsRecovered EventType = "tickets_recovered"
)

// Event represents a domain event emitted by services.
type Event struct {
	ID        string      `json:"id"`
	Type      EventType   `json:"type"`
	Timestamp time.Time   `json:"timestamp"`
	Payload   interface{} `json:"payload"`
}

// TicketCreatedPayload payload.
type TicketCreatedPayload struct {
	TicketID   int64           `json:"ticket_id"`
	EnteredBy  string          `json:"entered_by,omitempty"`
	AssignedTo string          `json:"assigned_to,omitempty"`
	Priority   domain.Priority `json:"priority,omitempty"`
	DueDate    string          `json:"due_date"`
}

// TicketUpdatedPayload payload.
type TicketUpdatedPayload struct {
	TicketID   int64           `json:"ticket_id"`
	AssignedTo string          `json:"assigned_to,omitempty"`
	Priority   domain.Priority `json:"priority,omitempty"`
	Status     domain.Status   `json:"status,omitempty"`
	DueDate    string          `json:"due_date"`
}

// TicketsMovedPayload covers bulk delete and recover.
type TicketsMovedPayload struct {
	Requested []int64 `json:"requested"`
	Moved     int64   `json:"moved"`
}
