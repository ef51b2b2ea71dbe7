package dto

import (
	"github.com/trackops/ticket-tracker/internal/domain"
)

// CreateTicketRequest payload. All fields may be blank in a first draft.
type CreateTicketRequest struct {
	Communication       domain.Communication `json:"communication"`
	EnteredBy           string               `json:"entered_by"`
	AssignedTo          string               `json:"assigned_to"`
	FBACustomer         string               `json:"fba_customer"`
	InstructionsOrderID string               `json:"instructions_order_id"`
	Priority            domain.Priority      `json:"priority"`
	Status              domain.Status        `json:"status"`
	Notes               string               `json:"notes"`
}

// UpdateTicketRequest carries a partial field set; absent fields stay
// untouched. Due date is not accepted: it follows priority.
type UpdateTicketRequest struct {
	Communication       *domain.Communication `json:"communication"`
	EnteredBy           *string               `json:"entered_by"`
	AssignedTo          *string               `json:"assigned_to"`
	FBACustomer         *string               `json:"fba_customer"`
	InstructionsOrderID *string               `json:"instructions_order_id"`
	Priority            *domain.Priority      `json:"priority"`
	Status              *domain.Status        `json:"status"`
	Notes               *string               `json:"notes"`
}

// TicketResponse mirrors a stored ticket plus its bulk-selection label.
type TicketResponse struct {
	ID                  int64                `json:"id"`
	DateEntered         string               `json:"date_entered"`
	TimeEntered         string               `json:"time_entered"`
	Communication       domain.Communication `json:"communication"`
	EnteredBy           string               `json:"entered_by"`
	AssignedTo          string               `json:"assigned_to"`
	FBACustomer         string               `json:"fba_customer"`
	InstructionsOrderID string               `json:"instructions_order_id"`
	Priority            domain.Priority      `json:"priority"`
	DueDate             string               `json:"due_date"`
	Status              domain.Status        `json:"status"`
	Notes               string               `json:"notes"`
	Label               string               `json:"label"`
}

// BulkActionRequest selects tickets by id, by display label, or both.
type BulkActionRequest struct {
	IDs    []int64  `json:"ids"`
	Labels []string `json:"labels"`
}

// BulkActionResponse reports how many rows a bulk action actually moved.
type BulkActionResponse struct {
	Affected int64  `json:"affected"`
	Message  string `json:"message,omitempty"`
}

// DueDatePreview echoes the policy mapping for a priority.
type DueDatePreview struct {
	Priority domain.Priority `json:"priority"`
	DueDate  string          `json:"due_date"`
}
