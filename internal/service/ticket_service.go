package service

import (
	"context"
	"errors"
	"strconv"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/trackops/ticket-tracker/internal/domain"
	"github.com/trackops/ticket-tracker/internal/events"
	"github.com/trackops/ticket-tracker/internal/policy"
	"github.com/trackops/ticket-tracker/internal/query"
	"github.com/trackops/ticket-tracker/internal/repository"
	apperrors "github.com/trackops/ticket-tracker/pkg/util/errorutil"
)

// TicketService coordinates the ticket lifecycle: it validates and derives
// fields through the policy, persists through the repository, and publishes
// lifecycle events.
type TicketService struct {
	tickets    repository.TicketRepository
	policy     *policy.Policy
	dispatcher events.Dispatcher
	now        func() time.Time
}

// TicketDependencies bundles collaborators for the ticket service.
type TicketDependencies struct {
	TicketRepo repository.TicketRepository
	Policy     *policy.Policy
	Dispatcher events.Dispatcher
	// Now supplies wall-clock time; defaults to time.Now.
	Now func() time.Time
}

// TicketCreateInput describes ticket creation payload. Every field may be
// blank when a ticket is first drafted. There is no due-date field: the
// policy-computed value is authoritative.
type TicketCreateInput struct {
	Communication       domain.Communication
	EnteredBy           string
	AssignedTo          string
	FBACustomer         string
	InstructionsOrderID string
	Priority            domain.Priority
	Status              domain.Status
	Notes               string
}

// TicketUpdateInput describes a partial update. Nil fields are untouched.
// A priority change recomputes the due date; a caller-supplied due date is
// unrepresentable.
type TicketUpdateInput struct {
	Communication       *domain.Communication
	EnteredBy           *string
	AssignedTo          *string
	FBACustomer         *string
	InstructionsOrderID *string
	Priority            *domain.Priority
	Status              *domain.Status
	Notes               *string
}

// NewTicketService constructs the service.
func NewTicketService(deps TicketDependencies) *TicketService {
	now := deps.Now
	if now == nil {
		now = time.Now
	}
	return &TicketService{
		tickets:    deps.TicketRepo,
		policy:     deps.Policy,
		dispatcher: deps.Dispatcher,
		now:        now,
	}
}

// CreateTicket validates the input, stamps entry date/time, derives the due
// date from priority, and inserts the ticket into the active collection.
func (s *TicketService) CreateTicket(ctx context.Context, input TicketCreateInput) (*domain.Ticket, error) {
	now := s.now()
	dateEntered, timeEntered := s.policy.Stamp(now)

	ticket := &domain.Ticket{
		DateEntered:         dateEntered,
		TimeEntered:         timeEntered,
		Communication:       input.Communication,
		EnteredBy:           input.EnteredBy,
		AssignedTo:          input.AssignedTo,
		FBACustomer:         input.FBACustomer,
		InstructionsOrderID: input.InstructionsOrderID,
		Priority:            input.Priority,
		DueDate:             s.policy.ComputeDueDate(input.Priority, now),
		Status:              input.Status,
		Notes:               input.Notes,
	}

	if err := s.policy.ValidateTicket(*ticket); err != nil {
		return nil, err
	}
	if err := s.tickets.Create(ctx, ticket); err != nil {
		return nil, apperrors.NewStorageError(err)
	}

	s.publishEvent(ctx, events.Event{
		Type: events.EventTicketCreated,
		Payload: events.TicketCreatedPayload{
			TicketID:   ticket.ID,
			EnteredBy:  ticket.EnteredBy,
			AssignedTo: ticket.AssignedTo,
			Priority:   ticket.Priority,
			DueDate:    ticket.DueDate,
		},
	})
	return ticket, nil
}

// UpdateTicket applies a partial field set to an active ticket. An empty
// input is a no-op, not an error.
func (s *TicketService) UpdateTicket(ctx context.Context, id int64, input TicketUpdateInput) (*domain.Ticket, error) {
	patch := domain.TicketPatch{
		Communication:       input.Communication,
		EnteredBy:           input.EnteredBy,
		AssignedTo:          input.AssignedTo,
		FBACustomer:         input.FBACustomer,
		InstructionsOrderID: input.InstructionsOrderID,
		Priority:            input.Priority,
		Status:              input.Status,
		Notes:               input.Notes,
	}
	if err := s.policy.ValidatePatch(patch); err != nil {
		return nil, err
	}
	if input.Priority != nil {
		due := s.policy.ComputeDueDate(*input.Priority, s.now())
		patch.DueDate = &due
	}

	if !patch.IsEmpty() {
		if err := s.tickets.Update(ctx, id, patch); err != nil {
			return nil, mapStoreError(err, id)
		}
	}

	ticket, err := s.tickets.Get(ctx, domain.CollectionActive, id)
	if err != nil {
		return nil, mapStoreError(err, id)
	}

	if !patch.IsEmpty() {
		s.publishEvent(ctx, events.Event{
			Type: events.EventTicketUpdated,
			Payload: events.TicketUpdatedPayload{
				TicketID:   ticket.ID,
				AssignedTo: ticket.AssignedTo,
				Priority:   ticket.Priority,
				Status:     ticket.Status,
				DueDate:    ticket.DueDate,
			},
		})
	}
	return ticket, nil
}

// SoftDeleteTickets moves the listed ids from active to deleted and returns
// how many rows actually moved. Missing ids are skipped, never an error.
func (s *TicketService) SoftDeleteTickets(ctx context.Context, ids []int64) (int64, error) {
	count, err := s.tickets.SoftDelete(ctx, ids)
	if err != nil {
		return count, apperrors.NewStorageError(err)
	}
	if count > 0 {
		s.publishEvent(ctx, events.Event{
			Type:    events.EventTicketsDeleted,
			Payload: events.TicketsMovedPayload{Requested: ids, Moved: count},
		})
	}
	return count, nil
}

// RecoverTickets is the symmetric inverse of SoftDeleteTickets.
func (s *TicketService) RecoverTickets(ctx context.Context, ids []int64) (int64, error) {
	count, err := s.tickets.Recover(ctx, ids)
	if err != nil {
		return count, apperrors.NewStorageError(err)
	}
	if count > 0 {
		s.publishEvent(ctx, events.Event{
			Type:    events.EventTicketsRecovered,
			Payload: events.TicketsMovedPayload{Requested: ids, Moved: count},
		})
	}
	return count, nil
}

// ListTickets returns all rows of a collection, newest first.
func (s *TicketService) ListTickets(ctx context.Context, collection domain.Collection) ([]domain.Ticket, error) {
	tickets, err := s.tickets.List(ctx, collection)
	if err != nil {
		return nil, apperrors.NewStorageError(err)
	}
	return tickets, nil
}

// FilterTickets lists a collection and applies the query criteria.
func (s *TicketService) FilterTickets(ctx context.Context, collection domain.Collection, criteria query.Criteria) ([]domain.Ticket, error) {
	tickets, err := s.ListTickets(ctx, collection)
	if err != nil {
		return nil, err
	}
	return query.Filter(tickets, criteria), nil
}

// ResolveSelection maps bulk-selection labels from a collection back to ids.
func (s *TicketService) ResolveSelection(ctx context.Context, collection domain.Collection, labels []string) ([]int64, error) {
	tickets, err := s.ListTickets(ctx, collection)
	if err != nil {
		return nil, err
	}
	return query.ResolveSelection(labels, tickets), nil
}

// ComputeDueDate exposes the policy mapping for due-date previews.
func (s *TicketService) ComputeDueDate(priority domain.Priority, now time.Time) string {
	return s.policy.ComputeDueDate(priority, now)
}

func (s *TicketService) publishEvent(ctx context.Context, event events.Event) {
	if s.dispatcher == nil {
		return
	}
	if event.ID == "" {
		event.ID = uuid.NewString()
	}
	if event.Timestamp.IsZero() {
		event.Timestamp = s.now()
	}
	_ = s.dispatcher.Publish(ctx, event)
}

func mapStoreError(err error, id int64) error {
	if errors.Is(err, pgx.ErrNoRows) {
		return apperrors.NewNotFound("ticket", map[string]any{
			"id": strconv.FormatInt(id, 10),
		})
	}
	return apperrors.NewStorageError(err)
}
