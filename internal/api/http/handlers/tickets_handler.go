package handlers

import (
	"context"
	"net/http"
	"strconv"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/trackops/ticket-tracker/internal/api/dto"
	"github.com/trackops/ticket-tracker/internal/domain"
	"github.com/trackops/ticket-tracker/internal/query"
	"github.com/trackops/ticket-tracker/internal/service"
	apperrors "github.com/trackops/ticket-tracker/pkg/util/errorutil"
)

// TicketsHandler manages ticket endpoints.
type TicketsHandler struct {
	service *service.TicketService
}

// NewTicketsHandler constructs handler.
func NewTicketsHandler(ticketService *service.TicketService) *TicketsHandler {
	return &TicketsHandler{service: ticketService}
}

// CreateTicket POST /tickets.
func (h *TicketsHandler) CreateTicket(c *fiber.Ctx) error {
	var req dto.CreateTicketRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}

	input := service.TicketCreateInput{
		Communication:       req.Communication,
		EnteredBy:           req.EnteredBy,
		AssignedTo:          req.AssignedTo,
		FBACustomer:         req.FBACustomer,
		InstructionsOrderID: req.InstructionsOrderID,
		Priority:            req.Priority,
		Status:              req.Status,
		Notes:               req.Notes,
	}
	ticket, err := h.service.CreateTicket(c.UserContext(), input)
	if err != nil {
		return err
	}
	return c.Status(http.StatusCreated).JSON(fiber.Map{"data": ticketResponse(ticket)})
}

// ListTickets GET /tickets. Query params: collection (active|deleted),
// assignee, status, priority, q.
func (h *TicketsHandler) ListTickets(c *fiber.Ctx) error {
	collection, err := parseCollection(c.Query("collection", string(domain.CollectionActive)))
	if err != nil {
		return err
	}
	criteria := query.Criteria{
		Assignee: c.Query("assignee"),
		Status:   c.Query("status"),
		Priority: c.Query("priority"),
		Search:   c.Query("q"),
	}

	tickets, err := h.service.FilterTickets(c.UserContext(), collection, criteria)
	if err != nil {
		return err
	}
	items := make([]dto.TicketResponse, 0, len(tickets))
	for i := range tickets {
		items = append(items, ticketResponse(&tickets[i]))
	}
	return c.JSON(fiber.Map{"data": items})
}

// UpdateTicket PATCH /tickets/:id.
func (h *TicketsHandler) UpdateTicket(c *fiber.Ctx) error {
	id, err := parseID(c.Params("id"))
	if err != nil {
		return err
	}
	var req dto.UpdateTicketRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}

	input := service.TicketUpdateInput{
		Communication:       req.Communication,
		EnteredBy:           req.EnteredBy,
		AssignedTo:          req.AssignedTo,
		FBACustomer:         req.FBACustomer,
		InstructionsOrderID: req.InstructionsOrderID,
		Priority:            req.Priority,
		Status:              req.Status,
		Notes:               req.Notes,
	}
	ticket, err := h.service.UpdateTicket(c.UserContext(), id, input)
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": ticketResponse(ticket)})
}

// DeleteTickets POST /tickets/bulk/delete.
func (h *TicketsHandler) DeleteTickets(c *fiber.Ctx) error {
	return h.bulkMove(c, domain.CollectionActive, h.service.SoftDeleteTickets)
}

// RecoverTickets POST /tickets/bulk/recover.
func (h *TicketsHandler) RecoverTickets(c *fiber.Ctx) error {
	return h.bulkMove(c, domain.CollectionDeleted, h.service.RecoverTickets)
}

// PreviewDueDate GET /tickets/due-date. Informational: shows what due date
// the policy would assign a priority right now.
func (h *TicketsHandler) PreviewDueDate(c *fiber.Ctx) error {
	priority := domain.Priority(c.Query("priority"))
	preview := dto.DueDatePreview{
		Priority: priority,
		DueDate:  h.service.ComputeDueDate(priority, time.Now()),
	}
	return c.JSON(fiber.Map{"data": preview})
}

// bulkMove resolves the selection (ids, labels, or both) against the source
// collection and applies the action. An empty selection is reported back,
// never an error.
func (h *TicketsHandler) bulkMove(c *fiber.Ctx, collection domain.Collection, action func(context.Context, []int64) (int64, error)) error {
	var req dto.BulkActionRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}

	ids := req.IDs
	if len(req.Labels) > 0 {
		resolved, err := h.service.ResolveSelection(c.UserContext(), collection, req.Labels)
		if err != nil {
			return err
		}
		ids = mergeIDs(ids, resolved)
	}

	if len(ids) == 0 {
		return c.JSON(fiber.Map{"data": dto.BulkActionResponse{
			Affected: 0,
			Message:  "no tickets selected",
		}})
	}

	affected, err := action(c.UserContext(), ids)
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": dto.BulkActionResponse{Affected: affected}})
}

func mergeIDs(ids, more []int64) []int64 {
	seen := make(map[int64]bool, len(ids)+len(more))
	merged := make([]int64, 0, len(ids)+len(more))
	for _, id := range append(ids, more...) {
		if seen[id] {
			continue
		}
		seen[id] = true
		merged = append(merged, id)
	}
	return merged
}

func parseCollection(val string) (domain.Collection, error) {
	switch domain.Collection(val) {
	case domain.CollectionActive, domain.CollectionDeleted:
		return domain.Collection(val), nil
	default:
		return "", apperrors.NewValidationError("invalid collection", map[string]any{
			"field": "collection",
			"value": val,
		})
	}
}

func parseID(val string) (int64, error) {
	id, err := strconv.ParseInt(val, 10, 64)
	if err != nil || id <= 0 {
		return 0, apperrors.NewValidationError("invalid ticket id", map[string]any{
			"field": "id",
			"value": val,
		})
	}
	return id, nil
}

func ticketResponse(ticket *domain.Ticket) dto.TicketResponse {
	return dto.TicketResponse{
		ID:                  ticket.ID,
		DateEntered:         ticket.DateEntered,
		TimeEntered:         ticket.TimeEntered,
		Communication:       ticket.Communication,
		EnteredBy:           ticket.EnteredBy,
		AssignedTo:          ticket.AssignedTo,
		FBACustomer:         ticket.FBACustomer,
		InstructionsOrderID: ticket.InstructionsOrderID,
		Priority:            ticket.Priority,
		DueDate:             ticket.DueDate,
		Status:              ticket.Status,
		Notes:               ticket.Notes,
		Label:               query.Label(*ticket),
	}
}
