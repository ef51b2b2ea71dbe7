package policy

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/trackops/ticket-tracker/internal/domain"
	apperrors "github.com/trackops/ticket-tracker/pkg/util/errorutil"
)

func newTestPolicy() *Policy {
	return New(domain.DefaultRoster(), time.UTC)
}

func TestComputeDueDate(t *testing.T) {
	p := newTestPolicy()
	now := time.Date(2024, 1, 10, 15, 30, 0, 0, time.UTC)

	cases := []struct {
		name     string
		priority domain.Priority
		want     string
	}{
		{"today", domain.PriorityToday, "01/10/2024"},
		{"today 2", domain.PriorityToday2, "01/10/2024"},
		{"tomorrow", domain.PriorityTomorrow, "01/11/2024"},
		{"two days", domain.PriorityTwoDays, "01/12/2024"},
		{"blank falls back to today", domain.PriorityUnset, "01/10/2024"},
		{"unknown falls back to today", domain.Priority("Next Week"), "01/10/2024"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, p.ComputeDueDate(tc.priority, now))
		})
	}
}

func TestComputeDueDateUsesConfiguredTimezone(t *testing.T) {
	eastern := time.FixedZone("EST", -5*60*60)
	p := New(domain.DefaultRoster(), eastern)

	// 02:00 UTC on the 11th is still the evening of the 10th in EST.
	now := time.Date(2024, 1, 11, 2, 0, 0, 0, time.UTC)
	assert.Equal(t, "01/10/2024", p.ComputeDueDate(domain.PriorityToday, now))
	assert.Equal(t, "01/11/2024", p.ComputeDueDate(domain.PriorityTomorrow, now))
}

func TestComputeDueDateCrossesMonthBoundary(t *testing.T) {
	p := newTestPolicy()
	now := time.Date(2024, 1, 31, 9, 0, 0, 0, time.UTC)
	assert.Equal(t, "02/01/2024", p.ComputeDueDate(domain.PriorityTomorrow, now))
	assert.Equal(t, "02/02/2024", p.ComputeDueDate(domain.PriorityTwoDays, now))
}

func TestStamp(t *testing.T) {
	p := newTestPolicy()
	now := time.Date(2024, 1, 10, 14, 5, 0, 0, time.UTC)

	date, clock := p.Stamp(now)
	assert.Equal(t, "01/10/2024", date)
	assert.Equal(t, "02:05 PM", clock)
}

func TestValidateTicketAcceptsBlanksAndRosterMembers(t *testing.T) {
	p := newTestPolicy()

	assert.NoError(t, p.ValidateTicket(domain.Ticket{}))
	assert.NoError(t, p.ValidateTicket(domain.Ticket{
		EnteredBy:     "Sam",
		AssignedTo:    "Vinny",
		Priority:      domain.PriorityToday,
		Status:        domain.StatusOpen,
		Communication: domain.CommunicationInformed,
	}))
}

func TestValidateTicketRejectsUnknownEnumValues(t *testing.T) {
	p := newTestPolicy()

	cases := []struct {
		field  string
		ticket domain.Ticket
	}{
		{"entered_by", domain.Ticket{EnteredBy: "Nobody"}},
		{"assigned_to", domain.Ticket{AssignedTo: "Nobody"}},
		{"priority", domain.Ticket{Priority: domain.Priority("Yesterday")}},
		{"status", domain.Ticket{Status: domain.Status("Escalated")}},
		{"communication", domain.Ticket{Communication: domain.Communication("Carrier Pigeon")}},
	}

	for _, tc := range cases {
		t.Run(tc.field, func(t *testing.T) {
			err := p.ValidateTicket(tc.ticket)
			assert.Error(t, err)

			var domainErr *apperrors.DomainError
			assert.True(t, errors.As(err, &domainErr))
			assert.Equal(t, "VALIDATION_FAILED", domainErr.Code)
			assert.Equal(t, tc.field, domainErr.Details["field"])
		})
	}
}

func TestValidateTicketWithSyntheticRoster(t *testing.T) {
	roster := domain.Roster{
		Users:      []string{"alpha"},
		Statuses:   []domain.Status{"todo"},
		Priorities: []domain.Priority{"whenever"},
	}
	p := New(roster, time.UTC)

	assert.NoError(t, p.ValidateTicket(domain.Ticket{
		EnteredBy: "alpha",
		Priority:  domain.Priority("whenever"),
		Status:    domain.Status("todo"),
	}))
	assert.Error(t, p.ValidateTicket(domain.Ticket{EnteredBy: "Sam"}))
}

func TestValidatePatch(t *testing.T) {
	p := newTestPolicy()

	assert.NoError(t, p.ValidatePatch(domain.TicketPatch{}))

	good := "Sam"
	assert.NoError(t, p.ValidatePatch(domain.TicketPatch{AssignedTo: &good}))

	bad := domain.Status("Escalated")
	err := p.ValidatePatch(domain.TicketPatch{Status: &bad})
	assert.Error(t, err)

	var domainErr *apperrors.DomainError
	assert.True(t, errors.As(err, &domainErr))
	assert.Equal(t, "status", domainErr.Details["field"])
}
