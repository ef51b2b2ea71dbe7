package policy

import (
	"time"

	"github.com/trackops/ticket-tracker/internal/domain"
	apperrors "github.com/trackops/ticket-tracker/pkg/util/errorutil"
)

// Display layouts for entry stamps and due dates.
const (
	DateLayout = "01/02/2006"
	TimeLayout = "03:04 PM"
)

// Policy owns the derivation and validation rules of the ticket lifecycle.
// It is a pure function of its inputs plus the supplied wall-clock instant;
// it never persists anything.
type Policy struct {
	roster domain.Roster
	loc    *time.Location
}

// New builds a policy over the given enum roster. All wall-clock instants
// are interpreted in loc before any date arithmetic.
func New(roster domain.Roster, loc *time.Location) *Policy {
	if loc == nil {
		loc = time.UTC
	}
	return &Policy{roster: roster, loc: loc}
}

// ComputeDueDate maps a priority onto a due date relative to now. Blank and
// unrecognized priorities fall back to now's date.
func (p *Policy) ComputeDueDate(priority domain.Priority, now time.Time) string {
	local := now.In(p.loc)
	switch priority {
	case domain.PriorityTomorrow:
		local = local.AddDate(0, 0, 1)
	case domain.PriorityTwoDays:
		local = local.AddDate(0, 0, 2)
	}
	return local.Format(DateLayout)
}

// Stamp returns the creation date and time entries for a ticket logged at
// now. Captured once at creation and never recomputed.
func (p *Policy) Stamp(now time.Time) (dateEntered, timeEntered string) {
	local := now.In(p.loc)
	return local.Format(DateLayout), local.Format(TimeLayout)
}

// ValidateTicket checks every enum-valued field of an assembled ticket.
// Blank is always accepted as the unset sentinel; a non-blank value must be
// a member of its declared enum.
func (p *Policy) ValidateTicket(t domain.Ticket) error {
	if err := p.validateUser("entered_by", t.EnteredBy); err != nil {
		return err
	}
	if err := p.validateUser("assigned_to", t.AssignedTo); err != nil {
		return err
	}
	if err := p.validatePriority(t.Priority); err != nil {
		return err
	}
	if err := p.validateStatus(t.Status); err != nil {
		return err
	}
	return p.validateCommunication(t.Communication)
}

// ValidatePatch checks the enum-valued fields a partial update carries.
func (p *Policy) ValidatePatch(patch domain.TicketPatch) error {
	if patch.EnteredBy != nil {
		if err := p.validateUser("entered_by", *patch.EnteredBy); err != nil {
			return err
		}
	}
	if patch.AssignedTo != nil {
		if err := p.validateUser("assigned_to", *patch.AssignedTo); err != nil {
			return err
		}
	}
	if patch.Priority != nil {
		if err := p.validatePriority(*patch.Priority); err != nil {
			return err
		}
	}
	if patch.Status != nil {
		if err := p.validateStatus(*patch.Status); err != nil {
			return err
		}
	}
	if patch.Communication != nil {
		return p.validateCommunication(*patch.Communication)
	}
	return nil
}

func (p *Policy) validateUser(field, name string) error {
	if name == "" || p.roster.HasUser(name) {
		return nil
	}
	return rejected(field, name)
}

func (p *Policy) validatePriority(pr domain.Priority) error {
	if pr == domain.PriorityUnset || p.roster.HasPriority(pr) {
		return nil
	}
	return rejected("priority", string(pr))
}

func (p *Policy) validateStatus(s domain.Status) error {
	if s == domain.StatusUnset || p.roster.HasStatus(s) {
		return nil
	}
	return rejected("status", string(s))
}

func (p *Policy) validateCommunication(c domain.Communication) error {
	if c == domain.CommunicationUnset || p.roster.HasCommunication(c) {
		return nil
	}
	return rejected("communication", string(c))
}

func rejected(field, value string) error {
	return apperrors.NewValidationError("invalid "+field, map[string]any{
		"field": field,
		"value": value,
	})
}
