package domain

// TicketPatch is a partial field set applied to an existing ticket. Nil
// fields are left untouched. ID, DateEntered, TimeEntered and DueDate are
// not patchable: the first three are immutable, the last is policy-derived.
type TicketPatch struct {
	Communication       *Communication
	EnteredBy           *string
	AssignedTo          *string
	FBACustomer         *string
	InstructionsOrderID *string
	Priority            *Priority
	Status              *Status
	Notes               *string

	// DueDate is set by the lifecycle policy when Priority changes,
	// never by a caller.
	DueDate *string
}

// IsEmpty reports whether the patch carries no fields at all.
func (p TicketPatch) IsEmpty() bool {
	return p.Communication == nil &&
		p.EnteredBy == nil &&
		p.AssignedTo == nil &&
		p.FBACustomer == nil &&
		p.InstructionsOrderID == nil &&
		p.Priority == nil &&
		p.Status == nil &&
		p.Notes == nil &&
		p.DueDate == nil
}

// Apply copies the patch's non-nil fields onto t.
func (p TicketPatch) Apply(t *Ticket) {
	if p.Communication != nil {
		t.Communication = *p.Communication
	}
	if p.EnteredBy != nil {
		t.EnteredBy = *p.EnteredBy
	}
	if p.AssignedTo != nil {
		t.AssignedTo = *p.AssignedTo
	}
	if p.FBACustomer != nil {
		t.FBACustomer = *p.FBACustomer
	}
	if p.InstructionsOrderID != nil {
		t.InstructionsOrderID = *p.InstructionsOrderID
	}
	if p.Priority != nil {
		t.Priority = *p.Priority
	}
	if p.Status != nil {
		t.Status = *p.Status
	}
	if p.Notes != nil {
		t.Notes = *p.Notes
	}
	if p.DueDate != nil {
		t.DueDate = *p.DueDate
	}
}
