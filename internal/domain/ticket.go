package domain

// Collection identifies which of the two ticket tables a row lives in.
// A ticket id is visible in exactly one collection at any instant.
type Collection string

const (
	CollectionActive  Collection = "active"
	CollectionDeleted Collection = "deleted"
)

// Priority enumerates urgency levels driving the due-date policy.
type Priority string

const (
	PriorityUnset    Priority = ""
	PriorityToday    Priority = "Today"
	PriorityToday2   Priority = "Today 2"
	PriorityTomorrow Priority = "Tomorrow"
	PriorityTwoDays  Priority = "2 days"
)

// Status enumerates resolution states for tickets.
type Status string

const (
	StatusUnset             Status = ""
	StatusOpen              Status = "Open"
	StatusStarted           Status = "Started"
	StatusCompleted         Status = "Completed"
	StatusWaitingOnCustomer Status = "Waiting on Customer"
	StatusOnHold            Status = "On Hold"
	StatusGated             Status = "Gated"
)

// Communication enumerates customer-contact states.
type Communication string

const (
	CommunicationUnset             Communication = ""
	CommunicationInformed          Communication = "Informed Customer"
	CommunicationWaitingResponse   Communication = "Waiting for Customer Response"
	CommunicationOnHoldPerCustomer Communication = "On Hold as per Customer"
)

// Ticket is the sole aggregate: a trackable customer-service work item.
// DateEntered/TimeEntered are captured once at creation and never mutated.
// DueDate is derived from Priority by the lifecycle policy; it is never
// accepted from a caller.
type Ticket struct {
	ID                  int64
	DateEntered         string
	TimeEntered         string
	Communication       Communication
	EnteredBy           string
	AssignedTo          string
	FBACustomer         string
	InstructionsOrderID string
	Priority            Priority
	DueDate             string
	Status              Status
	Notes               string
}
