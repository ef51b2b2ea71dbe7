package domain

// Roster carries the enum sets the tracker operates over. The lists are
// configuration data injected at startup rather than hard-coded constants,
// so tests can run against synthetic rosters.
type Roster struct {
	Users          []string
	Statuses       []Status
	Priorities     []Priority
	Communications []Communication
}

// DefaultRoster returns the production enum sets.
func DefaultRoster() Roster {
	return Roster{
		Users: []string{"Sam", "Vinny", "Daiana", "Flora", "Geetika", "Dharminder", "Graciela", "Ashu"},
		Statuses: []Status{
			StatusOpen,
			StatusStarted,
			StatusCompleted,
			StatusWaitingOnCustomer,
			StatusOnHold,
			StatusGated,
		},
		Priorities: []Priority{
			PriorityToday,
			PriorityToday2,
			PriorityTomorrow,
			PriorityTwoDays,
		},
		Communications: []Communication{
			CommunicationInformed,
			CommunicationWaitingResponse,
			CommunicationOnHoldPerCustomer,
		},
	}
}

// HasUser reports whether name is a roster member.
func (r Roster) HasUser(name string) bool {
	for _, u := range r.Users {
		if u == name {
			return true
		}
	}
	return false
}

// HasStatus reports whether s is a declared status.
func (r Roster) HasStatus(s Status) bool {
	for _, candidate := range r.Statuses {
		if candidate == s {
			return true
		}
	}
	return false
}

// HasPriority reports whether p is a declared priority.
func (r Roster) HasPriority(p Priority) bool {
	for _, candidate := range r.Priorities {
		if candidate == p {
			return true
		}
	}
	return false
}

// HasCommunication reports whether c is a declared communication mode.
func (r Roster) HasCommunication(c Communication) bool {
	for _, candidate := range r.Communications {
		if candidate == c {
			return true
		}
	}
	return false
}
