package query

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/trackops/ticket-tracker/internal/domain"
)

// MatchAll is the sentinel a selector sends when a dropdown filter is
// unconstrained.
const MatchAll = "All"

// Criteria captures dashboard filter input. Blank or MatchAll on the
// exact-match fields means no constraint. Search is matched
// case-insensitively as a substring against every field of a ticket.
type Criteria struct {
	Assignee string
	Status   string
	Priority string
	Search   string
}

// Filter returns the tickets surviving all criteria, preserving input
// order. Predicates compose with logical AND and commute.
func Filter(tickets []domain.Ticket, c Criteria) []domain.Ticket {
	search := strings.ToLower(strings.TrimSpace(c.Search))

	out := make([]domain.Ticket, 0, len(tickets))
	for _, t := range tickets {
		if !matchExact(c.Assignee, t.AssignedTo) {
			continue
		}
		if !matchExact(c.Status, string(t.Status)) {
			continue
		}
		if !matchExact(c.Priority, string(t.Priority)) {
			continue
		}
		if search != "" && !matchSearch(t, search) {
			continue
		}
		out = append(out, t)
	}
	return out
}

func matchExact(want, got string) bool {
	return want == "" || want == MatchAll || want == got
}

func matchSearch(t domain.Ticket, search string) bool {
	for _, field := range searchFields(t) {
		if strings.Contains(strings.ToLower(field), search) {
			return true
		}
	}
	return false
}

// searchFields enumerates the string representation of every ticket field.
// Kept as an explicit list so the search surface is typed and reproducible.
func searchFields(t domain.Ticket) []string {
	return []string{
		strconv.FormatInt(t.ID, 10),
		t.DateEntered,
		t.TimeEntered,
		string(t.Communication),
		t.EnteredBy,
		t.AssignedTo,
		t.FBACustomer,
		t.InstructionsOrderID,
		string(t.Priority),
		t.DueDate,
		string(t.Status),
		t.Notes,
	}
}

// Label renders the bulk-selection display string for a ticket.
func Label(t domain.Ticket) string {
	return fmt.Sprintf("#%d • %s • %s", t.ID, t.FBACustomer, t.Status)
}

// LabelIndex maps ticket ids to their selection labels so callers never
// have to parse a formatted label back apart.
func LabelIndex(tickets []domain.Ticket) map[int64]string {
	index := make(map[int64]string, len(tickets))
	for _, t := range tickets {
		index[t.ID] = Label(t)
	}
	return index
}

// ResolveSelection maps selection labels back to ticket ids. Unknown labels
// are skipped, duplicates collapse, and label order is kept. An empty
// result is a reported condition for the caller, not an error.
func ResolveSelection(labels []string, tickets []domain.Ticket) []int64 {
	byLabel := make(map[string]int64, len(tickets))
	for _, t := range tickets {
		byLabel[Label(t)] = t.ID
	}

	ids := make([]int64, 0, len(labels))
	seen := make(map[int64]bool, len(labels))
	for _, label := range labels {
		id, ok := byLabel[label]
		if !ok || seen[id] {
			continue
		}
		seen[id] = true
		ids = append(ids, id)
	}
	return ids
}
