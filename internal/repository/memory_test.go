package repository

import (
	"context"
	"testing"

	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/trackops/ticket-tracker/internal/domain"
)

func seedTicket(t *testing.T, repo TicketRepository, customer string) *domain.Ticket {
	t.Helper()
	ticket := &domain.Ticket{
		DateEntered: "01/10/2024",
		TimeEntered: "09:15 AM",
		EnteredBy:   "Sam",
		AssignedTo:  "Vinny",
		FBACustomer: customer,
		Priority:    domain.PriorityToday,
		DueDate:     "01/10/2024",
		Status:      domain.StatusOpen,
		Notes:       "initial note",
	}
	require.NoError(t, repo.Create(context.Background(), ticket))
	return ticket
}

func TestMemoryCreateAssignsMonotonicIDs(t *testing.T) {
	repo := NewMemoryRepository()

	first := seedTicket(t, repo, "Acme")
	second := seedTicket(t, repo, "Globex")

	assert.Equal(t, int64(1), first.ID)
	assert.Equal(t, int64(2), second.ID)
}

func TestMemoryListNewestFirst(t *testing.T) {
	repo := NewMemoryRepository()
	seedTicket(t, repo, "Acme")
	seedTicket(t, repo, "Globex")
	seedTicket(t, repo, "Initech")

	tickets, err := repo.List(context.Background(), domain.CollectionActive)
	require.NoError(t, err)
	require.Len(t, tickets, 3)
	assert.Equal(t, int64(3), tickets[0].ID)
	assert.Equal(t, int64(2), tickets[1].ID)
	assert.Equal(t, int64(1), tickets[2].ID)
}

func TestMemoryUpdateEmptyPatchIsNoOp(t *testing.T) {
	repo := NewMemoryRepository()
	ticket := seedTicket(t, repo, "Acme")

	require.NoError(t, repo.Update(context.Background(), ticket.ID, domain.TicketPatch{}))

	stored, err := repo.Get(context.Background(), domain.CollectionActive, ticket.ID)
	require.NoError(t, err)
	assert.Equal(t, *ticket, *stored)
}

func TestMemoryUpdateMissingID(t *testing.T) {
	repo := NewMemoryRepository()

	notes := "anything"
	err := repo.Update(context.Background(), 42, domain.TicketPatch{Notes: &notes})
	assert.ErrorIs(t, err, pgx.ErrNoRows)
}

func TestMemoryUpdateAppliesPartialFields(t *testing.T) {
	repo := NewMemoryRepository()
	ticket := seedTicket(t, repo, "Acme")

	status := domain.StatusCompleted
	notes := "done"
	require.NoError(t, repo.Update(context.Background(), ticket.ID, domain.TicketPatch{
		Status: &status,
		Notes:  &notes,
	}))

	stored, err := repo.Get(context.Background(), domain.CollectionActive, ticket.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.StatusCompleted, stored.Status)
	assert.Equal(t, "done", stored.Notes)
	// untouched fields survive
	assert.Equal(t, "Acme", stored.FBACustomer)
	assert.Equal(t, "01/10/2024", stored.DateEntered)
}

func TestMemorySoftDeleteSkipsMissingIDs(t *testing.T) {
	repo := NewMemoryRepository()
	for i := 0; i < 7; i++ {
		seedTicket(t, repo, "Acme")
	}

	count, err := repo.SoftDelete(context.Background(), []int64{7, 99})
	require.NoError(t, err)
	assert.Equal(t, int64(1), count)

	_, err = repo.Get(context.Background(), domain.CollectionActive, 7)
	assert.ErrorIs(t, err, pgx.ErrNoRows)

	moved, err := repo.Get(context.Background(), domain.CollectionDeleted, 7)
	require.NoError(t, err)
	assert.Equal(t, int64(7), moved.ID)
}

func TestMemoryDeleteRecoverRoundTrip(t *testing.T) {
	repo := NewMemoryRepository()
	ticket := seedTicket(t, repo, "Acme")

	count, err := repo.SoftDelete(context.Background(), []int64{ticket.ID})
	require.NoError(t, err)
	require.Equal(t, int64(1), count)

	count, err = repo.Recover(context.Background(), []int64{ticket.ID})
	require.NoError(t, err)
	require.Equal(t, int64(1), count)

	restored, err := repo.Get(context.Background(), domain.CollectionActive, ticket.ID)
	require.NoError(t, err)
	assert.Equal(t, *ticket, *restored)
}

func TestMemoryPartitionInvariant(t *testing.T) {
	repo := NewMemoryRepository()
	ctx := context.Background()

	var created []int64
	for i := 0; i < 5; i++ {
		created = append(created, seedTicket(t, repo, "Acme").ID)
	}

	_, err := repo.SoftDelete(ctx, []int64{1, 3})
	require.NoError(t, err)
	_, err = repo.Recover(ctx, []int64{3})
	require.NoError(t, err)
	_, err = repo.SoftDelete(ctx, []int64{3, 5, 77})
	require.NoError(t, err)

	active, err := repo.List(ctx, domain.CollectionActive)
	require.NoError(t, err)
	deleted, err := repo.List(ctx, domain.CollectionDeleted)
	require.NoError(t, err)

	seen := map[int64]int{}
	for _, ticket := range active {
		seen[ticket.ID]++
	}
	for _, ticket := range deleted {
		seen[ticket.ID]++
	}

	assert.Len(t, seen, len(created))
	for _, id := range created {
		assert.Equal(t, 1, seen[id], "id %d must live in exactly one collection", id)
	}
}

func TestMemoryRecoveredIDsNeverCollideWithNewTickets(t *testing.T) {
	repo := NewMemoryRepository()
	ctx := context.Background()

	first := seedTicket(t, repo, "Acme")
	_, err := repo.SoftDelete(ctx, []int64{first.ID})
	require.NoError(t, err)

	second := seedTicket(t, repo, "Globex")
	assert.NotEqual(t, first.ID, second.ID)

	_, err = repo.Recover(ctx, []int64{first.ID})
	require.NoError(t, err)

	third := seedTicket(t, repo, "Initech")
	assert.NotEqual(t, first.ID, third.ID)
	assert.NotEqual(t, second.ID, third.ID)
}
