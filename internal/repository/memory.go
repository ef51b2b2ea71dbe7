package repository

import (
	"context"
	"sort"
	"sync"

	"github.com/jackc/pgx/v5"

	"github.com/trackops/ticket-tracker/internal/domain"
)

// memoryRepository keeps both collections in process memory. It backs the
// service when no POSTGRES_DSN is configured and doubles as the test store.
// The mutex serializes writers; per-id moves hold the lock for the whole
// move, so an id is never visible in both or neither collection.
type memoryRepository struct {
	mu      sync.Mutex
	nextID  int64
	active  map[int64]domain.Ticket
	deleted map[int64]domain.Ticket
}

// NewMemoryRepository returns an empty in-memory ticket store.
func NewMemoryRepository() TicketRepository {
	return &memoryRepository{
		nextID:  1,
		active:  make(map[int64]domain.Ticket),
		deleted: make(map[int64]domain.Ticket),
	}
}

func (r *memoryRepository) Create(_ context.Context, ticket *domain.Ticket) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	ticket.ID = r.nextID
	r.nextID++
	r.active[ticket.ID] = *ticket
	return nil
}

func (r *memoryRepository) Update(_ context.Context, id int64, patch domain.TicketPatch) error {
	if patch.IsEmpty() {
		return nil
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	ticket, ok := r.active[id]
	if !ok {
		return pgx.ErrNoRows
	}
	patch.Apply(&ticket)
	r.active[id] = ticket
	return nil
}

func (r *memoryRepository) Get(_ context.Context, collection domain.Collection, id int64) (*domain.Ticket, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	ticket, ok := r.collection(collection)[id]
	if !ok {
		return nil, pgx.ErrNoRows
	}
	return &ticket, nil
}

func (r *memoryRepository) SoftDelete(_ context.Context, ids []int64) (int64, error) {
	return r.move(ids, domain.CollectionActive, domain.CollectionDeleted), nil
}

func (r *memoryRepository) Recover(_ context.Context, ids []int64) (int64, error) {
	return r.move(ids, domain.CollectionDeleted, domain.CollectionActive), nil
}

func (r *memoryRepository) move(ids []int64, from, to domain.Collection) int64 {
	r.mu.Lock()
	defer r.mu.Unlock()

	src := r.collection(from)
	dst := r.collection(to)

	var count int64
	for _, id := range ids {
		ticket, ok := src[id]
		if !ok {
			continue
		}
		dst[id] = ticket
		delete(src, id)
		count++
	}
	return count
}

func (r *memoryRepository) List(_ context.Context, collection domain.Collection) ([]domain.Ticket, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	rows := r.collection(collection)
	result := make([]domain.Ticket, 0, len(rows))
	for _, ticket := range rows {
		result = append(result, ticket)
	}
	sort.Slice(result, func(i, j int) bool {
		return result[i].ID > result[j].ID
	})
	return result, nil
}

func (r *memoryRepository) collection(c domain.Collection) map[int64]domain.Ticket {
	if c == domain.CollectionDeleted {
		return r.deleted
	}
	return r.active
}
