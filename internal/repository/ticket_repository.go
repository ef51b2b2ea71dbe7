package repository

import (
	"context"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/trackops/ticket-tracker/internal/domain"
)

const ticketColumns = `id, date_entered, time_entered, communication, entered_by, assigned_to,
               fba_customer, instructions_order_id, priority, due_date, status, notes`

// TicketRepository encapsulates ticket persistence. Implementations own the
// active and deleted collections exclusively; every mutation is committed
// before the call returns.
type TicketRepository interface {
	Create(ctx context.Context, ticket *domain.Ticket) error
	Update(ctx context.Context, id int64, patch domain.TicketPatch) error
	Get(ctx context.Context, collection domain.Collection, id int64) (*domain.Ticket, error)
	// SoftDelete moves each listed id from active to deleted, whole row,
	// all-or-nothing per id. Missing ids are skipped. Returns the number
	// of rows actually moved.
	SoftDelete(ctx context.Context, ids []int64) (int64, error)
	// Recover is the symmetric inverse of SoftDelete.
	Recover(ctx context.Context, ids []int64) (int64, error)
	// List returns every row of a collection, most recently created first.
	List(ctx context.Context, collection domain.Collection) ([]domain.Ticket, error)
}

type ticketRepository struct {
	pool *pgxpool.Pool
}

// NewTicketRepository instantiates the Postgres-backed repository.
func NewTicketRepository(pool *pgxpool.Pool) TicketRepository {
	return &ticketRepository{pool: pool}
}

func tableFor(collection domain.Collection) string {
	if collection == domain.CollectionDeleted {
		return "deleted_tickets"
	}
	return "active_tickets"
}

func (r *ticketRepository) Create(ctx context.Context, ticket *domain.Ticket) error {
	const query = `
        INSERT INTO active_tickets (date_entered, time_entered, communication, entered_by, assigned_to,
            fba_customer, instructions_order_id, priority, due_date, status, notes)
        VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11)
        RETURNING id`
	return r.pool.QueryRow(ctx, query,
		ticket.DateEntered,
		ticket.TimeEntered,
		ticket.Communication,
		ticket.EnteredBy,
		ticket.AssignedTo,
		ticket.FBACustomer,
		ticket.InstructionsOrderID,
		ticket.Priority,
		ticket.DueDate,
		ticket.Status,
		ticket.Notes,
	).Scan(&ticket.ID)
}

func (r *ticketRepository) Update(ctx context.Context, id int64, patch domain.TicketPatch) error {
	sets := []string{}
	args := []any{}

	appendSet := func(column string, value any) {
		args = append(args, value)
		sets = append(sets, fmt.Sprintf("%s=$%d", column, len(args)))
	}

	if patch.Communication != nil {
		appendSet("communication", *patch.Communication)
	}
	if patch.EnteredBy != nil {
		appendSet("entered_by", *patch.EnteredBy)
	}
	if patch.AssignedTo != nil {
		appendSet("assigned_to", *patch.AssignedTo)
	}
	if patch.FBACustomer != nil {
		appendSet("fba_customer", *patch.FBACustomer)
	}
	if patch.InstructionsOrderID != nil {
		appendSet("instructions_order_id", *patch.InstructionsOrderID)
	}
	if patch.Priority != nil {
		appendSet("priority", *patch.Priority)
	}
	if patch.DueDate != nil {
		appendSet("due_date", *patch.DueDate)
	}
	if patch.Status != nil {
		appendSet("status", *patch.Status)
	}
	if patch.Notes != nil {
		appendSet("notes", *patch.Notes)
	}

	if len(sets) == 0 {
		return nil
	}

	args = append(args, id)
	query := fmt.Sprintf("UPDATE active_tickets SET %s WHERE id=$%d",
		strings.Join(sets, ", "), len(args))

	cmd, err := r.pool.Exec(ctx, query, args...)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

func (r *ticketRepository) Get(ctx context.Context, collection domain.Collection, id int64) (*domain.Ticket, error) {
	query := fmt.Sprintf("SELECT %s FROM %s WHERE id=$1", ticketColumns, tableFor(collection))
	var ticket domain.Ticket
	if err := r.pool.QueryRow(ctx, query, id).Scan(
		&ticket.ID,
		&ticket.DateEntered,
		&ticket.TimeEntered,
		&ticket.Communication,
		&ticket.EnteredBy,
		&ticket.AssignedTo,
		&ticket.FBACustomer,
		&ticket.InstructionsOrderID,
		&ticket.Priority,
		&ticket.DueDate,
		&ticket.Status,
		&ticket.Notes,
	); err != nil {
		return nil, err
	}
	return &ticket, nil
}

func (r *ticketRepository) SoftDelete(ctx context.Context, ids []int64) (int64, error) {
	return r.move(ctx, ids, "active_tickets", "deleted_tickets")
}

func (r *ticketRepository) Recover(ctx context.Context, ids []int64) (int64, error) {
	return r.move(ctx, ids, "deleted_tickets", "active_tickets")
}

// move relocates whole rows between the two collections. The single
// DELETE ... RETURNING feeding an INSERT makes each id's move atomic; ids
// move independently of each other, so a failure mid-set leaves earlier
// moves committed and the failing id untouched.
func (r *ticketRepository) move(ctx context.Context, ids []int64, from, to string) (int64, error) {
	if len(ids) == 0 {
		return 0, nil
	}

	query := fmt.Sprintf(`
        WITH moved AS (
            DELETE FROM %s WHERE id=$1
            RETURNING %s
        )
        INSERT INTO %s SELECT * FROM moved`, from, ticketColumns, to)

	var count int64
	for _, id := range ids {
		cmd, err := r.pool.Exec(ctx, query, id)
		if err != nil {
			return count, err
		}
		count += cmd.RowsAffected()
	}
	return count, nil
}

func (r *ticketRepository) List(ctx context.Context, collection domain.Collection) ([]domain.Ticket, error) {
	query := fmt.Sprintf("SELECT %s FROM %s ORDER BY id DESC", ticketColumns, tableFor(collection))
	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanTickets(rows)
}

func scanTickets(rows pgx.Rows) ([]domain.Ticket, error) {
	var result []domain.Ticket
	for rows.Next() {
		var ticket domain.Ticket
		if err := rows.Scan(
			&ticket.ID,
			&ticket.DateEntered,
			&ticket.TimeEntered,
			&ticket.Communication,
			&ticket.EnteredBy,
			&ticket.AssignedTo,
			&ticket.FBACustomer,
			&ticket.InstructionsOrderID,
			&ticket.Priority,
			&ticket.DueDate,
			&ticket.Status,
			&ticket.Notes,
		); err != nil {
			return nil, err
		}
		result = append(result, ticket)
	}
	return result, rows.Err()
}
