package database

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
)

// Resource is a table-backed REST resource. The six CRUD route groups share
// one implementation parameterized by table name and writable column list;
// rows map to T via its db struct tags.
type Resource[T any] struct {
	Table   string
	Columns []string
	// Values returns the writable field values in Columns order.
	Values func(*T) []any
}

// List returns every row in the table, in store order.
func (r Resource[T]) List(ctx context.Context, q Querier) ([]T, error) {
	rows, err := q.Query(ctx, fmt.Sprintf(`SELECT * FROM %s`, r.Table))
	if err != nil {
		return nil, fmt.Errorf("listing %s: %w", r.Table, err)
	}
	items, err := pgx.CollectRows(rows, pgx.RowToStructByNameLax[T])
	if err != nil {
		return nil, fmt.Errorf("listing %s: %w", r.Table, err)
	}
	return items, nil
}

// Get returns the row with the given id, or ErrNotFound.
func (r Resource[T]) Get(ctx context.Context, q Querier, id int) (*T, error) {
	rows, err := q.Query(ctx, fmt.Sprintf(`SELECT * FROM %s WHERE id = $1`, r.Table), id)
	if err != nil {
		return nil, fmt.Errorf("fetching %s %d: %w", r.Table, id, err)
	}
	item, err := pgx.CollectOneRow(rows, pgx.RowToStructByNameLax[T])
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("fetching %s %d: %w", r.Table, id, err)
	}
	return &item, nil
}

// Create inserts a row and returns it with its generated id.
func (r Resource[T]) Create(ctx context.Context, q Querier, item *T) (*T, error) {
	rows, err := q.Query(ctx, r.insertSQL(), r.Values(item)...)
	if err != nil {
		return nil, fmt.Errorf("inserting into %s: %w", r.Table, err)
	}
	created, err := pgx.CollectOneRow(rows, pgx.RowToStructByNameLax[T])
	if err != nil {
		return nil, fmt.Errorf("inserting into %s: %w", r.Table, err)
	}
	return &created, nil
}

// Update replaces the full record and returns it, or ErrNotFound when no row
// matched the id.
func (r Resource[T]) Update(ctx context.Context, q Querier, id int, item *T) (*T, error) {
	args := append(r.Values(item), id)
	rows, err := q.Query(ctx, r.updateSQL(), args...)
	if err != nil {
		return nil, fmt.Errorf("updating %s %d: %w", r.Table, id, err)
	}
	updated, err := pgx.CollectOneRow(rows, pgx.RowToStructByNameLax[T])
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("updating %s %d: %w", r.Table, id, err)
	}
	return &updated, nil
}

// Delete removes the row with the given id. Deleting a missing id is not an
// error: delete is idempotent by contract.
func (r Resource[T]) Delete(ctx context.Context, q Querier, id int) error {
	if _, err := q.Exec(ctx, fmt.Sprintf(`DELETE FROM %s WHERE id = $1`, r.Table), id); err != nil {
		return fmt.Errorf("deleting %s %d: %w", r.Table, id, err)
	}
	return nil
}

func (r Resource[T]) insertSQL() string {
	placeholders := make([]string, len(r.Columns))
	for i := range r.Columns {
		placeholders[i] = fmt.Sprintf("$%d", i+1)
	}
	return fmt.Sprintf(`INSERT INTO %s (%s) VALUES (%s) RETURNING *`,
		r.Table, strings.Join(r.Columns, ", "), strings.Join(placeholders, ", "))
}

func (r Resource[T]) updateSQL() string {
	sets := make([]string, len(r.Columns))
	for i, col := range r.Columns {
		sets[i] = fmt.Sprintf("%s = $%d", col, i+1)
	}
	return fmt.Sprintf(`UPDATE %s SET %s WHERE id = $%d RETURNING *`,
		r.Table, strings.Join(sets, ", "), len(r.Columns)+1)
}
