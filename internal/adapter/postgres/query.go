package postgres

import (
	"context"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/georgysavva/scany/v2/pgxscan"
)

// SelectQuery is a paging.Query over a squirrel SELECT. Nothing runs until
// Count or Fetch is called; Count wraps the statement in a COUNT(*) sub-select
// and Fetch appends ORDER BY, OFFSET and LIMIT. Rows are scanned into R with
// scany and converted to T by mapRow.
type SelectQuery[R, T any] struct {
	db      Querier
	entity  string
	stmt    squirrel.SelectBuilder
	orderBy []string
	mapRow  func(R) T
}

// NewSelectQuery returns a query over stmt. stmt must not carry ORDER BY,
// OFFSET or LIMIT; orderBy is applied on Fetch only.
func NewSelectQuery[R, T any](db Querier, entity string, stmt squirrel.SelectBuilder, orderBy []string, mapRow func(R) T) *SelectQuery[R, T] {
	return &SelectQuery[R, T]{
		db:      db,
		entity:  entity,
		stmt:    stmt,
		orderBy: orderBy,
		mapRow:  mapRow,
	}
}

// Count returns the number of rows the statement selects.
func (q *SelectQuery[R, T]) Count(ctx context.Context) (int, error) {
	sql, args, err := Builder().Select("count(*)").FromSelect(q.stmt, "q").ToSql()
	if err != nil {
		return 0, fmt.Errorf("%s: build count: %w", q.entity, err)
	}

	var n int
	if err := QuerierFromCtx(ctx, q.db).QueryRow(ctx, sql, args...).Scan(&n); err != nil {
		return 0, MapError(err, q.entity, "count")
	}
	return n, nil
}

// Fetch returns at most limit rows starting at offset, in orderBy order.
func (q *SelectQuery[R, T]) Fetch(ctx context.Context, offset, limit int) ([]T, error) {
	if limit <= 0 {
		return []T{}, nil
	}

	stmt := q.stmt.OrderBy(q.orderBy...).Limit(uint64(limit))
	if offset > 0 {
		stmt = stmt.Offset(uint64(offset))
	}

	sql, args, err := stmt.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%s: build fetch: %w", q.entity, err)
	}

	var rows []R
	if err := pgxscan.Select(ctx, QuerierFromCtx(ctx, q.db), &rows, sql, args...); err != nil {
		return nil, MapError(err, q.entity, "fetch")
	}

	out := make([]T, len(rows))
	for i, r := range rows {
		out[i] = q.mapRow(r)
	}
	return out, nil
}
