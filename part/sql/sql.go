// Package sql loads upstream collections from database/sql query results,
// so relational tables can back a dataset build.
package sql

import (
	"context"
	"database/sql"

	"github.com/lguimbarda/min-part/part/core"
	"github.com/lguimbarda/min-part/part/upstream"
)

// Scanner converts one result row into an upstream key-value pair.
type Scanner[K comparable, V any] func(*sql.Rows) (K, V, error)

// Load executes the query and materializes the result rows into an
// upstream collection, preserving result order. The query should impose a
// deterministic ORDER BY so repeated builds see the same order. Query or
// scan errors surface here, keeping the returned source's iteration pure.
func Load[K comparable, V any](ctx context.Context, db *sql.DB, query string, scan Scanner[K, V], args ...any) (*upstream.Slice[K, V], error) {
	rows, err := db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var entries []core.Entry[K, V]
	for rows.Next() {
		k, v, err := scan(rows)
		if err != nil {
			return nil, err
		}
		entries = append(entries, core.Entry[K, V]{Key: k, Value: v})
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	return upstream.NewSlice(entries), nil
}
