package history

import (
	"context"
	"database/sql"
	"fmt"
	"time"
)

// RunRow is one recorded run as listed by the history command.
type RunRow struct {
	RunID     string
	CreatedAt time.Time
	File      string
	Questions int
	Errors    int
	Warnings  int
	Pass      bool
}

// ListRuns returns the most recent runs, newest first.
func ListRuns(ctx context.Context, db *sql.DB, limit int) ([]RunRow, error) {
	if limit <= 0 {
		limit = 20
	}
	rows, err := db.QueryContext(
		ctx,
		`SELECT run_id, created_at, file, questions, errors, warnings, pass
		 FROM runs ORDER BY created_at DESC LIMIT ?`,
		limit,
	)
	if err != nil {
		return nil, fmt.Errorf("query runs: %w", err)
	}
	defer rows.Close()

	var out []RunRow
	for rows.Next() {
		var row RunRow
		if err := rows.Scan(&row.RunID, &row.CreatedAt, &row.File, &row.Questions, &row.Errors, &row.Warnings, &row.Pass); err != nil {
			return nil, fmt.Errorf("scan run: %w", err)
		}
		out = append(out, row)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate runs: %w", err)
	}
	return out, nil
}
