package history

import (
	"context"
	"crypto/sha256"
	"database/sql"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"

	"qlint/internal/render"
)

// ReportKey returns a stable SHA-256 fingerprint for a file result, so
// identical reports can be spotted across runs.
func ReportKey(result render.Result) (string, error) {
	payload, err := json.Marshal(result)
	if err != nil {
		return "", fmt.Errorf("canonicalize result: %w", err)
	}
	digest := sha256.Sum256(payload)
	return hex.EncodeToString(digest[:]), nil
}

// RecordRun appends one validated file to the history database and
// returns the generated run id. History is append-only.
func RecordRun(ctx context.Context, db *sql.DB, result render.Result) (string, error) {
	key, err := ReportKey(result)
	if err != nil {
		return "", err
	}
	runID := uuid.NewString()
	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return "", fmt.Errorf("begin history tx: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	summary := result.Report.Summary
	if _, err := tx.ExecContext(
		ctx,
		`INSERT INTO runs (run_id, created_at, file, report_key, questions, errors, warnings, pass)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		runID,
		time.Now().UTC(),
		result.File,
		key,
		summary.Records,
		summary.Errors,
		summary.Warnings,
		summary.Pass && result.LoadError == "",
	); err != nil {
		return "", fmt.Errorf("insert run: %w", err)
	}

	if result.LoadError != "" {
		if _, err := tx.ExecContext(
			ctx,
			`INSERT INTO issues (run_id, question_index, severity, message) VALUES (?, 0, 'error', ?)`,
			runID,
			result.LoadError,
		); err != nil {
			return "", fmt.Errorf("insert load error: %w", err)
		}
	}
	for _, record := range result.Report.Records {
		for _, message := range record.Errors {
			if err := insertIssue(ctx, tx, runID, record.Index, "error", message); err != nil {
				return "", err
			}
		}
		for _, message := range record.Warnings {
			if err := insertIssue(ctx, tx, runID, record.Index, "warning", message); err != nil {
				return "", err
			}
		}
	}

	if err := tx.Commit(); err != nil {
		return "", fmt.Errorf("commit history tx: %w", err)
	}
	return runID, nil
}

func insertIssue(ctx context.Context, tx *sql.Tx, runID string, index int, severity, message string) error {
	if _, err := tx.ExecContext(
		ctx,
		`INSERT INTO issues (run_id, question_index, severity, message) VALUES (?, ?, ?, ?)`,
		runID,
		index,
		severity,
		message,
	); err != nil {
		return fmt.Errorf("insert issue: %w", err)
	}
	return nil
}
