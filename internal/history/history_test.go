package history

import (
	"context"
	"path/filepath"
	"testing"

	"qlint/internal/checkpoint"
	"qlint/internal/lint"
	"qlint/internal/render"
)

// TestRecordAndListRuns verifies a run roundtrips through the database.
func TestRecordAndListRuns(t *testing.T) {
	path := filepath.Join(t.TempDir(), "history.duckdb")
	db, err := Open(path)
	if err != nil {
		t.Fatalf("open history db: %v", err)
	}
	defer db.Close()

	report := lint.Validate([]checkpoint.Record{
		{Question: "Hi", HasQuestion: true, Choices: []string{"A"}, Answer: checkpoint.SingleAnswer("A"), Type: "regular"},
	})
	result := render.Result{File: "checkpoint.json", Report: report}

	runID, err := RecordRun(context.Background(), db, result)
	if err != nil {
		t.Fatalf("record run: %v", err)
	}
	if runID == "" {
		t.Fatalf("expected a run id")
	}

	rows, err := ListRuns(context.Background(), db, 10)
	if err != nil {
		t.Fatalf("list runs: %v", err)
	}
	if len(rows) != 1 {
		t.Fatalf("expected 1 run, got %d", len(rows))
	}
	run := rows[0]
	if run.RunID != runID || run.File != "checkpoint.json" {
		t.Fatalf("unexpected run row: %+v", run)
	}
	if run.Questions != 1 || run.Errors != 1 || run.Warnings != 0 || run.Pass {
		t.Fatalf("unexpected counts: %+v", run)
	}

	var issues int
	if err := db.QueryRow(`SELECT count(*) FROM issues WHERE run_id = ?`, runID).Scan(&issues); err != nil {
		t.Fatalf("count issues: %v", err)
	}
	if issues != 1 {
		t.Fatalf("expected 1 issue row, got %d", issues)
	}
}

// TestRecordLoadErrorRun verifies load failures are recorded as failing runs.
func TestRecordLoadErrorRun(t *testing.T) {
	path := filepath.Join(t.TempDir(), "history.duckdb")
	db, err := Open(path)
	if err != nil {
		t.Fatalf("open history db: %v", err)
	}
	defer db.Close()

	result := render.Result{File: "broken.json", LoadError: "Error loading checkpoint: parse json: bad"}
	if _, err := RecordRun(context.Background(), db, result); err != nil {
		t.Fatalf("record run: %v", err)
	}

	rows, err := ListRuns(context.Background(), db, 10)
	if err != nil {
		t.Fatalf("list runs: %v", err)
	}
	if len(rows) != 1 || rows[0].Pass {
		t.Fatalf("expected one failing run, got %+v", rows)
	}
}

// TestReportKeyIsStable verifies identical results fingerprint identically.
func TestReportKeyIsStable(t *testing.T) {
	report := lint.Validate([]checkpoint.Record{
		{Question: "What color?", HasQuestion: true, Choices: []string{"Red"}, Answer: checkpoint.SingleAnswer("Red"), Type: "regular"},
	})
	result := render.Result{File: "checkpoint.json", Report: report}
	first, err := ReportKey(result)
	if err != nil {
		t.Fatalf("report key: %v", err)
	}
	second, err := ReportKey(result)
	if err != nil {
		t.Fatalf("report key: %v", err)
	}
	if first != second {
		t.Fatalf("expected stable key, got %q and %q", first, second)
	}
	other, err := ReportKey(render.Result{File: "other.json", Report: report})
	if err != nil {
		t.Fatalf("report key: %v", err)
	}
	if other == first {
		t.Fatalf("expected different files to produce different keys")
	}
}
