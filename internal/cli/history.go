package cli

import (
	"context"
	"flag"
	"fmt"
	"io"
	"time"

	"qlint/internal/history"
)

// runHistory builds the handler for the history command.
func runHistory(cmd *Command) func(args []string, stdout, stderr io.Writer) int {
	return func(args []string, stdout, stderr io.Writer) int {
		if wantsHelp(args) {
			printCommandUsage(cmd, stdout)
			return ExitOK
		}

		cfg, err := loadToolConfig()
		if err != nil {
			fmt.Fprintf(stderr, "Config error: %v\n", err)
			return ExitError
		}

		flags := flag.NewFlagSet(cmd.Name, flag.ContinueOnError)
		flags.SetOutput(stderr)
		dbPath := flags.String("db", cfg.HistoryDB, "Path to the DuckDB history database")
		limit := flags.Int("limit", 20, "Maximum number of runs to list")
		if err := flags.Parse(args); err != nil {
			if err == flag.ErrHelp {
				printCommandUsage(cmd, stdout)
				return ExitOK
			}
			return ExitUsage
		}
		if *dbPath == "" {
			fmt.Fprintln(stderr, "Missing --db")
			printCommandUsage(cmd, stderr)
			return ExitUsage
		}

		db, err := history.Open(*dbPath)
		if err != nil {
			fmt.Fprintf(stderr, "Failed to open history: %v\n", err)
			return ExitError
		}
		defer db.Close()

		rows, err := history.ListRuns(context.Background(), db, *limit)
		if err != nil {
			fmt.Fprintf(stderr, "Failed to list runs: %v\n", err)
			return ExitError
		}
		if len(rows) == 0 {
			fmt.Fprintln(stdout, "No recorded runs.")
			return ExitOK
		}
		for _, row := range rows {
			verdict := "PASS"
			if !row.Pass {
				verdict = "FAIL"
			}
			fmt.Fprintf(stdout, "%s  %s  %s  %d question(s)  %d error(s)  %d warning(s)  %s\n",
				row.RunID[:8],
				row.CreatedAt.Format(time.RFC3339),
				row.File,
				row.Questions,
				row.Errors,
				row.Warnings,
				verdict,
			)
		}
		return ExitOK
	}
}
