package cli

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"

	"qlint/internal/checkpoint"
	"qlint/internal/history"
	"qlint/internal/lint"
	"qlint/internal/render"
	"qlint/internal/ui/live"
)

// runCheck builds the handler for the check command.
func runCheck(cmd *Command) func(args []string, stdout, stderr io.Writer) int {
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
		format := flags.String("format", cfg.Format, "Output format: text or json")
		colorMode := flags.String("color", cfg.Color, "Color mode: auto, always, or never")
		uiMode := flags.String("ui", cfg.UI, "Progress UI: auto, live, or plain")
		htmlPath := flags.String("html", "", "Write an HTML report to this path")
		dbPath := flags.String("db", cfg.HistoryDB, "Append the run to a DuckDB history database")
		if err := flags.Parse(args); err != nil {
			if err == flag.ErrHelp {
				printCommandUsage(cmd, stdout)
				return ExitOK
			}
			return ExitUsage
		}

		files := flags.Args()
		if len(files) == 0 {
			fmt.Fprintln(stderr, "Missing checkpoint file argument")
			printCommandUsage(cmd, stderr)
			return ExitError
		}
		if *format != "text" && *format != "json" {
			fmt.Fprintf(stderr, "invalid format %q (expected text|json)\n", *format)
			return ExitUsage
		}
		color, err := resolveColor(*colorMode, stdout)
		if err != nil {
			fmt.Fprintln(stderr, err)
			return ExitUsage
		}
		useLive, warning, err := resolveUIMode(*uiMode, len(files), stdout)
		if err != nil {
			fmt.Fprintln(stderr, err)
			return ExitUsage
		}
		if *format == "json" {
			useLive = false
		}
		if warning != "" {
			fmt.Fprintln(stderr, warning)
		}

		var controller *live.Controller
		if useLive {
			controller = live.Start(stdout, live.Options{NoColor: !color})
		}
		results := make([]render.Result, 0, len(files))
		for i, file := range files {
			controller.OnFileStart(file, i+1, len(files))
			result := checkFile(file)
			summary := result.Report.Summary
			controller.OnFileDone(file, summary.Errors, summary.Warnings, result.Failed())
			results = append(results, result)
		}
		controller.Close()
		controller.Wait()

		if *format == "json" {
			if err := render.WriteJSON(stdout, results); err != nil {
				fmt.Fprintf(stderr, "Failed to write JSON output: %v\n", err)
				return ExitError
			}
		} else {
			for i, result := range results {
				if i > 0 {
					fmt.Fprintln(stdout)
				}
				render.WriteText(stdout, result, render.TextOptions{NoColor: !color})
			}
		}

		if *htmlPath != "" {
			html, err := render.BuildReportHTML(results)
			if err == nil {
				err = os.WriteFile(*htmlPath, []byte(html), 0o644)
			}
			if err != nil {
				fmt.Fprintf(stderr, "Failed to write HTML report: %v\n", err)
				return ExitError
			}
			fmt.Fprintf(stdout, "HTML report written to %s\n", *htmlPath)
		}
		if *dbPath != "" {
			if err := recordResults(*dbPath, results); err != nil {
				fmt.Fprintf(stderr, "Failed to record history: %v\n", err)
				return ExitError
			}
		}

		for _, result := range results {
			if result.Failed() {
				return ExitError
			}
		}
		return ExitOK
	}
}

// checkFile loads and validates one checkpoint file. Load failures
// become a per-file load error; they never abort the batch.
func checkFile(path string) render.Result {
	if _, err := os.Stat(path); err != nil {
		return render.Result{File: path, LoadError: fmt.Sprintf("Checkpoint file not found: %s", path)}
	}
	records, err := checkpoint.Load(path)
	if err != nil {
		return render.Result{File: path, LoadError: fmt.Sprintf("Error loading checkpoint: %v", err)}
	}
	return render.Result{File: path, Report: lint.Validate(records)}
}

func recordResults(dbPath string, results []render.Result) error {
	db, err := history.Open(dbPath)
	if err != nil {
		return err
	}
	defer db.Close()
	ctx := context.Background()
	for _, result := range results {
		if _, err := history.RecordRun(ctx, db, result); err != nil {
			return err
		}
	}
	return nil
}
