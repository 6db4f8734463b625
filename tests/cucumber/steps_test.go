package cucumber

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/cucumber/godog"

	"qlint/internal/cli"
)

// checkState carries per-scenario state for the linter steps.
type checkState struct {
	dir      string
	file     string
	exitCode int
	stdout   bytes.Buffer
	stderr   bytes.Buffer
}

func (state *checkState) aCheckpointFileContaining(doc *godog.DocString) error {
	state.file = filepath.Join(state.dir, "checkpoint.json")
	return os.WriteFile(state.file, []byte(doc.Content), 0o644)
}

func (state *checkState) iRunTheLinter() error {
	if state.file == "" {
		return fmt.Errorf("no checkpoint file was written")
	}
	state.stdout.Reset()
	state.stderr.Reset()
	state.exitCode = cli.Run([]string{state.file}, &state.stdout, &state.stderr)
	return nil
}

func (state *checkState) theExitCodeIs(code int) error {
	if state.exitCode != code {
		return fmt.Errorf("expected exit code %d, got %d (stderr: %s)", code, state.exitCode, state.stderr.String())
	}
	return nil
}

func (state *checkState) theOutputContains(snippet string) error {
	if !strings.Contains(state.stdout.String(), snippet) {
		return fmt.Errorf("expected output to contain %q, got:\n%s", snippet, state.stdout.String())
	}
	return nil
}

// InitializeScenario wires the linter steps into a godog scenario.
func InitializeScenario(ctx *godog.ScenarioContext) {
	state := &checkState{}

	ctx.Before(func(c context.Context, _ *godog.Scenario) (context.Context, error) {
		dir, err := os.MkdirTemp("", "qlint-cucumber-*")
		if err != nil {
			return c, err
		}
		*state = checkState{dir: dir}
		return c, nil
	})
	ctx.After(func(c context.Context, _ *godog.Scenario, err error) (context.Context, error) {
		if state.dir != "" {
			_ = os.RemoveAll(state.dir)
		}
		return c, err
	})

	ctx.Step(`^a checkpoint file containing:$`, state.aCheckpointFileContaining)
	ctx.Step(`^I run the linter on the file$`, state.iRunTheLinter)
	ctx.Step(`^the exit code is (\d+)$`, state.theExitCodeIs)
	ctx.Step(`^the output contains "([^"]*)"$`, state.theOutputContains)
}
