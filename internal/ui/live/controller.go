package live

import (
	"io"
	"os"
	"sync"

	tea "github.com/charmbracelet/bubbletea"
)

// Controller runs the live UI and receives progress notifications from
// the check loop.
type Controller struct {
	events    chan Event
	program   *tea.Program
	done      chan struct{}
	closeOnce sync.Once
}

// Start launches a live UI controller that writes to stdout.
func Start(stdout io.Writer, opts Options) *Controller {
	if stdout == nil {
		stdout = os.Stdout
	}
	events := make(chan Event, 64)
	model := NewModel(events, opts)
	program := tea.NewProgram(model, tea.WithOutput(stdout))
	controller := &Controller{
		events:  events,
		program: program,
		done:    make(chan struct{}),
	}
	go func() {
		_, _ = program.Run()
		close(controller.done)
	}()
	return controller
}

// OnFileStart reports that a checkpoint file is about to be checked.
func (c *Controller) OnFileStart(file string, index, total int) {
	if c == nil {
		return
	}
	c.events <- Event{Kind: EventFileStart, File: file, Index: index, Total: total}
}

// OnFileDone reports the outcome for one checkpoint file.
func (c *Controller) OnFileDone(file string, errors, warnings int, failed bool) {
	if c == nil {
		return
	}
	c.events <- Event{Kind: EventFileDone, File: file, Errors: errors, Warnings: warnings, Failed: failed}
}

// Close signals the UI to stop.
func (c *Controller) Close() {
	if c == nil {
		return
	}
	c.closeOnce.Do(func() {
		close(c.events)
	})
}

// Wait blocks until the UI has exited.
func (c *Controller) Wait() {
	if c == nil {
		return
	}
	<-c.done
}
