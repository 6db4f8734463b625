package live

import (
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// Model renders check progress using Bubble Tea.
type Model struct {
	state   State
	spinner spinner.Model
	events  <-chan Event
	noColor bool
}

// Options configures the live UI model.
type Options struct {
	NoColor bool
}

// NewModel constructs a live UI model for an event stream.
func NewModel(events <-chan Event, opts Options) Model {
	s := spinner.New()
	s.Spinner = spinner.Dot
	if !opts.NoColor {
		s.Style = lipgloss.NewStyle().Foreground(lipgloss.Color("33"))
	}
	return Model{
		state:   State{},
		spinner: s,
		events:  events,
		noColor: opts.NoColor,
	}
}

// Init starts the spinner and waits for the first event.
func (m Model) Init() tea.Cmd {
	return tea.Batch(waitForEvent(m.events), m.spinner.Tick)
}

// Update consumes UI events and spinner ticks.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch typed := msg.(type) {
	case EventMsg:
		m.state = apply(m.state, typed.Event)
		return m, waitForEvent(m.events)
	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(typed)
		return m, cmd
	}
	return m, nil
}

// View renders the live UI.
func (m Model) View() string {
	header := m.spinner.View() + renderProgress(m.state)
	counts := renderCounts(m.state, m.noColor)
	failed := renderFailed(m.state, m.noColor)
	return lipgloss.JoinVertical(lipgloss.Left, header, counts, failed)
}

// EventMsg wraps a UI event for Bubble Tea.
type EventMsg struct {
	Event Event
}

// waitForEvent blocks until a UI event is available.
func waitForEvent(events <-chan Event) tea.Cmd {
	return func() tea.Msg {
		if events == nil {
			return nil
		}
		event, ok := <-events
		if !ok {
			return tea.Quit()
		}
		return EventMsg{Event: event}
	}
}
