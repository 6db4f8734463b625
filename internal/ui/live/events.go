package live

// EventKind identifies the type of live UI event.
type EventKind int

const (
	// EventFileStart signals that a checkpoint file is being checked.
	EventFileStart EventKind = iota
	// EventFileDone delivers the outcome for one checkpoint file.
	EventFileDone
)

// Event carries a UI update payload.
type Event struct {
	Kind     EventKind
	File     string
	Index    int
	Total    int
	Errors   int
	Warnings int
	Failed   bool
}

// State is the accumulated UI state for one check batch.
type State struct {
	CurrentFile string
	Index       int
	Total       int
	Done        int
	Errors      int
	Warnings    int
	FailedFiles []string
}

// apply folds an event into the state.
func apply(state State, event Event) State {
	switch event.Kind {
	case EventFileStart:
		state.CurrentFile = event.File
		state.Index = event.Index
		state.Total = event.Total
	case EventFileDone:
		state.Done++
		state.Errors += event.Errors
		state.Warnings += event.Warnings
		if event.Failed {
			state.FailedFiles = append(state.FailedFiles, event.File)
		}
	}
	return state
}
