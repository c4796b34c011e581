package recommend

import "sync"

// Session status values for the report lifecycle.
const (
	StatusInit    = "init"
	StatusLoading = "loading"
	StatusReady   = "ready"
	StatusError   = "error"
)

// ReportState is the renderer-facing snapshot of one session's report.
// The error state keeps the empty full-mode shape so the renderer's branch
// logic stays binary.
type ReportState struct {
	Status       string            `json:"status"`
	ReportMode   string            `json:"reportMode"`
	Sections     []CategorySection `json:"sections"`
	SingleReport *SingleReport     `json:"singleReport,omitempty"`
	Error        string            `json:"error,omitempty"`
}

func initialState() ReportState {
	return ReportState{Status: StatusInit, ReportMode: "full", Sections: []CategorySection{}}
}

func emptyFullState(status, errMsg string) ReportState {
	return ReportState{
		Status:     status,
		ReportMode: "full",
		Sections:   []CategorySection{},
		Error:      errMsg,
	}
}

type sessionEntry struct {
	issued  uint64
	applied uint64
	state   ReportState
}

// SessionTracker holds per-session report state and fences overlapping
// refreshes with a monotonic sequence: a response older than the last one
// applied is discarded instead of racing last-response-wins.
type SessionTracker struct {
	mu       sync.Mutex
	sessions map[string]*sessionEntry
}

// NewSessionTracker constructs a SessionTracker.
func NewSessionTracker() *SessionTracker {
	return &SessionTracker{sessions: make(map[string]*sessionEntry)}
}

// Begin marks the session as loading and returns the refresh sequence number
// the eventual response must present to be applied.
func (t *SessionTracker) Begin(sessionID string) uint64 {
	t.mu.Lock()
	defer t.mu.Unlock()
	entry := t.entryLocked(sessionID)
	entry.issued++
	entry.state.Status = StatusLoading
	return entry.issued
}

// Apply installs the state for the given refresh sequence. It reports false
// and leaves the session untouched when a newer refresh already applied.
func (t *SessionTracker) Apply(sessionID string, seq uint64, state ReportState) bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	entry := t.entryLocked(sessionID)
	if seq <= entry.applied {
		return false
	}
	entry.applied = seq
	entry.state = state
	return true
}

// State returns the session's current snapshot, or the initial state for an
// unseen session.
func (t *SessionTracker) State(sessionID string) ReportState {
	t.mu.Lock()
	defer t.mu.Unlock()
	entry, ok := t.sessions[sessionID]
	if !ok {
		return initialState()
	}
	return entry.state
}

func (t *SessionTracker) entryLocked(sessionID string) *sessionEntry {
	entry, ok := t.sessions[sessionID]
	if !ok {
		entry = &sessionEntry{state: initialState()}
		t.sessions[sessionID] = entry
	}
	return entry
}
