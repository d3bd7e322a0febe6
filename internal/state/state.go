package state

import (
	"sync"
	"time"
)

type Phase int

const (
	INITIALIZING Phase = iota
	RENDERING
	STOPPED
)

func (p Phase) String() string {
	switch p {
	case INITIALIZING:
		return "initializing"
	case RENDERING:
		return "rendering"
	case STOPPED:
		return "stopped"
	}
	return "unknown"
}

// FrameInfo describes the most recently presented frame.
type FrameInfo struct {
	At     time.Time
	Hour   int
	Minute int
	Second int
	Label  string
}

type State struct {
	Phase    Phase
	Frames   uint64
	Failures uint64
	Last     FrameInfo
	Err      string
}

// Store is shared between the render loop and status readers.
type Store struct {
	mu    sync.RWMutex
	state State
}

func NewStore() *Store {
	return &Store{state: State{Phase: INITIALIZING}}
}

func (store *Store) Snapshot() State {
	store.mu.RLock()
	defer store.mu.RUnlock()
	return store.state
}

func (store *Store) SetPhase(phase Phase) {
	store.mu.Lock()
	store.state.Phase = phase
	store.mu.Unlock()
}

// RecordFrame counts a successful frame and clears the last error.
func (store *Store) RecordFrame(frame FrameInfo) {
	store.mu.Lock()
	store.state.Frames++
	store.state.Last = frame
	store.state.Err = ""
	store.mu.Unlock()
}

func (store *Store) RecordFailure(err error) {
	if err == nil {
		return
	}
	store.mu.Lock()
	store.state.Failures++
	store.state.Err = err.Error()
	store.mu.Unlock()
}
