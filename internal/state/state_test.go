package state

import (
	"errors"
	"sync"
	"testing"
	"time"
)

func TestStore_Lifecycle(t *testing.T) {
	store := NewStore()
	if got := store.Snapshot().Phase; got != INITIALIZING {
		t.Fatalf("initial phase = %v", got)
	}
	store.SetPhase(RENDERING)

	store.RecordFailure(errors.New("bus fault"))
	snap := store.Snapshot()
	if snap.Failures != 1 || snap.Err != "bus fault" {
		t.Errorf("after failure: %+v", snap)
	}

	at := time.Date(2026, 10, 19, 3, 0, 0, 0, time.UTC)
	store.RecordFrame(FrameInfo{At: at, Hour: 3, Label: "03:00:00"})
	snap = store.Snapshot()
	if snap.Frames != 1 || snap.Err != "" || snap.Last.Label != "03:00:00" || !snap.Last.At.Equal(at) {
		t.Errorf("after frame: %+v", snap)
	}
	if snap.Phase.String() != "rendering" {
		t.Errorf("phase string = %q", snap.Phase.String())
	}

	store.RecordFailure(nil)
	if store.Snapshot().Failures != 1 {
		t.Errorf("nil error counted as failure")
	}
}

func TestStore_ConcurrentReaders(t *testing.T) {
	store := NewStore()
	var wg sync.WaitGroup
	for i := 0; i < 4; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 100; j++ {
				_ = store.Snapshot()
			}
		}()
	}
	for i := 0; i < 100; i++ {
		store.RecordFrame(FrameInfo{Second: i % 60})
	}
	wg.Wait()
	if got := store.Snapshot().Frames; got != 100 {
		t.Errorf("frames = %d, want 100", got)
	}
}
