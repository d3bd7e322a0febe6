package clock

import "time"

// Delay blocks the render loop between frames.
type Delay interface {
	Sleep(d time.Duration)
}

// TimerDelay sleeps for the requested duration or until Done is closed,
// whichever comes first.
type TimerDelay struct {
	Done <-chan struct{}
}

func (t TimerDelay) Sleep(d time.Duration) {
	if d <= 0 {
		return
	}
	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-timer.C:
	case <-t.Done:
	}
}
