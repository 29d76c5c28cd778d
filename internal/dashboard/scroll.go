package dashboard

import (
	"context"
	"sync"
	"time"
)

// ScrollTask is a delayed scroll that can be cancelled or awaited.
// The scroll runs on the goroutine that awaits the task, holding guard.
type ScrollTask struct {
	timer     *time.Timer
	cancelled chan struct{}
	once      sync.Once
	guard     sync.Locker
	run       func() bool
}

type noLock struct{}

func (noLock) Lock()   {}
func (noLock) Unlock() {}

func newScrollTask(delay time.Duration, guard sync.Locker, run func() bool) *ScrollTask {
	if guard == nil {
		guard = noLock{}
	}
	return &ScrollTask{
		timer:     time.NewTimer(delay),
		cancelled: make(chan struct{}),
		guard:     guard,
		run:       run,
	}
}

// Cancel stops the task. Cancelling a finished task has no effect.
func (t *ScrollTask) Cancel() {
	if t == nil {
		return
	}
	t.once.Do(func() {
		t.timer.Stop()
		close(t.cancelled)
	})
}

// Wait blocks until the delay elapses and then performs the scroll.
// It returns true only when the scroll actually happened; a cancelled task,
// a done context, or a viewport above the breakpoint all yield false.
func (t *ScrollTask) Wait(ctx context.Context) bool {
	if t == nil {
		return false
	}
	select {
	case <-t.cancelled:
		return false
	case <-ctx.Done():
		t.Cancel()
		return false
	case <-t.timer.C:
	}

	t.guard.Lock()
	defer t.guard.Unlock()

	select {
	case <-t.cancelled:
		return false
	default:
	}
	performed := t.run()
	t.once.Do(func() { close(t.cancelled) })
	return performed
}
