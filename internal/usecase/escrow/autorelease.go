package escrow

import (
	"context"
	"sync"
	"time"
)

// DefaultAutoReleaseDelay is how long funds sit in escrow before being
// paid out without manual action.
const DefaultAutoReleaseDelay = 48 * time.Hour

// AutoRelease is a cancellable handle for a scheduled release. Stop
// prevents the release if it has not fired yet.
type AutoRelease struct {
	timer *time.Timer

	mu      sync.Mutex
	stopped bool
	fired   bool
}

// Stop cancels the pending release. Returns false if the release
// already fired or the handle was already stopped.
func (a *AutoRelease) Stop() bool {
	a.mu.Lock()
	defer a.mu.Unlock()
	if a.stopped || a.fired {
		return false
	}
	a.stopped = true
	return a.timer.Stop()
}

// EnableAutoRelease makes MoveToEscrow arm a release timer for every
// transaction entering escrow. Manual release or refund disarms it.
func (u *Usecase) EnableAutoRelease(delay time.Duration) {
	if delay <= 0 {
		delay = DefaultAutoReleaseDelay
	}
	u.autoDelay = delay
}

func (u *Usecase) armAutoRelease(paymentID string) {
	if u.autoDelay <= 0 {
		return
	}
	u.armMu.Lock()
	defer u.armMu.Unlock()
	if u.armed == nil {
		u.armed = make(map[string]*AutoRelease)
	}
	if _, ok := u.armed[paymentID]; ok {
		return
	}
	u.armed[paymentID] = u.ScheduleAutoRelease(paymentID, u.autoDelay, func(*TransactionDTO, error) {
		u.disarmAutoRelease(paymentID)
	})
}

func (u *Usecase) disarmAutoRelease(paymentID string) {
	u.armMu.Lock()
	a, ok := u.armed[paymentID]
	if ok {
		delete(u.armed, paymentID)
	}
	u.armMu.Unlock()
	if ok {
		a.Stop()
	}
}

// ScheduleAutoRelease arms a timer that releases the payment after
// delay and hands the outcome to onDone. Timers live in this process
// only; deadlines are not persisted across restarts.
func (u *Usecase) ScheduleAutoRelease(paymentID string, delay time.Duration, onDone func(*TransactionDTO, error)) *AutoRelease {
	if delay <= 0 {
		delay = DefaultAutoReleaseDelay
	}
	a := &AutoRelease{}
	a.timer = time.AfterFunc(delay, func() {
		a.mu.Lock()
		if a.stopped {
			a.mu.Unlock()
			return
		}
		a.fired = true
		a.mu.Unlock()

		dto, err := u.Release(context.Background(), paymentID)
		if onDone != nil {
			onDone(dto, err)
		}
	})
	return a
}
