// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package nav

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"time"
)

// FrameInterval approximates one display refresh.
const FrameInterval = 16 * time.Millisecond

// ErrLoopStarted is returned by a second call to Run.
var ErrLoopStarted = errors.New("nav: loop already started")

// Loop serialises input events and timer callbacks onto one goroutine, so
// a Controller driven through it never sees concurrent calls.
type Loop struct {
	events chan func()
	done   chan struct{}

	once    sync.Once
	started atomic.Bool
}

// EventBuffer is the number of events a loop queues before Post waits.
const EventBuffer = 64

// NewLoop creates a loop. Nothing runs until Run is called.
func NewLoop() *Loop {
	return &Loop{
		events: make(chan func(), EventBuffer),
		done:   make(chan struct{}),
	}
}

// Run executes posted callbacks until ctx is cancelled. It may be called
// once.
func (l *Loop) Run(ctx context.Context) error {
	if !l.started.CompareAndSwap(false, true) {
		return ErrLoopStarted
	}
	defer l.once.Do(func() { close(l.done) })

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case fn := <-l.events:
			fn()
		}
	}
}

// Post queues fn as an input event. It reports false once the loop has
// stopped. Before Run it never waits: it reports false when the buffer
// is full.
func (l *Loop) Post(fn func()) bool {
	select {
	case <-l.done:
		return false
	default:
	}
	if !l.started.Load() {
		select {
		case l.events <- fn:
			return true
		default:
			return false
		}
	}
	select {
	case l.events <- fn:
		return true
	case <-l.done:
		return false
	}
}

// AfterFunc schedules fn on the loop after d.
func (l *Loop) AfterFunc(d time.Duration, fn func()) Timer {
	t := &loopTimer{}
	t.timer = time.AfterFunc(d, func() {
		l.Post(func() {
			if !t.stopped.Load() {
				fn()
			}
		})
	})
	return t
}

// NextFrame schedules fn for the next frame.
func (l *Loop) NextFrame(fn func()) {
	l.AfterFunc(FrameInterval, fn)
}

type loopTimer struct {
	timer   *time.Timer
	stopped atomic.Bool
}

func (t *loopTimer) Stop() bool {
	if t.stopped.Swap(true) {
		return false
	}
	return t.timer.Stop()
}
