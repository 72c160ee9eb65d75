// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package nav_test

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"

	"github.com/danielhkuo/folio/nav"
	"github.com/danielhkuo/folio/nav/navtest"
)

func startLoop(t *testing.T) (*nav.Loop, func()) {
	t.Helper()

	loop := nav.NewLoop()
	ctx, cancel := context.WithCancel(context.Background())
	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		err := loop.Run(ctx)
		if !errors.Is(err, context.Canceled) {
			t.Errorf("unexpected loop error: %v", err)
		}
	}()

	return loop, func() {
		cancel()
		wg.Wait()
	}
}

// call runs fn on the loop and waits for it.
func call(t *testing.T, loop *nav.Loop, fn func()) {
	t.Helper()

	done := make(chan struct{})
	require.True(t, loop.Post(func() {
		fn()
		close(done)
	}))
	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("loop did not run callback")
	}
}

func TestLoop_RunsCallbacksInOrder(t *testing.T) {
	defer goleak.VerifyNone(t)

	loop, stop := startLoop(t)
	defer stop()

	var got []int
	for i := 0; i < 10; i++ {
		i := i
		loop.Post(func() { got = append(got, i) })
	}
	var snapshot []int
	call(t, loop, func() { snapshot = append(snapshot, got...) })

	assert.Equal(t, []int{0, 1, 2, 3, 4, 5, 6, 7, 8, 9}, snapshot)
}

func TestLoop_AfterFuncAndStop(t *testing.T) {
	defer goleak.VerifyNone(t)

	loop, stop := startLoop(t)
	defer stop()

	fired := make(chan struct{})
	loop.AfterFunc(5*time.Millisecond, func() { close(fired) })

	cancelled := false
	timer := loop.AfterFunc(5*time.Millisecond, func() { cancelled = true })
	assert.True(t, timer.Stop())
	assert.False(t, timer.Stop())

	select {
	case <-fired:
	case <-time.After(2 * time.Second):
		t.Fatal("timer did not fire")
	}

	time.Sleep(20 * time.Millisecond)
	var sawCancelled bool
	call(t, loop, func() { sawCancelled = cancelled })
	assert.False(t, sawCancelled)
}

func TestLoop_RunTwice(t *testing.T) {
	defer goleak.VerifyNone(t)

	loop, stop := startLoop(t)
	// Make sure the first Run has started.
	call(t, loop, func() {})

	err := loop.Run(context.Background())
	assert.ErrorIs(t, err, nav.ErrLoopStarted)
	stop()
}

func TestLoop_PostAfterStop(t *testing.T) {
	defer goleak.VerifyNone(t)

	loop, stop := startLoop(t)
	call(t, loop, func() {})
	stop()

	assert.False(t, loop.Post(func() {}))
}

func TestLoop_DrivesController(t *testing.T) {
	defer goleak.VerifyNone(t)

	loop, stop := startLoop(t)
	defer stop()

	doc := navtest.NewDocument()
	history := navtest.NewHistory(nil)
	ctrl, err := nav.New(nav.Config{
		Storage:    &navtest.Storage{},
		History:    history,
		Scheduler:  loop,
		Document:   doc,
		Transition: 10 * time.Millisecond,
	})
	require.NoError(t, err)
	history.OnPop = ctrl.OnPopState

	call(t, loop, ctrl.Init)
	call(t, loop, ctrl.OpenCV)
	call(t, loop, ctrl.OpenCV)

	require.Eventually(t, func() bool {
		entered := make(chan bool, 1)
		loop.Post(func() {
			entered <- doc.Has(nav.CVScreen, nav.EnteredClass(nav.ViewCV))
		})
		select {
		case ok := <-entered:
			return ok
		case <-time.After(time.Second):
			return false
		}
	}, 2*time.Second, 5*time.Millisecond)

	call(t, loop, func() {
		assert.Equal(t, []nav.Node{nav.CVScreen}, doc.VisibleScreens())
		assert.Equal(t, 1, history.Pushes)
	})

	call(t, loop, ctrl.OpenAbout)
	call(t, loop, func() {
		assert.Equal(t, nav.ViewAbout, ctrl.Current())
		assert.Equal(t, []nav.Node{nav.AboutScreen}, doc.VisibleScreens())
	})
}

func TestLoop_PostBeforeRunDoesNotBlock(t *testing.T) {
	defer goleak.VerifyNone(t)

	loop := nav.NewLoop()
	ran := 0
	for i := 0; i < nav.EventBuffer; i++ {
		require.True(t, loop.Post(func() { ran++ }))
	}

	posted := make(chan bool, 1)
	go func() { posted <- loop.Post(func() { ran++ }) }()
	select {
	case ok := <-posted:
		assert.False(t, ok)
	case <-time.After(2 * time.Second):
		t.Fatal("Post blocked on a full loop that was never run")
	}

	// Queued events still run once the loop starts.
	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- loop.Run(ctx) }()

	result := make(chan int, 1)
	require.Eventually(t, func() bool {
		return loop.Post(func() { result <- ran })
	}, 2*time.Second, time.Millisecond)
	select {
	case got := <-result:
		assert.Equal(t, nav.EventBuffer, got)
	case <-time.After(2 * time.Second):
		t.Fatal("loop did not run queued events")
	}

	cancel()
	assert.ErrorIs(t, <-done, context.Canceled)
}
