// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package nav implements the portfolio's screen navigation state machine.

# Screens

Three mutually exclusive screens exist: about, cv and blog. Exactly one
is visible once transitions settle:

	ctrl, err := nav.New(nav.Config{
		Storage:   storage,
		History:   history,
		Scheduler: loop,
		Document:  document,
	})
	ctrl.Init()
	ctrl.OpenCV()

# Transitions

OpenCV and OpenBlog update the logical view immediately, push a history
entry and start a timed opening animation. When the timer fires the
target screen is revealed, unless navigation moved elsewhere meanwhile;
then only the transient classes and the in-flight guard are released.

OpenAbout is modelled as history traversal: with forward history it calls
History.Back and the switch happens in OnPopState, which never animates.

# Ports

Storage, History, Scheduler, Document and Viewport abstract the browser.
Loop is a real-time Scheduler that runs every callback on one goroutine;
package navtest provides deterministic fakes.
*/
package nav
