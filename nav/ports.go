// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package nav

import "time"

// Storage is the browser-local key/value store. Any method may fail when
// storage is disabled; the controller treats failures as "no value".
type Storage interface {
	Get(key string) (string, error)
	Set(key, value string) error
	Remove(key string) error
}

// History is the session navigation history.
type History interface {
	// State returns the state attached to the current entry, or nil.
	State() any
	Push(state HistoryState)
	Replace(state HistoryState)
	// Back traverses one entry back. The resulting popstate is delivered
	// to Controller.OnPopState by the caller's event wiring.
	Back()
}

// Timer is a cancellable scheduled callback.
type Timer interface {
	Stop() bool
}

// Scheduler defers callbacks on the controller's event loop.
type Scheduler interface {
	AfterFunc(d time.Duration, fn func()) Timer
	// NextFrame runs fn after the current class changes are committed.
	NextFrame(fn func())
}

// Node names an element the controller toggles classes on.
type Node int

// Nodes
const (
	AboutScreen Node = iota
	CVScreen
	BlogScreen
	CVTile
	BlogTile
)

var nodeNames = [...]string{"about-screen", "cv-screen", "blog-screen", "cv-tile", "blog-tile"}

func (n Node) String() string {
	if n < 0 || int(n) >= len(nodeNames) {
		return "unknown"
	}
	return nodeNames[n]
}

// Document applies visual state to nodes.
type Document interface {
	AddClass(n Node, class string)
	RemoveClass(n Node, class string)
	SetStyle(n Node, property, value string)
}

// Viewport answers layout questions for the opening animation.
type Viewport interface {
	// Narrow reports whether the device-width media query matches.
	Narrow() bool
	// TileShift is the vertical distance in pixels the tile must travel
	// to reach the top of the about screen.
	TileShift(tile Node) float64
}

// Class names
const (
	ClassVisible         = "is-visible"
	ClassHidden          = "is-hidden"
	ClassOpening         = "about-screen-opening"
	ClassTileShift       = "about-screen-tile-shift"
	ClassCVTileOpening   = "about-screen-tile-cv-opening"
	ClassBlogTileOpening = "about-screen-tile-blog-opening"
	StyleTileShift       = "--tile-shift"
)

// TileOpeningClass returns the opening class of a tile.
func TileOpeningClass(tile Node) string {
	if tile == BlogTile {
		return ClassBlogTileOpening
	}
	return ClassCVTileOpening
}

// EnteringClass is set on a screen as it is revealed by a transition.
func EnteringClass(v View) string { return string(v) + "-screen-entering" }

// EnteredClass is set on a revealed screen one frame after EnteringClass.
func EnteredClass(v View) string { return string(v) + "-screen-entered" }

func screenOf(v View) Node {
	switch v {
	case ViewCV:
		return CVScreen
	case ViewBlog:
		return BlogScreen
	}
	return AboutScreen
}

func tileOf(v View) Node {
	if v == ViewBlog {
		return BlogTile
	}
	return CVTile
}
