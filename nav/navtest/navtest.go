// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

// Package navtest provides in-memory implementations of the nav ports
// with a virtual clock, for deterministic tests.
package navtest

import (
	"errors"
	"sort"
	"time"

	"github.com/danielhkuo/folio/nav"
)

var ErrStorageDisabled = errors.New("navtest: storage disabled")

// Scheduler is a virtual-time nav.Scheduler. Nothing runs until Advance
// or Flush is called.
type Scheduler struct {
	now    time.Duration
	seq    int
	timers []*timer
	frames []func()
}

type timer struct {
	due     time.Duration
	seq     int
	fn      func()
	stopped bool
	fired   bool
}

func (t *timer) Stop() bool {
	if t.stopped || t.fired {
		return false
	}
	t.stopped = true
	return true
}

func (s *Scheduler) AfterFunc(d time.Duration, fn func()) nav.Timer {
	s.seq++
	t := &timer{due: s.now + d, seq: s.seq, fn: fn}
	s.timers = append(s.timers, t)
	return t
}

func (s *Scheduler) NextFrame(fn func()) {
	s.frames = append(s.frames, fn)
}

// Now returns the virtual time elapsed.
func (s *Scheduler) Now() time.Duration { return s.now }

// Pending returns the number of timers that have not fired or stopped.
func (s *Scheduler) Pending() int {
	n := 0
	for _, t := range s.timers {
		if !t.fired && !t.stopped {
			n++
		}
	}
	return n
}

// Flush runs queued frame callbacks, including ones they queue.
func (s *Scheduler) Flush() {
	for len(s.frames) > 0 {
		frames := s.frames
		s.frames = nil
		for _, fn := range frames {
			fn()
		}
	}
}

// Advance moves the clock forward by d, firing due timers in order and
// flushing frames after each one.
func (s *Scheduler) Advance(d time.Duration) {
	end := s.now + d
	s.Flush()
	for {
		next := s.nextDue(end)
		if next == nil {
			break
		}
		s.now = next.due
		next.fired = true
		next.fn()
		s.Flush()
	}
	s.now = end
	s.compact()
}

func (s *Scheduler) nextDue(end time.Duration) *timer {
	var best *timer
	for _, t := range s.timers {
		if t.fired || t.stopped || t.due > end {
			continue
		}
		if best == nil || t.due < best.due || (t.due == best.due && t.seq < best.seq) {
			best = t
		}
	}
	return best
}

func (s *Scheduler) compact() {
	live := s.timers[:0]
	for _, t := range s.timers {
		if !t.fired && !t.stopped {
			live = append(live, t)
		}
	}
	s.timers = live
}

// Storage is an in-memory nav.Storage. Setting Disabled makes every call
// fail, like a browser with storage blocked.
type Storage struct {
	Disabled bool
	data     map[string]string
}

func (m *Storage) Get(key string) (string, error) {
	if m.Disabled {
		return "", ErrStorageDisabled
	}
	return m.data[key], nil
}

func (m *Storage) Set(key, value string) error {
	if m.Disabled {
		return ErrStorageDisabled
	}
	if m.data == nil {
		m.data = make(map[string]string)
	}
	m.data[key] = value
	return nil
}

func (m *Storage) Remove(key string) error {
	if m.Disabled {
		return ErrStorageDisabled
	}
	delete(m.data, key)
	return nil
}

// History is an in-memory session history. Back delivers the popstate to
// OnPop synchronously when it is set.
type History struct {
	OnPop func(state any)

	entries   []any
	index     int
	BackCalls int
	Pushes    int
	Replaces  int
}

// NewHistory returns a history whose only entry carries state (may be nil).
func NewHistory(state any) *History {
	return &History{entries: []any{state}}
}

func (h *History) State() any {
	if len(h.entries) == 0 {
		return nil
	}
	return h.entries[h.index]
}

func (h *History) Push(state nav.HistoryState) {
	if len(h.entries) == 0 {
		h.entries = []any{nil}
	}
	h.entries = append(h.entries[:h.index+1], state)
	h.index++
	h.Pushes++
}

func (h *History) Replace(state nav.HistoryState) {
	if len(h.entries) == 0 {
		h.entries = []any{nil}
	}
	h.entries[h.index] = state
	h.Replaces++
}

func (h *History) Back() {
	h.BackCalls++
	if h.index == 0 {
		return
	}
	h.index--
	if h.OnPop != nil {
		h.OnPop(h.State())
	}
}

// Forward traverses one entry forward, as the browser forward button does.
func (h *History) Forward() {
	if h.index+1 >= len(h.entries) {
		return
	}
	h.index++
	if h.OnPop != nil {
		h.OnPop(h.State())
	}
}

// Len returns the number of entries.
func (h *History) Len() int { return len(h.entries) }

// Document records classes and styles per node.
type Document struct {
	classes map[nav.Node]map[string]bool
	styles  map[nav.Node]map[string]string
}

func NewDocument() *Document {
	return &Document{
		classes: make(map[nav.Node]map[string]bool),
		styles:  make(map[nav.Node]map[string]string),
	}
}

func (d *Document) AddClass(n nav.Node, class string) {
	if d.classes[n] == nil {
		d.classes[n] = make(map[string]bool)
	}
	d.classes[n][class] = true
}

func (d *Document) RemoveClass(n nav.Node, class string) {
	delete(d.classes[n], class)
}

func (d *Document) SetStyle(n nav.Node, property, value string) {
	if value == "" {
		delete(d.styles[n], property)
		return
	}
	if d.styles[n] == nil {
		d.styles[n] = make(map[string]string)
	}
	d.styles[n][property] = value
}

func (d *Document) Has(n nav.Node, class string) bool { return d.classes[n][class] }

func (d *Document) Style(n nav.Node, property string) string { return d.styles[n][property] }

// Classes returns the sorted classes of n.
func (d *Document) Classes(n nav.Node) []string {
	out := make([]string, 0, len(d.classes[n]))
	for c := range d.classes[n] {
		out = append(out, c)
	}
	sort.Strings(out)
	return out
}

// VisibleScreens returns the screens carrying the visible class and not
// the hidden one.
func (d *Document) VisibleScreens() []nav.Node {
	var out []nav.Node
	for _, n := range []nav.Node{nav.AboutScreen, nav.CVScreen, nav.BlogScreen} {
		if d.Has(n, nav.ClassVisible) && !d.Has(n, nav.ClassHidden) {
			out = append(out, n)
		}
	}
	return out
}

// Viewport is a fixed nav.Viewport.
type Viewport struct {
	IsNarrow bool
	Shift    float64
}

func (v Viewport) Narrow() bool                   { return v.IsNarrow }
func (v Viewport) TileShift(tile nav.Node) float64 { return v.Shift }
