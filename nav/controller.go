// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package nav

import (
	"errors"
	"fmt"
	"log/slog"
	"time"
)

// DefaultTransition is the duration of the tile opening animation.
const DefaultTransition = 420 * time.Millisecond

var (
	// ErrNoHistory is returned by New when Config.History is nil.
	ErrNoHistory = errors.New("nav: history port required")

	// ErrNoScheduler is returned by New when Config.Scheduler is nil.
	ErrNoScheduler = errors.New("nav: scheduler port required")

	// ErrNoDocument is returned by New when Config.Document is nil.
	ErrNoDocument = errors.New("nav: document port required")
)

// Config wires a Controller to its environment. Storage, Viewport,
// OnBlogOpen and Logger are optional.
type Config struct {
	Storage    Storage
	History    History
	Scheduler  Scheduler
	Document   Document
	Viewport   Viewport
	OnBlogOpen func()
	Transition time.Duration
	Logger     *slog.Logger
}

// Controller owns which screen is visible. All methods must be called
// from a single event loop; the controller does no locking.
type Controller struct {
	storage    Storage
	history    History
	sched      Scheduler
	doc        Document
	viewport   Viewport
	onBlogOpen func()
	transition time.Duration
	log        *slog.Logger

	current View // logical view, updated before animations finish
	shown   View // view whose screen was last revealed
	step    int

	// opening maps a view to the id of its live transition. A transition
	// leaves the map when it completes or is superseded.
	opening map[View]uint64
	seq     uint64

	// backPending is set between a Back() call and its popstate.
	backPending bool
}

// New validates cfg and returns a controller resting on the about view.
// Call Init to restore state from history or storage.
func New(cfg Config) (*Controller, error) {
	if cfg.History == nil {
		return nil, ErrNoHistory
	}
	if cfg.Scheduler == nil {
		return nil, ErrNoScheduler
	}
	if cfg.Document == nil {
		return nil, ErrNoDocument
	}

	c := &Controller{
		storage:    cfg.Storage,
		history:    cfg.History,
		sched:      cfg.Scheduler,
		doc:        cfg.Document,
		viewport:   cfg.Viewport,
		onBlogOpen: cfg.OnBlogOpen,
		transition: cfg.Transition,
		log:        cfg.Logger,
		current:    ViewAbout,
		shown:      ViewAbout,
		opening:    make(map[View]uint64, 2),
	}
	if c.storage == nil {
		c.storage = disabledStorage{}
	}
	if c.transition <= 0 {
		c.transition = DefaultTransition
	}
	if c.log == nil {
		c.log = slog.Default()
	}
	return c, nil
}

// Current returns the logical view.
func (c *Controller) Current() View { return c.current }

// Step returns the history step counter.
func (c *Controller) Step() int { return c.step }

// Transitioning reports whether an opening animation into v is in flight.
func (c *Controller) Transitioning(v View) bool { return c.opening[v] != 0 }

// Init restores the view from the current history entry, falling back to
// the persisted last view and then to about. The current entry is always
// replaced so back navigation has a defined floor.
func (c *Controller) Init() {
	view := ViewAbout
	if s, ok := ParseHistoryState(c.history.State()); ok {
		c.step = s.Step
		view = s.View
	} else {
		c.step = 0
		if last, ok := c.readLastView(); ok {
			view = last
		}
	}

	c.setViewInstant(view)
	c.history.Replace(HistoryState{Step: c.step, View: view})
}

// OpenCV starts the animated transition to the cv screen.
func (c *Controller) OpenCV() { _ = c.OpenView(ViewCV) }

// OpenBlog starts the animated transition to the blog screen.
func (c *Controller) OpenBlog() { _ = c.OpenView(ViewBlog) }

// OpenView starts the animated transition into target, which must be cv
// or blog. Opening the current view, or a view whose transition is
// already in flight, does nothing. Transitions into other views are
// superseded: their timers only clean up.
func (c *Controller) OpenView(target View) error {
	if target != ViewCV && target != ViewBlog {
		return fmt.Errorf("open %q: %w", target, ErrUnknownView)
	}
	if c.current == target || c.opening[target] != 0 {
		return nil
	}

	origin := c.shown
	c.current = target
	for v := range c.opening {
		if v != target {
			delete(c.opening, v)
		}
	}
	c.writeLastView(target)

	c.step++
	c.history.Push(HistoryState{Step: c.step, View: target})

	if target == ViewBlog {
		c.renderBlog()
	}

	c.seq++
	id := c.seq
	c.opening[target] = id
	tile := tileOf(target)
	c.doc.AddClass(screenOf(origin), ClassOpening)
	if c.viewport != nil && c.viewport.Narrow() {
		shift := c.viewport.TileShift(tile)
		c.doc.SetStyle(tile, StyleTileShift, fmt.Sprintf("%.0fpx", -shift))
		c.doc.AddClass(tile, ClassTileShift)
	} else {
		c.doc.AddClass(tile, TileOpeningClass(tile))
	}

	c.sched.AfterFunc(c.transition, func() { c.finishOpen(origin, target, id) })
	return nil
}

// finishOpen completes transition id. A superseded transition only
// removes its own transient classes, and leaves them to a newer
// transition into the same view.
func (c *Controller) finishOpen(origin, target View, id uint64) {
	live := c.opening[target] == id
	if live {
		delete(c.opening, target)
	} else if c.opening[target] != 0 {
		c.log.Debug("transition superseded", "target", target, "current", c.current)
		return
	}
	c.clearTile(tileOf(target))

	if !live || c.current != target || c.shown == target {
		if !c.anyOpening() {
			c.doc.RemoveClass(screenOf(origin), ClassOpening)
		}
		c.log.Debug("transition superseded", "target", target, "current", c.current)
		return
	}

	for _, v := range []View{ViewAbout, ViewCV, ViewBlog} {
		c.doc.RemoveClass(screenOf(v), ClassOpening)
		if v != target {
			c.hide(v)
		}
	}

	screen := screenOf(target)
	c.doc.RemoveClass(screen, ClassHidden)
	c.doc.AddClass(screen, ClassVisible)
	c.doc.RemoveClass(screen, EnteredClass(target))
	c.doc.AddClass(screen, EnteringClass(target))
	c.shown = target

	c.sched.NextFrame(func() {
		if c.current == target && c.shown == target {
			c.doc.AddClass(screen, EnteredClass(target))
		}
	})
}

// OpenAbout returns to the about screen. With forward history it traverses
// back and lets OnPopState do the switch; otherwise it switches instantly
// and replaces the current entry.
func (c *Controller) OpenAbout() {
	if c.current == ViewAbout {
		return
	}
	if c.step > 0 {
		if c.backPending {
			return
		}
		c.backPending = true
		c.history.Back()
		return
	}

	c.setViewInstant(ViewAbout)
	c.history.Replace(HistoryState{Step: 0, View: ViewAbout})
}

// OnPopState handles browser back/forward. It never animates.
func (c *Controller) OnPopState(raw any) {
	c.backPending = false

	s, ok := ParseHistoryState(raw)
	if !ok {
		c.step = 0
		c.setViewInstant(ViewAbout)
		c.history.Replace(HistoryState{Step: 0, View: ViewAbout})
		return
	}

	c.step = s.Step
	c.setViewInstant(s.View)
}

func (c *Controller) setViewInstant(v View) {
	c.current = v
	clear(c.opening)
	c.writeLastView(v)
	if v == ViewBlog {
		c.renderBlog()
	}

	c.clearTile(CVTile)
	c.clearTile(BlogTile)
	for _, other := range []View{ViewAbout, ViewCV, ViewBlog} {
		c.doc.RemoveClass(screenOf(other), ClassOpening)
		if other != v {
			c.hide(other)
		}
	}

	screen := screenOf(v)
	c.doc.RemoveClass(screen, ClassHidden)
	c.doc.AddClass(screen, ClassVisible)
	if v != ViewAbout {
		c.doc.RemoveClass(screen, EnteringClass(v))
		c.doc.AddClass(screen, EnteredClass(v))
	}
	c.shown = v
}

func (c *Controller) hide(v View) {
	screen := screenOf(v)
	c.doc.RemoveClass(screen, ClassVisible)
	c.doc.AddClass(screen, ClassHidden)
	if v != ViewAbout {
		c.doc.RemoveClass(screen, EnteringClass(v))
		c.doc.RemoveClass(screen, EnteredClass(v))
	}
}

func (c *Controller) clearTile(tile Node) {
	c.doc.RemoveClass(tile, TileOpeningClass(tile))
	c.doc.RemoveClass(tile, ClassTileShift)
	c.doc.SetStyle(tile, StyleTileShift, "")
}

func (c *Controller) anyOpening() bool {
	return len(c.opening) > 0
}

func (c *Controller) renderBlog() {
	if c.onBlogOpen != nil {
		c.onBlogOpen()
	}
}

func (c *Controller) readLastView() (View, bool) {
	value, err := c.storage.Get(StorageKey)
	if err != nil {
		c.log.Debug("last view unavailable", "error", err)
		return "", false
	}
	v, err := ParseView(value)
	if err != nil {
		return "", false
	}
	return v, true
}

func (c *Controller) writeLastView(v View) {
	if err := c.storage.Set(StorageKey, string(v)); err != nil {
		c.log.Debug("failed to persist last view", "view", v, "error", err)
	}
}

var errStorageDisabled = errors.New("storage disabled")

type disabledStorage struct{}

func (disabledStorage) Get(string) (string, error) { return "", errStorageDisabled }
func (disabledStorage) Set(string, string) error   { return errStorageDisabled }
func (disabledStorage) Remove(string) error        { return errStorageDisabled }
