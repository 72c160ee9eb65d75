// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package nav

import (
	"encoding/json"
	"errors"
	"math"
)

// View identifies one of the three top-level screens.
type View string

// View constants
const (
	ViewAbout View = "about"
	ViewCV    View = "cv"
	ViewBlog  View = "blog"
)

// StorageKey is the storage entry holding the last active view.
const StorageKey = "cv:last-view"

// ErrUnknownView is returned for a view name other than about, cv or blog.
var ErrUnknownView = errors.New("unknown view")

// ParseView validates a raw view name.
func ParseView(s string) (View, error) {
	switch View(s) {
	case ViewAbout, ViewCV, ViewBlog:
		return View(s), nil
	}
	return "", ErrUnknownView
}

func (v View) String() string { return string(v) }

// HistoryState is attached to every pushed or replaced history entry.
type HistoryState struct {
	Step int  `json:"step"`
	View View `json:"view"`
}

// ParseHistoryState accepts whatever the history port hands back and
// reports whether it is a well-formed entry. Browsers return decoded JSON
// objects, so map[string]any and raw JSON are accepted alongside the typed
// forms.
func ParseHistoryState(raw any) (HistoryState, bool) {
	switch s := raw.(type) {
	case nil:
		return HistoryState{}, false
	case HistoryState:
		return validState(s)
	case *HistoryState:
		if s == nil {
			return HistoryState{}, false
		}
		return validState(*s)
	case []byte:
		return parseStateJSON(s)
	case json.RawMessage:
		return parseStateJSON(s)
	case string:
		return parseStateJSON([]byte(s))
	case map[string]any:
		return parseStateMap(s)
	}
	return HistoryState{}, false
}

func parseStateJSON(b []byte) (HistoryState, bool) {
	var m map[string]any
	if err := json.Unmarshal(b, &m); err != nil {
		return HistoryState{}, false
	}
	return parseStateMap(m)
}

func parseStateMap(m map[string]any) (HistoryState, bool) {
	name, ok := m["view"].(string)
	if !ok {
		return HistoryState{}, false
	}
	view, err := ParseView(name)
	if err != nil {
		return HistoryState{}, false
	}

	var step int
	switch n := m["step"].(type) {
	case float64:
		if n != math.Trunc(n) || n > math.MaxInt32 {
			return HistoryState{}, false
		}
		step = int(n)
	case int:
		step = n
	case int64:
		step = int(n)
	case json.Number:
		i, err := n.Int64()
		if err != nil {
			return HistoryState{}, false
		}
		step = int(i)
	default:
		return HistoryState{}, false
	}

	return validState(HistoryState{Step: step, View: view})
}

func validState(s HistoryState) (HistoryState, bool) {
	if s.Step < 0 {
		return HistoryState{}, false
	}
	if _, err := ParseView(string(s.View)); err != nil {
		return HistoryState{}, false
	}
	return s, true
}
