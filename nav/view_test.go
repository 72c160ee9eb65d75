// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package nav_test

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/danielhkuo/folio/nav"
)

func TestParseView(t *testing.T) {
	for _, name := range []string{"about", "cv", "blog"} {
		v, err := nav.ParseView(name)
		assert.NoError(t, err)
		assert.Equal(t, name, v.String())
	}

	_, err := nav.ParseView("")
	assert.ErrorIs(t, err, nav.ErrUnknownView)
	_, err = nav.ParseView("CV")
	assert.ErrorIs(t, err, nav.ErrUnknownView)
}

func TestParseHistoryState(t *testing.T) {
	valid := nav.HistoryState{Step: 2, View: nav.ViewBlog}

	testCases := []struct {
		name string
		raw  any
		want nav.HistoryState
		ok   bool
	}{
		{"nil", nil, nav.HistoryState{}, false},
		{"typed", valid, valid, true},
		{"pointer", &valid, valid, true},
		{"nil pointer", (*nav.HistoryState)(nil), nav.HistoryState{}, false},
		{"decoded object", map[string]any{"step": float64(2), "view": "blog"}, valid, true},
		{"int step", map[string]any{"step": 2, "view": "blog"}, valid, true},
		{"json number", map[string]any{"step": json.Number("2"), "view": "blog"}, valid, true},
		{"raw json", json.RawMessage(`{"step":2,"view":"blog"}`), valid, true},
		{"json string", `{"step":0,"view":"about"}`, nav.HistoryState{View: nav.ViewAbout}, true},
		{"fractional step", map[string]any{"step": 1.5, "view": "cv"}, nav.HistoryState{}, false},
		{"negative step", map[string]any{"step": float64(-1), "view": "cv"}, nav.HistoryState{}, false},
		{"missing step", map[string]any{"view": "cv"}, nav.HistoryState{}, false},
		{"missing view", map[string]any{"step": float64(1)}, nav.HistoryState{}, false},
		{"unknown view", map[string]any{"step": float64(1), "view": "admin"}, nav.HistoryState{}, false},
		{"typed unknown view", nav.HistoryState{Step: 1, View: "admin"}, nav.HistoryState{}, false},
		{"bad json", "not json", nav.HistoryState{}, false},
		{"wrong type", 42, nav.HistoryState{}, false},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got, ok := nav.ParseHistoryState(tc.raw)
			assert.Equal(t, tc.ok, ok)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestNodeString(t *testing.T) {
	assert.Equal(t, "about-screen", nav.AboutScreen.String())
	assert.Equal(t, "blog-tile", nav.BlogTile.String())
	assert.Equal(t, "unknown", nav.Node(99).String())
}

func TestClassNames(t *testing.T) {
	assert.Equal(t, "cv-screen-entering", nav.EnteringClass(nav.ViewCV))
	assert.Equal(t, "blog-screen-entered", nav.EnteredClass(nav.ViewBlog))
	assert.Equal(t, nav.ClassCVTileOpening, nav.TileOpeningClass(nav.CVTile))
	assert.Equal(t, nav.ClassBlogTileOpening, nav.TileOpeningClass(nav.BlogTile))
}
