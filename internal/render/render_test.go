package render

import (
	"bytes"
	"encoding/json"
	"testing"
	"time"

	"github.com/fatih/color"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/richardanaya/news-search/pkg/types"
)

func TestTimeAgo(t *testing.T) {
	now := time.Date(2025, 9, 1, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name string
		iso  string
		want string
	}{
		{"30 minutes", "2025-09-01T11:30:00Z", "30m ago"},
		{"90 minutes floors to 1h", "2025-09-01T10:30:00Z", "1h ago"},
		{"50 hours floors to 2d", "2025-08-30T10:00:00Z", "2d ago"},
		{"just now", "2025-09-01T12:00:00Z", "0m ago"},
		{"59 minutes stays in minutes", "2025-09-01T11:01:00Z", "59m ago"},
		{"23 hours stays in hours", "2025-08-31T13:00:00Z", "23h ago"},
		{"empty input", "", ""},
		{"unparseable input", "yesterday-ish", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, TimeAgo(tt.iso, now))
		})
	}
}

func TestWrap(t *testing.T) {
	lines := Wrap("aaa bbb ccc ddd", 7)
	assert.Equal(t, []string{"aaa bbb", "ccc ddd"}, lines)
}

func TestWrap_BreaksBeforeOverflowingWord(t *testing.T) {
	lines := Wrap("aaaa bbbb cc", 9)
	assert.Equal(t, []string{"aaaa bbbb", "cc"}, lines)

	for _, line := range lines {
		assert.LessOrEqual(t, len(line), 9)
	}
}

func TestWrap_OverlongWordGetsOwnLine(t *testing.T) {
	lines := Wrap("hi supercalifragilistic yo", 10)
	assert.Equal(t, []string{"hi", "supercalifragilistic", "yo"}, lines)
}

func TestWrap_Empty(t *testing.T) {
	assert.Nil(t, Wrap("", 80))
	assert.Nil(t, Wrap("   ", 80))
}

func TestJSON_StableFieldLayout(t *testing.T) {
	var buf bytes.Buffer
	result := types.Result{
		Query:  "a + b",
		News:   []types.Story{{ID: "s1", Keywords: []string{}}},
		Posts:  []types.Post{},
		Errors: []string{},
	}

	require.NoError(t, JSON(&buf, result))

	var decoded map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &decoded))
	assert.Contains(t, decoded, "query")
	assert.Contains(t, decoded, "news")
	assert.Contains(t, decoded, "posts")
	assert.Contains(t, decoded, "errors")

	// Empty lists serialize as arrays, not null
	assert.NotContains(t, buf.String(), `"posts": null`)
	assert.NotContains(t, buf.String(), `"errors": null`)
	assert.NotContains(t, buf.String(), `"keywords": null`)
}

func TestText_RendersSectionsAndErrors(t *testing.T) {
	color.NoColor = true

	var buf bytes.Buffer
	Text(&buf, types.Result{
		Query: "golang",
		News: []types.Story{{
			ID:       "s1",
			Title:    "Go 1.26 released",
			Summary:  "The release ships faster builds.",
			Category: "Tech",
		}},
		Posts: []types.Post{{
			ID:           "p1",
			Text:         "big if true",
			AuthorName:   "Ada",
			AuthorHandle: "ada",
			Verified:     true,
			Likes:        3,
			URL:          "https://x.com/ada/status/p1",
		}},
		Errors: []string{"post search: partial failure"},
	})

	out := buf.String()
	assert.Contains(t, out, "Search: golang")
	assert.Contains(t, out, "News (1)")
	assert.Contains(t, out, "Go 1.26 released")
	assert.Contains(t, out, "Posts (1)")
	assert.Contains(t, out, "Ada @ada ✓")
	assert.Contains(t, out, "https://x.com/ada/status/p1")
	assert.Contains(t, out, "Error: post search: partial failure")
	assert.NotContains(t, out, "No results found.")
}

func TestText_EmptyResult(t *testing.T) {
	color.NoColor = true

	var buf bytes.Buffer
	Text(&buf, types.Result{Query: "nothing"})

	assert.Contains(t, buf.String(), "No results found.")
}

func TestText_UnknownAuthorFallbackLine(t *testing.T) {
	color.NoColor = true

	var buf bytes.Buffer
	Text(&buf, types.Result{
		Query: "q",
		Posts: []types.Post{{ID: "p1", Text: "orphan", URL: "https://x.com/i/status/p1"}},
	})

	assert.Contains(t, buf.String(), "(unknown author)")
}
