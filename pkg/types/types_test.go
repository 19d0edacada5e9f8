package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSearchParams_Clamped(t *testing.T) {
	tests := []struct {
		name     string
		in       SearchParams
		wantDays int
		wantMax  int
	}{
		{"in range untouched", SearchParams{Days: 3, Max: 50}, 3, 50},
		{"below minimums", SearchParams{Days: 0, Max: 0}, 1, 1},
		{"negative values", SearchParams{Days: -2, Max: -10}, 1, 1},
		{"above maximums", SearchParams{Days: 30, Max: 1000}, 7, 100},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.in.Clamped()
			assert.Equal(t, tt.wantDays, got.Days)
			assert.Equal(t, tt.wantMax, got.Max)
		})
	}
}

func TestPost_Score(t *testing.T) {
	p := Post{Likes: 10, Reposts: 5, Replies: 3}
	assert.Equal(t, 2*10+3*5+3, p.Score())

	assert.Equal(t, 0, Post{}.Score())
}
