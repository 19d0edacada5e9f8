package xapi

import "fmt"

// APIError is a non-fatal error record returned alongside (or instead of) data
type APIError struct {
	Title  string `json:"title"`
	Detail string `json:"detail"`
	Type   string `json:"type"`
}

// String renders the error the way it is surfaced in result error lists
func (e APIError) String() string {
	if e.Detail != "" {
		return fmt.Sprintf("%s: %s", e.Title, e.Detail)
	}
	return e.Title
}

// StoryData is the wire shape of one curated news story
type StoryData struct {
	ID          string   `json:"id"`
	Title       string   `json:"title"`
	Summary     string   `json:"summary"`
	Hook        string   `json:"hook"`
	Category    string   `json:"category"`
	Keywords    []string `json:"keywords"`
	LastUpdated int64    `json:"last_updated"` // epoch milliseconds, 0 when absent
}

// NewsResponse is the news search endpoint's response envelope
type NewsResponse struct {
	Data   []StoryData `json:"data"`
	Errors []APIError  `json:"errors,omitempty"`
}

// Metrics holds a post's public engagement counters
type Metrics struct {
	LikeCount    int `json:"like_count"`
	RetweetCount int `json:"retweet_count"`
	ReplyCount   int `json:"reply_count"`
}

// PostData is the wire shape of one post
type PostData struct {
	ID            string   `json:"id"`
	Text          string   `json:"text"`
	AuthorID      string   `json:"author_id"`
	CreatedAt     string   `json:"created_at"`
	PublicMetrics *Metrics `json:"public_metrics"`
}

// UserData is the wire shape of an expanded author record
type UserData struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Username string `json:"username"`
	Verified bool   `json:"verified"`
}

// PostResponse is the recent-post search endpoint's response envelope
type PostResponse struct {
	Data     []PostData `json:"data"`
	Includes struct {
		Users []UserData `json:"users"`
	} `json:"includes"`
	Errors []APIError `json:"errors,omitempty"`
}
