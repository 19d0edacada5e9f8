package xapi

import "context"

// NewsOptions bounds a news search request
type NewsOptions struct {
	MaxResults  int
	MaxAgeHours int
}

// PostOptions bounds a recent-post search request
type PostOptions struct {
	StartTime  string // RFC 3339
	MaxResults int
	SortOrder  string
}

// Client defines the two platform search operations the tool depends on
type Client interface {
	// SearchNews queries the curated news search endpoint
	SearchNews(ctx context.Context, query string, opts NewsOptions) (*NewsResponse, error)

	// SearchRecentPosts queries the recent-post search endpoint with
	// author expansion and public metrics
	SearchRecentPosts(ctx context.Context, query string, opts PostOptions) (*PostResponse, error)
}
