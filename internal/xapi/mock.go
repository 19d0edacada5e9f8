package xapi

import "context"

// MockClient implements Client for testing
type MockClient struct {
	NewsResp *NewsResponse
	PostResp *PostResponse
	NewsErr  error
	PostErr  error

	NewsCalls int
	PostCalls int
	NewsQuery string
	PostQuery string
	PostOpts  PostOptions
	NewsOpts  NewsOptions
}

// NewMockClient creates a mock with empty responses
func NewMockClient() *MockClient {
	return &MockClient{
		NewsResp: &NewsResponse{},
		PostResp: &PostResponse{},
	}
}

// SearchNews records the call and returns the canned response
func (m *MockClient) SearchNews(ctx context.Context, query string, opts NewsOptions) (*NewsResponse, error) {
	m.NewsCalls++
	m.NewsQuery = query
	m.NewsOpts = opts
	if m.NewsErr != nil {
		return nil, m.NewsErr
	}
	return m.NewsResp, nil
}

// SearchRecentPosts records the call and returns the canned response
func (m *MockClient) SearchRecentPosts(ctx context.Context, query string, opts PostOptions) (*PostResponse, error) {
	m.PostCalls++
	m.PostQuery = query
	m.PostOpts = opts
	if m.PostErr != nil {
		return nil, m.PostErr
	}
	return m.PostResp, nil
}
