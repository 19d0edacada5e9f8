package search

import (
	"fmt"
	"sort"
	"time"

	"github.com/richardanaya/news-search/internal/xapi"
	"github.com/richardanaya/news-search/pkg/types"
)

// author holds the resolved fields for one expanded user record
type author struct {
	name     string
	handle   string
	verified bool
}

// storyFromData maps one wire story onto the domain shape. Every optional
// field falls back to an empty value so the output never carries nulls.
func storyFromData(data xapi.StoryData) types.Story {
	keywords := data.Keywords
	if keywords == nil {
		keywords = []string{}
	}

	updatedAt := ""
	if data.LastUpdated > 0 {
		updatedAt = time.UnixMilli(data.LastUpdated).UTC().Format(time.RFC3339)
	}

	return types.Story{
		ID:        data.ID,
		Title:     data.Title,
		Summary:   data.Summary,
		Hook:      data.Hook,
		Category:  data.Category,
		Keywords:  keywords,
		UpdatedAt: updatedAt,
	}
}

// postFromData maps one wire post onto the domain shape, resolving the
// author through the lookup built from the response's included users. An
// author missing from the includes (deleted or suspended account) resolves
// to empty name/handle and an id-only permalink.
func postFromData(data xapi.PostData, authors map[string]author) types.Post {
	a := authors[data.AuthorID]

	var likes, reposts, replies int
	if data.PublicMetrics != nil {
		likes = data.PublicMetrics.LikeCount
		reposts = data.PublicMetrics.RetweetCount
		replies = data.PublicMetrics.ReplyCount
	}

	return types.Post{
		ID:           data.ID,
		Text:         data.Text,
		AuthorID:     data.AuthorID,
		AuthorName:   a.name,
		AuthorHandle: a.handle,
		Verified:     a.verified,
		CreatedAt:    data.CreatedAt,
		Likes:        likes,
		Reposts:      reposts,
		Replies:      replies,
		URL:          permalink(data.ID, a.handle),
	}
}

// buildAuthorLookup indexes the expanded user records by author id. The map
// lives for one invocation and is discarded after normalization.
func buildAuthorLookup(users []xapi.UserData) map[string]author {
	authors := make(map[string]author, len(users))
	for _, u := range users {
		authors[u.ID] = author{
			name:     u.Name,
			handle:   u.Username,
			verified: u.Verified,
		}
	}
	return authors
}

// permalink builds the canonical post URL. When the author handle is
// unknown the platform's id-only status path still resolves.
func permalink(id, handle string) string {
	if handle != "" {
		return fmt.Sprintf("https://x.com/%s/status/%s", handle, id)
	}
	return fmt.Sprintf("https://x.com/i/status/%s", id)
}

// rankByEngagement sorts posts descending by engagement score. The sort is
// stable so equal-score posts keep the server's relevance order between runs.
func rankByEngagement(posts []types.Post) {
	sort.SliceStable(posts, func(i, j int) bool {
		return posts[i].Score() > posts[j].Score()
	})
}
