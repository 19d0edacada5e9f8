// Package search combines multiple terms into single OR-combined requests
// against the platform's news and post search endpoints, preferring curated
// news stories and falling back to the cost-bearing post search when none
// are found.
package search

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/richardanaya/news-search/internal/xapi"
	"github.com/richardanaya/news-search/pkg/types"
)

// Run executes one search invocation: a news lookup, then a post lookup if
// posts were requested or no stories came back. It never returns an error;
// every endpoint and transport failure is recovered into the result's error
// list alongside whatever results were obtained. Each endpoint is called at
// most once — a retry would multiply billed cost.
func Run(ctx context.Context, client xapi.Client, params types.SearchParams) types.Result {
	params = params.Clamped()

	result := types.Result{
		Query:  strings.Join(params.Queries, " + "),
		News:   []types.Story{},
		Posts:  []types.Post{},
		Errors: []string{},
	}

	result = runNews(ctx, client, params, result)

	// News stories are preferred: richer, curated, cheaper per call. Post
	// search runs only on request or when the news lookup came up empty.
	if params.Posts || len(result.News) == 0 {
		result = runPosts(ctx, client, params, result)
	}

	return result
}

// runNews performs the news lookup and folds stories and errors into the
// accumulated result
func runNews(ctx context.Context, client xapi.Client, params types.SearchParams, result types.Result) types.Result {
	query := BuildNewsQuery(params.Queries)
	logrus.WithField("query", query).Debug("searching news")

	resp, err := client.SearchNews(ctx, query, xapi.NewsOptions{
		MaxResults:  params.Max,
		MaxAgeHours: params.Days * 24,
	})
	if err != nil {
		logrus.WithError(err).Warn("news search failed, falling back to post search")
		result.Errors = append(result.Errors, fmt.Sprintf("news search failed (falling back to post search): %v", err))
		return result
	}

	for _, apiErr := range resp.Errors {
		result.Errors = append(result.Errors, fmt.Sprintf("news search: %s", apiErr))
	}

	for _, data := range resp.Data {
		result.News = append(result.News, storyFromData(data))
	}

	logrus.WithField("stories", len(result.News)).Debug("news search complete")
	return result
}

// runPosts performs the post lookup, normalizes posts against the expanded
// author records, and ranks them by engagement
func runPosts(ctx context.Context, client xapi.Client, params types.SearchParams, result types.Result) types.Result {
	query := BuildPostQuery(params.Queries, params.Lang, params.Raw)
	logrus.WithField("query", query).Debug("searching posts")

	startTime := time.Now().UTC().AddDate(0, 0, -params.Days).Format(time.RFC3339)

	resp, err := client.SearchRecentPosts(ctx, query, xapi.PostOptions{
		StartTime:  startTime,
		MaxResults: params.Max,
		SortOrder:  "relevancy",
	})
	if err != nil {
		logrus.WithError(err).Warn("post search failed")
		result.Errors = append(result.Errors, fmt.Sprintf("post search failed: %v", err))
		return result
	}

	for _, apiErr := range resp.Errors {
		result.Errors = append(result.Errors, fmt.Sprintf("post search: %s", apiErr))
	}

	authors := buildAuthorLookup(resp.Includes.Users)
	for _, data := range resp.Data {
		result.Posts = append(result.Posts, postFromData(data, authors))
	}

	rankByEngagement(result.Posts)

	logrus.WithField("posts", len(result.Posts)).Debug("post search complete")
	return result
}
