package search

import (
	"fmt"
	"strings"
)

// postFilters are the quality filter tokens appended to every non-raw post
// query, in a fixed order so built queries are reproducible.
var postFilters = []string{
	"-is:retweet",
	"-is:reply",
	"has:links",
	"-is:nullcast",
}

// BuildPostQuery combines search terms into a single post-search query.
// Multiple terms are each wrapped in parentheses and joined with OR, which
// keeps operator precedence correct when a term itself contains spaces or
// boolean-like tokens. Unless raw is set, the quality filters and a
// language filter are appended.
func BuildPostQuery(terms []string, lang string, raw bool) string {
	var combined string
	if len(terms) == 1 {
		combined = terms[0]
	} else {
		wrapped := make([]string, len(terms))
		for i, t := range terms {
			wrapped[i] = "(" + t + ")"
		}
		combined = strings.Join(wrapped, " OR ")
	}

	if raw {
		return combined
	}

	filters := strings.Join(postFilters, " ")
	return fmt.Sprintf("%s %s lang:%s", combined, filters, lang)
}

// BuildNewsQuery combines search terms for the news endpoint. The news
// endpoint returns curated, deduplicated stories and does not support the
// post filter grammar, so terms are OR-joined with no parentheses or filters.
func BuildNewsQuery(terms []string) string {
	return strings.Join(terms, " OR ")
}
