// Package render formats a search result as colored terminal text or as a
// stable JSON document suitable for piping into other tooling.
package render

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/fatih/color"

	"github.com/richardanaya/news-search/pkg/types"
)

// WrapWidth is the column limit for wrapped text blocks
const WrapWidth = 80

// JSON writes the result as an indented JSON document with stable field order
func JSON(w io.Writer, result types.Result) error {
	b, err := json.MarshalIndent(result, "", "  ")
	if err != nil {
		return fmt.Errorf("encoding JSON output: %w", err)
	}
	fmt.Fprintln(w, string(b))
	return nil
}

// Text writes the result as formatted terminal output
func Text(w io.Writer, result types.Result) {
	bold := color.New(color.Bold)
	faint := color.New(color.Faint)
	cyan := color.New(color.FgCyan)
	red := color.New(color.FgRed)

	bold.Fprintf(w, "Search: %s\n\n", result.Query)

	if len(result.News) > 0 {
		cyan.Fprintf(w, "News (%d)\n\n", len(result.News))
		for _, story := range result.News {
			bold.Fprintf(w, "%s\n", story.Title)
			if meta := storyMeta(story); meta != "" {
				faint.Fprintf(w, "  %s\n", meta)
			}
			if story.Hook != "" {
				fmt.Fprintf(w, "  %s\n", story.Hook)
			}
			for _, line := range Wrap(story.Summary, WrapWidth) {
				fmt.Fprintf(w, "  %s\n", line)
			}
			fmt.Fprintln(w)
		}
	}

	if len(result.Posts) > 0 {
		cyan.Fprintf(w, "Posts (%d)\n\n", len(result.Posts))
		for _, post := range result.Posts {
			bold.Fprintf(w, "%s\n", authorLine(post))
			for _, line := range Wrap(post.Text, WrapWidth) {
				fmt.Fprintf(w, "  %s\n", line)
			}
			faint.Fprintf(w, "  ♥ %d  ⇄ %d  💬 %d%s\n", post.Likes, post.Reposts, post.Replies, ageSuffix(post.CreatedAt))
			faint.Fprintf(w, "  %s\n\n", post.URL)
		}
	}

	if len(result.News) == 0 && len(result.Posts) == 0 {
		fmt.Fprintln(w, "No results found.")
	}

	for _, msg := range result.Errors {
		red.Fprintf(w, "Error: %s\n", msg)
	}
}

// storyMeta assembles the faint metadata line under a story title
func storyMeta(story types.Story) string {
	var parts []string
	if story.Category != "" {
		parts = append(parts, story.Category)
	}
	if len(story.Keywords) > 0 {
		parts = append(parts, strings.Join(story.Keywords, ", "))
	}
	if age := TimeAgo(story.UpdatedAt, time.Now()); age != "" {
		parts = append(parts, age)
	}
	return strings.Join(parts, "  ·  ")
}

// authorLine renders "Name @handle ✓" with whatever author fields are known
func authorLine(post types.Post) string {
	var sb strings.Builder
	if post.AuthorName != "" {
		sb.WriteString(post.AuthorName)
	} else {
		sb.WriteString("(unknown author)")
	}
	if post.AuthorHandle != "" {
		sb.WriteString(" @" + post.AuthorHandle)
	}
	if post.Verified {
		sb.WriteString(" ✓")
	}
	return sb.String()
}

// ageSuffix renders "  ·  Nh ago" or nothing when the timestamp is absent
func ageSuffix(iso string) string {
	if age := TimeAgo(iso, time.Now()); age != "" {
		return "  ·  " + age
	}
	return ""
}

// TimeAgo renders an RFC 3339 timestamp as a relative age using floor
// division: minutes under an hour, hours under a day, days otherwise.
// Empty or unparseable input yields an empty string.
func TimeAgo(iso string, now time.Time) string {
	if iso == "" {
		return ""
	}
	t, err := time.Parse(time.RFC3339, iso)
	if err != nil {
		return ""
	}

	elapsed := now.Sub(t)
	if elapsed < 0 {
		elapsed = 0
	}

	switch {
	case elapsed < time.Hour:
		return fmt.Sprintf("%dm ago", int(elapsed.Minutes()))
	case elapsed < 24*time.Hour:
		return fmt.Sprintf("%dh ago", int(elapsed.Hours()))
	default:
		return fmt.Sprintf("%dd ago", int(elapsed.Hours())/24)
	}
}

// Wrap splits text into lines of at most width columns by greedy word
// packing. A single word longer than the width gets its own line unmodified.
func Wrap(text string, width int) []string {
	words := strings.Fields(text)
	if len(words) == 0 {
		return nil
	}

	var lines []string
	current := words[0]
	for _, word := range words[1:] {
		if len(current)+1+len(word) > width {
			lines = append(lines, current)
			current = word
			continue
		}
		current += " " + word
	}
	lines = append(lines, current)

	return lines
}
