package types

// SearchParams holds the parameters for a single search invocation
type SearchParams struct {
	Queries []string // search terms, OR-combined into one request
	Days    int      // lookback window in days (1-7)
	Max     int      // maximum results per endpoint (1-100)
	Lang    string   // BCP-47 language code for the post quality filter
	Raw     bool     // disable quality filters on post search
	Posts   bool     // run post search even when news stories are found
}

// Clamped returns a copy of the params with Days and Max forced into range
func (p SearchParams) Clamped() SearchParams {
	if p.Days < 1 {
		p.Days = 1
	}
	if p.Days > 7 {
		p.Days = 7
	}
	if p.Max < 1 {
		p.Max = 1
	}
	if p.Max > 100 {
		p.Max = 100
	}
	return p
}

// Story represents a curated news story from the news search endpoint.
// Missing source fields map to empty strings, never null.
type Story struct {
	ID        string   `json:"id"`
	Title     string   `json:"title"`
	Summary   string   `json:"summary"`
	Hook      string   `json:"hook"`
	Category  string   `json:"category"`
	Keywords  []string `json:"keywords"`
	UpdatedAt string   `json:"updated_at"` // RFC 3339, empty when the source omits it
}

// Post represents a user post from the recent-post search endpoint
type Post struct {
	ID           string `json:"id"`
	Text         string `json:"text"`
	AuthorID     string `json:"author_id"`
	AuthorName   string `json:"author_name"`
	AuthorHandle string `json:"author_handle"`
	Verified     bool   `json:"verified"`
	CreatedAt    string `json:"created_at"`
	Likes        int    `json:"likes"`
	Reposts      int    `json:"reposts"`
	Replies      int    `json:"replies"`
	URL          string `json:"url"`
}

// Score is the local engagement ranking heuristic. Reposts carry the most
// weight as the strongest distribution signal, then likes, then replies.
func (p Post) Score() int {
	return 2*p.Likes + 3*p.Reposts + p.Replies
}

// Result is the aggregate outcome of one search invocation. It is always
// returned as a value: partial failures populate Errors but keep whatever
// results were obtained.
type Result struct {
	Query  string   `json:"query"`
	News   []Story  `json:"news"`
	Posts  []Post   `json:"posts"`
	Errors []string `json:"errors"`
}
