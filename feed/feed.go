package feed

import (
	"strconv"
	"strings"

	"connectify-cli/shared"
	"connectify-cli/types"
)

// Feed is the in-memory ordered sequence of normalized posts, newest first.
type Feed struct {
	Posts []NormalizedPost
}

func (f *Feed) Load(client types.ApiClient) *shared.ApiError {
	payload, apiErr := client.ListPosts()

	if apiErr != nil {
		return apiErr
	}

	f.Posts = Normalize(payload)

	return nil
}

// Prepend normalizes a newly created post and inserts it at the head of the
// feed. No re-sort happens, so a just-created post stays on top regardless
// of existing entries' timestamps.
func (f *Feed) Prepend(raw RawPost) NormalizedPost {
	// creation responses sometimes wrap the record as {post: {...}}
	if inner, ok := raw["post"].(map[string]any); ok {
		raw = inner
	}

	post := NormalizePost(raw)
	f.Posts = append([]NormalizedPost{post}, f.Posts...)
	return post
}

// CommentCount derives a comment count at render time: length for arrays,
// the value itself for numbers (possibly as a string), zero otherwise.
func CommentCount(comments any) int {
	switch v := comments.(type) {
	case []any:
		return len(v)
	case float64:
		if v < 0 {
			return 0
		}
		return int(v)
	case int:
		if v < 0 {
			return 0
		}
		return v
	case string:
		n, err := strconv.Atoi(strings.TrimSpace(v))
		if err != nil || n < 0 {
			return 0
		}
		return n
	}
	return 0
}

// AuthorName resolves a display name from whatever shape the backend put in
// the author field. Raw string identifiers render as the generic "User".
func AuthorName(author any) string {
	if m, ok := author.(map[string]any); ok {
		for _, key := range []string{"name", "username"} {
			if s, ok := m[key].(string); ok && s != "" {
				return s
			}
		}
	}
	return "User"
}
