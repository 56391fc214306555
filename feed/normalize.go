package feed

import (
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
)

// RawPost is a backend post record of unspecified shape. Different
// deployments have used different field names for the same data, so nothing
// here is contractually fixed.
type RawPost = map[string]any

// NormalizedPost is the canonical internal representation of a post after
// decoding. Every field except Id is optional; Id always has a value, with a
// process-local random placeholder when the backend omits one.
type NormalizedPost struct {
	Id        string
	Content   *string
	ImageURL  *string
	Likes     int
	Comments  any // array kept as-is, otherwise passed through; count derived at render time
	Author    any // string or object; rendering handles both
	CreatedAt string
	Raw       RawPost // original payload retained for diagnostics
}

// ExtractPostList probes the payload for the post collection in priority
// order: direct array, `posts`, `data`, `items`, then a single `post` object
// wrapped into a one-element list. First match wins; no merging. Entries
// that aren't objects degrade to nil records rather than being dropped.
func ExtractPostList(payload any) []RawPost {
	switch v := payload.(type) {
	case []any:
		return coerceEntries(v)
	case map[string]any:
		for _, key := range []string{"posts", "data", "items"} {
			if arr, ok := v[key].([]any); ok {
				return coerceEntries(arr)
			}
		}
		if p, ok := v["post"]; ok && p != nil {
			if m, ok := p.(map[string]any); ok {
				return []RawPost{m}
			}
			return []RawPost{nil}
		}
	}

	return nil
}

func coerceEntries(entries []any) []RawPost {
	list := make([]RawPost, 0, len(entries))
	for _, entry := range entries {
		if m, ok := entry.(map[string]any); ok {
			list = append(list, m)
		} else {
			list = append(list, nil)
		}
	}
	return list
}

// NormalizePost decodes a single raw record into the canonical shape. Total
// over all inputs: malformed records come out with empty optional fields, a
// generated id, and zero counts. Never panics.
func NormalizePost(raw RawPost) NormalizedPost {
	return NormalizedPost{
		Id:        pickId(raw),
		Content:   pickContent(raw),
		ImageURL:  pickImageURL(raw),
		Likes:     coerceLikes(raw["likes"]),
		Comments:  pickComments(raw),
		Author:    firstOf(raw, "author", "user", "_doc.author", "_doc.user"),
		CreatedAt: pickCreatedAt(raw),
		Raw:       raw,
	}
}

// Normalize runs the full pipeline: list extraction, per-entry decoding,
// then descending sort by timestamp. Entries without a parsable timestamp
// sort as epoch zero and sink toward the end.
func Normalize(payload any) []NormalizedPost {
	rawList := ExtractPostList(payload)

	posts := make([]NormalizedPost, 0, len(rawList))
	for _, raw := range rawList {
		posts = append(posts, NormalizePost(raw))
	}

	sort.Slice(posts, func(i, j int) bool {
		return posts[i].CreatedTime().After(posts[j].CreatedTime())
	})

	return posts
}

func pickContent(raw RawPost) *string {
	for _, key := range []string{"content", "text", "body"} {
		v, ok := raw[key]
		if !ok || v == nil {
			continue
		}
		if s, ok := v.(string); ok {
			return &s
		}
	}
	return nil
}

// imageKeys is the ordered probe table for flat image fields. Probing stops
// at the first key that yields a usable value.
var imageKeys = []string{"imageUrl", "image", "image_url", "img", "photo", "url", "secure_url"}

func pickImageURL(raw RawPost) *string {
	for _, key := range imageKeys {
		v, ok := raw[key]
		if !ok || v == nil {
			continue
		}
		switch val := v.(type) {
		case string:
			if strings.TrimSpace(val) != "" {
				return &val
			}
		case map[string]any:
			// some backends nest the url, e.g. image: {url: "..."}
			for _, sub := range []string{"url", "secure_url"} {
				if s, ok := val[sub].(string); ok && strings.TrimSpace(s) != "" {
					return &s
				}
			}
		}
	}

	// cloudinary-style backends store uploads under an `images` array
	if arr, ok := raw["images"].([]any); ok && len(arr) > 0 {
		switch first := arr[0].(type) {
		case string:
			return &first
		case map[string]any:
			for _, sub := range []string{"secure_url", "url"} {
				if s, ok := first[sub].(string); ok && s != "" {
					return &s
				}
			}
		}
	}

	return nil
}

func coerceLikes(v any) int {
	var n float64
	switch val := v.(type) {
	case float64:
		n = val
	case int:
		n = float64(val)
	case string:
		parsed, err := strconv.ParseFloat(strings.TrimSpace(val), 64)
		if err != nil {
			return 0
		}
		n = parsed
	default:
		return 0
	}

	if n < 0 {
		return 0
	}
	return int(n)
}

func pickComments(raw RawPost) any {
	v, ok := raw["comments"]
	if !ok || v == nil {
		return []any{}
	}
	// arrays are kept as-is; anything else (e.g. a bare count) passes
	// through untouched and is interpreted at render time
	return v
}

func pickId(raw RawPost) string {
	for _, key := range []string{"_id", "id", "_doc._id"} {
		if s := stringValue(firstOf(raw, key)); s != "" {
			return s
		}
	}

	// not stable across reloads, but never empty
	return uuid.New().String()
}

func pickCreatedAt(raw RawPost) string {
	return stringValue(firstOf(raw, "createdAt", "created_at", "_doc.createdAt"))
}

// firstOf returns the first non-nil value among the given keys. A key
// containing a dot is a two-level path, e.g. "_doc._id".
func firstOf(raw RawPost, keys ...string) any {
	for _, key := range keys {
		var v any
		if prefix, rest, found := strings.Cut(key, "."); found {
			if nested, ok := raw[prefix].(map[string]any); ok {
				v = nested[rest]
			}
		} else {
			v = raw[key]
		}

		if v != nil {
			return v
		}
	}
	return nil
}

func stringValue(v any) string {
	switch val := v.(type) {
	case string:
		return val
	case float64:
		return strconv.FormatFloat(val, 'f', -1, 64)
	}
	return ""
}

// timestampFormats covers the shapes the backend has returned so far.
var timestampFormats = []string{
	time.RFC3339Nano,
	time.RFC3339,
	"2006-01-02 15:04:05",
	"2006-01-02",
}

// CreatedTime parses the post's timestamp. Unparsable or missing timestamps
// come back as the zero time, which sorts after everything else in the
// descending feed order.
func (p NormalizedPost) CreatedTime() time.Time {
	if p.CreatedAt == "" {
		return time.Time{}
	}

	for _, layout := range timestampFormats {
		if t, err := time.Parse(layout, p.CreatedAt); err == nil {
			return t
		}
	}

	return time.Time{}
}
