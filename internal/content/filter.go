package content

import "strings"

// relatedLimit caps the related-articles sidebar.
const relatedLimit = 3

// FilterPosts returns the published posts matching a free-text query and a
// tag, in dataset order. The query matches case-insensitively as a substring
// of the title or the excerpt; an empty query matches everything. The tag,
// when non-empty, requires exact membership in the post's tag set. Filtering
// never re-sorts: dataset order is authored recency.
func FilterPosts(posts []PostMeta, query, tag string) []PostMeta {
	q := strings.ToLower(query)
	out := make([]PostMeta, 0, len(posts))
	for _, p := range posts {
		if !p.Published {
			continue
		}
		if q != "" &&
			!strings.Contains(strings.ToLower(p.Title), q) &&
			!strings.Contains(strings.ToLower(p.Excerpt), q) {
			continue
		}
		if tag != "" && !p.HasTag(tag) {
			continue
		}
		out = append(out, p)
	}
	return out
}

// Tags returns the tag vocabulary offered to the user: the union of tags
// across all posts, unpublished ones included, in first-seen order.
func Tags(posts []PostMeta) []string {
	seen := make(map[string]struct{})
	var out []string
	for _, p := range posts {
		for _, t := range p.Tags {
			if _, ok := seen[t]; ok {
				continue
			}
			seen[t] = struct{}{}
			out = append(out, t)
		}
	}
	return out
}

// Related returns the posts shown in the "related articles" sidebar: the
// first three published posts in dataset order whose slug differs from the
// current one. Not similarity-ranked, never padded; fewer than three (down
// to zero) is a valid result.
func Related(posts []PostMeta, slug string) []PostMeta {
	out := make([]PostMeta, 0, relatedLimit)
	for _, p := range posts {
		if p.Slug == slug || !p.Published {
			continue
		}
		out = append(out, p)
		if len(out) == relatedLimit {
			break
		}
	}
	return out
}
