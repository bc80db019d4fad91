package content

import (
	"fmt"
	"io/fs"

	"gopkg.in/yaml.v3"
)

// SiteFile is the dataset document name looked up inside a content
// directory or embedded filesystem.
const SiteFile = "site.yaml"

// Load reads and decodes the site dataset from fsys. Slug uniqueness is
// enforced here: route resolution for /blog/{slug} is ambiguous otherwise,
// and load time is the authoring-time boundary where malformed data should
// surface.
func Load(fsys fs.FS) (*Site, error) {
	raw, err := fs.ReadFile(fsys, SiteFile)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", SiteFile, err)
	}

	var site Site
	if err := yaml.Unmarshal(raw, &site); err != nil {
		return nil, fmt.Errorf("unmarshalling %s: %w", SiteFile, err)
	}

	seen := make(map[string]struct{}, len(site.Posts))
	for _, p := range site.Posts {
		if p.Slug == "" {
			return nil, fmt.Errorf("post %q has an empty slug", p.Title)
		}
		if _, dup := seen[p.Slug]; dup {
			return nil, fmt.Errorf("duplicate post slug %q", p.Slug)
		}
		seen[p.Slug] = struct{}{}
		if p.MarkdownFile == "" {
			return nil, fmt.Errorf("post %q has no markdown file", p.Slug)
		}
	}

	return &site, nil
}
