package content

// Profile holds the site owner's static profile information.
type Profile struct {
	Name      string       `yaml:"name"`
	Title     string       `yaml:"title"`
	Tagline   string       `yaml:"tagline"`
	Bio       string       `yaml:"bio"`
	Interests []Interest   `yaml:"interests"`
	Social    []SocialLink `yaml:"social"`
}

// SocialLink maps a platform label to a URL or contact string.
// Kept as an ordered list so the footer renders links in authored order.
type SocialLink struct {
	Platform string `yaml:"platform"`
	URL      string `yaml:"url"`
}

// PostMeta describes one blog post. The markdown body is not part of this
// record; it lives in a separate document referenced by MarkdownFile and is
// fetched on demand by the article loader.
type PostMeta struct {
	Slug         string   `yaml:"slug"`
	Title        string   `yaml:"title"`
	Excerpt      string   `yaml:"excerpt"`
	Date         string   `yaml:"date"`
	ReadTime     string   `yaml:"readTime"`
	Tags         []string `yaml:"tags"`
	MarkdownFile string   `yaml:"markdownFile"`
	Published    bool     `yaml:"published"`
}

// HasTag reports whether the post carries the given tag exactly.
func (p PostMeta) HasTag(tag string) bool {
	for _, t := range p.Tags {
		if t == tag {
			return true
		}
	}
	return false
}

// Project describes one portfolio project. RepoURL and DemoURL are optional;
// the views render the corresponding links only when they are present.
type Project struct {
	ID          string   `yaml:"id"`
	Name        string   `yaml:"name"`
	Description string   `yaml:"description"`
	TechStack   []string `yaml:"techStack"`
	RepoURL     string   `yaml:"repoUrl"`
	DemoURL     string   `yaml:"demoUrl"`
	ImageURL    string   `yaml:"imageUrl"`
	Featured    bool     `yaml:"featured"`
}

// Site is the full static dataset: profile, posts and projects. It is built
// once by Load and treated as read-only afterwards; handlers receive it by
// injection rather than reading package-level state.
type Site struct {
	Profile  Profile    `yaml:"profile"`
	Posts    []PostMeta `yaml:"posts"`
	Projects []Project  `yaml:"projects"`
}

// PostBySlug resolves a slug against the dataset with exact equality.
// Unpublished posts resolve too: direct navigation to a draft is allowed
// even though drafts never appear in listings.
func (s *Site) PostBySlug(slug string) (PostMeta, bool) {
	for _, p := range s.Posts {
		if p.Slug == slug {
			return p, true
		}
	}
	return PostMeta{}, false
}

// PublishedPosts returns the published subset in dataset order.
func (s *Site) PublishedPosts() []PostMeta {
	out := make([]PostMeta, 0, len(s.Posts))
	for _, p := range s.Posts {
		if p.Published {
			out = append(out, p)
		}
	}
	return out
}

// FeaturedProjects returns the projects flagged for the home page, in
// dataset order.
func (s *Site) FeaturedProjects() []Project {
	out := make([]Project, 0, len(s.Projects))
	for _, p := range s.Projects {
		if p.Featured {
			out = append(out, p)
		}
	}
	return out
}
