package server

import "devfolio/internal/content"

// navEntry is one header navigation item. Active is exact path equality
// only: /blog/some-post does not light up the /blog entry.
type navEntry struct {
	Label  string
	Path   string
	Active bool
}

// navFor builds the header entries for the current path.
func navFor(path string) []navEntry {
	items := []navEntry{
		{Label: "Home", Path: "/"},
		{Label: "About", Path: "/about"},
		{Label: "Blog", Path: "/blog"},
		{Label: "Projects", Path: "/projects"},
		{Label: "Contact", Path: "/contact"},
	}
	for i := range items {
		items[i].Active = items[i].Path == path
	}
	return items
}

// pageData is the envelope every template receives: the shell (site title,
// nav, footer links) plus page-specific data.
type pageData struct {
	SiteTitle string
	PageTitle string
	Path      string
	Nav       []navEntry
	Profile   content.Profile
	Data      any
}

func (s *Server) page(path, title string, data any) pageData {
	site := s.Site()
	return pageData{
		SiteTitle: site.Profile.Name,
		PageTitle: title,
		Path:      path,
		Nav:       navFor(path),
		Profile:   site.Profile,
		Data:      data,
	}
}
