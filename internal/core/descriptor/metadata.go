package descriptor

import "fmt"

// SiteMetadata holds the descriptive fields attached to the generated site.
// It is read-only for consuming plugins: the builder constructs it once per
// build invocation and never mutates it afterwards.
type SiteMetadata struct {
	Title       string `json:"title" yaml:"title"`
	Description string `json:"description" yaml:"description"`
	Author      string `json:"author" yaml:"author"`
}

// NewSiteMetadata creates site metadata with validation. The title is the
// only required field; description and author may be empty.
func NewSiteMetadata(title, description, author string) (SiteMetadata, error) {
	if title == "" {
		return SiteMetadata{}, fmt.Errorf("site title cannot be empty")
	}
	return SiteMetadata{
		Title:       title,
		Description: description,
		Author:      author,
	}, nil
}
