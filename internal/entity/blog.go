package entity

// BlogPostDetail is the assembled blog post record.
type BlogPostDetail struct {
	Slug          string         `json:"slug"`
	Title         string         `json:"title"`
	Image         string         `json:"image,omitempty"`
	Description   string         `json:"description,omitempty"`
	ContentHTML   string         `json:"contentHtml,omitempty"`
	ContentBlocks []ContentBlock `json:"contentBlocks,omitempty"`
	Author        string         `json:"author,omitempty"`
	PublishedAt   string         `json:"publishedAt,omitempty"`
	Category      string         `json:"category,omitempty"`
	CategoryHref  string         `json:"categoryHref,omitempty"`
	Href          string         `json:"href"`
}
