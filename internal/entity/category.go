package entity

// CategoryDetail is the assembled product-category page record.
type CategoryDetail struct {
	Slug        string            `json:"slug"`
	Title       string            `json:"title"`
	Image       string            `json:"image,omitempty"`
	Description string            `json:"description,omitempty"`
	Page        int               `json:"page"`
	HasNext     bool              `json:"hasNext"`
	Products    []FeaturedProduct `json:"products,omitempty"`
	Href        string            `json:"href"`
}
