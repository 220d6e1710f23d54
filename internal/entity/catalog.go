package entity

import "encoding/json"

// CatalogCategory is a category as returned by the structured catalog API.
type CatalogCategory struct {
	ID           int64               `json:"id"`
	Name         string              `json:"name"`
	Slug         string              `json:"slug"`
	RootCategory *CatalogRootSummary `json:"root_category,omitempty"`
}

// CatalogRootSummary is the root category reference embedded in a category.
type CatalogRootSummary struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
	Slug string `json:"slug"`
}

// CatalogProduct is a product list item of the structured catalog API.
// PrimaryImage is either a URL string or an object with a url field.
type CatalogProduct struct {
	ID               int64             `json:"id"`
	Title            string            `json:"title"`
	Slug             string            `json:"slug"`
	ShortDescription string            `json:"short_description,omitempty"`
	HeroImage        string            `json:"hero_image,omitempty"`
	PrimaryImage     json.RawMessage   `json:"primary_image,omitempty"`
	Categories       []CatalogCategory `json:"categories,omitempty"`
	IsFeatured       bool              `json:"is_featured,omitempty"`
	PublishedAt      string            `json:"published_at,omitempty"`
}

// CatalogProductPage is one page of the structured product listing.
type CatalogProductPage struct {
	Count    int              `json:"count"`
	Next     *string          `json:"next"`
	Previous *string          `json:"previous"`
	Results  []CatalogProduct `json:"results"`
}

// ProductCategoryRef is a category attached to a product list item.
type ProductCategoryRef struct {
	Name     string `json:"name"`
	Slug     string `json:"slug"`
	RootName string `json:"rootName,omitempty"`
	RootSlug string `json:"rootSlug,omitempty"`
}

// ProductListItem is the front-end shape of one product in a listing.
type ProductListItem struct {
	Title      string               `json:"title"`
	Href       string               `json:"href"`
	Image      string               `json:"image"`
	Price      string               `json:"price,omitempty"`
	Slug       string               `json:"slug"`
	CartHref   string               `json:"cartHref,omitempty"`
	Categories []ProductCategoryRef `json:"categories,omitempty"`
}

// ProductSection groups listing items under a heading.
type ProductSection struct {
	Title       string            `json:"title"`
	Description string            `json:"description,omitempty"`
	Items       []ProductListItem `json:"items"`
}

// ProductList is the front-end product listing response.
type ProductList struct {
	Page     int               `json:"page"`
	Items    []ProductListItem `json:"items"`
	HasNext  bool              `json:"hasNext"`
	Sections []ProductSection  `json:"sections"`
}

// ContactMessage is the contact form body, relayed to the catalog API as
// received so fields added by the front end are not dropped.
type ContactMessage struct {
	Body json.RawMessage
}
