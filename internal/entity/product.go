package entity

// ProductDetail is the assembled product page record.
type ProductDetail struct {
	Slug              string         `json:"slug"`
	Title             string         `json:"title"`
	Image             string         `json:"image,omitempty"`
	Price             string         `json:"price,omitempty"`
	Description       string         `json:"description,omitempty"`
	Highlight         string         `json:"highlight,omitempty"`
	HighlightHTML     string         `json:"highlightHtml,omitempty"`
	SummaryHTML       string         `json:"summaryHtml,omitempty"`
	Category          string         `json:"category,omitempty"`
	CategoryHref      string         `json:"categoryHref,omitempty"`
	CartHref          string         `json:"cartHref,omitempty"`
	HeroImage         string         `json:"heroImage,omitempty"`
	HeroAlt           string         `json:"heroAlt,omitempty"`
	HeroEnglish       string         `json:"heroEnglish,omitempty"`
	HeroTitle         string         `json:"heroTitle,omitempty"`
	HeroTagline       string         `json:"heroTagline,omitempty"`
	HeroVideo         string         `json:"heroVideo,omitempty"`
	HeroCatalogHref   string         `json:"heroCatalogHref,omitempty"`
	HeroCatalogLabel  string         `json:"heroCatalogLabel,omitempty"`
	NavItems          []NavItem      `json:"navItems,omitempty"`
	MoarefiBlocks     []ContentBlock `json:"moarefiBlocks,omitempty"`
	MoshakhasatBlocks []ContentBlock `json:"moshakhasatBlocks,omitempty"`
	VideoBlocks       []ContentBlock `json:"videoBlocks,omitempty"`
	SpecModels        []SpecModel    `json:"specModels,omitempty"`
	SpecDownloadHref  string         `json:"specDownloadHref,omitempty"`
	VideoGallery      []string       `json:"videoGallery,omitempty"`
	FaqItems          []FaqItem      `json:"faqItems,omitempty"`
	Href              string         `json:"href"`
}

// FeaturedProduct is one card of the home page's featured products strip.
type FeaturedProduct struct {
	Title string `json:"title"`
	Href  string `json:"href"`
	Image string `json:"image"`
}
