package entity

// BlockType tags the variant carried by a ContentBlock.
type BlockType string

const (
	BlockHeading   BlockType = "heading"
	BlockParagraph BlockType = "paragraph"
	BlockList      BlockType = "list"
	BlockImage     BlockType = "image"
	BlockVideo     BlockType = "video"
)

// ContentBlock is one typed unit of extracted content. Only the fields that
// belong to Type are populated; the rest are omitted from JSON.
type ContentBlock struct {
	Type  BlockType `json:"type"`
	Text  string    `json:"text,omitempty"`
	Items []string  `json:"items,omitempty"`
	Src   string    `json:"src,omitempty"`
	Alt   string    `json:"alt,omitempty"`
}

func Heading(text string) ContentBlock   { return ContentBlock{Type: BlockHeading, Text: text} }
func Paragraph(text string) ContentBlock { return ContentBlock{Type: BlockParagraph, Text: text} }
func List(items []string) ContentBlock   { return ContentBlock{Type: BlockList, Items: items} }
func Video(src string) ContentBlock      { return ContentBlock{Type: BlockVideo, Src: src} }

func Image(src, alt string) ContentBlock {
	return ContentBlock{Type: BlockImage, Src: src, Alt: alt}
}

// SpecPair is one label/value row of a model's specification card.
type SpecPair struct {
	Label string `json:"label"`
	Value string `json:"value"`
}

// SpecModel is a model identifier and its ordered specification rows.
type SpecModel struct {
	Name  string     `json:"name"`
	Specs []SpecPair `json:"specs"`
}

// NavItem is an in-page anchor and the label shown for it.
type NavItem struct {
	ID    string `json:"id"`
	Label string `json:"label"`
}

// FaqItem is one question/answer pair of an FAQ accordion.
type FaqItem struct {
	Question string `json:"question"`
	Answer   string `json:"answer"`
}
