package request

import (
	"bytes"
	"encoding/json"
	"errors"
	"io"

	"github.com/go-playground/validator/v10"

	"github.com/user/catalog-service/internal/entity"
)

var validate = validator.New()

var emptyObject = json.RawMessage(`{}`)

// ContactRequest is the contact form body. It is kept as raw JSON and
// forwarded as received.
type ContactRequest struct {
	Body json.RawMessage
}

// Decode reads one JSON value from r. An empty body or null becomes {}.
func (c *ContactRequest) Decode(r io.Reader) error {
	var raw json.RawMessage
	if err := json.NewDecoder(r).Decode(&raw); err != nil && !errors.Is(err, io.EOF) {
		return err
	}
	if len(raw) == 0 || bytes.Equal(bytes.TrimSpace(raw), []byte("null")) {
		raw = emptyObject
	}
	c.Body = raw
	return nil
}

func (c *ContactRequest) ToEntity() *entity.ContactMessage {
	return &entity.ContactMessage{Body: c.Body}
}

// WarmRequest lists product slugs to warm. An empty body warms the featured products.
type WarmRequest struct {
	Slugs []string `json:"slugs" validate:"max=100,dive,max=200"`
}

// Validate validates the WarmRequest using the validator.
func (r *WarmRequest) Validate() error {
	return validate.Struct(r)
}
