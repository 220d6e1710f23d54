package request

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWarmRequest_Validate(t *testing.T) {
	assert.NoError(t, (&WarmRequest{}).Validate())
	assert.NoError(t, (&WarmRequest{Slugs: []string{"deck-oven", "میکسر"}}).Validate())

	long := &WarmRequest{Slugs: []string{strings.Repeat("a", 201)}}
	assert.Error(t, long.Validate())

	many := &WarmRequest{Slugs: make([]string, 101)}
	assert.Error(t, many.Validate())
}

func TestContactRequest_Decode(t *testing.T) {
	tests := []struct {
		name string
		body string
		want string
	}{
		{"keeps unknown fields", `{"full_name":"Sara","company":"Nan Bakery","consent":true}`, `{"full_name":"Sara","company":"Nan Bakery","consent":true}`},
		{"empty body", ``, `{}`},
		{"null", `null`, `{}`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var req ContactRequest
			require.NoError(t, req.Decode(strings.NewReader(tt.body)))
			assert.JSONEq(t, tt.want, string(req.ToEntity().Body))
		})
	}

	var req ContactRequest
	assert.Error(t, req.Decode(strings.NewReader(`{not json`)))
}
