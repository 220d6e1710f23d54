package scrape

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDecodeEntities_NamedTable(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"Tom &amp; Jerry", "Tom & Jerry"},
		{"&quot;oven&quot;", `"oven"`},
		{"it&#039;s", "it's"},
		{"it&apos;s", "it's"},
		{"a&nbsp;b", "a\u00a0b"},
		{"&lt;b&gt;", "<b>"},
		{"&lsquo;x&rsquo; &ldquo;y&rdquo;", "‘x’ “y”"},
		{"wait&hellip;", "wait…"},
		{"می&zwnj;شود", "می\u200cشود"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, DecodeEntities(tt.in), tt.in)
	}
}

func TestDecodeEntities_Numeric(t *testing.T) {
	assert.Equal(t, "م", DecodeEntities("&#1605;"))
	assert.Equal(t, "م", DecodeEntities("&#x645;"))
	assert.Equal(t, "م", DecodeEntities("&#X645;"))
	assert.Equal(t, "€", DecodeEntities("&#8364;"))
}

func TestDecodeEntities_LeavesUnknownAndInvalid(t *testing.T) {
	assert.Equal(t, "&copy; 2024", DecodeEntities("&copy; 2024"))
	assert.Equal(t, "&#xD800;", DecodeEntities("&#xD800;"))
	assert.Equal(t, "&#0;", DecodeEntities("&#0;"))
	assert.Equal(t, "AT&T", DecodeEntities("AT&T"))
}

func TestDecodeEntities_SinglePass(t *testing.T) {
	assert.Equal(t, "&lt;", DecodeEntities("&amp;lt;"))
}

func TestEntityRoundTrip(t *testing.T) {
	for _, e := range entityTable {
		encoded := "&" + e.Name + ";"
		decoded := DecodeEntities(encoded)
		assert.Equal(t, string(e.Rune), decoded, e.Name)
		assert.Equal(t, decoded, DecodeEntities(EncodeEntities(decoded)), e.Name)
	}

	for _, r := range []rune{'م', 'ی', '€', '→', 'A'} {
		dec := fmt.Sprintf("&#%d;", r)
		hex := fmt.Sprintf("&#x%x;", r)
		assert.Equal(t, string(r), DecodeEntities(dec))
		assert.Equal(t, string(r), DecodeEntities(hex))
		assert.Equal(t, string(r), DecodeEntities(EncodeEntities(DecodeEntities(dec))))
	}
}

func TestEncodeEntities_CanonicalNames(t *testing.T) {
	assert.Equal(t, "&lt;p&gt; &amp; &#039;", EncodeEntities("<p> & '"))
	assert.Equal(t, "فر صنعتی", EncodeEntities("فر صنعتی"))
}

func TestStripTags(t *testing.T) {
	in := `<p>Hello <strong>world</strong></p><script>var a = "<p>x</p>";</script><style>p{}</style><noscript><img src="a.jpg"></noscript><p>Bye</p>`
	assert.Equal(t, "Hello world Bye", CollapseWhitespace(StripTags(in)))
}

func TestCleanText(t *testing.T) {
	assert.Equal(t, "Oven & Mixer “Pro”", CleanText("  <span>Oven &amp; Mixer</span>&nbsp;\n\t&ldquo;Pro&rdquo; "))
	assert.Equal(t, "", CleanText("<br/>&nbsp;"))
}
