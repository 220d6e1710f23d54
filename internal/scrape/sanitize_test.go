package scrape

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSanitizeHTML(t *testing.T) {
	got := SanitizeHTML(`<p onclick="steal()">Hi <strong>there</strong></p><script>alert(1)</script>`)
	assert.Equal(t, `<p>Hi <strong>there</strong></p>`, got)

	assert.Empty(t, SanitizeHTML("  \n "))
	assert.NotContains(t, SanitizeHTML(`<a href="javascript:alert(1)">x</a>`), "javascript:")
}

func TestSanitizeHTML_Concurrent(t *testing.T) {
	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			assert.Equal(t, "<h2>Tips</h2>", SanitizeHTML("<h2>Tips</h2>"))
		}()
	}
	wg.Wait()
}
