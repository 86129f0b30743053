package slug

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGenerate(t *testing.T) {
	cases := []struct {
		title    string
		expected string
	}{
		{"Sun & Co. Javea", "sun-co-javea"},
		{"Casa Basílico – Lisbon!!", "casa-baslico-lisbon"},
		{"Café São Paulo", "caf-so-paulo"},
		{"  Outpost   Ubud  ", "outpost-ubud"},
		{"already-a-slug", "already-a-slug"},
		{"---", ""},
		{"ДОМ", ""},
	}
	for _, c := range cases {
		assert.Equal(t, c.expected, Generate(c.title), "title %q", c.title)
	}
}

func TestGenerateIdempotent(t *testing.T) {
	titles := []string{"Casa Basílico – Lisbon!!", "Sun & Co. Javea", "plain"}
	for _, title := range titles {
		once := Generate(title)
		assert.Equal(t, once, Generate(once))
	}
}

func TestExtractLegacyId(t *testing.T) {
	id, ok := ExtractLegacyId("/listing/42")
	assert.True(t, ok)
	assert.Equal(t, int64(42), id)

	id, ok = ExtractLegacyId("/listing/42?utm_source=x")
	assert.True(t, ok)
	assert.Equal(t, int64(42), id)

	_, ok = ExtractLegacyId("/blog/something")
	assert.False(t, ok)

	_, ok = ExtractLegacyId("/listing/not-a-number")
	assert.False(t, ok)
}
