package posting

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSlugWithBrand(t *testing.T) {
	assert.Equal(t, "backend-engineer-at-acme", Slug("Backend Engineer", "Acme"))
	assert.Equal(t, "senior-go-developer-at-okaziyo-inc", Slug("Senior Go Developer", "Okaziyo, Inc."))
}

func TestSlugWithoutBrand(t *testing.T) {
	assert.Equal(t, "graduate-scholarships-2026", Slug("Graduate Scholarships 2026", ""))
}

func TestSlugIsDeterministic(t *testing.T) {
	first := Slug("Backend Engineer", "Acme")
	for i := 0; i < 10; i++ {
		assert.Equal(t, first, Slug("Backend Engineer", "Acme"))
	}
}

func TestSlugNormalization(t *testing.T) {
	cases := map[string]string{
		"  Spaced   Out  Title ": "spaced-out-title",
		"UPPER case":             "upper-case",
		"C++ & Go!":              "c-and-go",
		"already-hyphenated":     "already-hyphenated",
	}

	for title, want := range cases {
		got := Slug(title, "")
		assert.Equal(t, want, got)
		assert.NotContains(t, got, " ")
		assert.Equal(t, strings.ToLower(got), got)
	}
}

func TestSlugPunctuationOnlyTitleIsEmpty(t *testing.T) {
	// An empty slug fails the required-slug validation at posting
	// construction, before any insert happens.
	assert.Equal(t, "", Slug("!!!", ""))
}
