package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIsSupportedLanguage(t *testing.T) {
	for _, lang := range Languages {
		assert.True(t, IsSupportedLanguage(lang), lang)
	}

	assert.False(t, IsSupportedLanguage("hindi"), "comparison is exact")
	assert.False(t, IsSupportedLanguage(""))
	assert.False(t, IsSupportedLanguage("Bengali"))
}

func TestDefaultLanguageIsSupported(t *testing.T) {
	assert.True(t, IsSupportedLanguage(DefaultLanguage))
}

func TestSchemes(t *testing.T) {
	all := Schemes()
	require.Len(t, all, 6)

	seenIDs := map[int]bool{}
	for _, s := range all {
		assert.False(t, seenIDs[s.ID], "duplicate scheme id %d", s.ID)
		seenIDs[s.ID] = true

		assert.NotEmpty(t, s.Name)
		assert.NotEmpty(t, s.Category)
		assert.NotEmpty(t, s.ShortDescription)
		assert.NotEmpty(t, s.FullDescription)
		assert.NotEmpty(t, s.Benefits)
		assert.NotEmpty(t, s.Eligibility)
		assert.NotEmpty(t, s.Documents)
		assert.NotEmpty(t, s.ApplyLink)
	}

	// mutating the returned slice must not affect the directory
	all[0].Name = "Mutated"
	assert.Equal(t, "PM-KISAN Samman Nidhi", Schemes()[0].Name)
}

func TestSchemeByID(t *testing.T) {
	s, ok := SchemeByID(3)
	require.True(t, ok)
	assert.Equal(t, "Kisan Credit Card (KCC)", s.Name)

	_, ok = SchemeByID(99)
	assert.False(t, ok)
}

func TestSchemesByCategory(t *testing.T) {
	matched := SchemesByCategory("direct benefit transfer")
	require.Len(t, matched, 1)
	assert.Equal(t, "PM-KISAN Samman Nidhi", matched[0].Name)

	assert.Empty(t, SchemesByCategory("No Such Category"))
}
