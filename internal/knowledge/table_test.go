package knowledge

import (
	"testing"

	"github.com/alexanderramin/peak/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCategories_CoverEveryValidCategory(t *testing.T) {
	cats := Categories()

	require.Len(t, cats, len(domain.ValidCategories))
	for _, c := range cats {
		assert.NotEmpty(t, Nudges(c), "category=%s", c)
	}
	assert.Equal(t, domain.CategoryHeadache, cats[0])
	assert.Equal(t, domain.CategoryDefault, cats[len(cats)-1])
}

func TestNoNudgeSharedAcrossCategories(t *testing.T) {
	seen := make(map[string]domain.Category)
	for _, c := range Categories() {
		for _, n := range Nudges(c) {
			prev, dup := seen[n]
			assert.False(t, dup, "%q in both %s and %s", n, prev, c)
			seen[n] = c
		}
	}
	_, fillerInTable := seen[FillerNudge]
	assert.False(t, fillerInTable)
}

func TestSelect_ReturnsPrefixInTableOrder(t *testing.T) {
	got := Select(domain.CategoryHeadache, 2)

	assert.Equal(t, []string{
		"Gently massage your temples in small circles for 30 seconds.",
		"Take a short break from screens and close your eyes for 1 minute.",
	}, got)
}

func TestSelect_ShortCategoryIsNotPadded(t *testing.T) {
	got := Select(domain.CategoryCreative, 5)

	assert.Len(t, got, 3)
	assert.NotContains(t, got, FillerNudge)
}

func TestSelect_NonPositiveCount(t *testing.T) {
	assert.Empty(t, Select(domain.CategoryBack, 0))
	assert.Empty(t, Select(domain.CategoryBack, -3))
}

func TestSelect_Deterministic(t *testing.T) {
	for _, c := range Categories() {
		for n := 1; n <= 5; n++ {
			assert.Equal(t, Select(c, n), Select(c, n), "category=%s count=%d", c, n)
		}
	}
}

func TestSelect_CallerCannotMutateTable(t *testing.T) {
	got := Select(domain.CategoryDefault, 1)
	got[0] = "mutated"

	assert.Equal(t, "Take 3 deep breaths to center yourself.", Select(domain.CategoryDefault, 1)[0])
}

func TestNudges_UnknownCategoryFallsBackToDefault(t *testing.T) {
	assert.Equal(t, Nudges(domain.CategoryDefault), Nudges(domain.Category("nope")))
}
