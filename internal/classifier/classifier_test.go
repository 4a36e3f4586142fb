package classifier_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/chandhuDev/JobLens/internal/classifier"
)

func TestDefaultTaxonomy_Order(t *testing.T) {
	tax := classifier.DefaultTaxonomy()
	names := tax.Names()

	require.Len(t, names, 34)
	assert.Equal(t, "Engineering Management", names[0])
	assert.Equal(t, "Retail & Hospitality", names[len(names)-1])
	assert.True(t, tax.Has("Data Engineering"))
	assert.False(t, tax.Has(classifier.Other))
}

func TestClassify_KeywordStage(t *testing.T) {
	c := classifier.New(classifier.DefaultTaxonomy(), classifier.Config{})

	testCases := []struct {
		name     string
		title    string
		expected string
	}{
		{"earlier category beats generic developer", "Senior React Developer", "Frontend Development"},
		{"shared keyword resolves to first category", "Warehouse Associate", "Data Engineering"},
		{"trailing space keyword", "QA Engineer", "QA & Testing"},
		{"hr keyword", "Chief HR Officer", "HR & Recruiting"},
		{"case insensitive", "SENIOR DATA SCIENTIST", "Data Science"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			cat, stage := c.Classify(tc.title)
			assert.Equal(t, tc.expected, cat)
			assert.Equal(t, classifier.StageKeyword, stage)
		})
	}
}

func TestClassify_BlankTitle(t *testing.T) {
	c := classifier.New(classifier.DefaultTaxonomy(), classifier.Config{})

	for _, title := range []string{"", "   "} {
		cat, stage := c.Classify(title)
		assert.Equal(t, classifier.Other, cat)
		assert.Equal(t, classifier.StageNone, stage)
	}
}

func TestClassify_LookupStage(t *testing.T) {
	c := classifier.New(classifier.DefaultTaxonomy(), classifier.Config{
		RoleMap: classifier.RoleMap{
			"Rockstar Ninja":         "Sales",
			"Senior React Developer": classifier.Other,
			"Moon Walker":            "Astronaut",
		},
	})

	cat, stage := c.Classify("Rockstar Ninja")
	assert.Equal(t, "Sales", cat)
	assert.Equal(t, classifier.StageLookup, stage)

	// Other in the map is not an answer.
	cat, stage = c.Classify("Senior React Developer")
	assert.Equal(t, "Frontend Development", cat)
	assert.Equal(t, classifier.StageKeyword, stage)

	// Categories outside the taxonomy are ignored.
	_, stage = c.Classify("Moon Walker")
	assert.NotEqual(t, classifier.StageLookup, stage)
}

func TestClassify_LookupTrimsTitle(t *testing.T) {
	tax := classifier.Taxonomy{{Name: "Sales", Keywords: []string{"sales"}}}
	c := classifier.New(tax, classifier.Config{
		RoleMap: classifier.RoleMap{"Rockstar Ninja": "Sales"},
		Scorer:  func(string, string) float64 { return 0 },
	})

	cat, stage := c.Classify("  Rockstar Ninja  ")
	assert.Equal(t, "Sales", cat)
	assert.Equal(t, classifier.StageLookup, stage)
}

func TestClassify_KeywordIsPlainSubstring(t *testing.T) {
	tax := classifier.Taxonomy{{Name: "AI", Keywords: []string{"ai "}}}
	c := classifier.New(tax, classifier.Config{Scorer: func(string, string) float64 { return 0 }})

	cat, stage := c.Classify("Mumbai Office Admin")
	assert.Equal(t, "AI", cat)
	assert.Equal(t, classifier.StageKeyword, stage)
}

func TestClassify_LookupIsCaseSensitive(t *testing.T) {
	tax := classifier.Taxonomy{{Name: "Sales", Keywords: []string{"sales"}}}
	c := classifier.New(tax, classifier.Config{
		RoleMap: classifier.RoleMap{"Rockstar Ninja": "Sales"},
		Scorer:  func(string, string) float64 { return 0 },
	})

	cat, stage := c.Classify("rockstar ninja")
	assert.Equal(t, classifier.Other, cat)
	assert.Equal(t, classifier.StageNone, stage)
}

func TestClassify_FuzzyStage(t *testing.T) {
	tax := classifier.Taxonomy{
		{Name: "Alpha", Keywords: []string{"kubernetes"}},
		{Name: "Beta", Keywords: []string{"javascript"}},
	}
	c := classifier.New(tax, classifier.Config{})

	cat, stage := c.Classify("Kubernets Admin")
	assert.Equal(t, "Alpha", cat)
	assert.Equal(t, classifier.StageFuzzy, stage)

	cat, stage = c.Classify("Gardener")
	assert.Equal(t, classifier.Other, cat)
	assert.Equal(t, classifier.StageNone, stage)
}

func TestClassify_FuzzyThresholdIsStrict(t *testing.T) {
	tax := classifier.Taxonomy{
		{Name: "Alpha", Keywords: []string{"aaa"}},
		{Name: "Beta", Keywords: []string{"bbb"}},
	}
	exactly85 := func(string, string) float64 { return 85 }

	c := classifier.New(tax, classifier.Config{Scorer: exactly85})
	cat, _ := c.Classify("zzz")
	assert.Equal(t, classifier.Other, cat)
}

func TestClassify_FuzzyTieKeepsFirstCategory(t *testing.T) {
	tax := classifier.Taxonomy{
		{Name: "Alpha", Keywords: []string{"aaa"}},
		{Name: "Beta", Keywords: []string{"bbb"}},
		{Name: "Gamma", Keywords: []string{"ccc"}},
	}
	scores := map[string]float64{"aaa": 90, "bbb": 95, "ccc": 95}
	c := classifier.New(tax, classifier.Config{
		Scorer: func(_, choice string) float64 { return scores[choice] },
	})

	cat, stage := c.Classify("zzz")
	assert.Equal(t, "Beta", cat)
	assert.Equal(t, classifier.StageFuzzy, stage)
}

func TestClassify_CustomThreshold(t *testing.T) {
	tax := classifier.Taxonomy{{Name: "Alpha", Keywords: []string{"aaa"}}}
	c := classifier.New(tax, classifier.Config{
		Scorer:    func(string, string) float64 { return 70 },
		Threshold: 60,
	})

	cat, _ := c.Classify("zzz")
	assert.Equal(t, "Alpha", cat)
}

func TestClassifyTitles(t *testing.T) {
	c := classifier.New(classifier.DefaultTaxonomy(), classifier.Config{})
	titles := []string{"Senior React Developer", "QA Engineer", "Senior React Developer", "", "QA Engineer"}

	results, err := c.ClassifyTitles(context.Background(), titles, 2)
	require.NoError(t, err)
	require.Len(t, results, 3)

	for title, res := range results {
		cat, stage := c.Classify(title)
		assert.Equal(t, cat, res.Category, title)
		assert.Equal(t, stage, res.Stage, title)
	}
}

func TestClassifyTitles_Cancelled(t *testing.T) {
	c := classifier.New(classifier.DefaultTaxonomy(), classifier.Config{})
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := c.ClassifyTitles(ctx, []string{"QA Engineer"}, 1)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestStage_String(t *testing.T) {
	assert.Equal(t, "lookup", classifier.StageLookup.String())
	assert.Equal(t, "keyword", classifier.StageKeyword.String())
	assert.Equal(t, "fuzzy", classifier.StageFuzzy.String())
	assert.Equal(t, "none", classifier.StageNone.String())
}
