// Package classifier maps free-text job titles onto a closed role taxonomy
// through a lookup, keyword and fuzzy cascade.
package classifier

import (
	"strings"

	ahocorasick "github.com/cloudflare/ahocorasick"
)

// Other is the category for titles no stage could place.
const Other = "Other"

const DefaultThreshold = 85.0

// Stage records which step of the cascade produced a category.
type Stage int

const (
	StageNone Stage = iota
	StageLookup
	StageKeyword
	StageFuzzy
)

func (s Stage) String() string {
	switch s {
	case StageLookup:
		return "lookup"
	case StageKeyword:
		return "keyword"
	case StageFuzzy:
		return "fuzzy"
	default:
		return "none"
	}
}

// Result is the outcome of classifying one title.
type Result struct {
	Category string
	Stage    Stage
}

type Config struct {
	RoleMap   RoleMap
	Scorer    Scorer
	Threshold float64
}

// Classifier is immutable after New and safe for concurrent use.
type Classifier struct {
	taxonomy  Taxonomy
	roleMap   RoleMap
	scorer    Scorer
	threshold float64

	matcher  *ahocorasick.Matcher
	keywords []string
	// lowest category index owning each keyword
	kwCategory []int
}

func New(taxonomy Taxonomy, cfg Config) *Classifier {
	c := &Classifier{
		taxonomy:  taxonomy,
		roleMap:   cfg.RoleMap.Valid(taxonomy),
		scorer:    cfg.Scorer,
		threshold: cfg.Threshold,
	}
	if c.scorer == nil {
		c.scorer = PartialRatio
	}
	if c.threshold <= 0 {
		c.threshold = DefaultThreshold
	}

	seen := make(map[string]int)
	for ci, cat := range taxonomy {
		for _, kw := range cat.Keywords {
			kw = strings.ToLower(kw)
			if kw == "" {
				continue
			}
			if _, dup := seen[kw]; dup {
				continue
			}
			seen[kw] = len(c.keywords)
			c.keywords = append(c.keywords, kw)
			c.kwCategory = append(c.kwCategory, ci)
		}
	}
	if len(c.keywords) > 0 {
		c.matcher = ahocorasick.NewStringMatcher(c.keywords)
	}
	return c
}

func (c *Classifier) Taxonomy() Taxonomy {
	return c.taxonomy
}

// Classify returns the category for title and the stage that decided it.
// Blank titles are Other.
func (c *Classifier) Classify(title string) (string, Stage) {
	if strings.TrimSpace(title) == "" {
		return Other, StageNone
	}
	if cat, ok := c.lookup(title); ok {
		return cat, StageLookup
	}

	lowered := strings.ToLower(title)
	if cat, ok := c.keywordMatch(lowered); ok {
		return cat, StageKeyword
	}
	if cat, ok := c.fuzzyMatch(lowered); ok {
		return cat, StageFuzzy
	}
	return Other, StageNone
}

// lookup tries the title as given, then trimmed, since role map entries
// are keyed by the cleaned title a record carries.
func (c *Classifier) lookup(title string) (string, bool) {
	if cat, ok := c.roleMap[title]; ok {
		return cat, true
	}
	if trimmed := strings.TrimSpace(title); trimmed != title {
		cat, ok := c.roleMap[trimmed]
		return cat, ok
	}
	return "", false
}

// keywordMatch finds the earliest category with a keyword contained in
// lowered. All keywords are matched in a single pass.
func (c *Classifier) keywordMatch(lowered string) (string, bool) {
	if c.matcher == nil {
		return "", false
	}
	best := -1
	for _, hit := range c.matcher.Match([]byte(lowered)) {
		if hit >= len(c.kwCategory) {
			continue
		}
		if ci := c.kwCategory[hit]; best < 0 || ci < best {
			best = ci
		}
	}
	if best < 0 {
		return "", false
	}
	return c.taxonomy[best].Name, true
}

// fuzzyMatch scores every category by its best keyword. A category wins
// only with a score above the threshold and strictly above every earlier
// category, so ties keep the first one seen.
func (c *Classifier) fuzzyMatch(lowered string) (string, bool) {
	bestScore := 0.0
	best := -1
	for ci, cat := range c.taxonomy {
		score := 0.0
		for _, kw := range cat.Keywords {
			if s := c.scorer(lowered, strings.ToLower(kw)); s > score {
				score = s
			}
		}
		if score > c.threshold && score > bestScore {
			bestScore = score
			best = ci
		}
	}
	if best < 0 {
		return "", false
	}
	return c.taxonomy[best].Name, true
}
