package normalizer

import (
	"strings"
	"unicode/utf8"

	"github.com/chandhuDev/JobLens/internal/models"
)

const minSkillLength = 2

var skillStripper = strings.NewReplacer("'", "", `"`, "", "[", "", "]", "")

// CleanSkills accepts a list of tokens or one comma-delimited string and
// returns lower-case skills in their original order, without junk terms.
func CleanSkills(v models.Value) []string {
	var tokens []string
	switch v.Kind {
	case models.KindList:
		for _, item := range v.List {
			tokens = append(tokens, item.Text())
		}
	case models.KindString, models.KindNumber:
		tokens = strings.Split(skillStripper.Replace(v.Text()), ",")
	default:
		return []string{}
	}

	skills := make([]string, 0, len(tokens))
	for _, t := range tokens {
		s := lower(t)
		if utf8.RuneCountInString(s) < minSkillLength || IsJunkSkill(s) {
			continue
		}
		skills = append(skills, s)
	}
	return skills
}
