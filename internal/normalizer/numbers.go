// Package normalizer turns raw job-posting fields into typed values. Every
// function is total: input it cannot use degrades to a default, and the
// second return value reports whether a real value was parsed.
package normalizer

import (
	"math"
	"regexp"
	"strconv"
	"strings"

	"github.com/chandhuDev/JobLens/internal/models"
)

var numberPattern = regexp.MustCompile(`\d+\.?\d*`)

// Compact salary figures ("12 LPA", "8-10") are written in lakh.
const (
	compactSalaryLimit = 100
	lakh               = 100000
)

var salaryStripper = strings.NewReplacer(",", "", "₹", "", "$", "", "€", "", "£", "")

// ParseSalary returns the salary in whole currency units, 0 when unknown or
// undisclosed. Ranges are averaged.
func ParseSalary(v models.Value) (int64, bool) {
	if v.IsAbsent() || v.Kind == models.KindList {
		return 0, false
	}

	s := strings.TrimSpace(salaryStripper.Replace(strings.ToLower(v.Text())))
	if strings.Contains(s, "not") || strings.Contains(s, "disclosed") {
		return 0, false
	}

	nums := extractNumbers(s)
	if len(nums) == 0 {
		return 0, false
	}

	var sum float64
	for _, n := range nums {
		sum += n
	}
	avg := sum / float64(len(nums))
	if avg < compactSalaryLimit {
		avg *= lakh
	}
	// Digit runs too long for int64 are noise, not a salary.
	if math.IsInf(avg, 0) || avg >= math.MaxInt64 {
		return 0, false
	}
	return int64(avg), true
}

// ParseExperience returns the first number in the field, e.g. 3 for
// "3-5 years", and 0 when there is none.
func ParseExperience(v models.Value) (float64, bool) {
	if v.IsAbsent() || v.Kind == models.KindList {
		return 0, false
	}
	if v.Kind == models.KindNumber {
		if v.Num < 0 {
			return 0, false
		}
		return v.Num, true
	}

	nums := extractNumbers(v.Text())
	if len(nums) == 0 {
		return 0, false
	}
	return nums[0], true
}

func extractNumbers(s string) []float64 {
	matches := numberPattern.FindAllString(s, -1)
	nums := make([]float64, 0, len(matches))
	for _, m := range matches {
		f, err := strconv.ParseFloat(strings.TrimSuffix(m, "."), 64)
		if err != nil {
			continue
		}
		nums = append(nums, f)
	}
	return nums
}
