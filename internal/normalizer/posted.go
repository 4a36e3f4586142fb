package normalizer

import (
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/chandhuDev/JobLens/internal/models"
)

var postedLayouts = []string{time.RFC3339, "2006-01-02 15:04:05", "2006-01-02"}

// ParsePostedAt reads unix seconds (number or numeric string) or a
// date string. Anything else yields nil.
func ParsePostedAt(v models.Value) *time.Time {
	var secs float64
	switch v.Kind {
	case models.KindNumber:
		secs = v.Num
	case models.KindString:
		s := strings.TrimSpace(v.Str)
		f, err := strconv.ParseFloat(s, 64)
		if err != nil {
			for _, layout := range postedLayouts {
				if t, perr := time.Parse(layout, s); perr == nil {
					t = t.UTC()
					return &t
				}
			}
			return nil
		}
		secs = f
	default:
		return nil
	}

	if math.IsNaN(secs) || math.IsInf(secs, 0) || secs <= 0 {
		return nil
	}
	whole, frac := math.Modf(secs)
	t := time.Unix(int64(whole), int64(frac*float64(time.Second))).UTC()
	return &t
}
