package models

import "time"

// CachedDocuments is a raw document set together with the time it was
// fetched from the primary source.
type CachedDocuments struct {
	Docs     []Document
	StoredAt time.Time
}

// Fresh reports whether the set is younger than ttl at now.
func (c CachedDocuments) Fresh(now time.Time, ttl time.Duration) bool {
	return now.Sub(c.StoredAt) < ttl
}
