package models

import "time"

// GenerationLog is one row of the generation audit trail
type GenerationLog struct {
	ID                string
	Description       string
	RequestedProvider string
	Method            string
	Source            string
	CacheHit          bool
	LatencyMs         int
	ErrorMessage      *string
	CreatedAt         time.Time
}
