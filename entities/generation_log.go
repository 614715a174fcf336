package entities

import "time"

// GenerationLog is an operational record of one generation attempt. It
// carries counts and the outcome only, never the plan or the user's text.
type GenerationLog struct {
	ID         string    `gorm:"primaryKey;size:36" json:"id"`
	Experience string    `json:"experience"`
	Outcome    string    `gorm:"index" json:"outcome"` // ok|missing_credential|invalid_credential|empty_response|unclassified
	LatencyMS  int64     `json:"latency_ms"`
	Tools      int       `json:"tools"`
	Videos     int       `json:"videos"`
	Courses    int       `json:"courses"`
	CreatedAt  time.Time `json:"created_at" gorm:"index"`
}
