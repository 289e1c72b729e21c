package models

import "time"

// SourceUnknown is stored when a subscription arrives without a tracking tag.
const SourceUnknown = "unknown"

// EarlyAccessRecord is one row of the early_access table. Email is unique:
// subscribing again overwrites Source and refreshes UpdatedAt.
type EarlyAccessRecord struct {
	ID        int64     `json:"id"`
	Email     string    `json:"email"`
	Source    string    `json:"source"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"-"`
}
