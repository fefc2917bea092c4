package models

import "time"

// BaseModel carries the surrogate id and bookkeeping timestamps shared by all
// tables. Deletes are real row deletes, not soft deletes: account removal must
// actually cascade.
type BaseModel struct {
	ID        uint `gorm:"primaryKey"`
	CreatedAt time.Time
	UpdatedAt time.Time
}
