package models

import "time"

// KVRecord backs the postgres store: one row per document key, value
// holding the whole JSON document. Writes replace the row in full.
type KVRecord struct {
	Key       string    `gorm:"primaryKey;size:64" json:"key"`
	Value     string    `gorm:"type:text;not null" json:"value"`
	UpdatedAt time.Time `json:"updated_at"`
}
