package models

// UserPoints is the whole points account document as persisted in the
// local store: current balance plus a bounded, newest-first history.
// It is always written as a single record, never field-patched.
type UserPoints struct {
	Total        int                 `json:"total"`
	Transactions []PointsTransaction `json:"transactions"`
	LastUpdated  string              `json:"lastUpdated"`
}
