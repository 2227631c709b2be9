package models

// TransactionType classifies the direction of a points movement.
type TransactionType string

const (
	TransactionEarn  TransactionType = "earn"
	TransactionSpend TransactionType = "spend"
)

// Valid reports whether t is one of the known transaction types.
func (t TransactionType) Valid() bool {
	return t == TransactionEarn || t == TransactionSpend
}

// TransactionStatus is the lifecycle state of a points transaction.
// Only StatusCompleted is produced by the current flow; the other two
// are reserved.
type TransactionStatus string

const (
	StatusPending   TransactionStatus = "pending"
	StatusCompleted TransactionStatus = "completed"
	StatusFailed    TransactionStatus = "failed"
)

// PointsTransaction is a single entry in a user's points history.
type PointsTransaction struct {
	ID                string            `json:"id"`
	UserID            string            `json:"userId"`
	Amount            int               `json:"amount"`
	Type              TransactionType   `json:"type"`
	Reason            string            `json:"reason"`
	Metadata          map[string]any    `json:"metadata,omitempty"`
	Timestamp         string            `json:"timestamp"`
	Status            TransactionStatus `json:"status"`
	VerificationToken string            `json:"verificationToken"`
}
