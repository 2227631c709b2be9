package logic

import (
	"encoding/base64"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aksisonline/AV-Champs-tools-kt/models"
)

func stampedTransaction() models.PointsTransaction {
	txn := models.PointsTransaction{
		ID:        "txn-1700000000000-abc1234",
		UserID:    DefaultUserID,
		Amount:    100,
		Type:      models.TransactionSpend,
		Reason:    "Unlocked premium tool: signal-analyzer",
		Metadata:  map[string]any{"toolId": "signal-analyzer"},
		Timestamp: "2024-01-01T10:00:00.000Z",
		Status:    models.StatusCompleted,
	}
	txn.VerificationToken = StampTransaction(txn.UserID, txn.Amount, txn.Type, txn.Reason, txn.Timestamp)
	return txn
}

func TestStampIsDeterministic(t *testing.T) {
	a := StampTransaction("user-123", 50, models.TransactionEarn, "daily bonus", "2024-01-01T10:00:00.000Z")
	b := StampTransaction("user-123", 50, models.TransactionEarn, "daily bonus", "2024-01-01T10:00:00.000Z")
	assert.Equal(t, a, b)
}

func TestStampPayloadOrder(t *testing.T) {
	token := StampTransaction("user-123", 50, models.TransactionEarn, "daily bonus", "2024-01-01T10:00:00.000Z")
	decoded, err := base64.StdEncoding.DecodeString(token)
	require.NoError(t, err)
	assert.Equal(t,
		"user-123:50:earn:daily bonus:2024-01-01T10:00:00.000Z:this-would-be-server-side-only",
		string(decoded))
}

func TestVerifyRoundTrip(t *testing.T) {
	assert.True(t, VerifyTransaction(stampedTransaction()))
}

func TestVerifyDetectsFieldMutation(t *testing.T) {
	mutations := map[string]func(*models.PointsTransaction){
		"amount":    func(txn *models.PointsTransaction) { txn.Amount = 1 },
		"type":      func(txn *models.PointsTransaction) { txn.Type = models.TransactionEarn },
		"reason":    func(txn *models.PointsTransaction) { txn.Reason = "something else" },
		"timestamp": func(txn *models.PointsTransaction) { txn.Timestamp = "2024-06-01T10:00:00.000Z" },
		"userId":    func(txn *models.PointsTransaction) { txn.UserID = "user-456" },
	}
	for name, mutate := range mutations {
		t.Run(name, func(t *testing.T) {
			txn := stampedTransaction()
			mutate(&txn)
			assert.False(t, VerifyTransaction(txn))
		})
	}
}

func TestVerifyIgnoresMetadataAndStatus(t *testing.T) {
	// The original payload never covered these fields.
	txn := stampedTransaction()
	txn.Metadata = map[string]any{"toolId": "network-simulator"}
	txn.Status = models.StatusFailed
	assert.True(t, VerifyTransaction(txn))
}
