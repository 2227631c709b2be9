package logic

import (
	"encoding/base64"
	"fmt"

	"github.com/aksisonline/AV-Champs-tools-kt/models"
)

// Shared static secret embedded client-side in the original. The token
// scheme only detects naive tampering, not a motivated attacker, and is
// kept as-is for behavioral fidelity.
const transactionSecret = "this-would-be-server-side-only"

// StampTransaction derives the verification token for a transaction:
// an order-sensitive concatenation of the covered fields plus the
// shared secret, base64 encoded. Deterministic; metadata and status are
// not covered.
func StampTransaction(userID string, amount int, typ models.TransactionType, reason, timestamp string) string {
	payload := fmt.Sprintf("%s:%d:%s:%s:%s:%s", userID, amount, typ, reason, timestamp, transactionSecret)
	return base64.StdEncoding.EncodeToString([]byte(payload))
}

// VerifyTransaction recomputes the stamp over txn's fields and compares
// it to the stored token for exact equality.
func VerifyTransaction(txn models.PointsTransaction) bool {
	expected := StampTransaction(txn.UserID, txn.Amount, txn.Type, txn.Reason, txn.Timestamp)
	return txn.VerificationToken == expected
}
