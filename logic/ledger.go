package logic

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/aksisonline/AV-Champs-tools-kt/dao"
	"github.com/aksisonline/AV-Champs-tools-kt/models"
)

const (
	// DefaultUserID is the single hardcoded identity; there is no
	// multi-user support.
	DefaultUserID = "user-123"

	// SeedBalance is assigned when the balance is first read and no
	// account record exists yet.
	SeedBalance = 250

	// historyCap bounds the stored transaction history; older entries
	// are silently dropped.
	historyCap = 50

	defaultHistoryLimit = 10

	timestampFormat = "2006-01-02T15:04:05.000Z07:00"
)

// PointsLedger owns the points balance and bounded transaction history.
// Every operation re-reads the backing store; there is no cross-call
// cache, and the read-modify-write cycle carries the same lost-update
// hazard the original had.
type PointsLedger struct {
	store    dao.Store
	notifier Notifier
}

func NewPointsLedger(store dao.Store, notifier Notifier) *PointsLedger {
	return &PointsLedger{store: store, notifier: notifier}
}

func (l *PointsLedger) loadAccount() (*models.UserPoints, error) {
	raw, err := l.store.Get(dao.AccountKey)
	if err != nil {
		return nil, err
	}
	var account models.UserPoints
	if err := json.Unmarshal(raw, &account); err != nil {
		return nil, err
	}
	return &account, nil
}

func (l *PointsLedger) saveAccount(account *models.UserPoints) error {
	raw, err := json.Marshal(account)
	if err != nil {
		return err
	}
	return l.store.Set(dao.AccountKey, raw)
}

// GetBalance returns the current point total. A missing account is
// seeded with SeedBalance and persisted. If the most recent stored
// transaction fails verification the account is distrusted for this
// read: an alert is raised and 0 is returned instead of the stored
// total. Store failures also report 0.
func (l *PointsLedger) GetBalance() int {
	account, err := l.loadAccount()
	if err == dao.ErrNotFound {
		seeded := &models.UserPoints{
			Total:        SeedBalance,
			Transactions: []models.PointsTransaction{},
			LastUpdated:  time.Now().UTC().Format(timestampFormat),
		}
		if err := l.saveAccount(seeded); err != nil {
			logrus.WithError(err).Error("failed to seed points account")
		}
		return SeedBalance
	}
	if err != nil {
		logrus.WithError(err).Error("failed to read points account")
		return 0
	}

	if len(account.Transactions) > 0 {
		if !VerifyTransaction(account.Transactions[0]) {
			logrus.Error("points data has been tampered with")
			l.notifier.Notify("Security Alert",
				"Unauthorized modification of points detected. Your account has been flagged for review.")
			return 0
		}
	}

	return account.Total
}

// Apply commits one earn or spend transaction. A missing account is
// treated as {total: 0} here, NOT seeded; this differs from GetBalance
// and matches the source. Returns false with no mutation on an
// insufficient-balance spend or a store failure. Callers re-read the
// balance if they need the fresh value.
func (l *PointsLedger) Apply(amount int, typ models.TransactionType, reason string, metadata map[string]any) bool {
	if amount <= 0 {
		logrus.WithField("amount", amount).Error("transaction amount must be positive")
		return false
	}
	if !typ.Valid() {
		logrus.WithField("type", typ).Error("unknown transaction type")
		return false
	}

	account, err := l.loadAccount()
	if err == dao.ErrNotFound {
		account = &models.UserPoints{Total: 0, Transactions: []models.PointsTransaction{}}
	} else if err != nil {
		logrus.WithError(err).Error("failed to read points account")
		l.notifier.Notify("Transaction Failed",
			"There was an error processing your points transaction. Please try again.")
		return false
	}

	if typ == models.TransactionSpend && account.Total < amount {
		l.notifier.Notify("Insufficient Points",
			fmt.Sprintf("You need %d more points for this transaction.", amount-account.Total))
		return false
	}

	timestamp := time.Now().UTC().Format(timestampFormat)
	txn := models.PointsTransaction{
		ID:        newTransactionID(),
		UserID:    DefaultUserID,
		Amount:    amount,
		Type:      typ,
		Reason:    reason,
		Metadata:  metadata,
		Timestamp: timestamp,
		Status:    models.StatusCompleted,
	}
	txn.VerificationToken = StampTransaction(txn.UserID, txn.Amount, txn.Type, txn.Reason, txn.Timestamp)

	newTotal := account.Total + amount
	if typ == models.TransactionSpend {
		newTotal = account.Total - amount
	}

	transactions := append([]models.PointsTransaction{txn}, account.Transactions...)
	if len(transactions) > historyCap {
		transactions = transactions[:historyCap]
	}

	updated := &models.UserPoints{
		Total:        newTotal,
		Transactions: transactions,
		LastUpdated:  timestamp,
	}
	if err := l.saveAccount(updated); err != nil {
		logrus.WithError(err).Error("failed to persist points account")
		l.notifier.Notify("Transaction Failed",
			"There was an error processing your points transaction. Please try again.")
		return false
	}

	return true
}

// GetHistory returns the newest limit transactions, defaulting to 10.
// No account or a store failure yields an empty slice.
func (l *PointsLedger) GetHistory(limit int) []models.PointsTransaction {
	if limit <= 0 {
		limit = defaultHistoryLimit
	}
	account, err := l.loadAccount()
	if err == dao.ErrNotFound {
		return []models.PointsTransaction{}
	}
	if err != nil {
		logrus.WithError(err).Error("failed to read transaction history")
		return []models.PointsTransaction{}
	}
	if limit > len(account.Transactions) {
		limit = len(account.Transactions)
	}
	return account.Transactions[:limit]
}

// Transaction ids are time-based with a random suffix; uniqueness is
// best-effort under identical-timestamp collision.
func newTransactionID() string {
	return fmt.Sprintf("txn-%d-%s", time.Now().UnixMilli(), uuid.NewString()[:7])
}
