package logic

import (
	"encoding/json"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aksisonline/AV-Champs-tools-kt/dao"
	"github.com/aksisonline/AV-Champs-tools-kt/models"
)

type memStore struct {
	docs   map[string][]byte
	getErr error
	setErr error
	sets   int
}

func newMemStore() *memStore {
	return &memStore{docs: map[string][]byte{}}
}

func (s *memStore) Get(key string) ([]byte, error) {
	if s.getErr != nil {
		return nil, s.getErr
	}
	doc, ok := s.docs[key]
	if !ok {
		return nil, dao.ErrNotFound
	}
	return doc, nil
}

func (s *memStore) Set(key string, value []byte) error {
	if s.setErr != nil {
		return s.setErr
	}
	s.sets++
	s.docs[key] = append([]byte(nil), value...)
	return nil
}

func (s *memStore) account(t *testing.T) models.UserPoints {
	t.Helper()
	raw, ok := s.docs[dao.AccountKey]
	require.True(t, ok, "no account document stored")
	var account models.UserPoints
	require.NoError(t, json.Unmarshal(raw, &account))
	return account
}

type recordingNotifier struct {
	titles []string
}

func (n *recordingNotifier) Notify(title, message string) {
	n.titles = append(n.titles, title)
}

func newTestLedger() (*PointsLedger, *memStore, *recordingNotifier) {
	store := newMemStore()
	notifier := &recordingNotifier{}
	return NewPointsLedger(store, notifier), store, notifier
}

func TestGetBalanceSeedsMissingAccount(t *testing.T) {
	ledger, store, _ := newTestLedger()

	assert.Equal(t, SeedBalance, ledger.GetBalance())
	account := store.account(t)
	assert.Equal(t, SeedBalance, account.Total)
	assert.Empty(t, account.Transactions)

	// A second immediate read returns the same value without re-seeding.
	writes := store.sets
	assert.Equal(t, SeedBalance, ledger.GetBalance())
	assert.Equal(t, writes, store.sets)
}

func TestApplyTreatsMissingAccountAsZero(t *testing.T) {
	// The write path does NOT seed: a spend against an absent account is
	// rejected, and an earn starts from zero. This deliberately differs
	// from the read path above.
	ledger, store, notifier := newTestLedger()

	assert.False(t, ledger.Apply(10, models.TransactionSpend, "unlock attempt", nil))
	assert.Contains(t, notifier.titles, "Insufficient Points")

	require.True(t, ledger.Apply(10, models.TransactionEarn, "bonus", nil))
	assert.Equal(t, 10, store.account(t).Total)
}

func TestApplyEarnAndSpend(t *testing.T) {
	ledger, store, _ := newTestLedger()
	ledger.GetBalance() // seed 250

	require.True(t, ledger.Apply(100, models.TransactionSpend, "unlock X", nil))
	account := store.account(t)
	assert.Equal(t, 150, account.Total)
	require.Len(t, account.Transactions, 1)
	head := account.Transactions[0]
	assert.Equal(t, DefaultUserID, head.UserID)
	assert.Equal(t, models.StatusCompleted, head.Status)
	assert.True(t, VerifyTransaction(head))

	// Second spend over the remaining balance fails without mutation.
	assert.False(t, ledger.Apply(200, models.TransactionSpend, "unlock Y", nil))
	account = store.account(t)
	assert.Equal(t, 150, account.Total)
	assert.Len(t, account.Transactions, 1)

	assert.Equal(t, 150, ledger.GetBalance())
}

func TestApplyRejectsNonPositiveAmount(t *testing.T) {
	ledger, store, _ := newTestLedger()
	ledger.GetBalance()

	assert.False(t, ledger.Apply(0, models.TransactionEarn, "nothing", nil))
	assert.False(t, ledger.Apply(-5, models.TransactionEarn, "negative", nil))
	assert.Empty(t, store.account(t).Transactions)
}

func TestHistoryBoundedToFifty(t *testing.T) {
	ledger, store, _ := newTestLedger()

	for i := 0; i < 60; i++ {
		require.True(t, ledger.Apply(1, models.TransactionEarn, fmt.Sprintf("earn %d", i), nil))
	}

	account := store.account(t)
	assert.Equal(t, 60, account.Total)
	require.Len(t, account.Transactions, 50)
	// Newest first: the most recent commit is at the head.
	assert.Equal(t, "earn 59", account.Transactions[0].Reason)
	assert.Equal(t, "earn 10", account.Transactions[49].Reason)
}

func TestGetHistoryLimits(t *testing.T) {
	ledger, _, _ := newTestLedger()

	assert.Empty(t, ledger.GetHistory(0))

	for i := 0; i < 15; i++ {
		require.True(t, ledger.Apply(1, models.TransactionEarn, fmt.Sprintf("earn %d", i), nil))
	}

	assert.Len(t, ledger.GetHistory(0), 10) // default limit
	assert.Len(t, ledger.GetHistory(5), 5)
	assert.Len(t, ledger.GetHistory(100), 15)
	assert.Equal(t, "earn 14", ledger.GetHistory(1)[0].Reason)
}

func TestTamperedAccountReadsAsZero(t *testing.T) {
	ledger, store, notifier := newTestLedger()
	ledger.GetBalance()
	require.True(t, ledger.Apply(100, models.TransactionEarn, "bonus", nil))

	// Bump the persisted amount behind the ledger's back.
	account := store.account(t)
	account.Transactions[0].Amount = 9999
	account.Total = 10249
	raw, err := json.Marshal(account)
	require.NoError(t, err)
	require.NoError(t, store.Set(dao.AccountKey, raw))

	assert.Equal(t, 0, ledger.GetBalance())
	assert.Contains(t, notifier.titles, "Security Alert")
}

func TestStoreFailuresReturnSafeDefaults(t *testing.T) {
	ledger, store, _ := newTestLedger()
	ledger.GetBalance()

	store.getErr = errors.New("disk gone")
	assert.Equal(t, 0, ledger.GetBalance())
	assert.False(t, ledger.Apply(10, models.TransactionEarn, "bonus", nil))
	assert.Empty(t, ledger.GetHistory(5))

	store.getErr = nil
	store.setErr = errors.New("disk full")
	assert.False(t, ledger.Apply(10, models.TransactionEarn, "bonus", nil))
	assert.Equal(t, SeedBalance, ledger.GetBalance())
}

func TestBalanceNeverNegative(t *testing.T) {
	ledger, store, _ := newTestLedger()
	ledger.GetBalance()

	amounts := []int{100, 100, 50, 25, 10}
	for _, amount := range amounts {
		ledger.Apply(amount, models.TransactionSpend, "drain", nil)
		assert.GreaterOrEqual(t, store.account(t).Total, 0)
	}
}
