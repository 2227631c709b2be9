package dao

import "errors"

// ErrNotFound is returned by Get when no document exists under a key.
var ErrNotFound = errors.New("not found")

// Document keys used by the service. Every key holds one JSON document
// that is overwritten whole on each write.
const (
	AccountKey  = "userData"
	UnlockedKey = "unlockedTools"
)

// Store is the local key-value store boundary: synchronous Get/Set of
// whole JSON documents under fixed keys. There is no partial update and
// no transaction primitive; concurrent read-modify-write cycles can
// lose updates, which callers accept.
type Store interface {
	Get(key string) ([]byte, error)
	Set(key string, value []byte) error
}
