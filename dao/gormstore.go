package dao

import (
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/aksisonline/AV-Champs-tools-kt/models"
)

// GormStore backs the key-value contract with a kv_records table:
// one row per document key, replaced in full on every Set.
type GormStore struct {
	db *gorm.DB
}

func NewGormStore(db *gorm.DB) *GormStore {
	return &GormStore{db: db}
}

func (s *GormStore) Get(key string) ([]byte, error) {
	var rec models.KVRecord
	if err := s.db.Where("key = ?", key).First(&rec).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return []byte(rec.Value), nil
}

func (s *GormStore) Set(key string, value []byte) error {
	rec := models.KVRecord{
		Key:       key,
		Value:     string(value),
		UpdatedAt: time.Now(),
	}
	return s.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "key"}},
		UpdateAll: true,
	}).Create(&rec).Error
}
