package repositories

import (
	"riftrewind/pkg/database/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// CacheRepository is the database fallback behind Redis for reference
// payloads that must survive a Redis outage.
type CacheRepository interface {
	GetKey(key string) (string, error)
	SetKey(key string, value string) error
}

type cacheRepository struct {
	db *gorm.DB
}

// NewCacheRepository creates a cache repository on the given connection.
func NewCacheRepository(db *gorm.DB) CacheRepository {
	return &cacheRepository{db: db}
}

// GetKey gets the stored value for a key.
func (cr *cacheRepository) GetKey(key string) (string, error) {
	cacheEntry := &models.CacheBackup{
		CacheKey: key,
	}

	if err := cr.db.Where(&cacheEntry).First(&cacheEntry).Error; err != nil {
		return "", err
	}

	return cacheEntry.CacheValue, nil
}

// SetKey upserts the value for a key.
func (cr *cacheRepository) SetKey(key string, value string) error {
	cacheEntry := &models.CacheBackup{
		CacheKey:   key,
		CacheValue: value,
	}

	return cr.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "cache_key"}},
		DoUpdates: clause.AssignmentColumns([]string{"cache_value"}),
	}).Create(cacheEntry).Error
}
