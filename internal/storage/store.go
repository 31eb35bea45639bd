package storage

import (
	"errors"
	"fmt"

	"finderinfo/internal/models"

	log "github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

// gormStore holds the queries shared by the SQLite and PostgreSQL stores.
type gormStore struct {
	db *gorm.DB
}

func (s *gormStore) AutoMigrate() error {
	log.Debugln("Running snapshot database migrations...")
	return s.db.AutoMigrate(&models.Snapshot{})
}

func (s *gormStore) SaveSnapshot(snapshot *models.Snapshot) error {
	return s.db.Create(snapshot).Error
}

func (s *gormStore) LatestSnapshot(path string) (*models.Snapshot, error) {
	var snapshot models.Snapshot
	err := s.db.Where("path = ?", path).
		Order("created_at DESC").
		Order("id DESC").
		First(&snapshot).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("%s: %w", path, ErrNotFound)
	}
	if err != nil {
		return nil, err
	}
	return &snapshot, nil
}

// ListSnapshots returns the snapshots of path, newest first. An empty path
// lists every object; limit <= 0 means no limit.
func (s *gormStore) ListSnapshots(path string, limit int) ([]*models.Snapshot, error) {
	var snapshots []*models.Snapshot
	q := s.db.Order("created_at DESC").Order("id DESC")
	if path != "" {
		q = q.Where("path = ?", path)
	}
	if limit > 0 {
		q = q.Limit(limit)
	}
	if err := q.Find(&snapshots).Error; err != nil {
		return nil, err
	}
	return snapshots, nil
}

func (s *gormStore) DeleteSnapshots(path string) (int64, error) {
	res := s.db.Where("path = ?", path).Delete(&models.Snapshot{})
	return res.RowsAffected, res.Error
}

// GetStats returns snapshot counts
func (s *gormStore) GetStats() (map[string]int64, error) {
	stats := make(map[string]int64)

	var total, paths int64
	if err := s.db.Model(&models.Snapshot{}).Count(&total).Error; err != nil {
		return nil, err
	}
	if err := s.db.Model(&models.Snapshot{}).Distinct("path").Count(&paths).Error; err != nil {
		return nil, err
	}

	stats["total_snapshots"] = total
	stats["paths"] = paths

	return stats, nil
}

// Close closes the database connection
func (s *gormStore) Close() error {
	db, err := s.db.DB()
	if err != nil {
		return err
	}
	return db.Close()
}

// Open picks PostgreSQL when a host is configured and SQLite under dataDir
// otherwise. The schema is migrated before returning.
func Open(cfg *Config, dataDir string) (Storage, error) {
	var store Storage
	var err error

	if cfg != nil && cfg.Host != "" {
		log.Debugf("Using PostgreSQL snapshot store at %s:%d", cfg.Host, cfg.Port)
		store, err = NewPostgresStore(cfg)
	} else {
		log.Debugf("Using SQLite snapshot store in %s", dataDir)
		store, err = NewSQLiteStore(dataDir)
	}
	if err != nil {
		return nil, err
	}

	if err := store.AutoMigrate(); err != nil {
		store.Close()
		return nil, fmt.Errorf("failed to run migrations: %w", err)
	}
	return store, nil
}
