package storage

import (
	"errors"

	"finderinfo/internal/models"
)

var ErrNotFound = errors.New("no snapshot found")

type Storage interface {
	AutoMigrate() error
	Close() error

	SaveSnapshot(snapshot *models.Snapshot) error
	LatestSnapshot(path string) (*models.Snapshot, error)
	ListSnapshots(path string, limit int) ([]*models.Snapshot, error)
	DeleteSnapshots(path string) (int64, error)

	GetStats() (map[string]int64, error)
}
