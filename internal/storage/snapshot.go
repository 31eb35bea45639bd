package storage

import (
	"fmt"

	"finderinfo/internal/finderinfo"
	"finderinfo/internal/models"
)

// NewSnapshot captures rec as a snapshot row for path.
func NewSnapshot(path string, rec *finderinfo.Record) *models.Snapshot {
	s := &models.Snapshot{
		Path:  path,
		Kind:  rec.Kind().String(),
		Data:  rec.Bytes(),
		Label: rec.Flags().LabelColor().String(),
		Flags: models.StringSlice(rec.Flags().Names()),
	}
	if fi, ok := rec.File(); ok {
		s.FileType = fi.FileType.String()
		s.Creator = fi.FileCreator.String()
	}
	return s
}

// Record decodes the raw bytes kept in a snapshot.
func Record(s *models.Snapshot) (*finderinfo.Record, error) {
	kind, err := finderinfo.ParseKind(s.Kind)
	if err != nil {
		return nil, fmt.Errorf("snapshot %d: %w", s.ID, err)
	}
	rec, err := finderinfo.Parse(s.Data, kind)
	if err != nil {
		return nil, fmt.Errorf("snapshot %d: %w", s.ID, err)
	}
	return rec, nil
}
