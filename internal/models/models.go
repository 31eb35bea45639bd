package models

import (
	"database/sql/driver"
	"encoding/json"
	"time"
)

type StringSlice []string

func (s StringSlice) Value() (driver.Value, error) {
	if len(s) == 0 {
		return "[]", nil
	}
	b, err := json.Marshal(s)
	if err != nil {
		return nil, err
	}
	return string(b), nil
}

func (s *StringSlice) Scan(value interface{}) error {
	if value == nil {
		*s = []string{}
		return nil
	}

	bytes, ok := value.([]byte)
	if !ok {
		str, ok := value.(string)
		if !ok {
			return nil
		}
		bytes = []byte(str)
	}

	return json.Unmarshal(bytes, s)
}

// Snapshot is a saved copy of an object's com.apple.FinderInfo attribute.
// Data holds the 32 raw bytes; the other columns are decoded from it for
// listing and are never written back.
type Snapshot struct {
	ID        uint        `gorm:"primarykey" json:"id"`
	CreatedAt time.Time   `gorm:"index" json:"created_at"`
	Path      string      `gorm:"index;not null" json:"path"`
	Kind      string      `gorm:"not null" json:"kind"`
	Data      []byte      `gorm:"not null" json:"data"`
	FileType  string      `json:"file_type,omitempty"`
	Creator   string      `json:"creator,omitempty"`
	Label     string      `json:"label"`
	Flags     StringSlice `gorm:"type:text" json:"flags"`
	Note      string      `json:"note,omitempty"`
}
