// Package xattr reads and writes the com.apple.FinderInfo attribute of
// filesystem objects.
package xattr

import (
	"errors"
	"fmt"
	"os"
	"sync"

	"finderinfo/internal/finderinfo"

	log "github.com/sirupsen/logrus"
)

// FinderInfoName is the attribute holding the 32-byte record.
const FinderInfoName = "com.apple.FinderInfo"

var (
	ErrNoAttribute = errors.New("attribute not found")
	ErrUnsupported = errors.New("extended attributes are not supported on this platform")
)

// Store gets and sets named attributes on paths.
type Store interface {
	Get(path, name string) ([]byte, error)
	Set(path, name string, data []byte) error
	Remove(path, name string) error
}

// KindOf reports whether path is a folder or a file.
func KindOf(path string) (finderinfo.Kind, error) {
	st, err := os.Stat(path)
	if err != nil {
		return finderinfo.KindFile, err
	}
	if st.IsDir() {
		return finderinfo.KindFolder, nil
	}
	return finderinfo.KindFile, nil
}

// Load fetches and decodes the attribute of path. A missing attribute is
// reported as ErrNoAttribute wrapped with the path.
func Load(store Store, path string, kind finderinfo.Kind) (*finderinfo.Record, error) {
	data, err := store.Get(path, FinderInfoName)
	if err != nil {
		if errors.Is(err, ErrNoAttribute) {
			return nil, fmt.Errorf("%s: %w", path, ErrNoAttribute)
		}
		return nil, &finderinfo.IOError{Op: "get " + FinderInfoName, Err: err}
	}
	if len(data) != finderinfo.Size {
		log.Debugf("%s on %s is %d bytes", FinderInfoName, path, len(data))
	}
	rec, err := finderinfo.Parse(data, kind)
	if err != nil {
		return nil, fmt.Errorf("failed to decode %s of %s: %w", FinderInfoName, path, err)
	}
	return rec, nil
}

// LoadOrNew is Load, but a missing attribute yields a zeroed record.
func LoadOrNew(store Store, path string, kind finderinfo.Kind) (*finderinfo.Record, error) {
	rec, err := Load(store, path, kind)
	if errors.Is(err, ErrNoAttribute) {
		log.Debugf("No %s on %s, starting from an empty record", FinderInfoName, path)
		return finderinfo.NewRecord(kind), nil
	}
	return rec, err
}

// Save encodes rec and stores it on path.
func Save(store Store, path string, rec *finderinfo.Record) error {
	if err := store.Set(path, FinderInfoName, rec.Bytes()); err != nil {
		return &finderinfo.IOError{Op: "set " + FinderInfoName, Err: err}
	}
	return nil
}

// MemoryStore keeps attributes in a map.
type MemoryStore struct {
	mu    sync.RWMutex
	attrs map[string]map[string][]byte
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		attrs: make(map[string]map[string][]byte),
	}
}

func (m *MemoryStore) Get(path, name string) ([]byte, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	data, ok := m.attrs[path][name]
	if !ok {
		return nil, ErrNoAttribute
	}
	return append([]byte(nil), data...), nil
}

func (m *MemoryStore) Set(path, name string, data []byte) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.attrs[path] == nil {
		m.attrs[path] = make(map[string][]byte)
	}
	m.attrs[path][name] = append([]byte(nil), data...)
	return nil
}

func (m *MemoryStore) Remove(path, name string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, ok := m.attrs[path][name]; !ok {
		return ErrNoAttribute
	}
	delete(m.attrs[path], name)
	return nil
}
