//go:build !darwin && !linux

package xattr

// SystemStore is unavailable on this platform; every call fails with
// ErrUnsupported.
type SystemStore struct{}

func (SystemStore) Get(path, name string) ([]byte, error) {
	return nil, ErrUnsupported
}

func (SystemStore) Set(path, name string, data []byte) error {
	return ErrUnsupported
}

func (SystemStore) Remove(path, name string) error {
	return ErrUnsupported
}
