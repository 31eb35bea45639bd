//go:build darwin || linux

package xattr

import (
	"errors"
	"fmt"

	"finderinfo/internal/finderinfo"

	"golang.org/x/sys/unix"
)

const getRetries = 2

// SystemStore talks to the operating system's extended attributes.
type SystemStore struct{}

func (SystemStore) Get(path, name string) ([]byte, error) {
	buf := make([]byte, finderinfo.Size)
	for attempt := 0; ; attempt++ {
		n, err := unix.Getxattr(path, attrName(name), buf)
		if err == nil {
			return buf[:n], nil
		}
		if !errors.Is(err, unix.ERANGE) || attempt == getRetries {
			return nil, wrapErr("getxattr", path, err)
		}
		// The attribute is larger than buf; size it and try again.
		sz, err := unix.Getxattr(path, attrName(name), nil)
		if err != nil {
			return nil, wrapErr("getxattr", path, err)
		}
		buf = make([]byte, sz+finderinfo.Size)
	}
}

func (SystemStore) Set(path, name string, data []byte) error {
	if err := unix.Setxattr(path, attrName(name), data, 0); err != nil {
		return wrapErr("setxattr", path, err)
	}
	return nil
}

func (SystemStore) Remove(path, name string) error {
	if err := unix.Removexattr(path, attrName(name)); err != nil {
		return wrapErr("removexattr", path, err)
	}
	return nil
}

func wrapErr(op, path string, err error) error {
	if isNoAttr(err) {
		return ErrNoAttribute
	}
	if errors.Is(err, unix.ENOTSUP) {
		return fmt.Errorf("%s %s: %w", op, path, ErrUnsupported)
	}
	return fmt.Errorf("%s %s: %w", op, path, err)
}
