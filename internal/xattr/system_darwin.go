package xattr

import (
	"errors"

	"golang.org/x/sys/unix"
)

func attrName(name string) string {
	return name
}

func isNoAttr(err error) bool {
	return errors.Is(err, unix.ENOATTR)
}
