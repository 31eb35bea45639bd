package xattr

import (
	"errors"

	"golang.org/x/sys/unix"
)

// Linux only allows unprivileged attributes in the user namespace.
func attrName(name string) string {
	return "user." + name
}

func isNoAttr(err error) bool {
	return errors.Is(err, unix.ENODATA)
}
