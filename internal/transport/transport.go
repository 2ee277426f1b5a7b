package transport

import (
	"errors"
	"syscall"
)

// Errno recovers the platform error code carried by err. It returns 0 when
// err is nil or carries no platform code. Providers log the integer code in
// diagnostics so failures read the same across platforms.
func Errno(err error) int {
	var errno syscall.Errno
	if errors.As(err, &errno) {
		return int(errno)
	}
	return 0
}
