//go:build unix

package transport

import (
	"fmt"

	"golang.org/x/sys/unix"
)

// Handle is an open socket descriptor. The caller owns its lifetime
// exclusively; closing an already-closed Handle is not allowed.
type Handle int

// InvalidHandle is returned by Open on failure.
const InvalidHandle Handle = -1

// Socket parameters for the datagram sockets discovery providers open.
const (
	DomainInet = unix.AF_INET
	TypeDgram  = unix.SOCK_DGRAM
)

// Startup prepares the process-wide socket subsystem. It does nothing on
// unix but must still be paired with Cleanup so callers stay portable to
// platforms that need explicit initialization.
func Startup() error {
	return nil
}

// Cleanup releases whatever Startup acquired.
func Cleanup() error {
	return nil
}

// Open creates a socket with the given domain, type and protocol.
func Open(domain, typ, protocol int) (Handle, error) {
	fd, err := unix.Socket(domain, typ, protocol)
	if err != nil {
		return InvalidHandle, fmt.Errorf("open socket: %w", err)
	}
	return Handle(fd), nil
}

// Close releases the OS resources held by the socket.
func (h Handle) Close() error {
	if err := unix.Close(int(h)); err != nil {
		return fmt.Errorf("close socket: %w", err)
	}
	return nil
}

// SetBroadcast permits transmission to broadcast addresses on the socket.
func (h Handle) SetBroadcast() error {
	if err := unix.SetsockoptInt(int(h), unix.SOL_SOCKET, unix.SO_BROADCAST, 1); err != nil {
		return fmt.Errorf("set broadcast option: %w", err)
	}
	return nil
}
