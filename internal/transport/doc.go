// Package transport provides the portable socket primitives a discovery
// provider needs: symmetric subsystem startup/cleanup, opening and closing
// raw datagram sockets, enabling broadcast transmission, and recovering the
// platform error code from a failed operation.
//
// The package is deliberately thin; it holds no state beyond what the OS
// keeps for an open Handle, and every deadline or retry policy belongs to
// the provider driving it.
package transport
