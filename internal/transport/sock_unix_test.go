//go:build unix

package transport

import (
	"fmt"
	"testing"

	"golang.org/x/sys/unix"
)

func TestStartupCleanup(t *testing.T) {
	if err := Startup(); err != nil {
		t.Fatalf("Startup() error: %v", err)
	}
	if err := Cleanup(); err != nil {
		t.Fatalf("Cleanup() error: %v", err)
	}
}

func TestOpenBroadcastClose(t *testing.T) {
	h, err := Open(DomainInet, TypeDgram, 0)
	if err != nil {
		t.Fatalf("Open() error: %v", err)
	}
	if h == InvalidHandle {
		t.Fatal("Open() returned InvalidHandle without error")
	}

	if err := h.SetBroadcast(); err != nil {
		t.Errorf("SetBroadcast() error: %v", err)
	}
	if err := h.Close(); err != nil {
		t.Errorf("Close() error: %v", err)
	}
}

func TestSetBroadcastOnClosedSocket(t *testing.T) {
	h, err := Open(DomainInet, TypeDgram, 0)
	if err != nil {
		t.Fatalf("Open() error: %v", err)
	}
	if err := h.Close(); err != nil {
		t.Fatalf("Close() error: %v", err)
	}

	err = h.SetBroadcast()
	if err == nil {
		t.Fatal("SetBroadcast() on closed socket succeeded")
	}
	if Errno(err) != int(unix.EBADF) {
		t.Errorf("Errno() = %d, want %d (EBADF)", Errno(err), int(unix.EBADF))
	}
}

func TestErrno(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{name: "nil", err: nil, want: 0},
		{name: "bare errno", err: unix.ECONNREFUSED, want: int(unix.ECONNREFUSED)},
		{name: "wrapped errno", err: fmt.Errorf("open socket: %w", unix.EACCES), want: int(unix.EACCES)},
		{name: "no platform code", err: fmt.Errorf("some failure"), want: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Errno(tt.err); got != tt.want {
				t.Errorf("Errno(%v) = %d, want %d", tt.err, got, tt.want)
			}
		})
	}
}
