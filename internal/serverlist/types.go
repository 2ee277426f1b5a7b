package serverlist

import (
	"fmt"
	"net/netip"
	"strings"
)

// MaxUnitIDLen is the longest unit identifier a server may carry.
const MaxUnitIDLen = 15

// UnitID is a server's raw unit identifier. The first byte is the vendor
// byte by convention; String renders it split off from the rest.
type UnitID []byte

// String renders the identifier as uppercase hex pairs with a single "-"
// after the vendor byte. A one-byte identifier has no separator.
func (id UnitID) String() string {
	var b strings.Builder
	for i, c := range id {
		fmt.Fprintf(&b, "%02X", c)
		if i == 0 && len(id) > 1 {
			b.WriteByte('-')
		}
	}
	return b.String()
}

// Address is one address a server was discovered under, annotated with
// its reachability from the querying host. Ambiguous and Unreachable are
// descriptive, not errors.
type Address struct {
	IP netip.Addr

	// Ambiguous marks an address seen through more than one local
	// interface, making route selection uncertain.
	Ambiguous bool

	// Unreachable marks an address no local interface can route to.
	Unreachable bool
}

// ServiceType identifies what kind of endpoint a service is. Values beyond
// the known constants are legal and render as a hex code.
type ServiceType uint8

const (
	// ServiceTypeLapro is a laser projector service.
	ServiceTypeLapro ServiceType = 0x04

	// ServiceTypeAudio is an audio service.
	ServiceTypeAudio ServiceType = 0x08
)

func (t ServiceType) String() string {
	switch t {
	case ServiceTypeLapro:
		return "lapro"
	case ServiceTypeAudio:
		return "audio"
	default:
		return fmt.Sprintf("0x%02X", uint8(t))
	}
}

// NoRelay marks a service that is not proxied through a relay.
const NoRelay = -1

// Service is one capability hosted by a server.
type Service struct {
	ID   uint8
	Name string
	Type ServiceType

	// Relay is the index of the hosting relay in the owning server's
	// Relays directory, or NoRelay. It is a lookup key, never ownership;
	// the relay's lifetime is tied to the server.
	Relay int
}

// Relay is a named intermediary that services may be associated with.
type Relay struct {
	Name string
}

// Server is one discovered network entity. A Server and everything it
// references is read-only to consumers; the whole result slice a Provider
// returns is released as one unit when the caller drops it.
type Server struct {
	UnitID    UnitID
	HostName  string
	Addresses []Address
	Services  []Service
	Relays    []Relay
}

// RelayFor resolves the relay directory entry svc points at. It reports
// false for services without a relay or with an index outside the
// directory.
func (s *Server) RelayFor(svc Service) (Relay, bool) {
	if svc.Relay < 0 || svc.Relay >= len(s.Relays) {
		return Relay{}, false
	}
	return s.Relays[svc.Relay], true
}
