package netif

import (
	"fmt"
	"net"
	"net/netip"
)

// Addr is one IPv4 address assignment on a local network interface.
type Addr struct {
	// Name is the interface name as reported by the OS (e.g. "eth0").
	Name string

	// IP is the assigned IPv4 address.
	IP netip.Addr

	// Prefix is the address together with its on-link prefix length,
	// usable for reachability checks against remote addresses.
	Prefix netip.Prefix
}

// IPv4Addresses queries the OS for the current interface list and returns
// every IPv4 assignment found, in interface order. Interfaces without an
// IPv4 address are skipped. Each call performs a fresh OS query, so the
// result reflects the interface state at the time of the call.
func IPv4Addresses() ([]Addr, error) {
	ifaces, err := net.Interfaces()
	if err != nil {
		return nil, fmt.Errorf("query interface list: %w", err)
	}

	var out []Addr
	for _, ifc := range ifaces {
		addrs, err := ifc.Addrs()
		if err != nil {
			// A vanished interface between the two OS calls; skip it.
			continue
		}
		for _, a := range addrs {
			ipnet, ok := a.(*net.IPNet)
			if !ok {
				continue
			}
			ip4 := ipnet.IP.To4()
			if ip4 == nil {
				continue
			}
			ip, ok := netip.AddrFromSlice(ip4)
			if !ok {
				continue
			}
			ones, _ := ipnet.Mask.Size()
			out = append(out, Addr{
				Name:   ifc.Name,
				IP:     ip,
				Prefix: netip.PrefixFrom(ip, ones),
			})
		}
	}
	return out, nil
}
