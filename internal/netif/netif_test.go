package netif

import "testing"

func TestIPv4Addresses(t *testing.T) {
	addrs, err := IPv4Addresses()
	if err != nil {
		t.Fatalf("IPv4Addresses() error: %v", err)
	}

	for _, a := range addrs {
		if a.Name == "" {
			t.Errorf("entry %v has empty interface name", a)
		}
		if !a.IP.Is4() {
			t.Errorf("entry %v has non-IPv4 address", a)
		}
		if !a.Prefix.IsValid() {
			t.Errorf("entry %v has invalid prefix", a)
		}
		if !a.Prefix.Contains(a.IP) {
			t.Errorf("prefix %v does not contain its own address %v", a.Prefix, a.IP)
		}
	}
}

func TestIPv4AddressesRestartable(t *testing.T) {
	first, err := IPv4Addresses()
	if err != nil {
		t.Fatalf("first query error: %v", err)
	}
	second, err := IPv4Addresses()
	if err != nil {
		t.Fatalf("second query error: %v", err)
	}
	if len(first) != len(second) {
		t.Skipf("interface set changed between queries (%d vs %d)", len(first), len(second))
	}
}
