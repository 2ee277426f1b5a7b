package mdns

import (
	"context"
	"encoding/hex"
	"fmt"
	"net/netip"
	"strconv"
	"strings"
	"time"

	"github.com/grandcat/zeroconf"
	"go.uber.org/zap"

	"github.com/idntools/idnls/internal/logging"
	"github.com/idntools/idnls/internal/netif"
	"github.com/idntools/idnls/internal/serverlist"
)

const (
	// ServiceName is the DNS-SD service type IDN servers advertise under.
	ServiceName = "_idn-hello._udp"

	// ServiceDomain is the mDNS domain (typically "local.")
	ServiceDomain = "local."
)

// TXT record keys carried by service advertisements. One advertisement
// describes one hosted service; advertisements sharing a unit identifier
// belong to the same server.
const (
	txtUnitID      = "unitid" // hex-encoded unit identifier, required
	txtGroup       = "group"  // client group 0-15, absent means 0
	txtServiceID   = "sid"    // numeric service identifier
	txtServiceType = "stype"  // "lapro", "audio" or a numeric code
	txtRelay       = "relay"  // name of the relay hosting the service
)

// Provider discovers IDN servers via mDNS/DNS-SD.
type Provider struct{}

// New returns an mDNS-backed discovery provider.
func New() *Provider {
	return &Provider{}
}

// Servers browses for service advertisements until the timeout elapses and
// returns every server of the requested client group seen in that window.
func (p *Provider) Servers(ctx context.Context, group uint8, timeout time.Duration) ([]serverlist.Server, error) {
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	resolver, err := zeroconf.NewResolver(nil)
	if err != nil {
		return nil, fmt.Errorf("create mDNS resolver: %w", err)
	}

	// Local interface assignments drive the reachability annotations. An
	// enumeration failure only costs the annotations, not the scan.
	local, err := netif.IPv4Addresses()
	if err != nil {
		logging.Warn("Interface enumeration failed", zap.Error(err))
		local = nil
	}

	entries := make(chan *zeroconf.ServiceEntry)
	acc := newAccumulator(group, local)
	done := make(chan struct{})
	go func() {
		defer close(done)
		for entry := range entries {
			acc.add(entry)
		}
	}()

	start := time.Now()
	if err := resolver.Browse(ctx, ServiceName, ServiceDomain, entries); err != nil {
		return nil, fmt.Errorf("browse mDNS services: %w", err)
	}

	<-ctx.Done()
	<-done // resolver closes entries once browsing winds down

	servers := acc.servers()
	logging.LogScan("mdns", group, len(servers), time.Since(start))
	return servers, nil
}

// accumulator folds service advertisements into server records, keeping
// first-seen order.
type accumulator struct {
	group uint8
	local []netif.Addr
	order []string
	byID  map[string]*serverlist.Server
}

func newAccumulator(group uint8, local []netif.Addr) *accumulator {
	return &accumulator{
		group: group,
		local: local,
		byID:  map[string]*serverlist.Server{},
	}
}

func (a *accumulator) add(entry *zeroconf.ServiceEntry) {
	txt := parseText(entry.Text)

	id, err := parseUnitID(txt[txtUnitID])
	if err != nil {
		logging.Debug("Skipping advertisement without usable unit id",
			zap.String("instance", entry.Instance),
			zap.Error(err),
		)
		return
	}
	if parseGroup(txt[txtGroup]) != a.group {
		return
	}

	key := string(id)
	srv, seen := a.byID[key]
	if !seen {
		srv = &serverlist.Server{
			UnitID:   id,
			HostName: trimHostName(entry.HostName),
		}
		for _, ip := range entry.AddrIPv4 {
			ip4 := ip.To4()
			if ip4 == nil {
				continue
			}
			addr, ok := netip.AddrFromSlice(ip4)
			if !ok {
				continue
			}
			ambiguous, unreachable := classify(addr, a.local)
			srv.Addresses = append(srv.Addresses, serverlist.Address{
				IP:          addr,
				Ambiguous:   ambiguous,
				Unreachable: unreachable,
			})
		}
		a.byID[key] = srv
		a.order = append(a.order, key)
	}

	svc := serverlist.Service{
		ID:    parseServiceID(txt[txtServiceID]),
		Name:  entry.Instance,
		Type:  parseServiceType(txt[txtServiceType]),
		Relay: serverlist.NoRelay,
	}
	if relayName, ok := txt[txtRelay]; ok {
		svc.Relay = relayIndex(srv, relayName)
	}
	srv.Services = append(srv.Services, svc)

	logging.LogServerRecord(srv.UnitID, srv.HostName, len(srv.Addresses), len(srv.Services))
}

// servers returns the accumulated records in first-seen order.
func (a *accumulator) servers() []serverlist.Server {
	out := make([]serverlist.Server, 0, len(a.order))
	for _, key := range a.order {
		out = append(out, *a.byID[key])
	}
	return out
}

// relayIndex resolves name in the server's relay directory, growing the
// directory on first sight.
func relayIndex(srv *serverlist.Server, name string) int {
	for i, rel := range srv.Relays {
		if rel.Name == name {
			return i
		}
	}
	srv.Relays = append(srv.Relays, serverlist.Relay{Name: name})
	return len(srv.Relays) - 1
}

// classify annotates a server address against the local interface list: an
// address inside more than one local prefix is ambiguous, inside none is
// unreachable. With no local list available, no claim is made.
func classify(addr netip.Addr, local []netif.Addr) (ambiguous, unreachable bool) {
	if len(local) == 0 {
		return false, false
	}
	covered := 0
	for _, la := range local {
		if la.Prefix.Contains(addr) {
			covered++
		}
	}
	return covered > 1, covered == 0
}

// parseText splits "key=value" TXT records into a map, matching how the
// records are published. A key without "=" maps to the empty string.
func parseText(text []string) map[string]string {
	out := make(map[string]string, len(text))
	for _, txt := range text {
		parts := strings.SplitN(txt, "=", 2)
		if len(parts) == 2 {
			out[parts[0]] = parts[1]
		} else {
			out[parts[0]] = ""
		}
	}
	return out
}

func parseUnitID(s string) (serverlist.UnitID, error) {
	if s == "" {
		return nil, fmt.Errorf("missing %s record", txtUnitID)
	}
	raw, err := hex.DecodeString(s)
	if err != nil {
		return nil, fmt.Errorf("decode %s record: %w", txtUnitID, err)
	}
	if len(raw) > serverlist.MaxUnitIDLen {
		return nil, fmt.Errorf("unit id has %d bytes, limit is %d", len(raw), serverlist.MaxUnitIDLen)
	}
	return serverlist.UnitID(raw), nil
}

func parseGroup(s string) uint8 {
	if s == "" {
		return 0
	}
	group, err := strconv.Atoi(s)
	if err != nil || !serverlist.ValidGroup(group) {
		return 0
	}
	return uint8(group)
}

func parseServiceID(s string) uint8 {
	id, err := strconv.ParseUint(s, 10, 8)
	if err != nil {
		return 0
	}
	return uint8(id)
}

func parseServiceType(s string) serverlist.ServiceType {
	switch s {
	case "lapro":
		return serverlist.ServiceTypeLapro
	case "audio":
		return serverlist.ServiceTypeAudio
	}
	// Numeric codes pass through, "0x"-prefixed or decimal.
	code, err := strconv.ParseUint(s, 0, 8)
	if err != nil {
		return 0
	}
	return serverlist.ServiceType(code)
}

// trimHostName strips the mDNS domain suffix so the inventory shows the
// bare host name.
func trimHostName(name string) string {
	name = strings.TrimSuffix(name, ".")
	return strings.TrimSuffix(name, ".local")
}
