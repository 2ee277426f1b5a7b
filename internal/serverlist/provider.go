package serverlist

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"time"
)

// MaxClientGroup is the highest client group selector. Discovery requests
// target one group; servers outside it do not respond.
const MaxClientGroup = 15

// ValidGroup reports whether group is a usable client group selector.
func ValidGroup(group int) bool {
	return group >= 0 && group <= MaxClientGroup
}

// Provider retrieves the current set of servers on the local network.
//
// Servers returns the full result in one owned slice; partial results are
// never returned alongside an error. The timeout bounds how long the
// provider waits for responses and is the provider's to enforce, on top of
// whatever deadline ctx already carries.
type Provider interface {
	Servers(ctx context.Context, group uint8, timeout time.Duration) ([]Server, error)
}

var (
	providersMu sync.RWMutex
	providers   = map[string]Provider{}
)

// Register makes a provider selectable by name. It panics when the name is
// already taken, which points at wiring the same provider twice.
func Register(name string, p Provider) {
	providersMu.Lock()
	defer providersMu.Unlock()
	if _, dup := providers[name]; dup {
		panic(fmt.Sprintf("serverlist: provider %q registered twice", name))
	}
	providers[name] = p
}

// Lookup returns the provider registered under name.
func Lookup(name string) (Provider, bool) {
	providersMu.RLock()
	defer providersMu.RUnlock()
	p, ok := providers[name]
	return p, ok
}

// Names returns the registered provider names, sorted.
func Names() []string {
	providersMu.RLock()
	defer providersMu.RUnlock()
	names := make([]string, 0, len(providers))
	for name := range providers {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
