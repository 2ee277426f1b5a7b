// Package serverlist defines the discovered-server data model and the
// Provider interface discovery back ends implement.
//
// A Server record carries the unit identifier, host name, the addresses the
// server answered from (with reachability annotations), the services it
// hosts and a directory of relays those services may reference. Records are
// produced by a Provider and read-only afterwards.
package serverlist
