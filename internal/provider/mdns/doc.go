// Package mdns implements a discovery provider over mDNS/DNS-SD.
//
// IDN servers (or a bridge speaking for them) advertise one DNS-SD service
// instance per hosted service under "_idn-hello._udp", carrying the unit
// identifier, client group, service type and relay association in TXT
// records. The provider browses for the configured timeout, folds the
// advertisements into server records and annotates each reported address
// with its reachability from the local interfaces.
package mdns
