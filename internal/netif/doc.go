// Package netif enumerates the host's IPv4 network interfaces.
//
// Discovery providers use the enumeration to pick the interfaces worth
// querying and to classify the addresses a server reports: an address
// covered by more than one local prefix is ambiguous, one covered by none
// is unreachable. The enumeration is a plain finite query with no early
// exit; callers that only need some entries filter the returned slice.
package netif
