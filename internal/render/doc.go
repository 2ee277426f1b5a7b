// Package render formats discovered servers for line-oriented output.
//
// The summary line carries the unit identifier, the host name when known,
// and every address the server answered from together with its reachability
// annotation. Service lines right-justify the service ID, name the service
// and its relay, and close with the service type. Lines are composed in a
// fixed-capacity buffer and handed to a Sink one finished line at a time.
package render
