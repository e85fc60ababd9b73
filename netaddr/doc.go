// Package netaddr provides typed value objects for IPv4, IPv6 and
// link-layer addresses, with parsing and rendering, multicast
// classification and IPv6 scope handling.
//
// Addresses are parsed with ParseAddress, which accepts zoned IPv6 text
// ("fe80::1%eth0"), v4-mapped forms, and a permissive MAC syntax using
// any single separator from ":.|;". Recently parsed addresses are
// memoized in a small LRU cache. Parse failures are returned as errors
// and also reported through the module's logger node ("address").
package netaddr
