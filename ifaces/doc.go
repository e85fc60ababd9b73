// Package ifaces enumerates the system's network interfaces together
// with their link-layer, IPv4 and IPv6 addresses as netaddr value
// objects. Results can be filtered by interface name, address family
// and IPv6 scope, and searched by name, index or carried address.
// Progress and failures are reported through the module's logger node
// ("ifaddrs").
package ifaces
