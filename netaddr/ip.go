package netaddr

import (
	"net"
	"net/netip"
)

// IPv6 scope values, as carried in the scope nibble of multicast
// addresses. Unicast addresses map onto ScopeLinkLocal or ScopeGlobal.
type Scope uint8

const (
	ScopeInvalid   Scope = 0x0
	ScopeNodeLocal Scope = 0x1
	ScopeLinkLocal Scope = 0x2
	ScopeSiteLocal Scope = 0x5
	ScopeOrgLocal  Scope = 0x8
	ScopeGlobal    Scope = 0xe

	// ScopeUnspec disables scope filtering in interface enumeration
	ScopeUnspec Scope = 0xff
)

// IPv4Address is a parsed IPv4 address
type IPv4Address struct {
	addr netip.Addr
}

// NewIPv4 wraps a 4-byte netip.Addr
func NewIPv4(a netip.Addr) *IPv4Address {
	return &IPv4Address{addr: a}
}

// Family returns FamilyIPv4
func (a *IPv4Address) Family() Family { return FamilyIPv4 }

// IsMulticast reports whether the address is in 224.0.0.0/4
func (a *IPv4Address) IsMulticast() bool { return a.addr.IsMulticast() }

func (a *IPv4Address) String() string { return a.addr.String() }

// Mapped returns the v4-mapped IPv6 form ("::ffff:a.b.c.d")
func (a *IPv4Address) Mapped() string { return "::ffff:" + a.addr.String() }

// IPv6Address is a parsed IPv6 address plus its interface scope id
// (zero when the address is unscoped).
type IPv6Address struct {
	addr    netip.Addr
	scopeID uint32
}

// NewIPv6 wraps a 16-byte netip.Addr; scopeID is the interface index
// the address is scoped to, or zero.
func NewIPv6(a netip.Addr, scopeID uint32) *IPv6Address {
	return &IPv6Address{addr: a.WithZone(""), scopeID: scopeID}
}

// Family returns FamilyIPv6
func (a *IPv6Address) Family() Family { return FamilyIPv6 }

// IsV4Mapped reports whether this is a v4-mapped address (::ffff:0:0/96)
func (a *IPv6Address) IsV4Mapped() bool { return a.addr.Is4In6() }

// IsMulticast treats v4-mapped addresses by their embedded IPv4 value
func (a *IPv6Address) IsMulticast() bool {
	if a.addr.Is4In6() {
		return a.addr.Unmap().IsMulticast()
	}
	return a.addr.IsMulticast()
}

// ScopeID returns the interface index the address is scoped to
func (a *IPv6Address) ScopeID() uint32 { return a.scopeID }

// Scope classifies the address: the scope nibble for multicast
// addresses, link-local for loopback and link-local unicast, invalid
// for the unspecified address, global otherwise.
func (a *IPv6Address) Scope() Scope {
	switch {
	case a.addr.IsUnspecified():
		return ScopeInvalid
	case a.addr.IsLoopback(), a.addr.IsLinkLocalUnicast():
		return ScopeLinkLocal
	case a.addr.IsMulticast():
		return Scope(a.addr.As16()[1] & 0x0f)
	default:
		return ScopeGlobal
	}
}

// String renders the address, appending "%<ifname>" for scoped
// non-global addresses when the interface is resolvable.
func (a *IPv6Address) String() string {
	host := a.addr.String()

	if a.scopeID > 0 && !a.addr.IsUnspecified() && !a.addr.IsLoopback() && a.Scope() != ScopeGlobal {
		if ifi, err := net.InterfaceByIndex(int(a.scopeID)); err == nil {
			return host + "%" + ifi.Name
		}
	}
	return host
}
