package ifaces

import (
	"net"
	"net/netip"

	"github.com/pkg/errors"

	"github.com/igmartin/mlog/core"
	"github.com/igmartin/mlog/logger"
	"github.com/igmartin/mlog/netaddr"
)

// Module logger, held for the lifetime of the process
var log = logger.GetLogger("ifaddrs",
	logger.WithLevel(core.WarningLevel), logger.WithSink(core.SinkDiag))

// Interface is one network interface and the addresses found on it
type Interface struct {
	Name  string
	Index int
	Flags net.Flags
	Addrs []netaddr.Address
}

type listFilter struct {
	name   string
	family netaddr.Family
	scope  netaddr.Scope
}

// Option narrows the result of List
type Option func(*listFilter)

// WithName keeps only the interface with the given name
func WithName(name string) Option {
	return func(f *listFilter) { f.name = name }
}

// WithFamily keeps only addresses of the given family
func WithFamily(family netaddr.Family) Option {
	return func(f *listFilter) { f.family = family }
}

// WithScope keeps only IPv6 addresses of the given scope
func WithScope(scope netaddr.Scope) Option {
	return func(f *listFilter) { f.scope = scope }
}

// List enumerates the system's network interfaces with their link,
// IPv4 and IPv6 addresses, applying any filters.
func List(opts ...Option) ([]*Interface, error) {
	filter := listFilter{family: netaddr.FamilyUnspec, scope: netaddr.ScopeUnspec}
	for _, opt := range opts {
		opt(&filter)
	}

	sysIfs, err := net.Interfaces()
	if err != nil {
		log.Error("interface enumeration failed: %v", err)
		return nil, errors.Wrap(err, "enumerating network interfaces")
	}

	var out []*Interface
	for i := range sysIfs {
		sys := &sysIfs[i]
		log.Debug("name: %s, flags: 0x%x", sys.Name, uint(sys.Flags))

		if filter.name != "" && sys.Name != filter.name {
			continue
		}

		ni := &Interface{Name: sys.Name, Index: sys.Index, Flags: sys.Flags}
		out = append(out, ni)

		if wantFamily(filter, netaddr.FamilyLink) && filter.scope == netaddr.ScopeUnspec {
			if mac, merr := netaddr.NewMAC(sys.HardwareAddr); merr == nil {
				ni.Addrs = append(ni.Addrs, mac)
				log.Debug("  link address: %s", mac)
			}
		}

		addrs, aerr := sys.Addrs()
		if aerr != nil {
			log.Error("address enumeration failed for %s: %v", sys.Name, aerr)
			continue
		}

		for _, a := range addrs {
			addr := convert(a, sys.Index)
			if addr == nil || !keep(filter, addr) {
				continue
			}
			ni.Addrs = append(ni.Addrs, addr)
			log.Debug("  address: %s", addr)
		}
	}

	return out, nil
}

// convert maps one net.Addr onto its typed address, carrying the
// interface index as the IPv6 scope id.
func convert(a net.Addr, index int) netaddr.Address {
	var ip net.IP
	switch v := a.(type) {
	case *net.IPNet:
		ip = v.IP
	case *net.IPAddr:
		ip = v.IP
	default:
		return nil
	}

	nip, ok := netip.AddrFromSlice(ip)
	if !ok {
		return nil
	}
	if nip.Is4() || nip.Is4In6() {
		return netaddr.NewIPv4(nip.Unmap())
	}
	return netaddr.NewIPv6(nip, uint32(index))
}

func wantFamily(f listFilter, family netaddr.Family) bool {
	return f.family == netaddr.FamilyUnspec || f.family == family
}

func keep(f listFilter, addr netaddr.Address) bool {
	if !wantFamily(f, addr.Family()) {
		return false
	}
	if f.scope != netaddr.ScopeUnspec {
		v6, ok := addr.(*netaddr.IPv6Address)
		if !ok || v6.Scope() != f.scope {
			return false
		}
	}
	return true
}

// FindByName returns the interface with the given name, or nil
func FindByName(name string, list []*Interface) *Interface {
	for _, ni := range list {
		if ni.Name == name {
			return ni
		}
	}
	return nil
}

// FindByIndex returns the interface with the given index, or nil
func FindByIndex(index int, list []*Interface) *Interface {
	for _, ni := range list {
		if ni.Index == index {
			return ni
		}
	}
	return nil
}

// FindByAddress locates the interface carrying the given textual
// address, of any family.
func FindByAddress(host string) (*Interface, error) {
	want, err := netaddr.ParseAddress(host, netaddr.FamilyUnspec)
	if err != nil {
		return nil, err
	}

	list, err := List()
	if err != nil {
		return nil, err
	}

	for _, ni := range list {
		for _, addr := range ni.Addrs {
			if netaddr.Equal(addr, want) {
				log.Warning("match for %s in %s", addr, ni.Name)
				return ni, nil
			}
		}
	}

	return nil, errors.Errorf("no interface carries address %s", want)
}
