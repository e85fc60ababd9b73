package netaddr

import (
	"net"
	"net/netip"
	"strconv"

	lru "github.com/hashicorp/golang-lru/v2"
	"github.com/pkg/errors"

	"github.com/igmartin/mlog/core"
	"github.com/igmartin/mlog/logger"
)

// Module logger, held for the lifetime of the process
var log = logger.GetLogger("address",
	logger.WithLevel(core.WarningLevel), logger.WithSink(core.SinkDiag))

// MaxHostLen caps the textual address length accepted by ParseAddress
const MaxHostLen = 32

// Family identifies the address family of an Address value
type Family int

const (
	// FamilyUnspec lets the parser pick IPv4 or IPv6 from the text
	FamilyUnspec Family = iota
	// FamilyIPv4 selects IPv4
	FamilyIPv4
	// FamilyIPv6 selects IPv6
	FamilyIPv6
	// FamilyLink selects link-layer (MAC) addresses
	FamilyLink
)

func (f Family) String() string {
	switch f {
	case FamilyIPv4:
		return "IPv4"
	case FamilyIPv6:
		return "IPv6"
	case FamilyLink:
		return "link layer"
	default:
		return "unspecified"
	}
}

// Address is a parsed network address of any supported family
type Address interface {
	Family() Family
	IsMulticast() bool
	String() string
}

// parsed addresses are value objects; recent ones are memoized
var addrCache, _ = lru.New[string, Address](128)

// ParseAddress converts a textual address into its typed form. An empty
// host selects the family's any-address ("0.0.0.0" or "::"); for the
// link-layer and unspecified families an empty host is an error.
// Failures are also reported through the module logger, mirroring the
// facility's self-describing diagnostics.
func ParseAddress(host string, family Family) (Address, error) {
	if host == "" {
		switch family {
		case FamilyIPv4:
			host = "0.0.0.0"
		case FamilyIPv6:
			host = "::"
		case FamilyLink:
			err := errors.New("invalid null MAC address")
			log.Error("%v", err)
			return nil, err
		default:
			err := errors.New("ambiguous null address: specify '0.0.0.0', or '::' for IPv6")
			log.Error("%v", err)
			return nil, err
		}
	}

	if len(host) > MaxHostLen {
		err := errors.Errorf("maximum address length exceeded: %d > %d", len(host), MaxHostLen)
		log.Error("%v", err)
		return nil, err
	}

	key := family.String() + "/" + host
	if a, ok := addrCache.Get(key); ok {
		return a, nil
	}

	var (
		addr Address
		err  error
	)
	switch family {
	case FamilyLink:
		addr, err = parseMAC(host)
	case FamilyUnspec, FamilyIPv4, FamilyIPv6:
		addr, err = parseIP(host, family)
	default:
		err = errors.Errorf("invalid address family: %d", family)
	}

	if err != nil {
		log.Error("%v", err)
		return nil, err
	}

	addrCache.Add(key, addr)
	return addr, nil
}

// parseIP handles the IPv4/IPv6 families, including zoned IPv6 text
// such as "fe80::1%eth0" (named zone) or "ff02::1%4" (numeric zone).
func parseIP(host string, family Family) (Address, error) {
	a, err := netip.ParseAddr(host)
	if err != nil {
		return nil, errors.Wrapf(err, "parsing address %q", host)
	}

	if a.Is4() {
		if family == FamilyIPv6 {
			return nil, errors.Errorf("address %q is not IPv6", host)
		}
		return NewIPv4(a), nil
	}

	if family == FamilyIPv4 {
		return nil, errors.Errorf("address %q is not IPv4", host)
	}

	var scopeID uint32
	if zone := a.Zone(); zone != "" {
		if n, perr := strconv.ParseUint(zone, 10, 32); perr == nil {
			scopeID = uint32(n)
		} else if ifi, ierr := net.InterfaceByName(zone); ierr == nil {
			scopeID = uint32(ifi.Index)
		} else {
			return nil, errors.Errorf("unknown zone %q in address %q", zone, host)
		}
		a = a.WithZone("")
	}

	return NewIPv6(a, scopeID), nil
}

// Equal reports whether two addresses denote the same endpoint. IPv4
// and v4-mapped IPv6 forms of the same address compare equal; the IPv6
// scope id does not participate.
func Equal(a, b Address) bool {
	if a == nil || b == nil {
		return a == b
	}

	av, aok := ipOf(a)
	bv, bok := ipOf(b)
	if aok && bok {
		return av.Unmap() == bv.Unmap()
	}

	am, aok := a.(*MACAddress)
	bm, bok := b.(*MACAddress)
	return aok && bok && am.hw == bm.hw
}

func ipOf(a Address) (netip.Addr, bool) {
	switch v := a.(type) {
	case *IPv4Address:
		return v.addr, true
	case *IPv6Address:
		return v.addr, true
	default:
		return netip.Addr{}, false
	}
}
