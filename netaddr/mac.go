package netaddr

import (
	"fmt"
	"net"
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

// macSeparators are the field separators accepted in textual MAC
// addresses; a single address must use only one kind.
const macSeparators = ":.|;"

// MACAddress is a 48-bit link-layer address
type MACAddress struct {
	hw [6]byte
}

// NewMAC converts a hardware address; only 6-byte (EUI-48) addresses
// are accepted.
func NewMAC(hw net.HardwareAddr) (*MACAddress, error) {
	if len(hw) != 6 {
		return nil, errors.Errorf("unsupported hardware address length %d", len(hw))
	}
	var a MACAddress
	copy(a.hw[:], hw)
	return &a, nil
}

// Family returns FamilyLink
func (a *MACAddress) Family() Family { return FamilyLink }

// IsMulticast reports the I/G bit of the first octet
func (a *MACAddress) IsMulticast() bool { return a.hw[0]&0x01 != 0 }

func (a *MACAddress) String() string {
	return fmt.Sprintf("%02x:%02x:%02x:%02x:%02x:%02x",
		a.hw[0], a.hw[1], a.hw[2], a.hw[3], a.hw[4], a.hw[5])
}

// HardwareAddr returns the net form of the address
func (a *MACAddress) HardwareAddr() net.HardwareAddr {
	return net.HardwareAddr(a.hw[:])
}

// parseMAC reads the syntax 'nhSnhSnhSnhSnhSnh': six fields of zero to
// two hex digits each, joined by a single separator kind drawn from
// macSeparators. No whitespace is allowed anywhere.
func parseMAC(host string) (*MACAddress, error) {
	var (
		mac [6]byte
		sep byte
	)

	bad := func() error {
		return errors.Errorf("wrong link layer address syntax: %s", host)
	}

	s := host
	pos := 0
	for pos < 6 && len(s) > 0 {
		i := 0
		for i < len(s) && isHexDigit(s[i]) {
			i++
		}
		if i > 2 {
			// field occupies more than two hex chars
			return nil, bad()
		}

		var v uint64
		if i > 0 {
			v, _ = strconv.ParseUint(s[:i], 16, 8)
		}

		if i < len(s) {
			c := s[i]
			if !strings.ContainsRune(macSeparators, rune(c)) {
				return nil, bad()
			}
			if sep != 0 && c != sep {
				// multiple separator kinds used
				return nil, bad()
			}
			sep = c
		}

		mac[pos] = byte(v)
		pos++

		s = s[i:]
		if pos < 6 && len(s) > 0 {
			s = s[1:] // step over the separator
		}
	}

	if pos < 6 || len(s) > 0 {
		return nil, bad()
	}

	return &MACAddress{hw: mac}, nil
}

func isHexDigit(c byte) bool {
	return c >= '0' && c <= '9' || c >= 'a' && c <= 'f' || c >= 'A' && c <= 'F'
}
