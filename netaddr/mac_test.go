package netaddr

import (
	"net"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestParseAddress_MAC tests the accepted link-layer syntax.
func TestParseAddress_MAC(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		host string
		want string
	}{
		{"colon separated", "f:0:12:3:56:8", "0f:00:12:03:56:08"},
		{"full width", "aa:bb:cc:dd:ee:ff", "aa:bb:cc:dd:ee:ff"},
		{"dot separated", "1.2.3.4.5.6", "01:02:03:04:05:06"},
		{"pipe separated", "1|2|3|4|5|6", "01:02:03:04:05:06"},
		{"semicolon separated", "1;2;3;4;5;6", "01:02:03:04:05:06"},
		{"uppercase hex", "AA:BB:CC:DD:EE:FF", "aa:bb:cc:dd:ee:ff"},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			addr, err := ParseAddress(tt.host, FamilyLink)
			require.NoError(t, err)
			assert.Equal(t, FamilyLink, addr.Family())
			assert.Equal(t, tt.want, addr.String())
		})
	}
}

// TestParseAddress_MACRejects tests the rejected link-layer syntax.
func TestParseAddress_MACRejects(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		host string
	}{
		{"too few fields", "1:2:3:4:5"},
		{"too many fields", "1:2:3:4:5:6:7"},
		{"field too wide", "100:2:3:4:5:6"},
		{"mixed separators", "1:2.3:4:5:6"},
		{"invalid separator", "1-2-3-4-5-6"},
		{"trailing separator", "1:2:3:4:5:6:"},
		{"whitespace", "1 :2:3:4:5:6"},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			addr, err := ParseAddress(tt.host, FamilyLink)
			require.Error(t, err)
			assert.Nil(t, addr)
		})
	}
}

// TestMACAddress_Multicast tests the I/G bit.
func TestMACAddress_Multicast(t *testing.T) {
	t.Parallel()

	uni, err := ParseAddress("02:00:00:00:00:01", FamilyLink)
	require.NoError(t, err)
	assert.False(t, uni.IsMulticast())

	multi, err := ParseAddress("01:00:5e:00:00:01", FamilyLink)
	require.NoError(t, err)
	assert.True(t, multi.IsMulticast())
}

// TestNewMAC tests hardware address conversion.
func TestNewMAC(t *testing.T) {
	t.Parallel()

	hw, err := net.ParseMAC("aa:bb:cc:dd:ee:ff")
	require.NoError(t, err)

	addr, err := NewMAC(hw)
	require.NoError(t, err)
	assert.Equal(t, "aa:bb:cc:dd:ee:ff", addr.String())
	assert.Equal(t, hw, addr.HardwareAddr())

	_, err = NewMAC(net.HardwareAddr{1, 2, 3})
	assert.Error(t, err)
}
