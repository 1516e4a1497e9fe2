package goip

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/LucasZ876/IPAddress-sub000/address_string"
)

func TestToCustomStringIPv4RangeSeparator(t *testing.T) {
	addr, err := NewIPAddressString("1.2.3-10.4").ToAddress()
	require.NoError(t, err)
	require.Equal(t, "1.2.3-10.4", addr.ToIPv4().ToNormalizedString())

	opts := new(address_string.WildcardOptionsBuilder).
		SetWildcards(new(address_string.WildcardsBuilder).SetRangeSeparator("~").ToWildcards()).
		ToOptions()
	require.Equal(t, "1.2.3~10.4", addr.ToIPv4().ToCustomString(opts))
}

func TestToCustomStringIPv4PreferWildcard(t *testing.T) {
	addr, err := NewIPAddressString("1.2.*.4").ToAddress()
	require.NoError(t, err)

	opts := new(address_string.WildcardOptionsBuilder).SetPreferWildcards(true).ToOptions()
	require.Equal(t, "1.2.*.4", addr.ToIPv4().ToCustomString(opts))
}

func TestToCustomStringIPv4DefaultWildcardsMatchesNormalized(t *testing.T) {
	addr, err := NewIPAddressString("1.2.3-10.4").ToAddress()
	require.NoError(t, err)

	opts := new(address_string.WildcardOptionsBuilder).ToOptions()
	require.Equal(t, addr.ToIPv4().ToNormalizedString(), addr.ToIPv4().ToCustomString(opts))
}

func TestToCustomStringIPv6PreferWildcard(t *testing.T) {
	addr, err := NewIPAddressString("1:2:*:4:5:6:7:8").ToAddress()
	require.NoError(t, err)

	opts := new(address_string.WildcardOptionsBuilder).SetPreferWildcards(true).ToOptions()
	require.Equal(t, "1:2:*:4:5:6:7:8", addr.ToIPv6().ToCustomString(opts))
}
