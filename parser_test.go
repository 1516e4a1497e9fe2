package goip

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func withPrefixMode(t *testing.T, mode PrefixConfiguration, fn func()) {
	t.Helper()
	prev := GetDefaultPrefixConfiguration()
	SetDefaultPrefixConfiguration(mode)
	t.Cleanup(func() { SetDefaultPrefixConfiguration(prev) })
	fn()
}

func TestParseIPv4PrefixAutoSubnet(t *testing.T) {
	withPrefixMode(t, AllPrefixedAddressesAreSubnets, func() {
		addr, err := NewIPAddressString("1.2.3.4/16").ToAddress()
		require.NoError(t, err)
		require.Equal(t, "1.2.0.0/16", addr.ToIPv4().ToNormalizedString())
		require.EqualValues(t, 65536, addr.GetCount())
	})
}

func TestParseIPv4PrefixExplicit(t *testing.T) {
	withPrefixMode(t, PrefixedSubnetsAreExplicit, func() {
		addr, err := NewIPAddressString("1.2.3.4/16").ToAddress()
		require.NoError(t, err)
		require.Equal(t, "1.2.3.4/16", addr.ToIPv4().ToNormalizedString())
		require.EqualValues(t, 1, addr.GetCount())
	})
}

func TestParseIPv6MixedEqualsExpandedForm(t *testing.T) {
	mixed, err := NewIPAddressString("::ffff:1.2.3.4").ToAddress()
	require.NoError(t, err)
	expanded, err := NewIPAddressString("0:0:0:0:0:ffff:102:304").ToAddress()
	require.NoError(t, err)
	require.True(t, mixed.Equal(expanded))
	require.Equal(t, "::ffff:1.2.3.4", mixed.ToIPv6().ToMixedString())
}

func TestParseIPv6CanonicalCompression(t *testing.T) {
	cases := []string{"1:0:0:0:0:0:0:1", "1::0:0:0:1"}
	for _, s := range cases {
		addr, err := NewIPAddressString(s).ToAddress()
		require.NoError(t, err)
		require.Equal(t, "1::1", addr.ToIPv6().ToCanonicalString())
	}
}

func TestParseExtraneousDigitsSingleSegment(t *testing.T) {
	params := defaultIPAddrParameters
	addr, err := NewIPAddressStringParams("0xBADC0DE7f000001", params).ToAddress()
	require.NoError(t, err)
	require.True(t, addr.IsIPv4())
	require.Equal(t, "127.0.0.1", addr.ToIPv4().ToNormalizedString())
}

func TestParseInetAtonJoinedSegments(t *testing.T) {
	addr, err := NewIPAddressString("1.2.3").ToAddress()
	require.NoError(t, err)
	require.Equal(t, "1.2.0.3", addr.ToIPv4().ToNormalizedString())
}

func TestParseMaskNonContiguousYieldsRangedSegments(t *testing.T) {
	withPrefixMode(t, AllPrefixedAddressesAreSubnets, func() {
		base, err := NewIPAddressString("1.2.0.0/16").ToAddress()
		require.NoError(t, err)
		mask, err := NewIPAddressString("255.255.3.3").ToAddress()
		require.NoError(t, err)
		masked, incompatErr := base.GetSection().Mask(mask.GetSection(), false)
		require.Nil(t, incompatErr)
		require.Equal(t, SegInt(0), masked.GetSegment(2).GetSegmentValue())
		require.Equal(t, SegInt(3), masked.GetSegment(2).GetUpperSegmentValue())
		require.Equal(t, SegInt(0), masked.GetSegment(3).GetSegmentValue())
		require.Equal(t, SegInt(3), masked.GetSegment(3).GetUpperSegmentValue())
	})
}

func TestParseAllAddresses(t *testing.T) {
	addrStr := NewIPAddressString("*")
	require.True(t, addrStr.IsValid())
	require.Nil(t, addrStr.GetAddress())
}

func TestParseEmptyResolvesToLoopback(t *testing.T) {
	addr, err := NewIPAddressString("").ToAddress()
	require.NoError(t, err)
	require.True(t, addr.IsIPv4())
	require.Equal(t, "127.0.0.1", addr.ToIPv4().ToNormalizedString())
}

func TestPrefixContainsConsistentAcrossLifecycle(t *testing.T) {
	outer := NewIPAddressString("1.2.0.0/16")
	inner := NewIPAddressString("1.2.3.0/24")

	beforeValidate := outer.PrefixContains(inner)
	_ = outer.Validate()
	afterValidate := outer.PrefixContains(inner)
	_, _ = outer.ToAddress()
	afterMaterialize := outer.PrefixContains(inner)

	require.Equal(t, beforeValidate, afterValidate)
	require.Equal(t, afterValidate, afterMaterialize)
	require.True(t, afterMaterialize)
}

func TestPrefixContainsAgreesWithNumericContains(t *testing.T) {
	a := NewIPAddressString("10.0.0.0/8")
	b := NewIPAddressString("10.1.2.0/24")
	aAddr, err := a.ToAddress()
	require.NoError(t, err)
	bAddr, err := b.ToAddress()
	require.NoError(t, err)
	require.Equal(t, a.PrefixContains(b), aAddr.Contains(bAddr))
}

func TestNormalizedRoundTrip(t *testing.T) {
	inputs := []string{"1.2.3.4", "255.255.255.0", "2001:db8::1", "::1", "fe80::1%eth0"}
	for _, s := range inputs {
		addr, err := NewIPAddressString(s).ToAddress()
		require.NoError(t, err, s)
		reparsed, err := NewIPAddressString(addr.String()).ToAddress()
		require.NoError(t, err, s)
		require.True(t, addr.Equal(reparsed), s)
	}
}
