package goip

const (
	NoZone                           = ""
	IPv6SegmentSeparator             = ':'
	IPv6SegmentSeparatorStr          = ":"
	IPv6ZoneSeparator                = '%'
	IPv6ZoneSeparatorStr             = "%"
	IPv6AlternativeZoneSeparator     = '\u00a7'
	IPv6AlternativeZoneSeparatorStr  = "\u00a7" //'§'
	IPv6BitsPerSegment               = 16
	IPv6BytesPerSegment              = 2
	IPv6SegmentCount                 = 8
	IPv6MixedReplacedSegmentCount    = 2
	IPv6MixedOriginalSegmentCount    = 6
	IPv6MixedOriginalByteCount       = 12
	IPv6ByteCount                    = 16
	IPv6BitCount                     = 128
	IPv6DefaultTextualRadix          = 16
	IPv6MaxValuePerSegment           = 0xffff
	IPv6ReverseDnsSuffix             = ".ip6.arpa"
	IPv6ReverseDnsSuffixDeprecated   = ".ip6.int"
	IPv6UncSegmentSeparator          = '-'
	IPv6UncSegmentSeparatorStr       = "-"
	IPv6UncZoneSeparator             = 's'
	IPv6UncZoneSeparatorStr          = "s"
	IPv6UncRangeSeparator            = AlternativeRangeSeparator
	IPv6UncRangeSeparatorStr         = AlternativeRangeSeparatorStr
	IPv6UncSuffix                    = ".ipv6-literal.net"
	IPv6SegmentMaxChars              = 4
	ipv6BitsToSegmentBitshift        = 4
	IPv6AlternativeRangeSeparatorStr = AlternativeRangeSeparatorStr
)

// Zone represents an IPv6 address zone or scope.
type Zone string

// IsEmpty returns whether the zone is the zero-zone,
// which is the lack of a zone, or the empty string zone.
func (zone Zone) IsEmpty() bool {
	return zone == ""
}

// String implements the [fmt.Stringer] interface,
// returning the zone characters as a string
func (zone Zone) String() string {
	return string(zone)
}

// IPv6Address is an IPv6 address, or a subnet of multiple IPv6 addresses.
// An IPv6 address is composed of 8 2-byte segments and can optionally have
// an associated prefix length and scope zone. Each segment can represent a
// single value or a range of values.
//
// To construct one from a string, use NewIPAddressString, then GetAddress
// or ToAddress, then ToIPv6 if the string had an IPv6 format.
//
// For other inputs use NewIPv6AddressFromBytes or NewIPv6AddressFromValues.
type IPv6Address IPAddress

// ToIP returns the generic IPAddress view of this IPv6 address.
func (addr *IPv6Address) ToIP() *IPAddress {
	return (*IPAddress)(addr)
}

// GetSection returns the underlying Section.
func (addr *IPv6Address) GetSection() *Section {
	return addr.section
}

// GetZone returns the address's scope zone, or NoZone if unzoned.
func (addr *IPv6Address) GetZone() Zone {
	return addr.zone
}

// Equal reports whether two IPv6 addresses represent the same value, prefix length, and zone.
func (addr *IPv6Address) Equal(other *IPv6Address) bool {
	return addr.ToIP().Equal(other.ToIP())
}

// Contains reports whether every address represented by other is represented by addr.
func (addr *IPv6Address) Contains(other *IPv6Address) bool {
	return addr.section.Contains(other.section)
}

// IsMultiple reports whether this represents more than one address.
func (addr *IPv6Address) IsMultiple() bool {
	return addr.section.IsMultiple()
}

// Bytes returns the lower address value as 16 big-endian bytes.
func (addr *IPv6Address) Bytes() []byte {
	return addr.section.Bytes()
}

var (
	ipv6LoopbackAddr   = mustIPv6Loopback()
	ipv6LinkLocalBlock = mustIPv6PrefixBlock([]byte{0xfe, 0x80}, 10)
	ipv6UniqueLocal    = mustIPv6PrefixBlock([]byte{0xfc}, 7)
	ipv6MulticastBlock = mustIPv6PrefixBlock([]byte{0xff}, 8)
)

func mustIPv6Loopback() *IPv6Address {
	b := make([]byte, 16)
	b[15] = 1
	addr, err := NewIPv6AddressFromBytes(b)
	if err != nil {
		panic(err)
	}
	return addr
}

func mustIPv6PrefixBlock(prefixBytes []byte, prefixLen BitCount) *IPv6Address {
	b := make([]byte, 16)
	copy(b, prefixBytes)
	addr, err := NewIPv6AddressFromBytes(b)
	if err != nil {
		panic(err)
	}
	return (*IPv6Address)(addr.ToIP().ToPrefixBlock(prefixLen))
}

// IsLoopback reports whether addr is ::1.
func (addr *IPv6Address) IsLoopback() bool {
	return addr.Equal(ipv6LoopbackAddr)
}

// IsLinkLocal reports whether addr falls within fe80::/10.
func (addr *IPv6Address) IsLinkLocal() bool {
	return ipv6LinkLocalBlock.Contains(addr)
}

// IsUniqueLocal reports whether addr falls within fc00::/7 (RFC 4193).
func (addr *IPv6Address) IsUniqueLocal() bool {
	return ipv6UniqueLocal.Contains(addr)
}

// IsPrivate is an alias for IsUniqueLocal, matching IPv4's naming.
func (addr *IPv6Address) IsPrivate() bool {
	return addr.IsUniqueLocal()
}

// IsMulticast reports whether addr falls within ff00::/8.
func (addr *IPv6Address) IsMulticast() bool {
	return ipv6MulticastBlock.Contains(addr)
}

// IsLocal reports whether addr is loopback, link-local, or unique-local.
func (addr *IPv6Address) IsLocal() bool {
	return addr.IsLoopback() || addr.IsLinkLocal() || addr.IsUniqueLocal()
}
