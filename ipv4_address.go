package goip

const (
	IPv4SegmentSeparator      = '.'
	IPv4SegmentSeparatorStr   = "."
	IPv4BitsPerSegment        = 8
	IPv4BytesPerSegment       = 1
	IPv4SegmentCount          = 4
	IPv4ByteCount             = 4
	IPv4BitCount              = 32
	IPv4DefaultTextualRadix   = 10
	IPv4MaxValuePerSegment    = 0xff
	IPv4MaxValue              = 0xffffffff
	IPv4ReverseDnsSuffix      = ".in-addr.arpa"
	IPv4SegmentMaxChars       = 3
	ipv4BitsToSegmentBitshift = 3
)

// IPv4Address is an IPv4 address, or a subnet of multiple IPv4 addresses.
// An IPv4 address is composed of 4 one-byte segments and can optionally
// have an associated prefix length. Each segment can represent a single
// value or a range of values. The zero value is not a valid address; use
// NewIPv4AddressFromBytes, NewIPv4AddressFromValues, or parse one from text
// with IPAddressString.
type IPv4Address IPAddress

// ToIP returns the generic IPAddress view of this IPv4 address.
func (addr *IPv4Address) ToIP() *IPAddress {
	return (*IPAddress)(addr)
}

// GetSection returns the underlying Section.
func (addr *IPv4Address) GetSection() *Section {
	return addr.section
}

// Equal reports whether two IPv4 addresses represent the same value and prefix length.
func (addr *IPv4Address) Equal(other *IPv4Address) bool {
	return addr.ToIP().Equal(other.ToIP())
}

// Contains reports whether every address represented by other is represented by addr.
func (addr *IPv4Address) Contains(other *IPv4Address) bool {
	return addr.section.Contains(other.section)
}

// IsMultiple reports whether this represents more than one address.
func (addr *IPv4Address) IsMultiple() bool {
	return addr.section.IsMultiple()
}

// Bytes returns the lower address value as 4 big-endian bytes.
func (addr *IPv4Address) Bytes() []byte {
	return addr.section.Bytes()
}

// loopback, link-local, and private literals per RFC 5735/1918/3927.
var (
	ipv4LoopbackBlock   = mustIPv4Block(127, 0, 0, 0, 8)
	ipv4LinkLocalBlock  = mustIPv4Block(169, 254, 0, 0, 16)
	ipv4Private10       = mustIPv4Block(10, 0, 0, 0, 8)
	ipv4Private172      = mustIPv4Block(172, 16, 0, 0, 12)
	ipv4Private192      = mustIPv4Block(192, 168, 0, 0, 16)
	ipv4MulticastBlock  = mustIPv4Block(224, 0, 0, 0, 4)
)

func mustIPv4Block(a, b, c, d byte, prefix BitCount) *IPv4Address {
	addr, err := NewIPv4AddressFromBytes([]byte{a, b, c, d})
	if err != nil {
		panic(err)
	}
	return (*IPv4Address)(addr.ToIP().ToPrefixBlock(prefix))
}

// IsLoopback reports whether addr falls within 127.0.0.0/8.
func (addr *IPv4Address) IsLoopback() bool {
	return ipv4LoopbackBlock.Contains(addr)
}

// IsLinkLocal reports whether addr falls within 169.254.0.0/16.
func (addr *IPv4Address) IsLinkLocal() bool {
	return ipv4LinkLocalBlock.Contains(addr)
}

// IsPrivate reports whether addr falls within one of the RFC 1918 blocks.
func (addr *IPv4Address) IsPrivate() bool {
	return ipv4Private10.Contains(addr) || ipv4Private172.Contains(addr) || ipv4Private192.Contains(addr)
}

// IsMulticast reports whether addr falls within 224.0.0.0/4.
func (addr *IPv4Address) IsMulticast() bool {
	return ipv4MulticastBlock.Contains(addr)
}

// IsLocal reports whether addr is loopback, link-local, or private.
func (addr *IPv4Address) IsLocal() bool {
	return addr.IsLoopback() || addr.IsLinkLocal() || addr.IsPrivate()
}
