package goip

import (
	"bytes"

	"github.com/LucasZ876/IPAddress-sub000/address_error"
)

// IPAddress is a generic IPv4 or IPv6 address, or subnet of multiple
// addresses, represented as a Section of the family's full bit width plus,
// for IPv6, an optional zone. The zero value is not a valid address; use
// one of the constructor functions.
type IPAddress struct {
	section *Section
	zone    Zone
}

// NewIPv4AddressFromBytes builds an IPv4Address from a 4-byte (or shorter,
// zero-extended) big-endian byte slice.
func NewIPv4AddressFromBytes(bytes []byte) (*IPv4Address, address_error.AddressValueError) {
	section, err := sectionFromBytes(IPv4, bytes, IPv4SegmentCount, IPv4BitsPerSegment)
	if err != nil {
		return nil, err
	}
	return (*IPv4Address)(&IPAddress{section: section}), nil
}

// NewIPv6AddressFromBytes builds an IPv6Address from a 16-byte (or shorter,
// zero-extended) big-endian byte slice.
func NewIPv6AddressFromBytes(b []byte) (*IPv6Address, address_error.AddressValueError) {
	section, err := sectionFromBytes(IPv6, b, IPv6SegmentCount, IPv6BitsPerSegment)
	if err != nil {
		return nil, err
	}
	return (*IPv6Address)(&IPAddress{section: section}), nil
}

func sectionFromBytes(version IPVersion, b []byte, segCount int, bitsPerSeg BitCount) (*Section, address_error.AddressValueError) {
	bytesPerSeg := bitsPerSeg / 8
	totalBytes := segCount * bytesPerSeg
	if len(b) > totalBytes {
		for _, extra := range b[:len(b)-totalBytes] {
			if extra != 0 {
				return nil, newAddressValueError("ipaddress.error.exceeds.size", int64(len(b)))
			}
		}
		b = b[len(b)-totalBytes:]
	} else if len(b) < totalBytes {
		padded := make([]byte, totalBytes)
		copy(padded[totalBytes-len(b):], b)
		b = padded
	}
	segs := make([]*Segment, segCount)
	for i := 0; i < segCount; i++ {
		var v SegInt
		for j := 0; j < bytesPerSeg; j++ {
			v = (v << 8) | SegInt(b[i*bytesPerSeg+j])
		}
		segs[i], _ = createSegment(bitsPerSeg, v, nil)
	}
	return newSection(version, segs, nil), nil
}

// NewIPv4AddressFromValues builds an IPv4Address from a SegmentValueProvider
// that supplies one octet value per segment index.
func NewIPv4AddressFromValues(vals SegmentValueProvider) (*IPv4Address, address_error.AddressValueError) {
	segs := make([]*Segment, IPv4SegmentCount)
	for i := range segs {
		s, err := createSegment(IPv4BitsPerSegment, vals(i), nil)
		if err != nil {
			return nil, err
		}
		segs[i] = s
	}
	return (*IPv4Address)(&IPAddress{section: newSection(IPv4, segs, nil)}), nil
}

// NewIPv6AddressFromValues builds an IPv6Address from a SegmentValueProvider
// that supplies one 16-bit group value per segment index.
func NewIPv6AddressFromValues(vals SegmentValueProvider, zone Zone) (*IPv6Address, address_error.AddressValueError) {
	segs := make([]*Segment, IPv6SegmentCount)
	for i := range segs {
		s, err := createSegment(IPv6BitsPerSegment, vals(i), nil)
		if err != nil {
			return nil, err
		}
		segs[i] = s
	}
	return (*IPv6Address)(&IPAddress{section: newSection(IPv6, segs, nil), zone: zone}), nil
}

// GetIPVersion returns the address family.
func (addr *IPAddress) GetIPVersion() IPVersion {
	return addr.section.GetIPVersion()
}

// GetSection returns the underlying Section backing this address.
func (addr *IPAddress) GetSection() *Section {
	return addr.section
}

// GetZone returns the IPv6 scope zone, or NoZone for IPv4 or an unzoned IPv6 address.
func (addr *IPAddress) GetZone() Zone {
	return addr.zone
}

// IsIPv4 reports whether this address is an IPv4 address.
func (addr *IPAddress) IsIPv4() bool {
	return addr.GetIPVersion().IsIPv4()
}

// String returns the normalized string of an IPv4 address or the canonical
// string of an IPv6 address, dispatching to the family-specific producer.
func (addr *IPAddress) String() string {
	if addr == nil {
		return "<nil>"
	}
	if addr.IsIPv4() {
		return addr.ToIPv4().String()
	}
	return addr.ToIPv6().String()
}

// IsIPv6 reports whether this address is an IPv6 address.
func (addr *IPAddress) IsIPv6() bool {
	return addr.GetIPVersion().IsIPv6()
}

// ToIPv4 returns the IPv4 view of this address, or nil if it is not IPv4.
func (addr *IPAddress) ToIPv4() *IPv4Address {
	if addr == nil || !addr.IsIPv4() {
		return nil
	}
	return (*IPv4Address)(addr)
}

// ToIPv6 returns the IPv6 view of this address, or nil if it is not IPv6.
func (addr *IPAddress) ToIPv6() *IPv6Address {
	if addr == nil || !addr.IsIPv6() {
		return nil
	}
	return (*IPv6Address)(addr)
}

// GetNetworkPrefixLen returns the address's network prefix length, or nil if none.
func (addr *IPAddress) GetNetworkPrefixLen() PrefixLen {
	return addr.section.GetNetworkPrefixLen()
}

// IsMultiple reports whether the address represents more than one value.
func (addr *IPAddress) IsMultiple() bool {
	return addr.section.IsMultiple()
}

// GetCount returns the number of distinct addresses represented.
func (addr *IPAddress) GetCount() SegIntCount {
	return addr.section.GetValueCount()
}

// Bytes returns the lower address value as big-endian bytes.
func (addr *IPAddress) Bytes() []byte {
	return addr.section.Bytes()
}

// UpperBytes returns the upper address value as big-endian bytes.
func (addr *IPAddress) UpperBytes() []byte {
	return addr.section.UpperBytes()
}

// Equal reports whether two addresses represent the same family, segments,
// prefix length, and (for IPv6) zone.
func (addr *IPAddress) Equal(other *IPAddress) bool {
	if addr == nil || other == nil {
		return addr == other
	}
	if addr.GetIPVersion() != other.GetIPVersion() {
		return false
	}
	if addr.zone != other.zone {
		return false
	}
	al, ol := addr.GetNetworkPrefixLen(), other.GetNetworkPrefixLen()
	if (al == nil) != (ol == nil) {
		return false
	}
	if al != nil && al.Len() != ol.Len() {
		return false
	}
	return addr.section.Equal(other.section)
}

// CompareTo orders two addresses lexicographically by segment value, then
// by prefix length (shorter first), then by zone string.
func (addr *IPAddress) CompareTo(other *IPAddress) int {
	if c := compareSections(addr.section, other.section); c != 0 {
		return c
	}
	al, ol := addr.GetNetworkPrefixLen(), other.GetNetworkPrefixLen()
	switch {
	case al == nil && ol == nil:
	case al == nil:
		return 1
	case ol == nil:
		return -1
	case al.Len() != ol.Len():
		if al.Len() < ol.Len() {
			return -1
		}
		return 1
	}
	if addr.zone < other.zone {
		return -1
	} else if addr.zone > other.zone {
		return 1
	}
	return 0
}

// ToPrefixBlock returns the address with its host bits set to their full
// range, i.e. the block of addresses sharing the given prefix.
func (addr *IPAddress) ToPrefixBlock(p BitCount) *IPAddress {
	return &IPAddress{section: addr.section.ToPrefixBlock(p), zone: addr.zone}
}

// ToZeroHost returns the address with host bits beyond p forced to zero.
func (addr *IPAddress) ToZeroHost(p BitCount) *IPAddress {
	return &IPAddress{section: addr.section.ToZeroHost(p), zone: addr.zone}
}

// ToMaxHost returns the address with host bits beyond p forced to their max value.
func (addr *IPAddress) ToMaxHost(p BitCount) *IPAddress {
	return &IPAddress{section: addr.section.ToMaxHost(p), zone: addr.zone}
}

// Contains reports whether every address represented by other is also
// represented by addr (families must match).
func (addr *IPAddress) Contains(other *IPAddress) bool {
	if addr.GetIPVersion() != other.GetIPVersion() {
		return false
	}
	return addr.section.Contains(other.section)
}

// ToSequentialRange returns the SequentialRange of every address this
// address (or subnet) represents, from its lowest to its highest value.
func (addr *IPAddress) ToSequentialRange() *SequentialRange {
	lower := &IPAddress{section: addr.section.GetLowerSection(), zone: addr.zone}
	upper := &IPAddress{section: addr.section.GetUpperSection(), zone: addr.zone}
	return NewSequentialRange(lower, upper)
}

// ToIPv4Mapped builds the IPv6 address ::ffff:a.b.c.d from this IPv4 address.
func (addr *IPv4Address) ToIPv4Mapped() *IPv6Address {
	segs := make([]*Segment, IPv6SegmentCount)
	for i := 0; i < 5; i++ {
		segs[i], _ = createSegment(IPv6BitsPerSegment, 0, nil)
	}
	segs[5], _ = createSegment(IPv6BitsPerSegment, 0xffff, nil)
	v4 := (*IPAddress)(addr)
	b := v4.Bytes()
	segs[6], _ = createSegment(IPv6BitsPerSegment, SegInt(b[0])<<8|SegInt(b[1]), nil)
	segs[7], _ = createSegment(IPv6BitsPerSegment, SegInt(b[2])<<8|SegInt(b[3]), nil)
	return (*IPv6Address)(&IPAddress{section: newSection(IPv6, segs, nil)})
}

// ipv4MappedPrefix is the 12-byte ::ffff:0:0/96 prefix of an IPv4-mapped address.
var ipv4MappedPrefix = []byte{0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0xff, 0xff}

// ToIPv4 converts an IPv6 address to IPv4 using the default IPv4-mapped
// converter, returning nil if the address is not IPv4-mapped.
func (addr *IPv6Address) ToIPv4() *IPv4Address {
	b := (*IPAddress)(addr).Bytes()
	if len(b) != 16 || !bytes.Equal(b[:12], ipv4MappedPrefix) {
		return nil
	}
	v4, _ := NewIPv4AddressFromBytes(b[12:])
	return v4
}

// ToIPv6 converts an IPv4 address to IPv6 using the default IPv4-mapped converter.
func (addr *IPv4Address) ToIPv6() *IPv6Address {
	return addr.ToIPv4Mapped()
}

// IsIPv4Mapped reports whether this IPv6 address is of the form ::ffff:a.b.c.d.
func (addr *IPv6Address) IsIPv4Mapped() bool {
	return addr.ToIPv4() != nil
}
