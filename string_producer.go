package goip

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/LucasZ876/IPAddress-sub000/address_string"
)

// ToNormalizedString renders each segment in decimal (IPv4) or lowercase
// hex without leading zeros (IPv6), uncompressed, with the family's
// standard separator, plus a /n suffix if prefixed.
func (addr *IPv4Address) ToNormalizedString() string {
	return addr.joinSegments(10, false, "", IPv4SegmentSeparatorStr) + addr.prefixSuffix()
}

func (addr *IPv4Address) prefixSuffix() string {
	p := addr.ToIP().GetNetworkPrefixLen()
	if p == nil {
		return ""
	}
	return "/" + strconv.Itoa(p.Len())
}

func (addr *IPv4Address) joinSegments(radix int, pad bool, padChar, sep string) string {
	section := addr.section
	parts := make([]string, section.GetSegmentCount())
	for i := 0; i < section.GetSegmentCount(); i++ {
		parts[i] = formatSegment(section.GetSegment(i), radix, pad, 3, section.IsPrefixed())
	}
	return strings.Join(parts, sep)
}

// formatSegment renders a segment's value, or "lower-upper" when it is
// multi-valued. When prefixed is set and the segment is exactly the block of
// its own segment prefix length, only its lower value is rendered, since the
// address's /n suffix already conveys the range.
func formatSegment(seg *Segment, radix int, pad bool, width int, prefixed bool) string {
	var s string
	ranged := seg.IsMultiple() && !(prefixed && seg.prefLen != nil && seg.IsPrefixBlock(seg.prefLen.Len()))
	if ranged {
		s = strconv.FormatUint(uint64(seg.lower), radix) + string(RangeSeparator) + strconv.FormatUint(uint64(seg.upper), radix)
	} else {
		s = strconv.FormatUint(uint64(seg.lower), radix)
	}
	if pad && !ranged && len(s) < width {
		s = strings.Repeat("0", width-len(s)) + s
	}
	return s
}

// formatSegmentWildcard renders a segment the way formatSegment does, except
// a multi-valued segment uses opts' Wildcards rather than the fixed '-', and
// a segment spanning its entire value space renders as the wildcard string
// when opts.PreferWildcards() is set.
func formatSegmentWildcard(seg *Segment, radix int, width int, opts address_string.WildcardOptions) string {
	wildcards := opts.GetWildcards()
	if seg.IsMultiple() {
		if opts.PreferWildcards() && seg.GetSegmentValue() == 0 && seg.GetUpperSegmentValue() == seg.GetMaxValue() {
			return wildcards.GetWildcard()
		}
		lower := strconv.FormatUint(uint64(seg.GetSegmentValue()), radix)
		upper := strconv.FormatUint(uint64(seg.GetUpperSegmentValue()), radix)
		return lower + wildcards.GetRangeSeparator() + upper
	}
	s := strconv.FormatUint(uint64(seg.GetSegmentValue()), radix)
	if len(s) < width {
		s = strings.Repeat("0", width-len(s)) + s
	}
	return s
}

// ToCustomString renders the address using the given wildcard options in
// place of the default range separator and full-range wildcard.
func (addr *IPv4Address) ToCustomString(opts address_string.WildcardOptions) string {
	section := addr.section
	parts := make([]string, section.GetSegmentCount())
	for i := 0; i < section.GetSegmentCount(); i++ {
		parts[i] = formatSegmentWildcard(section.GetSegment(i), 10, 0, opts)
	}
	return strings.Join(parts, IPv4SegmentSeparatorStr) + addr.prefixSuffix()
}

// ToFullString renders every segment padded to the family's fixed digit
// count, with no compression.
func (addr *IPv4Address) ToFullString() string {
	return addr.joinSegments(10, true, "0", IPv4SegmentSeparatorStr) + addr.prefixSuffix()
}

// ToInetAtonString renders the address using the given inet_aton radix
// (8, 10, or 16), as a single dotted-quad with no joined-segment collapsing.
func (addr *IPv4Address) ToInetAtonString(radix int) string {
	prefix := ""
	if radix == 8 {
		prefix = OctalPrefix
	} else if radix == 16 {
		prefix = HexPrefix
	}
	section := addr.section
	parts := make([]string, section.GetSegmentCount())
	for i := 0; i < section.GetSegmentCount(); i++ {
		parts[i] = prefix + formatSegment(section.GetSegment(i), radix, false, 0, section.IsPrefixed())
	}
	return strings.Join(parts, IPv4SegmentSeparatorStr) + addr.prefixSuffix()
}

// ToReverseDNSString renders the octet-reversed in-addr.arpa form.
func (addr *IPv4Address) ToReverseDNSString() string {
	section := addr.section
	n := section.GetSegmentCount()
	parts := make([]string, n)
	for i := 0; i < n; i++ {
		parts[i] = formatSegment(section.GetSegment(n-1-i), 10, false, 0, false)
	}
	return strings.Join(parts, IPv4SegmentSeparatorStr) + IPv4ReverseDnsSuffix
}

// String implements fmt.Stringer using the normalized form.
func (addr *IPv4Address) String() string {
	return addr.ToNormalizedString()
}

// zoneSuffix returns the %zone suffix, or "" if unzoned.
func (addr *IPv6Address) zoneSuffix() string {
	if addr.zone.IsEmpty() {
		return ""
	}
	return IPv6ZoneSeparatorStr + addr.zone.String()
}

func (addr *IPv6Address) prefixSuffix() string {
	p := addr.ToIP().GetNetworkPrefixLen()
	if p == nil {
		return ""
	}
	return "/" + strconv.Itoa(p.Len())
}

// ToNormalizedString renders each group in lowercase hex without leading
// zeros, uncompressed, colon-separated.
func (addr *IPv6Address) ToNormalizedString() string {
	groups := addr.hexGroups(false)
	return strings.Join(groups, IPv6SegmentSeparatorStr) + addr.zoneSuffix() + addr.prefixSuffix()
}

func (addr *IPv6Address) hexGroups(padded bool) []string {
	section := addr.section
	n := section.GetSegmentCount()
	groups := make([]string, n)
	for i := 0; i < n; i++ {
		groups[i] = formatSegment(section.GetSegment(i), 16, padded, 4, section.IsPrefixed())
	}
	return groups
}

// ToFullString renders every group padded to 4 hex digits, uncompressed.
func (addr *IPv6Address) ToFullString() string {
	groups := addr.hexGroups(true)
	return strings.Join(groups, IPv6SegmentSeparatorStr) + addr.zoneSuffix() + addr.prefixSuffix()
}

// ToCanonicalString renders the RFC 5952 canonical form: leading zeros
// suppressed, the longest run (>= 2) of all-zero groups compressed to "::",
// leftmost preferred on ties, a lone zero group never compressed.
func (addr *IPv6Address) ToCanonicalString() string {
	groups := addr.hexGroups(false)
	return compressGroups(groups, 2) + addr.zoneSuffix() + addr.prefixSuffix()
}

// ToCompressedString is as ToCanonicalString but also compresses a lone
// zero-group run when doing so shortens the string.
func (addr *IPv6Address) ToCompressedString() string {
	groups := addr.hexGroups(false)
	return compressGroups(groups, 1) + addr.zoneSuffix() + addr.prefixSuffix()
}

// compressGroups finds the longest run of literal "0" groups of length at
// least minRun and replaces it with "::", preferring the leftmost run among
// ties. With no qualifying run, returns the plain colon-joined groups.
func compressGroups(groups []string, minRun int) string {
	bestStart, bestLen := -1, 0
	i := 0
	for i < len(groups) {
		if groups[i] != "0" {
			i++
			continue
		}
		j := i
		for j < len(groups) && groups[j] == "0" {
			j++
		}
		runLen := j - i
		if runLen > bestLen {
			bestStart, bestLen = i, runLen
		}
		i = j
	}
	if bestLen < minRun {
		return strings.Join(groups, IPv6SegmentSeparatorStr)
	}
	left := strings.Join(groups[:bestStart], IPv6SegmentSeparatorStr)
	right := strings.Join(groups[bestStart+bestLen:], IPv6SegmentSeparatorStr)
	switch {
	case bestStart == 0 && bestStart+bestLen == len(groups):
		return "::"
	case bestStart == 0:
		return "::" + right
	case bestStart+bestLen == len(groups):
		return left + "::"
	default:
		return left + "::" + right
	}
}

// ToMixedString renders the last two 16-bit groups as a dotted-quad, with
// "::" compression chosen from the pure-IPv6 prefix portion only.
func (addr *IPv6Address) ToMixedString() string {
	section := addr.section
	n := section.GetSegmentCount()
	groups := make([]string, n-2)
	for i := 0; i < n-2; i++ {
		groups[i] = formatSegment(section.GetSegment(i), 16, false, 4, false)
	}
	v4 := addr.ToIPv4()
	var tail string
	if v4 != nil {
		tail = v4.ToNormalizedString()
	} else {
		b := addr.Bytes()
		tail = fmt.Sprintf("%d.%d.%d.%d", b[12], b[13], b[14], b[15])
	}
	head := compressGroups(groups, 2)
	if head == "" {
		return "::" + tail
	}
	if strings.HasSuffix(head, "::") {
		return head + tail
	}
	return head + IPv6SegmentSeparatorStr + tail
}

// ToCustomString renders the address using the given wildcard options in
// place of the default range separator and full-range wildcard, with "::"
// compression chosen the same way as ToCanonicalString.
func (addr *IPv6Address) ToCustomString(opts address_string.WildcardOptions) string {
	section := addr.section
	n := section.GetSegmentCount()
	groups := make([]string, n)
	for i := 0; i < n; i++ {
		groups[i] = formatSegmentWildcard(section.GetSegment(i), 16, 0, opts)
	}
	return compressGroups(groups, 2) + addr.zoneSuffix() + addr.prefixSuffix()
}

// ToReverseDNSString renders the nibble-reversed ip6.arpa form.
func (addr *IPv6Address) ToReverseDNSString() string {
	groups := addr.hexGroups(true)
	var nibbles []string
	for i := len(groups) - 1; i >= 0; i-- {
		g := groups[i]
		for j := len(g) - 1; j >= 0; j-- {
			nibbles = append(nibbles, string(g[j]))
		}
	}
	return strings.Join(nibbles, ".") + IPv6ReverseDnsSuffix
}

// ToUNCString renders the Microsoft ipv6-literal.net UNC form.
func (addr *IPv6Address) ToUNCString() string {
	groups := addr.hexGroups(false)
	base := strings.Join(groups, IPv6UncSegmentSeparatorStr)
	s := base
	if !addr.zone.IsEmpty() {
		s += IPv6UncZoneSeparatorStr + addr.zone.String()
	}
	return s + IPv6UncSuffix
}

// String implements fmt.Stringer using the canonical form.
func (addr *IPv6Address) String() string {
	return addr.ToCanonicalString()
}
