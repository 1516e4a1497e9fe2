package goip

import (
	"strconv"
	"strings"

	"github.com/LucasZ876/IPAddress-sub000/address_error"
	"github.com/LucasZ876/IPAddress-sub000/address_string_param"
)

// parseIPAddress is the two-phase parser described in the component design:
// phase one splits the text into its structural pieces (zone, prefix/mask
// suffix, version-determining separators) without interpreting digits;
// phase two resolves each segment token to a numeric interval and
// materializes the Address, applying any trailing prefix or mask.
func parseIPAddress(str string, params address_string_param.IPAddressStringParams) (*IPAddress, address_error.AddressStringError) {
	str = strings.TrimSpace(str)
	if str == "" {
		if !params.AllowsEmpty() {
			return nil, newAddressStringError("ipaddress.host.error.empty", "")
		}
		loopback, _ := NewIPv4AddressFromBytes([]byte{127, 0, 0, 1})
		return loopback.ToIP(), nil
	}
	if str == "*" {
		if !params.AllowsAll() {
			return nil, newAddressStringError("ipaddress.error.invalidRange", str)
		}
		return nil, nil
	}

	// phase 1: peel off the suffix, then the zone, without interpreting
	// either the body's digits or the suffix's meaning yet.
	body := str
	var suffix string
	hasSuffix := false
	if idx := strings.IndexByte(body, '/'); idx >= 0 {
		suffix = body[idx+1:]
		body = body[:idx]
		hasSuffix = true
	}

	var zone Zone
	if idx := strings.IndexByte(body, '%'); idx >= 0 {
		zone = Zone(body[idx+1:])
		body = body[:idx]
	}

	isIPv6 := strings.IndexByte(body, ':') >= 0
	isIPv4 := !isIPv6 && strings.IndexByte(body, '.') >= 0

	var section *Section
	var err address_error.AddressStringError
	if isIPv6 {
		if !params.AllowsIPv6() {
			return nil, newAddressStringError("ipaddress.error.ipv6", body)
		}
		section, err = parseIPv6Body(body, params.GetIPv6Params())
	} else if isIPv4 {
		if !params.AllowsIPv4() {
			return nil, newAddressStringError("ipaddress.error.ipv4", body)
		}
		section, err = parseIPv4Body(body, params.GetIPv4Params())
	} else {
		if !params.AllowsSingleSegment() {
			return nil, newAddressStringError("ipaddress.error.single.segment", body)
		}
		section, err = parseSingleSegment(body, params)
		isIPv4 = section != nil && section.GetIPVersion().IsIPv4()
	}
	if err != nil {
		return nil, err
	}

	addr := &IPAddress{section: section, zone: zone}

	if !hasSuffix {
		return addr, nil
	}
	return applySuffix(addr, suffix, params)
}

// applySuffix resolves the text after '/': a plain integer no greater than
// the family's bit count is a prefix length; otherwise the text is parsed
// as an address of the same family, and if it is a contiguous network mask
// it is converted to the equivalent prefix length, else applied as a
// bitwise mask per §4.5.
func applySuffix(addr *IPAddress, suffix string, params address_string_param.IPAddressStringParams) (*IPAddress, address_error.AddressStringError) {
	bitCount := addr.section.GetBitCount()
	if n, convErr := strconv.Atoi(suffix); convErr == nil && n >= 0 {
		if n > bitCount {
			if !params.AllowsPrefixesBeyondAddressSize() {
				return nil, newAddressStringError("ipaddress.error.prefixSize", suffix)
			}
			n = bitCount
		}
		return applyPrefix(addr, n), nil
	}
	if !params.AllowsMask() {
		return nil, newAddressStringError("ipaddress.error.invalid.mask.extra.chars", suffix)
	}
	maskAddr, err := parseIPAddress(suffix, params)
	if err != nil {
		return nil, err
	}
	if maskAddr == nil || maskAddr.GetIPVersion() != addr.GetIPVersion() {
		return nil, newAddressStringError("ipaddress.error.ipMismatch", suffix)
	}
	if p, ok := maskToPrefixLen(maskAddr.section); ok {
		return applyPrefix(addr, p), nil
	}
	masked, incompatErr := addr.section.Mask(maskAddr.section, false)
	if incompatErr != nil {
		return nil, newAddressStringError("ipaddress.error.invalidMultipleMask", suffix)
	}
	return &IPAddress{section: masked, zone: addr.zone}, nil
}

// maskToPrefixLen returns the prefix length equivalent of mask if mask is a
// contiguous network mask (all-ones high bits, all-zero low bits), else false.
func maskToPrefixLen(mask *Section) (BitCount, bool) {
	if mask.IsMultiple() {
		return 0, false
	}
	bitCount := mask.GetBitCount()
	bitsPerSeg := mask.GetBitsPerSegment()
	p := 0
	seenZero := false
	for i := 0; i < mask.GetSegmentCount(); i++ {
		v := mask.GetSegment(i).lower
		for b := bitsPerSeg - 1; b >= 0; b-- {
			bitSet := v&(1<<uint(b)) != 0
			if seenZero {
				if bitSet {
					return 0, false
				}
				continue
			}
			if bitSet {
				p++
			} else {
				seenZero = true
			}
		}
	}
	if p > bitCount {
		p = bitCount
	}
	return p, true
}

// applyPrefix attaches prefix length p to addr, expanding to the full
// prefix block when the process-wide configuration calls for it.
func applyPrefix(addr *IPAddress, p BitCount) *IPAddress {
	switch GetDefaultPrefixConfiguration() {
	case AllPrefixedAddressesAreSubnets:
		return addr.ToPrefixBlock(p)
	case ZeroHostsAreSubnets:
		withPrefix := &IPAddress{section: addr.section.withPrefixLen(cacheBitCount(p)), zone: addr.zone}
		host := withPrefix.section.GetHostSection(p)
		allZero := true
		for i := 0; i < host.GetSegmentCount(); i++ {
			if host.GetSegment(i).lower != 0 || host.GetSegment(i).upper != 0 {
				allZero = false
				break
			}
		}
		if allZero {
			return addr.ToPrefixBlock(p)
		}
		return withPrefix
	default: // PrefixedSubnetsAreExplicit
		return &IPAddress{section: addr.section.withPrefixLen(cacheBitCount(p)), zone: addr.zone}
	}
}

type segInterval struct {
	lower, upper SegInt
}

// parseSegmentToken resolves one dotted/colon-delimited token (already
// isolated by phase 1's separator scan) to a numeric interval, honoring
// wildcard '*', hyphenated ranges, and the family's radix indicators.
func parseSegmentToken(tok string, bitsPerSeg BitCount, radix int, rangeParams address_string_param.RangeParams) (segInterval, address_error.AddressStringError) {
	maxVal := SegInt(1)<<uint(bitsPerSeg) - 1
	if tok == "*" {
		if rangeParams != nil && !rangeParams.AllowsWildcard() {
			return segInterval{}, newAddressStringError("ipaddress.error.invalidRange", tok)
		}
		return segInterval{0, maxVal}, nil
	}
	if idx := strings.IndexByte(tok, RangeSeparator); idx >= 0 {
		if rangeParams != nil && !rangeParams.AllowsRangeSeparator() {
			return segInterval{}, newAddressStringError("ipaddress.error.invalidRange", tok)
		}
		loStr, hiStr := tok[:idx], tok[idx+1:]
		lo := SegInt(0)
		hi := maxVal
		var err address_error.AddressStringError
		if loStr != "" {
			lo, err = parsePlainSegment(loStr, radix, maxVal)
			if err != nil {
				return segInterval{}, err
			}
		}
		if hiStr != "" {
			hi, err = parsePlainSegment(hiStr, radix, maxVal)
			if err != nil {
				return segInterval{}, err
			}
		}
		if lo > hi {
			if rangeParams != nil && rangeParams.AllowsReverseRange() {
				lo, hi = hi, lo
			} else {
				return segInterval{}, newAddressStringError("ipaddress.error.invalidRange", tok)
			}
		}
		return segInterval{lo, hi}, nil
	}
	v, err := parsePlainSegment(tok, radix, maxVal)
	if err != nil {
		return segInterval{}, err
	}
	return segInterval{v, v}, nil
}

// parsePlainSegment parses a single numeric token, inferring hex/octal/
// binary from its prefix when radix is 0 (auto), otherwise using the fixed
// radix supplied by the caller (16 for IPv6 groups).
func parsePlainSegment(tok string, radix int, maxVal SegInt) (SegInt, address_error.AddressStringError) {
	r := radix
	digits := tok
	if r == 0 {
		switch {
		case strings.HasPrefix(tok, "0x") || strings.HasPrefix(tok, "0X"):
			r, digits = 16, tok[2:]
		case strings.HasPrefix(tok, "0b") || strings.HasPrefix(tok, "0B"):
			r, digits = 2, tok[2:]
		case len(tok) > 1 && tok[0] == '0':
			r, digits = 8, tok[1:]
		default:
			r = 10
		}
	}
	if digits == "" {
		return 0, newAddressStringError("ipaddress.error.ipv4.invalid.decimal.digit", tok)
	}
	v, err := strconv.ParseUint(digits, r, 64)
	if err != nil {
		return 0, newAddressStringError("ipaddress.error.ipv4.invalid.decimal.digit", tok)
	}
	if SegInt(v) > maxVal || uint64(SegInt(v)) != v {
		return 0, newAddressStringError("ipaddress.error.exceeds.size", tok)
	}
	return SegInt(v), nil
}

func parseIPv4Body(body string, params address_string_param.IPv4AddressStringParams) (*Section, address_error.AddressStringError) {
	parts := strings.Split(body, ".")
	if len(parts) > IPv4SegmentCount {
		return nil, newAddressStringError("ipaddress.error.ipv4.invalid.segment.count", body)
	}
	rangeParams := params.GetRangeParams()
	if len(parts) == IPv4SegmentCount {
		segs := make([]*Segment, IPv4SegmentCount)
		for i, p := range parts {
			interval, err := parseSegmentToken(p, IPv4BitsPerSegment, 0, rangeParams)
			if err != nil {
				return nil, err
			}
			segs[i], _ = createRangeSegment(IPv4BitsPerSegment, interval.lower, interval.upper, nil)
		}
		return newSection(IPv4, segs, nil), nil
	}
	if !params.AllowsInetAtonJoinedSegments() {
		return nil, newAddressStringError("ipaddress.error.too.few.segments", body)
	}
	// inet_aton joined form: every part is a plain value (no wildcards or
	// ranges); leading parts are single-byte values and the final part fills
	// the remaining bytes.
	vals := make([]uint64, len(parts))
	for i, p := range parts {
		maxVal := SegInt(0xff)
		if i == len(parts)-1 {
			maxVal = SegInt(0xffffffff >> uint(8*(len(parts)-1)))
		}
		v, err := parsePlainSegment(p, 0, maxVal)
		if err != nil {
			return nil, err
		}
		vals[i] = uint64(v)
	}
	var full [4]SegInt
	switch len(parts) {
	case 1:
		v := vals[0]
		full = [4]SegInt{SegInt(v >> 24), SegInt(v >> 16), SegInt(v >> 8), SegInt(v)}
	case 2:
		full[0] = SegInt(vals[0])
		v := vals[1]
		full[1], full[2], full[3] = SegInt(v>>16), SegInt(v>>8), SegInt(v)
	case 3:
		full[0], full[1] = SegInt(vals[0]), SegInt(vals[1])
		v := vals[2]
		full[2], full[3] = SegInt(v>>8), SegInt(v)
	}
	segs := make([]*Segment, IPv4SegmentCount)
	for i, v := range full {
		segs[i], _ = createSegment(IPv4BitsPerSegment, v&0xff, nil)
	}
	return newSection(IPv4, segs, nil), nil
}

// parseExtraneousDigitsValue parses a single numeric token of arbitrary
// width and truncates it to the low 32 bits, mod 2^32, per the
// inet_aton_extraneous_digits dialect: a token with more significant bits
// than fit in an address is accepted and wrapped rather than rejected.
func parseExtraneousDigitsValue(tok string) (uint32, address_error.AddressStringError) {
	r := 10
	digits := tok
	switch {
	case strings.HasPrefix(tok, "0x") || strings.HasPrefix(tok, "0X"):
		r, digits = 16, tok[2:]
	case strings.HasPrefix(tok, "0b") || strings.HasPrefix(tok, "0B"):
		r, digits = 2, tok[2:]
	case len(tok) > 1 && tok[0] == '0':
		r, digits = 8, tok[1:]
	}
	if digits == "" {
		return 0, newAddressStringError("ipaddress.error.ipv4.invalid.decimal.digit", tok)
	}
	var v uint32
	for _, c := range digits {
		d, err := strconv.ParseUint(string(c), r, 8)
		if err != nil {
			return 0, newAddressStringError("ipaddress.error.ipv4.invalid.decimal.digit", tok)
		}
		v = v*uint32(r) + uint32(d)
	}
	return v, nil
}

func parseSingleSegment(body string, params address_string_param.IPAddressStringParams) (*Section, address_error.AddressStringError) {
	v, err := parseExtraneousDigitsValue(body)
	if err == nil {
		segs := make([]*Segment, IPv4SegmentCount)
		for i := 0; i < IPv4SegmentCount; i++ {
			shift := uint(8 * (IPv4SegmentCount - 1 - i))
			segs[i], _ = createSegment(IPv4BitsPerSegment, SegInt((v>>shift)&0xff), nil)
		}
		return newSection(IPv4, segs, nil), nil
	}
	return nil, newAddressStringError("ipaddress.error.ipv4.format", body)
}

func parseIPv6Body(body string, params address_string_param.IPv6AddressStringParams) (*Section, address_error.AddressStringError) {
	rangeParams := params.GetRangeParams()
	doubleColon := strings.Index(body, "::")
	var leftStr, rightStr string
	hasDoubleColon := doubleColon >= 0
	if hasDoubleColon {
		leftStr = body[:doubleColon]
		rightStr = body[doubleColon+2:]
	} else {
		leftStr = body
	}
	var leftParts, rightParts []string
	if leftStr != "" {
		leftParts = strings.Split(leftStr, ":")
	}
	if rightStr != "" {
		rightParts = strings.Split(rightStr, ":")
	}

	var mixedSection *Section
	if params.AllowsMixed() && len(rightParts) > 0 && strings.IndexByte(rightParts[len(rightParts)-1], '.') >= 0 {
		v4, err := parseIPv4Body(rightParts[len(rightParts)-1], defaultIPv4FormatParams())
		if err != nil {
			return nil, err
		}
		mixedSection = v4
		rightParts = rightParts[:len(rightParts)-1]
	} else if len(leftParts) > 0 && !hasDoubleColon && strings.IndexByte(leftParts[len(leftParts)-1], '.') >= 0 && params.AllowsMixed() {
		v4, err := parseIPv4Body(leftParts[len(leftParts)-1], defaultIPv4FormatParams())
		if err != nil {
			return nil, err
		}
		mixedSection = v4
		leftParts = leftParts[:len(leftParts)-1]
	}

	groupCount := len(leftParts) + len(rightParts)
	if mixedSection != nil {
		groupCount += 2
	}
	if !hasDoubleColon && groupCount != IPv6SegmentCount {
		return nil, newAddressStringError("ipaddress.error.ipv6.invalid.segment.count", body)
	}
	if hasDoubleColon && groupCount >= IPv6SegmentCount {
		return nil, newAddressStringError("ipaddress.error.ipv6.invalid.segment.count", body)
	}
	fillCount := IPv6SegmentCount - groupCount

	segs := make([]*Segment, 0, IPv6SegmentCount)
	for _, p := range leftParts {
		interval, err := parseSegmentToken(p, IPv6BitsPerSegment, 16, rangeParams)
		if err != nil {
			return nil, err
		}
		s, _ := createRangeSegment(IPv6BitsPerSegment, interval.lower, interval.upper, nil)
		segs = append(segs, s)
	}
	if hasDoubleColon {
		for i := 0; i < fillCount; i++ {
			s, _ := createSegment(IPv6BitsPerSegment, 0, nil)
			segs = append(segs, s)
		}
	}
	for _, p := range rightParts {
		interval, err := parseSegmentToken(p, IPv6BitsPerSegment, 16, rangeParams)
		if err != nil {
			return nil, err
		}
		s, _ := createRangeSegment(IPv6BitsPerSegment, interval.lower, interval.upper, nil)
		segs = append(segs, s)
	}
	if mixedSection != nil {
		b := mixedSection.Bytes()
		s0, _ := createSegment(IPv6BitsPerSegment, SegInt(b[0])<<8|SegInt(b[1]), nil)
		s1, _ := createSegment(IPv6BitsPerSegment, SegInt(b[2])<<8|SegInt(b[3]), nil)
		segs = append(segs, s0, s1)
	}
	if len(segs) != IPv6SegmentCount {
		return nil, newAddressStringError("ipaddress.error.ipv6.invalid.segment.count", body)
	}
	return newSection(IPv6, segs, nil), nil
}

// defaultIPv4FormatParams builds permissive IPv4 format parameters for use
// when parsing the embedded dotted-quad of an IPv6 mixed address.
func defaultIPv4FormatParams() address_string_param.IPv4AddressStringParams {
	return defaultIPAddrParameters.GetIPv4Params()
}
