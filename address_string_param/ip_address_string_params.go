package address_string_param

// RangeOptions enumerates the four range/wildcard dialects a parser may
// accept, matching the range_options configuration option.
type RangeOptions int

const (
	NoRange RangeOptions = iota
	WildcardOnly
	NoReverseRange
	AllowAll
)

// rangeParams is the concrete RangeParams implementation.
type rangeParams struct {
	wildcard, rangeSeparator, singleWildcard, reverseRange, inferredBoundary bool
}

func (r *rangeParams) AllowsWildcard() bool         { return r.wildcard }
func (r *rangeParams) AllowsRangeSeparator() bool   { return r.rangeSeparator }
func (r *rangeParams) AllowsSingleWildcard() bool    { return r.singleWildcard }
func (r *rangeParams) AllowsReverseRange() bool      { return r.reverseRange }
func (r *rangeParams) AllowsInferredBoundary() bool  { return r.inferredBoundary }

// NewRangeParams builds a RangeParams from a RangeOptions preset.
func NewRangeParams(opts RangeOptions) RangeParams {
	switch opts {
	case NoRange:
		return &rangeParams{}
	case WildcardOnly:
		return &rangeParams{wildcard: true, singleWildcard: true, inferredBoundary: true}
	case NoReverseRange:
		return &rangeParams{wildcard: true, rangeSeparator: true, singleWildcard: true, inferredBoundary: true}
	default: // AllowAll
		return &rangeParams{wildcard: true, rangeSeparator: true, singleWildcard: true, reverseRange: true, inferredBoundary: true}
	}
}

// RangeParamsBuilder builds a custom RangeParams value field by field.
type RangeParamsBuilder struct {
	params rangeParams
}

func (b *RangeParamsBuilder) AllowWildcard(allow bool) *RangeParamsBuilder {
	b.params.wildcard = allow
	return b
}
func (b *RangeParamsBuilder) AllowRangeSeparator(allow bool) *RangeParamsBuilder {
	b.params.rangeSeparator = allow
	return b
}
func (b *RangeParamsBuilder) AllowSingleWildcard(allow bool) *RangeParamsBuilder {
	b.params.singleWildcard = allow
	return b
}
func (b *RangeParamsBuilder) AllowReverseRange(allow bool) *RangeParamsBuilder {
	b.params.reverseRange = allow
	return b
}
func (b *RangeParamsBuilder) AllowInferredBoundary(allow bool) *RangeParamsBuilder {
	b.params.inferredBoundary = allow
	return b
}
func (b *RangeParamsBuilder) ToParams() RangeParams {
	p := b.params
	return &p
}

// addressStringFormatParams is the concrete AddressStringFormatParams implementation.
type addressStringFormatParams struct {
	wildcardedSeparator, leadingZeros, unlimitedLeadingZeros bool
	rangeParams                                              RangeParams
}

func (p *addressStringFormatParams) AllowsWildcardedSeparator() bool  { return p.wildcardedSeparator }
func (p *addressStringFormatParams) AllowsLeadingZeros() bool         { return p.leadingZeros }
func (p *addressStringFormatParams) AllowsUnlimitedLeadingZeros() bool { return p.unlimitedLeadingZeros }
func (p *addressStringFormatParams) GetRangeParams() RangeParams      { return p.rangeParams }

// IPAddressStringParams is the full configuration record accepted by the
// parser (C4): the version-agnostic options of §6 plus per-version format
// parameters.
type IPAddressStringParams interface {
	AllowsEmpty() bool
	AllowsSingleSegment() bool
	AllowsAll() bool
	AllowsPrefix() bool
	AllowsMask() bool
	AllowsIPv4() bool
	AllowsIPv6() bool
	AllowsPrefixesBeyondAddressSize() bool
	AllowsPrefixLengthLeadingZeros() bool
	GetIPv4Params() IPv4AddressStringParams
	GetIPv6Params() IPv6AddressStringParams
}

// IPv4AddressStringParams adds the inet_aton dialect options to the
// version-agnostic format parameters.
type IPv4AddressStringParams interface {
	AddressStringFormatParams
	AllowsBinary() bool
	AllowsInetAtonHex() bool
	AllowsInetAtonOctal() bool
	AllowsInetAtonLeadingZeros() bool
	AllowsInetAtonJoinedSegments() bool
	AllowsInetAtonSingleSegmentMask() bool
	AllowsInetAtonExtraneousDigits() bool
}

// IPv6AddressStringParams adds the zone/mixed-form/base-85 options to the
// version-agnostic format parameters.
type IPv6AddressStringParams interface {
	AddressStringFormatParams
	AllowsBinary() bool
	AllowsMixed() bool
	AllowsZone() bool
	AllowsEmptyZone() bool
	AllowsBase85() bool
}

type ipv4AddressStringParams struct {
	addressStringFormatParams
	binary, inetAtonHex, inetAtonOctal, inetAtonLeadingZeros,
	inetAtonJoinedSegments, inetAtonSingleSegmentMask, inetAtonExtraneousDigits bool
}

func (p *ipv4AddressStringParams) AllowsBinary() bool                   { return p.binary }
func (p *ipv4AddressStringParams) AllowsInetAtonHex() bool               { return p.inetAtonHex }
func (p *ipv4AddressStringParams) AllowsInetAtonOctal() bool             { return p.inetAtonOctal }
func (p *ipv4AddressStringParams) AllowsInetAtonLeadingZeros() bool      { return p.inetAtonLeadingZeros }
func (p *ipv4AddressStringParams) AllowsInetAtonJoinedSegments() bool    { return p.inetAtonJoinedSegments }
func (p *ipv4AddressStringParams) AllowsInetAtonSingleSegmentMask() bool { return p.inetAtonSingleSegmentMask }
func (p *ipv4AddressStringParams) AllowsInetAtonExtraneousDigits() bool  { return p.inetAtonExtraneousDigits }

type ipv6AddressStringParams struct {
	addressStringFormatParams
	binary, mixed, zone, emptyZone, base85 bool
}

func (p *ipv6AddressStringParams) AllowsBinary() bool    { return p.binary }
func (p *ipv6AddressStringParams) AllowsMixed() bool     { return p.mixed }
func (p *ipv6AddressStringParams) AllowsZone() bool      { return p.zone }
func (p *ipv6AddressStringParams) AllowsEmptyZone() bool { return p.emptyZone }
func (p *ipv6AddressStringParams) AllowsBase85() bool    { return p.base85 }

type ipAddressStringParams struct {
	empty, singleSegment, all, prefix, mask, ipv4, ipv6,
	prefixesBeyondAddressSize, prefixLengthLeadingZeros bool
	ipv4Params ipv4AddressStringParams
	ipv6Params ipv6AddressStringParams
}

func (p *ipAddressStringParams) AllowsEmpty() bool                     { return p.empty }
func (p *ipAddressStringParams) AllowsSingleSegment() bool             { return p.singleSegment }
func (p *ipAddressStringParams) AllowsAll() bool                       { return p.all }
func (p *ipAddressStringParams) AllowsPrefix() bool                    { return p.prefix }
func (p *ipAddressStringParams) AllowsMask() bool                      { return p.mask }
func (p *ipAddressStringParams) AllowsIPv4() bool                      { return p.ipv4 }
func (p *ipAddressStringParams) AllowsIPv6() bool                      { return p.ipv6 }
func (p *ipAddressStringParams) AllowsPrefixesBeyondAddressSize() bool { return p.prefixesBeyondAddressSize }
func (p *ipAddressStringParams) AllowsPrefixLengthLeadingZeros() bool  { return p.prefixLengthLeadingZeros }
func (p *ipAddressStringParams) GetIPv4Params() IPv4AddressStringParams { return &p.ipv4Params }
func (p *ipAddressStringParams) GetIPv6Params() IPv6AddressStringParams { return &p.ipv6Params }

var (
	_ IPAddressStringParams   = &ipAddressStringParams{}
	_ IPv4AddressStringParams = &ipv4AddressStringParams{}
	_ IPv6AddressStringParams = &ipv6AddressStringParams{}
)

// IPAddressStringParamsBuilder builds an IPAddressStringParams, defaulting
// to the permissive configuration set by NewIPAddressStringParamsBuilder,
// which is how the parser is used when no explicit configuration is given.
type IPAddressStringParamsBuilder struct {
	params     ipAddressStringParams
	ipv4Format AddressStringFormatParamsBuilder
	ipv6Format AddressStringFormatParamsBuilder
}

// NewIPAddressStringParamsBuilder returns a builder that accepts empty and
// "*" strings, single-segment addresses, prefix and mask suffixes, both
// families, the inet_aton hex, octal, leading-zero, joined-segment and
// single-segment-mask forms, and IPv6 mixed and zone forms. Prefix lengths
// beyond the address size, leading zeros in prefix lengths and the
// inet_aton extraneous-digits option are left off.
func NewIPAddressStringParamsBuilder() *IPAddressStringParamsBuilder {
	b := &IPAddressStringParamsBuilder{}
	b.params.empty = true
	b.params.singleSegment = true
	b.params.all = true
	b.params.prefix = true
	b.params.mask = true
	b.params.ipv4 = true
	b.params.ipv6 = true
	b.params.ipv4Params = ipv4AddressStringParams{
		addressStringFormatParams: defaultFormatParams(),
		inetAtonHex:                true,
		inetAtonOctal:              true,
		inetAtonLeadingZeros:       true,
		inetAtonJoinedSegments:     true,
		inetAtonSingleSegmentMask:  true,
	}
	b.params.ipv6Params = ipv6AddressStringParams{
		addressStringFormatParams: defaultFormatParams(),
		mixed:                      true,
		zone:                       true,
		emptyZone:                  true,
	}
	return b
}

func defaultFormatParams() addressStringFormatParams {
	return addressStringFormatParams{
		wildcardedSeparator: true,
		leadingZeros:        true,
		rangeParams:         NewRangeParams(AllowAll),
	}
}

func (b *IPAddressStringParamsBuilder) AllowEmpty(allow bool) *IPAddressStringParamsBuilder {
	b.params.empty = allow
	return b
}
func (b *IPAddressStringParamsBuilder) AllowSingleSegment(allow bool) *IPAddressStringParamsBuilder {
	b.params.singleSegment = allow
	return b
}
func (b *IPAddressStringParamsBuilder) AllowAll(allow bool) *IPAddressStringParamsBuilder {
	b.params.all = allow
	return b
}
func (b *IPAddressStringParamsBuilder) AllowPrefix(allow bool) *IPAddressStringParamsBuilder {
	b.params.prefix = allow
	return b
}
func (b *IPAddressStringParamsBuilder) AllowMask(allow bool) *IPAddressStringParamsBuilder {
	b.params.mask = allow
	return b
}
func (b *IPAddressStringParamsBuilder) AllowIPv4(allow bool) *IPAddressStringParamsBuilder {
	b.params.ipv4 = allow
	return b
}
func (b *IPAddressStringParamsBuilder) AllowIPv6(allow bool) *IPAddressStringParamsBuilder {
	b.params.ipv6 = allow
	return b
}
func (b *IPAddressStringParamsBuilder) AllowPrefixesBeyondAddressSize(allow bool) *IPAddressStringParamsBuilder {
	b.params.prefixesBeyondAddressSize = allow
	return b
}
func (b *IPAddressStringParamsBuilder) AllowPrefixLengthLeadingZeros(allow bool) *IPAddressStringParamsBuilder {
	b.params.prefixLengthLeadingZeros = allow
	return b
}

// SetIPv4Params replaces the IPv4-specific format parameters wholesale.
func (b *IPAddressStringParamsBuilder) SetIPv4Params(p IPv4AddressStringParams) *IPAddressStringParamsBuilder {
	if concrete, ok := p.(*ipv4AddressStringParams); ok {
		b.params.ipv4Params = *concrete
	}
	return b
}

// SetIPv6Params replaces the IPv6-specific format parameters wholesale.
func (b *IPAddressStringParamsBuilder) SetIPv6Params(p IPv6AddressStringParams) *IPAddressStringParamsBuilder {
	if concrete, ok := p.(*ipv6AddressStringParams); ok {
		b.params.ipv6Params = *concrete
	}
	return b
}

// ToParams finalizes the builder into an immutable IPAddressStringParams.
func (b *IPAddressStringParamsBuilder) ToParams() IPAddressStringParams {
	p := b.params
	return &p
}

// AddressStringFormatParamsBuilder builds the per-version format
// parameters shared by IPv4/IPv6 (leading zeros, wildcarded separator,
// range options).
type AddressStringFormatParamsBuilder struct {
	params addressStringFormatParams
}

func (b *AddressStringFormatParamsBuilder) AllowWildcardedSeparator(allow bool) *AddressStringFormatParamsBuilder {
	b.params.wildcardedSeparator = allow
	return b
}
func (b *AddressStringFormatParamsBuilder) AllowLeadingZeros(allow bool) *AddressStringFormatParamsBuilder {
	b.params.leadingZeros = allow
	return b
}
func (b *AddressStringFormatParamsBuilder) AllowUnlimitedLeadingZeros(allow bool) *AddressStringFormatParamsBuilder {
	b.params.unlimitedLeadingZeros = allow
	return b
}
func (b *AddressStringFormatParamsBuilder) SetRangeParams(r RangeParams) *AddressStringFormatParamsBuilder {
	b.params.rangeParams = r
	return b
}
