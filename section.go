package goip

import (
	"github.com/LucasZ876/IPAddress-sub000/address_error"
)

// Section is an ordered sequence of Segment values sharing a bit size,
// optionally carrying a network prefix length that designates a boundary
// between network bits and host bits. Sections back both whole addresses
// and the network/host sub-sections split from them.
type Section struct {
	version  IPVersion
	segments []*Segment
	prefLen  PrefixLen
}

// newSection builds a section from already-validated segments.
func newSection(version IPVersion, segments []*Segment, prefLen PrefixLen) *Section {
	return &Section{version: version, segments: segments, prefLen: prefLen}
}

// GetIPVersion returns the IP version of this section.
func (sec *Section) GetIPVersion() IPVersion {
	return sec.version
}

// GetSegmentCount returns the number of segments in the section.
func (sec *Section) GetSegmentCount() int {
	return len(sec.segments)
}

// GetSegment returns the segment at the given index.
func (sec *Section) GetSegment(index int) *Segment {
	return sec.segments[index]
}

// GetBitsPerSegment returns the bit width of each segment (8 for IPv4, 16 for IPv6).
func (sec *Section) GetBitsPerSegment() BitCount {
	if len(sec.segments) == 0 {
		return 0
	}
	return sec.segments[0].GetBitCount()
}

// GetBitCount returns the total number of bits across all segments.
func (sec *Section) GetBitCount() BitCount {
	return sec.GetBitsPerSegment() * len(sec.segments)
}

// GetByteCount returns the total number of bytes across all segments.
func (sec *Section) GetByteCount() int {
	return sec.GetBitCount() / 8
}

// IsMultiple returns whether any segment represents more than one value.
func (sec *Section) IsMultiple() bool {
	for _, s := range sec.segments {
		if s.IsMultiple() {
			return true
		}
	}
	return false
}

// IsPrefixed returns whether the section carries a network prefix length.
func (sec *Section) IsPrefixed() bool {
	return sec.prefLen != nil
}

// GetNetworkPrefixLen returns the section's network prefix length, or nil if none.
func (sec *Section) GetNetworkPrefixLen() PrefixLen {
	return sec.prefLen
}

// GetValueCount returns the total number of distinct addresses represented,
// the product of each segment's value count.
func (sec *Section) GetValueCount() SegIntCount {
	count := SegIntCount(1)
	for _, s := range sec.segments {
		count *= s.GetValueCount()
	}
	return count
}

func cloneSegments(segs []*Segment) []*Segment {
	out := make([]*Segment, len(segs))
	copy(out, segs)
	return out
}

// withPrefixLen returns a copy of the section with the given prefix length,
// assigning the matching segment-relative prefix length to each segment.
func (sec *Section) withPrefixLen(prefLen PrefixLen) *Section {
	segs := cloneSegments(sec.segments)
	applySegmentPrefixes(segs, sec.GetBitsPerSegment(), prefLen)
	return newSection(sec.version, segs, prefLen)
}

func applySegmentPrefixes(segs []*Segment, bitsPerSeg BitCount, prefLen PrefixLen) {
	for i, seg := range segs {
		segPrefix := segmentPrefixLength(bitsPerSeg, prefLen, i)
		if segPrefix != seg.GetSegmentPrefixLen() {
			segs[i] = &Segment{lower: seg.lower, upper: seg.upper, bitCount: seg.bitCount, prefLen: segPrefix}
		}
	}
}

// segmentPrefixLength computes the segment-relative portion of an overall
// prefix length falling at segment index segIndex, or nil if the prefix
// falls entirely after this segment (no constraint) or there is no prefix.
func segmentPrefixLength(bitsPerSeg BitCount, prefLen PrefixLen, segIndex int) PrefixLen {
	if prefLen == nil {
		return nil
	}
	total := prefLen.Len()
	segStart := segIndex * bitsPerSeg
	if total <= segStart {
		return cacheBitCount(0)
	}
	rem := total - segStart
	if rem >= bitsPerSeg {
		return nil
	}
	return cacheBitCount(rem)
}

// GetNetworkSection returns the leading portion of the section up to
// networkPrefixLength bits. When withPrefixLength is true the result keeps
// the prefix length attached.
func (sec *Section) GetNetworkSection(networkPrefixLength BitCount, withPrefixLength bool) *Section {
	bitsPerSeg := sec.GetBitsPerSegment()
	segCount := (networkPrefixLength + bitsPerSeg - 1) / bitsPerSeg
	if segCount > len(sec.segments) {
		segCount = len(sec.segments)
	}
	segs := cloneSegments(sec.segments[:segCount])
	var pl PrefixLen
	if withPrefixLength {
		pl = cacheBitCount(networkPrefixLength)
		applySegmentPrefixes(segs, bitsPerSeg, pl)
	}
	// mask the last included segment down to the network bits
	if segCount > 0 {
		last := segs[segCount-1]
		segStart := (segCount - 1) * bitsPerSeg
		hostBitsInLast := bitsPerSeg - (networkPrefixLength - segStart)
		if hostBitsInLast > 0 {
			mask := blockMaskForPrefix(bitsPerSeg, bitsPerSeg-hostBitsInLast)
			segs[segCount-1], _ = createRangeSegment(bitsPerSeg, last.lower&mask, last.upper&mask, last.prefLen)
		}
	}
	return newSection(sec.version, segs, pl)
}

// GetHostSection returns the trailing portion of the section starting at
// networkPrefixLength bits, with no prefix length of its own.
func (sec *Section) GetHostSection(networkPrefixLength BitCount) *Section {
	bitsPerSeg := sec.GetBitsPerSegment()
	startSeg := networkPrefixLength / bitsPerSeg
	if startSeg > len(sec.segments) {
		startSeg = len(sec.segments)
	}
	segs := cloneSegments(sec.segments[startSeg:])
	if len(segs) > 0 {
		segStart := startSeg * bitsPerSeg
		networkBitsInFirst := networkPrefixLength - segStart
		if networkBitsInFirst > 0 {
			first := segs[0]
			full := blockMaskForPrefix(bitsPerSeg, bitsPerSeg)
			hostMask := full &^ blockMaskForPrefix(bitsPerSeg, networkBitsInFirst)
			segs[0], _ = createRangeSegment(bitsPerSeg, first.lower&hostMask, first.upper&hostMask, nil)
		}
	}
	for i := range segs {
		segs[i] = &Segment{lower: segs[i].lower, upper: segs[i].upper, bitCount: segs[i].bitCount, prefLen: nil}
	}
	return newSection(sec.version, segs, nil)
}

func perSegmentOp(a, b *Section, op func(x, y *Segment) (*Segment, address_error.IncompatibleAddressError)) (*Section, address_error.IncompatibleAddressError) {
	if len(a.segments) != len(b.segments) {
		return nil, newIncompatibleAddressError("ipaddress.error.sizeMismatch", "")
	}
	segs := make([]*Segment, len(a.segments))
	for i := range a.segments {
		s, err := op(a.segments[i], b.segments[i])
		if err != nil {
			return nil, err
		}
		segs[i] = s
	}
	return newSection(a.version, segs, a.prefLen), nil
}

// Mask applies other as a bitmask across every segment. When retainPrefix is
// true and this section is prefixed, the result keeps that prefix length.
// Fails with IncompatibleAddressError if masking a multi-valued segment would
// not produce a contiguous range (see the Masker documentation in mask.go).
func (sec *Section) Mask(other *Section, retainPrefix bool) (*Section, address_error.IncompatibleAddressError) {
	result, err := perSegmentOp(sec, other, func(x, y *Segment) (*Segment, address_error.IncompatibleAddressError) {
		m := newMasker(x.lower, x.upper, y.lower)
		if !m.IsSequential() {
			return nil, newIncompatibleAddressError("ipaddress.error.maskMismatch", "")
		}
		return createRangeRetainPrefix(x, m.GetMaskedLower(), m.GetMaskedUpper())
	})
	if err != nil {
		return nil, err
	}
	if !retainPrefix {
		result = result.withPrefixLen(nil)
	}
	return result, nil
}

func createRangeRetainPrefix(orig *Segment, lower, upper SegInt) (*Segment, address_error.IncompatibleAddressError) {
	s, verr := createRangeSegment(orig.bitCount, lower, upper, orig.prefLen)
	if verr != nil {
		return nil, newIncompatibleAddressError("ipaddress.error.maskMismatch", "")
	}
	return s, nil
}

// MaskNetwork masks only the network portion (the leading networkPrefixLength
// bits), leaving host bits unaffected by other's host portion.
func (sec *Section) MaskNetwork(other *Section, networkPrefixLength BitCount) (*Section, address_error.IncompatibleAddressError) {
	networkMask := sec.toPrefixBlockMaskSection(networkPrefixLength)
	merged, err := perSegmentOp(other, networkMask, func(x, y *Segment) (*Segment, address_error.IncompatibleAddressError) {
		hostOnes := x.GetMaxValue() &^ y.lower
		return createRangeRetainPrefix(x, x.lower|hostOnes, x.upper|hostOnes)
	})
	if err != nil {
		return nil, err
	}
	return sec.Mask(merged, true)
}

// toPrefixBlockMaskSection builds a section whose segments are all-ones in
// the leading p bits and all-zero after, used as scratch for MaskNetwork.
func (sec *Section) toPrefixBlockMaskSection(p BitCount) *Section {
	bitsPerSeg := sec.GetBitsPerSegment()
	segs := make([]*Segment, len(sec.segments))
	for i := range segs {
		segStart := i * bitsPerSeg
		segPrefix := p - segStart
		if segPrefix < 0 {
			segPrefix = 0
		}
		if segPrefix > bitsPerSeg {
			segPrefix = bitsPerSeg
		}
		mask := blockMaskForPrefix(bitsPerSeg, segPrefix)
		segs[i], _ = createRangeSegment(bitsPerSeg, mask, mask, nil)
	}
	return newSection(sec.version, segs, nil)
}

// BitwiseOr ORs other into every segment of this section.
func (sec *Section) BitwiseOr(other *Section) (*Section, address_error.IncompatibleAddressError) {
	return perSegmentOp(sec, other, func(x, y *Segment) (*Segment, address_error.IncompatibleAddressError) {
		m := newOrMasker(x.lower, x.upper, y.lower)
		if !m.IsSequential() {
			return nil, newIncompatibleAddressError("ipaddress.error.maskMismatch", "")
		}
		return createRangeRetainPrefix(x, m.GetMaskedLower(), m.GetMaskedUpper())
	})
}

// BitwiseOrNetwork ORs other into only the network portion of the section.
func (sec *Section) BitwiseOrNetwork(other *Section, networkPrefixLength BitCount) (*Section, address_error.IncompatibleAddressError) {
	hostMask := sec.toPrefixBlockMaskSection(networkPrefixLength)
	restricted, err := perSegmentOp(other, hostMask, func(x, y *Segment) (*Segment, address_error.IncompatibleAddressError) {
		return createRangeRetainPrefix(x, x.lower&y.lower, x.upper&y.upper)
	})
	if err != nil {
		return nil, err
	}
	return sec.BitwiseOr(restricted)
}

// ToPrefixBlock returns the full block of addresses sharing the given
// prefix, i.e. all host bits set to their full range.
func (sec *Section) ToPrefixBlock(p BitCount) *Section {
	bitsPerSeg := sec.GetBitsPerSegment()
	segs := make([]*Segment, len(sec.segments))
	for i, seg := range sec.segments {
		segStart := i * bitsPerSeg
		segPrefix := segmentPrefixLength(bitsPerSeg, cacheBitCount(p), i)
		if segPrefix == nil && p <= segStart {
			segs[i] = seg
			continue
		}
		var sp BitCount
		if segPrefix != nil {
			sp = segPrefix.Len()
		} else {
			sp = bitsPerSeg
		}
		hostMask := blockMaskForPrefix(bitsPerSeg, bitsPerSeg) &^ blockMaskForPrefix(bitsPerSeg, sp)
		lo := seg.lower &^ hostMask
		hi := seg.upper | hostMask
		segs[i], _ = createRangeSegment(bitsPerSeg, lo, hi, segPrefix)
	}
	return newSection(sec.version, segs, cacheBitCount(p))
}

// ToZeroHost returns the section with all host bits (beyond the given
// prefix) forced to zero.
func (sec *Section) ToZeroHost(p BitCount) *Section {
	bitsPerSeg := sec.GetBitsPerSegment()
	segs := cloneSegments(sec.segments)
	for i, seg := range segs {
		segStart := i * bitsPerSeg
		if p <= segStart {
			segs[i], _ = createRangeSegment(bitsPerSeg, 0, 0, seg.prefLen)
			continue
		}
		rem := p - segStart
		if rem >= bitsPerSeg {
			continue
		}
		hostMask := blockMaskForPrefix(bitsPerSeg, bitsPerSeg) &^ blockMaskForPrefix(bitsPerSeg, rem)
		segs[i], _ = createRangeSegment(bitsPerSeg, seg.lower&^hostMask, seg.upper&^hostMask, seg.prefLen)
	}
	return newSection(sec.version, segs, sec.prefLen)
}

// ToMaxHost returns the section with all host bits (beyond the given
// prefix) forced to their maximum value.
func (sec *Section) ToMaxHost(p BitCount) *Section {
	bitsPerSeg := sec.GetBitsPerSegment()
	segs := cloneSegments(sec.segments)
	for i, seg := range segs {
		segStart := i * bitsPerSeg
		if p <= segStart {
			max := seg.GetMaxValue()
			segs[i], _ = createRangeSegment(bitsPerSeg, max, max, seg.prefLen)
			continue
		}
		rem := p - segStart
		if rem >= bitsPerSeg {
			continue
		}
		hostMask := blockMaskForPrefix(bitsPerSeg, bitsPerSeg) &^ blockMaskForPrefix(bitsPerSeg, rem)
		segs[i], _ = createRangeSegment(bitsPerSeg, seg.lower|hostMask, seg.upper|hostMask, seg.prefLen)
	}
	return newSection(sec.version, segs, sec.prefLen)
}

// Contains returns whether every address represented by other is also
// represented by this section.
func (sec *Section) Contains(other *Section) bool {
	if len(sec.segments) != len(other.segments) {
		return false
	}
	for i, s := range sec.segments {
		if !s.Contains(other.segments[i]) {
			return false
		}
	}
	return true
}

// Overlaps returns whether this section and other share at least one address.
func (sec *Section) Overlaps(other *Section) bool {
	if len(sec.segments) != len(other.segments) {
		return false
	}
	for i, s := range sec.segments {
		if _, ok := s.Intersect(other.segments[i]); !ok {
			return false
		}
	}
	return true
}

// PrefixEquals returns whether this section and other denote the same
// prefix length and agree on every bit within it.
func (sec *Section) PrefixEquals(other *Section) bool {
	if sec.prefLen == nil || other.prefLen == nil {
		return sec.prefLen == nil && other.prefLen == nil && sec.Equal(other)
	}
	if sec.prefLen.Len() != other.prefLen.Len() {
		return false
	}
	return sec.GetNetworkSection(sec.prefLen.Len(), false).Equal(other.GetNetworkSection(other.prefLen.Len(), false))
}

// PrefixContains returns whether other's network portion, to this section's
// prefix length, falls within this section's network portion.
func (sec *Section) PrefixContains(other *Section) bool {
	if sec.prefLen == nil {
		return sec.Contains(other)
	}
	p := sec.prefLen.Len()
	return sec.GetNetworkSection(p, false).Contains(other.GetNetworkSection(p, false))
}

// Equal returns whether two sections represent exactly the same set of
// addresses, segment by segment.
func (sec *Section) Equal(other *Section) bool {
	if len(sec.segments) != len(other.segments) {
		return false
	}
	for i, s := range sec.segments {
		o := other.segments[i]
		if s.lower != o.lower || s.upper != o.upper {
			return false
		}
	}
	return true
}

// Subtract returns the set difference sec minus other, expressed as the
// smallest list of non-overlapping sections, per spec's block decomposition.
func (sec *Section) Subtract(other *Section) []*Section {
	if !sec.Overlaps(other) {
		return []*Section{sec}
	}
	if other.Contains(sec) {
		return nil
	}
	var result []*Section
	segs := cloneSegments(sec.segments)
	for i := range segs {
		os := other.segments[i]
		ss := segs[i]
		if ss.lower >= os.lower && ss.upper <= os.upper {
			continue
		}
		if ss.upper < os.lower || ss.lower > os.upper {
			result = append(result, sec)
			return result
		}
		if ss.lower < os.lower {
			left := cloneSegments(segs)
			left[i], _ = createRangeSegment(ss.bitCount, ss.lower, os.lower-1, nil)
			result = append(result, newSection(sec.version, left, nil))
		}
		if ss.upper > os.upper {
			right := cloneSegments(segs)
			right[i], _ = createRangeSegment(ss.bitCount, os.upper+1, ss.upper, nil)
			result = append(result, newSection(sec.version, right, nil))
		}
		segs[i], _ = createRangeSegment(ss.bitCount, maxSegInt(ss.lower, os.lower), minSegInt(ss.upper, os.upper), nil)
	}
	return result
}

func maxSegInt(a, b SegInt) SegInt {
	if a > b {
		return a
	}
	return b
}

func minSegInt(a, b SegInt) SegInt {
	if a < b {
		return a
	}
	return b
}

// SpanningPrefixBlocks returns the minimal list of prefix blocks, sorted and
// non-overlapping, whose union is exactly the sequential range [lower, upper].
func SpanningPrefixBlocks(lower, upper *Section) []*Section {
	return spanWithPrefixBlocks(lower, upper)
}

// SpanningSequentialBlocks returns the same prefix blocks as
// SpanningPrefixBlocks. Each block is sequential, but blocks that together
// form one larger sequential section are not joined, so the list is not the
// shortest list of sequential sections covering [lower, upper].
func SpanningSequentialBlocks(lower, upper *Section) []*Section {
	return spanWithPrefixBlocks(lower, upper)
}

// MergeToPrefixBlocks merges a set of sections into the minimal equivalent
// set of prefix blocks.
func MergeToPrefixBlocks(sections ...*Section) []*Section {
	if len(sections) == 0 {
		return nil
	}
	var result []*Section
	for _, s := range sections {
		lower := s.GetLowerSection()
		upper := s.GetUpperSection()
		result = append(result, spanWithPrefixBlocks(lower, upper)...)
	}
	return dedupeSections(result)
}

func dedupeSections(in []*Section) []*Section {
	var out []*Section
	for _, s := range in {
		dup := false
		for _, o := range out {
			if s.Equal(o) {
				dup = true
				break
			}
		}
		if !dup {
			out = append(out, s)
		}
	}
	return out
}

// GetLowerSection returns the single-valued section of this section's lowest address.
func (sec *Section) GetLowerSection() *Section {
	segs := make([]*Segment, len(sec.segments))
	for i, s := range sec.segments {
		segs[i], _ = createSegment(s.bitCount, s.lower, s.prefLen)
	}
	return newSection(sec.version, segs, sec.prefLen)
}

// GetUpperSection returns the single-valued section of this section's highest address.
func (sec *Section) GetUpperSection() *Section {
	segs := make([]*Segment, len(sec.segments))
	for i, s := range sec.segments {
		segs[i], _ = createSegment(s.bitCount, s.upper, s.prefLen)
	}
	return newSection(sec.version, segs, sec.prefLen)
}

// Bytes returns the lower value of the section as big-endian bytes.
func (sec *Section) Bytes() []byte {
	return sec.valueBytes(false)
}

// UpperBytes returns the upper value of the section as big-endian bytes.
func (sec *Section) UpperBytes() []byte {
	return sec.valueBytes(true)
}

func (sec *Section) valueBytes(upper bool) []byte {
	bitsPerSeg := sec.GetBitsPerSegment()
	bytesPerSeg := bitsPerSeg / 8
	out := make([]byte, 0, len(sec.segments)*bytesPerSeg)
	for _, s := range sec.segments {
		v := s.lower
		if upper {
			v = s.upper
		}
		for b := bytesPerSeg - 1; b >= 0; b-- {
			out = append(out, byte(v>>(uint(b)*8)))
		}
	}
	return out
}

// SectionIterator enumerates each single-valued Section represented by a
// (possibly multi-valued) Section, in lexicographic segment order.
type SectionIterator struct {
	section *Section
	iters   []*SegmentIterator
	current []*Segment
	done    bool
}

// Iterator returns a cursor over every single address this section represents.
func (sec *Section) Iterator() *SectionIterator {
	iters := make([]*SegmentIterator, len(sec.segments))
	current := make([]*Segment, len(sec.segments))
	for i, s := range sec.segments {
		iters[i] = s.Iterator()
		current[i] = iters[i].Next()
	}
	return &SectionIterator{section: sec, iters: iters, current: current, done: len(sec.segments) == 0 && false}
}

// HasNext returns whether there are more addresses to iterate.
func (it *SectionIterator) HasNext() bool {
	return !it.done
}

// Next returns the next single-valued section, advancing the cursor using
// odometer-style rollover from the least significant segment.
func (it *SectionIterator) Next() *Section {
	if it.done {
		return nil
	}
	result := make([]*Segment, len(it.current))
	copy(result, it.current)
	for i := len(it.iters) - 1; i >= 0; i-- {
		if it.iters[i].HasNext() {
			it.current[i] = it.iters[i].Next()
			break
		}
		if i == 0 {
			it.done = true
			break
		}
		it.iters[i] = it.section.segments[i].Iterator()
		it.current[i] = it.iters[i].Next()
	}
	if len(it.iters) == 0 {
		it.done = true
	}
	return newSection(it.section.version, result, it.section.prefLen)
}

// PrefixIterator enumerates the single-valued sections of
// GetNetworkSection(p, true): the leading segments holding the first p bits,
// each carrying prefix length p. Host segments are not included, so the
// results are network sections rather than full-width prefix blocks.
func (sec *Section) PrefixIterator(p BitCount) *SectionIterator {
	return sec.ToNetworkSegmentIterator(p)
}

// ToNetworkSegmentIterator builds the iterator backing PrefixIterator: it
// walks the value combinations of the network section up to p bits.
func (sec *Section) ToNetworkSegmentIterator(p BitCount) *SectionIterator {
	network := sec.GetNetworkSection(p, true)
	return network.Iterator()
}

// Increment returns the section whose value is n more (or, if negative,
// n fewer) than this section's lower value, preserving prefix length.
// Returns an AddressValueError if the result would fall outside the
// section's representable range.
func (sec *Section) Increment(n int64) (*Section, address_error.AddressValueError) {
	bitsPerSeg := sec.GetBitsPerSegment()
	segCount := len(sec.segments)
	lower := make([]int64, segCount)
	base := make([]int64, segCount)
	for i, s := range sec.segments {
		lower[i] = int64(s.lower)
		base[i] = int64(s.GetMaxValue()) + 1
	}
	carry := n
	result := make([]int64, segCount)
	for i := segCount - 1; i >= 0; i-- {
		v := lower[i] + carry
		b := base[i]
		mod := v % b
		div := v / b
		if mod < 0 {
			mod += b
			div--
		}
		result[i] = mod
		carry = div
	}
	if carry != 0 {
		return nil, newAddressValueError("ipaddress.error.address.out.of.range", n)
	}
	segs := make([]*Segment, segCount)
	for i, s := range sec.segments {
		segs[i], _ = createRangeSegment(bitsPerSeg, SegInt(result[i]), SegInt(result[i]), s.prefLen)
	}
	return newSection(sec.version, segs, sec.prefLen), nil
}

