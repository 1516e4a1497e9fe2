package goip

import "math/bits"

// coverWithPrefixBlock finds the smallest single prefix block section that
// contains both lower and upper (which must be single-valued sections of
// equal segment layout), by locating the highest segment bit at which the
// two differ.
func coverWithPrefixBlock(lower, upper *Section) *Section {
	var currentSegment int
	var previousSegmentBits BitCount
	segCount := lower.GetSegmentCount()
	bitsPerSegment := lower.GetBitsPerSegment()
	for ; currentSegment < segCount; currentSegment++ {
		lowerValue := lower.GetSegment(currentSegment).GetSegmentValue()
		upperValue := upper.GetSegment(currentSegment).GetSegmentValue()
		differing := lowerValue ^ upperValue
		if differing != 0 {
			highestDifferingBitInRange := BitCount(bits.LeadingZeros32(differing)) - (SegIntSize - bitsPerSegment)
			differingBitPrefixLen := highestDifferingBitInRange + previousSegmentBits
			return lower.ToPrefixBlock(differingBitPrefixLen)
		}
		previousSegmentBits += bitsPerSegment
	}
	// all bits match, it's just a single address
	return lower.ToPrefixBlock(lower.GetBitCount())
}

// spanWithPrefixBlocks decomposes the sequential range [lower, upper] into
// the minimal sorted list of non-overlapping prefix blocks whose union is
// exactly that range.
func spanWithPrefixBlocks(lower, upper *Section) []*Section {
	if lower.Equal(upper) {
		return []*Section{lower.ToPrefixBlock(lower.GetBitCount())}
	}
	block := coverWithPrefixBlock(lower, upper)
	blockLower := block.GetLowerSection()
	blockUpper := block.GetUpperSection()
	if blockLower.Equal(lower) && blockUpper.Equal(upper) {
		return []*Section{block}
	}
	// [lower, upper] is a strict subset of the covering block: split the
	// block at its midpoint and recurse on whichever half(es) overlap.
	p := block.GetNetworkPrefixLen().Len()
	mid, _ := blockLower.Increment(1 << uint(block.GetBitCount()-p-1))
	beforeMid, _ := mid.Increment(-1)
	var result []*Section
	if compareSections(lower, beforeMid) <= 0 {
		hi := upper
		if compareSections(beforeMid, upper) < 0 {
			hi = beforeMid
		}
		result = append(result, spanWithPrefixBlocks(lower, hi)...)
	}
	if compareSections(upper, mid) >= 0 {
		lo := lower
		if compareSections(mid, lower) > 0 {
			lo = mid
		}
		result = append(result, spanWithPrefixBlocks(lo, upper)...)
	}
	return result
}

// compareSections orders two equal-layout single-valued sections by value,
// most significant segment first.
func compareSections(a, b *Section) int {
	for i := range a.segments {
		av, bv := a.segments[i].lower, b.segments[i].lower
		if av < bv {
			return -1
		}
		if av > bv {
			return 1
		}
	}
	return 0
}
