package goip

import (
	"math/bits"

	"github.com/LucasZ876/IPAddress-sub000/address_error"
)

// SegInt is an integer type for holding generic address segment values.
// It is large enough to hold any IPv4 (8-bit) or IPv6 (16-bit) segment value.
type SegInt = uint32

// SegIntCount is a count of distinct segment values, one more than the
// largest representable difference between two SegInt values.
type SegIntCount = uint64

// SegIntSize is the bit width of SegInt itself, used when reasoning about
// leading/trailing zero counts of segment values.
const SegIntSize = 32

// Segment is a single address atom: an 8-bit IPv4 octet or a 16-bit IPv6
// group. It may represent a single value or, for a subnet, a contiguous
// range of values [lower, upper]. It may carry its own prefix length,
// assigned when the containing Section's network prefix falls inside
// this segment.
//
// Segment values are immutable once created.
type Segment struct {
	lower, upper SegInt
	bitCount     BitCount
	prefLen      PrefixLen
}

// GetBitCount returns 8 for an IPv4 segment, 16 for an IPv6 segment.
func (seg *Segment) GetBitCount() BitCount {
	return seg.bitCount
}

// GetMaxValue returns the largest value a segment of this bit size can hold.
func (seg *Segment) GetMaxValue() SegInt {
	return ^(^SegInt(0) << uint(seg.bitCount))
}

// GetSegmentValue returns the lower bound of the segment's value range.
func (seg *Segment) GetSegmentValue() SegInt {
	return seg.lower
}

// GetUpperSegmentValue returns the upper bound of the segment's value range.
func (seg *Segment) GetUpperSegmentValue() SegInt {
	return seg.upper
}

// GetSegmentPrefixLen returns the segment-relative prefix length, or nil if none.
func (seg *Segment) GetSegmentPrefixLen() PrefixLen {
	return seg.prefLen
}

// IsMultiple returns whether the segment represents more than one value.
func (seg *Segment) IsMultiple() bool {
	return seg.lower != seg.upper
}

// GetValueCount returns the number of distinct values this segment represents.
func (seg *Segment) GetValueCount() SegIntCount {
	return uint64(seg.upper-seg.lower) + 1
}

// createSegment constructs a single-valued segment, optionally prefixed.
func createSegment(bitCount BitCount, value SegInt, prefLen PrefixLen) (*Segment, address_error.AddressValueError) {
	return createRangeSegment(bitCount, value, value, prefLen)
}

// createRangeSegment constructs a segment representing [lower, upper], optionally prefixed.
func createRangeSegment(bitCount BitCount, lower, upper SegInt, prefLen PrefixLen) (*Segment, address_error.AddressValueError) {
	maxVal := ^(^SegInt(0) << uint(bitCount))
	if lower > maxVal || upper > maxVal {
		return nil, newAddressValueError("ipaddress.error.exceeds.size", int64(upper))
	}
	if lower > upper {
		return nil, newAddressValueError("ipaddress.error.address.lower.exceeds.upper", int64(lower))
	}
	if prefLen != nil {
		p := prefLen.Len()
		if p < 0 || p > bitCount {
			return nil, newAddressValueError("ipaddress.error.prefixSize", int64(p))
		}
	}
	return &Segment{lower: lower, upper: upper, bitCount: bitCount, prefLen: prefLen}, nil
}

// Contains returns whether this segment's range contains other's range.
func (seg *Segment) Contains(other *Segment) bool {
	return seg.lower <= other.lower && other.upper <= seg.upper
}

// Intersect returns the intersection of the two segments' ranges, and
// whether the ranges overlapped at all.
func (seg *Segment) Intersect(other *Segment) (*Segment, bool) {
	lo := seg.lower
	if other.lower > lo {
		lo = other.lower
	}
	hi := seg.upper
	if other.upper < hi {
		hi = other.upper
	}
	if lo > hi {
		return nil, false
	}
	result, _ := createRangeSegment(seg.bitCount, lo, hi, nil)
	return result, true
}

// blockMaskForPrefix returns the network mask (high p bits set) for p bits
// within the segment's bit width.
func blockMaskForPrefix(bitCount, p BitCount) SegInt {
	if p <= 0 {
		return 0
	}
	if p >= bitCount {
		return ^(^SegInt(0) << uint(bitCount))
	}
	full := ^(^SegInt(0) << uint(bitCount))
	return full & (^SegInt(0) << uint(bitCount-p))
}

// IsPrefixBlock returns whether this segment's range is exactly the full
// block of values sharing the segment-relative prefix p.
func (seg *Segment) IsPrefixBlock(p BitCount) bool {
	if p <= 0 {
		return seg.lower == 0 && seg.upper == seg.GetMaxValue()
	}
	if p >= seg.bitCount {
		return seg.lower == seg.upper
	}
	hostBits := BitCount(seg.bitCount) - p
	hostMask := ^(^SegInt(0) << uint(hostBits))
	return seg.lower&hostMask == 0 && seg.upper&hostMask == hostMask && (seg.lower&^hostMask) == (seg.upper&^hostMask)
}

// IsSinglePrefixBlock is like IsPrefixBlock but additionally requires that
// this is the one block for that prefix, which for a single segment is the
// same condition (a segment always denotes a single contiguous block).
func (seg *Segment) IsSinglePrefixBlock(p BitCount) bool {
	return seg.IsPrefixBlock(p)
}

// TestBit returns whether the bit at the given index (0 = least significant)
// is set in the segment's lower value.
func (seg *Segment) TestBit(n BitCount) bool {
	if n < 0 || n >= seg.bitCount {
		panic("invalid bit index")
	}
	return seg.lower&(1<<uint(n)) != 0
}

// IsOneBit returns whether the bit at the given index (0 = most significant)
// is set in the segment's lower value.
func (seg *Segment) IsOneBit(segmentBitIndex BitCount) bool {
	if segmentBitIndex < 0 || segmentBitIndex >= seg.bitCount {
		panic("invalid bit index")
	}
	return seg.lower&(1<<uint(seg.bitCount-(segmentBitIndex+1))) != 0
}

// ReverseBits reverses the bits of a single-valued segment. perByte reverses
// within each 8-bit byte rather than across the whole segment.
// Fails with IncompatibleAddressError on a multi-valued segment unless it
// spans the full range, in which case the reversal is the segment itself.
func (seg *Segment) ReverseBits(perByte bool) (*Segment, address_error.IncompatibleAddressError) {
	if seg.IsMultiple() {
		if seg.lower == 0 && seg.upper == seg.GetMaxValue() {
			return seg, nil
		}
		return nil, newIncompatibleAddressError("ipaddress.error.reverseRange", "")
	}
	reversed := reverseSegBits(seg.lower, seg.bitCount, perByte)
	result, _ := createSegment(seg.bitCount, reversed, nil)
	return result, nil
}

func reverseSegBits(value SegInt, bitCount BitCount, perByte bool) SegInt {
	if !perByte {
		return SegInt(bits.Reverse32(uint32(value) << uint(32-bitCount)))
	}
	// reverse within each byte, keep byte order
	var result SegInt
	bytes := bitCount / 8
	for i := 0; i < bytes; i++ {
		shift := uint(i * 8)
		b := byte(value >> shift)
		rb := bits.Reverse8(b)
		result |= SegInt(rb) << shift
	}
	return result
}

// SegmentIterator enumerates each single value in a segment's range as its
// own single-valued Segment.
type SegmentIterator struct {
	cur, upper SegInt
	bitCount   BitCount
	done       bool
}

// Iterator returns a restartable cursor over every single value in the
// segment's range, low to high.
func (seg *Segment) Iterator() *SegmentIterator {
	return &SegmentIterator{cur: seg.lower, upper: seg.upper, bitCount: seg.bitCount}
}

// HasNext returns whether there are more values to iterate.
func (it *SegmentIterator) HasNext() bool {
	return !it.done
}

// Next returns the next single-valued segment, advancing the cursor.
func (it *SegmentIterator) Next() *Segment {
	if it.done {
		return nil
	}
	v := it.cur
	if v == it.upper {
		it.done = true
	} else {
		it.cur++
	}
	result, _ := createSegment(it.bitCount, v, nil)
	return result
}
