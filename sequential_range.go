package goip

// SequentialRange is an ordered pair of single-valued addresses of the same
// family, denoting every address from lower to upper inclusive. Unlike a
// prefixed address, a range carries no prefix and may cross prefix
// boundaries freely.
type SequentialRange struct {
	lower, upper *IPAddress
}

// NewSequentialRange builds the range [lower, upper]. The two addresses
// must share a family; lower must not numerically exceed upper.
func NewSequentialRange(lower, upper *IPAddress) *SequentialRange {
	return &SequentialRange{lower: lower, upper: upper}
}

// GetLower returns the range's lower bound.
func (r *SequentialRange) GetLower() *IPAddress {
	return r.lower
}

// GetUpper returns the range's upper bound.
func (r *SequentialRange) GetUpper() *IPAddress {
	return r.upper
}

// Contains reports whether other's bounds fall within this range.
func (r *SequentialRange) Contains(other *SequentialRange) bool {
	return compareSections(r.lower.section, other.lower.section) <= 0 &&
		compareSections(other.upper.section, r.upper.section) <= 0
}

// touches reports whether r and other overlap or are adjacent (no gap
// between them), a prerequisite for Join.
func (r *SequentialRange) touches(other *SequentialRange) bool {
	if compareSections(r.upper.section, other.lower.section) >= 0 &&
		compareSections(other.upper.section, r.lower.section) >= 0 {
		return true
	}
	// adjacency: r.upper + 1 == other.lower, or vice versa
	if next, err := r.upper.section.Increment(1); err == nil && next.Equal(other.lower.section) {
		return true
	}
	if next, err := other.upper.section.Increment(1); err == nil && next.Equal(r.lower.section) {
		return true
	}
	return false
}

// Join returns the union of r and other if they touch or overlap, else nil.
func (r *SequentialRange) Join(other *SequentialRange) *SequentialRange {
	if !r.touches(other) {
		return nil
	}
	return r.Extend(other)
}

// Extend returns the smallest range containing both r and other.
func (r *SequentialRange) Extend(other *SequentialRange) *SequentialRange {
	lo := r.lower
	if compareSections(other.lower.section, lo.section) < 0 {
		lo = other.lower
	}
	hi := r.upper
	if compareSections(other.upper.section, hi.section) > 0 {
		hi = other.upper
	}
	return NewSequentialRange(lo, hi)
}

// Intersect returns the overlap between r and other, or nil if disjoint.
func (r *SequentialRange) Intersect(other *SequentialRange) *SequentialRange {
	lo := r.lower
	if compareSections(other.lower.section, lo.section) > 0 {
		lo = other.lower
	}
	hi := r.upper
	if compareSections(other.upper.section, hi.section) < 0 {
		hi = other.upper
	}
	if compareSections(lo.section, hi.section) > 0 {
		return nil
	}
	return NewSequentialRange(lo, hi)
}

// Subtract returns r minus other as 0, 1, or 2 disjoint ranges.
func (r *SequentialRange) Subtract(other *SequentialRange) []*SequentialRange {
	overlap := r.Intersect(other)
	if overlap == nil {
		return []*SequentialRange{r}
	}
	var result []*SequentialRange
	if compareSections(r.lower.section, overlap.lower.section) < 0 {
		beforeUpper, err := overlap.lower.section.Increment(-1)
		if err == nil {
			result = append(result, NewSequentialRange(r.lower, &IPAddress{section: beforeUpper, zone: r.lower.zone}))
		}
	}
	if compareSections(r.upper.section, overlap.upper.section) > 0 {
		afterLower, err := overlap.upper.section.Increment(1)
		if err == nil {
			result = append(result, NewSequentialRange(&IPAddress{section: afterLower, zone: r.upper.zone}, r.upper))
		}
	}
	return result
}

// SpanningPrefixBlocks decomposes the range into the minimum list of CIDR
// blocks whose union is exactly [lower, upper].
func (r *SequentialRange) SpanningPrefixBlocks() []*IPAddress {
	sections := spanWithPrefixBlocks(r.lower.section, r.upper.section)
	return sectionsToAddresses(sections, r.lower.zone)
}

// SpanningSequentialBlocks returns the same prefix blocks as
// SpanningPrefixBlocks. Each is sequential, but blocks that together form
// one larger sequential section are not joined, so the list is not the
// shortest list of sequential sections covering the range.
func (r *SequentialRange) SpanningSequentialBlocks() []*IPAddress {
	return r.SpanningPrefixBlocks()
}

func sectionsToAddresses(sections []*Section, zone Zone) []*IPAddress {
	out := make([]*IPAddress, len(sections))
	for i, s := range sections {
		out[i] = &IPAddress{section: s, zone: zone}
	}
	return out
}

// Equal reports whether two ranges have identical bounds.
func (r *SequentialRange) Equal(other *SequentialRange) bool {
	return r.lower.Equal(other.lower) && r.upper.Equal(other.upper)
}
