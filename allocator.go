package goip

import "sort"

// PrefixBlockAllocator assigns variably sized sub-blocks out of a pool of
// CIDR blocks using a best-fit-by-power-of-two policy. Each allocation may
// split a pool block into smaller blocks on demand; each free recursively
// coalesces a returned block with its sibling when present.
//
// A zero-value PrefixBlockAllocator has no reserved overhead, an empty pool
// and no address family, so sizes are computed against the IPv6 bit count;
// add blocks with AddAvailable before allocating.
type PrefixBlockAllocator struct {
	version       IPVersion
	reservedCount int
	blocks        []*IPAddress // each a prefix block, sorted by prefix length ascending (largest block first)
}

// NewPrefixBlockAllocator creates an allocator for the given address family
// with the given per-allocation reserved overhead (e.g. network/broadcast
// addresses consumed by the subnet itself).
func NewPrefixBlockAllocator(version IPVersion, reservedCount int) *PrefixBlockAllocator {
	return &PrefixBlockAllocator{version: version, reservedCount: reservedCount}
}

// AddAvailable adds a block to the pool of blocks available for allocation.
func (a *PrefixBlockAllocator) AddAvailable(block *IPAddress) {
	a.blocks = append(a.blocks, block)
	a.sortBlocks()
}

func (a *PrefixBlockAllocator) sortBlocks() {
	sort.Slice(a.blocks, func(i, j int) bool {
		pi := a.blocks[i].GetNetworkPrefixLen()
		pj := a.blocks[j].GetNetworkPrefixLen()
		return prefixLenOrZero(pi) < prefixLenOrZero(pj)
	})
}

func prefixLenOrZero(p PrefixLen) BitCount {
	if p == nil {
		return 0
	}
	return p.Len()
}

// bitCountForVersion returns the address bit width for the allocator's family.
func (a *PrefixBlockAllocator) bitCountForVersion() BitCount {
	if a.version.IsIPv4() {
		return IPv4BitCount
	}
	return IPv6BitCount
}

// prefixForSize returns the smallest prefix length p such that
// 2^(bitCount - p) - reservedCount >= size.
func (a *PrefixBlockAllocator) prefixForSize(size int) BitCount {
	bitCount := a.bitCountForVersion()
	for p := bitCount; p >= 0; p-- {
		capacity := (int64(1) << uint(bitCount-p)) - int64(a.reservedCount)
		if capacity >= int64(size) {
			return p
		}
	}
	return 0
}

// AllocateSizes serves each requested size greedily, in input order,
// pulling the best-fitting (smallest sufficient) block from the pool and
// splitting as needed. If the pool is exhausted partway through, the
// returned slice is shorter than sizes.
func (a *PrefixBlockAllocator) AllocateSizes(sizes []int) []*IPAddress {
	result := make([]*IPAddress, 0, len(sizes))
	for _, size := range sizes {
		p := a.prefixForSize(size)
		block := a.takeBlockAtMost(p)
		if block == nil {
			break
		}
		result = append(result, block)
	}
	return result
}

// AllocatePrefixLens serves each requested exact prefix length, ignoring
// reserved count.
func (a *PrefixBlockAllocator) AllocatePrefixLens(prefixLens []BitCount) []*IPAddress {
	result := make([]*IPAddress, 0, len(prefixLens))
	for _, p := range prefixLens {
		block := a.takeBlockAtMost(p)
		if block == nil {
			break
		}
		result = append(result, block)
	}
	return result
}

// takeBlockAtMost removes and returns a block of prefix length p from the
// pool, best-fit: among pool blocks with prefix length <= p, it picks the
// one with the largest prefix length (the smallest block still sufficient),
// splitting it down to p.
func (a *PrefixBlockAllocator) takeBlockAtMost(p BitCount) *IPAddress {
	best := -1
	bestPrefix := BitCount(-1)
	for i, block := range a.blocks {
		bp := prefixLenOrZero(block.GetNetworkPrefixLen())
		if bp > p {
			continue
		}
		if bp > bestPrefix {
			best = i
			bestPrefix = bp
		}
	}
	if best < 0 {
		return nil
	}
	block := a.blocks[best]
	a.blocks = append(a.blocks[:best:best], a.blocks[best+1:]...)
	bp := bestPrefix
	for bp < p {
		lower, upper := splitBlock(block)
		a.blocks = append(a.blocks, upper)
		block = lower
		bp++
	}
	a.sortBlocks()
	return block
}

// splitBlock splits a prefix block into its two half-size sibling blocks.
func splitBlock(block *IPAddress) (lower, upper *IPAddress) {
	p := prefixLenOrZero(block.GetNetworkPrefixLen())
	newP := p + 1
	lower = (&IPAddress{section: block.section.GetLowerSection(), zone: block.zone}).ToPrefixBlock(newP)
	upperSection, _ := lower.section.Increment(1 << uint(block.GetSection().GetBitCount()-newP))
	upper = (&IPAddress{section: upperSection, zone: block.zone}).ToPrefixBlock(newP)
	return lower, upper
}

// Free returns a block to the pool, coalescing it with its sibling
// recursively if the sibling is also present.
func (a *PrefixBlockAllocator) Free(block *IPAddress) {
	for {
		sibling, idx := a.findSibling(block)
		if sibling == nil {
			break
		}
		a.blocks = append(a.blocks[:idx:idx], a.blocks[idx+1:]...)
		p := prefixLenOrZero(block.GetNetworkPrefixLen())
		block = block.ToPrefixBlock(p - 1)
	}
	a.blocks = append(a.blocks, block)
	a.sortBlocks()
}

// findSibling locates the other half of block's would-be parent prefix
// block in the pool, if present.
func (a *PrefixBlockAllocator) findSibling(block *IPAddress) (*IPAddress, int) {
	p := prefixLenOrZero(block.GetNetworkPrefixLen())
	if p == 0 {
		return nil, -1
	}
	parent := block.ToPrefixBlock(p - 1)
	parentLower := parent.section.GetLowerSection()
	blockLower := block.section.GetLowerSection()
	siblingIsLower := !blockLower.Equal(parentLower)
	for i, b := range a.blocks {
		bp := prefixLenOrZero(b.GetNetworkPrefixLen())
		if bp != p || !parent.section.Contains(b.section) {
			continue
		}
		bLower := b.section.GetLowerSection()
		if siblingIsLower == bLower.Equal(parentLower) {
			return b, i
		}
	}
	return nil, -1
}

// GetAvailable returns a copy of the current pool, ordered by prefix length
// (largest blocks first); blocks of equal prefix length are in no defined
// order. Blocks added with AddAvailable are not merged with each other; only
// Free merges a returned block with its sibling.
func (a *PrefixBlockAllocator) GetAvailable() []*IPAddress {
	out := make([]*IPAddress, len(a.blocks))
	copy(out, a.blocks)
	return out
}
