package goip

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestAllocatorBestFitExample(t *testing.T) {
	pool, err := NewIPAddressString("192.168.10.0/24").ToAddress()
	require.NoError(t, err)

	allocator := NewPrefixBlockAllocator(IPv4, 2)
	allocator.AddAvailable(pool)

	blocks := allocator.AllocateSizes([]int{50, 30, 20, 2, 2, 2})
	require.Len(t, blocks, 6)

	got := make([]string, len(blocks))
	for i, b := range blocks {
		got[i] = b.String()
	}
	require.Equal(t, []string{
		"192.168.10.0/26",
		"192.168.10.64/27",
		"192.168.10.96/27",
		"192.168.10.128/30",
		"192.168.10.132/30",
		"192.168.10.136/30",
	}, got)
}

func TestAllocatorExhaustedPoolReturnsShorterSlice(t *testing.T) {
	pool, err := NewIPAddressString("10.0.0.0/30").ToAddress()
	require.NoError(t, err)

	allocator := NewPrefixBlockAllocator(IPv4, 0)
	allocator.AddAvailable(pool)

	blocks := allocator.AllocateSizes([]int{2, 2, 2})
	require.Less(t, len(blocks), 3)
}

func TestAllocatorFreeCoalescesSiblings(t *testing.T) {
	pool, err := NewIPAddressString("10.0.0.0/24").ToAddress()
	require.NoError(t, err)

	allocator := NewPrefixBlockAllocator(IPv4, 0)
	allocator.AddAvailable(pool)

	blocks := allocator.AllocatePrefixLens([]BitCount{25, 25})
	require.Len(t, blocks, 2)

	allocator.Free(blocks[0])
	allocator.Free(blocks[1])

	available := allocator.GetAvailable()
	require.Len(t, available, 1)
	require.Equal(t, "10.0.0.0/24", available[0].String())
}
