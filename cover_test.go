package goip

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"
)

func spanningBlockStrings(t *testing.T, lowerStr, upperStr string) []string {
	t.Helper()
	lower, err := NewIPAddressString(lowerStr).ToAddress()
	require.NoError(t, err)
	upper, err := NewIPAddressString(upperStr).ToAddress()
	require.NoError(t, err)
	r := NewSequentialRange(lower, upper)
	blocks := r.SpanningPrefixBlocks()
	out := make([]string, len(blocks))
	for i, b := range blocks {
		out[i] = b.String()
	}
	return out
}

func TestSpanningPrefixBlocksSingleBlock(t *testing.T) {
	require.Equal(t, []string{"1.2.3.4/30"}, spanningBlockStrings(t, "1.2.3.4", "1.2.3.7"))
}

func TestSpanningPrefixBlocksThreeBlocks(t *testing.T) {
	require.Equal(t,
		[]string{"1.2.3.3/32", "1.2.3.4/30", "1.2.3.8/32"},
		spanningBlockStrings(t, "1.2.3.3", "1.2.3.8"))
}

func TestSpanningPrefixBlocksFullRangeIsSlashZero(t *testing.T) {
	require.Equal(t, []string{"0.0.0.0/0"}, spanningBlockStrings(t, "0.0.0.0", "255.255.255.255"))
}

func TestSpanningPrefixBlocksExactOctet(t *testing.T) {
	require.Equal(t, []string{"1.2.3.0/24"}, spanningBlockStrings(t, "1.2.3.0", "1.2.3.255"))
}

func TestSpanningPrefixBlocksMatchesExactSequence(t *testing.T) {
	got := spanningBlockStrings(t, "1.2.3.3", "1.2.3.8")
	want := []string{"1.2.3.3/32", "1.2.3.4/30", "1.2.3.8/32"}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("spanning blocks mismatch (-want +got):\n%s", diff)
	}
}

func TestSpanMinimality(t *testing.T) {
	lower, err := NewIPAddressString("10.0.0.5").ToAddress()
	require.NoError(t, err)
	upper, err := NewIPAddressString("10.0.1.9").ToAddress()
	require.NoError(t, err)
	r := NewSequentialRange(lower, upper)
	blocks := r.SpanningPrefixBlocks()
	require.NotEmpty(t, blocks)

	// the minimal decomposition is .0.5/32, .0.6/31, .0.8/29, .0.16/28,
	// .0.32/27, .0.64/26, .0.128/25, .1.0/29, .1.8/31.
	require.Len(t, blocks, 9)

	// the first block starts at lower and the last block ends at upper.
	first := blocks[0]
	last := blocks[len(blocks)-1]
	require.True(t, first.GetSection().GetLowerSection().Equal(lower.GetSection()))
	require.True(t, last.GetSection().GetUpperSection().Equal(upper.GetSection()))

	// consecutive blocks are distinct.
	for i := 1; i < len(blocks); i++ {
		require.NotEqual(t, blocks[i-1].String(), blocks[i].String())
	}
}
