package diff

import (
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLinesIdenticalContent(t *testing.T) {
	t.Parallel()

	out, stats := Lines("a\nb\n", "a\nb\n", "from", "to")

	require.Empty(t, out)
	require.Zero(t, stats)
}

func TestLinesSingleLineChange(t *testing.T) {
	t.Parallel()

	from := "{\n  \"color\": \"black\",\n  \"cursor\": \"pointer\"\n}\n"
	to := "{\n  \"color\": \"gray\",\n  \"cursor\": \"pointer\"\n}\n"

	out, stats := Lines(from, to, "&primary", "&disabled")

	require.Contains(t, out, "--- &primary\n+++ &disabled\n")
	require.Contains(t, out, "-  \"color\": \"black\",\n")
	require.Contains(t, out, "+  \"color\": \"gray\",\n")
	require.Contains(t, out, "   \"cursor\": \"pointer\"\n")
	require.Equal(t, Stats{Added: 1, Removed: 1}, stats)
}

func TestLinesAdditionOnly(t *testing.T) {
	t.Parallel()

	out, stats := Lines("a\n", "a\nb\n", "x", "y")

	require.Contains(t, out, "+b\n")
	require.NotContains(t, out, "-a")
	require.Equal(t, Stats{Added: 1}, stats)
}

func TestLinesTruncatesLargeDiffs(t *testing.T) {
	t.Parallel()

	var from, to strings.Builder
	for i := 0; i < maxDiffLines; i++ {
		fmt.Fprintf(&from, "old %d\n", i)
		fmt.Fprintf(&to, "new %d\n", i)
	}

	out, stats := Lines(from.String(), to.String(), "a", "b")

	require.True(t, strings.HasSuffix(out, truncateMessage+"\n"))
	require.Equal(t, maxDiffLines, stats.Added)
}
