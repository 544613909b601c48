package diff

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateUnifiedDiffIdenticalContent(t *testing.T) {
	t.Parallel()

	content := []byte("line1\nline2\nline3\n")
	assert.Empty(t, GenerateUnifiedDiff(content, content, "expected", "actual"))
}

func TestUnifiedSingleLineChange(t *testing.T) {
	t.Parallel()

	out, stats := Unified([]byte("line1\nline2\nline3\n"), []byte("line1\nmodified\nline3\n"), "a.yaml", "b.yaml")

	assert.Equal(t, "--- a.yaml\n+++ b.yaml\n@@ -1,3 +1,3 @@\n line1\n-line2\n+modified\n line3\n", out)
	assert.Equal(t, Stats{Added: 1, Removed: 1}, stats)
	assert.True(t, stats.Changed())
}

func TestUnifiedKeepsWholeLines(t *testing.T) {
	t.Parallel()

	out, stats := Unified(
		[]byte("  default: px-4 py-2\n  small: px-2\n"),
		[]byte("  default: px-6 py-2\n  small: px-2\n"),
		"HEAD", "working tree",
	)
	require.Contains(t, out, "-  default: px-4 py-2\n")
	require.Contains(t, out, "+  default: px-6 py-2\n")
	require.Contains(t, out, "   small: px-2\n")
	assert.Equal(t, Stats{Added: 1, Removed: 1}, stats)
}

func TestGenerateUnifiedDiffTruncation(t *testing.T) {
	t.Parallel()

	var expectedLines, actualLines []string
	for i := 0; i < 11000; i++ {
		expectedLines = append(expectedLines, "expected line")
		if i%2 == 0 {
			actualLines = append(actualLines, "actual line")
		} else {
			actualLines = append(actualLines, "expected line")
		}
	}

	result := GenerateUnifiedDiff(
		[]byte(strings.Join(expectedLines, "\n")),
		[]byte(strings.Join(actualLines, "\n")),
		"expected", "actual",
	)

	require.Contains(t, result, "truncated")
	assert.LessOrEqual(t, strings.Count(result, "\n"), 10001)
}

func TestGenerateUnifiedDiffEmptyContent(t *testing.T) {
	t.Parallel()

	result := GenerateUnifiedDiff(nil, []byte("new content\n"), "expected", "actual")
	assert.Contains(t, result, "@@ -1,0 +1,1 @@")
	assert.Contains(t, result, "+new content")
}
