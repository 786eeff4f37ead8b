package collector

import (
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"
)

func TestTruncateKeepsValidUTF8(t *testing.T) {
	// A two-byte rune straddling the limit must be dropped whole, not
	// split into an invalid trailing byte.
	s := strings.Repeat("a", summaryLimit-1) + "é"
	out := truncate(s, summaryLimit)
	assert.True(t, utf8.ValidString(out))
	assert.Len(t, out, summaryLimit-1)

	assert.Equal(t, "héllo", truncate("héllo", 10))
	assert.Equal(t, "h", truncate("héllo", 2))
	assert.Empty(t, truncate("é", 1))
}
