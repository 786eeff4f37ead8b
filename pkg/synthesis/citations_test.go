package synthesis

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSignificantTerms(t *testing.T) {
	terms := significantTerms("The platform uses React and exposes a public REST API for partners")
	assert.Equal(t, []string{"platform", "uses", "react", "exposes", "public", "rest", "partners"}, terms)

	assert.Empty(t, significantTerms("the and for"))
	assert.Empty(t, significantTerms(""))

	// Duplicates collapse, order preserved.
	assert.Equal(t, []string{"react", "components", "render"},
		significantTerms("React components render React components"))
}

func TestInjectCitationSentenceStrategy(t *testing.T) {
	content := "The company runs a modern stack. The platform uses React with a modern frontend. Deployment is on AWS."

	out, ok := InjectCitation(content, "platform uses React frontend", 1)
	require.True(t, ok)

	// Marker lands after the sentence that carries the claim terms.
	idx := strings.Index(out, "[[1]](#citation-1)")
	require.GreaterOrEqual(t, idx, 0)
	assert.True(t, strings.HasSuffix(out[:idx], "modern frontend."),
		"marker should follow the matched sentence, got: %q", out[:idx])
}

func TestInjectCitationParagraphStrategy(t *testing.T) {
	// Terms spread across sentences: no single sentence carries 70%, but the
	// paragraph carries over half.
	content := "Security posture is mixed. TLS termination uses version 1.3. Several response headers are missing entirely.\n\nUnrelated closing paragraph about the market."

	out, ok := InjectCitation(content, "TLS version headers missing posture", 2)
	require.True(t, ok)
	assert.Contains(t, out, "[[2]](#citation-2)")
	// Anchored inside the first paragraph, not the unrelated one.
	assert.Less(t, strings.Index(out, "[[2]]"), strings.Index(out, "Unrelated"))
}

func TestInjectCitationFuzzyStrategy(t *testing.T) {
	// Claim terms appear in order with small gaps, but no single sentence or
	// paragraph concentrates enough of them for the first two strategies.
	content := "Seed funding closed in March.\n\nThe series momentum continued as investors joined.\n\nLater the valuation doubled while margin improved."

	out, ok := InjectCitation(content, "funding series investors valuation margin", 3)
	require.True(t, ok)
	assert.Contains(t, out, "[[3]](#citation-3)")
}

func TestInjectCitationNoAnchor(t *testing.T) {
	content := "This section discusses something entirely different."
	out, ok := InjectCitation(content, "quantum blockchain synergy pivots", 4)
	assert.False(t, ok)
	assert.Equal(t, content, out)
}

func TestInjectCitationEmptyClaim(t *testing.T) {
	out, ok := InjectCitation("Some content here.", "the and for", 5)
	assert.False(t, ok)
	assert.Equal(t, "Some content here.", out)
}

func TestInjectCitationProximityGuard(t *testing.T) {
	content := "The company runs a modern stack. The platform uses React with a modern frontend."

	first, ok := InjectCitation(content, "platform uses React frontend", 1)
	require.True(t, ok)
	require.Contains(t, first, "[[1]](#citation-1)")

	// Re-injecting at the same anchor is a no-op: the existing marker within
	// the proximity window suppresses the second insert.
	second, ok := InjectCitation(first, "platform uses React frontend", 2)
	assert.True(t, ok)
	assert.Equal(t, first, second)
	assert.NotContains(t, second, "[[2]]")
}

func TestMarkerNear(t *testing.T) {
	content := "prefix [[1]](#citation-1) suffix"
	assert.True(t, markerNear(content, 10))
	assert.False(t, markerNear(content+strings.Repeat("x", 200), len(content)+150))
}

func TestSplitSentencesOffsetsExact(t *testing.T) {
	text := "One. Two! Three?\nFour"
	parts := splitSentences(text)
	require.Equal(t, []string{"One.", " Two!", " Three?", "\n", "Four"}, parts)
	assert.Equal(t, text, strings.Join(parts, ""))
}
