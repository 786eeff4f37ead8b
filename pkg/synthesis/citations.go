package synthesis

import (
	"fmt"
	"regexp"
	"strings"
)

// citationProximity is the guard distance: a new citation is skipped when
// another citation marker already sits within this many characters of the
// candidate anchor.
const citationProximity = 50

// citationMarker matches the markers this package inserts.
var citationMarker = regexp.MustCompile(`\[\[\d+\]\]\(#citation-\d+\)`)

// stopwords excluded from key-term extraction.
var stopwords = map[string]struct{}{
	"the": {}, "and": {}, "for": {}, "with": {}, "that": {}, "this": {},
	"from": {}, "are": {}, "was": {}, "were": {}, "has": {}, "have": {},
	"its": {}, "their": {}, "into": {}, "over": {}, "under": {}, "about": {},
	"been": {}, "will": {}, "which": {}, "when": {}, "where": {}, "while": {},
}

var termSplit = regexp.MustCompile(`[^a-z0-9]+`)

// significantTerms extracts lowercase key terms longer than three
// characters, stopwords removed, order preserved, deduplicated.
func significantTerms(s string) []string {
	seen := make(map[string]struct{})
	var out []string
	for _, term := range termSplit.Split(strings.ToLower(s), -1) {
		if len(term) <= 3 {
			continue
		}
		if _, stop := stopwords[term]; stop {
			continue
		}
		if _, dup := seen[term]; dup {
			continue
		}
		seen[term] = struct{}{}
		out = append(out, term)
	}
	return out
}

// marker renders the inline citation link for a citation number.
func marker(number int) string {
	return fmt.Sprintf("[[%d]](#citation-%d)", number, number)
}

// InjectCitation anchors one citation into markdown content using a
// three-strategy fallback: a sentence carrying at least 70% of the
// claim's key terms, then a paragraph carrying at least 50% (anchored at
// its best sentence), then a fuzzy regex over the first five significant
// terms. The anchored flag is false when no strategy matched; callers
// then fall back to a footer reference. Re-injection is a no-op: an
// existing marker within the proximity window suppresses the insert.
func InjectCitation(content, claim string, number int) (string, bool) {
	terms := significantTerms(claim)
	if len(terms) == 0 {
		return content, false
	}

	if pos, ok := sentenceAnchor(content, terms, 0.7); ok {
		return insertAt(content, pos, number)
	}
	if pos, ok := paragraphAnchor(content, terms); ok {
		return insertAt(content, pos, number)
	}
	if pos, ok := fuzzyAnchor(content, terms); ok {
		return insertAt(content, pos, number)
	}
	return content, false
}

// insertAt places the marker at the end of the matched region unless a
// marker already sits within the proximity window.
func insertAt(content string, pos int, number int) (string, bool) {
	if markerNear(content, pos) {
		return content, true // treated as already cited
	}
	return content[:pos] + marker(number) + content[pos:], true
}

// markerNear reports whether an existing citation marker lies within the
// proximity window of pos.
func markerNear(content string, pos int) bool {
	lo := pos - citationProximity
	if lo < 0 {
		lo = 0
	}
	hi := pos + citationProximity
	if hi > len(content) {
		hi = len(content)
	}
	return citationMarker.MatchString(content[lo:hi])
}

// sentenceAnchor finds the first sentence containing at least ratio of
// the key terms and returns the offset just past its terminator.
func sentenceAnchor(content string, terms []string, ratio float64) (int, bool) {
	needed := int(ratio*float64(len(terms)) + 0.999)
	if needed < 1 {
		needed = 1
	}

	offset := 0
	for _, sentence := range splitSentences(content) {
		if termHits(sentence, terms) >= needed {
			return offset + len(sentence), true
		}
		offset += len(sentence)
	}
	return 0, false
}

// paragraphAnchor finds a paragraph carrying at least half the key terms
// and anchors at the best sentence within it.
func paragraphAnchor(content string, terms []string) (int, bool) {
	needed := (len(terms) + 1) / 2

	offset := 0
	for _, para := range strings.SplitAfter(content, "\n\n") {
		if termHits(para, terms) >= needed {
			bestPos, bestHits := -1, 0
			inner := 0
			for _, sentence := range splitSentences(para) {
				if hits := termHits(sentence, terms); hits > bestHits {
					bestHits = hits
					bestPos = inner + len(sentence)
				}
				inner += len(sentence)
			}
			if bestPos >= 0 {
				return offset + bestPos, true
			}
		}
		offset += len(para)
	}
	return 0, false
}

// fuzzyAnchor matches the first five significant terms in order with
// bounded gaps between them.
func fuzzyAnchor(content string, terms []string) (int, bool) {
	if len(terms) > 5 {
		terms = terms[:5]
	}
	parts := make([]string, len(terms))
	for i, t := range terms {
		parts[i] = regexp.QuoteMeta(t)
	}
	re, err := regexp.Compile(`(?is)` + strings.Join(parts, `\W+(?:\w+\W+){0,8}?`))
	if err != nil {
		return 0, false
	}
	loc := re.FindStringIndex(content)
	if loc == nil {
		return 0, false
	}
	return loc[1], true
}

func termHits(text string, terms []string) int {
	lower := strings.ToLower(text)
	hits := 0
	for _, t := range terms {
		if strings.Contains(lower, t) {
			hits++
		}
	}
	return hits
}

// splitSentences breaks text after sentence terminators, keeping the
// terminator with the sentence so offsets stay exact.
func splitSentences(text string) []string {
	var out []string
	start := 0
	for i := 0; i < len(text); i++ {
		switch text[i] {
		case '.', '!', '?', '\n':
			out = append(out, text[start:i+1])
			start = i + 1
		}
	}
	if start < len(text) {
		out = append(out, text[start:])
	}
	return out
}
