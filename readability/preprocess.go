package readability

import (
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// Pre-compiled regular expressions for text normalisation performance.
var (
	// Closing block-level tags mark sentence boundaries in HTML input.
	fullStopTags   = regexp.MustCompile(`</(?:li|p|h[1-6]|dd)>`)
	allTags        = regexp.MustCompile(`<[^>]+>`)
	wordSeparators = regexp.MustCompile(`[,:;()\-]`)
	terminators    = regexp.MustCompile(`[.!?]`)
	leadingSpace   = regexp.MustCompile(`^\s+`)
	newlineRuns    = regexp.MustCompile(`[ ]*(?:\r\n|\n|\r)[ ]*`)
	duplicateStops = regexp.MustCompile(`\.[. ]+`)
	stopPadding    = regexp.MustCompile(`[ ]*\.`)
	multiSpaces    = regexp.MustCompile(`\s+`)
	trailingSpace  = regexp.MustCompile(`\s+$`)
)

// asciiFold decomposes accented characters so the combining marks can
// be stripped, leaving the base letter. Chained transformers carry
// internal buffers, so each call builds its own.
func asciiFold() transform.Transformer {
	return transform.Chain(norm.NFKD, runes.Remove(runes.In(unicode.Mn)))
}

// Preprocess converts raw text, possibly containing HTML markup, into
// the canonical form the counters operate on: ASCII only, single
// spaces between words, every sentence terminated by a single "."
// followed by exactly one space, no leading or trailing whitespace.
//
// The function is total and idempotent. Counters re-apply it to their
// input, so callers may pass either raw or canonical text.
func Preprocess(text string) string {
	text = toASCII(text)

	// Closing block tags become full stops, everything else in angle
	// brackets is dropped.
	text = fullStopTags.ReplaceAllString(text, ".")
	text = allTags.ReplaceAllString(text, "")

	// Commas, colons, semicolons, parentheses and hyphens separate
	// words, they are not sentence or letter content.
	text = wordSeparators.ReplaceAllString(text, " ")

	// Unify sentence terminators.
	text = terminators.ReplaceAllString(text, ".")

	text = leadingSpace.ReplaceAllString(text, "")
	text = newlineRuns.ReplaceAllString(text, " ")

	// Deduplicate consecutive terminators, then pad each terminator
	// with no leading space and exactly one trailing space.
	text = duplicateStops.ReplaceAllString(text, ".")
	text = stopPadding.ReplaceAllString(text, ". ")

	text = multiSpaces.ReplaceAllString(text, " ")
	text = trailingSpace.ReplaceAllString(text, "")

	return text
}

// toASCII transliterates text to its nearest ASCII representation.
// Accented characters decompose to their base letter; characters with
// no ASCII equivalent are dropped.
func toASCII(text string) string {
	folded, _, err := transform.String(asciiFold(), text)
	if err != nil {
		folded = text
	}

	var b strings.Builder
	b.Grow(len(folded))
	for _, r := range folded {
		if r < utf8.RuneSelf {
			b.WriteByte(byte(r))
		}
	}
	return b.String()
}
