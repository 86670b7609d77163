package readability

import "strings"

// LetterCount returns the number of ASCII letters in the text after
// preprocessing. Digits, punctuation and spaces are excluded.
func LetterCount(text string) int {
	text = Preprocess(text)
	n := 0
	for i := 0; i < len(text); i++ {
		c := text[i]
		if (c >= 'A' && c <= 'Z') || (c >= 'a' && c <= 'z') {
			n++
		}
	}
	return n
}

// SentenceCount returns the number of sentence terminators in the
// canonical text, floored at 1 so a text with no terminator still
// counts as one sentence.
// Note: might be tripped up by honorifics and abbreviations.
func SentenceCount(text string) int {
	text = Preprocess(text)
	n := 0
	for i := 0; i < len(text); i++ {
		switch text[i] {
		case '.', '!', '?':
			n++
		}
	}
	if n < 1 {
		return 1
	}
	return n
}

// WordCount returns the number of words in the canonical text using
// the gaps-plus-one heuristic: space count + 1. Always at least 1.
func WordCount(text string) int {
	return strings.Count(Preprocess(text), " ") + 1
}

// SyllableCount estimates the number of syllables in a single word by
// counting maximal vowel-letter runs (a, e, i, o, u, y) after
// lower-casing and stripping non-alphabetic characters. Floored at 1:
// every word has at least one syllable, including empty or
// numeric-only tokens.
func SyllableCount(word string) int {
	word = strings.ToLower(word)
	clusters := 0
	inCluster := false
	for i := 0; i < len(word); i++ {
		c := word[i]
		if c < 'a' || c > 'z' {
			// Non-alphabetic characters are stripped, they neither
			// extend nor break a vowel cluster.
			continue
		}
		switch c {
		case 'a', 'e', 'i', 'o', 'u', 'y':
			if !inCluster {
				clusters++
				inCluster = true
			}
		default:
			inCluster = false
		}
	}
	if clusters < 1 {
		return 1
	}
	return clusters
}

// TotalSyllables sums SyllableCount over all whitespace-delimited
// tokens of the canonical text.
func TotalSyllables(text string) int {
	total := 0
	for _, word := range strings.Fields(Preprocess(text)) {
		total += SyllableCount(word)
	}
	return total
}

// AvgWordsPerSentence returns WordCount / SentenceCount.
func AvgWordsPerSentence(text string) float64 {
	text = Preprocess(text)
	return float64(WordCount(text)) / float64(SentenceCount(text))
}

// AvgSyllablesPerWord returns TotalSyllables / WordCount.
func AvgSyllablesPerWord(text string) float64 {
	text = Preprocess(text)
	return float64(TotalSyllables(text)) / float64(WordCount(text))
}

// SixLetterWordCount counts tokens of length >= 6 in the canonical
// text. Tokens keep their trailing terminator, so a sentence-final
// word is one character longer than its letters alone. When
// includeCapitalized is false, tokens whose first character is not a
// lower-case letter are excluded, a crude proxy for skipping proper
// nouns.
func SixLetterWordCount(text string, includeCapitalized bool) int {
	count := 0
	for _, word := range strings.Fields(Preprocess(text)) {
		if len(word) < 6 {
			continue
		}
		if includeCapitalized || startsLower(word) {
			count++
		}
	}
	return count
}

// ThreeSyllableWordCount counts tokens with at least three syllables,
// with the same capitalisation filter as SixLetterWordCount.
func ThreeSyllableWordCount(text string, includeCapitalized bool) int {
	count := 0
	for _, word := range strings.Fields(Preprocess(text)) {
		if SyllableCount(word) < 3 {
			continue
		}
		if includeCapitalized || startsLower(word) {
			count++
		}
	}
	return count
}

// PercentThreeSyllableWords returns the percentage of words with at
// least three syllables. Gunning Fog calls this with
// includeCapitalized=false.
func PercentThreeSyllableWords(text string, includeCapitalized bool) float64 {
	text = Preprocess(text)
	return 100.0 * float64(ThreeSyllableWordCount(text, includeCapitalized)) / float64(WordCount(text))
}

func startsLower(word string) bool {
	return word != "" && word[0] >= 'a' && word[0] <= 'z'
}
