package readability

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLetterCount(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected int
	}{
		{"two short sentences", "Hi. Bye.", 5},
		{"digits and punctuation excluded", "room 101, floor 3.", 9},
		{"empty input", "", 0},
		{"html stripped before counting", "<p>ab</p>", 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, LetterCount(tt.input))
		})
	}
}

func TestSentenceCount(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected int
	}{
		{"two sentences", "Hi. Bye.", 2},
		{"html paragraphs", "<p>Hello world</p><p>Goodbye</p>", 2},
		{"no terminator floors at one", "no terminator here", 1},
		{"empty input floors at one", "", 1},
		{"mixed terminators unify", "One! Two? Three.", 3},
		{"duplicated terminators deduplicate", "Wait... what!?", 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, SentenceCount(tt.input))
		})
	}
}

func TestWordCount(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected int
	}{
		{"two sentences two words", "Hi. Bye.", 2},
		{"html paragraphs", "<p>Hello world</p><p>Goodbye</p>", 3},
		{"pangram", "The quick brown fox jumps over the lazy dog.", 9},
		{"single word", "word", 1},
		{"empty input floors at one", "", 1},
		{"separators split words", "one,two-three", 3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, WordCount(tt.input))
		})
	}
}

func TestSyllableCount(t *testing.T) {
	tests := []struct {
		word     string
		expected int
	}{
		{"cat", 1},
		{"hello", 2},
		{"beautiful", 3},
		{"president", 3},
		{"rhythm", 1},
		{"syzygy", 3},
		{"queueing", 1},
		{"dog.", 1},
		{"HELLO", 2},
		{"", 1},
		{"123", 1},
		{"...", 1},
	}

	for _, tt := range tests {
		t.Run(tt.word, func(t *testing.T) {
			assert.Equal(t, tt.expected, SyllableCount(tt.word))
		})
	}
}

func TestTotalSyllables(t *testing.T) {
	assert.Equal(t, 11, TotalSyllables("The quick brown fox jumps over the lazy dog."))
	assert.Equal(t, 0, TotalSyllables(""))
	assert.Equal(t, 2, TotalSyllables("Hi. Bye."))
}

func TestAverages(t *testing.T) {
	text := "The quick brown fox jumps over the lazy dog."
	assert.InDelta(t, 9.0, AvgWordsPerSentence(text), 1e-12)
	assert.InDelta(t, 11.0/9.0, AvgSyllablesPerWord(text), 1e-12)

	// Floors keep the averages finite even for empty input.
	assert.InDelta(t, 1.0, AvgWordsPerSentence(""), 1e-12)
	assert.InDelta(t, 0.0, AvgSyllablesPerWord(""), 1e-12)
}

func TestSixLetterWordCount(t *testing.T) {
	text := "The president visited Washington last autumn."

	// Tokens of length >= 6: president, visited, Washington, autumn.
	assert.Equal(t, 4, SixLetterWordCount(text, true))

	// Excluding capitalised tokens drops the proper noun.
	assert.Equal(t, 3, SixLetterWordCount(text, false))

	assert.Equal(t, 0, SixLetterWordCount("", true))
}

func TestThreeSyllableWordCount(t *testing.T) {
	text := "The president visited Washington last autumn."

	// president, visited and Washington have three syllables each.
	assert.Equal(t, 3, ThreeSyllableWordCount(text, true))
	assert.Equal(t, 2, ThreeSyllableWordCount(text, false))

	assert.Equal(t, 0, ThreeSyllableWordCount("Hi. Bye.", true))
}

func TestPercentThreeSyllableWords(t *testing.T) {
	text := "The president visited Washington last autumn."
	assert.InDelta(t, 100.0*2.0/6.0, PercentThreeSyllableWords(text, false), 1e-12)
	assert.InDelta(t, 100.0*3.0/6.0, PercentThreeSyllableWords(text, true), 1e-12)
	assert.InDelta(t, 0.0, PercentThreeSyllableWords("", false), 1e-12)
}

func TestCounters_FloorInvariants(t *testing.T) {
	inputs := []string{"", "   ", "...", "123", "<br>", "\n\n"}

	for _, input := range inputs {
		assert.GreaterOrEqual(t, SentenceCount(input), 1, "input %q", input)
		assert.GreaterOrEqual(t, WordCount(input), 1, "input %q", input)
		assert.GreaterOrEqual(t, SyllableCount(input), 1, "input %q", input)
	}
}
