package cli

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/readable-cli/readability"
)

var statsJSON bool

var statsCmd = &cobra.Command{
	Use:   "stats [file]",
	Short: "Show raw text statistics",
	Long: `Shows the counter values the readability formulas are built from:
letters, words, sentences, syllables and the long-word counts.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runStats,
}

func init() {
	statsCmd.Flags().BoolVar(&statsJSON, "json", false, "output statistics as JSON")
	rootCmd.AddCommand(statsCmd)
}

// textStats bundles the counter values for one text.
type textStats struct {
	Letters              int     `json:"letters"`
	Words                int     `json:"words"`
	Sentences            int     `json:"sentences"`
	Syllables            int     `json:"syllables"`
	AvgWordsPerSentence  float64 `json:"avg_words_per_sentence"`
	AvgSyllablesPerWord  float64 `json:"avg_syllables_per_word"`
	SixLetterWords       int     `json:"six_letter_words"`
	ThreeSyllableWords   int     `json:"three_syllable_words"`
	PctThreeSyllableWord float64 `json:"percent_three_syllable_words"`
}

func collectStats(text string) textStats {
	// Preprocess once; every counter accepts canonical text unchanged.
	canonical := readability.Preprocess(text)
	return textStats{
		Letters:              readability.LetterCount(canonical),
		Words:                readability.WordCount(canonical),
		Sentences:            readability.SentenceCount(canonical),
		Syllables:            readability.TotalSyllables(canonical),
		AvgWordsPerSentence:  readability.AvgWordsPerSentence(canonical),
		AvgSyllablesPerWord:  readability.AvgSyllablesPerWord(canonical),
		SixLetterWords:       readability.SixLetterWordCount(canonical, true),
		ThreeSyllableWords:   readability.ThreeSyllableWordCount(canonical, true),
		PctThreeSyllableWord: readability.PercentThreeSyllableWords(canonical, false),
	}
}

func runStats(cmd *cobra.Command, args []string) error {
	text, err := readInput(cmd, args)
	if err != nil {
		return err
	}

	stats := collectStats(text)

	if outputJSON(statsJSON) {
		data, err := json.MarshalIndent(stats, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to marshal statistics: %w", err)
		}
		cmd.Println(string(data))
		return nil
	}

	cmd.Println("Text Statistics")
	cmd.Println("===============")
	cmd.Println()
	cmd.Printf("  Letters:    %d\n", stats.Letters)
	cmd.Printf("  Words:      %d\n", stats.Words)
	cmd.Printf("  Sentences:  %d\n", stats.Sentences)
	cmd.Printf("  Syllables:  %d\n", stats.Syllables)
	cmd.Println()
	cmd.Printf("  Avg words/sentence:  %.3f\n", stats.AvgWordsPerSentence)
	cmd.Printf("  Avg syllables/word:  %.3f\n", stats.AvgSyllablesPerWord)
	cmd.Println()
	cmd.Printf("  Six-letter words:      %d\n", stats.SixLetterWords)
	cmd.Printf("  Three-syllable words:  %d\n", stats.ThreeSyllableWords)
	cmd.Printf("  Complex words:         %.1f%% (capitalised excluded)\n", stats.PctThreeSyllableWord)
	return nil
}
