package cli

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/readable-cli/internal/config"
	"github.com/custodia-labs/readable-cli/internal/logger"
	"github.com/custodia-labs/readable-cli/readability"
)

var (
	scoreJSON    bool
	scoreMetric  string
	scoreNoColor bool
)

var scoreCmd = &cobra.Command{
	Use:   "score [file]",
	Short: "Compute readability scores",
	Long: `Computes all twelve readability metrics for the given file, or for
stdin when no file is given. HTML markup is stripped before scoring,
with block-level boundaries treated as sentence breaks.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runScore,
}

func init() {
	scoreCmd.Flags().BoolVar(&scoreJSON, "json", false, "output scores as JSON")
	scoreCmd.Flags().StringVarP(&scoreMetric, "metric", "m", "", "print a single metric by key (e.g. gunning_fog)")
	scoreCmd.Flags().BoolVar(&scoreNoColor, "no-color", false, "disable coloured output")
	rootCmd.AddCommand(scoreCmd)
}

func runScore(cmd *cobra.Command, args []string) error {
	text, err := readInput(cmd, args)
	if err != nil {
		return err
	}

	logDebugCounts(text)

	scores := readability.Metrics(text)

	if scoreMetric != "" {
		value, ok := scores[scoreMetric]
		if !ok {
			return fmt.Errorf("unknown metric: %s", scoreMetric)
		}
		cmd.Printf("%.3f\n", value)
		return nil
	}

	if outputJSON(scoreJSON) {
		return printScoresJSON(cmd, scores)
	}

	cmd.Print(renderScoreTable(scores, colorEnabled(scoreNoColor)))
	return nil
}

func printScoresJSON(cmd *cobra.Command, scores map[string]float64) error {
	data, err := json.MarshalIndent(scores, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal scores: %w", err)
	}
	cmd.Println(string(data))
	return nil
}

// outputJSON resolves the output format: the --json flag wins,
// otherwise the persisted "output" preference applies.
func outputJSON(jsonFlag bool) bool {
	if jsonFlag {
		return true
	}
	if store := preferences(); store != nil {
		return store.GetString(config.KeyOutput) == "json"
	}
	return false
}

// logDebugCounts reports the intermediate counter values under
// --verbose, which is the easiest way to sanity-check a surprising
// score.
func logDebugCounts(text string) {
	if !logger.IsVerbose() {
		return
	}
	canonical := readability.Preprocess(text)
	logger.Section("Counters")
	logger.Debug("canonical text: %d bytes", len(canonical))
	logger.Debug("letters=%d words=%d sentences=%d syllables=%d",
		readability.LetterCount(canonical),
		readability.WordCount(canonical),
		readability.SentenceCount(canonical),
		readability.TotalSyllables(canonical))
}
