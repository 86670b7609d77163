package cli

import (
	"fmt"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"golang.org/x/term"

	"github.com/custodia-labs/readable-cli/internal/config"
)

// metricOrder fixes the display order of the score table. The library
// returns a map; the CLI prints ease indices first, grade levels
// second, difficulty indices last.
var metricOrder = []string{
	"flesch_kincaid_ease",
	"gulpease",
	"douma",
	"kandel_moles",
	"fernandez_huerta",
	"flesch_kincaid_grade",
	"gunning_fog",
	"coleman_liau",
	"smog",
	"ari",
	"lix",
	"rix",
}

// metricLabels maps metric keys to their display names.
var metricLabels = map[string]string{
	"flesch_kincaid_ease":  "Flesch-Kincaid Reading Ease",
	"gulpease":             "Gulpease",
	"douma":                "Douma",
	"kandel_moles":         "Kandel-Moles",
	"fernandez_huerta":     "Fernandez-Huerta",
	"flesch_kincaid_grade": "Flesch-Kincaid Grade Level",
	"gunning_fog":          "Gunning Fog",
	"coleman_liau":         "Coleman-Liau",
	"smog":                 "SMOG",
	"ari":                  "ARI",
	"lix":                  "LIX",
	"rix":                  "RIX",
}

// Colour palette, borrowed from the house theme.
var (
	titleStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#7C3AED"))
	labelStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#6C7086"))
	easyStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("#A6E3A1"))
	mediumStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#F9E2AF"))
	hardStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("#F38BA8"))
	defaultStyle = lipgloss.NewStyle()
)

// renderScoreTable formats the twelve scores as an aligned table.
// When colored is true, the Flesch-Kincaid ease row is tinted by its
// conventional difficulty band (60+ easy, 30-60 standard, below 30
// difficult).
func renderScoreTable(scores map[string]float64, colored bool) string {
	var b strings.Builder

	title := "Readability Scores"
	if colored {
		title = titleStyle.Render(title)
	}
	b.WriteString(title + "\n\n")

	for _, key := range metricOrder {
		label := fmt.Sprintf("%-28s", metricLabels[key])
		value := fmt.Sprintf("%10.3f", scores[key])

		if colored {
			label = labelStyle.Render(label)
			value = scoreStyle(key, scores[key]).Render(value)
		}
		b.WriteString("  " + label + value + "\n")
	}

	return b.String()
}

// scoreStyle picks a colour band for a score. Only the ease score has
// a conventional interpretation scale worth colouring.
func scoreStyle(key string, score float64) lipgloss.Style {
	if key != "flesch_kincaid_ease" {
		return defaultStyle
	}
	switch {
	case score >= 60:
		return easyStyle
	case score >= 30:
		return mediumStyle
	default:
		return hardStyle
	}
}

// colorEnabled reports whether table output should be styled: never
// when --no-color is given or stdout is not a terminal, and the
// preference store can disable it persistently.
func colorEnabled(noColorFlag bool) bool {
	if noColorFlag {
		return false
	}
	if !term.IsTerminal(int(os.Stdout.Fd())) {
		return false
	}
	if store := preferences(); store != nil {
		if enabled, ok := store.GetBool(config.KeyColor); ok {
			return enabled
		}
	}
	return true
}
