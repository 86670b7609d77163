package readability

import "math"

// Metrics computes all twelve readability scores for a text and
// returns them keyed by metric name. Each score is independently
// computable from the raw text alone; the map always contains exactly
// these twelve keys, each mapped to a finite number.
func Metrics(text string) map[string]float64 {
	return map[string]float64{
		"flesch_kincaid_ease":  FleschKincaidEase(text),
		"gulpease":             Gulpease(text),
		"douma":                Douma(text),
		"kandel_moles":         KandelMoles(text),
		"fernandez_huerta":     FernandezHuerta(text),
		"flesch_kincaid_grade": FleschKincaidGrade(text),
		"gunning_fog":          GunningFog(text),
		"coleman_liau":         ColemanLiau(text),
		"smog":                 SMOG(text),
		"ari":                  ARI(text),
		"lix":                  LIX(text),
		"rix":                  RIX(text),
	}
}

// Readability indices: higher scores imply easier reading.

// FleschKincaidEase computes the Flesch Reading Ease score.
func FleschKincaidEase(text string) float64 {
	text = Preprocess(text)
	return 206.835 - (1.015 * AvgWordsPerSentence(text)) - (84.6 * AvgSyllablesPerWord(text))
}

// Douma computes the Douma index, a Flesch-Kincaid variant for Dutch.
func Douma(text string) float64 {
	text = Preprocess(text)
	return 206.84 - (0.33 * AvgWordsPerSentence(text)) - (0.77 * AvgSyllablesPerWord(text))
}

// KandelMoles computes the Kandel-Moles index, a Flesch-Kincaid
// variant for French.
func KandelMoles(text string) float64 {
	text = Preprocess(text)
	return 209 - (1.15 * AvgWordsPerSentence(text)) - (0.68 * AvgSyllablesPerWord(text))
}

// Gulpease computes the Gulpease index, developed for Italian.
func Gulpease(text string) float64 {
	text = Preprocess(text)
	return 89.0 + (300.0*float64(SentenceCount(text))-10.0*float64(LetterCount(text)))/float64(WordCount(text))
}

// FernandezHuerta computes the Fernandez-Huerta index, developed for
// Spanish.
func FernandezHuerta(text string) float64 {
	text = Preprocess(text)
	factor := 100.0 / float64(WordCount(text))
	return 206.84 - (0.6 * factor * float64(TotalSyllables(text))) - (1.02 * factor * float64(SentenceCount(text)))
}

// Grade level estimators: higher scores imply more advanced material.

// FleschKincaidGrade computes the Flesch-Kincaid grade level.
func FleschKincaidGrade(text string) float64 {
	text = Preprocess(text)
	return (0.39 * AvgWordsPerSentence(text)) + (11.8 * AvgSyllablesPerWord(text)) - 15.59
}

// GunningFog computes the Gunning Fog index. Capitalised words are
// excluded from the complex-word percentage, per the Fog convention
// of skipping proper nouns.
func GunningFog(text string) float64 {
	text = Preprocess(text)
	return 0.4 * (AvgWordsPerSentence(text) + PercentThreeSyllableWords(text, false))
}

// ColemanLiau computes the Coleman-Liau index.
func ColemanLiau(text string) float64 {
	text = Preprocess(text)
	return (5.89 * float64(LetterCount(text)) / float64(WordCount(text))) -
		(0.3 * float64(SentenceCount(text)) / float64(WordCount(text))) - 15.8
}

// SMOG computes the SMOG index.
func SMOG(text string) float64 {
	text = Preprocess(text)
	return 1.043 * math.Sqrt(float64(ThreeSyllableWordCount(text, true))*(30.0/float64(SentenceCount(text)))+3.1291)
}

// ARI computes the Automated Readability Index.
func ARI(text string) float64 {
	text = Preprocess(text)
	return (4.71 * float64(LetterCount(text)) / float64(WordCount(text))) +
		(0.5 * float64(WordCount(text)) / float64(SentenceCount(text))) - 21.43
}

// Other indices: higher scores imply more difficult reading.

// LIX computes the LIX index, developed for Swedish.
func LIX(text string) float64 {
	text = Preprocess(text)
	numWords := float64(WordCount(text))
	return (100.0 * float64(SixLetterWordCount(text, true)) / numWords) +
		(numWords / float64(SentenceCount(text)))
}

// RIX computes the RIX index, a generalised variant of LIX.
func RIX(text string) float64 {
	text = Preprocess(text)
	return float64(SixLetterWordCount(text, true)) / float64(SentenceCount(text))
}
