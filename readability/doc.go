// Package readability computes standard readability metrics for
// Western European language text.
//
// The package exposes three layers, all pure functions:
//
//   - Preprocess: normalises raw input (HTML stripping, punctuation
//     unification, whitespace collapsing) into a canonical plain-text
//     form. Idempotent: Preprocess(Preprocess(x)) == Preprocess(x).
//   - Counters: letter, word, sentence and syllable counts derived
//     from the canonical form. Sentence and word counts are floored
//     at 1, so no downstream formula ever divides by zero.
//   - Formulas: twelve named readability scores (Flesch-Kincaid ease
//     and grade, Gulpease, Douma, Kandel-Moles, Fernandez-Huerta,
//     Gunning Fog, Coleman-Liau, SMOG, ARI, LIX, RIX) built from the
//     counters.
//
// Every function is total: any input string, including the empty
// string and raw HTML, produces a finite numeric result. Metrics is
// the entry point most callers need.
//
// Syllable counts use a vowel-cluster heuristic, not true linguistic
// syllabification. The "exclude capitalised words" option on the long
// word counters is a first-character-case proxy for proper noun
// detection, not named-entity recognition.
//
// # Import Rules
//
//   - Can Import: Standard library, golang.org/x/text
//   - Cannot Import: Any internal/ package
package readability
