// Package annotation strips trailing editorial parenthetical clauses from
// legislative body text and classifies what they say about vigency
// (spec.md §4.2).
package annotation

import (
	"regexp"
	"strings"
)

// Status is the vigency/veto state inferred from a run of annotations.
type Status string

const (
	InForce Status = "in_force"
	Revoked Status = "revoked"
	Vetoed  Status = "vetoed"
)

// markerWords are the legislative-action markers that identify an
// editorial annotation, matched case-insensitively and accent-insensitively
// against the parenthetical content.
var markerWords = []string{
	"incluid", "revogad", "acrescid", "alterad", "vetad", "suprimi",
	"renumerad", "redacao dada", "vide", "vigencia",
}

// trailingRun matches one or more consecutive parenthesized clauses at the
// very end of the text, each optionally followed by whitespace.
var trailingRun = regexp.MustCompile(`(\s*\([^()]*\)\s*)+$`)

// singleClause decomposes a captured trailing run into its individual
// parenthesized tokens.
var singleClause = regexp.MustCompile(`\(([^()]*)\)`)

// Result is the outcome of splitting a body text.
type Result struct {
	Clean       string
	Original    string
	Annotations []string
}

// Split detects a trailing run of parenthesized legislative-action clauses
// and separates them from the clean body text.
func Split(text string) Result {
	original := text
	loc := trailingRun.FindStringIndex(text)
	if loc == nil {
		return Result{Clean: strings.TrimSpace(text), Original: original}
	}

	candidate := text[loc[0]:]
	if !hasMarker(candidate) {
		return Result{Clean: strings.TrimSpace(text), Original: original}
	}

	clean := strings.TrimSpace(text[:loc[0]])
	var annotations []string
	for _, m := range singleClause.FindAllStringSubmatch(candidate, -1) {
		clause := strings.TrimSpace(m[1])
		if clause != "" {
			annotations = append(annotations, clause)
		}
	}

	return Result{Clean: clean, Original: original, Annotations: annotations}
}

// hasMarker reports whether s contains at least one legislative-action
// marker word, case- and accent-insensitively.
func hasMarker(s string) bool {
	folded := foldAccents(strings.ToLower(s))
	for _, w := range markerWords {
		if strings.Contains(folded, w) {
			return true
		}
	}
	return false
}

var accentReplacer = strings.NewReplacer(
	"á", "a", "à", "a", "â", "a", "ã", "a",
	"é", "e", "ê", "e",
	"í", "i",
	"ó", "o", "ô", "o", "õ", "o",
	"ú", "u", "ü", "u",
	"ç", "c",
)

func foldAccents(s string) string {
	return accentReplacer.Replace(s)
}

// Classify infers vigency/veto status from a set of annotation clauses
// (spec.md §4.2). Applied when the cleaned body is empty except for
// punctuation.
func Classify(annotations []string) Status {
	joined := foldAccents(strings.ToLower(strings.Join(annotations, " ")))
	hasRevogad := strings.Contains(joined, "revogad")
	hasVetad := strings.Contains(joined, "vetad")
	hasMantid := strings.Contains(joined, "mantid")

	switch {
	case hasRevogad:
		return Revoked
	case hasVetad && hasMantid:
		return InForce
	case hasVetad:
		return Vetoed
	default:
		return InForce
	}
}

// IsEffectivelyEmpty reports whether text is empty or contains only
// punctuation/whitespace, the trigger condition for Classify-driven
// substitution at the emit boundary (spec.md §4.2, §4.7 step 6).
func IsEffectivelyEmpty(text string) bool {
	for _, r := range text {
		switch r {
		case '.', ',', ';', ':', ' ', '\t', '\n', '\r', '-':
			continue
		default:
			return false
		}
	}
	return true
}
