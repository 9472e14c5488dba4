// Package urnslug converts URN fragment tokens into the dotted hierarchical
// slug scheme used throughout the emitted document (spec.md §4.1).
package urnslug

import "strings"

// tokenSlug maps a URN fragment type token to its slug-type prefix.
var tokenSlug = map[string]string{
	"art": "artigo",
	"par": "paragrafo",
	"inc": "inciso",
	"ali": "alinea",
	"ite": "item",
	"cpt": "caput",
	"prt": "parte",
	"liv": "livro",
	"tit": "titulo",
	"cap": "capitulo",
	"sec": "secao",
}

// permittedContinuations are slug-type prefixes allowed to follow "artigo-"
// in a valid descendant slug.
var permittedContinuations = map[string]bool{
	"artigo": true, "paragrafo": true, "inciso": true, "alinea": true,
	"item": true, "caput": true, "parte": true, "livro": true,
	"titulo": true, "capitulo": true, "secao": true,
}

// Warning records an unknown URN fragment token encountered during
// conversion; conversion never fails, it only flags.
type Warning struct {
	Token   string
	Message string
}

// FromFragment converts a URN fragment (the part after "!", tokens joined
// by "_") into its dotted slug form, e.g. "art121_par2_inc4" ->
// "artigo-121.paragrafo-2.inciso-4".
func FromFragment(fragment string) (string, []Warning) {
	tokens := strings.Split(fragment, "_")
	parts := make([]string, 0, len(tokens))
	var warnings []Warning

	for _, tok := range tokens {
		if tok == "" {
			continue
		}
		slugPart, ok := tokenToSlug(tok)
		if !ok {
			warnings = append(warnings, Warning{
				Token:   tok,
				Message: "unknown URN fragment token type: " + tok,
			})
			parts = append(parts, tok)
			continue
		}
		parts = append(parts, slugPart)
	}

	return strings.Join(parts, "."), warnings
}

// tokenToSlug splits a single "<type><number>" token and renders it as
// "<slug-type>-<lowercased-number>", preserving hyphen-letter suffixes.
func tokenToSlug(tok string) (string, bool) {
	typeLen := 3
	if len(tok) < typeLen {
		return "", false
	}
	typeTok := tok[:typeLen]
	numberTok := tok[typeLen:]

	slugType, ok := tokenSlug[typeTok]
	if !ok {
		return "", false
	}
	if numberTok == "" {
		return slugType, true
	}
	return slugType + "-" + strings.ToLower(numberTok), true
}

// Validate reports whether a slug is well-formed: it must start with
// "artigo-" or one of the permitted continuation prefixes.
func Validate(slug string) bool {
	first := strings.SplitN(slug, "-", 2)[0]
	return permittedContinuations[first]
}
