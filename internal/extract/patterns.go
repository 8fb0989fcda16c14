package extract

import "regexp"

// Patterns is the pluggable pattern set used by the feature extractor. The
// laughter and emoticon patterns are deliberately loose heuristics: laughs do
// not follow a closed spelling and the historical patterns are documented as
// best-effort, not linguistic truth.
type Patterns struct {
	URL         *regexp.Regexp
	Email       *regexp.Regexp
	Question    *regexp.Regexp
	Exclamation *regexp.Regexp
	Mention     *regexp.Regexp
	Numbers     *regexp.Regexp

	// Laughs and Emoticons capture the token in submatch 1; the leading
	// context consumed by the pattern is not part of the span.
	Laughs    *regexp.Regexp
	Emoticons *regexp.Regexp
}

// DefaultPatterns returns the standard pattern set.
func DefaultPatterns() *Patterns {
	return &Patterns{
		// The $-_ range is deliberate: it spans the ASCII block holding
		// digits and URL punctuation (?, =, /, :, &), so query strings
		// are consumed whole and never leak into later categories.
		URL:         regexp.MustCompile(`https?://(?:[a-zA-Z]|[0-9]|[$-_@.&+]|[!*(),]|%[0-9a-fA-F])+`),
		Email:       regexp.MustCompile(`(?i)\b[A-Z0-9._%+-]+@[A-Z0-9.-]+\.[A-Z]{2,}\b`),
		Question:    regexp.MustCompile(`\?+`),
		Exclamation: regexp.MustCompile(`!+`),
		Mention:     regexp.MustCompile(`@\d{8,}`),
		Numbers:     regexp.MustCompile(`\d+`),

		// Covers onomatopoeic spellings across several languages
		// (hahaha, jejeje, kkkk, rsrs, hhh). Accepts a token at start of
		// string or after whitespace.
		Laughs: regexp.MustCompile(`(?i)(?:^|\s)((?:he|ha|hi|hu){2,}|(?:hh)+|(?:ja|je|ka|rs){2,}|k{2,})`),

		// Classic ASCII smileys with an optional hyphen nose.
		Emoticons: regexp.MustCompile(`\s*(:-?\)|:-?\(|:-?D)\s*`),
	}
}

// findAll returns every match of re in s. Always non-nil so empty span sets
// serialize as [] rather than null.
func findAll(re *regexp.Regexp, s string) []string {
	m := re.FindAllString(s, -1)
	if m == nil {
		return []string{}
	}
	return m
}

// findGroup returns submatch 1 of every match of re in s. Always non-nil.
func findGroup(re *regexp.Regexp, s string) []string {
	matches := re.FindAllStringSubmatch(s, -1)
	out := make([]string, 0, len(matches))
	for _, m := range matches {
		out = append(out, m[1])
	}
	return out
}
