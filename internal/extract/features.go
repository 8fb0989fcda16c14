package extract

import (
	"strings"
	"time"
	"unicode/utf8"

	"github.com/chatlex/chatlex/internal/model"
)

// Extractor computes the fixed feature battery for message content. It is a
// pure function of content and timestamp: no I/O, no cross-message state, so
// extraction is safe to run concurrently across messages.
type Extractor struct {
	patterns *Patterns
}

// NewExtractor creates an extractor with the given pattern set, or the
// default set if nil.
func NewExtractor(patterns *Patterns) *Extractor {
	if patterns == nil {
		patterns = DefaultPatterns()
	}
	return &Extractor{patterns: patterns}
}

// Extract runs the order-dependent feature pipeline over one message. Later
// steps operate on text already stripped of spans claimed by earlier steps,
// so substrings matching more than one category are not double-counted
// (digits inside a URL are not also "numbers").
func (e *Extractor) Extract(content string, createdAt time.Time) model.Features {
	p := e.patterns

	var f model.Features
	f.CharTotal = utf8.RuneCountInString(content)

	// Structural categories run against the original content, before
	// anything strips the text.
	f.Emoji = FindEmoji(content)
	f.Links = findAll(p.URL, content)
	f.Emails = findAll(p.Email, content)

	// Links are removed first and separately: marks and mentions must not
	// fire inside URL query strings.
	minusLinks := deleteSpans(content, f.Links)

	f.Questions = findAll(p.Question, minusLinks)
	f.Exclams = findAll(p.Exclamation, minusLinks)
	f.Calls = findAll(p.Mention, minusLinks)
	f.Numbers = findAll(p.Numbers, minusLinks)
	f.Laughs = findGroup(p.Laughs, minusLinks)
	f.Emoticons = findGroup(p.Emoticons, minusLinks)

	f.Marks = unionSpans(f.Questions, f.Exclams, f.Emoji, f.Emoticons)

	// Both reduced views are built from the original content, not from
	// minusLinks, so the two deletion passes stay independently auditable.
	f.NetText = deleteSpans(content, f.Calls, f.Links, f.Emails, f.Emoji)
	f.CoreText = deleteSpans(f.NetText, f.Laughs, f.Marks, f.Numbers)

	f.Type = model.TypeOf(content)
	f.DayPeriod = model.PeriodOf(createdAt.Hour())
	f.DaySubPeriod = model.SubPeriodOf(createdAt.Hour())

	return f
}

// deleteSpans removes each listed span from content once, left to right:
// first occurrence per span, plain substring removal. A span no longer
// present (already consumed by an earlier deletion) is skipped, so
// overlapping spans across categories never double-delete.
func deleteSpans(content string, spanSets ...[]string) string {
	for _, spans := range spanSets {
		for _, span := range spans {
			if span == "" {
				continue
			}
			if i := strings.Index(content, span); i >= 0 {
				content = content[:i] + content[i+len(span):]
			}
		}
	}
	return content
}

// unionSpans concatenates span sets preserving order of occurrence within
// each set. Always non-nil.
func unionSpans(spanSets ...[]string) []string {
	out := []string{}
	for _, spans := range spanSets {
		out = append(out, spans...)
	}
	return out
}
