package extract

import "regexp"

// userMessageRe splits a body into contact key and content at the first
// colon-whitespace separator. The contact key is non-greedy and confined to
// the first physical line, so a message whose content contains "text: more"
// later on is still split at the first occurrence.
var userMessageRe = regexp.MustCompile(`^(.*?):\s+([\s\S]+)`)

// EntryKind tags the result of classifying a raw entry.
type EntryKind int

const (
	// KindUserMessage is an entry of the shape "<contact>: <content>".
	KindUserMessage EntryKind = iota
	// KindSystemNotice is everything else: join/leave/icon-change events
	// and any body that matches no known shape. Nothing is ever dropped.
	KindSystemNotice
)

// ClassifiedEntry is a raw entry tagged as user message or system notice.
// ContactKey and Content are only meaningful for user messages; for system
// notices Content carries the body verbatim.
type ClassifiedEntry struct {
	Kind       EntryKind
	Timestamp  string
	ContactKey string
	Content    string
}

// Classify determines whether a raw entry is a user message or a system
// notice. The rule is syntactic, not semantic: presence of the first ": "
// separator decides.
func Classify(entry RawEntry) ClassifiedEntry {
	if m := userMessageRe.FindStringSubmatch(entry.Body); m != nil {
		return ClassifiedEntry{
			Kind:       KindUserMessage,
			Timestamp:  entry.Timestamp,
			ContactKey: m[1],
			Content:    m[2],
		}
	}

	return ClassifiedEntry{
		Kind:      KindSystemNotice,
		Timestamp: entry.Timestamp,
		Content:   entry.Body,
	}
}
