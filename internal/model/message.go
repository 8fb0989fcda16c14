package model

import (
	"fmt"
	"time"
)

// timeLayouts are the timestamp layouts the exporting client is known to emit.
var timeLayouts = []string{
	"02/01/06 15:04:05",
	"02/01/2006 15:04:05",
}

// ParseTime converts a transcript timestamp string into a time.Time. The
// two-digit-year layout is tried first; a parse only counts if the resulting
// year is plausible for a chat export.
func ParseTime(s string) (time.Time, error) {
	for _, layout := range timeLayouts {
		t, err := time.Parse(layout, s)
		if err != nil {
			continue
		}
		if t.Year() >= 2000 && t.Year() <= 2100 {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("cannot parse timestamp %q", s)
}

// Features is the fixed battery of lexical data derived from one message.
// Every field is populated at construction time and never mutated afterward.
type Features struct {
	CharTotal int `json:"qty_char_total" yaml:"qty_char_total"`

	Emoji     []string `json:"qty_char_emoji" yaml:"qty_char_emoji"`
	Links     []string `json:"qty_char_links" yaml:"qty_char_links"`
	Emails    []string `json:"qty_char_emails" yaml:"qty_char_emails"`
	Questions []string `json:"qty_char_question" yaml:"qty_char_question"`
	Exclams   []string `json:"qty_char_exclamation" yaml:"qty_char_exclamation"`
	Calls     []string `json:"qty_char_calls" yaml:"qty_char_calls"`
	Numbers   []string `json:"qty_char_numbers" yaml:"qty_char_numbers"`
	Laughs    []string `json:"qty_char_laughs" yaml:"qty_char_laughs"`
	Emoticons []string `json:"qty_char_emoticons" yaml:"qty_char_emoticons"`
	Marks     []string `json:"qty_char_marks" yaml:"qty_char_marks"`

	NetText  string `json:"qty_char_net" yaml:"qty_char_net"`
	CoreText string `json:"qty_char_text" yaml:"qty_char_text"`

	Type         MessageType `json:"type" yaml:"type"`
	DayPeriod    Period      `json:"day_period" yaml:"day_period"`
	DaySubPeriod SubPeriod   `json:"day_sub_period" yaml:"day_sub_period"`
}

// Actor is one chat participant. DisplayName is a pseudonym, never the raw
// contact identifier from the transcript.
type Actor struct {
	contactKey  string
	DisplayName string
	Messages    []*Message
}

// NewActor creates an actor for the given raw contact key and resolved
// pseudonym.
func NewActor(contactKey, displayName string) *Actor {
	return &Actor{contactKey: contactKey, DisplayName: displayName}
}

// ContactKey returns the raw transcript identifier. It is kept unexported from
// serialization on purpose: downstream consumers only ever see DisplayName.
func (a *Actor) ContactKey() string { return a.contactKey }

func (a *Actor) String() string {
	return fmt.Sprintf("<Actor %s messages=%d>", a.DisplayName, len(a.Messages))
}

// Message is one user-sent entry. Content is the original text, unmodified;
// all derived views live in Features. Immutable once constructed.
type Message struct {
	Actor     *Actor
	Content   string
	CreatedAt time.Time
	Features  Features
}

// SystemMessage is a system/event notice (join, leave, icon change, ...).
// Structurally distinct from Message: no actor, no feature battery.
type SystemMessage struct {
	Content   string
	CreatedAt time.Time
}
