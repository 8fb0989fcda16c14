package model

import "strings"

// Period is the coarse time-of-day bucket a message falls into.
type Period string

const (
	PeriodDawn    Period = "Dawn"    // 00:00-05:59
	PeriodMorning Period = "Morning" // 06:00-11:59
	PeriodEvening Period = "Evening" // 12:00-17:59
	PeriodNight   Period = "Night"   // 18:00-23:59
)

// SubPeriod is the fine time-of-day bucket a message falls into.
type SubPeriod string

const (
	SubPeriodResting          SubPeriod = "Resting"             // 00:00-05:59
	SubPeriodTransportMorning SubPeriod = "Transport (morning)" // 06:00-08:59
	SubPeriodWorkMorning      SubPeriod = "Work (morning)"      // 09:00-11:59
	SubPeriodLunch            SubPeriod = "Lunch"               // 12:00-14:59
	SubPeriodWorkEvening      SubPeriod = "Work (evening)"      // 15:00-17:59
	SubPeriodTransportEvening SubPeriod = "Transport (evening)" // 18:00-20:59
	SubPeriodSecondOffice     SubPeriod = "Second Office Hour"  // 21:00-23:59
)

// PeriodOf buckets an hour of day (0-23) into a Period.
func PeriodOf(hour int) Period {
	switch {
	case hour < 6:
		return PeriodDawn
	case hour < 12:
		return PeriodMorning
	case hour < 18:
		return PeriodEvening
	default:
		return PeriodNight
	}
}

// SubPeriodOf buckets an hour of day (0-23) into a SubPeriod.
func SubPeriodOf(hour int) SubPeriod {
	switch {
	case hour < 6:
		return SubPeriodResting
	case hour < 9:
		return SubPeriodTransportMorning
	case hour < 12:
		return SubPeriodWorkMorning
	case hour < 15:
		return SubPeriodLunch
	case hour < 18:
		return SubPeriodWorkEvening
	case hour < 21:
		return SubPeriodTransportEvening
	default:
		return SubPeriodSecondOffice
	}
}

// MessageType classifies placeholder messages emitted by the exporting client.
type MessageType string

const (
	TypeDefault         MessageType = "default"
	TypeImageOmitted    MessageType = "image_omitted"
	TypeVideoOmitted    MessageType = "video_omitted"
	TypeAudioOmitted    MessageType = "audio_omitted"
	TypeStickerOmitted  MessageType = "sticker_omitted"
	TypeGIFOmitted      MessageType = "gif_omitted"
	TypeDocumentOmitted MessageType = "document_omitted"
	TypeDeletedMessage  MessageType = "deleted_message"
)

// exactPlaceholders are matched against the whole message content. Order
// matters: the first match wins.
var exactPlaceholders = []struct {
	literal string
	typ     MessageType
}{
	{"image omitted", TypeImageOmitted},
	{"video omitted", TypeVideoOmitted},
	{"audio omitted", TypeAudioOmitted},
	{"sticker omitted", TypeStickerOmitted},
	{"GIF omitted", TypeGIFOmitted},
	{"This message was deleted.", TypeDeletedMessage},
}

// TypeOf classifies message content against the known placeholder literals.
// Document placeholders carry the filename before the literal, so that one is
// a suffix match.
func TypeOf(content string) MessageType {
	for _, p := range exactPlaceholders {
		if content == p.literal {
			return p.typ
		}
	}
	if strings.HasSuffix(content, "document omitted") {
		return TypeDocumentOmitted
	}
	return TypeDefault
}
