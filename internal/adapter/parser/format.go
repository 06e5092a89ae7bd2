package parser

import (
	"bytes"
	"encoding/json"
	"time"

	"github.com/TomasVenkrbec/Facebook-message-analyser/internal/domain"
)

// exportFormat captures everything that differs between the two export schemas.
// One implementation is picked per file by detectFormat.
type exportFormat interface {
	Platform() domain.Platform
	// Detect reports whether the decoded root object uses this schema.
	Detect(root map[string]json.RawMessage) bool
	// RepairText decodes a JSON string literal and undoes the export's text corruption.
	RepairText(lit json.RawMessage) (string, error)
	NormalizeTimestamp(m *rawMessage) (time.Time, string, error)
	Author(m *rawMessage) json.RawMessage
	Classify(m *rawMessage) (domain.Kind, bool)
}

// rawMessage is the union of the message fields of both schemas.
type rawMessage struct {
	Content    json.RawMessage `json:"content"`
	Videos     json.RawMessage `json:"videos"`
	Photos     json.RawMessage `json:"photos"`
	Sticker    json.RawMessage `json:"sticker"`
	Gifs       json.RawMessage `json:"gifs"`
	Files      json.RawMessage `json:"files"`
	AudioFiles json.RawMessage `json:"audio_files"`
	IsUnsent   bool            `json:"is_unsent"`

	// Facebook
	TimestampMS *int64          `json:"timestamp_ms"`
	SenderName  json.RawMessage `json:"sender_name"`

	// Discord
	Timestamp string     `json:"timestamp"`
	Author    *rawAuthor `json:"author"`
}

type rawAuthor struct {
	Name     json.RawMessage `json:"name"`
	Nickname json.RawMessage `json:"nickname"`
}

var jsonNull = []byte("null")

func present(v json.RawMessage) bool {
	return len(v) > 0 && !bytes.Equal(v, jsonNull)
}

// payloadRules is evaluated in order; the first matching rule decides the kind.
// A captioned attachment therefore counts as text.
var payloadRules = []struct {
	kind    domain.Kind
	matches func(m *rawMessage) bool
}{
	{domain.TextMessage, func(m *rawMessage) bool { return present(m.Content) }},
	{domain.VideoMessage, func(m *rawMessage) bool { return present(m.Videos) }},
	{domain.PhotoMessage, func(m *rawMessage) bool { return present(m.Photos) }},
	{domain.StickerMessage, func(m *rawMessage) bool { return present(m.Sticker) }},
	{domain.GIFMessage, func(m *rawMessage) bool { return present(m.Gifs) }},
	{domain.FileMessage, func(m *rawMessage) bool { return present(m.Files) }},
	{domain.AudioMessage, func(m *rawMessage) bool { return present(m.AudioFiles) }},
	{domain.DeletedMessage, func(m *rawMessage) bool { return m.IsUnsent }},
}

// payloadClassifier provides the shared Classify for both formats.
type payloadClassifier struct{}

// Classify returns false for messages with no recognised payload; those are
// export artifacts and are dropped.
func (payloadClassifier) Classify(m *rawMessage) (domain.Kind, bool) {
	for _, rule := range payloadRules {
		if rule.matches(m) {
			return rule.kind, true
		}
	}
	return 0, false
}

func newFormats(n Normalizer) []exportFormat {
	return []exportFormat{
		discordFormat{clock: n},
		facebookFormat{clock: n},
	}
}

func detectFormat(formats []exportFormat, root map[string]json.RawMessage) (exportFormat, bool) {
	for _, f := range formats {
		if f.Detect(root) {
			return f, true
		}
	}
	return nil, false
}
