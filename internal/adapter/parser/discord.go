package parser

import (
	"encoding/json"
	"time"

	"github.com/TomasVenkrbec/Facebook-message-analyser/internal/domain"
)

// discordFormat reads DiscordChatExporter JSON exports.
type discordFormat struct {
	payloadClassifier
	clock Normalizer
}

func (discordFormat) Platform() domain.Platform { return domain.Discord }

func (discordFormat) Detect(root map[string]json.RawMessage) bool {
	_, ok := root["channel"]
	return ok
}

func (discordFormat) RepairText(lit json.RawMessage) (string, error) {
	return repairUTF16(lit)
}

func (f discordFormat) NormalizeTimestamp(m *rawMessage) (time.Time, string, error) {
	if m.Timestamp == "" {
		return time.Time{}, "", errMissingTimestamp
	}
	return f.clock.FromISO8601(m.Timestamp)
}

// Author prefers the server nickname and falls back to the account name.
func (discordFormat) Author(m *rawMessage) json.RawMessage {
	if m.Author == nil {
		return nil
	}
	if present(m.Author.Nickname) {
		return m.Author.Nickname
	}
	return m.Author.Name
}
