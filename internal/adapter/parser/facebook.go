package parser

import (
	"encoding/json"
	"errors"
	"time"

	"github.com/TomasVenkrbec/Facebook-message-analyser/internal/domain"
)

var errMissingTimestamp = errors.New("message has no timestamp")

// facebookFormat reads Messenger "Download your information" JSON exports.
type facebookFormat struct {
	payloadClassifier
	clock Normalizer
}

func (facebookFormat) Platform() domain.Platform { return domain.Facebook }

func (facebookFormat) Detect(root map[string]json.RawMessage) bool {
	_, ok := root["participants"]
	return ok
}

func (facebookFormat) RepairText(lit json.RawMessage) (string, error) {
	var s string
	if err := json.Unmarshal(lit, &s); err != nil {
		return "", err
	}
	return repairLatin1(s)
}

func (f facebookFormat) NormalizeTimestamp(m *rawMessage) (time.Time, string, error) {
	if m.TimestampMS == nil {
		return time.Time{}, "", errMissingTimestamp
	}
	t, stamp := f.clock.FromUnixMilli(*m.TimestampMS)
	return t, stamp, nil
}

func (facebookFormat) Author(m *rawMessage) json.RawMessage {
	return m.SenderName
}
