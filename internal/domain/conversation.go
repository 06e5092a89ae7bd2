package domain

import (
	"time"
	"unicode"
	"unicode/utf8"
)

// Participants holds the identities seen on one platform.
type Participants struct {
	Names []string `json:"names" yaml:"names"`
	// LastMessage is the stamp of the newest message in the export, if known.
	LastMessage string `json:"last_message,omitempty" yaml:"last_message,omitempty"`
}

// Conversation is one export corpus plus its derived frequency tables.
// Aggregates are computed on first access and dropped whenever a message is added.
type Conversation struct {
	Path     string
	Facebook Participants
	Discord  Participants
	Messages []Message

	weekday map[string]int
	hour    map[string]int
	day     map[string]int
	emoji   *emojiCounter
	count   map[string]int
	lengths map[string][]int
}

func NewConversation(path string, facebook, discord Participants) *Conversation {
	return &Conversation{
		Path:     path,
		Facebook: facebook,
		Discord:  discord,
	}
}

func (c *Conversation) AddMessage(m Message) {
	c.Messages = append(c.Messages, m)
	c.reset()
}

func (c *Conversation) reset() {
	c.weekday = nil
	c.hour = nil
	c.day = nil
	c.emoji = nil
	c.count = nil
	c.lengths = nil
}

// Filter returns a new Conversation containing only messages within the given time range.
// nil values for from/to mean no lower/upper bound.
func (c *Conversation) Filter(from, to *time.Time) *Conversation {
	filtered := NewConversation(c.Path, c.Facebook, c.Discord)
	for _, msg := range c.Messages {
		if from != nil && msg.Time.Before(*from) {
			continue
		}
		if to != nil && msg.Time.After(*to) {
			continue
		}
		filtered.Messages = append(filtered.Messages, msg)
	}
	return filtered
}

// CountByPlatform returns the number of messages ingested from p.
func (c *Conversation) CountByPlatform(p Platform) int {
	n := 0
	for i := range c.Messages {
		if c.Messages[i].Platform == p {
			n++
		}
	}
	return n
}

// CountByKind returns message totals keyed by content kind.
func (c *Conversation) CountByKind() map[Kind]int {
	counts := make(map[Kind]int)
	for i := range c.Messages {
		counts[c.Messages[i].Kind]++
	}
	return counts
}

// WeekdayFrequency counts messages per weekday abbreviation.
func (c *Conversation) WeekdayFrequency() map[string]int {
	if c.weekday == nil {
		c.weekday = c.histogram(func(f stampFields) string { return f.Weekday })
	}
	return c.weekday
}

// HourFrequency counts messages per two-digit hour of day.
func (c *Conversation) HourFrequency() map[string]int {
	if c.hour == nil {
		c.hour = c.histogram(func(f stampFields) string { return f.Hour })
	}
	return c.hour
}

// DayFrequency counts messages per calendar day, keyed "Mon D YYYY".
func (c *Conversation) DayFrequency() map[string]int {
	if c.day == nil {
		c.day = c.histogram(stampFields.DayLabel)
	}
	return c.day
}

func (c *Conversation) histogram(key func(stampFields) string) map[string]int {
	freq := make(map[string]int)
	for i := range c.Messages {
		f, ok := splitStamp(c.Messages[i].Stamp)
		if !ok {
			continue
		}
		freq[key(f)]++
	}
	return freq
}

// EmojiFrequency counts emoji characters across text messages.
func (c *Conversation) EmojiFrequency() map[string]int {
	return c.emojiCounter().counts
}

// TopEmoji returns the k most used emoji, most frequent first.
// Ties keep the order in which the emoji first appeared.
func (c *Conversation) TopEmoji(k int) []EmojiCount {
	return c.emojiCounter().mostCommon(k)
}

func (c *Conversation) emojiCounter() *emojiCounter {
	if c.emoji == nil {
		c.emoji = newEmojiCounter()
		for i := range c.Messages {
			if c.Messages[i].Kind != TextMessage {
				continue
			}
			c.emoji.scan(c.Messages[i].Content)
		}
	}
	return c.emoji
}

// ParticipantMessageCount counts messages of every kind per author.
func (c *Conversation) ParticipantMessageCount() map[string]int {
	if c.count == nil {
		c.count = make(map[string]int)
		for i := range c.Messages {
			c.count[c.Messages[i].Author]++
		}
	}
	return c.count
}

// ParticipantMessageLengths lists the character length of every text message per author.
func (c *Conversation) ParticipantMessageLengths() map[string][]int {
	if c.lengths == nil {
		c.lengths = make(map[string][]int)
		for i := range c.Messages {
			m := &c.Messages[i]
			if m.Kind != TextMessage {
				continue
			}
			c.lengths[m.Author] = append(c.lengths[m.Author], utf8.RuneCountInString(m.Content))
		}
	}
	return c.lengths
}

// isWordRune mirrors a Unicode-aware \w class.
func isWordRune(r rune) bool {
	return r == '_' || unicode.IsLetter(r) || unicode.IsNumber(r)
}
