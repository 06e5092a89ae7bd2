package domain

import (
	"sort"
	"unicode"
)

// EmojiCutoff is the smallest code point considered an emoji candidate.
// The test is a heuristic: some symbols above the cutoff are counted as emoji
// and it does not consult the Unicode emoji property tables.
const EmojiCutoff = 1000

// nonEmoji lists code points that sit next to emoji but are not emoji themselves:
// variation selector, zero-width joiner, typographic dashes and quotes, a skin tone modifier.
var nonEmoji = map[rune]struct{}{
	0xFE0F:  {},
	0x200D:  {},
	0x2013:  {},
	0x201E:  {},
	0x201C:  {},
	0x2019:  {},
	0x2014:  {},
	0x0652:  {},
	0x1F3FB: {},
}

// IsEmoji reports whether r is counted as an emoji.
func IsEmoji(r rune) bool {
	if isWordRune(r) || unicode.IsSpace(r) || r == ',' {
		return false
	}
	if r <= EmojiCutoff {
		return false
	}
	_, excluded := nonEmoji[r]
	return !excluded
}

type EmojiCount struct {
	Emoji string `json:"emoji" yaml:"emoji"`
	Count int    `json:"count" yaml:"count"`
}

type emojiCounter struct {
	counts map[string]int
	order  []string
}

func newEmojiCounter() *emojiCounter {
	return &emojiCounter{counts: make(map[string]int)}
}

func (e *emojiCounter) scan(text string) {
	for _, r := range text {
		if !IsEmoji(r) {
			continue
		}
		key := string(r)
		if _, seen := e.counts[key]; !seen {
			e.order = append(e.order, key)
		}
		e.counts[key]++
	}
}

func (e *emojiCounter) mostCommon(k int) []EmojiCount {
	ranked := make([]EmojiCount, 0, len(e.order))
	for _, key := range e.order {
		ranked = append(ranked, EmojiCount{Emoji: key, Count: e.counts[key]})
	}
	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].Count > ranked[j].Count
	})
	if k >= 0 && len(ranked) > k {
		ranked = ranked[:k]
	}
	return ranked
}
