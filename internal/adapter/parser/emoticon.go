package parser

import "strings"

var emoticons = map[string]string{
	":)":  "🙂",
	":D":  "😀",
	"^_^": "😊",
	"O:)": "😇",
	":*":  "😗",
	":P":  "😛",
	"8)":  "😎",
	"(y)": "👍",
	":(":  "😞",
	":/":  "😕",
	":'(": "😢",
	"o.O": "😳",
	"O.o": "😳",
	"-_-": "😑",
	":|":  "😐",
	"<3":  "❤️",
}

// RewriteEmoticons replaces whitespace-separated tokens that are exactly an
// ASCII emoticon with the matching emoji. Tokens are rejoined with single spaces.
func RewriteEmoticons(text string) string {
	tokens := strings.Fields(text)
	for i, tok := range tokens {
		if emoji, ok := emoticons[tok]; ok {
			tokens[i] = emoji
		}
	}
	return strings.Join(tokens, " ")
}
