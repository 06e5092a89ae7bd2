package domain

import "time"

// Kind classifies the payload of a message.
type Kind int

const (
	TextMessage Kind = iota
	PhotoMessage
	VideoMessage
	StickerMessage
	GIFMessage
	FileMessage
	AudioMessage
	DeletedMessage
)

// Kinds lists every message kind in declaration order.
var Kinds = []Kind{
	TextMessage,
	PhotoMessage,
	VideoMessage,
	StickerMessage,
	GIFMessage,
	FileMessage,
	AudioMessage,
	DeletedMessage,
}

func (k Kind) String() string {
	switch k {
	case TextMessage:
		return "text"
	case PhotoMessage:
		return "photo"
	case VideoMessage:
		return "video"
	case StickerMessage:
		return "sticker"
	case GIFMessage:
		return "gif"
	case FileMessage:
		return "file"
	case AudioMessage:
		return "audio"
	case DeletedMessage:
		return "deleted"
	default:
		return "unknown"
	}
}

// Platform identifies the service an export was produced by.
type Platform string

const (
	Facebook Platform = "facebook"
	Discord  Platform = "discord"
)

type Message struct {
	// Stamp is the local wall-clock time rendered with StampLayout.
	// Aggregation reads it positionally.
	Stamp    string
	Time     time.Time
	Kind     Kind
	Content  string // Empty unless Kind is TextMessage
	Author   string
	Platform Platform
}
