package domain

import "io"

// CorpusLoader reads an export corpus directory into a Conversation.
type CorpusLoader interface {
	Load(corpusPath string) (*Conversation, error)
}

// StatsRenderer hands the aggregated statistics to an output writer.
type StatsRenderer interface {
	Render(w io.Writer, stats *Stats) error
}

// IngestObserver is notified as the loader walks a corpus.
type IngestObserver interface {
	FileIngested(p Platform)
	MessageIngested(p Platform, k Kind)
	MessageDropped(p Platform)
}

type nopObserver struct{}

func (nopObserver) FileIngested(Platform) {}
func (nopObserver) MessageIngested(Platform, Kind) {}
func (nopObserver) MessageDropped(Platform) {}

// NopObserver discards ingestion events.
var NopObserver IngestObserver = nopObserver{}
