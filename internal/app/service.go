package app

import (
	"fmt"
	"io"
	"time"

	"github.com/google/uuid"

	"github.com/TomasVenkrbec/Facebook-message-analyser/internal/domain"
	"github.com/TomasVenkrbec/Facebook-message-analyser/internal/logging"
)

// ApplicationName names the config directory and the binary.
const ApplicationName = "message-analyser"

// StatsService orchestrates the analysis pipeline.
type StatsService struct {
	loader   domain.CorpusLoader
	renderer domain.StatsRenderer
	opts     domain.AggregateOptions
	logger   *logging.Logger
}

func NewStatsService(loader domain.CorpusLoader, renderer domain.StatsRenderer, opts domain.AggregateOptions, logger *logging.Logger) *StatsService {
	if logger == nil {
		logger = logging.NewNop()
	}
	return &StatsService{
		loader:   loader,
		renderer: renderer,
		opts:     opts,
		logger:   logger,
	}
}

// Process runs the full pipeline: load → filter → aggregate → render.
func (s *StatsService) Process(corpusPath string, from, to *time.Time, w io.Writer) (*domain.Stats, error) {
	log := s.logger.With("run_id", uuid.NewString(), "path", corpusPath)
	start := time.Now()

	conv, err := s.loader.Load(corpusPath)
	if err != nil {
		return nil, fmt.Errorf("loading corpus: %w", err)
	}

	if from != nil || to != nil {
		conv = conv.Filter(from, to)
		log.Debugw("Applied time filter", "from", from, "to", to, "messages", len(conv.Messages))
	}

	stats := conv.Summarize(s.opts)
	log.Infow("Conversation analysed",
		"facebook_messages", stats.Counts.Facebook,
		"discord_messages", stats.Counts.Discord,
		"days", len(stats.Days.Days),
		"elapsed", time.Since(start))

	if err := s.renderer.Render(w, stats); err != nil {
		return nil, fmt.Errorf("rendering statistics: %w", err)
	}
	return stats, nil
}
