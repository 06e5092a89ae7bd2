package renderer

import (
	"encoding/json"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"

	"github.com/TomasVenkrbec/Facebook-message-analyser/internal/domain"
)

// JSONRenderer writes the statistics as indented JSON for plotting tools.
type JSONRenderer struct{}

func (JSONRenderer) Render(w io.Writer, stats *domain.Stats) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	enc.SetEscapeHTML(false)
	return enc.Encode(stats)
}

// YAMLRenderer writes the statistics as YAML.
type YAMLRenderer struct{}

func (YAMLRenderer) Render(w io.Writer, stats *domain.Stats) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(stats); err != nil {
		return err
	}
	return enc.Close()
}

// Formats lists the accepted output format names.
var Formats = []string{"text", "markdown", "json", "yaml"}

// New returns the renderer for an output format name.
func New(format string) (domain.StatsRenderer, error) {
	switch format {
	case "", "text":
		return &TextRenderer{}, nil
	case "markdown":
		return &TextRenderer{Markdown: true}, nil
	case "json":
		return JSONRenderer{}, nil
	case "yaml":
		return YAMLRenderer{}, nil
	default:
		return nil, fmt.Errorf("unknown output format %q (expected one of %v)", format, Formats)
	}
}
