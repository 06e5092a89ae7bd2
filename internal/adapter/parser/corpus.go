package parser

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/TomasVenkrbec/Facebook-message-analyser/internal/domain"
	"github.com/TomasVenkrbec/Facebook-message-analyser/internal/logging"
)

// DefaultMetadataFile is the first part of a Facebook export. Its participant
// list and newest message describe the conversation.
const DefaultMetadataFile = "message_1.json"

var errNotDir = errors.New("not a directory")

// CorpusLoader reads a directory of Facebook and Discord JSON exports.
type CorpusLoader struct {
	// MetadataFile is the Facebook export file read for participants.
	MetadataFile string

	formats  []exportFormat
	logger   *logging.Logger
	observer domain.IngestObserver
}

// NewCorpusLoader creates a loader rendering timestamps in loc (nil for the
// host's zone). logger and observer may be nil.
func NewCorpusLoader(loc *time.Location, logger *logging.Logger, observer domain.IngestObserver) *CorpusLoader {
	if logger == nil {
		logger = logging.NewNop()
	}
	if observer == nil {
		observer = domain.NopObserver
	}
	return &CorpusLoader{
		MetadataFile: DefaultMetadataFile,
		formats:      newFormats(NewNormalizer(loc)),
		logger:       logger,
		observer:     observer,
	}
}

// Load reads every *.json file in corpusPath in natural name order and returns
// the resulting Conversation. Any unreadable, unrecognised or corrupt file
// aborts the whole load. A .zip export is extracted first.
func (l *CorpusLoader) Load(corpusPath string) (*domain.Conversation, error) {
	if isArchive(corpusPath) {
		return l.loadArchive(corpusPath)
	}
	return l.loadDir(corpusPath)
}

func (l *CorpusLoader) loadDir(corpusPath string) (*domain.Conversation, error) {
	if err := l.verifyPath(corpusPath); err != nil {
		return nil, err
	}

	files, err := listExports(corpusPath)
	if err != nil {
		return nil, &domain.PathError{Path: corpusPath, Err: err}
	}

	conv, err := l.LoadMetadata(corpusPath, files)
	if err != nil {
		return nil, err
	}

	for _, name := range files {
		if err := l.ingestFile(conv, filepath.Join(corpusPath, name)); err != nil {
			return nil, err
		}
	}

	l.logger.Infow("Corpus loaded",
		"path", corpusPath,
		"files", len(files),
		"messages", len(conv.Messages))
	return conv, nil
}

func (l *CorpusLoader) verifyPath(corpusPath string) error {
	info, err := os.Stat(corpusPath)
	if err != nil {
		return &domain.PathError{Path: corpusPath, Err: err}
	}
	if !info.IsDir() {
		return &domain.PathError{Path: corpusPath, Err: errNotDir}
	}

	metadataPath := filepath.Join(corpusPath, l.MetadataFile)
	if _, err := os.Stat(metadataPath); err != nil {
		return &domain.PathError{Path: metadataPath, Err: err}
	}
	return nil
}

func listExports(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, err
	}

	var names []string
	for _, e := range entries {
		if !e.IsDir() && strings.HasSuffix(strings.ToLower(e.Name()), ".json") {
			names = append(names, e.Name())
		}
	}
	sortNatural(names)
	return names, nil
}

// LoadMetadata builds an empty Conversation carrying both platforms'
// participant lists. Facebook participants come from the metadata file,
// Discord participants from the first Discord export among files.
func (l *CorpusLoader) LoadMetadata(corpusPath string, files []string) (*domain.Conversation, error) {
	facebook, err := l.facebookMetadata(filepath.Join(corpusPath, l.MetadataFile))
	if err != nil {
		return nil, err
	}

	var discord domain.Participants
	for _, name := range files {
		if name == l.MetadataFile {
			continue
		}
		path := filepath.Join(corpusPath, name)
		f, root, err := l.readExport(path)
		if err != nil {
			return nil, err
		}
		if f.Platform() != domain.Discord {
			continue
		}
		if discord, err = l.discordMetadata(f, path, root); err != nil {
			return nil, err
		}
		break
	}

	l.logger.Debugw("Conversation metadata",
		"facebook_participants", facebook.Names,
		"facebook_last_message", facebook.LastMessage,
		"discord_participants", discord.Names,
		"discord_last_message", discord.LastMessage)

	return domain.NewConversation(corpusPath, facebook, discord), nil
}

func (l *CorpusLoader) facebookMetadata(path string) (domain.Participants, error) {
	f, root, err := l.readExport(path)
	if err != nil {
		return domain.Participants{}, err
	}
	if f.Platform() != domain.Facebook {
		return domain.Participants{}, &domain.FormatError{File: path, Reason: "metadata file is not a Facebook export"}
	}

	var participants []struct {
		Name json.RawMessage `json:"name"`
	}
	if err := json.Unmarshal(root["participants"], &participants); err != nil {
		return domain.Participants{}, &domain.FormatError{File: path, Reason: "malformed participants", Err: err}
	}

	var meta domain.Participants
	for _, p := range participants {
		name, err := repairOptional(f, p.Name)
		if err != nil {
			return domain.Participants{}, &domain.EncodingError{File: path, Field: "participants.name", Index: -1, Err: err}
		}
		meta.Names = append(meta.Names, name)
	}

	msgs, err := decodeMessages(path, root)
	if err != nil {
		return domain.Participants{}, err
	}
	// Facebook lists the newest message first.
	if len(msgs) > 0 {
		if _, stamp, err := f.NormalizeTimestamp(&msgs[0]); err == nil {
			meta.LastMessage = stamp
		}
	}
	return meta, nil
}

func (l *CorpusLoader) discordMetadata(f exportFormat, path string, root map[string]json.RawMessage) (domain.Participants, error) {
	msgs, err := decodeMessages(path, root)
	if err != nil {
		return domain.Participants{}, err
	}

	seen := make(map[string]struct{})
	var meta domain.Participants
	for i := range msgs {
		name, err := repairOptional(f, f.Author(&msgs[i]))
		if err != nil {
			return domain.Participants{}, &domain.EncodingError{File: path, Field: "author", Index: i, Err: err}
		}
		if _, ok := seen[name]; ok || name == "" {
			continue
		}
		seen[name] = struct{}{}
		meta.Names = append(meta.Names, name)
	}
	sort.Strings(meta.Names)

	// Discord lists the newest message last.
	if len(msgs) > 0 {
		if _, stamp, err := f.NormalizeTimestamp(&msgs[len(msgs)-1]); err == nil {
			meta.LastMessage = stamp
		}
	}
	return meta, nil
}

func (l *CorpusLoader) readExport(path string) (exportFormat, map[string]json.RawMessage, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, nil, fmt.Errorf("reading %s: %w", path, err)
	}

	var root map[string]json.RawMessage
	if err := json.Unmarshal(data, &root); err != nil {
		return nil, nil, &domain.FormatError{File: path, Reason: "not a JSON object", Err: err}
	}

	f, ok := detectFormat(l.formats, root)
	if !ok {
		return nil, nil, &domain.FormatError{File: path, Reason: `root has neither "channel" nor "participants"`}
	}
	return f, root, nil
}

func decodeMessages(path string, root map[string]json.RawMessage) ([]rawMessage, error) {
	raw, ok := root["messages"]
	if !ok {
		return nil, &domain.FormatError{File: path, Reason: "missing messages", Err: domain.ErrNoMessages}
	}
	var msgs []rawMessage
	if err := json.Unmarshal(raw, &msgs); err != nil {
		return nil, &domain.FormatError{File: path, Reason: "malformed messages", Err: err}
	}
	return msgs, nil
}

func (l *CorpusLoader) ingestFile(conv *domain.Conversation, path string) error {
	f, root, err := l.readExport(path)
	if err != nil {
		return err
	}
	msgs, err := decodeMessages(path, root)
	if err != nil {
		return err
	}

	platform := f.Platform()
	added, dropped := 0, 0
	for i := range msgs {
		msg, ok, err := toMessage(f, &msgs[i], path, i)
		if err != nil {
			return err
		}
		if !ok {
			dropped++
			l.observer.MessageDropped(platform)
			continue
		}
		conv.AddMessage(msg)
		added++
		l.observer.MessageIngested(platform, msg.Kind)
	}
	l.observer.FileIngested(platform)

	l.logger.Debugw("Ingested export file",
		"file", filepath.Base(path),
		"platform", platform,
		"messages", added,
		"dropped", dropped)
	return nil
}

// toMessage returns ok=false for messages without a recognised payload.
func toMessage(f exportFormat, m *rawMessage, path string, index int) (domain.Message, bool, error) {
	kind, ok := f.Classify(m)
	if !ok {
		return domain.Message{}, false, nil
	}

	var content string
	if kind == domain.TextMessage {
		text, err := f.RepairText(m.Content)
		if err != nil {
			return domain.Message{}, false, &domain.EncodingError{File: path, Field: "content", Index: index, Err: err}
		}
		content = RewriteEmoticons(text)
	}

	author, err := repairOptional(f, f.Author(m))
	if err != nil {
		return domain.Message{}, false, &domain.EncodingError{File: path, Field: "author", Index: index, Err: err}
	}

	t, stamp, err := f.NormalizeTimestamp(m)
	if err != nil {
		return domain.Message{}, false, &domain.FormatError{File: path, Reason: fmt.Sprintf("message %d", index), Err: err}
	}

	return domain.Message{
		Stamp:    stamp,
		Time:     t,
		Kind:     kind,
		Content:  content,
		Author:   author,
		Platform: f.Platform(),
	}, true, nil
}

func repairOptional(f exportFormat, lit json.RawMessage) (string, error) {
	if !present(lit) {
		return "", nil
	}
	return f.RepairText(lit)
}
