package metrics

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/TomasVenkrbec/Facebook-message-analyser/internal/domain"
)

func TestRecorderCounts(t *testing.T) {
	r := NewRecorder()
	r.FileIngested(domain.Facebook)
	r.MessageIngested(domain.Facebook, domain.TextMessage)
	r.MessageIngested(domain.Facebook, domain.TextMessage)
	r.MessageIngested(domain.Discord, domain.PhotoMessage)
	r.MessageDropped(domain.Facebook)

	assert.Equal(t, 1.0, testutil.ToFloat64(r.FilesIngested.WithLabelValues("facebook")))
	assert.Equal(t, 2.0, testutil.ToFloat64(r.MessagesIngested.WithLabelValues("facebook", "text")))
	assert.Equal(t, 1.0, testutil.ToFloat64(r.MessagesIngested.WithLabelValues("discord", "photo")))
	assert.Equal(t, 1.0, testutil.ToFloat64(r.MessagesDropped.WithLabelValues("facebook")))

	series, err := testutil.GatherAndCount(r.Gatherer(), "message_analyser_messages_ingested_total")
	require.NoError(t, err)
	assert.Equal(t, 2, series)
}

func TestWriteTextfile(t *testing.T) {
	r := NewRecorder()
	r.MessageIngested(domain.Discord, domain.TextMessage)
	r.ObserveRun(1500*time.Millisecond, time.Unix(1700000000, 0))

	path := filepath.Join(t.TempDir(), "message_analyser.prom")
	require.NoError(t, r.WriteTextfile(path))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), `message_analyser_messages_ingested_total{kind="text",platform="discord"} 1`)
	assert.Contains(t, string(data), "message_analyser_run_duration_seconds 1.5")
	assert.Contains(t, string(data), "# TYPE message_analyser_last_run_timestamp_seconds gauge")
}
