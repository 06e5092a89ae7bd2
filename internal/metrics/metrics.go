package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/TomasVenkrbec/Facebook-message-analyser/internal/domain"
)

// Recorder collects ingestion counters for one run. Batch runs have no
// scrape endpoint, so the registry is written to a node-exporter textfile.
type Recorder struct {
	registry *prometheus.Registry

	FilesIngested    *prometheus.CounterVec
	MessagesIngested *prometheus.CounterVec
	MessagesDropped  *prometheus.CounterVec
	RunDuration      prometheus.Gauge
	LastRun          prometheus.Gauge
}

func NewRecorder() *Recorder {
	r := &Recorder{
		registry: prometheus.NewRegistry(),
		FilesIngested: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "message_analyser_files_ingested_total",
				Help: "Export files ingested",
			},
			[]string{"platform"},
		),
		MessagesIngested: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "message_analyser_messages_ingested_total",
				Help: "Messages added to the conversation",
			},
			[]string{"platform", "kind"},
		),
		MessagesDropped: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "message_analyser_messages_dropped_total",
				Help: "Messages without a recognised payload",
			},
			[]string{"platform"},
		),
		RunDuration: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "message_analyser_run_duration_seconds",
			Help: "Wall time of the last analysis run",
		}),
		LastRun: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "message_analyser_last_run_timestamp_seconds",
			Help: "Unix time the last analysis run finished",
		}),
	}
	r.registry.MustRegister(r.FilesIngested, r.MessagesIngested, r.MessagesDropped, r.RunDuration, r.LastRun)
	return r
}

func (r *Recorder) FileIngested(p domain.Platform) {
	r.FilesIngested.WithLabelValues(string(p)).Inc()
}

func (r *Recorder) MessageIngested(p domain.Platform, k domain.Kind) {
	r.MessagesIngested.WithLabelValues(string(p), k.String()).Inc()
}

func (r *Recorder) MessageDropped(p domain.Platform) {
	r.MessagesDropped.WithLabelValues(string(p)).Inc()
}

// ObserveRun records the duration of a finished run.
func (r *Recorder) ObserveRun(d time.Duration, finished time.Time) {
	r.RunDuration.Set(d.Seconds())
	r.LastRun.Set(float64(finished.Unix()))
}

func (r *Recorder) Gatherer() prometheus.Gatherer {
	return r.registry
}

// WriteTextfile writes the registry in text exposition format to path.
func (r *Recorder) WriteTextfile(path string) error {
	return prometheus.WriteToTextfile(path, r.registry)
}
