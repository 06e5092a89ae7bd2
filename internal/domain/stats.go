package domain

import (
	"math"
	"sort"
	"strconv"
	"strings"
)

// AggregateOptions holds the fixed parameters of the statistics pass.
type AggregateOptions struct {
	RollingWindow int
	TopEmoji      int
}

func DefaultAggregateOptions() AggregateOptions {
	return AggregateOptions{
		RollingWindow: 30,
		TopEmoji:      20,
	}
}

type Bucket struct {
	Label string `json:"label" yaml:"label"`
	Count int    `json:"count" yaml:"count"`
}

// Tick marks the first position of a "Mon YYYY" label in a day series.
type Tick struct {
	Position int    `json:"position" yaml:"position"`
	Label    string `json:"label" yaml:"label"`
}

// DaySeries is the chronologically ordered calendar-day histogram
// and its rolling average. Labels and Average have equal length.
type DaySeries struct {
	Days    []Bucket  `json:"days" yaml:"days"`
	Window  int       `json:"window" yaml:"window"`
	Labels  []string  `json:"labels" yaml:"labels"`
	Average []float64 `json:"average" yaml:"average"`
	Ticks   []Tick    `json:"ticks" yaml:"ticks"`
}

type ParticipantStats struct {
	Name     string  `json:"name" yaml:"name"`
	Messages int     `json:"messages" yaml:"messages"`
	Lengths  []int   `json:"lengths" yaml:"lengths"`
	Mean     float64 `json:"mean_length" yaml:"mean_length"`
	StdDev   float64 `json:"stddev_length" yaml:"stddev_length"`
}

type PlatformCounts struct {
	Facebook int `json:"facebook" yaml:"facebook"`
	Discord  int `json:"discord" yaml:"discord"`
	Total    int `json:"total" yaml:"total"`
}

// Stats is the plain-data view of a Conversation handed to renderers.
type Stats struct {
	Path         string             `json:"path" yaml:"path"`
	Facebook     Participants       `json:"facebook" yaml:"facebook"`
	Discord      Participants       `json:"discord" yaml:"discord"`
	Counts       PlatformCounts     `json:"counts" yaml:"counts"`
	Kinds        []Bucket           `json:"kinds" yaml:"kinds"`
	Weekdays     []Bucket           `json:"weekdays" yaml:"weekdays"`
	Hours        []Bucket           `json:"hours" yaml:"hours"`
	Days         DaySeries          `json:"days" yaml:"days"`
	Emoji        []EmojiCount       `json:"emoji" yaml:"emoji"`
	Participants []ParticipantStats `json:"participants" yaml:"participants"`
}

// Summarize runs every aggregation and returns ordered, render-ready data.
func (c *Conversation) Summarize(opts AggregateOptions) *Stats {
	s := &Stats{
		Path:     c.Path,
		Facebook: c.Facebook,
		Discord:  c.Discord,
		Counts: PlatformCounts{
			Facebook: c.CountByPlatform(Facebook),
			Discord:  c.CountByPlatform(Discord),
			Total:    len(c.Messages),
		},
	}

	kinds := c.CountByKind()
	for _, k := range Kinds {
		s.Kinds = append(s.Kinds, Bucket{Label: k.String(), Count: kinds[k]})
	}

	weekdays := c.WeekdayFrequency()
	for _, d := range Weekdays {
		s.Weekdays = append(s.Weekdays, Bucket{Label: d, Count: weekdays[d]})
	}

	s.Hours = sortedBuckets(c.HourFrequency())
	s.Days = BuildDaySeries(c.DayFrequency(), opts.RollingWindow)
	s.Emoji = c.TopEmoji(opts.TopEmoji)
	s.Participants = c.participantStats()
	return s
}

func (c *Conversation) participantStats() []ParticipantStats {
	counts := c.ParticipantMessageCount()
	lengths := c.ParticipantMessageLengths()

	names := make(map[string]struct{})
	for _, n := range c.Facebook.Names {
		names[n] = struct{}{}
	}
	for _, n := range c.Discord.Names {
		names[n] = struct{}{}
	}
	for n := range counts {
		names[n] = struct{}{}
	}

	stats := make([]ParticipantStats, 0, len(names))
	for n := range names {
		mean, std := meanStdDev(lengths[n])
		stats = append(stats, ParticipantStats{
			Name:     n,
			Messages: counts[n],
			Lengths:  lengths[n],
			Mean:     mean,
			StdDev:   std,
		})
	}
	sort.Slice(stats, func(i, j int) bool { return stats[i].Name < stats[j].Name })
	return stats
}

// meanStdDev returns the mean and population standard deviation of samples.
func meanStdDev(samples []int) (float64, float64) {
	if len(samples) == 0 {
		return 0, 0
	}
	var sum float64
	for _, v := range samples {
		sum += float64(v)
	}
	mean := sum / float64(len(samples))
	var sq float64
	for _, v := range samples {
		d := float64(v) - mean
		sq += d * d
	}
	return mean, math.Sqrt(sq / float64(len(samples)))
}

func sortedBuckets(freq map[string]int) []Bucket {
	buckets := make([]Bucket, 0, len(freq))
	for k, v := range freq {
		buckets = append(buckets, Bucket{Label: k, Count: v})
	}
	sort.Slice(buckets, func(i, j int) bool { return buckets[i].Label < buckets[j].Label })
	return buckets
}

// BuildDaySeries orders the calendar-day histogram and attaches its rolling average.
func BuildDaySeries(freq map[string]int, window int) DaySeries {
	labels := make([]string, 0, len(freq))
	for k := range freq {
		labels = append(labels, k)
	}
	SortDayLabels(labels)

	series := DaySeries{Window: window}
	counts := make([]int, len(labels))
	for i, l := range labels {
		counts[i] = freq[l]
		series.Days = append(series.Days, Bucket{Label: l, Count: freq[l]})
	}

	series.Average = RollingAverage(counts, window)
	if len(series.Average) > 0 {
		series.Labels = labels[window-1:]
	}
	series.Ticks = monthTicks(series.Labels)
	return series
}

type dayKey struct {
	year, month, day int
}

func parseDayLabel(label string) dayKey {
	parts := strings.Fields(label)
	if len(parts) != 3 {
		return dayKey{}
	}
	var k dayKey
	k.year, _ = strconv.Atoi(parts[2])
	k.day, _ = strconv.Atoi(parts[1])
	for i, m := range Months {
		if m == parts[0] {
			k.month = i + 1
			break
		}
	}
	return k
}

// SortDayLabels orders "Mon D YYYY" labels chronologically.
func SortDayLabels(labels []string) {
	sort.SliceStable(labels, func(i, j int) bool {
		a, b := parseDayLabel(labels[i]), parseDayLabel(labels[j])
		if a.year != b.year {
			return a.year < b.year
		}
		if a.month != b.month {
			return a.month < b.month
		}
		return a.day < b.day
	})
}

// RollingAverage is the valid-mode convolution of values with a uniform
// kernel of the given width, divided by the width. It returns
// len(values)-window+1 points, or nil when there are fewer values than window.
func RollingAverage(values []int, window int) []float64 {
	if window <= 0 || len(values) < window {
		return nil
	}
	out := make([]float64, 0, len(values)-window+1)
	sum := 0
	for i, v := range values {
		sum += v
		if i >= window {
			sum -= values[i-window]
		}
		if i >= window-1 {
			out = append(out, float64(sum)/float64(window))
		}
	}
	return out
}

func monthTicks(labels []string) []Tick {
	var ticks []Tick
	seen := make(map[string]bool)
	for i, l := range labels {
		parts := strings.Fields(l)
		if len(parts) != 3 {
			continue
		}
		month := parts[0] + " " + parts[2]
		if seen[month] {
			continue
		}
		seen[month] = true
		ticks = append(ticks, Tick{Position: i, Label: month})
	}
	return ticks
}
