package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSortDayLabels(t *testing.T) {
	labels := []string{"Jan 5 2021", "Dec 31 2020", "Jan 1 2021"}
	SortDayLabels(labels)
	assert.Equal(t, []string{"Dec 31 2020", "Jan 1 2021", "Jan 5 2021"}, labels)
}

func TestSortDayLabelsNotLexical(t *testing.T) {
	labels := []string{"Jan 10 2021", "Apr 2 2021", "Jan 9 2021", "Feb 1 2021"}
	SortDayLabels(labels)
	assert.Equal(t, []string{"Jan 9 2021", "Jan 10 2021", "Feb 1 2021", "Apr 2 2021"}, labels)
}

func TestRollingAverage(t *testing.T) {
	values := make([]int, 35)
	for i := range values {
		values[i] = 10
	}
	values[20] = 40

	avg := RollingAverage(values, 30)
	require.Len(t, avg, 6)
	for start, v := range avg {
		if start <= 20 && 20 < start+30 {
			assert.Equal(t, 11.0, v)
		} else {
			assert.Equal(t, 10.0, v)
		}
	}
}

func TestRollingAverageWindowsWithoutSpike(t *testing.T) {
	values := make([]int, 40)
	for i := range values {
		values[i] = 10
	}
	values[0] = 40

	avg := RollingAverage(values, 30)
	require.Len(t, avg, 11)
	assert.Equal(t, 11.0, avg[0])
	for _, v := range avg[1:] {
		assert.Equal(t, 10.0, v)
	}
}

func TestRollingAverageShortInput(t *testing.T) {
	assert.Nil(t, RollingAverage([]int{1, 2, 3}, 30))
	assert.Nil(t, RollingAverage([]int{1, 2, 3}, 0))
	assert.Equal(t, []float64{2}, RollingAverage([]int{1, 2, 3}, 3))
}

func TestBuildDaySeries(t *testing.T) {
	freq := map[string]int{
		"Jan 2 2021":  4,
		"Dec 30 2020": 1,
		"Jan 1 2021":  3,
		"Dec 31 2020": 2,
	}

	series := BuildDaySeries(freq, 2)

	require.Len(t, series.Days, 4)
	assert.Equal(t, "Dec 30 2020", series.Days[0].Label)
	assert.Equal(t, "Jan 2 2021", series.Days[3].Label)
	assert.Equal(t, []string{"Dec 31 2020", "Jan 1 2021", "Jan 2 2021"}, series.Labels)
	assert.Equal(t, []float64{1.5, 2.5, 3.5}, series.Average)
	assert.Equal(t, []Tick{
		{Position: 0, Label: "Dec 2020"},
		{Position: 1, Label: "Jan 2021"},
	}, series.Ticks)
}

func TestBuildDaySeriesTooFewDays(t *testing.T) {
	series := BuildDaySeries(map[string]int{"Jan 1 2021": 1}, 30)
	assert.Len(t, series.Days, 1)
	assert.Empty(t, series.Labels)
	assert.Empty(t, series.Average)
}

func TestIsEmoji(t *testing.T) {
	tests := []struct {
		name string
		r    rune
		want bool
	}{
		{name: "smiley", r: '🙂', want: true},
		{name: "heart", r: '❤', want: true},
		{name: "ascii punctuation", r: '!', want: false},
		{name: "latin letter", r: 'é', want: false},
		{name: "cyrillic letter", r: 'Ж', want: false},
		{name: "variation selector", r: 0xFE0F, want: false},
		{name: "zero-width joiner", r: 0x200D, want: false},
		{name: "light skin tone", r: 0x1F3FB, want: false},
		{name: "em dash", r: '—', want: false},
		{name: "ideographic space", r: 0x3000, want: false},
		{name: "ellipsis counted by heuristic", r: '…', want: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, IsEmoji(tt.r))
		})
	}
}

func TestParticipantStatsIncludesSilentParticipants(t *testing.T) {
	c := NewConversation("corpus", Participants{Names: []string{"Alice", "Bob"}}, Participants{})
	c.AddMessage(Message{Stamp: "Fri Jan  1 10:00:00 2021", Kind: TextMessage, Content: "hey", Author: "Alice"})
	c.AddMessage(Message{Stamp: "Fri Jan  1 10:00:05 2021", Kind: TextMessage, Content: "hello", Author: "Alice"})

	stats := c.Summarize(DefaultAggregateOptions())

	require.Len(t, stats.Participants, 2)
	assert.Equal(t, "Alice", stats.Participants[0].Name)
	assert.Equal(t, 2, stats.Participants[0].Messages)
	assert.Equal(t, []int{3, 5}, stats.Participants[0].Lengths)
	assert.InDelta(t, 4.0, stats.Participants[0].Mean, 1e-9)
	assert.InDelta(t, 1.0, stats.Participants[0].StdDev, 1e-9)
	assert.Equal(t, "Bob", stats.Participants[1].Name)
	assert.Zero(t, stats.Participants[1].Messages)
}

func TestSummarizeOrdersWeekdaysAndHours(t *testing.T) {
	c := NewConversation("corpus", Participants{}, Participants{})
	c.AddMessage(Message{Stamp: "Sun Jan  3 23:00:00 2021", Kind: TextMessage, Author: "A", Platform: Discord})
	c.AddMessage(Message{Stamp: "Mon Jan  4 09:15:00 2021", Kind: PhotoMessage, Author: "A", Platform: Facebook})

	stats := c.Summarize(DefaultAggregateOptions())

	require.Len(t, stats.Weekdays, 7)
	assert.Equal(t, Bucket{Label: "Mon", Count: 1}, stats.Weekdays[0])
	assert.Equal(t, Bucket{Label: "Sun", Count: 1}, stats.Weekdays[6])
	assert.Equal(t, []Bucket{{Label: "09", Count: 1}, {Label: "23", Count: 1}}, stats.Hours)
	assert.Equal(t, PlatformCounts{Facebook: 1, Discord: 1, Total: 2}, stats.Counts)
	assert.Equal(t, Bucket{Label: "photo", Count: 1}, stats.Kinds[1])
}

func TestConversationFilter(t *testing.T) {
	base := time.Date(2021, 1, 1, 12, 0, 0, 0, time.UTC)
	c := NewConversation("corpus", Participants{}, Participants{})
	for i := 0; i < 3; i++ {
		c.AddMessage(Message{Time: base.Add(time.Duration(i) * time.Hour), Author: "A"})
	}

	from := base.Add(30 * time.Minute)
	filtered := c.Filter(&from, nil)
	assert.Len(t, filtered.Messages, 2)

	to := base.Add(90 * time.Minute)
	filtered = c.Filter(nil, &to)
	assert.Len(t, filtered.Messages, 2)

	assert.Len(t, c.Filter(nil, nil).Messages, 3)
}
