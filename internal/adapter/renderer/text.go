package renderer

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/TomasVenkrbec/Facebook-message-analyser/internal/domain"
)

const defaultBarWidth = 40

// TextRenderer renders statistics as a terminal report, or as Markdown.
type TextRenderer struct {
	Markdown bool
	// BarWidth is the length of the longest histogram bar.
	BarWidth int
}

type textStyles struct {
	title lipgloss.Style
	label lipgloss.Style
	bar   lipgloss.Style
	muted lipgloss.Style
}

func newTextStyles(r *lipgloss.Renderer) textStyles {
	return textStyles{
		title: r.NewStyle().Bold(true).Foreground(lipgloss.Color("#7C3AED")),
		label: r.NewStyle().Foreground(lipgloss.Color("#06B6D4")),
		bar:   r.NewStyle().Foreground(lipgloss.Color("#10B981")),
		muted: r.NewStyle().Foreground(lipgloss.Color("#6B7280")),
	}
}

func (r *TextRenderer) Render(w io.Writer, stats *domain.Stats) error {
	st := newTextStyles(lipgloss.NewRenderer(w))
	var b strings.Builder

	r.heading(&b, st, "Conversation "+stats.Path)
	r.participants(&b, st, "Facebook", stats.Facebook)
	r.participants(&b, st, "Discord", stats.Discord)

	r.heading(&b, st, "Message count")
	r.table(&b, st, []string{"Platform", "Messages"}, [][]string{
		{"Facebook", strconv.Itoa(stats.Counts.Facebook)},
		{"Discord", strconv.Itoa(stats.Counts.Discord)},
		{"Total", strconv.Itoa(stats.Counts.Total)},
	})

	r.heading(&b, st, "Message kinds")
	r.histogram(&b, st, stats.Kinds)

	r.heading(&b, st, "Message frequency during weekdays")
	r.histogram(&b, st, stats.Weekdays)

	r.heading(&b, st, "Message frequency during hours of day")
	r.histogram(&b, st, stats.Hours)

	r.heading(&b, st, fmt.Sprintf("Message frequency over time (%d-day rolling average)", stats.Days.Window))
	r.daySeries(&b, st, stats.Days)

	r.heading(&b, st, "Conversation participants")
	rows := make([][]string, 0, len(stats.Participants))
	for _, p := range stats.Participants {
		rows = append(rows, []string{
			p.Name,
			strconv.Itoa(p.Messages),
			strconv.FormatFloat(p.Mean, 'f', 1, 64),
			strconv.FormatFloat(p.StdDev, 'f', 1, 64),
		})
	}
	r.table(&b, st, []string{"Participant", "Messages", "Mean length", "Std dev"}, rows)

	r.heading(&b, st, "Emoji usage")
	r.emoji(&b, st, stats.Emoji)

	_, err := io.WriteString(w, b.String())
	return err
}

func (r *TextRenderer) heading(b *strings.Builder, st textStyles, title string) {
	if b.Len() > 0 {
		b.WriteString("\n")
	}
	if r.Markdown {
		b.WriteString("## " + title + "\n\n")
		return
	}
	b.WriteString(st.title.Render(title) + "\n")
}

func (r *TextRenderer) participants(b *strings.Builder, st textStyles, platform string, p domain.Participants) {
	if len(p.Names) == 0 && p.LastMessage == "" {
		return
	}
	line := fmt.Sprintf("Participants on %s: %s", platform, strings.Join(p.Names, ", "))
	if r.Markdown {
		b.WriteString("- " + line + "\n")
	} else {
		b.WriteString(line + "\n")
	}
	if p.LastMessage == "" {
		return
	}
	last := fmt.Sprintf("Last %s message sent at: %s", platform, p.LastMessage)
	if r.Markdown {
		b.WriteString("- " + last + "\n")
	} else {
		b.WriteString(st.muted.Render(last) + "\n")
	}
}

func (r *TextRenderer) table(b *strings.Builder, st textStyles, header []string, rows [][]string) {
	if r.Markdown {
		b.WriteString("| " + strings.Join(header, " | ") + " |\n")
		b.WriteString("|" + strings.Repeat(" --- |", len(header)) + "\n")
		for _, row := range rows {
			b.WriteString("| " + strings.Join(row, " | ") + " |\n")
		}
		return
	}

	widths := make([]int, len(header))
	for i, h := range header {
		widths[i] = lipgloss.Width(h)
	}
	for _, row := range rows {
		for i, cell := range row {
			widths[i] = max(widths[i], lipgloss.Width(cell))
		}
	}

	pad := func(cells []string, style *lipgloss.Style) string {
		parts := make([]string, len(cells))
		for i, c := range cells {
			cell := c + strings.Repeat(" ", widths[i]-lipgloss.Width(c))
			if style != nil {
				cell = style.Render(cell)
			}
			parts[i] = cell
		}
		return strings.TrimRight(strings.Join(parts, "  "), " ")
	}

	b.WriteString(pad(header, &st.label) + "\n")
	for _, row := range rows {
		b.WriteString(pad(row, nil) + "\n")
	}
}

func (r *TextRenderer) histogram(b *strings.Builder, st textStyles, buckets []domain.Bucket) {
	if len(buckets) == 0 {
		b.WriteString(r.empty(st))
		return
	}

	peak := 0
	labelWidth := 0
	for _, bk := range buckets {
		peak = max(peak, bk.Count)
		labelWidth = max(labelWidth, lipgloss.Width(bk.Label))
	}

	width := r.BarWidth
	if width <= 0 {
		width = defaultBarWidth
	}

	if r.Markdown {
		b.WriteString("```\n")
	}
	for _, bk := range buckets {
		n := 0
		if peak > 0 {
			n = bk.Count * width / peak
		}
		label := bk.Label + strings.Repeat(" ", labelWidth-lipgloss.Width(bk.Label))
		bar := strings.Repeat("█", n)
		if !r.Markdown {
			label = st.label.Render(label)
			bar = st.bar.Render(bar)
		}
		fmt.Fprintf(b, "%s %s %d\n", label, bar, bk.Count)
	}
	if r.Markdown {
		b.WriteString("```\n")
	}
}

func (r *TextRenderer) daySeries(b *strings.Builder, st textStyles, series domain.DaySeries) {
	if len(series.Days) == 0 {
		b.WriteString(r.empty(st))
		return
	}

	first, last := series.Days[0], series.Days[len(series.Days)-1]
	busiest := first
	for _, d := range series.Days {
		if d.Count > busiest.Count {
			busiest = d
		}
	}
	fmt.Fprintf(b, "Active days: %d (%s to %s)\n", len(series.Days), first.Label, last.Label)
	fmt.Fprintf(b, "Busiest day: %s with %d messages\n", busiest.Label, busiest.Count)

	if len(series.Average) == 0 {
		b.WriteString(r.muted(st, fmt.Sprintf("Fewer than %d active days, no rolling average.", series.Window)) + "\n")
		return
	}

	buckets := make([]domain.Bucket, 0, len(series.Ticks))
	for _, tick := range series.Ticks {
		buckets = append(buckets, domain.Bucket{
			Label: tick.Label,
			Count: int(series.Average[tick.Position] + 0.5),
		})
	}
	b.WriteString(r.muted(st, "Average messages per day at the start of each month:") + "\n")
	r.histogram(b, st, buckets)
}

func (r *TextRenderer) emoji(b *strings.Builder, st textStyles, ranked []domain.EmojiCount) {
	if len(ranked) == 0 {
		b.WriteString(r.empty(st))
		return
	}
	list := make([]string, 0, len(ranked))
	for _, e := range ranked {
		list = append(list, fmt.Sprintf("%s %d", e.Emoji, e.Count))
	}
	b.WriteString(strings.Join(list, "  ") + "\n")
}

func (r *TextRenderer) empty(st textStyles) string {
	return r.muted(st, "No data.") + "\n"
}

func (r *TextRenderer) muted(st textStyles, s string) string {
	if r.Markdown {
		return "_" + s + "_"
	}
	return st.muted.Render(s)
}
