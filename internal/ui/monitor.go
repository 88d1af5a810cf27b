package ui

import (
	"context"
	"fmt"
	"strings"
	"time"

	"gpuadvisor/internal/models"
	"gpuadvisor/internal/services"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

const (
	barWidth       = 30
	sparklineWidth = 40
)

var sparkRunes = []rune("▁▂▃▄▅▆▇█")

type tickMsg time.Time

type sampledMsg struct{}

// MonitorModel is the live GPU monitor. It samples through a history
// collector so the session summary is available after the program exits.
type MonitorModel struct {
	ctx       context.Context
	collector *services.HistoryCollector
	refresh   time.Duration
	deadline  time.Time // zero means run until quit
	now       func() time.Time
	quitting  bool
}

// NewMonitorModel creates a monitor sampling every refresh. A zero duration
// runs until the user quits.
func NewMonitorModel(ctx context.Context, collector *services.HistoryCollector, refresh, duration time.Duration) MonitorModel {
	if refresh <= 0 {
		refresh = time.Second
	}
	m := MonitorModel{
		ctx:       ctx,
		collector: collector,
		refresh:   refresh,
		now:       time.Now,
	}
	if duration > 0 {
		m.deadline = m.now().Add(duration)
	}
	return m
}

func (m MonitorModel) tick() tea.Cmd {
	return tea.Tick(m.refresh, func(t time.Time) tea.Msg { return tickMsg(t) })
}

func (m MonitorModel) sample() tea.Cmd {
	return func() tea.Msg {
		m.collector.Collect(m.ctx)
		return sampledMsg{}
	}
}

// Init implements tea.Model.
func (m MonitorModel) Init() tea.Cmd {
	return tea.Batch(m.sample(), m.tick())
}

// Update implements tea.Model.
func (m MonitorModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "esc", "ctrl+c":
			m.quitting = true
			return m, tea.Quit
		}

	case tickMsg:
		if !m.deadline.IsZero() && !time.Time(msg).Before(m.deadline) {
			m.quitting = true
			return m, tea.Quit
		}
		return m, tea.Batch(m.sample(), m.tick())
	}
	return m, nil
}

// View implements tea.Model.
func (m MonitorModel) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder
	b.WriteString(titleStyle.Render("GPU Monitor"))
	b.WriteString(mutedStyle.Render(fmt.Sprintf("  refresh %s  q to quit", m.refresh)))
	b.WriteString("\n\n")

	latest := m.collector.Latest()
	if latest == nil {
		b.WriteString(mutedStyle.Render("Waiting for first sample..."))
		return b.String()
	}
	summary := m.collector.Summary()

	memPercent := 0.0
	if latest.MemoryTotMB > 0 {
		memPercent = float64(latest.MemoryUsedMB) / float64(latest.MemoryTotMB) * 100
	}
	powerPercent := 0.0
	if latest.PowerLimit > 0 {
		powerPercent = latest.PowerDraw / latest.PowerLimit * 100
	}

	rows := [][2]string{
		{"GPU", summary.GPUName},
		{"Temperature", TemperatureStyle(latest.Temperature).Render(fmt.Sprintf("%.0f°C", latest.Temperature))},
		{"Usage", Bar(latest.GPUUsage, barWidth) + fmt.Sprintf(" %5.1f%%", latest.GPUUsage)},
		{"VRAM", Bar(memPercent, barWidth) + fmt.Sprintf(" %d / %d MB", latest.MemoryUsedMB, latest.MemoryTotMB)},
		{"Power", Bar(powerPercent, barWidth) + fmt.Sprintf(" %.0f / %.0f W", latest.PowerDraw, latest.PowerLimit)},
	}
	b.WriteString(boxStyle.Render(keyValues(rows)))
	b.WriteString("\n")

	window := m.collector.Window(time.Duration(sparklineWidth) * m.refresh)
	usage := make([]float64, len(window.GPU))
	for i, h := range window.GPU {
		usage[i] = h.GPUUsage
	}
	b.WriteString(labelStyle.Render("Usage history "))
	b.WriteString(Sparkline(usage, sparklineWidth))
	b.WriteString("\n")
	b.WriteString(mutedStyle.Render(fmt.Sprintf("samples %d  avg temp %.1f°C  max temp %.0f°C",
		summary.Samples, summary.AvgTemperature, summary.MaxTemperature)))
	if !m.deadline.IsZero() {
		remaining := m.deadline.Sub(m.now()).Round(time.Second)
		if remaining < 0 {
			remaining = 0
		}
		b.WriteString(mutedStyle.Render(fmt.Sprintf("  %s left", remaining)))
	}
	b.WriteString("\n")
	return b.String()
}

// Bar renders a percentage as a coloured horizontal bar of width cells
func Bar(percent float64, width int) string {
	if percent < 0 {
		percent = 0
	}
	if percent > 100 {
		percent = 100
	}
	filled := int(percent / 100 * float64(width))

	style := goodStyle
	switch {
	case percent >= 90:
		style = badStyle
	case percent >= 70:
		style = warningStyle
	}
	return style.Render(strings.Repeat("█", filled)) + mutedStyle.Render(strings.Repeat("░", width-filled))
}

// Sparkline renders the last width values on a 0-100 scale
func Sparkline(values []float64, width int) string {
	if len(values) > width {
		values = values[len(values)-width:]
	}
	var b strings.Builder
	for _, v := range values {
		idx := int(v / 100 * float64(len(sparkRunes)-1))
		if idx < 0 {
			idx = 0
		}
		if idx >= len(sparkRunes) {
			idx = len(sparkRunes) - 1
		}
		b.WriteRune(sparkRunes[idx])
	}
	return lipgloss.NewStyle().Foreground(colorAccent).Render(b.String())
}

// RunMonitor runs the monitor until the user quits, duration elapses or ctx
// is cancelled, and returns the session summary.
func RunMonitor(ctx context.Context, collector *services.HistoryCollector, refresh, duration time.Duration) (models.SessionSummary, error) {
	model := NewMonitorModel(ctx, collector, refresh, duration)
	if _, err := tea.NewProgram(model, tea.WithContext(ctx), tea.WithAltScreen()).Run(); err != nil && ctx.Err() == nil {
		return collector.Summary(), err
	}
	return collector.Summary(), nil
}
