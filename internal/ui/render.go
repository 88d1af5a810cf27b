package ui

import (
	"fmt"
	"sort"
	"strings"

	"gpuadvisor/internal/models"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
)

// FPSStyle colours a frame rate: green at 60 and above, yellow from 30,
// red below.
func FPSStyle(fps int) lipgloss.Style {
	switch {
	case fps >= 60:
		return goodStyle
	case fps >= 30:
		return warningStyle
	default:
		return badStyle
	}
}

// FormatFPS renders "N FPS" in its colour
func FormatFPS(fps int) string {
	return FPSStyle(fps).Render(fmt.Sprintf("%d FPS", fps))
}

// TemperatureStyle colours a GPU temperature
func TemperatureStyle(celsius float64) lipgloss.Style {
	switch {
	case celsius >= 85:
		return badStyle
	case celsius >= 75:
		return warningStyle
	default:
		return goodStyle
	}
}

func confidenceStyle(c models.Confidence) lipgloss.Style {
	switch c {
	case models.ConfidenceHigh:
		return goodStyle
	case models.ConfidenceMedium:
		return warningStyle
	default:
		return badStyle
	}
}

func newTable(headers ...string) *table.Table {
	return table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(colorBorder)).
		Headers(headers...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return headerStyle
			}
			return cellStyle
		})
}

func keyValues(rows [][2]string) string {
	width := 0
	for _, r := range rows {
		if len(r[0]) > width {
			width = len(r[0])
		}
	}
	var b strings.Builder
	for i, r := range rows {
		if i > 0 {
			b.WriteByte('\n')
		}
		b.WriteString(labelStyle.Render(fmt.Sprintf("%-*s", width, r[0])))
		b.WriteString("  ")
		b.WriteString(r[1])
	}
	return b.String()
}

// RenderGPU renders a GPU descriptor with any live telemetry
func RenderGPU(gpu *models.GPUInfo) string {
	rows := [][2]string{
		{"Name", gpu.Name},
		{"Vendor", gpu.Vendor},
		{"Architecture", gpu.Architecture},
		{"Tier", gpu.Tier},
		{"VRAM", fmt.Sprintf("%d MB (%.1f GB)", gpu.VRAMTotalMB, float64(gpu.VRAMTotalMB)/1024)},
	}
	if gpu.CUDACores > 0 {
		rows = append(rows, [2]string{"CUDA Cores", fmt.Sprintf("%d", gpu.CUDACores)})
	}
	if gpu.BoostClockMHz > 0 {
		rows = append(rows, [2]string{"Clocks", fmt.Sprintf("%d / %d MHz", gpu.BaseClockMHz, gpu.BoostClockMHz)})
	}
	if gpu.DriverVersion != "" {
		rows = append(rows,
			[2]string{"Driver", gpu.DriverVersion},
			[2]string{"Temperature", TemperatureStyle(gpu.Temperature).Render(fmt.Sprintf("%.0f°C", gpu.Temperature))},
			[2]string{"GPU Usage", fmt.Sprintf("%.0f%%", gpu.GPUUsage)},
			[2]string{"VRAM Used", fmt.Sprintf("%d / %d MB", gpu.VRAMUsedMB, gpu.VRAMTotalMB)},
			[2]string{"Power", fmt.Sprintf("%.0f / %.0f W", gpu.PowerDraw, gpu.PowerLimit)},
		)
	}
	return titleStyle.Render("GPU") + "\n" + boxStyle.Render(keyValues(rows))
}

// RenderPrediction renders one forecast with its notes
func RenderPrediction(pred *models.Prediction) string {
	rows := [][2]string{
		{"Game", pred.Game},
		{"GPU", pred.GPUName},
		{"Settings", fmt.Sprintf("%s @ %s", pred.Resolution, titleCase(pred.Quality))},
		{"Average", FormatFPS(pred.FPSAverage)},
		{"Range", fmt.Sprintf("%d - %d FPS", pred.FPSMin, pred.FPSMax)},
		{"1% Low", FormatFPS(pred.FPS1PercentLow)},
		{"Confidence", confidenceStyle(pred.Confidence).Render(string(pred.Confidence))},
	}
	out := titleStyle.Render("FPS Prediction") + "\n" + boxStyle.Render(keyValues(rows))
	if len(pred.Notes) > 0 {
		out += "\n" + renderNotes(pred.Notes)
	}
	return out
}

func renderNotes(notes []string) string {
	lines := make([]string, len(notes))
	for i, n := range notes {
		lines[i] = mutedStyle.Render("• " + n)
	}
	return strings.Join(lines, "\n")
}

// RenderSweep renders a sweep as a table keyed by preset or resolution
func RenderSweep(title, keyHeader string, entries []models.SweepEntry) string {
	t := newTable(keyHeader, "Average", "Min", "Max", "1% Low", "Confidence")
	for _, e := range entries {
		p := e.Prediction
		t.Row(
			e.Key,
			FormatFPS(p.FPSAverage),
			fmt.Sprintf("%d", p.FPSMin),
			fmt.Sprintf("%d", p.FPSMax),
			fmt.Sprintf("%d", p.FPS1PercentLow),
			string(p.Confidence),
		)
	}
	return titleStyle.Render(title) + "\n" + t.Render()
}

// RenderSettings renders an optimal-settings result
func RenderSettings(result *models.SettingsResult, targetFPS int) string {
	rows := [][2]string{
		{"Target", fmt.Sprintf("%d FPS", targetFPS)},
		{"Resolution", result.Resolution},
		{"Quality", titleCase(result.Quality)},
		{"Expected", FormatFPS(result.Prediction.FPSAverage)},
		{"Range", fmt.Sprintf("%d - %d FPS", result.Prediction.FPSMin, result.Prediction.FPSMax)},
		{"Confidence", confidenceStyle(result.Prediction.Confidence).Render(string(result.Prediction.Confidence))},
	}
	out := titleStyle.Render("Optimal Settings") + "\n" + boxStyle.Render(keyValues(rows))
	if result.Warning != "" {
		out += "\n" + warningBoxStyle.Render(warningStyle.Render("⚠ "+result.Warning))
	}
	return out
}

// RenderComparisons renders GPU comparisons, one row per game
func RenderComparisons(results []*models.ComparisonResult) string {
	if len(results) == 0 {
		return mutedStyle.Render("No comparisons")
	}
	first := results[0]
	t := newTable("Game", first.GPU1Name, first.GPU2Name, "Difference", "Faster")
	for _, r := range results {
		diff := fmt.Sprintf("%+d FPS (%+.1f%%)", r.FPSDifference, r.PercentageDifference)
		switch {
		case r.FPSDifference > 0:
			diff = goodStyle.Render(diff)
		case r.FPSDifference < 0:
			diff = badStyle.Render(diff)
		}
		t.Row(r.Game, FormatFPS(r.GPU1FPS), FormatFPS(r.GPU2FPS), diff, r.FasterGPU)
	}
	return titleStyle.Render(fmt.Sprintf("Comparison at %s %s", first.Resolution, titleCase(first.Quality))) + "\n" + t.Render()
}

// RenderCompatibility renders a compatibility check
func RenderCompatibility(compat *models.Compatibility) string {
	level := compat.Level
	switch compat.Level {
	case "excellent":
		level = goodStyle.Render(level)
	case "good":
		level = warningStyle.Render(level)
	default:
		level = badStyle.Render(level)
	}

	rows := [][2]string{
		{"Game", compat.Game},
		{"Compatibility", level},
		{"Verdict", compat.Message},
	}
	if compat.Level != "unknown" {
		rows = append(rows,
			[2]string{"Your VRAM", fmt.Sprintf("%d MB", compat.VRAMMB)},
			[2]string{"Minimum", fmt.Sprintf("%d MB (%s)", compat.MinimumVRAMMB, compat.MinimumGPU)},
			[2]string{"Recommended", fmt.Sprintf("%d MB (%s)", compat.RecommendedVRAMMB, compat.RecommendedGPU)},
			[2]string{"Engine", compat.Engine},
		)
	}
	out := titleStyle.Render("Compatibility") + "\n" + boxStyle.Render(keyValues(rows))
	if len(compat.Features) > 0 {
		out += "\n" + renderNotes(compat.Features)
	}
	if len(compat.Suggestions) > 0 {
		out += "\n" + mutedStyle.Render("Did you mean: "+strings.Join(compat.Suggestions, ", "))
	}
	return out
}

// RenderGameList renders catalog entries with their feature flags
func RenderGameList(games []*models.GameRequirements) string {
	t := newTable("Game", "Year", "Engine", "Min VRAM", "RT", "DLSS", "FSR")
	for _, g := range games {
		t.Row(g.Name, fmt.Sprintf("%d", g.ReleaseYear), g.Engine,
			fmt.Sprintf("%d MB", g.MinimumVRAMMB), check(g.SupportsRayTrace), check(g.SupportsDLSS), check(g.SupportsFSR))
	}
	return titleStyle.Render(fmt.Sprintf("Games (%d)", len(games))) + "\n" + t.Render()
}

func check(b bool) string {
	if b {
		return goodStyle.Render("✓")
	}
	return mutedStyle.Render("-")
}

// RenderSystem renders host status and running games
func RenderSystem(status *models.SystemStatus) string {
	var rows [][2]string
	if status.CPU != nil {
		rows = append(rows,
			[2]string{"CPU", status.CPU.ModelName},
			[2]string{"Cores", fmt.Sprintf("%d cores / %d threads", status.CPU.CoreCount, status.CPU.ThreadCount)},
			[2]string{"CPU Usage", fmt.Sprintf("%.1f%%", status.CPU.UsagePercent)},
		)
	}
	if status.Memory != nil {
		rows = append(rows, [2]string{"Memory", fmt.Sprintf("%.1f / %.1f GB (%.0f%%)",
			status.Memory.UsedGB, status.Memory.TotalGB, status.Memory.UsagePercent)})
	}
	if len(rows) == 0 {
		rows = append(rows, [2]string{"Host", mutedStyle.Render("unavailable")})
	}
	out := titleStyle.Render("System") + "\n" + boxStyle.Render(keyValues(rows))

	if len(status.RunningGames) > 0 {
		t := newTable("Game", "Process", "PID", "CPU", "Memory")
		for _, p := range status.RunningGames {
			t.Row(p.Game, p.Name, fmt.Sprintf("%d", p.PID), fmt.Sprintf("%.1f%%", p.CPUPercent), fmt.Sprintf("%.1f%%", p.MemPercent))
		}
		out += "\n" + titleStyle.Render("Running Games") + "\n" + t.Render()
	}
	return out
}

// RenderAdvice renders an AI recommendation next to the estimator's result
func RenderAdvice(advice *models.Advice) string {
	rows := [][2]string{
		{"Preset", advice.Preset},
		{"Confidence", confidenceStyle(advice.Confidence).Render(string(advice.Confidence))},
	}
	keys := make([]string, 0, len(advice.Settings))
	for k := range advice.Settings {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		rows = append(rows, [2]string{k, advice.Settings[k]})
	}

	out := titleStyle.Render("AI Recommendation") + "\n" + boxStyle.Render(keyValues(rows))
	if advice.Summary != "" {
		out += "\n" + advice.Summary
	}
	if len(advice.Tips) > 0 {
		out += "\n" + renderNotes(advice.Tips)
	}
	return out
}

// RenderSummary renders a monitoring session summary
func RenderSummary(s models.SessionSummary) string {
	rows := [][2]string{
		{"GPU", s.GPUName},
		{"Duration", fmt.Sprintf("%.0fs", s.DurationSeconds)},
		{"Samples", fmt.Sprintf("%d", s.Samples)},
		{"Avg Temp", fmt.Sprintf("%.1f°C", s.AvgTemperature)},
		{"Max Temp", TemperatureStyle(s.MaxTemperature).Render(fmt.Sprintf("%.0f°C", s.MaxTemperature))},
		{"Avg Usage", fmt.Sprintf("%.1f%%", s.AvgGPUUsage)},
		{"Max Power", fmt.Sprintf("%.0f W", s.MaxPowerDraw)},
	}
	return titleStyle.Render("Session Summary") + "\n" + boxStyle.Render(keyValues(rows))
}

// Warning renders a warning line
func Warning(msg string) string {
	return warningStyle.Render("⚠ " + msg)
}

// Error renders an error line
func Error(msg string) string {
	return badStyle.Render("✗ " + msg)
}

// Success renders a success line
func Success(msg string) string {
	return goodStyle.Render("✓ " + msg)
}

func titleCase(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}

// RenderGameSettings renders the best configuration per game for a target
func RenderGameSettings(entries []models.GameSettings, targetFPS int) string {
	t := newTable("Game", "Resolution", "Quality", "Expected", "Note")
	for _, e := range entries {
		note := ""
		if e.Result.Warning != "" {
			note = warningStyle.Render("target not reachable")
		}
		t.Row(e.Game, e.Result.Resolution, titleCase(e.Result.Quality), FormatFPS(e.Result.Prediction.FPSAverage), note)
	}
	return titleStyle.Render(fmt.Sprintf("Suggested settings for %d FPS", targetFPS)) + "\n" + t.Render()
}

// RenderProfile renders a saved settings profile
func RenderProfile(p *models.Profile) string {
	rows := [][2]string{
		{"Name", p.Name},
		{"GPU", p.GPU},
		{"Game", p.Game},
		{"Created", p.CreatedAt.Format("2006-01-02 15:04")},
	}
	keys := make([]string, 0, len(p.Settings))
	for k := range p.Settings {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		rows = append(rows, [2]string{k, fmt.Sprint(p.Settings[k])})
	}
	return titleStyle.Render("Profile") + "\n" + boxStyle.Render(keyValues(rows))
}
