package output

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/manav03panchal/spanset/internal/model"
)

// Styles for CLI output.
var (
	// Colors
	colorPrimary = lipgloss.Color("#7C3AED") // Purple
	colorMuted   = lipgloss.Color("#6B7280") // Gray
	colorWarning = lipgloss.Color("#F59E0B") // Yellow
	colorError   = lipgloss.Color("#EF4444") // Red
	colorSuccess = lipgloss.Color("#10B981") // Green

	// Styles
	styleTitle = lipgloss.NewStyle().
			Bold(true).
			Foreground(colorPrimary)

	styleSuccess = lipgloss.NewStyle().
			Foreground(colorSuccess)

	styleWarning = lipgloss.NewStyle().
			Foreground(colorWarning)

	styleError = lipgloss.NewStyle().
			Foreground(colorError)

	styleMuted = lipgloss.NewStyle().
			Foreground(colorMuted)

	styleBold = lipgloss.NewStyle().
			Bold(true)

	styleID = lipgloss.NewStyle().
		Bold(true).
		Foreground(colorPrimary)

	styleValue = lipgloss.NewStyle().
			Bold(true)

	styleModified = lipgloss.NewStyle().
			Foreground(colorWarning)
)

// modifiedMarker flags settings that differ from their package value.
const modifiedMarker = "*"

// CLIFormatter provides CLI-specific formatting. With FormatPlain it writes
// tab-separated lines without decoration.
type CLIFormatter struct {
	*Formatter
}

// NewCLIFormatter creates a new CLI formatter.
func NewCLIFormatter(f *Formatter) *CLIFormatter {
	return &CLIFormatter{Formatter: f}
}

func (c *CLIFormatter) plain() bool {
	return c.Format == FormatPlain
}

func (c *CLIFormatter) render(style lipgloss.Style, text string) string {
	if c.IsColorEnabled() {
		return style.Render(text)
	}
	return text
}

// Title prints a title.
func (c *CLIFormatter) Title(text string) {
	c.Println(c.render(styleTitle, text))
}

// Success prints a success message.
func (c *CLIFormatter) Success(text string) {
	c.Println(c.render(styleSuccess, "✓ "+text))
}

// Warning prints a warning message.
func (c *CLIFormatter) Warning(text string) {
	c.Println(c.render(styleWarning, "⚠ "+text))
}

// Error prints an error message.
func (c *CLIFormatter) Error(text string) {
	c.Println(c.render(styleError, "✗ "+text))
}

// Muted prints muted text.
func (c *CLIFormatter) Muted(text string) {
	c.Println(c.render(styleMuted, text))
}

// SettingID formats a setting ID.
func (c *CLIFormatter) SettingID(id string) string {
	return c.render(styleID, id)
}

// Value formats a display value with its unit label, e.g. "90 Minutes".
func (c *CLIFormatter) Value(value int64, unitLabel string) string {
	return c.render(styleValue, strconv.FormatInt(value, 10)) + " " + unitLabel
}

// PrintSetting prints one setting.
func (c *CLIFormatter) PrintSetting(v SettingView) {
	s := v.Setting
	if c.plain() {
		c.Printf("%s\t%d\t%s\t%d\t%d\n", s.ID, v.Value, v.Unit, s.Value, s.PackageValue)
		return
	}

	header := c.SettingID(s.ID)
	if s.Label != "" {
		header += "  " + s.Label
	}
	if v.Modified() {
		header += " " + c.render(styleModified, modifiedMarker)
	}
	c.Println(header)
	c.Printf("  Value:   %s (%s)\n", c.Value(v.Value, v.UnitLabel), FormatMillis(s.Value))
	c.Printf("  Default: %s\n", FormatMillis(s.PackageValue))
	if !s.UpdatedAt.IsZero() {
		c.Printf("  Updated: %s\n", c.render(styleMuted, FormatRelative(s.UpdatedAt)))
	}
}

// PrintSettingChanged prints the result of an edit.
func (c *CLIFormatter) PrintSettingChanged(v SettingView, verb string) {
	if c.plain() {
		c.PrintSetting(v)
		return
	}
	c.Success(fmt.Sprintf("%s %s", verb, v.Setting.ID))
	c.Printf("  Value:   %s (%s)\n", c.Value(v.Value, v.UnitLabel), FormatMillis(v.Setting.Value))
	if v.Modified() {
		c.Printf("  Default: %s\n", FormatMillis(v.Setting.PackageValue))
	}
}

// PrintSettings prints settings as a table.
func (c *CLIFormatter) PrintSettings(views []SettingView) {
	if len(views) == 0 {
		c.Muted("No settings.")
		return
	}
	if c.plain() {
		for _, v := range views {
			c.PrintSetting(v)
		}
		return
	}

	rows := make([]TableRow, 0, len(views))
	for _, v := range views {
		marker := ""
		if v.Modified() {
			marker = modifiedMarker
		}
		rows = append(rows, TableRow{Columns: []string{
			v.Setting.ID,
			strconv.FormatInt(v.Value, 10) + " " + v.UnitLabel,
			FormatMillis(v.Setting.PackageValue),
			marker,
			v.Setting.Label,
		}})
	}
	c.PrintTable([]string{"ID", "VALUE", "DEFAULT", "", "LABEL"}, rows)
	c.Muted(fmt.Sprintf("%s settings, %s marks a changed value", FormatCount(int64(len(views))), modifiedMarker))
}

// PrintHistory prints changes, newest first.
func (c *CLIFormatter) PrintHistory(changes []*model.Change) {
	if len(changes) == 0 {
		c.Muted("No changes recorded.")
		return
	}
	if c.plain() {
		for _, ch := range changes {
			c.Printf("%s\t%s\t%s\t%d\t%d\n", ch.At.UTC().Format("2006-01-02T15:04:05Z"), ch.SettingID, ch.Reason, ch.Previous, ch.Value)
		}
		return
	}

	rows := make([]TableRow, 0, len(changes))
	for _, ch := range changes {
		rows = append(rows, TableRow{Columns: []string{
			FormatRelative(ch.At),
			ch.SettingID,
			string(ch.Reason),
			FormatMillis(ch.Previous) + " → " + FormatMillis(ch.Value),
			FormatDelta(ch.Delta()),
		}})
	}
	c.PrintTable([]string{"WHEN", "SETTING", "REASON", "CHANGE", "DELTA"}, rows)
}

// PrintConversion prints a stateless conversion.
func (c *CLIFormatter) PrintConversion(v ConversionView) {
	if c.plain() {
		c.Printf("%d\t%s\t%d\n", v.DurationMs, v.Unit, v.Value)
		return
	}
	c.Printf("%s = %s\n", FormatMillis(v.DurationMs), c.Value(v.Value, v.UnitLabel))
	if float64(v.Value) != v.Exact {
		c.Muted(fmt.Sprintf("  rounded from %s", strconv.FormatFloat(v.Exact, 'f', -1, 64)))
	}
	c.Muted(fmt.Sprintf("  %s ms", FormatCount(v.DurationMs)))
}

// PrintHealth prints the check report.
func (c *CLIFormatter) PrintHealth(v HealthView) {
	h := v.Health
	if c.plain() {
		c.Printf("healthy\t%t\nsettings\t%d\nchanges\t%d\nerrors\t%d\n", h.Healthy, h.Settings, h.Changes, h.ErrorCount)
		for _, id := range v.Pruned {
			c.Printf("pruned\t%s\n", id)
		}
		return
	}

	if h.Healthy {
		c.Success("Database OK")
	} else {
		c.Error(fmt.Sprintf("Database has %d unreadable entries", h.ErrorCount))
		for _, e := range h.Errors {
			c.Printf("  %s\n", e)
		}
	}
	path := h.Path
	if path == "" {
		path = "(in memory)"
	}
	c.Printf("  Path:        %s\n", path)
	c.Printf("  Settings:    %s of %s defined\n", FormatCount(int64(h.Settings)), FormatCount(int64(v.Definitions)))
	c.Printf("  Changes:     %s\n", FormatCount(int64(h.Changes)))
	c.Printf("  Language:    %s\n", v.Lang)
	if v.Install != nil {
		c.Printf("  Install:     %s (created %s)\n", v.Install.InstallationKey, FormatRelative(v.Install.CreatedAt))
		if !v.Install.SeededAt.IsZero() {
			c.Printf("  Seeded:      %s\n", FormatTime(v.Install.SeededAt))
		}
	}
	for _, id := range v.Pruned {
		c.Warning("Removed " + id)
	}
}

// TableRow is one row of PrintTable.
type TableRow struct {
	Columns []string
}

// PrintTable prints a simple table. The last column is truncated to fit the
// terminal width.
func (c *CLIFormatter) PrintTable(headers []string, rows []TableRow) {
	if len(rows) == 0 {
		return
	}

	// Calculate column widths
	widths := make([]int, len(headers))
	for i, h := range headers {
		widths[i] = lipgloss.Width(h)
	}
	for _, row := range rows {
		for i, col := range row.Columns {
			if i < len(widths) && lipgloss.Width(col) > widths[i] {
				widths[i] = lipgloss.Width(col)
			}
		}
	}

	last := len(widths) - 1
	used := 0
	for _, w := range widths[:last] {
		used += w + 2
	}
	if room := c.Width() - used; room > 3 && widths[last] > room {
		widths[last] = room
	}

	pad := func(s string, w int) string {
		lw := lipgloss.Width(s)
		if lw <= w {
			return s + strings.Repeat(" ", w-lw)
		}
		if r := []rune(s); w > 3 && len(r) > w-3 {
			return string(r[:w-3]) + "..."
		}
		return s
	}

	// Print headers
	var headerLine strings.Builder
	for i, h := range headers {
		headerLine.WriteString(pad(h, widths[i]) + "  ")
	}
	c.Println(c.render(styleBold, strings.TrimRight(headerLine.String(), " ")))

	// Print separator
	var sep strings.Builder
	for _, w := range widths {
		sep.WriteString(strings.Repeat("─", w) + "  ")
	}
	c.Println(c.render(styleMuted, strings.TrimRight(sep.String(), " ")))

	// Print rows
	for _, row := range rows {
		var rowLine strings.Builder
		for i, col := range row.Columns {
			if i < len(widths) {
				rowLine.WriteString(pad(col, widths[i]) + "  ")
			}
		}
		c.Println(strings.TrimRight(rowLine.String(), " "))
	}
}
