package tui

import (
	"strings"

	"github.com/manav03panchal/spanset/internal/labels"
	"github.com/manav03panchal/spanset/internal/timespan"
)

// LabelRow renders the setting label, followed by a reset marker when the
// value differs from its default.
func LabelRow(label, resetText string, modified bool) string {
	row := StyleTitle.Render(label)
	if modified {
		row += "  " + StyleResetMarker.Render("↺ "+resetText)
	}
	return row
}

// UnitSelect renders the unit options with the selected one highlighted.
func UnitSelect(options []labels.Option, selected timespan.Unit) string {
	parts := make([]string, 0, len(options))
	for _, opt := range options {
		if opt.Unit == selected {
			parts = append(parts, StyleUnitSelected.Render(opt.Label))
		} else {
			parts = append(parts, StyleUnitOption.Render(opt.Label))
		}
	}
	return strings.Join(parts, " / ")
}

// HelpBar renders the help bar with keyboard shortcuts.
func HelpBar() string {
	keys := []struct {
		key  string
		desc string
	}{
		{"0-9", "value"},
		{"tab", "unit"},
		{"ctrl+r", "reset"},
		{"enter", "done"},
	}

	var parts []string
	for _, k := range keys {
		part := StyleHelpKey.Render(k.key) + " " + StyleHelpDesc.Render(k.desc)
		parts = append(parts, part)
	}

	return StyleHelp.Render(strings.Join(parts, "  •  "))
}

// nextUnit returns the unit after (or before, for step -1) u in display order.
func nextUnit(u timespan.Unit, step int) timespan.Unit {
	units := timespan.Units()
	for i, candidate := range units {
		if candidate == u {
			return units[(i+step+len(units))%len(units)]
		}
	}
	return units[0]
}

// digitsOnly drops every rune that is not an ASCII digit.
func digitsOnly(runes []rune) []rune {
	out := runes[:0:0]
	for _, r := range runes {
		if r >= '0' && r <= '9' {
			out = append(out, r)
		}
	}
	return out
}
