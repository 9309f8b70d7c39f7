package output

import (
	"time"

	"github.com/manav03panchal/spanset/internal/model"
	"github.com/manav03panchal/spanset/internal/storage"
)

// JSONFormatter provides JSON-specific formatting.
type JSONFormatter struct {
	*Formatter
}

// NewJSONFormatter creates a new JSON formatter.
func NewJSONFormatter(f *Formatter) *JSONFormatter {
	return &JSONFormatter{Formatter: f}
}

// SettingOutput represents a setting in JSON output.
type SettingOutput struct {
	ID             string `json:"id"`
	Label          string `json:"label,omitempty"`
	ValueMs        int64  `json:"value_ms"`
	PackageValueMs int64  `json:"package_value_ms"`
	Unit           string `json:"unit"`
	UnitLabel      string `json:"unit_label"`
	Value          int64  `json:"value"`
	Modified       bool   `json:"modified"`
	UpdatedAt      string `json:"updated_at,omitempty"`
}

// NewSettingOutput creates a SettingOutput from a SettingView.
func NewSettingOutput(v SettingView) *SettingOutput {
	out := &SettingOutput{
		ID:             v.Setting.ID,
		Label:          v.Setting.Label,
		ValueMs:        v.Setting.Value,
		PackageValueMs: v.Setting.PackageValue,
		Unit:           v.Unit.String(),
		UnitLabel:      v.UnitLabel,
		Value:          v.Value,
		Modified:       v.Modified(),
	}
	if !v.Setting.UpdatedAt.IsZero() {
		out.UpdatedAt = v.Setting.UpdatedAt.Format(time.RFC3339)
	}
	return out
}

// SettingResponse represents a single-setting command output in JSON.
type SettingResponse struct {
	Status  string         `json:"status"`
	Setting *SettingOutput `json:"setting"`
}

// SettingsResponse represents the settings list output in JSON.
type SettingsResponse struct {
	Settings []*SettingOutput `json:"settings"`
	Count    int              `json:"count"`
}

// ChangeOutput represents a history entry in JSON output.
type ChangeOutput struct {
	SettingID  string `json:"setting_id"`
	PreviousMs int64  `json:"previous_ms"`
	ValueMs    int64  `json:"value_ms"`
	DeltaMs    int64  `json:"delta_ms"`
	Reason     string `json:"reason"`
	Unit       string `json:"unit,omitempty"`
	At         string `json:"at"`
}

// NewChangeOutput creates a ChangeOutput from a Change.
func NewChangeOutput(c *model.Change) *ChangeOutput {
	return &ChangeOutput{
		SettingID:  c.SettingID,
		PreviousMs: c.Previous,
		ValueMs:    c.Value,
		DeltaMs:    c.Delta(),
		Reason:     string(c.Reason),
		Unit:       c.Unit,
		At:         c.At.Format(time.RFC3339),
	}
}

// HistoryResponse represents the history output in JSON.
type HistoryResponse struct {
	Changes []*ChangeOutput `json:"changes"`
	Count   int             `json:"count"`
}

// ConversionResponse represents the convert command output in JSON.
type ConversionResponse struct {
	Input      string  `json:"input"`
	DurationMs int64   `json:"duration_ms"`
	Unit       string  `json:"unit"`
	UnitLabel  string  `json:"unit_label"`
	Exact      float64 `json:"exact"`
	Value      int64   `json:"value"`
}

// UndoResponse represents the undo command output in JSON.
type UndoResponse struct {
	Status   string         `json:"status"`
	Reverted string         `json:"reverted"`
	Setting  *SettingOutput `json:"setting"`
}

// ErrorResponse represents an error in JSON.
type ErrorResponse struct {
	Status     string `json:"status"`
	Error      string `json:"error"`
	Message    string `json:"message,omitempty"`
	Suggestion string `json:"suggestion,omitempty"`
}

// HealthResponse represents the check command output in JSON.
type HealthResponse struct {
	*storage.HealthStatus
	Lang            string   `json:"lang"`
	Definitions     int      `json:"definitions"`
	InstallationKey string   `json:"installation_key,omitempty"`
	SeededAt        string   `json:"seeded_at,omitempty"`
	Pruned          []string `json:"pruned,omitempty"`
}

// PrintSetting outputs one setting with a status in JSON format.
func (j *JSONFormatter) PrintSetting(status string, v SettingView) error {
	return j.JSON(SettingResponse{Status: status, Setting: NewSettingOutput(v)})
}

// PrintSettings outputs settings in JSON format.
func (j *JSONFormatter) PrintSettings(views []SettingView) error {
	outputs := make([]*SettingOutput, len(views))
	for i, v := range views {
		outputs[i] = NewSettingOutput(v)
	}
	return j.JSON(SettingsResponse{Settings: outputs, Count: len(outputs)})
}

// PrintHistory outputs changes in JSON format.
func (j *JSONFormatter) PrintHistory(changes []*model.Change) error {
	outputs := make([]*ChangeOutput, len(changes))
	for i, c := range changes {
		outputs[i] = NewChangeOutput(c)
	}
	return j.JSON(HistoryResponse{Changes: outputs, Count: len(outputs)})
}

// PrintConversion outputs a conversion in JSON format.
func (j *JSONFormatter) PrintConversion(v ConversionView) error {
	return j.JSON(ConversionResponse{
		Input:      v.Input,
		DurationMs: v.DurationMs,
		Unit:       v.Unit.String(),
		UnitLabel:  v.UnitLabel,
		Exact:      v.Exact,
		Value:      v.Value,
	})
}

// PrintUndo outputs an undo result in JSON format.
func (j *JSONFormatter) PrintUndo(reason model.ChangeReason, v SettingView) error {
	return j.JSON(UndoResponse{
		Status:   "undone",
		Reverted: string(reason),
		Setting:  NewSettingOutput(v),
	})
}

// PrintHealth outputs the check report in JSON format.
func (j *JSONFormatter) PrintHealth(v HealthView) error {
	resp := HealthResponse{
		HealthStatus: v.Health,
		Lang:         v.Lang,
		Definitions:  v.Definitions,
		Pruned:       v.Pruned,
	}
	if v.Install != nil {
		resp.InstallationKey = v.Install.InstallationKey
		if !v.Install.SeededAt.IsZero() {
			resp.SeededAt = v.Install.SeededAt.Format(time.RFC3339)
		}
	}
	return j.JSON(resp)
}

// PrintError outputs an error in JSON format.
func (j *JSONFormatter) PrintError(status, errMsg, message, suggestion string) error {
	return j.JSON(ErrorResponse{
		Status:     status,
		Error:      errMsg,
		Message:    message,
		Suggestion: suggestion,
	})
}
