package output

import (
	"github.com/manav03panchal/spanset/internal/model"
	"github.com/manav03panchal/spanset/internal/storage"
	"github.com/manav03panchal/spanset/internal/timespan"
)

// SettingView is a setting as presented: its stored values plus the unit and
// integer value it is displayed in.
type SettingView struct {
	Setting   *model.Setting
	Unit      timespan.Unit
	UnitLabel string
	Value     int64
}

// Modified reports whether the value differs from the package value.
func (v SettingView) Modified() bool {
	return !v.Setting.IsDefault()
}

// ConversionView is the result of a stateless conversion.
type ConversionView struct {
	Input      string
	DurationMs int64
	Unit       timespan.Unit
	UnitLabel  string
	Exact      float64
	Value      int64
}

// HealthView is the result of the check command.
type HealthView struct {
	Health      *storage.HealthStatus
	Install     *model.Config
	Lang        string
	Definitions int
	Pruned      []string
}
