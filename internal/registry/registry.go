// Package registry loads the definitions of the known time-span settings and
// seeds them into the store.
package registry

import (
	_ "embed"
	"fmt"
	"math"
	"os"
	"path/filepath"

	"github.com/adrg/xdg"
	"github.com/pelletier/go-toml/v2"

	"github.com/manav03panchal/spanset/internal/errors"
	"github.com/manav03panchal/spanset/internal/logging"
	"github.com/manav03panchal/spanset/internal/model"
	"github.com/manav03panchal/spanset/internal/parser"
	"github.com/manav03panchal/spanset/internal/validate"
)

//go:embed defaults.toml
var defaultsData []byte

// FileName is the name of the user definitions file.
const FileName = "settings.toml"

// Definition describes one setting and its package value.
type Definition struct {
	ID      string
	Label   string
	Default int64
}

type rawFile struct {
	Setting []rawDefinition `toml:"setting"`
}

type rawDefinition struct {
	ID      string `toml:"id"`
	Label   string `toml:"label"`
	Default any    `toml:"default"`
}

// Registry is an ordered set of definitions.
type Registry struct {
	defs  []Definition
	index map[string]int
}

// Store is the subset of the setting repository used for seeding.
type Store interface {
	Get(id string) (*model.Setting, error)
	Create(setting *model.Setting) error
	Update(setting *model.Setting) error
}

// DefaultPath returns the user definitions file under the XDG config home.
func DefaultPath() string {
	return filepath.Join(xdg.ConfigHome, "spanset", FileName)
}

// Load returns the built-in definitions merged with the file at path.
// A missing file is not an error. Definitions in the file replace built-in
// ones with the same ID.
func Load(path string) (*Registry, error) {
	defs, err := Parse(defaultsData)
	if err != nil {
		return nil, fmt.Errorf("built-in definitions: %w", err)
	}
	r := New(defs...)

	if path == "" {
		return r, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return r, nil
		}
		return nil, errors.NewSystemErrorWithOp("read", "cannot read setting definitions", err)
	}

	user, err := Parse(data)
	if err != nil {
		return nil, &errors.UserError{
			Message:    "Invalid setting definitions in " + path,
			Suggestion: err.Error(),
			Cause:      err,
		}
	}
	for _, d := range user {
		r.put(d)
	}

	logging.DebugLog("definitions loaded", logging.KeyPath, path, logging.KeyCount, len(r.defs))
	return r, nil
}

// Parse decodes a definitions document.
func Parse(data []byte) ([]Definition, error) {
	var f rawFile
	if err := toml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("parsing definitions: %w", err)
	}

	defs := make([]Definition, 0, len(f.Setting))
	seen := make(map[string]bool, len(f.Setting))
	for _, raw := range f.Setting {
		if err := validate.SettingID(raw.ID); err != nil {
			return nil, err
		}
		if seen[raw.ID] {
			return nil, fmt.Errorf("setting %q defined twice: %w", raw.ID, errors.ErrSettingExists)
		}
		seen[raw.ID] = true

		if err := validate.Label(raw.Label); err != nil {
			return nil, err
		}
		ms, err := defaultMillis(raw.Default)
		if err != nil {
			return nil, fmt.Errorf("setting %q: %w", raw.ID, err)
		}
		defs = append(defs, Definition{
			ID:      raw.ID,
			Label:   validate.SanitizeLabel(raw.Label),
			Default: ms,
		})
	}
	return defs, nil
}

// defaultMillis accepts an integer millisecond count or a human duration.
func defaultMillis(v any) (int64, error) {
	switch d := v.(type) {
	case nil:
		return 0, nil
	case int64:
		if d < 0 {
			return 0, fmt.Errorf("default %d: %w", d, errors.ErrInvalidDuration)
		}
		return d, nil
	case float64:
		if d < 0 || d != math.Trunc(d) || d > math.MaxInt64 {
			return 0, fmt.Errorf("default %v: %w", d, errors.ErrInvalidDuration)
		}
		return int64(d), nil
	case string:
		return parser.ParseDuration(d)
	default:
		return 0, fmt.Errorf("default of type %T: %w", v, errors.ErrInvalidDuration)
	}
}

// New builds a registry from definitions, later ones replacing earlier ones.
func New(defs ...Definition) *Registry {
	r := &Registry{index: make(map[string]int, len(defs))}
	for _, d := range defs {
		r.put(d)
	}
	return r
}

func (r *Registry) put(d Definition) {
	if i, ok := r.index[d.ID]; ok {
		r.defs[i] = d
		return
	}
	r.index[d.ID] = len(r.defs)
	r.defs = append(r.defs, d)
}

// Definitions returns all definitions in load order.
func (r *Registry) Definitions() []Definition {
	out := make([]Definition, len(r.defs))
	copy(out, r.defs)
	return out
}

// Lookup returns the definition for id.
func (r *Registry) Lookup(id string) (Definition, bool) {
	i, ok := r.index[id]
	if !ok {
		return Definition{}, false
	}
	return r.defs[i], true
}

// Seed creates missing settings at their package value. Existing settings
// keep their value; their label and package value follow the definition.
// It returns the number of settings created.
func (r *Registry) Seed(store Store) (int, error) {
	created := 0
	for _, d := range r.defs {
		existing, err := store.Get(d.ID)
		if err != nil {
			if !errors.Is(err, errors.ErrSettingNotFound) {
				return created, err
			}
			if err := store.Create(model.NewSetting(d.ID, d.Label, d.Default)); err != nil {
				return created, err
			}
			created++
			continue
		}

		if existing.PackageValue == d.Default && existing.Label == d.Label {
			continue
		}
		existing.PackageValue = d.Default
		existing.Label = d.Label
		if err := store.Update(existing); err != nil {
			return created, err
		}
	}

	if created > 0 {
		logging.DebugLog("settings seeded", logging.KeyCount, created)
	}
	return created, nil
}
