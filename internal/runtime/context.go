// Package runtime provides application runtime context for spanset.
package runtime

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/manav03panchal/spanset/internal/config"
	"github.com/manav03panchal/spanset/internal/labels"
	"github.com/manav03panchal/spanset/internal/logging"
	"github.com/manav03panchal/spanset/internal/model"
	"github.com/manav03panchal/spanset/internal/output"
	"github.com/manav03panchal/spanset/internal/registry"
	"github.com/manav03panchal/spanset/internal/settings"
	"github.com/manav03panchal/spanset/internal/storage"
	"github.com/manav03panchal/spanset/internal/timespan"
)

// Context holds the application runtime context.
type Context struct {
	Config    *config.RuntimeConfig
	DB        *storage.DB
	Formatter *output.Formatter
	ErrWriter io.Writer

	Settings   *settings.Service
	Registry   *registry.Registry
	Labels     *labels.Catalog
	Install    *model.Config
	ConfigRepo *storage.ConfigRepo

	// Debug mode
	Debug bool
}

// Options configures the runtime context.
type Options struct {
	ConfigPath string
	EnvFile    string
	Lang       string
	InMemory   bool
	Format     output.Format
	ColorMode  output.ColorMode
	Debug      bool
	Out        io.Writer
	Err        io.Writer
}

// DefaultOptions returns default runtime options.
func DefaultOptions() Options {
	return Options{
		EnvFile:   ".env",
		Format:    output.FormatCLI,
		ColorMode: output.ColorAuto,
		Out:       os.Stdout,
		Err:       os.Stderr,
	}
}

// New creates a new runtime context: it loads configuration and labels, opens
// the database and seeds the known settings.
func New(opts Options) (*Context, error) {
	if opts.Out == nil {
		opts.Out = os.Stdout
	}
	if opts.Err == nil {
		opts.Err = os.Stderr
	}
	if opts.Debug {
		cfg := logging.DebugConfig()
		cfg.Output = opts.Err
		logging.Init(cfg)
	}

	cfg, err := config.Load(config.LoadOptions{ConfigPath: opts.ConfigPath, EnvFile: opts.EnvFile})
	if err != nil {
		return nil, err
	}
	if opts.InMemory {
		cfg.Storage.InMemory = true
	}

	catalog, err := labels.Load(cfg.ResolveLang(opts.Lang))
	if err != nil {
		return nil, err
	}

	reg, err := registry.Load(cfg.Editor.DefinitionsPath)
	if err != nil {
		return nil, err
	}

	db, err := storage.Open(storage.Options{
		Path:     cfg.Storage.DBPath,
		InMemory: cfg.Storage.InMemory,
	})
	if err != nil {
		return nil, err
	}

	svc := settings.NewService(db)
	configRepo := storage.NewConfigRepo(db)

	install, err := configRepo.Get()
	if err != nil {
		db.Close()
		return nil, err
	}

	created, err := reg.Seed(svc.Repo())
	if err != nil {
		db.Close()
		return nil, err
	}
	if created > 0 {
		install.SeededAt = time.Now().UTC()
		if err := configRepo.Update(install); err != nil {
			db.Close()
			return nil, err
		}
	}

	formatter := output.NewFormatter()
	formatter.Writer = opts.Out
	formatter.Format = opts.Format
	formatter.ColorMode = opts.ColorMode

	return &Context{
		Config:     cfg,
		DB:         db,
		Formatter:  formatter,
		ErrWriter:  opts.Err,
		Settings:   svc,
		Registry:   reg,
		Labels:     catalog,
		Install:    install,
		ConfigRepo: configRepo,
		Debug:      opts.Debug,
	}, nil
}

// Close closes the runtime context.
func (c *Context) Close() error {
	if c.DB != nil {
		return c.DB.Close()
	}
	return nil
}

// CLIFormatter returns a CLI formatter.
func (c *Context) CLIFormatter() *output.CLIFormatter {
	return output.NewCLIFormatter(c.Formatter)
}

// JSONFormatter returns a JSON formatter.
func (c *Context) JSONFormatter() *output.JSONFormatter {
	return output.NewJSONFormatter(c.Formatter)
}

// IsJSON returns true if output format is JSON.
func (c *Context) IsJSON() bool {
	return c.Formatter.Format == output.FormatJSON
}

// Debugf prints debug output to the error writer if debug mode is enabled.
func (c *Context) Debugf(format string, args ...interface{}) {
	if c.Debug {
		fmt.Fprintf(c.ErrWriter, "[DEBUG] "+format+"\n", args...)
	}
}

// View presents a setting in the unit an editing session would choose.
func (c *Context) View(s *model.Setting) output.SettingView {
	session := timespan.NewSession(s.Value)
	return c.view(s, session.Unit(), session.Value())
}

// ViewIn presents a setting in a fixed unit.
func (c *Context) ViewIn(s *model.Setting, unit timespan.Unit) (output.SettingView, error) {
	raw, err := timespan.ToDisplayValue(unit, s.Value)
	if err != nil {
		return output.SettingView{}, err
	}
	return c.view(s, unit, timespan.Sanitize(raw)), nil
}

// EditorView presents the current state of an editor.
func (c *Context) EditorView(e *settings.Editor) output.SettingView {
	return c.view(e.Setting(), e.Unit(), e.Value())
}

func (c *Context) view(s *model.Setting, unit timespan.Unit, value int64) output.SettingView {
	return output.SettingView{
		Setting:   s,
		Unit:      unit,
		UnitLabel: c.Labels.Label(unit),
		Value:     value,
	}
}
