// Package labels looks up translated display labels for units and editor
// strings.
package labels

import (
	_ "embed"
	"fmt"
	"sort"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"golang.org/x/text/language"

	"github.com/manav03panchal/spanset/internal/logging"
	"github.com/manav03panchal/spanset/internal/timespan"
)

//go:embed catalog.toml
var catalogData []byte

// DefaultLang is used when no requested language matches.
const DefaultLang = "en"

// Catalog holds the labels of one negotiated language.
type Catalog struct {
	lang    language.Tag
	entries map[string]string
}

// Option is a unit paired with its display label.
type Option struct {
	Unit  timespan.Unit
	Label string
}

// Load parses the embedded catalog and selects the best match for lang.
// An empty or unknown lang selects English.
func Load(lang string) (*Catalog, error) {
	var all map[string]map[string]string
	if err := toml.Unmarshal(catalogData, &all); err != nil {
		return nil, fmt.Errorf("parsing label catalog: %w", err)
	}
	return newCatalog(all, lang)
}

func newCatalog(all map[string]map[string]string, lang string) (*Catalog, error) {
	if _, ok := all[DefaultLang]; !ok {
		return nil, fmt.Errorf("label catalog has no %q section", DefaultLang)
	}

	// The default language goes first so the matcher falls back to it.
	names := make([]string, 0, len(all))
	for name := range all {
		if name != DefaultLang {
			names = append(names, name)
		}
	}
	sort.Strings(names)
	names = append([]string{DefaultLang}, names...)

	tags := make([]language.Tag, 0, len(names))
	for _, name := range names {
		tag, err := language.Parse(name)
		if err != nil {
			return nil, fmt.Errorf("label catalog language %q: %w", name, err)
		}
		tags = append(tags, tag)
	}

	idx := 0
	if requested, err := language.Parse(NormalizeLocale(lang)); err == nil {
		_, idx, _ = language.NewMatcher(tags).Match(requested)
	}

	logging.DebugLog("labels loaded", logging.KeyLocale, tags[idx].String())
	return &Catalog{lang: tags[idx], entries: all[names[idx]]}, nil
}

// NormalizeLocale turns a POSIX locale such as "de_DE.UTF-8" into a BCP 47
// tag. "C" and "POSIX" map to the default language.
func NormalizeLocale(locale string) string {
	locale = strings.TrimSpace(locale)
	if i := strings.IndexAny(locale, ".@"); i >= 0 {
		locale = locale[:i]
	}
	if locale == "" || locale == "C" || locale == "POSIX" {
		return DefaultLang
	}
	return strings.ReplaceAll(locale, "_", "-")
}

// Lang returns the negotiated language tag.
func (c *Catalog) Lang() string {
	return c.lang.String()
}

// Has reports whether key has a translation.
func (c *Catalog) Has(key string) bool {
	_, ok := c.entries[key]
	return ok
}

// T returns the translation of key, or key itself.
func (c *Catalog) T(key string) string {
	if v, ok := c.entries[key]; ok {
		return v
	}
	return key
}

// Label returns the display label for a unit.
func (c *Catalog) Label(u timespan.Unit) string {
	return c.T(u.String())
}

// Options returns every unit with its label, in display order.
func (c *Catalog) Options() []Option {
	units := timespan.Units()
	opts := make([]Option, 0, len(units))
	for _, u := range units {
		opts = append(opts, Option{Unit: u, Label: c.Label(u)})
	}
	return opts
}
