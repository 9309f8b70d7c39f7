package labels

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/manav03panchal/spanset/internal/timespan"
)

func TestLoad(t *testing.T) {
	tests := []struct {
		name     string
		lang     string
		wantLang string
		days     string
	}{
		{"empty_is_english", "", "en", "Days"},
		{"english", "en", "en", "Days"},
		{"german", "de", "de", "Tage"},
		{"german_posix_locale", "de_DE.UTF-8", "de", "Tage"},
		{"spanish_region", "es-MX", "es", "Días"},
		{"brazilian", "pt-BR", "pt-BR", "Dias"},
		{"posix_c", "C", "en", "Days"},
		{"unsupported", "ko", "en", "Days"},
		{"garbage", "!!", "en", "Days"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, err := Load(tt.lang)
			require.NoError(t, err)
			assert.Equal(t, tt.wantLang, c.Lang())
			assert.Equal(t, tt.days, c.Label(timespan.Days))
		})
	}
}

func TestLabelFallsBackToIdentifier(t *testing.T) {
	c, err := Load("ja")
	require.NoError(t, err)

	assert.True(t, c.Has("days"))
	assert.Equal(t, "日", c.Label(timespan.Days))

	assert.False(t, c.Has("minutes"))
	assert.Equal(t, "minutes", c.Label(timespan.Minutes))
	assert.Equal(t, "reset", c.T("reset"))
}

func TestOptions(t *testing.T) {
	c, err := Load("fr")
	require.NoError(t, err)

	opts := c.Options()
	require.Len(t, opts, 3)
	assert.Equal(t, Option{Unit: timespan.Days, Label: "Jours"}, opts[0])
	assert.Equal(t, Option{Unit: timespan.Hours, Label: "Heures"}, opts[1])
	assert.Equal(t, Option{Unit: timespan.Minutes, Label: "Minutes"}, opts[2])
}

func TestNewCatalogRequiresDefault(t *testing.T) {
	_, err := newCatalog(map[string]map[string]string{"de": {"days": "Tage"}}, "de")
	assert.Error(t, err)
}

func TestNormalizeLocale(t *testing.T) {
	assert.Equal(t, "de-DE", NormalizeLocale("de_DE.UTF-8"))
	assert.Equal(t, "sr-Latn", NormalizeLocale("sr_Latn@latin"))
	assert.Equal(t, "en", NormalizeLocale(""))
	assert.Equal(t, "en", NormalizeLocale("POSIX"))
}
