package stores

import (
	"context"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sanyamChaudhary27/project-panther/models"
	"github.com/sanyamChaudhary27/project-panther/storage"
)

func TestThemeDefaultsToDark(t *testing.T) {
	theme := NewThemeStore(storage.NewMemoryBridge(), zerolog.Nop())
	assert.True(t, theme.IsDarkMode())
	assert.Equal(t, models.ThemeDark, theme.Mode())
}

func TestThemeHonorsPersistedLight(t *testing.T) {
	bridge := storage.NewMemoryBridge()
	require.NoError(t, bridge.Save(context.Background(), storage.KeyTheme, []byte("light")))

	theme := NewThemeStore(bridge, zerolog.Nop())
	assert.False(t, theme.IsDarkMode())
	assert.Equal(t, models.ThemeLight, theme.Mode())
}

func TestThemeIgnoresGarbagePersistedValue(t *testing.T) {
	bridge := storage.NewMemoryBridge()
	require.NoError(t, bridge.Save(context.Background(), storage.KeyTheme, []byte("fuchsia")))

	theme := NewThemeStore(bridge, zerolog.Nop())
	assert.True(t, theme.IsDarkMode(), "anything but the literal \"light\" means dark")
}

func TestTogglePersistsEnumString(t *testing.T) {
	bridge := storage.NewMemoryBridge()
	theme := NewThemeStore(bridge, zerolog.Nop())

	theme.Toggle()
	raw, found, err := bridge.Load(context.Background(), storage.KeyTheme)
	require.NoError(t, err)
	require.True(t, found)
	assert.Equal(t, "light", string(raw))

	theme.Toggle()
	raw, _, _ = bridge.Load(context.Background(), storage.KeyTheme)
	assert.Equal(t, "dark", string(raw))
}

func TestThemeVariables(t *testing.T) {
	theme := NewThemeStore(storage.NewMemoryBridge(), zerolog.Nop())

	dark := theme.Variables()
	assert.Equal(t, "#f5f5f5", dark["--text-primary"])
	assert.Equal(t, "#0a0a0a", dark["--primary-dark"])

	theme.Toggle()
	light := theme.Variables()
	assert.Equal(t, "#1a1a1a", light["--text-primary"])
	assert.Equal(t, "#ffffff", light["--primary-dark"])
}
