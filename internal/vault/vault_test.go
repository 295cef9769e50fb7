package vault

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/fbkclanna/vaultdvc/internal/settings"
	"github.com/fbkclanna/vaultdvc/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_defaults(t *testing.T) {
	dir := testutil.CreateVault(t, nil)

	ctx, err := Load(dir)
	require.NoError(t, err)

	assert.Equal(t, filepath.Join(ctx.Root, ".vaultdvc", "settings.yaml"), ctx.SettingsPath)
	assert.Equal(t, settings.Defaults(), ctx.Settings)
}

func TestLoad_withSettings(t *testing.T) {
	dir := testutil.CreateVault(t, map[string]string{
		".vaultdvc/settings.yaml": "autopull: true\nautopullExtension: [mp4]\n",
	})

	ctx, err := Load(dir)
	require.NoError(t, err)
	assert.True(t, ctx.Settings.AutoPull)
	assert.False(t, ctx.Settings.AutoStage)
	assert.Equal(t, []string{"mp4"}, ctx.Settings.AutoPullExtensions)
}

func TestLoad_invalidSettings(t *testing.T) {
	dir := testutil.CreateVault(t, map[string]string{
		".vaultdvc/settings.yaml": ":::invalid",
	})

	_, err := Load(dir)
	assert.Error(t, err)
}

func TestLoad_notADirectory(t *testing.T) {
	f := filepath.Join(t.TempDir(), "file")
	require.NoError(t, os.WriteFile(f, []byte("x"), 0600))

	_, err := Load(f)
	assert.Error(t, err)

	_, err = Load(filepath.Join(t.TempDir(), "missing"))
	assert.Error(t, err)
}

func TestSaveSettings(t *testing.T) {
	dir := testutil.CreateVault(t, nil)
	ctx, err := Load(dir)
	require.NoError(t, err)

	ctx.Settings.AutoPull = true
	require.NoError(t, ctx.SaveSettings())

	reloaded, err := Load(dir)
	require.NoError(t, err)
	assert.True(t, reloaded.Settings.AutoPull)
}
