package vault

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/fbkclanna/vaultdvc/internal/settings"
)

// SettingsDir is the vault-relative directory holding vaultdvc state.
const SettingsDir = ".vaultdvc"

// Context holds the resolved paths and loaded settings for a vault.
type Context struct {
	Root         string
	SettingsPath string
	Settings     *settings.SyncPolicy
}

// Load resolves the vault root and loads its settings. Missing settings
// yield the defaults.
func Load(root string) (*Context, error) {
	root, err := filepath.Abs(root)
	if err != nil {
		return nil, fmt.Errorf("resolving vault root: %w", err)
	}
	info, err := os.Stat(root)
	if err != nil {
		return nil, fmt.Errorf("opening vault: %w", err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("vault root %s is not a directory", root)
	}

	settingsPath := filepath.Join(root, SettingsDir, "settings.yaml")
	p, err := settings.Load(settingsPath)
	if err != nil {
		return nil, err
	}

	return &Context{
		Root:         root,
		SettingsPath: settingsPath,
		Settings:     p,
	}, nil
}

// SaveSettings persists the current settings.
func (c *Context) SaveSettings() error {
	return settings.Save(c.SettingsPath, c.Settings)
}

// Abs returns the absolute path of a vault-relative path.
func (c *Context) Abs(rel string) string {
	return filepath.Join(c.Root, filepath.FromSlash(rel))
}
