package settings

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/mitchellh/mapstructure"
	"gopkg.in/yaml.v3"
)

// Load reads a settings file. A missing file yields the defaults.
func Load(path string) (*SyncPolicy, error) {
	data, err := os.ReadFile(path) //nolint:gosec // path is the vault settings path
	if err != nil {
		if os.IsNotExist(err) {
			return Defaults(), nil
		}
		return nil, fmt.Errorf("reading settings: %w", err)
	}
	return Parse(data)
}

// Parse parses settings content over the defaults, so absent keys keep
// their default values.
func Parse(data []byte) (*SyncPolicy, error) {
	p := Defaults()
	if err := yaml.Unmarshal(data, p); err != nil {
		return nil, fmt.Errorf("parsing settings YAML: %w", err)
	}
	if p.AutoPullExtensions == nil {
		p.AutoPullExtensions = []string{}
	}
	return p, nil
}

// Save writes the settings file, creating its directory if needed.
func Save(path string, p *SyncPolicy) error {
	data, err := yaml.Marshal(p)
	if err != nil {
		return fmt.Errorf("marshaling settings: %w", err)
	}
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil { //nolint:gosec // settings dir lives inside the vault
		return fmt.Errorf("creating settings directory: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil { //nolint:gosec // settings file needs to be readable
		return fmt.Errorf("writing settings: %w", err)
	}
	return nil
}

// ParseExtensions splits a space-separated extension list. Surrounding and
// repeated whitespace is ignored; blank input yields an empty list.
func ParseExtensions(s string) []string {
	fields := strings.Fields(s)
	if fields == nil {
		return []string{}
	}
	return fields
}

// Apply sets one key from its textual value, e.g. ("autopull", "true") or
// ("autopullExtension", "mp4 pdf"). Booleans accept strconv.ParseBool forms
// and must not be blank; only the extension list may be cleared.
func Apply(p *SyncPolicy, key, value string) error {
	input := map[string]any{key: value}
	if strings.EqualFold(key, "autopullExtension") {
		input = map[string]any{"autopullExtension": ParseExtensions(value)}
	} else if strings.TrimSpace(value) == "" {
		return fmt.Errorf("setting %s: a value is required", key)
	}

	dec, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		TagName:          "yaml",
		WeaklyTypedInput: true,
		ErrorUnused:      true,
		ZeroFields:       true,
		Result:           p,
	})
	if err != nil {
		return fmt.Errorf("creating settings decoder: %w", err)
	}
	if err := dec.Decode(input); err != nil {
		return fmt.Errorf("setting %s=%q: %w (keys: %s)", key, value, err, strings.Join(Keys, ", "))
	}
	return nil
}

// Value renders the current value of key for display.
func Value(p *SyncPolicy, key string) (string, error) {
	switch strings.ToLower(key) {
	case "autostage":
		return fmt.Sprintf("%t", p.AutoStage), nil
	case "autopull":
		return fmt.Sprintf("%t", p.AutoPull), nil
	case "autopullextension":
		return strings.Join(p.AutoPullExtensions, " "), nil
	default:
		return "", fmt.Errorf("unknown setting %q (keys: %s)", key, strings.Join(Keys, ", "))
	}
}
