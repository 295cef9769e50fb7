// Package settings handles the persisted sync policy of a vault.
// The policy is stored as a flat YAML object in .vaultdvc/settings.yaml,
// loaded once per command with defaults applied for absent fields and
// written back on every change.
package settings
