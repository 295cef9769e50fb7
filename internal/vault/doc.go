// Package vault models the notes vault on disk: it resolves the vault root
// and settings, lists the vault's files, maintains the index of DVC marker
// files, and extracts the attachment embeds of markdown notes.
package vault
