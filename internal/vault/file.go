package vault

import (
	"path"
	"strings"
)

// MarkerExtension is the extension of the pointer files DVC writes next to
// tracked data (video.mp4 is tracked by video.mp4.dvc).
const MarkerExtension = "dvc"

// File is one file of the vault.
type File struct {
	// Path is relative to the vault root and slash-separated.
	Path string `json:"path"`
	// Basename is the file name without its final extension.
	Basename string `json:"basename"`
	// Extension is the final extension without the dot.
	Extension string `json:"extension"`
}

// MarkerFile is a File whose extension is MarkerExtension.
type MarkerFile = File

// NewFile builds a File from a vault-relative path.
func NewFile(rel string) File {
	rel = strings.TrimPrefix(path.Clean("/"+toSlash(rel)), "/")
	name := path.Base(rel)
	ext := path.Ext(name)
	if ext == name {
		// Dotfiles such as ".gitignore" have no extension.
		ext = ""
	}
	return File{
		Path:      rel,
		Basename:  strings.TrimSuffix(name, ext),
		Extension: strings.TrimPrefix(ext, "."),
	}
}

// IsMarker reports whether f is a DVC marker file.
func (f File) IsMarker() bool {
	return f.Extension == MarkerExtension
}

// IsNote reports whether f is a markdown note. The extension is matched
// case-insensitively.
func (f File) IsNote() bool {
	return strings.EqualFold(f.Extension, "md")
}

// DataPath returns the path of the data tracked by a marker file.
func (f File) DataPath() string {
	return strings.TrimSuffix(f.Path, "."+MarkerExtension)
}

func toSlash(p string) string {
	return strings.ReplaceAll(p, "\\", "/")
}
