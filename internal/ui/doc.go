// Package ui renders user-facing terminal output: operation notices and
// aligned tables.
package ui
