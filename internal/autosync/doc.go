// Package autosync pulls the tracked attachments a note embeds when the note
// is opened.
package autosync
