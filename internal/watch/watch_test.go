package watch

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/fbkclanna/vaultdvc/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func startWatcher(t *testing.T, root string) <-chan Event {
	t.Helper()
	w, err := New(root, nil)
	require.NoError(t, err)

	events := make(chan Event, 64)
	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		defer close(done)
		_ = w.Run(ctx, func(ev Event) { events <- ev })
	}()
	t.Cleanup(func() {
		cancel()
		<-done
	})
	return events
}

// nextEvent returns the next event of the given kind, skipping others.
func nextEvent(t *testing.T, events <-chan Event, kind Kind) string {
	t.Helper()
	timeout := time.After(5 * time.Second)
	for {
		select {
		case ev := <-events:
			if ev.Kind == kind {
				return ev.Path
			}
		case <-timeout:
			t.Fatalf("timed out waiting for a %s event", kind)
			return ""
		}
	}
}

// waitEvent waits until want arrives.
func waitEvent(t *testing.T, events <-chan Event, want Event) {
	t.Helper()
	timeout := time.After(5 * time.Second)
	for {
		select {
		case ev := <-events:
			if ev == want {
				return
			}
		case <-timeout:
			t.Fatalf("timed out waiting for %+v", want)
		}
	}
}

func TestNew_skipsHiddenDirs(t *testing.T) {
	root := testutil.CreateVault(t, map[string]string{
		"a.md":                "",
		"sub/b.md":            "",
		".obsidian/app.json":  "{}",
		".dvc/config":         "",
		"sub/deeper/c.md.dvc": "",
	})
	w, err := New(root, nil)
	require.NoError(t, err)
	defer func() { _ = w.fsw.Close() }()

	// root, sub, sub/deeper
	assert.Equal(t, 3, w.WatchedDirs())
}

func TestRun_reportsNoteWrites(t *testing.T) {
	root := testutil.CreateVault(t, map[string]string{"sub/keep.txt": ""})
	events := startWatcher(t, root)

	require.NoError(t, os.WriteFile(filepath.Join(root, "sub", "ignored.txt"), []byte("x"), 0644))
	require.NoError(t, os.WriteFile(filepath.Join(root, "sub", "trip.md"), []byte("![[video.mp4]]"), 0644))

	assert.Equal(t, "sub/trip.md", nextEvent(t, events, NoteChanged))
}

func TestRun_newDirectory(t *testing.T) {
	root := testutil.CreateVault(t, nil)
	events := startWatcher(t, root)

	dir := filepath.Join(root, "journal")
	require.NoError(t, os.Mkdir(dir, 0755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "today.md"), []byte("hi"), 0644))

	assert.Equal(t, "journal/today.md", nextEvent(t, events, NoteChanged))
}

func TestRun_hiddenFilesIgnored(t *testing.T) {
	root := testutil.CreateVault(t, nil)
	events := startWatcher(t, root)

	require.NoError(t, os.WriteFile(filepath.Join(root, ".draft.md"), []byte("x"), 0644))
	require.NoError(t, os.WriteFile(filepath.Join(root, "visible.md"), []byte("x"), 0644))

	assert.Equal(t, "visible.md", nextEvent(t, events, NoteChanged))
}

func TestRun_stopsOnCancel(t *testing.T) {
	root := testutil.CreateVault(t, nil)
	w, err := New(root, nil)
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	assert.NoError(t, w.Run(ctx, func(Event) {}))
}

func TestRun_upperCaseNoteExtension(t *testing.T) {
	root := testutil.CreateVault(t, nil)
	events := startWatcher(t, root)

	require.NoError(t, os.WriteFile(filepath.Join(root, "Trip.MD"), []byte("x"), 0644))

	assert.Equal(t, "Trip.MD", nextEvent(t, events, NoteChanged))
}

func TestRun_reportsMarkerChanges(t *testing.T) {
	root := testutil.CreateVault(t, map[string]string{"media/old.mp4.dvc": ""})
	events := startWatcher(t, root)

	require.NoError(t, os.WriteFile(filepath.Join(root, "media", "new.mp4.dvc"), []byte("outs: []"), 0644))
	assert.Equal(t, "media/new.mp4.dvc", nextEvent(t, events, MarkerChanged))

	require.NoError(t, os.Remove(filepath.Join(root, "media", "old.mp4.dvc")))
	waitEvent(t, events, Event{Kind: MarkerChanged, Path: "media/old.mp4.dvc"})
}

func TestRun_newDirectoryWithMarker(t *testing.T) {
	root := testutil.CreateVault(t, nil)
	events := startWatcher(t, root)

	staged := filepath.Join(t.TempDir(), "media")
	require.NoError(t, os.Mkdir(staged, 0755))
	require.NoError(t, os.WriteFile(filepath.Join(staged, "clip.mp4.dvc"), []byte(""), 0644))
	require.NoError(t, os.Rename(staged, filepath.Join(root, "media")))

	assert.Equal(t, "media/clip.mp4.dvc", nextEvent(t, events, MarkerChanged))
}
