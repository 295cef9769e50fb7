package vault

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewFile(t *testing.T) {
	tests := []struct {
		in   string
		want File
	}{
		{"video.mp4.dvc", File{Path: "video.mp4.dvc", Basename: "video.mp4", Extension: "dvc"}},
		{"notes/today.md", File{Path: "notes/today.md", Basename: "today", Extension: "md"}},
		{"./media/clip one.mov", File{Path: "media/clip one.mov", Basename: "clip one", Extension: "mov"}},
		{"README", File{Path: "README", Basename: "README", Extension: ""}},
		{".gitignore", File{Path: ".gitignore", Basename: ".gitignore", Extension: ""}},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, NewFile(tt.in))
		})
	}
}

func TestFile_predicates(t *testing.T) {
	m := NewFile("media/video.mp4.dvc")
	assert.True(t, m.IsMarker())
	assert.False(t, m.IsNote())
	assert.Equal(t, "media/video.mp4", m.DataPath())

	n := NewFile("today.md")
	assert.True(t, n.IsNote())
	assert.False(t, n.IsMarker())

	assert.True(t, NewFile("Trip.MD").IsNote())
}
