package vault

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/fbkclanna/vaultdvc/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRel(t *testing.T) {
	dir := testutil.CreateVault(t, nil)
	ctx, err := Load(dir)
	require.NoError(t, err)

	tests := []struct {
		name string
		in   string
		want string
		err  bool
	}{
		{"absolute inside", filepath.Join(ctx.Root, "media", "a b.mp4"), "media/a b.mp4", false},
		{"root itself", ctx.Root, "", true},
		{"outside", filepath.Join(ctx.Root, "..", "elsewhere.txt"), "", true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ctx.Rel(tt.in)
			if tt.err {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestRel_relativeToWorkingDir(t *testing.T) {
	dir := testutil.CreateVault(t, nil)
	ctx, err := Load(dir)
	require.NoError(t, err)
	wd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(ctx.Root))
	t.Cleanup(func() { _ = os.Chdir(wd) })

	got, err := ctx.Rel("notes/today.md")
	require.NoError(t, err)
	assert.Equal(t, "notes/today.md", got)
}

func TestRelAll(t *testing.T) {
	dir := testutil.CreateVault(t, nil)
	ctx, err := Load(dir)
	require.NoError(t, err)

	got, err := ctx.RelAll([]string{filepath.Join(ctx.Root, "a.mp4"), filepath.Join(ctx.Root, "b.pdf")})
	require.NoError(t, err)
	assert.Equal(t, []string{"a.mp4", "b.pdf"}, got)

	_, err = ctx.RelAll([]string{filepath.Join(ctx.Root, "a.mp4"), "/"})
	assert.Error(t, err)
}
