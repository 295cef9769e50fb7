package vault

import (
	"testing"

	"github.com/fbkclanna/vaultdvc/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseEmbeds(t *testing.T) {
	tests := []struct {
		name string
		src  string
		want []string
	}{
		{"wiki embed", "Watch this:\n\n![[video.mp4]]\n", []string{"video.mp4"}},
		{"wiki alias", "![[video.mp4|intro clip]]", []string{"video.mp4"}},
		{"plain link is not an embed", "[[video.mp4]]", nil},
		{"image embed", "![diagram](media/arch%20v2.png)", []string{"media/arch v2.png"}},
		{"external image skipped", "![logo](https://example.com/logo.png)", nil},
		{"several in one paragraph", "![[a.mp4]] and ![[b.pdf]]", []string{"a.mp4", "b.pdf"}},
		{"underscores survive", "![[my_clip_final.mp4]]", []string{"my_clip_final.mp4"}},
		{"code span ignored", "use `![[x.mp4]]` to embed", nil},
		{"fenced code ignored", "```\n![[x.mp4]]\n```\n", nil},
		{"heading and list", "# ![[title.png]]\n\n- ![[item.mp4]]\n", []string{"title.png", "item.mp4"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ParseEmbeds([]byte(tt.src)))
		})
	}
}

func TestEmbeds_readsNote(t *testing.T) {
	dir := testutil.CreateVault(t, map[string]string{
		"notes/today.md": "![[video.mp4]]\n\n![](doc.pdf)\n",
	})
	ctx, err := Load(dir)
	require.NoError(t, err)

	got, err := ctx.Embeds("notes/today.md")
	require.NoError(t, err)
	assert.Equal(t, []string{"video.mp4", "doc.pdf"}, got)

	_, err = ctx.Embeds("notes/missing.md")
	assert.Error(t, err)
}

func TestEmbeds_nonNote(t *testing.T) {
	dir := testutil.CreateVault(t, map[string]string{
		"media/clip.txt": "![[video.mp4]]\n",
	})
	ctx, err := Load(dir)
	require.NoError(t, err)

	got, err := ctx.Embeds("media/clip.txt")
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestEmbeds_upperCaseExtension(t *testing.T) {
	dir := testutil.CreateVault(t, map[string]string{
		"Trip.MD": "![[video.mp4]]\n",
	})
	ctx, err := Load(dir)
	require.NoError(t, err)

	got, err := ctx.Embeds("Trip.MD")
	require.NoError(t, err)
	assert.Equal(t, []string{"video.mp4"}, got)
}
