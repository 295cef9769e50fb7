package dvc

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBuild_Line(t *testing.T) {
	tests := []struct {
		name string
		op   string
		arg  Argument
		want string
	}{
		{"empty", "status", None(), "status"},
		{"nil argument", "status", nil, "status"},
		{"single file", "push", File("media/a b.mp4"), `push "media/a b.mp4"`},
		{"file list", "add", Files("a b.txt", "c.txt"), `add "a b.txt" "c.txt"`},
		{"opaque flags", "gc -w -f", None(), "gc -w -f"},
		{"config", "config --local core.autostage true", None(), "config --local core.autostage true"},
		{"empty list", "pull", Files(), "pull"},
		{"embedded quote", "add", File(`say "hi".mp4`), `add "say \"hi\".mp4"`},
		{"shell metacharacters", "add", File("$(rm -rf ~)`x`\\.mp4"), `add "\$(rm -rf ~)\` + "`x\\`" + `\\.mp4"`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Build("dvc", tt.op, tt.arg).Line())
		})
	}
}

func TestBuild_preservesOrder(t *testing.T) {
	cmd := Build("dvc", "pull", Files("z.mp4", "a.mp4", "m.mp4"))
	assert.Equal(t, `pull "z.mp4" "a.mp4" "m.mp4"`, cmd.Line())
}

func TestCommand_String(t *testing.T) {
	assert.Equal(t, "dvc status", Build("dvc", "status", None()).String())
	assert.Equal(t, `dvc add "x.mp4"`, Build("dvc", "add", File("x.mp4")).String())
	assert.Equal(t, "dvc", Build("dvc", "", None()).String())
}

func TestCommand_Argv(t *testing.T) {
	assert.Equal(t, []string{"gc", "-w", "-c", "-f"}, Build("dvc", "gc -w -c -f", None()).Argv())
	assert.Equal(t,
		[]string{"add", `say "hi".mp4`, "a b.txt"},
		Build("dvc", "add", Files(`say "hi".mp4`, "a b.txt")).Argv(),
		"argv carries raw paths",
	)
	assert.Equal(t, []string{"remote", "list"}, Build("dvc", "remote list", nil).Argv())
}
