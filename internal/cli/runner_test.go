package cli

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Makepad-fr/tada/internal/todo"
	"github.com/Makepad-fr/tada/internal/ui"
)

var todays = []string{"Buy milk", "Clean room", "Go to the gym"}

func run(t *testing.T, opt Options, args ...string) (code int, stdout, stderr string) {
	t.Helper()
	ui.SetTheme("mono")
	t.Cleanup(func() { ui.SetTheme("classic") })

	var out, errb bytes.Buffer
	opt.Stdout, opt.Stderr = &out, &errb
	if opt.Title == "" {
		opt.Title = "Today's Todos"
	}
	code = Run(args, opt)
	return code, out.String(), errb.String()
}

func TestRun_Render(t *testing.T) {
	code, out, _ := run(t, Options{}, append([]string{"render"}, todays...)...)
	assert.Equal(t, 0, code)
	assert.Equal(t, "---- Today's Todos ----\n"+
		"[ ] Buy milk\n"+
		"[ ] Clean room\n"+
		"[ ] Go to the gym\n", out)
}

func TestRun_RenderParsesDoneItems(t *testing.T) {
	code, out, _ := run(t, Options{}, "render", "[X] Buy milk", "[ ] Clean room")
	assert.Equal(t, 0, code)
	assert.Equal(t, "---- Today's Todos ----\n[X] Buy milk\n[ ] Clean room\n", out)
}

func TestRun_Indexed(t *testing.T) {
	tests := []struct {
		name    string
		args    []string
		wantOut string
		wantErr string
	}{
		{
			name:    "done",
			args:    append([]string{"done", "1"}, todays...),
			wantOut: "---- Today's Todos ----\n[X] Buy milk\n[ ] Clean room\n[ ] Go to the gym\n",
			wantErr: "x marked done\n",
		},
		{
			name:    "undone",
			args:    []string{"undone", "2", "[X] Buy milk", "[X] Clean room"},
			wantOut: "---- Today's Todos ----\n[X] Buy milk\n[ ] Clean room\n",
			wantErr: "x marked undone\n",
		},
		{
			name:    "rm",
			args:    append([]string{"rm", "2"}, todays...),
			wantOut: "---- Today's Todos ----\n[ ] Buy milk\n[ ] Go to the gym\n",
			wantErr: "x removed: Clean room\n",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			code, out, errOut := run(t, Options{}, tt.args...)
			assert.Equal(t, 0, code)
			assert.Equal(t, tt.wantOut, out)
			assert.Equal(t, tt.wantErr, errOut)
		})
	}
}

func TestRun_IndexOutOfRange(t *testing.T) {
	for _, cmd := range []string{"done", "undone", "rm"} {
		t.Run(cmd, func(t *testing.T) {
			code, out, errOut := run(t, Options{}, append([]string{cmd, "7"}, todays...)...)
			assert.Equal(t, 2, code)
			assert.Empty(t, out)
			assert.Contains(t, errOut, "index out of range: have 3, got 6")
			assert.Contains(t, errOut, "Hint: run `tada ls`")
		})
	}
}

func TestRun_Usage(t *testing.T) {
	tests := []struct {
		name string
		args []string
	}{
		{name: "no args"},
		{name: "unknown", args: []string{"frobnicate"}},
		{name: "done without index", args: []string{"done"}},
		{name: "done with word", args: []string{"done", "two", "Buy milk"}},
		{name: "empty item", args: []string{"render", "Buy milk", "  "}},
		{name: "ls bad flag", args: []string{"ls", "-nope"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			code, _, _ := run(t, Options{}, tt.args...)
			assert.Equal(t, 2, code)
		})
	}
}

func TestRun_Help(t *testing.T) {
	code, out, _ := run(t, Options{}, "help")
	assert.Equal(t, 0, code)
	assert.Contains(t, out, "Subcommands:")
}

func TestRun_All(t *testing.T) {
	code, out, _ := run(t, Options{}, append([]string{"all"}, todays...)...)
	assert.Equal(t, 0, code)
	assert.Equal(t, "---- Today's Todos ----\n[X] Buy milk\n[X] Clean room\n[X] Go to the gym\n", out)
}

func TestRun_Ends(t *testing.T) {
	tests := []struct {
		cmd  string
		want string
	}{
		{cmd: "first", want: "[ ] Buy milk\n"},
		{cmd: "last", want: "[ ] Go to the gym\n"},
		{cmd: "shift", want: "[ ] Buy milk\n---- Today's Todos ----\n[ ] Clean room\n[ ] Go to the gym\n"},
		{cmd: "pop", want: "[ ] Go to the gym\n---- Today's Todos ----\n[ ] Buy milk\n[ ] Clean room\n"},
	}
	for _, tt := range tests {
		t.Run(tt.cmd, func(t *testing.T) {
			code, out, _ := run(t, Options{}, append([]string{tt.cmd}, todays...)...)
			assert.Equal(t, 0, code)
			assert.Equal(t, tt.want, out)
		})
	}

	code, out, _ := run(t, Options{}, "pop")
	assert.Equal(t, 0, code)
	assert.Equal(t, "no items\n", out)
}

func TestRun_ListMatchAndGroup(t *testing.T) {
	code, out, _ := run(t, Options{Group: true}, "ls", "-match", "gym", "[X] Buy milk", "Clean room", "Go to the gym")
	assert.Equal(t, 0, code)
	assert.Contains(t, out, "Go to the gym")
	assert.NotContains(t, out, "Clean room")
	assert.Contains(t, out, "Pending")
	assert.Contains(t, out, "(none)")
}

func TestRun_TUI(t *testing.T) {
	var got *todo.List
	opt := Options{RunTUI: func(l *todo.List) (bool, error) {
		got = l
		return true, l.MarkDoneAt(0)
	}}
	code, out, _ := run(t, opt, append([]string{"tui"}, todays...)...)
	assert.Equal(t, 0, code)
	require.NotNil(t, got)
	assert.Equal(t, "---- Today's Todos ----\n[X] Buy milk\n[ ] Clean room\n[ ] Go to the gym\n", out)
}
