package todo

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTodo_MarkDoneAndUndone(t *testing.T) {
	td := New("Buy milk")
	assert.False(t, td.IsDone())
	assert.Equal(t, "Buy milk", td.Description())

	td.MarkDone()
	assert.True(t, td.IsDone())
	td.MarkDone()
	assert.True(t, td.IsDone(), "MarkDone is idempotent")

	td.MarkUndone()
	assert.False(t, td.IsDone())
}

func TestTodo_String(t *testing.T) {
	td := New("Clean room")
	assert.Equal(t, "[ ] Clean room", td.String())
	td.MarkDone()
	assert.Equal(t, "[X] Clean room", td.String())
}

func TestParse(t *testing.T) {
	tests := []struct {
		name     string
		line     string
		wantDesc string
		wantDone bool
	}{
		{name: "bare description", line: "Buy milk", wantDesc: "Buy milk"},
		{name: "rendered undone", line: "[ ] Buy milk", wantDesc: "Buy milk"},
		{name: "rendered done", line: "[X] Buy milk", wantDesc: "Buy milk", wantDone: true},
		{name: "lowercase x", line: "[x] Go to the gym", wantDesc: "Go to the gym", wantDone: true},
		{name: "surrounding space", line: "  [X]   Clean room  ", wantDesc: "Clean room", wantDone: true},
		{name: "unknown marker kept", line: "[?] what", wantDesc: "[?] what"},
		{name: "short", line: "[]", wantDesc: "[]"},
		{name: "empty", line: "", wantDesc: ""},
		{name: "marker only", line: "[X]", wantDesc: "", wantDone: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Parse(tt.line)
			assert.Equal(t, tt.wantDesc, got.Description())
			assert.Equal(t, tt.wantDone, got.IsDone())
		})
	}
}

func TestParse_RoundTrip(t *testing.T) {
	td := New("Go to the gym")
	td.MarkDone()
	assert.Equal(t, td, Parse(td.String()))
}
