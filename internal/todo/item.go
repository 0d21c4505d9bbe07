package todo

import (
	"fmt"
	"strings"
)

// Item is what a List accepts. *Todo is the stock implementation;
// anything else exposing the same methods is welcome too.
type Item interface {
	fmt.Stringer
	Description() string
	IsDone() bool
	MarkDone()
	MarkUndone()
}

// Todo is a single task. Always handled by pointer, so every list holding
// it sees the same done flag.
type Todo struct {
	description string
	done        bool
}

var _ Item = (*Todo)(nil)

// New returns an undone Todo.
func New(description string) *Todo {
	return &Todo{description: description}
}

func (t *Todo) Description() string { return t.description }
func (t *Todo) IsDone() bool        { return t.done }
func (t *Todo) MarkDone()           { t.done = true }
func (t *Todo) MarkUndone()         { t.done = false }

func (t *Todo) String() string {
	box := "[ ]"
	if t.done {
		box = "[X]"
	}
	return box + " " + t.description
}

// Parse reads one line in rendered form ("[X] Buy milk", "[ ] Buy milk")
// or a bare description. A lowercase x counts as done. A marker with
// nothing after it ("[X]") and blank input both give an empty
// description; callers that need one must check Description().
func Parse(line string) *Todo {
	s := strings.TrimSpace(line)
	if len(s) >= 3 && s[0] == '[' && s[2] == ']' {
		switch s[1] {
		case 'X', 'x':
			t := New(strings.TrimSpace(s[3:]))
			t.MarkDone()
			return t
		case ' ':
			return New(strings.TrimSpace(s[3:]))
		}
	}
	return New(s)
}
