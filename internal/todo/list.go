package todo

import (
	"iter"
	"reflect"
	"strings"
)

// List is an ordered, titled sequence of items. It holds references:
// the same Item may sit in several lists at once.
//
// A List is not safe for concurrent use.
type List struct {
	title string
	items []Item
}

// NewList returns an empty list.
func NewList(title string) *List {
	return &List{title: title}
}

// Title returns the title given to NewList.
func (l *List) Title() string { return l.title }

// Add appends v. Values that do not implement Item, and nil items, are
// rejected with a *TypeError and the list is left untouched.
func (l *List) Add(v any) error {
	it, ok := v.(Item)
	if !ok || isNilItem(it) {
		return &TypeError{Value: v}
	}
	l.items = append(l.items, it)
	return nil
}

// isNilItem catches a nil pointer (or other nil-able value) of any type
// hiding behind a non-nil interface.
func isNilItem(it Item) bool {
	rv := reflect.ValueOf(it)
	switch rv.Kind() {
	case reflect.Pointer, reflect.Map, reflect.Slice, reflect.Func, reflect.Chan, reflect.Interface:
		return rv.IsNil()
	}
	return false
}

// Size returns the number of items.
func (l *List) Size() int { return len(l.items) }

// ToArray returns a copy of the sequence. The items themselves are shared.
func (l *List) ToArray() []Item {
	out := make([]Item, len(l.items))
	copy(out, l.items)
	return out
}

// First returns the first item; ok is false when the list is empty.
func (l *List) First() (Item, bool) {
	if len(l.items) == 0 {
		return nil, false
	}
	return l.items[0], true
}

// Last returns the last item; ok is false when the list is empty.
func (l *List) Last() (Item, bool) {
	if len(l.items) == 0 {
		return nil, false
	}
	return l.items[len(l.items)-1], true
}

// Shift removes and returns the first item.
func (l *List) Shift() (Item, bool) {
	if len(l.items) == 0 {
		return nil, false
	}
	it := l.items[0]
	l.items[0] = nil
	l.items = l.items[1:]
	return it, true
}

// Pop removes and returns the last item.
func (l *List) Pop() (Item, bool) {
	n := len(l.items)
	if n == 0 {
		return nil, false
	}
	it := l.items[n-1]
	l.items[n-1] = nil
	l.items = l.items[:n-1]
	return it, true
}

// ItemAt returns the item at i, or an *IndexError wrapping ErrOutOfRange.
func (l *List) ItemAt(i int) (Item, error) {
	if err := l.check("item at", i); err != nil {
		return nil, err
	}
	return l.items[i], nil
}

// RemoveAt removes the item at i and returns it wrapped in a one-element
// slice. Later items move down one position. An invalid i yields
// ErrOutOfRange and leaves the list as it was.
func (l *List) RemoveAt(i int) ([]Item, error) {
	if err := l.check("remove at", i); err != nil {
		return nil, err
	}
	removed := []Item{l.items[i]}
	copy(l.items[i:], l.items[i+1:])
	l.items[len(l.items)-1] = nil
	l.items = l.items[:len(l.items)-1]
	return removed, nil
}

// MarkDoneAt marks the item at i done; ErrOutOfRange if i is invalid.
func (l *List) MarkDoneAt(i int) error {
	if err := l.check("mark done at", i); err != nil {
		return err
	}
	l.items[i].MarkDone()
	return nil
}

// MarkUndoneAt marks the item at i undone; ErrOutOfRange if i is invalid.
func (l *List) MarkUndoneAt(i int) error {
	if err := l.check("mark undone at", i); err != nil {
		return err
	}
	l.items[i].MarkUndone()
	return nil
}

// MarkAllDone marks every item done, in order.
func (l *List) MarkAllDone() {
	for _, it := range l.items {
		it.MarkDone()
	}
}

// MarkAllUndone marks every item undone, in order.
func (l *List) MarkAllUndone() {
	for _, it := range l.items {
		it.MarkUndone()
	}
}

// IsDone reports whether every item is done. An empty list is done.
func (l *List) IsDone() bool {
	for _, it := range l.items {
		if !it.IsDone() {
			return false
		}
	}
	return true
}

// Stats counts done and pending items.
func (l *List) Stats() (done, pending int) {
	for _, it := range l.items {
		if it.IsDone() {
			done++
		} else {
			pending++
		}
	}
	return
}

// ForEach calls fn for every item in order. fn must not add or remove
// items from l.
func (l *List) ForEach(fn func(Item)) {
	for _, it := range l.items {
		fn(it)
	}
}

// All yields index/item pairs in order. The same restriction as ForEach
// applies to the loop body.
func (l *List) All() iter.Seq2[int, Item] {
	return func(yield func(int, Item) bool) {
		for i, it := range l.items {
			if !yield(i, it) {
				return
			}
		}
	}
}

// Filter returns a new list with the same title holding the items for
// which pred is true. Items are shared with l; the backing storage is not.
func (l *List) Filter(pred func(Item) bool) *List {
	out := NewList(l.title)
	for _, it := range l.items {
		if pred(it) {
			out.items = append(out.items, it)
		}
	}
	return out
}

// String renders a header line followed by one line per item.
func (l *List) String() string {
	var b strings.Builder
	b.WriteString("---- " + l.title + " ----")
	for _, it := range l.items {
		b.WriteByte('\n')
		b.WriteString(it.String())
	}
	return b.String()
}

func (l *List) check(op string, i int) error {
	if i < 0 || i >= len(l.items) {
		return &IndexError{Op: op, Index: i, Size: len(l.items)}
	}
	return nil
}
