package ui

import (
	"fmt"

	"github.com/Makepad-fr/tada/internal/todo"
)

// Header renders the list title with done / pending / total counts.
func Header(l *todo.List) string {
	t := Current()
	d, p := l.Stats()
	return fmt.Sprintf("%s  %s %d  %s %d  %s %d",
		t.Title.Render(l.Title()),
		t.Success.Render(t.SymDone), d,
		t.Pending.Render(t.SymPending), p,
		t.Accent.Render("Total"), l.Size(),
	)
}

// Box returns the themed check box for it.
func Box(it todo.Item) string {
	t := Current()
	if it.IsDone() {
		return t.Success.Render(t.BoxChecked)
	}
	return t.Muted.Render(t.BoxUnchecked)
}

// ListLines renders one numbered line per item. Numbers are 1-based
// positions in l, also when group splits the output into Pending / Done.
func ListLines(l *todo.List, group bool) []string {
	t := Current()
	if l.Size() == 0 && !group {
		return []string{t.Muted.Render("no items")}
	}

	var all, pend, done []string
	for i, it := range l.All() {
		line := itemLine(i, it)
		all = append(all, line)
		if it.IsDone() {
			done = append(done, line)
		} else {
			pend = append(pend, line)
		}
	}
	if !group {
		return all
	}

	var lines []string
	lines = append(lines, t.Accent.Render("Pending"))
	lines = append(lines, orNone(pend)...)
	lines = append(lines, "")
	lines = append(lines, t.Accent.Render("Done"))
	lines = append(lines, orNone(done)...)
	return lines
}

func itemLine(i int, it todo.Item) string {
	idx := fmt.Sprintf("%2d.", i+1)
	return fmt.Sprintf("%s %s %s",
		Current().Muted.Render(idx), Box(it), Truncate(it.Description(), maxTitle))
}

func orNone(lines []string) []string {
	if len(lines) == 0 {
		return []string{Current().Muted.Render("(none)")}
	}
	return lines
}

// View is the full `ls` screen: header, progress bar and item lines in a panel.
func View(l *todo.List, group bool, tip string) string {
	t := Current()
	d, p := l.Stats()

	var lines []string
	lines = append(lines, Header(l))
	lines = append(lines, t.Muted.Render(ProgressBar(d, d+p, 28)))
	lines = append(lines, "")
	lines = append(lines, ListLines(l, group)...)
	if tip != "" {
		lines = append(lines, "")
		lines = append(lines, t.Muted.Render(tip))
	}
	return Panel(lines)
}
