package cli

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"strconv"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"
	"github.com/sahilm/fuzzy"

	"github.com/Makepad-fr/tada/internal/todo"
	"github.com/Makepad-fr/tada/internal/tui"
	"github.com/Makepad-fr/tada/internal/ui"
)

// Options tune output behavior from root flags.
type Options struct {
	Title  string // list title
	Group  bool   // ls grouped by pending/done
	Logger *log.Logger

	Stdout, Stderr io.Writer
	// RunTUI replaces the interactive session; used by tests.
	RunTUI func(*todo.List) (bool, error)
}

type runner struct {
	opt Options
	log *log.Logger
	out io.Writer
	err io.Writer
}

func newRunner(opt Options) *runner {
	r := &runner{opt: opt, log: opt.Logger, out: opt.Stdout, err: opt.Stderr}
	if r.log == nil {
		r.log = log.New(io.Discard)
	}
	if r.out == nil {
		r.out = os.Stdout
	}
	if r.err == nil {
		r.err = os.Stderr
	}
	if r.opt.Title == "" {
		r.opt.Title = "Todos"
	}
	if r.opt.RunTUI == nil {
		r.opt.RunTUI = func(l *todo.List) (bool, error) { return tui.Run(l, tea.WithAltScreen()) }
	}
	return r
}

// errUsage marks errors that should exit with code 2.
var errUsage = errors.New("usage")

// Run dispatches subcommands and returns an exit code (0 ok, 1 error, 2 usage).
func Run(args []string, opt Options) int {
	r := newRunner(opt)
	if len(args) == 0 {
		PrintHelp(r.err)
		return 2
	}
	cmd, a := args[0], args[1:]

	var err error
	switch cmd {
	case "help", "-h", "--help":
		PrintHelp(r.out)
		return 0
	case "render":
		err = r.doRender(a)
	case "ls":
		err = r.doList(a)
	case "done", "undone", "rm":
		err = r.doIndexed(cmd, a)
	case "all":
		err = r.doAll(a)
	case "first", "last", "shift", "pop":
		err = r.doEnd(cmd, a)
	case "tui":
		err = r.doTUI(a)
	default:
		ui.Fail(r.err, "unknown subcommand: "+cmd)
		fmt.Fprintln(r.err)
		PrintHelp(r.err)
		return 2
	}
	return r.exit(err)
}

func (r *runner) exit(err error) int {
	if err == nil {
		return 0
	}
	ui.Fail(r.err, err.Error())
	switch {
	case errors.Is(err, todo.ErrOutOfRange):
		ui.Hint(r.err, "Hint: run `tada ls` to see valid indexes")
		return 2
	case errors.Is(err, errUsage), errors.Is(err, todo.ErrTypeMismatch):
		return 2
	}
	return 1
}

func PrintHelp(w io.Writer) {
	fmt.Fprint(w, `tada - a tiny todo list CLI

Usage:
  tada [flags] <subcommand> [args] <item...>

Items are descriptions, optionally in rendered form: "[X] Buy milk" starts done.

Subcommands:
  render <item...>          Print the list as plain text
  ls [-match q] <item...>   Show the list in a panel (fuzzy filter with -match)
  done <index> <item...>    Mark the item at 1-based index done
  undone <index> <item...>  Mark the item at 1-based index undone
  rm <index> <item...>      Remove the item at 1-based index
  all <item...>             Mark every item done
  first|last <item...>      Print the first/last item
  shift|pop <item...>       Remove the first/last item and print the rest
  tui <item...>             Edit the list interactively

Flags:
  -title <t>   list title (default from config, "Todos")
  -theme <t>   classic | neon | mono
  -group       group ls output by pending/done
  -config <p>  config file (default ~/.tada/config.toml)
  -v           debug logging

Examples:
  tada render "Buy milk" "Clean room"
  tada done 2 "Buy milk" "Clean room"
  tada -group ls "[X] Buy milk" "Go to the gym"
`)
}

// -------------- subcommand impls ----------------

// build turns item arguments into a list.
func (r *runner) build(args []string) (*todo.List, error) {
	l := todo.NewList(r.opt.Title)
	for _, a := range args {
		t := todo.Parse(a)
		if t.Description() == "" {
			return nil, fmt.Errorf("%w: empty item", errUsage)
		}
		if err := l.Add(t); err != nil {
			return nil, err
		}
	}
	r.log.Debug("built list", "title", l.Title(), "size", l.Size())
	return l, nil
}

func (r *runner) doRender(args []string) error {
	l, err := r.build(args)
	if err != nil {
		return err
	}
	fmt.Fprintln(r.out, l.String())
	return nil
}

func (r *runner) doList(args []string) error {
	fs := flag.NewFlagSet("ls", flag.ContinueOnError)
	fs.SetOutput(r.err)
	match := fs.String("match", "", "fuzzy filter on descriptions")
	if err := fs.Parse(args); err != nil {
		return fmt.Errorf("%w: ls: %v", errUsage, err)
	}
	l, err := r.build(fs.Args())
	if err != nil {
		return err
	}
	if *match != "" {
		l = l.Filter(fuzzyMatcher(*match))
		r.log.Debug("filtered", "op", "filter", "match", *match, "size", l.Size())
	}
	fmt.Fprintln(r.out, ui.View(l, r.opt.Group, "Tip: mark done with `tada done <index> ...`"))
	return nil
}

// fuzzyMatcher reports items whose description fuzzily contains pattern.
func fuzzyMatcher(pattern string) func(todo.Item) bool {
	return func(it todo.Item) bool {
		return len(fuzzy.Find(pattern, []string{it.Description()})) > 0
	}
}

func (r *runner) doIndexed(cmd string, args []string) error {
	if len(args) == 0 {
		return fmt.Errorf("%w: tada %s <index> <item...>", errUsage, cmd)
	}
	n, err := strconv.Atoi(args[0])
	if err != nil {
		return fmt.Errorf("%w: %s: not a number: %s", errUsage, cmd, args[0])
	}
	l, err := r.build(args[1:])
	if err != nil {
		return err
	}
	idx := n - 1
	r.log.Debug("indexed op", "op", cmd, "index", idx, "size", l.Size())

	switch cmd {
	case "done":
		if err := l.MarkDoneAt(idx); err != nil {
			return err
		}
		ui.OK(r.err, "marked done")
	case "undone":
		if err := l.MarkUndoneAt(idx); err != nil {
			return err
		}
		ui.OK(r.err, "marked undone")
	case "rm":
		removed, err := l.RemoveAt(idx)
		if err != nil {
			return err
		}
		ui.OK(r.err, "removed: "+removed[0].Description())
	}
	fmt.Fprintln(r.out, l.String())
	return nil
}

func (r *runner) doAll(args []string) error {
	l, err := r.build(args)
	if err != nil {
		return err
	}
	l.MarkAllDone()
	r.log.Debug("marked all done", "op", "all", "size", l.Size())
	fmt.Fprintln(r.out, l.String())
	return nil
}

func (r *runner) doEnd(cmd string, args []string) error {
	l, err := r.build(args)
	if err != nil {
		return err
	}

	var (
		it todo.Item
		ok bool
	)
	switch cmd {
	case "first":
		it, ok = l.First()
	case "last":
		it, ok = l.Last()
	case "shift":
		it, ok = l.Shift()
	case "pop":
		it, ok = l.Pop()
	}
	r.log.Debug("end op", "op", cmd, "found", ok, "size", l.Size())
	if !ok {
		ui.Hint(r.out, "no items")
		return nil
	}

	fmt.Fprintln(r.out, it.String())
	if cmd == "shift" || cmd == "pop" {
		fmt.Fprintln(r.out, l.String())
	}
	return nil
}

func (r *runner) doTUI(args []string) error {
	l, err := r.build(args)
	if err != nil {
		return err
	}
	changed, err := r.opt.RunTUI(l)
	if err != nil {
		return fmt.Errorf("tui: %w", err)
	}
	r.log.Debug("tui closed", "changed", changed, "size", l.Size())
	fmt.Fprintln(r.out, l.String())
	return nil
}
