package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"sort"
	"strconv"
	"strings"
	"sync/atomic"

	"github.com/npillmayer/gocoll"
	"github.com/npillmayer/gocoll/arraylist"
	"github.com/npillmayer/gocoll/codec"
	"github.com/npillmayer/gocoll/hashset"
	"github.com/npillmayer/gocoll/linkedlist"
)

// errQuit is returned by command "quit".
var errQuit = errors.New("quit")

// Shell holds the containers a user may experiment with. Elements are strings.
// At any time, one container is current; commands operate on it, or on a sub-list
// view of it.
type Shell struct {
	lexer      *lexer
	containers map[string]gocoll.Collection[string]
	name       string              // name of the current container
	view       gocoll.List[string] // sub-list view, if selected
	commands   map[string]command
}

type command struct {
	args    string // argument synopsis for help
	help    string
	minArgs int
	run     func(sh *Shell, args []string) (string, error)
}

// NewShell creates a shell with an array list, a linked list and a set (keeping
// insertion order). The array list is current.
func NewShell() (*Shell, error) {
	lx, err := newLexer()
	if err != nil {
		return nil, err
	}
	sh := &Shell{
		lexer: lx,
		containers: map[string]gocoll.Collection[string]{
			"array":  arraylist.New[string](),
			"linked": linkedlist.New[string](),
			"hash":   hashset.NewWith[string](hashset.NewLinkedGodsMap[string, struct{}]()),
		},
		name: "array",
	}
	sh.commands = shellCommands()
	return sh, nil
}

// Exec tokenizes and executes a command line. Commands may be separated by
// semicolons; execution stops at the first error.
func (sh *Shell) Exec(line string) ([]string, error) {
	toks, err := sh.lexer.Tokenize(line)
	if err != nil {
		return nil, err
	}
	var out []string
	for _, cmd := range splitCommands(toks) {
		if cmd[0].typ != tokWord {
			return out, fmt.Errorf("command expected at column %d, found %s", cmd[0].col, cmd[0].lexeme)
		}
		args := make([]string, len(cmd)-1)
		for i, t := range cmd[1:] {
			args[i] = t.Value()
		}
		result, err := sh.dispatch(strings.ToLower(cmd[0].lexeme), args)
		if err != nil {
			return out, err
		}
		if result != "" {
			out = append(out, result)
		}
	}
	return out, nil
}

func (sh *Shell) dispatch(name string, args []string) (string, error) {
	tracer().Debugf("command %s %v", name, args)
	if _, ok := sh.containers[name]; ok { // shortcut for "use <name>"
		args, name = []string{name}, "use"
	}
	cmd, ok := sh.commands[name]
	if !ok {
		return "", fmt.Errorf("unknown command %q, try 'help'", name)
	}
	if len(args) < cmd.minArgs {
		return "", fmt.Errorf("usage: %s %s", name, cmd.args)
	}
	return cmd.run(sh, args)
}

// Current returns the collection commands operate on.
func (sh *Shell) Current() gocoll.Collection[string] {
	if sh.view != nil {
		return sh.view
	}
	return sh.containers[sh.name]
}

func (sh *Shell) list() (gocoll.List[string], error) {
	if l, ok := sh.Current().(gocoll.List[string]); ok {
		return l, nil
	}
	return nil, gocoll.Unsupported(sh.name + " has no positions")
}

func (sh *Shell) deque() (gocoll.Deque[string], error) {
	if d, ok := sh.Current().(gocoll.Deque[string]); ok {
		return d, nil
	}
	return nil, gocoll.Unsupported(sh.name + " has no ends")
}

func (sh *Shell) prompt() string {
	if sh.view != nil {
		return sh.name + "[view]> "
	}
	return sh.name + "> "
}

func index(arg string) (int, error) {
	i, err := strconv.Atoi(arg)
	if err != nil {
		return 0, fmt.Errorf("%w: not a position: %s", gocoll.ErrIllegalArgument, arg)
	}
	return i, nil
}

// --- Commands --------------------------------------------------------------

func shellCommands() map[string]command {
	return map[string]command{
		"use": {"array|linked|hash", "select the current container", 1, cmdUse},
		"add": {"x …", "add elements", 1, func(sh *Shell, args []string) (string, error) {
			c := sh.Current()
			n := 0
			for _, x := range args {
				added, err := c.Add(x)
				if err != nil {
					return "", err
				}
				if added {
					n++
				}
			}
			return fmt.Sprintf("added %d", n), nil
		}},
		"insert": {"i x", "insert x at position i", 2, func(sh *Shell, args []string) (string, error) {
			l, err := sh.list()
			if err != nil {
				return "", err
			}
			i, err := index(args[0])
			if err != nil {
				return "", err
			}
			return "", l.Insert(i, args[1])
		}},
		"get": {"i", "print the element at position i", 1, func(sh *Shell, args []string) (string, error) {
			l, err := sh.list()
			if err != nil {
				return "", err
			}
			i, err := index(args[0])
			if err != nil {
				return "", err
			}
			return l.Get(i)
		}},
		"set": {"i x", "replace the element at position i", 2, func(sh *Shell, args []string) (string, error) {
			l, err := sh.list()
			if err != nil {
				return "", err
			}
			i, err := index(args[0])
			if err != nil {
				return "", err
			}
			old, err := l.Set(i, args[1])
			return "was " + old, err
		}},
		"del": {"i", "remove the element at position i", 1, func(sh *Shell, args []string) (string, error) {
			l, err := sh.list()
			if err != nil {
				return "", err
			}
			i, err := index(args[0])
			if err != nil {
				return "", err
			}
			return l.RemoveAt(i)
		}},
		"remove": {"x", "remove an element by value", 1, func(sh *Shell, args []string) (string, error) {
			removed, err := sh.Current().Remove(args[0])
			return strconv.FormatBool(removed), err
		}},
		"contains": {"x", "test for an element", 1, func(sh *Shell, args []string) (string, error) {
			return strconv.FormatBool(sh.Current().Contains(args[0])), nil
		}},
		"push": {"x", "push x onto the front", 1, func(sh *Shell, args []string) (string, error) {
			d, err := sh.deque()
			if err != nil {
				return "", err
			}
			d.Push(args[0])
			return "", nil
		}},
		"pop": {"", "pop the front element", 0, func(sh *Shell, args []string) (string, error) {
			d, err := sh.deque()
			if err != nil {
				return "", err
			}
			return d.Pop()
		}},
		"first": {"", "print the front element", 0, func(sh *Shell, args []string) (string, error) {
			d, err := sh.deque()
			if err != nil {
				return "", err
			}
			return d.GetFirst()
		}},
		"last": {"", "print the back element", 0, func(sh *Shell, args []string) (string, error) {
			d, err := sh.deque()
			if err != nil {
				return "", err
			}
			return d.GetLast()
		}},
		"sub": {"from to", "select a view of positions [from,to)", 2, cmdSub},
		"root": {"", "leave the view", 0, func(sh *Shell, args []string) (string, error) {
			sh.view = nil
			return "", nil
		}},
		"sort": {"", "sort the array list", 0, func(sh *Shell, args []string) (string, error) {
			if sh.view != nil {
				return "", gocoll.Unsupported("sort of a view")
			}
			a, ok := sh.Current().(*arraylist.List[string])
			if !ok {
				return "", gocoll.Unsupported("sort of " + sh.name)
			}
			return "", a.Sort(gocoll.NaturalOrder[string])
		}},
		"clear": {"", "remove all elements", 0, func(sh *Shell, args []string) (string, error) {
			return "", sh.Current().Clear()
		}},
		"size": {"", "print the number of elements", 0, func(sh *Shell, args []string) (string, error) {
			return strconv.Itoa(sh.Current().Size()), nil
		}},
		"show": {"", "print the elements", 0, func(sh *Shell, args []string) (string, error) {
			if sh.view != nil {
				if _, err := sh.view.Get(0); errors.Is(err, gocoll.ErrConcurrentModification) {
					return "", err
				}
			}
			return gocoll.String(sh.Current()), nil
		}},
		"split": {"n", "split into at most n parts and print them", 1, cmdSplit},
		"count": {"workers", "count the elements in parallel", 1, func(sh *Shell, args []string) (string, error) {
			w, err := index(args[0])
			if err != nil {
				return "", err
			}
			var n atomic.Int64
			err = gocoll.Parallel(context.Background(), sh.Current().Spliterator(), w, func(string) {
				n.Add(1)
			})
			return strconv.FormatInt(n.Load(), 10), err
		}},
		"save": {"[\"file\"]", "save as YAML, to a file or the terminal", 0, cmdSave},
		"load": {"\"file\"", "replace the current container by a saved one", 1, cmdLoad},
		"help": {"", "print this text", 0, cmdHelp},
		"quit": {"", "leave the shell", 0, func(sh *Shell, args []string) (string, error) {
			return "", errQuit
		}},
	}
}

func cmdUse(sh *Shell, args []string) (string, error) {
	if _, ok := sh.containers[args[0]]; !ok {
		return "", fmt.Errorf("%w: no container %q", gocoll.ErrIllegalArgument, args[0])
	}
	sh.name, sh.view = args[0], nil
	return "", nil
}

func cmdSub(sh *Shell, args []string) (string, error) {
	l, err := sh.list()
	if err != nil {
		return "", err
	}
	from, err := index(args[0])
	if err != nil {
		return "", err
	}
	to, err := index(args[1])
	if err != nil {
		return "", err
	}
	v, err := l.SubList(from, to)
	if err != nil {
		return "", err
	}
	sh.view = v
	return "", nil
}

func cmdSplit(sh *Shell, args []string) (string, error) {
	n, err := index(args[0])
	if err != nil {
		return "", err
	}
	parts := gocoll.Split(sh.Current().Spliterator(), n)
	var b strings.Builder
	for i, part := range parts {
		var elems []string
		if err := part.ForEachRemaining(func(e string) { elems = append(elems, e) }); err != nil {
			return "", err
		}
		if i > 0 {
			b.WriteString(" | ")
		}
		b.WriteString(strings.Join(elems, " "))
	}
	return b.String(), nil
}

func cmdSave(sh *Shell, args []string) (string, error) {
	saver, ok := sh.Current().(gocoll.Saver[string])
	if !ok {
		return "", gocoll.Unsupported("save of a view")
	}
	data, err := codec.Marshal[string](saver)
	if err != nil {
		return "", err
	}
	if len(args) == 0 {
		return strings.TrimRight(string(data), "\n"), nil
	}
	if err = os.WriteFile(args[0], data, 0644); err != nil {
		return "", err
	}
	return fmt.Sprintf("saved %s to %s", sh.name, args[0]), nil
}

func cmdLoad(sh *Shell, args []string) (string, error) {
	f, err := os.Open(args[0])
	if err != nil {
		return "", err
	}
	defer f.Close()
	dec, err := codec.Decode[string](f)
	if err != nil {
		return "", err
	}
	var c gocoll.Collection[string]
	switch sh.name {
	case "array":
		c, err = arraylist.Restore[string](dec)
	case "linked":
		c, err = linkedlist.Restore[string](dec)
	default:
		c, err = hashset.Restore[string](dec, hashset.NewLinkedGodsMap[string, struct{}]())
	}
	if err != nil {
		return "", err
	}
	sh.containers[sh.name], sh.view = c, nil
	return fmt.Sprintf("loaded %d elements", c.Size()), nil
}

func cmdHelp(sh *Shell, args []string) (string, error) {
	names := make([]string, 0, len(sh.commands))
	for name := range sh.commands {
		names = append(names, name)
	}
	sort.Strings(names)
	var b strings.Builder
	for i, name := range names {
		cmd := sh.commands[name]
		if i > 0 {
			b.WriteString("\n")
		}
		fmt.Fprintf(&b, "%-8s %-18s %s", name, cmd.args, cmd.help)
	}
	return b.String(), nil
}
