package main

import (
	"bufio"
	"errors"
	"os"
	"strings"

	"github.com/alecthomas/kong"
	"github.com/chzyer/readline"
	"github.com/pterm/pterm"

	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gologadapter"
)

// CLI holds the command line flags.
var CLI struct {
	Trace string   `short:"t" help:"Trace level [Debug|Info|Error]" default:"Error"`
	Init  string   `short:"i" help:"File with commands to execute on start-up" type:"existingfile"`
	Exec  []string `arg:"" optional:"" help:"Commands to execute instead of going interactive"`
}

// main() starts an interactive shell ("collsh"), where users may manipulate an
// array list, a linked list and a hash set of strings, and watch views, cursors and
// the save format at work.
func main() {
	kong.Parse(&CLI,
		kong.Name("collsh"),
		kong.Description("A playground for gocoll containers."),
	)
	initDisplay()
	shellTracer = gologadapter.New()
	gtrace.SyntaxTracer = shellTracer
	tracer().SetTraceLevel(tracing.TraceLevelFromString(CLI.Trace))
	//
	sh, err := NewShell()
	if err != nil {
		pterm.Error.Println(err.Error())
		os.Exit(3)
	}
	if CLI.Init != "" {
		sh.loadInitFile(CLI.Init)
	}
	if len(CLI.Exec) > 0 {
		if err = sh.eval(strings.Join(CLI.Exec, " ")); err != nil && !errors.Is(err, errQuit) {
			os.Exit(2)
		}
		return
	}
	pterm.Info.Println("Welcome to collsh, quit with <ctrl>D or 'quit'")
	sh.REPL()
}

// We use pterm for moderately fancy output.
func initDisplay() {
	pterm.Info.Prefix = pterm.Prefix{
		Text:  "  >>",
		Style: pterm.NewStyle(pterm.BgCyan, pterm.FgBlack),
	}
	pterm.Error.Prefix = pterm.Prefix{
		Text:  "  Error",
		Style: pterm.NewStyle(pterm.BgRed, pterm.FgBlack),
	}
}

// REPL starts interactive mode.
func (sh *Shell) REPL() {
	repl, err := readline.New(sh.prompt())
	if err != nil {
		tracer().Errorf("%v", err)
		os.Exit(3)
	}
	defer repl.Close()
	for {
		repl.SetPrompt(sh.prompt())
		line, err := repl.Readline()
		if err != nil { // io.EOF or interrupt
			break
		}
		if line = strings.TrimSpace(line); line == "" {
			continue
		}
		if err = sh.eval(line); errors.Is(err, errQuit) {
			break
		}
	}
	pterm.Println("Good bye!")
}

// eval executes a line and prints its results, or the error.
func (sh *Shell) eval(line string) error {
	out, err := sh.Exec(line)
	for _, result := range out {
		pterm.Info.Println(result)
	}
	if err != nil && !errors.Is(err, errQuit) {
		pterm.Error.Println(err.Error())
	}
	return err
}

func (sh *Shell) loadInitFile(filename string) {
	f, err := os.Open(filename)
	if err != nil {
		tracer().Errorf("unable to open init file: %s", filename)
		return
	}
	defer f.Close()
	scanner := bufio.NewScanner(f)
	lineno := 0
	for scanner.Scan() {
		lineno++
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		if _, err := sh.Exec(line); err != nil {
			tracer().Errorf("init file line %d: %v", lineno, err)
		}
	}
	if err := scanner.Err(); err != nil {
		tracer().Errorf("error while reading init file: %v", err)
	}
}
