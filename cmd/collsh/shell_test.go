package main

import (
	"errors"
	"path/filepath"
	"testing"

	"github.com/npillmayer/gocoll"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

func TestTokenize(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "gocoll.collsh")
	defer teardown()
	//
	lx, err := newLexer()
	if err != nil {
		t.Fatal(err)
	}
	toks, err := lx.Tokenize(`add "hello world" -42;show`)
	if err != nil {
		t.Fatal(err)
	}
	types := []int{tokWord, tokString, tokNumber, tokSemicolon, tokWord}
	if len(toks) != len(types) {
		t.Fatalf("expected %d tokens, have %v", len(types), toks)
	}
	for i, typ := range types {
		if toks[i].typ != typ {
			t.Errorf("token #%d: expected %s, have %v", i, tokenNames[typ], toks[i])
		}
	}
	if toks[1].Value() != "hello world" {
		t.Errorf("expected string value without quotes, have %q", toks[1].Value())
	}
	if cmds := splitCommands(toks); len(cmds) != 2 || len(cmds[0]) != 3 {
		t.Errorf("expected 2 commands, have %v", cmds)
	}
	if _, err = lx.Tokenize("add %"); err == nil {
		t.Errorf("expected error for unconsumed input")
	}
}

func exec(t *testing.T, sh *Shell, line string) []string {
	t.Helper()
	out, err := sh.Exec(line)
	if err != nil {
		t.Fatalf("%s: %v", line, err)
	}
	return out
}

func last(out []string) string {
	if len(out) == 0 {
		return ""
	}
	return out[len(out)-1]
}

func TestShellViews(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "gocoll.collsh")
	defer teardown()
	//
	sh, err := NewShell()
	if err != nil {
		t.Fatal(err)
	}
	if out := exec(t, sh, "add a b c d; sub 1 3; show"); last(out) != "[b, c]" {
		t.Errorf("expected view [b, c], have %v", out)
	}
	if sh.prompt() != "array[view]> " {
		t.Errorf("expected view prompt, have %q", sh.prompt())
	}
	if out := exec(t, sh, "clear; root; show"); last(out) != "[a, d]" {
		t.Errorf("expected [a, d], have %v", out)
	}
	exec(t, sh, "sub 0 1")
	sh.containers["array"].Add("z") // behind the view's back
	if _, err = sh.Exec("show"); !errors.Is(err, gocoll.ErrConcurrentModification) {
		t.Errorf("expected stale view to fail, have %v", err)
	}
	if out := exec(t, sh, "root; sort; split 2"); last(out) != "a | d z" {
		t.Errorf("expected split 'a | d z', have %v", out)
	}
	if out := exec(t, sh, "count 2"); last(out) != "3" {
		t.Errorf("expected count 3, have %v", out)
	}
}

func TestShellContainers(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "gocoll.collsh")
	defer teardown()
	//
	sh, err := NewShell()
	if err != nil {
		t.Fatal(err)
	}
	out := exec(t, sh, "linked; push a; push b; first; pop; last")
	if len(out) != 3 || out[0] != "b" || out[1] != "b" || out[2] != "a" {
		t.Errorf("expected [b b a], have %v", out)
	}
	if out = exec(t, sh, "hash; add x y x; show"); len(out) != 2 || out[0] != "added 2" || out[1] != "[x, y]" {
		t.Errorf("expected set to drop duplicate, have %v", out)
	}
	if _, err = sh.Exec("get 0"); !errors.Is(err, gocoll.ErrUnsupported) {
		t.Errorf("expected sets to have no positions, have %v", err)
	}
	if _, err = sh.Exec("pop"); !errors.Is(err, gocoll.ErrUnsupported) {
		t.Errorf("expected sets to have no ends, have %v", err)
	}
	if _, err = sh.Exec("array; get 5"); !errors.Is(err, gocoll.ErrIndexOutOfBounds) {
		t.Errorf("expected bounds fault, have %v", err)
	}
	if _, err = sh.Exec("frobnicate"); err == nil {
		t.Errorf("expected unknown command to fail")
	}
	if _, err = sh.Exec("insert 0"); err == nil {
		t.Errorf("expected usage error")
	}
	if _, err = sh.Exec("quit"); !errors.Is(err, errQuit) {
		t.Errorf("expected quit, have %v", err)
	}
	if out = exec(t, sh, "help"); len(out) != 1 || len(out[0]) == 0 {
		t.Errorf("expected help text")
	}
}

func TestShellSaveAndLoad(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "gocoll.collsh")
	defer teardown()
	//
	sh, err := NewShell()
	if err != nil {
		t.Fatal(err)
	}
	path := filepath.Join(t.TempDir(), "linked.yaml")
	exec(t, sh, `linked; add 1 2 3; save "`+path+`"; clear`)
	if out := exec(t, sh, `load "`+path+`"; show`); last(out) != "[1, 2, 3]" {
		t.Errorf("expected restored list [1, 2, 3], have %v", out)
	}
	out := exec(t, sh, "save")
	if len(out) != 1 || out[0] == "" {
		t.Fatalf("expected YAML output, have %v", out)
	}
	t.Logf("saved:\n%s", out[0])
	if _, err = sh.Exec("sub 0 1; save"); !errors.Is(err, gocoll.ErrUnsupported) {
		t.Errorf("expected views not to be saveable, have %v", err)
	}
}
