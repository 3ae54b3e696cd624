package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestDefault(t *testing.T) {
	c := Default()
	if c.Prompt != "user> " {
		t.Errorf("Prompt = %q", c.Prompt)
	}
	opts := c.CoreOptions()
	if !opts.CrossTypeEquality || opts.ExtendedCount {
		t.Errorf("CoreOptions = %+v", opts)
	}
}

func TestParse(t *testing.T) {
	src := `
prompt: "mal> "
history_file: ""
debug_eval: true
equality:
  cross_type_sequences: false
sequences:
  extended_count: true
`
	c, err := Parse(strings.NewReader(src))
	if err != nil {
		t.Fatal(err)
	}
	if c.Prompt != "mal> " || !c.DebugEval || c.HistoryPath() != "" {
		t.Errorf("parsed %+v", c)
	}
	opts := c.CoreOptions()
	if opts.CrossTypeEquality || !opts.ExtendedCount {
		t.Errorf("CoreOptions = %+v", opts)
	}
}

func TestParseKeepsDefaultsForMissingKeys(t *testing.T) {
	c, err := Parse(strings.NewReader("debug_eval: true\n"))
	if err != nil {
		t.Fatal(err)
	}
	if c.Prompt != "user> " || !c.Equality.CrossTypeSequences {
		t.Errorf("defaults lost: %+v", c)
	}

	empty, err := Parse(strings.NewReader(""))
	if err != nil {
		t.Fatalf("empty document: %v", err)
	}
	if empty.Prompt != "user> " {
		t.Errorf("empty document Prompt = %q", empty.Prompt)
	}
}

func TestParseRejectsUnknownKeys(t *testing.T) {
	if _, err := Parse(strings.NewReader("promtp: x\n")); err == nil {
		t.Error("expected error for unknown key")
	}
}

func TestLoad(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "mal.yaml")
	if err := os.WriteFile(path, []byte("prompt: \"file> \"\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	c, err := Load(path)
	if err != nil || c.Prompt != "file> " {
		t.Fatalf("Load(path) = %+v, %v", c, err)
	}

	t.Setenv(EnvVar, path)
	c, err = Load("")
	if err != nil || c.Prompt != "file> " {
		t.Fatalf("Load via %s = %+v, %v", EnvVar, c, err)
	}

	if _, err := Load(filepath.Join(dir, "missing.yaml")); err == nil {
		t.Error("expected error for missing file")
	}
}

func TestLoadWithoutAnyFile(t *testing.T) {
	t.Setenv(EnvVar, "")
	t.Setenv("HOME", t.TempDir())

	c, err := Load("")
	if err != nil {
		t.Fatal(err)
	}
	if c.Prompt != "user> " {
		t.Errorf("Prompt = %q", c.Prompt)
	}
}

func TestHistoryPath(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	c := Default()
	if got, want := c.HistoryPath(), filepath.Join(home, ".mal_history"); got != want {
		t.Errorf("HistoryPath = %q, want %q", got, want)
	}

	c.HistoryFile = "/tmp/hist"
	if got := c.HistoryPath(); got != "/tmp/hist" {
		t.Errorf("absolute HistoryPath = %q", got)
	}
}
