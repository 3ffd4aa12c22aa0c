package main

import (
	"bytes"
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

const transcript = `{"author":"assistant","text":"Hel","partial":true}
{"author":"assistant","text":"lo wo","partial":true}
{"author":"assistant","text":"Hello world","final":true}
`

func TestOpenInputFileAndURL(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "input.jsonl")
	if err := os.WriteFile(path, []byte("hello"), 0o644); err != nil {
		t.Fatalf("write temp file: %v", err)
	}
	reader, closer, err := openInputs([]string{path})
	if err != nil {
		t.Fatalf("openInputs file: %v", err)
	}
	if closer != nil {
		defer func() { _ = closer.Close() }()
	}
	buf, _ := io.ReadAll(reader)
	if string(buf) != "hello" {
		t.Fatalf("unexpected file content: %q", string(buf))
	}

	fileURL := "file://" + path
	reader, closer, err = openInputs([]string{fileURL})
	if err != nil {
		t.Fatalf("openInputs file URL: %v", err)
	}
	if closer != nil {
		defer func() { _ = closer.Close() }()
	}
	buf, _ = io.ReadAll(reader)
	if string(buf) != "hello" {
		t.Fatalf("unexpected file URL content: %q", string(buf))
	}

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte("stream"))
	}))
	defer srv.Close()
	reader, closer, err = openInputs([]string{srv.URL})
	if err != nil {
		t.Fatalf("openInputs http: %v", err)
	}
	if closer != nil {
		defer func() { _ = closer.Close() }()
	}
	buf, _ = io.ReadAll(reader)
	if string(buf) != "stream" {
		t.Fatalf("unexpected http content: %q", string(buf))
	}
}

func TestOpenInputsSeparatesSources(t *testing.T) {
	dir := t.TempDir()
	first := filepath.Join(dir, "a.jsonl")
	second := filepath.Join(dir, "b.jsonl")
	if err := os.WriteFile(first, []byte("one"), 0o644); err != nil {
		t.Fatalf("write first: %v", err)
	}
	if err := os.WriteFile(second, []byte("two"), 0o644); err != nil {
		t.Fatalf("write second: %v", err)
	}
	reader, closer, err := openInputs([]string{first, second})
	if err != nil {
		t.Fatalf("openInputs concat: %v", err)
	}
	if closer != nil {
		defer func() { _ = closer.Close() }()
	}
	buf, _ := io.ReadAll(reader)
	if string(buf) != "one\ntwo" {
		t.Fatalf("unexpected concatenated content: %q", string(buf))
	}
	if _, _, err := openInputs([]string{" "}); err == nil {
		t.Fatalf("expected error for empty argument")
	}
}

func TestParseOptionsConfigFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "chatmd.yaml")
	cfg := "theme: nord\nwidth: 72\ndelay: 15ms\nlog_level: debug\nanswers: true\n"
	if err := os.WriteFile(path, []byte(cfg), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	opts, err := parseOptions([]string{"--config", path, "--width", "100", "in.jsonl"}, io.Discard)
	if err != nil {
		t.Fatalf("parseOptions: %v", err)
	}
	if opts.themeName != "nord" {
		t.Fatalf("expected theme from config, got %q", opts.themeName)
	}
	if opts.width != 100 {
		t.Fatalf("expected flag width to win, got %d", opts.width)
	}
	if opts.delay != 15*time.Millisecond {
		t.Fatalf("expected delay from config, got %v", opts.delay)
	}
	if opts.logLevel != "debug" || !opts.answers {
		t.Fatalf("unexpected config values: %+v", opts)
	}
	if len(opts.inputs) != 1 || opts.inputs[0] != "in.jsonl" {
		t.Fatalf("unexpected inputs: %v", opts.inputs)
	}
}

func TestParseOptionsMissingConfig(t *testing.T) {
	_, err := parseOptions([]string{"--config", filepath.Join(t.TempDir(), "missing.yaml")}, io.Discard)
	if err == nil {
		t.Fatalf("expected error for missing config")
	}
}

func TestRunReplaysTranscript(t *testing.T) {
	path := filepath.Join(t.TempDir(), "turn.jsonl")
	if err := os.WriteFile(path, []byte(transcript), 0o644); err != nil {
		t.Fatalf("write transcript: %v", err)
	}
	var stdout, stderr bytes.Buffer
	code := run(context.Background(), []string{"--boring", "--width", "40", "--answers", path}, &stdout, &stderr)
	if code != 0 {
		t.Fatalf("run exited %d: %s", code, stderr.String())
	}
	if got := stdout.String(); got != "Hello world\n" {
		t.Fatalf("unexpected output %q", got)
	}
	if !strings.Contains(stderr.String(), "] Hello world") {
		t.Fatalf("expected answer on stderr, got %q", stderr.String())
	}
}

func TestRunWritesOutputFile(t *testing.T) {
	dir := t.TempDir()
	in := filepath.Join(dir, "turn.jsonl")
	out := filepath.Join(dir, "out", "render.txt")
	if err := os.WriteFile(in, []byte(transcript), 0o644); err != nil {
		t.Fatalf("write transcript: %v", err)
	}
	var stdout, stderr bytes.Buffer
	if code := run(context.Background(), []string{"-b", "-w", "40", "-o", out, in}, &stdout, &stderr); code != 0 {
		t.Fatalf("run exited %d: %s", code, stderr.String())
	}
	data, err := os.ReadFile(out)
	if err != nil {
		t.Fatalf("read output: %v", err)
	}
	if string(data) != "Hello world\n" {
		t.Fatalf("unexpected output file %q", string(data))
	}
	if stdout.Len() != 0 {
		t.Fatalf("expected nothing on stdout, got %q", stdout.String())
	}
}

func TestRunListThemes(t *testing.T) {
	var stdout, stderr bytes.Buffer
	if code := run(context.Background(), []string{"--list-themes"}, &stdout, &stderr); code != 0 {
		t.Fatalf("run exited %d", code)
	}
	for _, name := range []string{"default", "gruvbox", "boring"} {
		if !strings.Contains(stdout.String(), name+"\n") {
			t.Fatalf("expected %q in theme list %q", name, stdout.String())
		}
	}
}

func TestRunRejectsBadFlags(t *testing.T) {
	var stdout, stderr bytes.Buffer
	if code := run(context.Background(), []string{"--theme", "nope"}, &stdout, &stderr); code != 2 {
		t.Fatalf("expected exit 2 for unknown theme, got %d", code)
	}
	if code := run(context.Background(), []string{"--log-level", "loud"}, &stdout, &stderr); code != 2 {
		t.Fatalf("expected exit 2 for bad log level, got %d", code)
	}
	if code := run(context.Background(), []string{"--help"}, &stdout, &stderr); code != 0 {
		t.Fatalf("expected exit 0 for help, got %d", code)
	}
}
