package main

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"legenda/internal/config"
	"legenda/internal/core/domain"
	"legenda/internal/core/ports"
)

type stubFetcher struct {
	entries []domain.CaptionEntry
	err     error
}

func (s stubFetcher) FetchCaptions(ctx context.Context, videoID, language string) ([]domain.CaptionEntry, error) {
	return s.entries, s.err
}

func useStubFetcher(t *testing.T, fetcher ports.CaptionFetcher) {
	t.Helper()
	original := newCaptionFetcher
	newCaptionFetcher = func(config.Captions) ports.CaptionFetcher { return fetcher }
	t.Cleanup(func() { newCaptionFetcher = original })
}

func runCLI(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	t.Setenv("HOST", "")
	t.Setenv("PORT", "")
	cmd := newRootCommand()
	var stdout, stderr bytes.Buffer
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	cmd.SetArgs(args)
	err := cmd.ExecuteContext(context.Background())
	return stdout.String(), stderr.String(), err
}

func missingConfig(t *testing.T) string {
	t.Helper()
	return filepath.Join(t.TempDir(), "absent.toml")
}

func TestFetchWritesPlainTextToStdout(t *testing.T) {
	useStubFetcher(t, stubFetcher{entries: []domain.CaptionEntry{{Text: "a"}, {Text: "b"}}})

	stdout, _, err := runCLI(t, "--config", missingConfig(t), "fetch", "https://youtu.be/dQw4w9WgXcQ", "--format", "txt", "--output", "-")
	if err != nil {
		t.Fatalf("fetch failed: %v", err)
	}
	if stdout != "a b" {
		t.Fatalf("unexpected stdout %q", stdout)
	}
}

func TestFetchWritesFileIntoDirectory(t *testing.T) {
	useStubFetcher(t, stubFetcher{entries: []domain.CaptionEntry{{Start: 0, Duration: 2.5, Text: "Hi"}}})
	dir := t.TempDir()

	_, _, err := runCLI(t, "--config", missingConfig(t), "fetch", "https://www.youtube.com/watch?v=dQw4w9WgXcQ", "-o", dir)
	if err != nil {
		t.Fatalf("fetch failed: %v", err)
	}
	data, err := os.ReadFile(filepath.Join(dir, "dQw4w9WgXcQ.srt"))
	if err != nil {
		t.Fatalf("read output: %v", err)
	}
	if string(data) != "1\n00:00:00,000 --> 00:00:02,500\nHi" {
		t.Fatalf("unexpected file content %q", data)
	}
}

func TestFetchInvalidURL(t *testing.T) {
	useStubFetcher(t, stubFetcher{})

	_, _, err := runCLI(t, "--config", missingConfig(t), "fetch", "not a url")
	if err == nil || !strings.Contains(err.Error(), "invalid YouTube URL") {
		t.Fatalf("expected invalid url error, got %v", err)
	}
}

func TestFetchFailure(t *testing.T) {
	useStubFetcher(t, stubFetcher{err: errors.New("boom")})

	_, _, err := runCLI(t, "--config", missingConfig(t), "fetch", "https://youtu.be/dQw4w9WgXcQ", "-o", "-")
	if err == nil || !strings.Contains(err.Error(), "failed to fetch subtitles") {
		t.Fatalf("expected fetch error, got %v", err)
	}
}

func TestConfigInitAndShow(t *testing.T) {
	path := filepath.Join(t.TempDir(), "legenda.toml")

	stdout, _, err := runCLI(t, "config", "init", "--path", path)
	if err != nil {
		t.Fatalf("config init failed: %v", err)
	}
	if !strings.Contains(stdout, path) {
		t.Fatalf("expected path in output, got %q", stdout)
	}

	if _, _, err := runCLI(t, "config", "init", "--path", path); err == nil {
		t.Fatal("expected error when config already exists")
	}

	stdout, _, err = runCLI(t, "--config", path, "config", "show")
	if err != nil {
		t.Fatalf("config show failed: %v", err)
	}
	for _, want := range []string{path, "captions.language", "0.0.0.0:3000", "youtube"} {
		if !strings.Contains(stdout, want) {
			t.Fatalf("expected %q in output:\n%s", want, stdout)
		}
	}
}

func TestInvalidConfigFailsBeforeRunning(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.toml")
	if err := os.WriteFile(path, []byte("[captions]\nbackend = \"scraper\"\n"), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	_, _, err := runCLI(t, "--config", path, "fetch", "https://youtu.be/dQw4w9WgXcQ")
	if err == nil || !strings.Contains(err.Error(), "captions.backend") {
		t.Fatalf("expected config validation error, got %v", err)
	}
}

func TestRenderSettings(t *testing.T) {
	out := renderSettings([][2]string{{"captions.language", "en"}, {"server.address", "0.0.0.0:3000"}})
	lines := strings.Split(strings.TrimSpace(out), "\n")
	if len(lines) != 6 {
		t.Fatalf("expected header, two rows and borders in 6 lines, got %d:\n%s", len(lines), out)
	}
	if !strings.Contains(lines[3], "captions.language") || !strings.Contains(lines[3], "en") {
		t.Fatalf("unexpected first row %q", lines[3])
	}
	if !strings.Contains(lines[4], "0.0.0.0:3000") {
		t.Fatalf("unexpected second row %q", lines[4])
	}
}
