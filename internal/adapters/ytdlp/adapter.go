package ytdlp

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"os/exec"
	"sort"
	"strings"

	"legenda/internal/core/domain"
	"legenda/internal/core/ports"
)

const (
	defaultBinary = "yt-dlp"
	// srv1 is YouTube's timedtext XML: <transcript><text start dur>.
	trackFormat = "srv1"
)

// Options configures the yt-dlp caption adapter.
type Options struct {
	Binary     string
	HTTPClient *http.Client
}

type runFunc func(ctx context.Context, name string, args ...string) ([]byte, error)

type ytDlpAdapter struct {
	binary string
	http   *http.Client
	run    runFunc
}

// NewCaptionAdapter resolves caption tracks with yt-dlp and downloads the
// timedtext payload directly.
func NewCaptionAdapter(opts Options) ports.CaptionFetcher {
	return newAdapter(opts, runCommand)
}

func newAdapter(opts Options, run runFunc) *ytDlpAdapter {
	binary := strings.TrimSpace(opts.Binary)
	if binary == "" {
		binary = defaultBinary
	}
	client := opts.HTTPClient
	if client == nil {
		client = http.DefaultClient
	}
	return &ytDlpAdapter{binary: binary, http: client, run: run}
}

// Internal struct to match yt-dlp JSON output
type ytDlpJSON struct {
	ID                string                  `json:"id"`
	Title             string                  `json:"title"`
	Subtitles         map[string][]trackEntry `json:"subtitles"`
	AutomaticCaptions map[string][]trackEntry `json:"automatic_captions"`
}

type trackEntry struct {
	Ext  string `json:"ext"`
	URL  string `json:"url"`
	Name string `json:"name"`
}

func (a *ytDlpAdapter) FetchCaptions(ctx context.Context, videoID, language string) ([]domain.CaptionEntry, error) {
	// yt-dlp -J --skip-download --no-playlist url
	watchURL := "https://www.youtube.com/watch?v=" + videoID
	output, err := a.run(ctx, a.binary, "-J", "--skip-download", "--no-playlist", watchURL)
	if err != nil {
		return nil, fmt.Errorf("yt-dlp error: %w", err)
	}

	var data ytDlpJSON
	if err := json.Unmarshal(output, &data); err != nil {
		return nil, fmt.Errorf("yt-dlp: decode metadata: %w", err)
	}

	track, ok := selectTrack(data, language)
	if !ok {
		return nil, fmt.Errorf("yt-dlp: no %s %s track for %s: %w", language, trackFormat, videoID, domain.ErrCaptionsUnavailable)
	}

	return a.download(ctx, track.URL)
}

// selectTrack prefers uploaded subtitles over automatic captions, and an
// exact language key over a regional variant ("en" before "en-GB").
func selectTrack(data ytDlpJSON, language string) (trackEntry, bool) {
	for _, tracks := range []map[string][]trackEntry{data.Subtitles, data.AutomaticCaptions} {
		if t, ok := findFormat(tracks[language]); ok {
			return t, true
		}
		prefix := language + "-"
		keys := make([]string, 0, len(tracks))
		for key := range tracks {
			if strings.HasPrefix(key, prefix) {
				keys = append(keys, key)
			}
		}
		sort.Strings(keys)
		for _, key := range keys {
			if t, ok := findFormat(tracks[key]); ok {
				return t, true
			}
		}
	}
	return trackEntry{}, false
}

func findFormat(tracks []trackEntry) (trackEntry, bool) {
	for _, t := range tracks {
		if t.Ext == trackFormat && t.URL != "" {
			return t, true
		}
	}
	return trackEntry{}, false
}

func runCommand(ctx context.Context, name string, args ...string) ([]byte, error) {
	cmd := exec.CommandContext(ctx, name, args...)
	out, err := cmd.Output()
	if err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) && len(exitErr.Stderr) > 0 {
			return nil, fmt.Errorf("%s: %w", strings.TrimSpace(string(exitErr.Stderr)), err)
		}
		return nil, err
	}
	return out, nil
}
