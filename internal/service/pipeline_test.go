package service

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"github.com/mmcdole/gofeed"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"xcfeed/internal/feed"
	"xcfeed/internal/pilotcache"
	"xcfeed/internal/source/xcontest"
)

// fakeXContest serves profile pages for known usernames and flights per pilot id.
type fakeXContest struct {
	profiles    map[string]string
	flights     map[string]string // keyed by filter[pilot]
	profileHits atomic.Int32
}

func (f *fakeXContest) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	switch {
	case strings.HasPrefix(r.URL.Path, "/world/en/pilots/detail:"):
		f.profileHits.Add(1)
		user := strings.TrimPrefix(r.URL.Path, "/world/en/pilots/detail:")
		page, ok := f.profiles[user]
		if !ok {
			page = "<html>pilot not found</html>"
		}
		_, _ = io.WriteString(w, page)
	case r.URL.Path == "/api/data/":
		body, ok := f.flights[r.URL.Query().Get("filter[pilot]")]
		if !ok {
			body = `{"items": []}`
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = io.WriteString(w, body)
	default:
		http.NotFound(w, r)
	}
}

func item(id int, name, start, duration, routeJSON string) string {
	return fmt.Sprintf(`{"id": %d, "pilot": {"name": %q}, "pointStart": {"time": %q},
		"stats": {"duration": %q},
		"league": {"flight": {"link": "https://x/%d"}%s}}`,
		id, name, start, duration, id, routeJSON)
}

func route(kind string, distance, points float64) string {
	return fmt.Sprintf(`, "route": {"type": %q, "distance": %v, "points": %v}`, kind, distance, points)
}

type pipeline struct {
	service   *FeedService
	cachePath string
	fake      *fakeXContest
	logs      *bytes.Buffer
}

func newPipeline(t *testing.T, fake *fakeXContest, users []string) *pipeline {
	t.Helper()

	server := httptest.NewServer(fake)
	t.Cleanup(server.Close)

	logs := &bytes.Buffer{}
	logger := slog.New(slog.NewTextHandler(logs, nil))
	client := xcontest.New(xcontest.Config{BaseURL: server.URL, Timeout: 5 * time.Second, Year: 2025}, logger)
	cachePath := filepath.Join(t.TempDir(), "pilotIDs.cache.yml")

	svc := NewFeedService(
		client,
		client,
		pilotcache.NewFileStore(cachePath),
		feed.NewRenderer(),
		nil,
		nil,
		logger,
		FeedConfig{Key: "K", URL: "https://example.org", Users: users},
	)

	return &pipeline{service: svc, cachePath: cachePath, fake: fake, logs: logs}
}

// logLine returns the single log line containing all fragments.
func (p *pipeline) logLine(t *testing.T, fragments ...string) string {
	t.Helper()
	var found []string
	for _, line := range strings.Split(p.logs.String(), "\n") {
		match := true
		for _, f := range fragments {
			if !strings.Contains(line, f) {
				match = false
				break
			}
		}
		if match && line != "" {
			found = append(found, line)
		}
	}
	require.Len(t, found, 1, "log:\n%s", p.logs.String())
	return found[0]
}

func parseFeed(t *testing.T, out string) *gofeed.Feed {
	t.Helper()
	f, err := gofeed.NewParser().ParseString(out)
	require.NoError(t, err)
	return f
}

func TestPipeline_EmptyPilotList(t *testing.T) {
	p := newPipeline(t, &fakeXContest{}, []string{})

	out, _, err := p.service.Run(context.Background())
	require.NoError(t, err)

	_, err = os.Stat(p.cachePath)
	assert.True(t, os.IsNotExist(err), "cache file must not be created")

	f := parseFeed(t, out)
	assert.Equal(t, "XContest Flight Feed", f.Title)
	assert.Equal(t, "https://example.org", f.Link)
	assert.Equal(t, "Recent flights", f.Description)
	assert.NotEmpty(t, f.Published)
	assert.Empty(t, f.Items)
}

func TestPipeline_CacheMissOneFlight(t *testing.T) {
	fake := &fakeXContest{
		profiles: map[string]string{"alice": "<script>{ item : 42 }</script>"},
		flights: map[string]string{
			"42": `{"items": [` + item(1001, "Alice", "2025-03-14T10:00:00Z", "PT1H30M", route("FAI", 45.678, 61.23)) + `]}`,
		},
	}
	p := newPipeline(t, fake, []string{"alice"})

	out, _, err := p.service.Run(context.Background())
	require.NoError(t, err)

	ids, err := pilotcache.Load(p.cachePath)
	require.NoError(t, err)
	assert.Equal(t, map[string]uint64{"alice": 42}, ids)

	f := parseFeed(t, out)
	require.Len(t, f.Items, 1)
	it := f.Items[0]
	assert.Equal(t, "Alice: 2025-03-14 - FAI 45.7km (61.2 pts)", it.Title)
	assert.Equal(t, "https://x/1001", it.Link)
	assert.Contains(t, it.Description, "Flight duration: 1h 30m")
	assert.Equal(t, "2025-03-14", it.Published)
	assert.Equal(t, "1001", it.GUID)
}

func TestPipeline_MixedResolution(t *testing.T) {
	fake := &fakeXContest{
		profiles: map[string]string{"alice": "item: 42"},
		flights: map[string]string{
			"42": `{"items": [` +
				item(1, "Alice", "2025-04-30T09:00:00Z", "PT1H", route("free", 10, 10)) + `,` +
				item(2, "Alice", "2025-05-01T09:00:00Z", "PT2H", route("FAI", 20, 30)) + `]}`,
		},
	}
	p := newPipeline(t, fake, []string{"alice", "bob"})

	out, stats, err := p.service.Run(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 1, stats.ResolveErrors)

	line := p.logLine(t, "user=bob")
	assert.Contains(t, line, "level=ERROR")
	assert.Contains(t, line, `error="username not found in page"`)
	assert.NotContains(t, p.logs.String(), "user=alice error=")

	ids, err := pilotcache.Load(p.cachePath)
	require.NoError(t, err)
	assert.Equal(t, map[string]uint64{"alice": 42}, ids)

	f := parseFeed(t, out)
	require.Len(t, f.Items, 2)
	assert.Equal(t, "2", f.Items[0].GUID)
	assert.Equal(t, "1", f.Items[1].GUID)
}

func TestPipeline_CacheHitLeavesFileUntouched(t *testing.T) {
	fake := &fakeXContest{profiles: map[string]string{"alice": "item: 99"}}
	p := newPipeline(t, fake, []string{"alice"})

	original := []byte("# hand written\nalice:   42\n")
	require.NoError(t, os.WriteFile(p.cachePath, original, 0o644))
	before, err := os.Stat(p.cachePath)
	require.NoError(t, err)

	_, _, err = p.service.Run(context.Background())
	require.NoError(t, err)

	assert.Equal(t, int32(0), fake.profileHits.Load())

	after, err := os.ReadFile(p.cachePath)
	require.NoError(t, err)
	assert.Equal(t, original, after)

	info, err := os.Stat(p.cachePath)
	require.NoError(t, err)
	assert.Equal(t, before.ModTime(), info.ModTime())
}

func TestPipeline_UnparseableDuration(t *testing.T) {
	fake := &fakeXContest{
		flights: map[string]string{
			"42": `{"items": [` + item(5, "Alice", "2025-03-14T10:00:00Z", "not-a-duration", route("FAI", 1, 1)) + `]}`,
		},
	}
	p := newPipeline(t, fake, []string{"alice"})
	require.NoError(t, os.WriteFile(p.cachePath, []byte("alice: 42\n"), 0o644))

	out, _, err := p.service.Run(context.Background())
	require.NoError(t, err)

	f := parseFeed(t, out)
	require.Len(t, f.Items, 1)
	assert.Contains(t, f.Items[0].Description, "Flight duration: 0s\n")
}

func TestPipeline_MissingRouteSkipsOnlyThatPilot(t *testing.T) {
	fake := &fakeXContest{
		flights: map[string]string{
			"42": `{"items": [` + item(5, "Alice", "2025-03-14T10:00:00Z", "PT1H", "") + `]}`,
			"43": `{"items": [` + item(6, "Bob", "2025-03-15T10:00:00Z", "PT1H", route("FAI", 1, 1)) + `]}`,
		},
	}
	p := newPipeline(t, fake, []string{"alice", "bob"})
	require.NoError(t, os.WriteFile(p.cachePath, []byte("alice: 42\nbob: 43\n"), 0o644))

	out, stats, err := p.service.Run(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 1, stats.FetchErrors)

	line := p.logLine(t, "user=alice", "level=ERROR")
	assert.Contains(t, line, "pilot_id=42")
	assert.Contains(t, line, "missing expected field in response")
	assert.NotContains(t, p.logs.String(), "user=bob pilot_id=43 error=")

	f := parseFeed(t, out)
	require.Len(t, f.Items, 1)
	assert.Equal(t, "6", f.Items[0].GUID)
}

func TestPipeline_AliasedUsersYieldOneItemPerFlight(t *testing.T) {
	fake := &fakeXContest{
		profiles: map[string]string{
			"alice": "{ item : 42 }",
			"Alice": "{ item : 42 }",
		},
		flights: map[string]string{
			"42": `{"items": [` + item(1001, "Alice", "2025-03-14T10:00:00Z", "PT1H", route("FAI", 1, 1)) + `]}`,
		},
	}
	p := newPipeline(t, fake, []string{"alice", "Alice"})

	out, stats, err := p.service.Run(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 1, stats.Pilots)

	ids, err := pilotcache.Load(p.cachePath)
	require.NoError(t, err)
	assert.Equal(t, map[string]uint64{"alice": 42, "Alice": 42}, ids)

	f := parseFeed(t, out)
	require.Len(t, f.Items, 1)
	assert.Equal(t, "1001", f.Items[0].GUID)
	assert.Equal(t, 1, strings.Count(out, "<guid>1001</guid>"))
}
