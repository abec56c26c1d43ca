package metadata_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"songblog-backend/internal/infrastructure/metadata"
)

const trackPage = `<!DOCTYPE html><html><head>
<meta property="og:title" content="Never Gonna Give You Up">
<meta property="og:description" content="Rick Astley · Song · 1987">
<meta property="og:image" content="https://i.scdn.co/image/ab67616d00001e02_300x300">
</head><body></body></html>`

// newUpstream giả lập cả oEmbed endpoint (/oembed) và trang track (/track/...)
func newUpstream(t *testing.T, oembedStatus int, oembedBody string, page string) (*httptest.Server, *int) {
	t.Helper()
	pageHits := 0
	mux := http.NewServeMux()
	mux.HandleFunc("/oembed", func(w http.ResponseWriter, r *http.Request) {
		assert.NotEmpty(t, r.URL.Query().Get("url"))
		w.WriteHeader(oembedStatus)
		_, _ = w.Write([]byte(oembedBody))
	})
	mux.HandleFunc("/track/", func(w http.ResponseWriter, r *http.Request) {
		pageHits++
		assert.Equal(t, "test-agent", r.Header.Get("User-Agent"))
		if page == "" {
			w.WriteHeader(http.StatusForbidden)
			return
		}
		_, _ = w.Write([]byte(page))
	})
	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)
	return srv, &pageHits
}

func newFetcher(srv *httptest.Server) *metadata.SpotifyFetcher {
	return metadata.NewSpotifyFetcher(srv.Client(), srv.URL+"/oembed", "test-agent")
}

func TestFetch_OEmbedComplete(t *testing.T) {
	srv, pageHits := newUpstream(t, http.StatusOK,
		`{"title":"Song A","author_name":"Band A","thumbnail_url":"https://img.test/640x640/abc"}`, trackPage)

	md, err := newFetcher(srv).Fetch(context.Background(), srv.URL+"/track/1")
	require.NoError(t, err)

	assert.Equal(t, "Song A", md.Title)
	assert.Equal(t, "Band A", md.Artist)
	require.NotNil(t, md.CoverURL)
	assert.Equal(t, "https://img.test/1200x1200/abc", *md.CoverURL)
	assert.Equal(t, srv.URL+"/track/1", md.SourceURL)
	assert.Equal(t, 0, *pageHits, "scrape must not run when oembed is complete")
}

func TestFetch_FallbackScrape(t *testing.T) {
	srv, pageHits := newUpstream(t, http.StatusOK, `{"title":"","thumbnail_url":""}`, trackPage)

	md, err := newFetcher(srv).Fetch(context.Background(), srv.URL+"/track/2")
	require.NoError(t, err)

	assert.Equal(t, 1, *pageHits)
	assert.Equal(t, "Never Gonna Give You Up", md.Title)
	assert.Equal(t, "Rick Astley", md.Artist)
	require.NotNil(t, md.CoverURL)
	assert.Equal(t, "https://i.scdn.co/image/ab67616d00001e02_1200x1200", *md.CoverURL)
}

func TestFetch_ScrapeKeepsOEmbedTitle(t *testing.T) {
	srv, _ := newUpstream(t, http.StatusOK, `{"title":"From OEmbed"}`, trackPage)

	md, err := newFetcher(srv).Fetch(context.Background(), srv.URL+"/track/3")
	require.NoError(t, err)

	assert.Equal(t, "From OEmbed", md.Title)
	assert.Equal(t, "Rick Astley", md.Artist)
}

func TestFetch_ScrapeFailureIsNotFatal(t *testing.T) {
	srv, pageHits := newUpstream(t, http.StatusOK, `{}`, "")

	md, err := newFetcher(srv).Fetch(context.Background(), srv.URL+"/track/4")
	require.NoError(t, err)

	assert.Equal(t, 1, *pageHits)
	assert.Equal(t, metadata.DefaultTitle, md.Title)
	assert.Equal(t, metadata.DefaultArtist, md.Artist)
	assert.Nil(t, md.CoverURL)
}

func TestFetch_OEmbedErrorIsFatal(t *testing.T) {
	srv, pageHits := newUpstream(t, http.StatusNotFound, `{"error":"not found"}`, trackPage)

	md, err := newFetcher(srv).Fetch(context.Background(), srv.URL+"/track/5")
	require.Error(t, err)
	assert.Nil(t, md)
	assert.Equal(t, 0, *pageHits)
}

func TestFetch_Timeout(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(200 * time.Millisecond)
		_, _ = w.Write([]byte(`{}`))
	}))
	defer srv.Close()

	client := &http.Client{Timeout: 20 * time.Millisecond}
	f := metadata.NewSpotifyFetcher(client, srv.URL+"/oembed", "test-agent")

	_, err := f.Fetch(context.Background(), "https://open.spotify.com/track/x")
	assert.Error(t, err)
}

func TestArtistFromDescription(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"standard", "Rick Astley · Song · 1987", "Rick Astley"},
		{"no separator", "  Daft Punk  ", "Daft Punk"},
		{"empty", "", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, metadata.ArtistFromDescription(tt.in))
		})
	}
}

func TestUpgradeResolution(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"path segment", "https://i.scdn.co/image/300x300/ab67", "https://i.scdn.co/image/1200x1200/ab67"},
		{"no token", "https://i.scdn.co/image/ab67616d0000b273", "https://i.scdn.co/image/ab67616d0000b273"},
		{"two digit sides", "https://img.test/64x64.jpg", "https://img.test/64x64.jpg"},
		{"underscore prefix", "https://img.test/ab_640x640", "https://img.test/ab_1200x1200"},
		{"at string start", "300x300.jpg", "1200x1200.jpg"},
		{"only first token", "https://img.test/300x300/640x640", "https://img.test/1200x1200/640x640"},
		{"five digit sides", "https://img.test/12345x67890/a.jpg", "https://img.test/12345x67890/a.jpg"},
		{"date prefix", "https://img.test/20240101x300/a.jpg", "https://img.test/20240101x300/a.jpg"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, metadata.UpgradeResolution(tt.in))
		})
	}
}
