package metadata

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"regexp"
	"strings"
	"time"

	"golang.org/x/net/html"

	"songblog-backend/pkg/logger"
)

const (
	DefaultTitle  = "Unknown Title"
	DefaultArtist = "Unknown Artist"

	// giới hạn body đọc từ oEmbed / trang HTML
	maxBodyBytes = 2 << 20
)

// dimensionToken match "300x300", "640x640", "1000x1000"... trong thumbnail URL.
// Hai đầu không được là chữ số, nên "12345x67890" hay "20240101x300" không phải token.
var dimensionToken = regexp.MustCompile(`(^|\D)(\d{3,4}x\d{3,4})(\D|$)`)

// TrackMetadata là kết quả của một lần fetch
type TrackMetadata struct {
	Title     string
	Artist    string
	CoverURL  *string
	SourceURL string
}

type oembedResponse struct {
	Title        string `json:"title"`
	AuthorName   string `json:"author_name"`
	ThumbnailURL string `json:"thumbnail_url"`
}

// SpotifyFetcher lấy metadata của track: oEmbed trước, scrape og:* meta tags khi thiếu field
type SpotifyFetcher struct {
	client    *http.Client
	oembedURL string
	userAgent string
}

func NewSpotifyFetcher(client *http.Client, oembedURL, userAgent string) *SpotifyFetcher {
	if client == nil {
		client = &http.Client{Timeout: 10 * time.Second}
	}
	return &SpotifyFetcher{
		client:    client,
		oembedURL: oembedURL,
		userAgent: userAgent,
	}
}

// Fetch chỉ fail khi bước oEmbed fail; lỗi scrape được log và bỏ qua
func (f *SpotifyFetcher) Fetch(ctx context.Context, sourceURL string) (*TrackMetadata, error) {
	oe, err := f.fetchOEmbed(ctx, sourceURL)
	if err != nil {
		return nil, fmt.Errorf("oembed lookup: %w", err)
	}

	title := strings.TrimSpace(oe.Title)
	artist := strings.TrimSpace(oe.AuthorName)
	thumbnail := strings.TrimSpace(oe.ThumbnailURL)

	// ========================================
	// FALLBACK: scrape og:* meta tags
	// ========================================
	if artist == "" || thumbnail == "" {
		meta, err := f.scrapeMeta(ctx, sourceURL)
		if err != nil {
			logger.Warn("Spotify page scrape failed", map[string]interface{}{
				"url":   sourceURL,
				"error": err.Error(),
			})
		} else {
			if title == "" {
				title = meta["og:title"]
			}
			if artist == "" {
				artist = ArtistFromDescription(meta["og:description"])
			}
			if thumbnail == "" {
				thumbnail = meta["og:image"]
			}
		}
	}

	out := &TrackMetadata{
		Title:     title,
		Artist:    artist,
		SourceURL: sourceURL,
	}
	if out.Title == "" {
		out.Title = DefaultTitle
	}
	if out.Artist == "" {
		out.Artist = DefaultArtist
	}
	if thumbnail != "" {
		cover := UpgradeResolution(thumbnail)
		out.CoverURL = &cover
	}
	return out, nil
}

func (f *SpotifyFetcher) fetchOEmbed(ctx context.Context, sourceURL string) (*oembedResponse, error) {
	endpoint := f.oembedURL + "?url=" + url.QueryEscape(sourceURL)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, err
	}

	resp, err := f.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, fmt.Errorf("unexpected status %d", resp.StatusCode)
	}

	var oe oembedResponse
	if err := json.NewDecoder(io.LimitReader(resp.Body, maxBodyBytes)).Decode(&oe); err != nil {
		return nil, fmt.Errorf("decode oembed: %w", err)
	}
	return &oe, nil
}

// scrapeMeta trả về map property -> content của các <meta property="og:*">
func (f *SpotifyFetcher) scrapeMeta(ctx context.Context, pageURL string) (map[string]string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, pageURL, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("User-Agent", f.userAgent)

	resp, err := f.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, fmt.Errorf("unexpected status %d", resp.StatusCode)
	}

	doc, err := html.Parse(io.LimitReader(resp.Body, maxBodyBytes))
	if err != nil {
		return nil, fmt.Errorf("parse html: %w", err)
	}

	meta := make(map[string]string)
	var walk func(n *html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.ElementNode && n.Data == "meta" {
			var property, content string
			for _, a := range n.Attr {
				switch a.Key {
				case "property":
					property = a.Val
				case "content":
					content = a.Val
				}
			}
			// giữ giá trị đầu tiên nếu tag bị lặp
			if strings.HasPrefix(property, "og:") {
				if _, seen := meta[property]; !seen {
					meta[property] = strings.TrimSpace(content)
				}
			}
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(doc)

	return meta, nil
}

// ArtistFromDescription lấy phần trước dấu "·" đầu tiên: "Rick Astley · Song · 1987" -> "Rick Astley"
func ArtistFromDescription(desc string) string {
	artist, _, _ := strings.Cut(desc, "·")
	return strings.TrimSpace(artist)
}

// UpgradeResolution đổi dimension token đầu tiên thành 1200x1200, không có token thì giữ nguyên
func UpgradeResolution(thumbnail string) string {
	loc := dimensionToken.FindStringSubmatchIndex(thumbnail)
	if loc == nil {
		return thumbnail
	}
	// chỉ thay group 2, giữ nguyên ký tự biên
	return thumbnail[:loc[4]] + "1200x1200" + thumbnail[loc[5]:]
}
