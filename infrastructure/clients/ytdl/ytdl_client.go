package ytdl

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"slices"
	"strings"

	"ytdl-simpel/domain/dto"
	"ytdl-simpel/domain/model"
	"ytdl-simpel/domain/repository"
	"ytdl-simpel/infrastructure/configuration"
	"ytdl-simpel/infrastructure/logger"
)

// Client talks to the extraction backend. It is stateless between calls apart
// from its configuration snapshot and one pooled *http.Client, so a single
// instance may serve concurrent requests.
type Client struct {
	baseURL   *url.URL
	endpoints configuration.Endpoints
	quality   configuration.Quality
	http      *http.Client
}

// Option customizes a Client at construction time
type Option func(*Client)

// WithHTTPClient substitutes the transport, e.g. in tests.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) { c.http = hc }
}

// NewYTDlClient creates the client from the startup configuration. Quality
// lists are copied so later changes to cfg cannot leak in.
func NewYTDlClient(cfg configuration.Config, opts ...Option) (repository.IYTDl, error) {
	return newClient(cfg, opts...)
}

func newClient(cfg configuration.Config, opts ...Option) (*Client, error) {
	base, err := url.Parse(cfg.Backend.BaseURL)
	if err != nil {
		return nil, fmt.Errorf("failed to parse backend url: %w", err)
	}
	if base.Scheme == "" || base.Host == "" {
		return nil, fmt.Errorf("backend url must be absolute: %q", cfg.Backend.BaseURL)
	}

	tc := DefaultTransportConfig()
	if cfg.Backend.Timeout > 0 {
		tc.Timeout = cfg.Backend.Timeout
	}

	q := cfg.Quality
	q.Audio = slices.Clone(q.Audio)
	q.Video = slices.Clone(q.Video)

	c := &Client{
		baseURL:   base,
		endpoints: cfg.Backend.Endpoints,
		quality:   q,
		http:      NewHTTPClient(tc),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c, nil
}

// DownloadAudio asks the backend for an MP3 rendition. An empty quality means
// the configured default; any other value is sent exactly as given.
func (c *Client) DownloadAudio(ctx context.Context, sourceURL, quality string) (*model.DownloadResult, error) {
	return c.download(ctx, model.FormatMP3, c.endpoints.Audio, sourceURL, quality)
}

// DownloadVideo asks the backend for an MP4 rendition.
func (c *Client) DownloadVideo(ctx context.Context, sourceURL, quality string) (*model.DownloadResult, error) {
	return c.download(ctx, model.FormatMP4, c.endpoints.Video, sourceURL, quality)
}

func (c *Client) download(ctx context.Context, format model.Format, path, sourceURL, quality string) (*model.DownloadResult, error) {
	if strings.TrimSpace(quality) == "" {
		quality = c.DefaultQuality(format)
	}
	log := logger.GetLogger().WithFields(map[string]interface{}{
		"format":  format,
		"quality": quality,
		"url":     sourceURL,
	})
	log.Debug("Dispatching download request")

	out := fetch[model.DownloadResult](ctx, c, path, dto.DownloadRequest{URL: sourceURL, Quality: quality})
	if out.failure != nil {
		err := &model.ClientError{Op: model.OpDownload, Format: format, Message: out.failure.message()}
		log.WithField("error", err.Message).Warn("Download request failed")
		return nil, err
	}
	return &out.value, nil
}

// Search returns the backend's results in the order it sent them. An empty
// slice is a successful "no results" answer, not a failure.
func (c *Client) Search(ctx context.Context, query string) ([]model.SearchResultItem, error) {
	log := logger.GetLogger().WithField("query", query)
	log.Debug("Dispatching search request")

	out := fetch[[]model.SearchResultItem](ctx, c, c.endpoints.Search, dto.SearchRequest{Query: query})
	if out.failure != nil {
		err := &model.ClientError{Op: model.OpSearch, Message: out.failure.message()}
		log.WithField("error", err.Message).Warn("Search request failed")
		return nil, err
	}
	if out.value == nil {
		return []model.SearchResultItem{}, nil
	}
	return out.value, nil
}

func (c *Client) ValidateURL(candidate string) bool {
	return model.IsYouTubeURL(candidate)
}

func (c *Client) ExtractVideoID(candidate string) (string, bool) {
	return model.ExtractVideoID(candidate)
}

func (c *Client) DefaultQuality(format model.Format) string {
	if format == model.FormatMP3 {
		return c.quality.DefaultAudio
	}
	return c.quality.DefaultVideo
}

// Qualities returns a copy of the allowed list for format, lowest first.
func (c *Client) Qualities(format model.Format) []string {
	if format == model.FormatMP3 {
		return slices.Clone(c.quality.Audio)
	}
	return slices.Clone(c.quality.Video)
}
