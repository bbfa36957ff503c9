package usecase

import (
	"context"
	"slices"
	"strings"

	"ytdl-simpel/domain/dto"
	"ytdl-simpel/domain/model"
	"ytdl-simpel/domain/repository"
	"ytdl-simpel/infrastructure/logger"
)

// IYTDlUseCase holds the checks a caller must make before handing work to the client
type IYTDlUseCase interface {
	Download(ctx context.Context, format model.Format, req *dto.DownloadRequest) (*model.DownloadResult, error)
	Search(ctx context.Context, req *dto.SearchRequest) ([]model.SearchResultItem, error)
	Inspect(url string) dto.URLInspection
	Qualities() []dto.QualityOptions
}

type YTDlUseCase struct {
	client repository.IYTDl
}

func NewYTDlUseCase(client repository.IYTDl) IYTDlUseCase {
	return &YTDlUseCase{client: client}
}

// Download validates the URL and quality, then dispatches to the audio or video endpoint.
// An empty quality selects the default for the format.
func (u *YTDlUseCase) Download(ctx context.Context, format model.Format, req *dto.DownloadRequest) (*model.DownloadResult, error) {
	switch format {
	case model.FormatMP3, model.FormatMP4:
	default:
		return nil, &model.InputError{Field: "format", Reason: "must be mp3 or mp4"}
	}
	if req == nil || strings.TrimSpace(req.URL) == "" {
		return nil, &model.InputError{Field: "url", Reason: "a YouTube URL is required"}
	}
	sourceURL := strings.TrimSpace(req.URL)
	if !u.client.ValidateURL(sourceURL) {
		return nil, &model.InputError{Field: "url", Reason: "not a valid YouTube URL"}
	}

	quality := req.Quality
	if strings.TrimSpace(quality) == "" {
		quality = u.client.DefaultQuality(format)
	}

	if !slices.Contains(u.client.Qualities(format), quality) {
		return nil, &model.InputError{Field: "quality", Reason: quality + " is not offered for " + format.String()}
	}

	logger.GetLogger().WithFields(map[string]interface{}{
		"format":  format,
		"quality": quality,
	}).Info("Download requested")

	if format == model.FormatMP3 {
		return u.client.DownloadAudio(ctx, sourceURL, quality)
	}
	return u.client.DownloadVideo(ctx, sourceURL, quality)
}

// Search rejects blank queries without contacting the backend.
func (u *YTDlUseCase) Search(ctx context.Context, req *dto.SearchRequest) ([]model.SearchResultItem, error) {
	if req == nil || strings.TrimSpace(req.Query) == "" {
		return nil, &model.InputError{Field: "query", Reason: "must not be empty"}
	}
	return u.client.Search(ctx, strings.TrimSpace(req.Query))
}

func (u *YTDlUseCase) Inspect(url string) dto.URLInspection {
	url = strings.TrimSpace(url)
	res := dto.URLInspection{URL: url, Valid: u.client.ValidateURL(url)}
	if id, ok := u.client.ExtractVideoID(url); ok {
		res.VideoID = id
	}
	return res
}

func (u *YTDlUseCase) Qualities() []dto.QualityOptions {
	formats := []model.Format{model.FormatMP4, model.FormatMP3}
	opts := make([]dto.QualityOptions, 0, len(formats))
	for _, f := range formats {
		opts = append(opts, dto.QualityOptions{
			Format:  f,
			Default: u.client.DefaultQuality(f),
			Allowed: u.client.Qualities(f),
		})
	}
	return opts
}
