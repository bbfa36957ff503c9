package repository

import (
	"context"

	"ytdl-simpel/domain/model"
)

// IYTDl is the backend contract: three remote operations plus the pure URL helpers.
// Implementations make exactly one network attempt per call and report every
// failure as *model.ClientError.
type IYTDl interface {
	DownloadAudio(ctx context.Context, sourceURL, quality string) (*model.DownloadResult, error)
	DownloadVideo(ctx context.Context, sourceURL, quality string) (*model.DownloadResult, error)
	Search(ctx context.Context, query string) ([]model.SearchResultItem, error)

	ValidateURL(candidate string) bool
	ExtractVideoID(candidate string) (string, bool)

	DefaultQuality(format model.Format) string
	Qualities(format model.Format) []string
}
