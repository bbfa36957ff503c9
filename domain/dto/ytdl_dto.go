package dto

import (
	"encoding/json"

	"ytdl-simpel/domain/model"
)

// DownloadRequest is encoded into the query string of ytmp3/ytmp4 calls
type DownloadRequest struct {
	URL     string `url:"url" form:"url" json:"url" binding:"required"`
	Quality string `url:"quality" form:"quality" json:"quality,omitempty"`
}

// SearchRequest is encoded into the query string of search calls
type SearchRequest struct {
	Query string `url:"query" form:"query" json:"query" binding:"required"`
}

// ValidateRequest is the query accepted by the URL inspection endpoint
type ValidateRequest struct {
	URL string `form:"url" json:"url"`
}

// BackendEnvelope is the JSON body every backend endpoint answers with.
// Data is kept raw until status has been checked.
type BackendEnvelope struct {
	Status bool            `json:"status"`
	Data   json.RawMessage `json:"data,omitempty"`
	Error  *string         `json:"error,omitempty"`
}

// Res is the envelope returned to the browser
type Res struct {
	Status bool        `json:"status"`
	Data   interface{} `json:"data,omitempty"`
	Error  string      `json:"error,omitempty"`
}

// URLInspection tells the browser whether a URL is usable before it submits it
type URLInspection struct {
	URL     string `json:"url"`
	Valid   bool   `json:"valid"`
	VideoID string `json:"videoId,omitempty"`
}

// QualityOptions lists the selectable qualities of one format
type QualityOptions struct {
	Format  model.Format `json:"format"`
	Default string       `json:"default"`
	Allowed []string     `json:"allowed"`
}

// SearchItemView decorates a search result with display strings
type SearchItemView struct {
	model.SearchResultItem
	DurationText string `json:"durationText,omitempty"`
	ViewsText    string `json:"viewsText,omitempty"`
}

// NewSearchItemView builds the display form of item
func NewSearchItemView(item model.SearchResultItem) SearchItemView {
	v := SearchItemView{
		SearchResultItem: item,
		DurationText:     model.FormatDuration(item.Duration),
	}
	if item.Views != nil {
		v.ViewsText = item.Views.String() + " views"
	}
	return v
}
