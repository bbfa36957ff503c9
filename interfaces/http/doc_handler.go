package http

import (
	"net/http"
	"net/url"

	"ytdl-simpel/domain/dto"
	"ytdl-simpel/domain/model"
	"ytdl-simpel/infrastructure/configuration"

	"github.com/gin-gonic/gin"
)

const exampleVideoURL = "https://youtube.com/watch?v=VIDEO_ID"

type IDocHandler interface {
	Doc(ctx *gin.Context)
}

type DocHandler struct {
	endpoints configuration.Endpoints
	quality   configuration.Quality
}

func NewDocHandler(endpoints configuration.Endpoints, quality configuration.Quality) IDocHandler {
	return &DocHandler{endpoints: endpoints, quality: quality}
}

type endpointDoc struct {
	Method      string `json:"method"`
	Endpoint    string `json:"endpoint"`
	Description string `json:"description"`
	Example     string `json:"example"`
}

type apiDoc struct {
	Endpoints     []endpointDoc `json:"endpoints"`
	ExampleOutput dto.Res       `json:"exampleOutput"`
}

// Doc handles GET /doc. Example links use the host the request came in on.
func (h *DocHandler) Doc(ctx *gin.Context) {
	origin := requestOrigin(ctx.Request)

	doc := apiDoc{
		Endpoints: []endpointDoc{
			{
				Method:      http.MethodGet,
				Endpoint:    h.endpoints.Audio,
				Description: "Download audio from YouTube",
				Example:     origin + h.endpoints.Audio + "?" + url.Values{"url": {exampleVideoURL}, "quality": {h.quality.DefaultAudio}}.Encode(),
			},
			{
				Method:      http.MethodGet,
				Endpoint:    h.endpoints.Video,
				Description: "Download video from YouTube",
				Example:     origin + h.endpoints.Video + "?" + url.Values{"url": {exampleVideoURL}, "quality": {h.quality.DefaultVideo}}.Encode(),
			},
			{
				Method:      http.MethodGet,
				Endpoint:    h.endpoints.Search,
				Description: "Search videos on YouTube",
				Example:     origin + h.endpoints.Search + "?" + url.Values{"query": {"search video"}}.Encode(),
			},
		},
		ExampleOutput: dto.Res{Status: true, Data: exampleResult(h.quality.DefaultVideo)},
	}
	ctx.JSON(http.StatusOK, doc)
}

func requestOrigin(r *http.Request) string {
	scheme := "http"
	if r.TLS != nil {
		scheme = "https"
	}
	if fwd := r.Header.Get("X-Forwarded-Proto"); fwd != "" {
		scheme = fwd
	}
	return scheme + "://" + r.Host
}

func exampleResult(quality string) model.DownloadResult {
	size := "50MB"
	return model.DownloadResult{
		Title:       "Video title",
		Channel:     "Channel name",
		Duration:    "5:30",
		UploadDate:  "2024-01-01",
		Views:       &model.Count{Value: 1000000},
		Likes:       &model.Count{Value: 50000},
		Comments:    &model.Count{Value: 1000},
		Subscribers: &model.Count{Text: "1M"},
		Thumbnail:   "https://i.ytimg.com/vi/VIDEO_ID/maxresdefault.jpg",
		DownloadURL: "https://download-url.com/file.mp4",
		Quality:     quality,
		Format:      string(model.FormatMP4),
		Size:        &size,
	}
}
