package http

import (
	"errors"
	"net/http"

	"ytdl-simpel/domain/dto"
	"ytdl-simpel/domain/model"
	"ytdl-simpel/infrastructure/logger"
	"ytdl-simpel/usecase"

	"github.com/gin-gonic/gin"
)

// IYTDlHandler defines the download and search HTTP handlers
type IYTDlHandler interface {
	DownloadAudio(ctx *gin.Context)
	DownloadVideo(ctx *gin.Context)
	Search(ctx *gin.Context)
	Validate(ctx *gin.Context)
	Qualities(ctx *gin.Context)
}

type YTDlHandler struct {
	ytdlUseCase usecase.IYTDlUseCase
}

func NewYTDlHandler(ytdlUseCase usecase.IYTDlUseCase) IYTDlHandler {
	return &YTDlHandler{ytdlUseCase: ytdlUseCase}
}

// DownloadAudio handles GET /api/ytmp3
func (h *YTDlHandler) DownloadAudio(ctx *gin.Context) {
	h.download(ctx, model.FormatMP3)
}

// DownloadVideo handles GET /api/ytmp4
func (h *YTDlHandler) DownloadVideo(ctx *gin.Context) {
	h.download(ctx, model.FormatMP4)
}

func (h *YTDlHandler) download(ctx *gin.Context, format model.Format) {
	var req dto.DownloadRequest
	if err := ctx.ShouldBindQuery(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.Res{Status: false, Error: "url query parameter is required"})
		return
	}

	result, err := h.ytdlUseCase.Download(ctx.Request.Context(), format, &req)
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.Res{Status: true, Data: result})
}

// Search handles GET /api/search
func (h *YTDlHandler) Search(ctx *gin.Context) {
	var req dto.SearchRequest
	if err := ctx.ShouldBindQuery(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.Res{Status: false, Error: "query parameter is required"})
		return
	}

	items, err := h.ytdlUseCase.Search(ctx.Request.Context(), &req)
	if err != nil {
		respondError(ctx, err)
		return
	}

	views := make([]dto.SearchItemView, 0, len(items))
	for _, item := range items {
		views = append(views, dto.NewSearchItemView(item))
	}
	ctx.JSON(http.StatusOK, dto.Res{Status: true, Data: views})
}

// Validate handles GET /api/validate. It never contacts the backend.
func (h *YTDlHandler) Validate(ctx *gin.Context) {
	var req dto.ValidateRequest
	_ = ctx.ShouldBindQuery(&req)
	ctx.JSON(http.StatusOK, dto.Res{Status: true, Data: h.ytdlUseCase.Inspect(req.URL)})
}

// Qualities handles GET /api/qualities
func (h *YTDlHandler) Qualities(ctx *gin.Context) {
	ctx.JSON(http.StatusOK, dto.Res{Status: true, Data: h.ytdlUseCase.Qualities()})
}

// respondError maps input errors to 400 and backend failures to 502.
func respondError(ctx *gin.Context, err error) {
	status := http.StatusInternalServerError
	var clientErr *model.ClientError
	switch {
	case errors.Is(err, model.ErrInvalidInput):
		status = http.StatusBadRequest
	case errors.As(err, &clientErr):
		status = http.StatusBadGateway
	}

	if status != http.StatusBadRequest {
		logger.GetLogger().WithFields(map[string]interface{}{
			"path":   ctx.FullPath(),
			"status": status,
			"error":  err.Error(),
		}).Error("Request failed")
	}
	ctx.JSON(status, dto.Res{Status: false, Error: err.Error()})
}
