package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Drolfothesgnir/skim/dom"
)

type ParseRequest struct {
	HTML string `json:"html" binding:"required"`

	// optional per-request overrides of the configured parser defaults
	TrackIDs     *bool `json:"track_ids"`
	TrackClasses *bool `json:"track_classes"`
	MaxDepth     int   `json:"max_depth" binding:"omitempty,gte=0"`
}

type ParseResponse struct {
	Document dom.SerializedDocument `json:"document"`
}

func (s *Service) parseDocument(ctx *gin.Context) {
	var req ParseRequest

	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(
			http.StatusBadRequest,
			NewErrorResponse(ErrInvalidParams, ExtractErrorFields(err)...),
		)
		return
	}

	if s.config.MaxInputBytes > 0 && len(req.HTML) > s.config.MaxInputBytes {
		ctx.JSON(http.StatusUnprocessableEntity, NewErrorResponse(ErrInputTooLarge))
		return
	}

	doc, err := dom.Parse(req.HTML, s.requestOptions(&req))
	if err != nil {
		ctx.JSON(http.StatusUnprocessableEntity, NewErrorResponse(err))
		return
	}

	ctx.JSON(http.StatusOK, ParseResponse{Document: doc.Serialize()})
}

// requestOptions starts from the configured defaults and applies the
// request's overrides on top.
func (s *Service) requestOptions(req *ParseRequest) dom.Options {
	opts := s.config.ParserOptions()

	if req.TrackIDs != nil {
		opts.TrackIDs = *req.TrackIDs
	}
	if req.TrackClasses != nil {
		opts.TrackClasses = *req.TrackClasses
	}
	if req.MaxDepth > 0 {
		opts = opts.WithMaxDepth(req.MaxDepth)
	}

	return opts
}
