package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Drolfothesgnir/skim/dom"
	"github.com/Drolfothesgnir/skim/selector"
)

type QueryRequest struct {
	HTML     string `json:"html" binding:"required"`
	Selector string `json:"selector" binding:"required"`
}

// Match is one matched node. HTML is re-serialized markup for tags and the
// raw span for text and comments.
type Match struct {
	Text string `json:"text"`
	HTML string `json:"html"`
}

type QueryResponse struct {
	Count   int     `json:"count"`
	Matches []Match `json:"matches"`
}

func (s *Service) queryDocument(ctx *gin.Context) {
	var req QueryRequest

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

	doc, err := dom.Parse(req.HTML, s.config.ParserOptions())
	if err != nil {
		ctx.JSON(http.StatusUnprocessableEntity, NewErrorResponse(err))
		return
	}

	// a malformed selector matches nothing; respond with an empty result
	// instead of an error, same as a selector that finds no nodes
	handles := selector.QueryString(doc, req.Selector)

	p := doc.Parser()
	matches := make([]Match, len(handles))
	for i, h := range handles {
		node := h.Get(p)

		m := Match{Text: node.InnerText(p)}
		if tag := node.AsTag(); tag != nil {
			m.HTML = tag.OuterHTML(p)
		} else {
			m.HTML = m.Text
		}

		matches[i] = m
	}

	ctx.JSON(http.StatusOK, QueryResponse{Count: len(matches), Matches: matches})
}
