package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Establishes HTTP router.
func (service *Service) setupRouter(server *http.Server) {
	router := gin.Default()

	router.Use(service.corsMiddleware())
	router.Use(requestIDMiddleware())

	router.GET("/ping", func(ctx *gin.Context) {
		ctx.String(http.StatusOK, "pong")
	})

	// parse a document and return its serialized tree
	router.POST(ParseURL, service.parseDocument)

	// parse a document and run a selector over it
	router.POST(QueryURL, service.queryDocument)

	server.Handler = router
	service.router = router
}
