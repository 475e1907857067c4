package api

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/Drolfothesgnir/skim/util"
	"github.com/gin-gonic/gin"
)

const (
	// api routes
	ParseURL = "/parse"
	QueryURL = "/query"
)

var (
	// api errors
	ErrInvalidParams = errors.New("invalid request parameters")
	ErrInputTooLarge = errors.New("input document is too large")
)

type Service struct {
	config util.Config
	router *gin.Engine
	server *http.Server
}

// Returns new service instance with provided config.
func NewService(config util.Config) (*Service, error) {
	service := &Service{
		config: config,
	}

	server := &http.Server{
		Addr: config.HTTPServerAddress,
	}

	// caps how long a client can take to send just the headers (blocks slowloris).
	server.ReadHeaderTimeout = 5 * time.Second
	// caps time to read the full request (incl. body).
	server.ReadTimeout = 10 * time.Second
	// caps time spent writing the response (no forever hanging clients)
	server.WriteTimeout = 15 * time.Second
	// how long to keep idle keep-alive connections open.
	server.IdleTimeout = 60 * time.Second

	service.setupRouter(server)

	service.server = server

	return service, nil
}

// Start runs the HTTP server
func (service *Service) Start() error {
	return service.server.ListenAndServe()
}

func (service *Service) Shutdown(ctx context.Context) error {
	return service.server.Shutdown(ctx)
}
