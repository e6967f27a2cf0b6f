// Package server exposes the tool handler over HTTP.
package server

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/kataras/brand-tokens/pkg/logging"
	"github.com/kataras/brand-tokens/pkg/tool"
)

const shutdownTimeout = 5 * time.Second

// Server routes HTTP requests to a tool.Handler.
type Server struct {
	handler  *tool.Handler
	logger   logging.Logger
	gatherer prometheus.Gatherer
	debug    bool
	engine   *gin.Engine
}

// Option configures a Server.
type Option func(*Server)

// WithLogger sets the logger; nil silences output.
func WithLogger(logger logging.Logger) Option {
	return func(s *Server) { s.logger = logger }
}

// WithGatherer sets the metrics source served on /metrics.
// Defaults to prometheus.DefaultGatherer.
func WithGatherer(g prometheus.Gatherer) Option {
	return func(s *Server) { s.gatherer = g }
}

// WithDebug keeps gin in debug mode and enables its request logger.
func WithDebug(debug bool) Option {
	return func(s *Server) { s.debug = debug }
}

// New builds the router:
//
//	GET  /healthz     liveness
//	GET  /tools       tool definitions
//	POST /tools/call  run a tool.Request, answer a tool.Response
//	GET  /metrics     prometheus exposition
func New(h *tool.Handler, opts ...Option) *Server {
	s := &Server{handler: h, gatherer: prometheus.DefaultGatherer}
	for _, opt := range opts {
		opt(s)
	}
	s.logger = logging.OrNop(s.logger)

	if !s.debug {
		gin.SetMode(gin.ReleaseMode)
	}

	engine := gin.New()
	engine.Use(gin.Recovery())
	if s.debug {
		engine.Use(gin.Logger())
	}

	engine.GET("/healthz", s.healthz)
	engine.GET("/tools", s.listTools)
	engine.POST("/tools/call", s.callTool)
	engine.GET("/metrics", gin.WrapH(promhttp.HandlerFor(s.gatherer, promhttp.HandlerOpts{})))

	s.engine = engine
	return s
}

// Handler returns the underlying http.Handler.
func (s *Server) Handler() http.Handler {
	return s.engine
}

// ListenAndServe serves on addr until ctx is done, then shuts down gracefully.
func (s *Server) ListenAndServe(ctx context.Context, addr string) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           s.engine,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		s.logger.Infof("HTTP tool server listening on %s", addr)
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("listen %s: %w", addr, err)
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	s.logger.Infof("Shutting down HTTP tool server")
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}
	return nil
}

func (s *Server) healthz(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

func (s *Server) listTools(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"tools": s.handler.Definitions()})
}

func (s *Server) callTool(c *gin.Context) {
	var req tool.Request
	if err := c.ShouldBindJSON(&req); err != nil {
		s.logger.Warnf("Rejected tool call body: %v", err)
		c.JSON(http.StatusBadRequest, tool.ErrorResponse(fmt.Errorf("%w: %v", tool.ErrInvalidParams, err)))
		return
	}

	// Tool failures are in-band; the transport still succeeds.
	c.JSON(http.StatusOK, s.handler.Call(c.Request.Context(), req))
}
