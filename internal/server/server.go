package server

import (
	"context"
	"errors"
	"html/template"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"dropoutdash/internal/dashboard"
)

const shutdownTimeout = 10 * time.Second

type Server struct {
	ctrl   *dashboard.Controller
	logger *zap.Logger
	router *gin.Engine
	page   *template.Template
}

// New wires the routes. debug switches gin into debug mode.
func New(ctrl *dashboard.Controller, logger *zap.Logger, debug bool) (*Server, error) {
	if debug {
		gin.SetMode(gin.DebugMode)
	} else {
		gin.SetMode(gin.ReleaseMode)
	}
	page, err := parsePage()
	if err != nil {
		return nil, err
	}
	s := &Server{ctrl: ctrl, logger: logger, router: gin.New(), page: page}
	s.router.Use(gin.Recovery(), requestLogger(logger))
	s.routes()
	return s, nil
}

func (s *Server) Handler() http.Handler { return s.router }

func (s *Server) routes() {
	r := s.router
	r.GET("/", s.handleIndex)
	r.GET("/healthz", func(c *gin.Context) { c.JSON(http.StatusOK, gin.H{"status": "ok"}) })
	r.GET("/charts/:file", s.handleImage)

	api := r.Group("/api")
	api.GET("/layout", s.handleLayout)
	api.POST("/callback", s.handleCallback)
	api.GET("/charts/performance", s.handlePerformance)
	api.GET("/summary", s.handleSummary)
}

// Run serves on addr until ctx is cancelled, then drains in-flight requests.
func (s *Server) Run(ctx context.Context, addr string) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           s.router,
		ReadHeaderTimeout: 5 * time.Second,
	}
	errCh := make(chan error, 1)
	go func() {
		s.logger.Info("dashboard listening", zap.String("addr", addr))
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
	}

	s.logger.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}
