// Package httpapi exposes the REST surface of the marketplace: the gin
// router, the guard chain, and the request handlers.
package httpapi

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/foundergrid/perkmarket/internal/logging"
	"github.com/foundergrid/perkmarket/internal/server/metrics"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// HTTPServer serves the public API.
type HTTPServer struct {
	address        string
	allowedOrigins []string
	users          userService
	catalog        catalogService
	logger         logging.Logger
	jwtSecret      []byte
}

func NewHTTPServer(addr string, allowedOrigins []string, l logging.Logger, us userService, cs catalogService, secretKey string) *HTTPServer {
	return &HTTPServer{
		address:        addr,
		allowedOrigins: allowedOrigins,
		users:          us,
		catalog:        cs,
		logger:         l.With("module", "http_server"),
		jwtSecret:      []byte(secretKey),
	}
}

// Router builds the gin engine with middleware and all routes mounted under
// /api/v1.
func (s *HTTPServer) Router() *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(metrics.Middleware())

	corsCfg := cors.DefaultConfig()
	if len(s.allowedOrigins) == 1 && s.allowedOrigins[0] == "*" {
		corsCfg.AllowAllOrigins = true
	} else {
		corsCfg.AllowOrigins = s.allowedOrigins
	}
	corsCfg.AllowHeaders = append(corsCfg.AllowHeaders, "Authorization")
	r.Use(cors.New(corsCfg))

	r.GET("/", func(c *gin.Context) {
		c.String(http.StatusOK, ":: core system online ::")
	})
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	api := r.Group("/api/v1")

	api.POST("/auth/initiate", s.initiate)
	api.POST("/auth/identify", s.identify)

	session := api.Group("", ActiveSessionGuard(s.jwtSecret))
	session.GET("/market/opportunities", s.listOpportunities)
	session.GET("/market/opportunities/:id", s.getOpportunity)
	session.POST("/market/claim/:id", VerifiedFounderGuard(), s.claim)
	session.GET("/account/status", s.accountStatus)

	return r
}

// Run serves until ctx is cancelled, then shuts down gracefully.
func (s *HTTPServer) Run(ctx context.Context) error {
	srv := &http.Server{
		Addr:    s.address,
		Handler: s.Router(),
	}

	go func() {
		<-ctx.Done()
		s.logger.Info(ctx, "Stopping HTTP server...")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			s.logger.Error(ctx, "shutdown error", "error", err)
		}
	}()

	s.logger.Info(ctx, "Starting HTTP server", "address", s.address)

	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}

	return nil
}
