// Package httpapi serves NETWORKDAYS, WEEKDAY and the holiday calendars as a JSON API.
//
// Every response uses the envelope {"code": 0, "message": "success", "data": ...}.
// A date that cannot be resolved is not a request error: the response is a
// success whose data carries the spreadsheet error code, for example
// {"error": "#VALUE!"}.
package httpapi

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/custodia-labs/netdays/internal/core/ports/driving"
	"github.com/custodia-labs/netdays/internal/logger"
)

var log = logger.Component("http")

// ErrMissingNetworkDaysService is returned when the network days service is not provided.
var ErrMissingNetworkDaysService = errors.New("httpapi: network days service is required")

// Ports aggregates the driving ports used by the HTTP API.
type Ports struct {
	NetworkDays driving.NetworkDaysService

	// Calendar is optional; without it the calendar routes return empty results.
	Calendar driving.CalendarService

	// MCP, when set, is mounted at /mcp.
	MCP http.Handler
}

// Server is the HTTP API server.
type Server struct {
	ports  *Ports
	router *gin.Engine
}

// NewServer creates a server and registers its routes.
func NewServer(ports *Ports) (*Server, error) {
	if ports == nil || ports.NetworkDays == nil {
		return nil, ErrMissingNetworkDaysService
	}
	if gin.Mode() != gin.TestMode {
		gin.SetMode(gin.ReleaseMode)
	}

	s := &Server{
		ports:  ports,
		router: gin.New(),
	}
	s.router.Use(gin.Recovery(), requestLogger())
	s.setupRoutes()
	return s, nil
}

func (s *Server) setupRoutes() {
	api := s.router.Group("/api")
	{
		api.GET("/networkdays", s.handleNetworkDays)
		api.GET("/weekday", s.handleWeekday)
		api.GET("/calendars", s.handleListCalendars)
		api.GET("/calendars/:name", s.handleGetCalendar)
	}

	s.router.GET("/healthz", func(c *gin.Context) {
		c.String(http.StatusOK, "ok")
	})

	if s.ports.MCP != nil {
		s.router.Any("/mcp", gin.WrapH(s.ports.MCP))
	}
}

// Handler returns the router.
func (s *Server) Handler() http.Handler {
	return s.router
}

// Run serves on addr until ctx is cancelled.
func (s *Server) Run(ctx context.Context, addr string) error {
	httpServer := &http.Server{
		Addr:              addr,
		Handler:           s.router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	done := make(chan struct{})
	defer close(done)

	go func() {
		select {
		case <-ctx.Done():
		case <-done:
			return
		}
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		httpServer.Shutdown(shutdownCtx) //nolint:errcheck
	}()

	log.Info("listening on %s", addr)
	err := httpServer.ListenAndServe()
	if errors.Is(err, http.ErrServerClosed) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("serve %s: %w", addr, err)
	}
	return nil
}

// requestLogger logs each request at debug level.
func requestLogger() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		log.Debug("%s %s -> %d (%s)", c.Request.Method, c.Request.URL.RequestURI(),
			c.Writer.Status(), time.Since(start).Round(time.Microsecond))
	}
}
