package server

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"gconsole/internal/console"
	"gconsole/internal/system"
)

// Server exposes a running console over HTTP so graders and scripts can
// read its output, feed input scripts and compare against expected output.
type Server struct {
	Addr    string
	Console *console.Console
}

// Start serves until ctx is done.
func (s *Server) Start(ctx context.Context) error {
	srv := &http.Server{Addr: s.Addr, Handler: s.Handler(), ReadHeaderTimeout: 5 * time.Second}
	go func() {
		<-ctx.Done()
		_ = srv.Shutdown(context.Background())
	}()
	system.Logger.Info("http endpoint listening", "addr", s.Addr)
	return srv.ListenAndServe()
}

// Handler returns the gin engine with all routes mounted.
func (s *Server) Handler() http.Handler {
	gin.SetMode(gin.ReleaseMode)
	r := gin.New()
	r.Use(requestLogger())
	r.Use(gin.Recovery())
	mountAPIGin(r, s.Console)
	r.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, gin.H{"error": "not found"})
	})
	return r
}

// requestLogger sends access lines to the shared logger; gin's own logger
// would write over the terminal UI.
func requestLogger() gin.HandlerFunc {
	log := system.Logger.WithPrefix("http")
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		log.Debug(c.Request.Method+" "+c.Request.URL.Path,
			"status", c.Writer.Status(), "took", time.Since(start))
	}
}
