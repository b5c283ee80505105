// Package server is the HTTP front of the site: page routes, the live page
// websocket, health and static assets.
package server

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"

	"github.com/Zachkp/motionfolio/internal/config"
	"github.com/Zachkp/motionfolio/internal/contact"
	"github.com/Zachkp/motionfolio/internal/content"
	"github.com/Zachkp/motionfolio/internal/live"
	"github.com/Zachkp/motionfolio/internal/schedule"
	"github.com/Zachkp/motionfolio/internal/web"
)

const shutdownTimeout = 5 * time.Second

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 4096,
}

type Options struct {
	Config  config.Config
	Catalog *content.Catalog
	// Scheduler drives every component timer. Defaults to wall time.
	Scheduler schedule.Scheduler
	// Submitter defaults to the simulated delivery.
	Submitter contact.Submitter
}

type Server struct {
	cfg      config.Config
	catalog  *content.Catalog
	registry *live.Registry
	engine   *gin.Engine
}

// New builds the gin engine with every route registered.
func New(opts Options) (*Server, error) {
	tmpl, err := web.Templates()
	if err != nil {
		return nil, err
	}

	s := &Server{
		cfg:     opts.Config,
		catalog: opts.Catalog,
		registry: live.NewRegistry(live.Options{
			Renderer:    web.NewRenderer(tmpl),
			Catalog:     opts.Catalog,
			Timing:      opts.Config.Timing,
			Scheduler:   opts.Scheduler,
			Submitter:   opts.Submitter,
			AttachGrace: opts.Config.AttachGrace,
			MaxPending:  opts.Config.MaxPending,
		}),
	}

	r := gin.Default()
	r.SetHTMLTemplate(tmpl)
	r.Use(newRequestLog(opts.Config.LogSalt).middleware())

	r.StaticFS("/static", http.FS(web.Static()))
	r.GET("/healthz", s.health)
	r.GET("/live/:id", s.liveSocket)

	for _, route := range Routes {
		if route.Live {
			r.GET(route.Path, s.livePage(route))
		} else {
			r.GET(route.Path, s.placeholder(route, http.StatusOK))
		}
	}
	r.NoRoute(s.placeholder(notFound, http.StatusNotFound))

	s.engine = r
	return s, nil
}

func (s *Server) Handler() http.Handler { return s.engine }

// Run serves on addr until ctx is cancelled, then closes every live page and
// shuts down.
func (s *Server) Run(ctx context.Context, addr string) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           s.engine,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errc := make(chan error, 1)
	go func() {
		errc <- srv.ListenAndServe()
	}()
	log.Printf("server: listening on %s", addr)

	select {
	case err := <-errc:
		s.registry.Close()
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("listen: %w", err)
	case <-ctx.Done():
	}

	log.Printf("server: shutting down")
	// hijacked websocket connections are not tracked by Shutdown
	s.registry.Close()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}
	return nil
}

// Close discards every mounted page instance.
func (s *Server) Close() {
	s.registry.Close()
}
