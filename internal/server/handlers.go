package server

import (
	"errors"
	"log"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/Zachkp/motionfolio/internal/live"
)

func (s *Server) base(route Route, title string) gin.H {
	return gin.H{
		"title":  title,
		"site":   s.catalog.Site,
		"active": route.Path,
	}
}

func (s *Server) livePage(route Route) gin.HandlerFunc {
	return func(c *gin.Context) {
		inst, err := s.registry.Mount(route.Page)
		if errors.Is(err, live.ErrTooManyPending) {
			c.Header("Retry-After", strconv.Itoa(int(s.cfg.AttachGrace.Seconds())))
			c.AbortWithStatus(http.StatusServiceUnavailable)
			return
		}
		if err != nil {
			log.Printf("server: mount %s: %v", route.Page, err)
			c.AbortWithStatus(http.StatusServiceUnavailable)
			return
		}

		data := s.base(route, route.Title)
		data["live"] = inst.ID()
		data["view"] = inst.View()
		switch route.Page {
		case live.PageHome:
			data["hero"] = s.catalog.Hero
			data["showcase"] = s.catalog.Showcase
		case live.PageContact:
			data["copy"] = s.catalog.Contact
		}
		c.HTML(http.StatusOK, route.Template(), data)
	}
}

func (s *Server) placeholder(route Route, status int) gin.HandlerFunc {
	return func(c *gin.Context) {
		page, err := s.catalog.Page(route.Copy)
		if err != nil {
			log.Printf("server: %v", err)
			c.AbortWithStatus(http.StatusInternalServerError)
			return
		}

		data := s.base(route, page.Title)
		data["page"] = page
		c.HTML(status, route.Template(), data)
	}
}

func (s *Server) health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":    "ok",
		"instances": s.registry.Len(),
	})
}

func (s *Server) liveSocket(c *gin.Context) {
	id := c.Param("id")
	inst, err := s.registry.Attach(id)
	switch {
	case errors.Is(err, live.ErrUnknownInstance):
		c.JSON(http.StatusNotFound, gin.H{"error": "unknown page instance"})
		return
	case errors.Is(err, live.ErrAlreadyAttached):
		c.JSON(http.StatusConflict, gin.H{"error": "page instance already attached"})
		return
	case err != nil:
		log.Printf("server: attach %s: %v", id, err)
		c.AbortWithStatus(http.StatusInternalServerError)
		return
	}
	defer s.registry.Unmount(id)

	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		log.Printf("server: websocket upgrade: %v", err)
		return
	}
	defer conn.Close()

	if err := inst.Serve(c.Request.Context(), conn); err != nil {
		log.Printf("server: live %s: %v", id, err)
	}
}
