// Package web renders the stored events and weather rows as simple HTML
// pages. It is strictly a read-only consumer of the storage layer; the
// scrape and weather batches run separately.
package web

import (
	"embed"
	"fmt"
	"html/template"
	"io"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	"github.com/campusconnect/campus-events/internal/calendar"
	"github.com/campusconnect/campus-events/internal/storage"
)

//go:embed templates/*.html
var templateFS embed.FS

var templateFuncs = template.FuncMap{
	"fmtTemp": func(v *float64) string {
		if v == nil {
			return ""
		}
		return fmt.Sprintf("%.1f", *v)
	},
}

type renderer struct {
	templates *template.Template
}

func (r *renderer) Render(w io.Writer, name string, data interface{}, c echo.Context) error {
	return r.templates.ExecuteTemplate(w, name, data)
}

// Server serves the event and weather pages.
type Server struct {
	echo  *echo.Echo
	store *storage.Store
}

// New creates a Server backed by the given store.
func New(store *storage.Store) *Server {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.Use(middleware.Recover())
	e.Renderer = &renderer{
		templates: template.Must(template.New("").Funcs(templateFuncs).ParseFS(templateFS, "templates/*.html")),
	}

	s := &Server{echo: e, store: store}
	e.GET("/", s.handleIndex)
	e.GET("/events", s.handleEvents)
	e.GET("/api", s.handleAPIData)
	e.GET("/events.ics", s.handleCalendarFeed)
	return s
}

// Start blocks serving HTTP on addr.
func (s *Server) Start(addr string) error {
	return s.echo.Start(addr)
}

// ServeHTTP lets tests drive the router without a listener.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.echo.ServeHTTP(w, r)
}

func (s *Server) handleIndex(c echo.Context) error {
	return c.String(http.StatusOK, "CampusConnect running. Visit /events and /api")
}

func (s *Server) handleEvents(c echo.Context) error {
	events, err := s.store.ListEvents()
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "listing events: "+err.Error())
	}
	return c.Render(http.StatusOK, "events.html", map[string]interface{}{
		"Events": events,
	})
}

func (s *Server) handleAPIData(c echo.Context) error {
	records, err := s.store.ListAPIData()
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "listing api data: "+err.Error())
	}
	return c.Render(http.StatusOK, "api.html", map[string]interface{}{
		"Records": records,
	})
}

func (s *Server) handleCalendarFeed(c echo.Context) error {
	events, err := s.store.ListEvents()
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "listing events: "+err.Error())
	}
	return c.Blob(http.StatusOK, "text/calendar; charset=utf-8", []byte(calendar.Feed(events)))
}
