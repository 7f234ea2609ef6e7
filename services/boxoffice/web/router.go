// Package web serves the recommendation page (the details and ratings of
// one movie) and the comparison pages (one metric across the years of an
// interval).
package web

import (
	"embed"
	"html/template"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

//go:embed templates/*.html
var templateFS embed.FS

var templates = template.Must(template.New("").ParseFS(templateFS, "templates/*.html"))

var requestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
	Name: "boxoffice_http_requests_total",
	Help: "Requests served by the web pages.",
}, []string{"server", "route", "status"})

var requestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
	Name:    "boxoffice_http_request_duration_seconds",
	Help:    "Request latency of the web pages.",
	Buckets: prometheus.DefBuckets,
}, []string{"server", "route"})

// loggerMiddleware logs one line per request, errors attached to the
// context are folded into the same entry.
func loggerMiddleware(server string) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		duration := time.Since(start)

		route := c.FullPath()
		if route == "" {
			route = "unmatched"
		}
		status := c.Writer.Status()
		requestsTotal.WithLabelValues(server, route, strconv.Itoa(status)).Inc()
		requestDuration.WithLabelValues(server, route).Observe(duration.Seconds())

		attrs := []any{
			"server", server,
			"method", c.Request.Method,
			"path", c.Request.URL.Path,
			"status", status,
			"duration", duration,
			"client_ip", c.ClientIP(),
		}
		if c.Request.URL.RawQuery != "" {
			attrs = append(attrs, "query", c.Request.URL.RawQuery)
		}
		if len(c.Errors) > 0 {
			attrs = append(attrs, "errors", c.Errors.Errors())
			slog.ErrorContext(c.Request.Context(), "http request with errors", attrs...)
			return
		}
		slog.InfoContext(c.Request.Context(), "http request", attrs...)
	}
}

func newRouter(server string) *gin.Engine {
	router := gin.New()
	router.Use(loggerMiddleware(server), gin.Recovery())
	router.SetHTMLTemplate(templates)

	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok", "server": server})
	})
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))
	return router
}

// fail records err on the request and renders a plain error page.
func fail(c *gin.Context, status int, err error) {
	_ = c.Error(err)
	c.HTML(status, "error.html", gin.H{
		"Status":  status,
		"Message": err.Error(),
	})
}
