package web

import (
	"database/sql"
	"fmt"
	"net/http"
	"net/url"
	"strconv"

	"boxoffice/lib/scrapers/boxofficemojo"
	"boxoffice/services/boxoffice/db"

	"github.com/gin-gonic/gin"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
)

type Compare struct {
	qry *db.Queries
}

// NewCompareHandler serves the comparison form and its results.
func NewCompareHandler(database *sql.DB) http.Handler {
	cmp := Compare{qry: db.New(database)}
	router := newRouter("compare")
	router.GET("/", cmp.index)
	router.POST("/results", cmp.results)
	router.GET("/results/chart", cmp.chart)
	return router
}

type resultRow struct {
	Year  int64
	Name  string
	Value string
}

func (cmp Compare) index(c *gin.Context) {
	var intervals []string
	for _, interval := range boxofficemojo.Intervals() {
		intervals = append(intervals, interval.Label)
	}
	c.HTML(http.StatusOK, "compare_index.html", gin.H{
		"Intervals":        intervals,
		"AllMoviesMetrics": KindMetrics(KindAllMovies),
		"ChampionsMetrics": KindMetrics(KindChampions),
	})
}

// query returns the rows of an interval with the chosen metric, ordered by
// year, newest first.
func (cmp Compare) query(c *gin.Context, metric Metric, interval boxofficemojo.Interval) ([]resultRow, []bar, error) {
	ctx, span := tracer.Start(c.Request.Context(), "Compare.query")
	defer span.End()
	span.SetAttributes(
		attribute.String("metric", metric.Name),
		attribute.String("interval", interval.Label),
	)

	rows, err := cmp.qry.ListComparisonRows(ctx, interval.Label)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return nil, nil, err
	}

	results := make([]resultRow, len(rows))
	bars := make([]bar, len(rows))
	for i, row := range rows {
		text, value, ok := metric.Value(row)
		label := strconv.FormatInt(row.MovieYear, 10)
		if !ok {
			text = "n/a"
			label += " (n/a)"
		}
		results[i] = resultRow{Year: row.MovieYear, Name: row.MovieName, Value: text}
		bars[i] = bar{Label: label, Value: value}
	}
	return results, bars, nil
}

func (cmp Compare) results(c *gin.Context) {
	kind := c.PostForm("movies")
	var field, kindText string
	switch kind {
	case KindAllMovies:
		field = "allmovies"
		kindText = "all movies"
	case KindChampions:
		field = "champions"
		kindText = "box office champions"
	default:
		fail(c, http.StatusBadRequest, fmt.Errorf("unknown movie kind '%s'", kind))
		return
	}

	metricName := c.PostForm(field)
	metric, ok := LookupMetric(kind, metricName)
	if !ok {
		fail(c, http.StatusBadRequest, fmt.Errorf("unknown metric '%s' for %s", metricName, kindText))
		return
	}

	intervalName := c.PostForm("interval")
	interval, ok := boxofficemojo.LookupInterval(intervalName)
	if !ok {
		fail(c, http.StatusBadRequest, fmt.Errorf("unknown interval '%s'", intervalName))
		return
	}

	results, _, err := cmp.query(c, metric, interval)
	if err != nil {
		fail(c, http.StatusInternalServerError, err)
		return
	}

	when := interval.Label
	if interval.Kind == boxofficemojo.Quarter {
		when = "the " + when
	}
	chartQuery := url.Values{}
	chartQuery.Set("metric", metric.Name)
	chartQuery.Set("interval", interval.Label)

	c.HTML(http.StatusOK, "compare_results.html", gin.H{
		"Variable":  metric.Name,
		"MovieKind": kindText,
		"Time":      when,
		"Results":   results,
		"ChartURL":  "/results/chart?" + chartQuery.Encode(),
	})
}

func (cmp Compare) chart(c *gin.Context) {
	metric, ok := LookupMetric("", c.Query("metric"))
	if !ok {
		fail(c, http.StatusBadRequest, fmt.Errorf("unknown metric '%s'", c.Query("metric")))
		return
	}
	interval, ok := boxofficemojo.LookupInterval(c.Query("interval"))
	if !ok {
		fail(c, http.StatusBadRequest, fmt.Errorf("unknown interval '%s'", c.Query("interval")))
		return
	}

	_, bars, err := cmp.query(c, metric, interval)
	if err != nil {
		fail(c, http.StatusInternalServerError, err)
		return
	}

	c.Header("content-type", "text/html; charset=utf-8")
	c.Status(http.StatusOK)
	err = renderBarChart(c.Writer, fmt.Sprintf("%s in %s", metric.Name, interval.Label), metric.Name, bars)
	if err != nil {
		_ = c.Error(err)
	}
}
