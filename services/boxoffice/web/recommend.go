package web

import (
	"database/sql"
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"boxoffice/lib/scrapers/omdb"
	"boxoffice/services/boxoffice/db"

	"github.com/gin-gonic/gin"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
)

var tracer = otel.Tracer("boxoffice/services/boxoffice/web")

var ratingLabels = [omdb.RatingCount]string{"IMDB", "Rotten Tomatoes", "Metacritic"}

type Recommend struct {
	qry *db.Queries
}

type movie struct {
	Row    db.BoxOffice
	Detail db.MovieDetailedInformation
}

// NewRecommendHandler serves the detail page of one stored movie,
// selected with ?id=N.
func NewRecommendHandler(database *sql.DB) http.Handler {
	r := Recommend{qry: db.New(database)}
	router := newRouter("recommend")
	router.GET("/", r.page)
	router.GET("/chart", r.chart)
	return router
}

func (r Recommend) lookup(c *gin.Context) (movie, bool) {
	ctx, span := tracer.Start(c.Request.Context(), "Recommend.lookup")
	defer span.End()

	raw := c.Query("id")
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		fail(c, http.StatusBadRequest, fmt.Errorf("invalid movie id '%s'", raw))
		return movie{}, false
	}
	span.SetAttributes(attribute.Int64("id", id))

	row, err := r.qry.GetBoxOffice(ctx, id)
	if errors.Is(err, sql.ErrNoRows) {
		fail(c, http.StatusNotFound, fmt.Errorf("no movie with id %d", id))
		return movie{}, false
	}
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		fail(c, http.StatusInternalServerError, err)
		return movie{}, false
	}

	detail, err := r.qry.GetMovieDetailedInformation(ctx, id)
	if errors.Is(err, sql.ErrNoRows) {
		detail = db.MovieDetailedInformation{ID: id}
	} else if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		fail(c, http.StatusInternalServerError, err)
		return movie{}, false
	}

	return movie{Row: row, Detail: detail}, true
}

func ratingTexts(detail db.MovieDetailedInformation) [omdb.RatingCount]sql.NullString {
	return [omdb.RatingCount]sql.NullString{
		detail.InternetMovieRating,
		detail.RottenTomatoesRating,
		detail.MetacriticRating,
	}
}

// ratingBars puts every rating on a 0-100 scale, absent or unparsable
// ratings are drawn as 0 and labelled n/a.
func ratingBars(detail db.MovieDetailedInformation) []bar {
	bars := make([]bar, omdb.RatingCount)
	for i, text := range ratingTexts(detail) {
		bars[i].Label = ratingLabels[i]
		score, ok := omdb.Score(i, text.String)
		if !text.Valid || !ok {
			bars[i].Label += " (n/a)"
			continue
		}
		bars[i].Value = score
	}
	return bars
}

func orNA(value sql.NullString) string {
	if !value.Valid {
		return "n/a"
	}
	return value.String
}

func (r Recommend) page(c *gin.Context) {
	m, ok := r.lookup(c)
	if !ok {
		return
	}

	title := m.Row.MovieName
	if m.Detail.Title.Valid {
		title = m.Detail.Title.String
	}
	ratings := ratingTexts(m.Detail)
	c.HTML(http.StatusOK, "recommend.html", gin.H{
		"ID":       m.Row.ID,
		"Title":    title,
		"Year":     m.Row.MovieYear,
		"Interval": m.Row.TimeInterval,
		"Gross":    m.Row.Gross,
		"Details": [][2]string{
			{"Released", orNA(m.Detail.ReleaseDate)},
			{"Runtime", orNA(m.Detail.Runtime)},
			{"Genre", orNA(m.Detail.Genre)},
			{"Director", orNA(m.Detail.Director)},
			{"IMDB rating", orNA(ratings[0])},
			{"Rotten Tomatoes rating", orNA(ratings[1])},
			{"Metacritic rating", orNA(ratings[2])},
		},
	})
}

func (r Recommend) chart(c *gin.Context) {
	m, ok := r.lookup(c)
	if !ok {
		return
	}

	c.Header("content-type", "text/html; charset=utf-8")
	c.Status(http.StatusOK)
	err := renderBarChart(c.Writer, m.Row.MovieName, "rating", ratingBars(m.Detail))
	if err != nil {
		_ = c.Error(err)
	}
}
