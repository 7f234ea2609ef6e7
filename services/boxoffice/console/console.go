// Package console implements the interactive text menu used to browse
// box office champions by quarter or month.
package console

import (
	"bufio"
	"context"
	"database/sql"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strconv"
	"strings"

	"boxoffice/lib/scrapers/boxofficemojo"
	"boxoffice/services/boxoffice/db"

	"github.com/jedib0t/go-pretty/v6/table"
)

type state int

const (
	stateTop state = iota
	stateKind
	stateQuarter
	stateMonth
	stateDetail
	stateExit
)

type Console struct {
	qry *db.Queries
	in  *bufio.Scanner
	out io.Writer

	recommendPort int
	comparePort   int

	// the menu the detail prompt returns to on "back"
	listedFrom state
	listing    []db.BoxOffice
}

type Options struct {
	In            io.Reader
	Out           io.Writer
	RecommendPort int
	ComparePort   int
}

func NewConsole(database *sql.DB, opts Options) *Console {
	return &Console{
		qry:           db.New(database),
		in:            bufio.NewScanner(opts.In),
		out:           opts.Out,
		recommendPort: opts.RecommendPort,
		comparePort:   opts.ComparePort,
	}
}

// Run drives the menu until the user exits or the input ends.
func (c *Console) Run(ctx context.Context) error {
	c.println(welcome)
	c.println(strings.Repeat("-", 80))
	c.println(intro)
	c.println(strings.Repeat("-", 80))

	current := stateTop
	for current != stateExit {
		if ctx.Err() != nil {
			return ctx.Err()
		}
		next, err := c.step(ctx, current)
		if err != nil {
			return err
		}
		current = next
	}
	return nil
}

func (c *Console) step(ctx context.Context, current state) (state, error) {
	switch current {
	case stateTop:
		return c.top()
	case stateKind:
		return c.kind()
	case stateQuarter:
		return c.interval(ctx, stateQuarter, promptQuarter, invalidQuarter, quarterChoice)
	case stateMonth:
		return c.interval(ctx, stateMonth, promptMonth, invalidMonth, monthChoice)
	case stateDetail:
		return c.detail(ctx)
	}
	return stateExit, fmt.Errorf("unknown console state %d", current)
}

func (c *Console) println(a ...any) {
	fmt.Fprintln(c.out, a...)
}

// ask prints the prompt and reads one line, ok is false once input ends.
func (c *Console) ask(prompt string) (string, bool) {
	fmt.Fprint(c.out, prompt)
	if !c.in.Scan() {
		c.println()
		return "", false
	}
	return strings.TrimSpace(c.in.Text()), true
}

func (c *Console) top() (state, error) {
	answer, ok := c.ask(promptTop)
	if !ok {
		return stateExit, nil
	}
	switch strings.ToLower(answer) {
	case "r":
		c.println(promptKindAsk)
		return stateKind, nil
	case "c":
		c.println(fmt.Sprintf("The comparison page is served at http://localhost:%d/", c.comparePort))
		return stateTop, nil
	case "exit":
		return stateExit, nil
	}
	c.println(invalidTop)
	return stateTop, nil
}

func (c *Console) kind() (state, error) {
	answer, ok := c.ask(promptKind)
	if !ok {
		return stateExit, nil
	}
	switch strings.ToLower(answer) {
	case "quarter":
		c.println()
		return stateQuarter, nil
	case "month":
		c.println()
		return stateMonth, nil
	case "back":
		return stateTop, nil
	case "exit":
		return stateExit, nil
	}
	c.println(invalidKind)
	return stateKind, nil
}

func quarterChoice(answer string) (boxofficemojo.Interval, bool) {
	n, err := strconv.Atoi(answer)
	if err != nil || n < 1 || n > 4 {
		return boxofficemojo.Interval{}, false
	}
	return boxofficemojo.Quarters()[n-1], true
}

func monthChoice(answer string) (boxofficemojo.Interval, bool) {
	for _, month := range boxofficemojo.Months() {
		if strings.EqualFold(month.Key, answer) {
			return month, true
		}
	}
	return boxofficemojo.Interval{}, false
}

func (c *Console) interval(ctx context.Context, from state, prompt, invalid string, choose func(string) (boxofficemojo.Interval, bool)) (state, error) {
	answer, ok := c.ask(prompt)
	if !ok {
		return stateExit, nil
	}
	switch strings.ToLower(answer) {
	case "back":
		return stateKind, nil
	case "exit":
		return stateExit, nil
	}

	interval, ok := choose(answer)
	if !ok {
		c.println(invalid)
		c.println()
		return from, nil
	}

	rows, err := c.qry.ListBoxOfficeByInterval(ctx, interval.Label)
	if err != nil {
		return stateExit, fmt.Errorf("list '%s': %w", interval.Label, err)
	}
	c.listedFrom = from
	c.listing = rows
	c.printListing(interval, rows)
	return stateDetail, nil
}

func (c *Console) printListing(interval boxofficemojo.Interval, rows []db.BoxOffice) {
	where := interval.Label
	if interval.Kind == boxofficemojo.Quarter {
		where = "the " + where
	}
	c.println(strings.Repeat("-", 60))
	c.println(fmt.Sprintf("List of Box Office Champions in %s of the last fifty years in the US", where))
	c.println(strings.Repeat("-", 60))
	for i, row := range rows {
		c.println(fmt.Sprintf("[%d] %s", i+1, Info(row)))
	}
	c.println()
	c.println(strings.Repeat("-", 60))
}

// Info is the one line summary of a listed movie.
func Info(row db.BoxOffice) string {
	return fmt.Sprintf("<%s>, (%d)  with a gross of %s.", row.MovieName, row.MovieYear, row.Gross)
}

func (c *Console) detail(ctx context.Context) (state, error) {
	answer, ok := c.ask(promptDetail)
	if !ok {
		return stateExit, nil
	}
	switch strings.ToLower(answer) {
	case "back":
		c.println()
		return c.listedFrom, nil
	case "exit":
		return stateExit, nil
	}

	n, err := strconv.Atoi(answer)
	if err != nil || n < 1 || n > len(c.listing) {
		c.println(invalidDetail)
		c.println()
		c.println(strings.Repeat("-", 60))
		return stateDetail, nil
	}

	row := c.listing[n-1]
	detail, err := c.qry.GetMovieDetailedInformation(ctx, row.ID)
	if errors.Is(err, sql.ErrNoRows) {
		slog.WarnContext(ctx, "movie has no detail row", "id", row.ID)
		detail = db.MovieDetailedInformation{ID: row.ID}
	} else if err != nil {
		return stateExit, fmt.Errorf("get detail %d: %w", row.ID, err)
	}

	c.printDetail(row, detail)
	c.println()
	c.println(strings.Repeat("-", 60))
	return stateDetail, nil
}

func orNA(value sql.NullString) string {
	if !value.Valid {
		return "n/a"
	}
	return value.String
}

func (c *Console) printDetail(row db.BoxOffice, detail db.MovieDetailedInformation) {
	t := table.NewWriter()
	t.SetOutputMirror(c.out)
	t.SetStyle(table.StyleRounded)
	t.AppendHeader(table.Row{"Field", "Value"})

	title := orNA(detail.Title)
	if !detail.Title.Valid {
		title = row.MovieName
	}
	t.AppendRows([]table.Row{
		{"Title", title},
		{"Released", orNA(detail.ReleaseDate)},
		{"Runtime", orNA(detail.Runtime)},
		{"Genre", orNA(detail.Genre)},
		{"Director", orNA(detail.Director)},
		{"IMDB rating", orNA(detail.InternetMovieRating)},
		{"Rotten Tomatoes rating", orNA(detail.RottenTomatoesRating)},
		{"Metacritic rating", orNA(detail.MetacriticRating)},
	})
	t.Render()

	c.println(fmt.Sprintf("See the ratings chart at http://localhost:%d/?id=%d", c.recommendPort, row.ID))
}
