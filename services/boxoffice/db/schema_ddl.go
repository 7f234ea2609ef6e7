package db

import "context"

const createBoxOffice = `CREATE TABLE BoxOffice (
    id integer PRIMARY KEY,
    MovieYear integer NOT NULL,
    TimeInterval text NOT NULL,
    MovieName text NOT NULL,
    Gross text NOT NULL,
    Release text NOT NULL,
    CumulativeGross text NOT NULL,
    AverageGross text NOT NULL
)`

const createMovieDetailedInformation = `CREATE TABLE MovieDetailedInformation (
    id integer PRIMARY KEY,
    title text,
    ReleaseDate text,
    runtime text,
    genre text,
    director text,
    Internet_Movie_rating text,
    Rotten_Tomatoes_rating text,
    Metacritic_rating text
)`

// Recreate drops both tables and creates them empty. Statements run one at a
// time since remote libsql connections reject multi-statement execs.
func (q *Queries) Recreate(ctx context.Context) error {
	steps := []func(context.Context) error{
		q.DropBoxOffice,
		q.DropMovieDetailedInformation,
		func(ctx context.Context) error {
			_, err := q.db.ExecContext(ctx, createBoxOffice)
			return err
		},
		func(ctx context.Context) error {
			_, err := q.db.ExecContext(ctx, createMovieDetailedInformation)
			return err
		},
	}
	for _, step := range steps {
		if err := step(ctx); err != nil {
			return err
		}
	}
	return nil
}
