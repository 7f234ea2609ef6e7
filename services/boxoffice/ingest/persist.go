package ingest

import (
	"context"
	"database/sql"
	"fmt"
	"strconv"

	"boxoffice/services/boxoffice/db"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
)

func nullString(value *string) sql.NullString {
	if value == nil {
		return sql.NullString{}
	}
	return sql.NullString{String: *value, Valid: true}
}

// Persist drops and recreates both tables and writes rows and details in a
// single transaction, a failure leaves the previous contents in place.
func Persist(ctx context.Context, database *sql.DB, rows []BoxOfficeRow, details []MovieDetail) error {
	ctx, span := tracer.Start(ctx, "Persist")
	defer span.End()
	span.SetAttributes(
		attribute.Int("rows", len(rows)),
		attribute.Int("details", len(details)),
	)

	err := persist(ctx, database, rows, details)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return err
	}
	return nil
}

func persist(ctx context.Context, database *sql.DB, rows []BoxOfficeRow, details []MovieDetail) error {
	tx, err := database.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()
	txqry := db.New(tx)

	err = txqry.Recreate(ctx)
	if err != nil {
		return fmt.Errorf("recreate tables: %w", err)
	}

	for _, row := range rows {
		year, err := strconv.ParseInt(row.Year, 10, 64)
		if err != nil {
			return fmt.Errorf("row %d: invalid year '%s'", row.ID, row.Year)
		}
		err = txqry.InsertBoxOffice(ctx, db.InsertBoxOfficeParams{
			ID:              row.ID,
			MovieYear:       year,
			TimeInterval:    row.TimeInterval,
			MovieName:       row.MovieName,
			Gross:           row.Gross,
			Release:         row.Release,
			CumulativeGross: row.CumulativeGross,
			AverageGross:    row.AverageGross,
		})
		if err != nil {
			return fmt.Errorf("insert row %d: %w", row.ID, err)
		}
	}

	for _, detail := range details {
		err = txqry.InsertMovieDetailedInformation(ctx, db.InsertMovieDetailedInformationParams{
			ID:                   detail.ID,
			Title:                nullString(detail.Title),
			ReleaseDate:          nullString(detail.Released),
			Runtime:              nullString(detail.Runtime),
			Genre:                nullString(detail.Genre),
			Director:             nullString(detail.Director),
			InternetMovieRating:  nullString(detail.Ratings[0]),
			RottenTomatoesRating: nullString(detail.Ratings[1]),
			MetacriticRating:     nullString(detail.Ratings[2]),
		})
		if err != nil {
			return fmt.Errorf("insert detail %d: %w", detail.ID, err)
		}
	}

	return tx.Commit()
}
