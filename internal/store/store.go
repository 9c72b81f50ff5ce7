// Package store loads the launch dataset into the immutable in-memory table.
// Ingestion goes through DuckDB's read_csv so header handling, type
// inference, and NULL detection match the rest of the platform tooling.
package store

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"os"
	"strings"

	_ "github.com/duckdb/duckdb-go/v2"

	"launchdash/internal/domain"
)

// Source CSV columns, as produced by the launch records export.
const (
	colSite    = `"Launch Site"`
	colOutcome = `"class"`
	colPayload = `"Payload Mass (kg)"`
	colBooster = `"Booster Version Category"`
)

// Open returns an in-memory DuckDB handle used only for CSV ingestion.
func Open() (*sql.DB, error) {
	db, err := sql.Open("duckdb", "")
	if err != nil {
		return nil, fmt.Errorf("open duckdb: %w", err)
	}
	return db, nil
}

// Load reads the launch dataset at path into a domain.Table.
//
// Rows with a missing site, outcome, or payload, a negative payload, or an
// outcome other than 0/1 are dropped. A missing file yields
// domain.DataUnavailableError; callers treat that as fatal at startup.
func Load(ctx context.Context, db *sql.DB, path string, logger *slog.Logger) (domain.Table, error) {
	if _, err := os.Stat(path); err != nil {
		if os.IsNotExist(err) {
			return domain.Table{}, domain.ErrDataUnavailable(
				"launch dataset not found at %q (set SPACEX_DASH_CSV to override)", path)
		}
		return domain.Table{}, fmt.Errorf("stat %s: %w", path, err)
	}

	var total int
	countQuery := fmt.Sprintf(`SELECT count(*) FROM read_csv(%s, header = true)`, quoteLiteral(path))
	if err := db.QueryRowContext(ctx, countQuery).Scan(&total); err != nil {
		return domain.Table{}, fmt.Errorf("count rows in %s: %w", path, err)
	}

	query := fmt.Sprintf(`
SELECT
    CAST(%[1]s AS VARCHAR),
    CAST(%[2]s AS INTEGER),
    CAST(%[3]s AS DOUBLE),
    CAST(%[4]s AS VARCHAR)
FROM read_csv(%[5]s, header = true)
WHERE %[1]s IS NOT NULL
  AND %[2]s IS NOT NULL
  AND %[3]s IS NOT NULL
  AND %[3]s >= 0
  AND %[2]s IN (0, 1)`,
		colSite, colOutcome, colPayload, colBooster, quoteLiteral(path))

	rows, err := db.QueryContext(ctx, query)
	if err != nil {
		return domain.Table{}, fmt.Errorf("read launch dataset %s: %w", path, err)
	}
	defer rows.Close()

	var records []domain.LaunchRecord
	for rows.Next() {
		var rec domain.LaunchRecord
		var booster sql.NullString
		if err := rows.Scan(&rec.Site, &rec.Outcome, &rec.PayloadMass, &booster); err != nil {
			return domain.Table{}, fmt.Errorf("scan launch record: %w", err)
		}
		rec.BoosterCategory = booster.String
		records = append(records, rec)
	}
	if err := rows.Err(); err != nil {
		return domain.Table{}, fmt.Errorf("read launch dataset %s: %w", path, err)
	}

	logger.Info("launch dataset loaded",
		"path", path,
		"records", len(records),
		"dropped", total-len(records),
	)
	return domain.NewTable(records), nil
}

// quoteLiteral wraps s in single quotes for interpolation into a read_csv
// call. Paths are operator-supplied, not user input.
func quoteLiteral(s string) string {
	return "'" + strings.ReplaceAll(s, "'", "''") + "'"
}
