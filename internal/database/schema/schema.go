package schema

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/rs/zerolog"
)

type step struct {
	Name string
	SQL  string
}

// Non-emptiness of the three fields is checked by the service; the table only declares NOT NULL.
var steps = []step{
	{
		Name: "create_table_inquiries",
		SQL: `CREATE TABLE IF NOT EXISTS inquiries (
  id              BIGSERIAL   PRIMARY KEY,
  field_of_study  TEXT        NOT NULL,
  destination     TEXT        NOT NULL,
  education_level TEXT        NOT NULL,
  created_at      TIMESTAMPTZ NOT NULL DEFAULT now()
);`,
	},
	{
		Name: "create_index_inquiries_created_at",
		SQL:  `CREATE INDEX IF NOT EXISTS idx_inquiries_created_at ON inquiries (created_at);`,
	},
}

// EnsureCreated creates the inquiries table when it does not exist yet.
// It is an idempotent bootstrap, not a versioned migration runner.
func EnsureCreated(ctx context.Context, db *sql.DB, log zerolog.Logger, dbHost string) error {
	start := time.Now()
	log = log.With().Str("component", "database").Str("db_host", dbHost).Logger()

	log.Info().Str("event", "db_schema_check").Str("status", "starting").Send()

	var exists bool
	query := "SELECT to_regclass('public.inquiries') IS NOT NULL"
	if err := db.QueryRowContext(ctx, query).Scan(&exists); err != nil {
		log.Error().
			Str("event", "db_schema_failed").
			Str("status", "error").
			Err(err).
			Int64("duration_ms", time.Since(start).Milliseconds()).
			Msg("failed to check sentinel table")
		return fmt.Errorf("failed to check sentinel table: %w", err)
	}

	if exists {
		log.Info().
			Str("event", "db_schema_skip").
			Str("status", "success").
			Int64("duration_ms", time.Since(start).Milliseconds()).
			Msg("schema already exists, skipping")
		return nil
	}

	for _, s := range steps {
		stepStart := time.Now()
		if _, err := db.ExecContext(ctx, s.SQL); err != nil {
			log.Error().
				Str("event", "db_schema_failed").
				Str("status", "error").
				Str("schema_step", s.Name).
				Err(err).
				Int64("duration_ms", time.Since(start).Milliseconds()).
				Int64("step_duration_ms", time.Since(stepStart).Milliseconds()).
				Send()
			return fmt.Errorf("schema step %s failed: %w", s.Name, err)
		}

		log.Info().
			Str("event", "db_schema_step").
			Str("status", "success").
			Str("schema_step", s.Name).
			Int64("step_duration_ms", time.Since(stepStart).Milliseconds()).
			Send()
	}

	log.Info().
		Str("event", "db_schema_success").
		Str("status", "success").
		Int64("duration_ms", time.Since(start).Milliseconds()).
		Send()

	return nil
}
