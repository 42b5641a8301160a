package ingest

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"

	embedsql "github.com/gyeh/rxreimb/internal/sql"
)

// PublishResult holds metrics from the staging-to-serving publish.
type PublishResult struct {
	RowsPublished int64
	Duration      time.Duration
}

// Publish runs the INSERT...SELECT from staging into the serving table
// (rx.reimbursements) and refreshes planner statistics.
func Publish(ctx context.Context, pool *pgxpool.Pool, log zerolog.Logger, batchID uuid.UUID) (*PublishResult, error) {
	start := time.Now()

	tag, err := pool.Exec(ctx, embedsql.PublishBatch, batchID)
	if err != nil {
		return nil, fmt.Errorf("publish batch: %w", err)
	}
	rows := tag.RowsAffected()

	if _, err := pool.Exec(ctx, embedsql.AnalyzeReimbursements); err != nil {
		return nil, fmt.Errorf("analyze reimbursements: %w", err)
	}

	dur := time.Since(start)
	log.Info().
		Int64("rows_published", rows).
		Str("duration", dur.String()).
		Msg("publish complete")

	return &PublishResult{RowsPublished: rows, Duration: dur}, nil
}
