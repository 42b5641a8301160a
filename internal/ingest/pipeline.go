package ingest

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"

	"github.com/gyeh/rxreimb/internal/config"
	"github.com/gyeh/rxreimb/internal/model"
)

// PipelineError wraps an error with the phase where it occurred.
type PipelineError struct {
	Phase string
	Err   error
}

func (e *PipelineError) Error() string {
	return fmt.Sprintf("%s: %s", e.Phase, e.Err)
}

func (e *PipelineError) Unwrap() error {
	return e.Err
}

// Run executes the full ingest pipeline: preflight → stage → publish →
// cleanup.
func Run(ctx context.Context, pool *pgxpool.Pool, log zerolog.Logger, cfg *config.Config) (*model.IngestSummary, error) {
	totalStart := time.Now()

	// Phase 1: Preflight
	log.Info().Str("file", cfg.FilePath).Msg("starting preflight")
	pf, err := Preflight(ctx, pool, log, cfg.FilePath, cfg.Quarter, cfg.Force)
	if err != nil {
		return nil, &PipelineError{Phase: "preflight", Err: err}
	}

	if pf.AlreadyLoaded {
		log.Info().
			Int64("source_file_id", pf.SourceFileID).
			Str("sha256", pf.FileSHA256).
			Msg("file already imported, skipping (use --force to re-import)")
		return &model.IngestSummary{
			FilePath:      pf.FilePath,
			FileSHA256:    pf.FileSHA256,
			SourceFileID:  pf.SourceFileID,
			IngestBatchID: pf.IngestBatchID.String(),
			DurationTotal: time.Since(totalStart),
		}, nil
	}

	// Phase 2: Stage
	log.Info().Msg("starting staging")
	if err := UpdateStatus(ctx, pool, pf.SourceFileID, "staging"); err != nil {
		return nil, &PipelineError{Phase: "stage", Err: err}
	}

	stageResult, err := Stage(ctx, pool, log, pf, cfg)
	if err != nil {
		_ = UpdateStatus(ctx, pool, pf.SourceFileID, "failed")
		return nil, &PipelineError{Phase: "stage", Err: err}
	}

	if err := UpdateStatus(ctx, pool, pf.SourceFileID, "staged"); err != nil {
		return nil, &PipelineError{Phase: "stage", Err: err}
	}

	// Phase 3: Publish
	log.Info().Msg("starting publish")
	if err := UpdateStatus(ctx, pool, pf.SourceFileID, "publishing"); err != nil {
		return nil, &PipelineError{Phase: "publish", Err: err}
	}

	publishResult, err := Publish(ctx, pool, log, pf.IngestBatchID)
	if err != nil {
		_ = UpdateStatus(ctx, pool, pf.SourceFileID, "failed")
		return nil, &PipelineError{Phase: "publish", Err: err}
	}

	if err := UpdateStatus(ctx, pool, pf.SourceFileID, "published"); err != nil {
		return nil, &PipelineError{Phase: "publish", Err: err}
	}

	// Phase 4: Cleanup staging
	if !cfg.KeepStaging {
		log.Info().Msg("cleaning up staging")
		if err := Cleanup(ctx, pool, log, pf.IngestBatchID); err != nil {
			log.Warn().Err(err).Msg("staging cleanup failed (non-fatal)")
		}
	}

	summary := &model.IngestSummary{
		FilePath:        pf.FilePath,
		FileSHA256:      pf.FileSHA256,
		SourceFileID:    pf.SourceFileID,
		IngestBatchID:   pf.IngestBatchID.String(),
		LinesRead:       stageResult.LinesRead,
		LinesRejected:   stageResult.LinesRejected,
		RowsStaged:      stageResult.RowsStaged,
		RowsPublished:   publishResult.RowsPublished,
		DurationDecode:  stageResult.DurationDecode,
		DurationCopy:    stageResult.DurationCopy,
		DurationPublish: publishResult.Duration,
		DurationTotal:   time.Since(totalStart),
	}

	log.Info().
		Int64("lines_read", summary.LinesRead).
		Int64("lines_rejected", summary.LinesRejected).
		Int64("rows_staged", summary.RowsStaged).
		Int64("rows_published", summary.RowsPublished).
		Str("total_duration", summary.DurationTotal.String()).
		Msg("ingest pipeline complete")

	return summary, nil
}
