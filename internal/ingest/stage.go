package ingest

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"

	"github.com/gyeh/rxreimb/internal/config"
	"github.com/gyeh/rxreimb/internal/db"
	"github.com/gyeh/rxreimb/internal/fixedwidth"
	"github.com/gyeh/rxreimb/internal/fwread"
	"github.com/gyeh/rxreimb/internal/model"
	"github.com/gyeh/rxreimb/internal/normalize"
	"github.com/gyeh/rxreimb/internal/orderedlist"
	embedsql "github.com/gyeh/rxreimb/internal/sql"
)

const copyBatchSize = 1024

// stagedRecord pairs a decoded record with its source provenance. Ordering
// follows the record's drug name, so the staged batch keeps the same tie
// behavior as the sorted console output.
type stagedRecord struct {
	rec     model.Record
	lineNum int64
	line    string
}

func (a stagedRecord) Compare(b stagedRecord) int {
	return a.rec.Compare(b.rec)
}

// StageResult holds metrics from the staging phase.
type StageResult struct {
	LinesRead      int64
	LinesRejected  int64
	RowsStaged     int64
	DurationDecode time.Duration
	DurationCopy   time.Duration
}

// Stage decodes every line of the source file, keeps the records in drug
// name order as they arrive, then COPY-loads them into the staging table in
// that order through a channel-backed CopyFromSource. Malformed lines are
// rejected and counted under the skip policy and abort the batch otherwise.
func Stage(ctx context.Context, pool *pgxpool.Pool, log zerolog.Logger, pf *PreflightResult, cfg *config.Config) (*StageResult, error) {
	decodeStart := time.Now()

	reader, err := fwread.Open(pf.FilePath)
	if err != nil {
		return nil, fmt.Errorf("stage open: %w", err)
	}
	defer reader.Close()

	list := orderedlist.New[stagedRecord]()
	var linesRead, linesRejected int64

	for {
		line, ok := reader.Next()
		if !ok {
			break
		}
		linesRead++

		rec, decErr := fixedwidth.Decode(line)
		if decErr != nil {
			if cfg.OnMalformed == config.MalformedAbort {
				return nil, fmt.Errorf("decode line %d: %w", reader.LineNum(), decErr)
			}
			linesRejected++
			log.Warn().Err(decErr).Int64("line", reader.LineNum()).Msg("line rejected")
			continue
		}

		if err := list.Insert(stagedRecord{rec: rec, lineNum: reader.LineNum(), line: line}); err != nil {
			return nil, fmt.Errorf("insert line %d: %w", reader.LineNum(), err)
		}
	}
	if err := reader.Err(); err != nil {
		return nil, fmt.Errorf("read source at line %d: %w", reader.LineNum(), err)
	}
	decodeDur := time.Since(decodeStart)

	// COPY the sorted batch into staging. The producer selects on the derived
	// context so it exits even when CopyFrom fails before draining ch.
	copyStart := time.Now()
	copyCtx, cancel := context.WithCancel(ctx)
	defer cancel()

	ch := make(chan *model.StagingRow, copyBatchSize)
	go func() {
		defer close(ch)
		for sr := range list.All() {
			staging := normalize.ToStagingRow(sr.rec, pf.IngestBatchID, pf.SourceFileID, sr.lineNum, sr.line)
			select {
			case ch <- staging:
			case <-copyCtx.Done():
				return
			}
		}
	}()

	source := db.NewChannelSource(ch)
	rowsStaged, err := pool.CopyFrom(copyCtx,
		pgx.Identifier{"rx", "stage_reimbursements"},
		model.StagingColumns(),
		source,
	)
	if err != nil {
		return nil, fmt.Errorf("stage copy: %w", err)
	}
	copyDur := time.Since(copyStart)

	log.Info().
		Int64("lines_read", linesRead).
		Int64("lines_rejected", linesRejected).
		Int64("rows_staged", rowsStaged).
		Str("decode_duration", decodeDur.String()).
		Str("copy_duration", copyDur.String()).
		Msg("staging complete")

	return &StageResult{
		LinesRead:      linesRead,
		LinesRejected:  linesRejected,
		RowsStaged:     rowsStaged,
		DurationDecode: decodeDur,
		DurationCopy:   copyDur,
	}, nil
}

// UpdateStatus updates the source file status.
func UpdateStatus(ctx context.Context, pool *pgxpool.Pool, sourceFileID int64, status string) error {
	_, err := pool.Exec(ctx, embedsql.UpdateFileStatus, sourceFileID, status)
	return err
}
