package ingest

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"

	"github.com/gyeh/rxreimb/internal/fwread"
	"github.com/gyeh/rxreimb/internal/normalize"
	embedsql "github.com/gyeh/rxreimb/internal/sql"
)

// PreflightResult holds all context resolved during the preflight phase.
type PreflightResult struct {
	// FilePath is the original path passed to Preflight, stored as-is.
	FilePath string
	// FileSHA256 is the hex-encoded SHA-256 digest of the file.
	FileSHA256 string
	// FileSize is the file size in bytes from os.Stat.
	FileSize int64
	// SourceFileID is the DB primary key for this quarter file, inserted or
	// looked up by its sha256.
	SourceFileID int64
	// IngestBatchID is a freshly generated UUIDv4 identifying this ingest
	// run, used to tag staged rows for publish and cleanup.
	IngestBatchID uuid.UUID
	// AlreadyLoaded is true when the file's sha256 already exists with
	// status "published" and force mode is off, signaling the pipeline can
	// skip this file.
	AlreadyLoaded bool
}

// Preflight computes the file hash, checks the first line has the expected
// record width, and registers the source file.
func Preflight(ctx context.Context, pool *pgxpool.Pool, log zerolog.Logger, filePath, quarter string, force bool) (*PreflightResult, error) {
	start := time.Now()

	sha, err := normalize.FileHash(filePath)
	if err != nil {
		return nil, fmt.Errorf("preflight hash: %w", err)
	}

	stat, err := os.Stat(filePath)
	if err != nil {
		return nil, fmt.Errorf("preflight stat: %w", err)
	}

	if err := fwread.ValidateFirstLine(filePath); err != nil {
		return nil, fmt.Errorf("preflight validate: %w", err)
	}

	log.Info().
		Str("file", filepath.Base(filePath)).
		Str("sha256", sha).
		Int64("bytes", stat.Size()).
		Dur("duration", time.Since(start)).
		Msg("preflight complete")

	sourceFileID, alreadyLoaded, err := registerSourceFile(ctx, pool, filePath, sha, stat.Size(), quarter, force)
	if err != nil {
		return nil, fmt.Errorf("preflight register file: %w", err)
	}

	return &PreflightResult{
		FilePath:      filePath,
		FileSHA256:    sha,
		FileSize:      stat.Size(),
		SourceFileID:  sourceFileID,
		IngestBatchID: uuid.New(),
		AlreadyLoaded: alreadyLoaded,
	}, nil
}

func registerSourceFile(ctx context.Context, pool *pgxpool.Pool, filePath, sha string, fileSize int64, quarter string, force bool) (int64, bool, error) {
	var sourceFileID int64
	err := pool.QueryRow(ctx, embedsql.RegisterSourceFile,
		filepath.Base(filePath), sha, fileSize, nilIfEmpty(quarter), nil,
	).Scan(&sourceFileID)
	if err == nil {
		return sourceFileID, false, nil
	}
	if !errors.Is(err, pgx.ErrNoRows) {
		return 0, false, fmt.Errorf("register source file: %w", err)
	}

	// Already registered (ON CONFLICT DO NOTHING returned no rows).
	var status string
	if err := pool.QueryRow(ctx, embedsql.LookupSourceFile, sha).Scan(&sourceFileID, &status); err != nil {
		return 0, false, fmt.Errorf("lookup existing source file: %w", err)
	}

	if !force && status == "published" {
		return sourceFileID, true, nil
	}

	// Reset status for re-import.
	if _, err := pool.Exec(ctx, embedsql.UpdateFileStatus, sourceFileID, "pending"); err != nil {
		return 0, false, fmt.Errorf("reset source file status: %w", err)
	}
	return sourceFileID, false, nil
}

func nilIfEmpty(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
