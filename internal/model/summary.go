package model

import "time"

// IngestSummary captures metrics from a single file ingest run.
type IngestSummary struct {
	FilePath      string
	FileSHA256    string
	SourceFileID  int64
	IngestBatchID string
	LinesRead     int64
	LinesRejected int64
	RowsStaged    int64
	RowsPublished int64

	DurationDecode  time.Duration
	DurationCopy    time.Duration
	DurationPublish time.Duration
	DurationTotal   time.Duration
}
