package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/gyeh/rxreimb/internal/config"
	"github.com/gyeh/rxreimb/internal/exitcode"
	"github.com/gyeh/rxreimb/internal/fixedwidth"
	"github.com/gyeh/rxreimb/internal/fwread"
	"github.com/gyeh/rxreimb/internal/logging"
	"github.com/gyeh/rxreimb/internal/model"
	"github.com/gyeh/rxreimb/internal/orderedlist"
	"github.com/gyeh/rxreimb/internal/parquetwrite"
)

const exportBatchSize = 1024

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Decode a quarter file and export sorted records to Parquet",
	RunE:  runExport,
}

func init() {
	f := exportCmd.Flags()
	f.StringVar(&cfg.FilePath, "file", "", "Path to fixed-width quarter file (required)")
	f.StringVar(&cfg.OutPath, "out", "", "Output Parquet path (required)")
	_ = exportCmd.MarkFlagRequired("file")
	_ = exportCmd.MarkFlagRequired("out")
	rootCmd.AddCommand(exportCmd)
}

func runExport(cmd *cobra.Command, args []string) error {
	log := logging.Setup(cfg.LogFormat)

	if err := cfg.Validate(); err != nil {
		log.Error().Err(err).Msg("config validation failed")
		os.Exit(exitcode.UsageError)
	}

	reader, err := fwread.Open(cfg.FilePath)
	if err != nil {
		log.Error().Err(err).Msg("failed to open source file")
		os.Exit(exitcode.ValidationError)
	}
	defer reader.Close()

	list := orderedlist.New[model.Record]()
	var rejected int64
	for {
		line, ok := reader.Next()
		if !ok {
			break
		}
		rec, decErr := fixedwidth.Decode(line)
		if decErr != nil {
			if cfg.OnMalformed == config.MalformedAbort {
				log.Error().Err(decErr).Int64("line", reader.LineNum()).Msg("decode failed")
				os.Exit(exitcode.DecodeError)
			}
			rejected++
			log.Warn().Err(decErr).Int64("line", reader.LineNum()).Msg("line rejected")
			continue
		}
		if err := list.Insert(rec); err != nil {
			log.Error().Err(err).Int64("line", reader.LineNum()).Msg("insert failed")
			os.Exit(exitcode.DecodeError)
		}
	}
	if err := reader.Err(); err != nil {
		log.Error().Err(err).Msg("read failed")
		os.Exit(exitcode.ValidationError)
	}

	writer, err := parquetwrite.Create(cfg.OutPath)
	if err != nil {
		log.Error().Err(err).Msg("failed to create export file")
		os.Exit(exitcode.ValidationError)
	}

	batch := make([]model.ReimbursementRow, 0, exportBatchSize)
	var written int64
	flush := func() error {
		if len(batch) == 0 {
			return nil
		}
		n, err := writer.Write(batch)
		written += int64(n)
		batch = batch[:0]
		return err
	}

	for rec := range list.All() {
		batch = append(batch, model.ToParquetRow(rec, cfg.Quarter))
		if len(batch) == exportBatchSize {
			if err := flush(); err != nil {
				log.Error().Err(err).Msg("export write failed")
				os.Exit(exitcode.CopyError)
			}
		}
	}
	if err := flush(); err != nil {
		log.Error().Err(err).Msg("export write failed")
		os.Exit(exitcode.CopyError)
	}
	if err := writer.Close(); err != nil {
		log.Error().Err(err).Msg("export close failed")
		os.Exit(exitcode.CopyError)
	}

	log.Info().
		Int64("records", written).
		Int64("rejected", rejected).
		Str("out", cfg.OutPath).
		Msg("export complete")
	return nil
}
