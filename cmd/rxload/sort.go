package main

import (
	"bufio"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/gyeh/rxreimb/internal/config"
	"github.com/gyeh/rxreimb/internal/exitcode"
	"github.com/gyeh/rxreimb/internal/fixedwidth"
	"github.com/gyeh/rxreimb/internal/fwread"
	"github.com/gyeh/rxreimb/internal/logging"
	"github.com/gyeh/rxreimb/internal/model"
	"github.com/gyeh/rxreimb/internal/orderedlist"
)

var sortCmd = &cobra.Command{
	Use:   "sort",
	Short: "Decode a quarter file, sort by drug name, re-encode",
	RunE:  runSort,
}

func init() {
	f := sortCmd.Flags()
	f.StringVar(&cfg.FilePath, "file", "", "Path to fixed-width quarter file (required)")
	f.StringVar(&cfg.OutPath, "out", "", "Output path (default stdout)")
	_ = sortCmd.MarkFlagRequired("file")
	rootCmd.AddCommand(sortCmd)
}

func runSort(cmd *cobra.Command, args []string) error {
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

	var out io.Writer = os.Stdout
	if cfg.OutPath != "" {
		f, err := os.Create(cfg.OutPath)
		if err != nil {
			log.Error().Err(err).Msg("failed to create output file")
			os.Exit(exitcode.ValidationError)
		}
		defer f.Close()
		out = f
	}

	w := bufio.NewWriter(out)
	for rec := range list.All() {
		line, err := fixedwidth.Encode(rec)
		if err != nil {
			log.Error().Err(err).Str("drug", rec.Name).Msg("encode failed")
			os.Exit(exitcode.DecodeError)
		}
		fmt.Fprintln(w, line)
	}
	if err := w.Flush(); err != nil {
		log.Error().Err(err).Msg("write failed")
		os.Exit(exitcode.ValidationError)
	}

	log.Info().
		Int("records", list.Len()).
		Int64("rejected", rejected).
		Msg("sort complete")
	return nil
}
