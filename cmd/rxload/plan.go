package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/gyeh/rxreimb/internal/exitcode"
	"github.com/gyeh/rxreimb/internal/fixedwidth"
	"github.com/gyeh/rxreimb/internal/fwread"
	"github.com/gyeh/rxreimb/internal/logging"
	"github.com/gyeh/rxreimb/internal/normalize"
)

var planCmd = &cobra.Command{
	Use:   "plan",
	Short: "Dry-run validation and stats (no writes)",
	RunE:  runPlan,
}

func init() {
	planCmd.Flags().StringVar(&cfg.FilePath, "file", "", "Path to fixed-width quarter file (required)")
	_ = planCmd.MarkFlagRequired("file")
	rootCmd.AddCommand(planCmd)
}

func runPlan(cmd *cobra.Command, args []string) error {
	log := logging.Setup(cfg.LogFormat)

	if err := cfg.Validate(); err != nil {
		log.Error().Err(err).Msg("config validation failed")
		os.Exit(exitcode.UsageError)
	}

	sha, err := normalize.FileHash(cfg.FilePath)
	if err != nil {
		log.Error().Err(err).Msg("failed to hash file")
		os.Exit(exitcode.ValidationError)
	}

	stat, err := os.Stat(cfg.FilePath)
	if err != nil {
		log.Error().Err(err).Msg("failed to stat file")
		os.Exit(exitcode.ValidationError)
	}

	if err := fwread.ValidateFirstLine(cfg.FilePath); err != nil {
		log.Error().Err(err).Msg("first line validation failed")
		os.Exit(exitcode.ValidationError)
	}

	reader, err := fwread.Open(cfg.FilePath)
	if err != nil {
		log.Error().Err(err).Msg("failed to open source file")
		os.Exit(exitcode.ValidationError)
	}
	defer reader.Close()

	var (
		lines, rejected, claimLines int64
		totalPaid                   float64
		drugs                       = make(map[string]struct{})
	)
	for {
		line, ok := reader.Next()
		if !ok {
			break
		}
		lines++
		rec, decErr := fixedwidth.Decode(line)
		if decErr != nil {
			rejected++
			log.Warn().Err(decErr).Int64("line", reader.LineNum()).Msg("line would be rejected")
			continue
		}
		drugs[rec.Name] = struct{}{}
		claimLines += rec.ClaimLines
		totalPaid += rec.TotalPaid
	}
	if err := reader.Err(); err != nil {
		log.Error().Err(err).Msg("read failed")
		os.Exit(exitcode.ValidationError)
	}

	fmt.Println("=== rxload plan ===")
	fmt.Printf("File:          %s\n", cfg.FilePath)
	fmt.Printf("SHA-256:       %s\n", sha)
	fmt.Printf("Size:          %d bytes\n", stat.Size())
	if cfg.Quarter != "" {
		fmt.Printf("Quarter:       %s\n", cfg.Quarter)
	}
	fmt.Printf("Lines:         %d\n", lines)
	fmt.Printf("Decodable:     %d\n", lines-rejected)
	fmt.Printf("Rejected:      %d\n", rejected)
	fmt.Printf("Distinct drugs: %d\n", len(drugs))
	fmt.Printf("Claim lines:   %d\n", claimLines)
	fmt.Printf("Total paid:    %.2f\n", totalPaid)
	fmt.Println("First line validation: OK")

	return nil
}
