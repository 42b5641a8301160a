package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/gyeh/rxreimb/internal/config"
	"github.com/gyeh/rxreimb/internal/exitcode"
)

var (
	cfg     config.Config
	cfgFile string
)

var rootCmd = &cobra.Command{
	Use:   "rxload",
	Short: "Quarterly pharmacy-reimbursement file loader",
	Long:  "Decodes 158-character fixed-width pharmacy-reimbursement files, keeps records ordered by drug name, and re-emits, inspects, or bulk-loads them into Postgres.",
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if cfgFile == "" {
			return nil
		}
		return cfg.LoadFromFile(cfgFile)
	},
}

func init() {
	pf := rootCmd.PersistentFlags()
	pf.StringVar(&cfg.DSN, "dsn", os.Getenv("RXREIMB_DB_URL"), "Postgres connection string (or set RXREIMB_DB_URL)")
	pf.StringVar(&cfg.LogFormat, "log-format", "text", "Log format: text or json")
	pf.StringVar(&cfgFile, "config", "", "Path to YAML config file")
	pf.StringVar(&cfg.Quarter, "quarter", "", "Quarter label, e.g. 2025Q1")
	pf.StringVar(&cfg.OnMalformed, "on-malformed", "", "Malformed line policy: skip or abort (default skip)")
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(exitcode.UsageError)
	}
}
