// Command notam_parser parses NOTAM briefings from files, stdin, HTTP or
// NATS and stores the results.
//
// Usage:
//
//	notam_parser parse [files...]     parse briefings (stdin when no file)
//	notam_parser explain [file]       show how each block was validated
//	notam_parser serve                run the HTTP API
//	notam_parser ingest               run the NATS ingest worker
//	notam_parser search QUERY         search stored NOTAM text
//	notam_parser cleanup              delete briefings past retention
//	notam_parser migrate              create database schemas
//
// Settings come from --config (YAML), .env and NOTAM_* environment variables.
package main

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"notam_parser/internal/config"
)

var cfg *config.Config

var rootCmd = &cobra.Command{
	Use:           "notam_parser",
	Short:         "NOTAM briefing parser",
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		c, err := config.Load(viper.GetString("config"))
		if err != nil {
			return err
		}
		cfg = c
		return nil
	},
}

func main() {
	cobra.OnInitialize(initConfig)
	addPersistentFlags()
	registerCommands()
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}

func initConfig() {
	viper.SetEnvPrefix("NOTAM")
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	viper.AutomaticEnv()
}

func addPersistentFlags() {
	rootCmd.PersistentFlags().String("config", "", "YAML config file")
	rootCmd.PersistentFlags().Bool("json", false, "output JSON")
	rootCmd.PersistentFlags().String("now", "", "reference time, RFC3339 (default: current time)")
	_ = viper.BindPFlag("config", rootCmd.PersistentFlags().Lookup("config"))
	_ = viper.BindPFlag("json", rootCmd.PersistentFlags().Lookup("json"))
	_ = viper.BindPFlag("now", rootCmd.PersistentFlags().Lookup("now"))
}

func registerCommands() {
	rootCmd.AddCommand(parseCmd())
	rootCmd.AddCommand(explainCmd())
	rootCmd.AddCommand(serveCmd())
	rootCmd.AddCommand(ingestCmd())
	rootCmd.AddCommand(searchCmd())
	rootCmd.AddCommand(cleanupCmd())
	rootCmd.AddCommand(migrateCmd())
}

// referenceTime returns --now, or the wall clock.
func referenceTime() (time.Time, error) {
	raw := strings.TrimSpace(viper.GetString("now"))
	if raw == "" {
		return time.Now().UTC(), nil
	}
	t, err := time.Parse(time.RFC3339, raw)
	if err != nil {
		return time.Time{}, fmt.Errorf("--now must be RFC3339: %w", err)
	}
	return t.UTC(), nil
}
