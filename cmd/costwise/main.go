package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/costwise/costwise/internal/common"
	"github.com/costwise/costwise/internal/locale"
	"github.com/costwise/costwise/internal/model"
	"github.com/costwise/costwise/internal/session"
	"github.com/costwise/costwise/internal/tui"
)

var (
	cfgFile string
	version = "dev"
	rootCmd = &cobra.Command{
		Use:   "costwise",
		Short: "🏗️  Construction cost estimator",
		Long: `costwise: an interactive construction estimating tool. Build up
materials, labor, equipment, a schedule and a cost forecast for one
project, and export the estimate as HTML, CSV or an XLSX workbook.

Everything lives in memory for the length of the run.`,
		PersistentPreRunE: initConfig,
		RunE: func(_ *cobra.Command, _ []string) error {
			return runEstimator()
		},
	}
)

func init() {
	// Global flags
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default: $HOME/.config/costwise/config.yaml)")
	rootCmd.PersistentFlags().String("log-level", "info", "log level (debug, info, warn, error)")
	rootCmd.PersistentFlags().String("log-format", "console", "log format (console, json)")
	rootCmd.PersistentFlags().String("units", "", "starting unit system (imperial, metric)")
	rootCmd.PersistentFlags().String("currency", "", "display currency code (USD, EUR, ...)")
	rootCmd.PersistentFlags().String("language", "", "display language (en, es, it, fr, de, zh)")
	rootCmd.PersistentFlags().String("export-dir", "", "directory exports are written to (default: current directory)")

	// Bind flags to viper
	_ = viper.BindPFlag("logging.level", rootCmd.PersistentFlags().Lookup("log-level"))
	_ = viper.BindPFlag("logging.format", rootCmd.PersistentFlags().Lookup("log-format"))
	_ = viper.BindPFlag("project.units", rootCmd.PersistentFlags().Lookup("units"))
	_ = viper.BindPFlag("project.currency", rootCmd.PersistentFlags().Lookup("currency"))
	_ = viper.BindPFlag("project.language", rootCmd.PersistentFlags().Lookup("language"))
	_ = viper.BindPFlag("export.directory", rootCmd.PersistentFlags().Lookup("export-dir"))

	rootCmd.AddCommand(versionCmd())
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func initConfig(_ *cobra.Command, _ []string) error {
	// Set up config file
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		home, err := os.UserHomeDir()
		if err != nil {
			return fmt.Errorf("failed to get home directory: %w", err)
		}

		// Search for config in standard locations
		viper.AddConfigPath(fmt.Sprintf("%s/.config/costwise", home))
		viper.AddConfigPath(".")
		viper.SetConfigName("config")
		viper.SetConfigType("yaml")
	}

	// Environment variables
	viper.SetEnvPrefix("COSTWISE")
	viper.AutomaticEnv()

	// Read config file
	if err := viper.ReadInConfig(); err != nil {
		if cfgFile != "" {
			// An explicitly named config file must exist and parse.
			return common.NewUserError(
				fmt.Sprintf("cannot read config file %s", cfgFile),
				common.ErrMissingConfig)
		}
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return fmt.Errorf("failed to read config: %w", err)
		}
		// Config file not found is OK, we'll use defaults
	}

	// Set up logging
	if err := setupLogging(); err != nil {
		return fmt.Errorf("failed to setup logging: %w", err)
	}

	return nil
}

func setupLogging() error {
	var level slog.Level
	switch viper.GetString("logging.level") {
	case "debug":
		level = slog.LevelDebug
	case "info", "":
		level = slog.LevelInfo
	case "warn":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	default:
		return fmt.Errorf("invalid log level: %s", viper.GetString("logging.level"))
	}

	format := viper.GetString("logging.format")
	switch format {
	case "console", "json", "":
	default:
		return fmt.Errorf("invalid log format: %s", format)
	}

	return common.SetupLogger(level, format)
}

// sessionConfig builds the session defaults from configuration. Anything
// unset falls back to imperial / USD / English.
func sessionConfig() (session.Config, error) {
	cfg := session.DefaultConfig()

	switch u := viper.GetString("project.units"); u {
	case "":
	case string(model.UnitImperial):
		cfg.Units = model.UnitImperial
	case string(model.UnitMetric):
		cfg.Units = model.UnitMetric
	default:
		return cfg, common.NewUserError(
			fmt.Sprintf("unknown unit system %q (use imperial or metric)", u),
			common.ErrInvalidConfig)
	}

	if code := viper.GetString("project.currency"); code != "" {
		cfg.Currency = locale.CurrencyByCode(code)
	}
	if lang := viper.GetString("project.language"); lang != "" {
		cfg.Language = locale.Language(lang)
	}

	return cfg, nil
}

func runEstimator() error {
	cfg, err := sessionConfig()
	if err != nil {
		return err
	}

	exportDir := viper.GetString("export.directory")
	if exportDir == "" {
		exportDir = "."
	}
	if err := os.MkdirAll(exportDir, 0o755); err != nil {
		return fmt.Errorf("failed to create export directory: %w", err)
	}

	common.LogDebug("starting session", common.Fields{
		"units": cfg.Units, "currency": cfg.Currency.Code, "language": cfg.Language,
	})

	return tui.Run(tui.Config{
		Session:   session.New(cfg),
		ExportDir: exportDir,
	})
}

func versionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(_ *cobra.Command, _ []string) {
			common.LogInfo("costwise version", common.Fields{"version": version})
		},
	}
}
