package commands

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/mastowrap/mastowrap/internal/analyzer"
	"github.com/mastowrap/mastowrap/internal/config"
	"github.com/mastowrap/mastowrap/internal/util"
)

var (
	// Logging related
	debug bool

	// Target selection
	year    int
	server  string
	account string
	token   string

	// Output related
	outputFormat string
	outputDir    string
	timezone     string

	// Pipeline control
	skipAI      bool
	fetchOnly   bool
	computeOnly bool
	configPath  string

	rootCmd = &cobra.Command{
		Use:   "mastowrap [flags]",
		Short: "Mastodon year-in-review generator",
		Long: `mastowrap pulls an account's statuses from a Mastodon instance and
turns a year of activity into a review: posting stats, streaks, a
persona, an activity heatmap, top hashtags and posts, and an optional
AI-written narrative.

Examples:
  mastowrap --server https://mastodon.social --token $TOKEN            # Review your own account
  mastowrap --server https://hachyderm.io --account user@hachyderm.io  # Review a public account
  mastowrap --year 2024 --output html                                  # Write an HTML report for 2024
  mastowrap --fetch-only                                               # Download and snapshot, no analysis
  mastowrap --compute-only --output json                               # Re-analyze a saved snapshot offline`,
		RunE: runWrap,
	}
)

const (
	defaultLogFile     = "~/.mastowrap/logs/app.log"
	defaultSnapshotDir = "~/.mastowrap/snapshots"
	defaultConfigFile  = "~/.mastowrap/config.yaml"
)

func init() {
	// Target selection
	rootCmd.Flags().IntVarP(&year, "year", "y", time.Now().UTC().Year(),
		"Year to review")
	rootCmd.Flags().StringVarP(&server, "server", "s", "https://mastodon.social",
		"Mastodon instance base URL")
	rootCmd.Flags().StringVarP(&account, "account", "a", "",
		"Account handle to review (e.g., user@example.org); defaults to the token's account")
	rootCmd.Flags().StringVar(&token, "token", "",
		"Access token (or set MASTOWRAP_TOKEN)")

	// Output configuration
	rootCmd.Flags().StringVarP(&outputFormat, "output", "o", "summary",
		"Output format (summary, json, html)")
	rootCmd.Flags().StringVar(&outputDir, "output-dir", ".",
		"Directory for HTML reports")
	rootCmd.Flags().StringVar(&timezone, "timezone", "UTC",
		"Timezone for hour and day bucketing (e.g., Asia/Shanghai, UTC)")

	// Pipeline control
	rootCmd.Flags().BoolVar(&skipAI, "skip-ai", false,
		"Skip the AI narrative even when an API key is configured")
	rootCmd.Flags().BoolVar(&fetchOnly, "fetch-only", false,
		"Fetch and snapshot posts without analyzing")
	rootCmd.Flags().BoolVar(&computeOnly, "compute-only", false,
		"Analyze a previously saved snapshot without network access")

	// System and debugging
	rootCmd.Flags().StringVar(&configPath, "config", defaultConfigFile,
		"Config file path")
	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false,
		"Enable debug mode")
}

func runWrap(cmd *cobra.Command, args []string) error {
	// Determine log level based on debug flag
	logLevel := "info"
	if debug {
		logLevel = "debug"
	}

	// Initialize logging
	logFile := expandPath(defaultLogFile)
	if err := ensureDir(filepath.Dir(logFile)); err != nil {
		return fmt.Errorf("failed to create log directory: %w", err)
	}
	util.InitLogger(logLevel, logFile, debug)
	if err := util.InitializeTimeProvider(timezone); err != nil {
		return fmt.Errorf("invalid timezone %s: %w", timezone, err)
	}

	if fetchOnly && computeOnly {
		return fmt.Errorf("--fetch-only and --compute-only are mutually exclusive")
	}

	cfg, err := config.Load(expandPath(configPath))
	if err != nil {
		return err
	}
	cfg.ApplyEnv()

	// Flags win over config file values
	if token == "" {
		token = cfg.AccessToken
	}
	if !cmd.Flags().Changed("server") && cfg.Server != "" {
		server = cfg.Server
	}

	snapshotDir := expandPath(defaultSnapshotDir)
	if err := ensureDir(snapshotDir); err != nil {
		return fmt.Errorf("failed to create snapshot directory: %w", err)
	}

	a := analyzer.New(&analyzer.Config{
		Year:         year,
		Server:       server,
		Account:      account,
		Token:        token,
		Timezone:     timezone,
		OutputFormat: outputFormat,
		OutputDir:    expandPath(outputDir),
		SnapshotDir:  snapshotDir,
		SkipAI:       skipAI,
		FetchOnly:    fetchOnly,
		ComputeOnly:  computeOnly,
		AIKey:        cfg.AI.APIKey,
		AIModel:      cfg.AI.Model,
		AIBaseURL:    cfg.AI.BaseURL,
	})
	return a.Run(cmd.Context())
}

func Execute() error {
	return rootCmd.Execute()
}

// Helper functions

func expandPath(path string) string {
	if strings.HasPrefix(path, "~/") {
		home, _ := os.UserHomeDir()
		path = filepath.Join(home, path[2:])
	}
	absPath, err := filepath.Abs(path)
	if err != nil {
		return path
	}
	return absPath
}

func ensureDir(dir string) error {
	return os.MkdirAll(dir, 0755)
}
