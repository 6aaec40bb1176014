// openscreener is a securities screening CLI and server over the Yahoo
// Finance backend.
//
// Main CLI entrypoint using cobra command framework.
package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/seenimoa/openscreener/api"
	"github.com/seenimoa/openscreener/internal/config"
	"github.com/seenimoa/openscreener/internal/provider"
	"github.com/seenimoa/openscreener/internal/providers"
	"github.com/seenimoa/openscreener/internal/providers/yfscreen"
)

// Build-time variables (set via -ldflags).
var (
	version = "dev"
	commit  = "unknown"
	date    = "unknown"
)

// Global config
var cfg *config.Config

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "openscreener",
	Short: "Preset and custom screens over US-listed securities",
	Long: `openscreener
A securities screening tool covering equities, ETFs, mutual funds,
indices, and futures. Run one of the built-in preset screens or
compose a custom filter query, and get back normalized records.`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		var err error
		configFile, _ := cmd.Flags().GetString("config")
		if configFile != "" {
			cfg, err = config.LoadFromFile(configFile)
		} else {
			cfg, err = config.Load()
		}
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}
		if lvl, _ := cmd.Flags().GetString("log-level"); lvl != "" {
			cfg.Logging.Level = lvl
		}
		return nil
	},
}

func init() {
	rootCmd.PersistentFlags().String("config", "", "config file path (default: ./config/config.yaml)")
	rootCmd.PersistentFlags().String("log-level", "", "log level override (debug, info, warn, error)")

	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(screenCmd)
	rootCmd.AddCommand(presetsCmd)
	rootCmd.AddCommand(filtersCmd)
	rootCmd.AddCommand(docsCmd)
	rootCmd.AddCommand(serveCmd)
}

// newLogger builds the process logger from the loaded config.
func newLogger() zerolog.Logger {
	level, err := zerolog.ParseLevel(strings.ToLower(cfg.Logging.Level))
	if err != nil {
		level = zerolog.InfoLevel
	}

	var log zerolog.Logger
	if cfg.Logging.Format == "json" {
		log = zerolog.New(os.Stderr)
	} else {
		log = zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339})
	}
	return log.Level(level).With().Timestamp().Logger()
}

// newRegistry registers all providers, wired from the loaded config, and
// returns the registry the commands fetch through.
func newRegistry(log zerolog.Logger) (*provider.Registry, error) {
	reg := provider.NewRegistry()
	err := providers.RegisterAllTo(reg,
		yfscreen.WithPoolSize(cfg.Screener.Workers),
		yfscreen.WithRateLimit(cfg.Screener.RateLimit),
		yfscreen.WithFilterCacheTTL(time.Duration(cfg.Screener.FilterCacheTTL)*time.Second),
		yfscreen.WithLogger(log),
	)
	if err != nil {
		return nil, fmt.Errorf("register providers: %w", err)
	}
	return reg, nil
}

func printJSON(v interface{}) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}
	fmt.Println(string(data))
	return nil
}

// --- Version Command ---

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("openscreener %s\n", version)
		fmt.Printf("  commit:  %s\n", commit)
		fmt.Printf("  built:   %s\n", date)
	},
}

// --- Screen Command ---

var screenCmd = &cobra.Command{
	Use:   "screen",
	Short: "Run a securities screen",
	Long: `Run a preset or custom securities screen.

Examples:
  openscreener screen --preset top_gainers
  openscreener screen --preset large_mutual_funds --limit 10
  openscreener screen --type etf --offset 50
  openscreener screen --filters '[{"op":"gt","field":"intradaymarketcap","values":[1000000000]}]'`,
	RunE: func(cmd *cobra.Command, args []string) error {
		secType, _ := cmd.Flags().GetString("type")
		preset, _ := cmd.Flags().GetString("preset")
		filtersJSON, _ := cmd.Flags().GetString("filters")
		limit, _ := cmd.Flags().GetInt("limit")
		offset, _ := cmd.Flags().GetInt("offset")

		reg, err := newRegistry(newLogger())
		if err != nil {
			return err
		}

		params := provider.QueryParams{
			provider.ParamSecurityType: secType,
			provider.ParamPreset:       preset,
			provider.ParamLimit:        strconv.Itoa(limit),
			provider.ParamOffset:       strconv.Itoa(offset),
		}
		if filtersJSON != "" {
			params[provider.ParamFilters] = filtersJSON
		}

		ctx, cancel := context.WithTimeout(cmd.Context(), 60*time.Second)
		defer cancel()

		res, err := reg.Fetch(ctx, provider.ModelSecurityScreen, params)
		if err != nil {
			return err
		}
		return printJSON(res.Data)
	},
}

func init() {
	screenCmd.Flags().String("type", "equity", "security type (equity, etf, mutualfund, index, future)")
	screenCmd.Flags().String("preset", "", "preset screen name (see 'openscreener presets')")
	screenCmd.Flags().String("filters", "", "custom filter clauses as a JSON array")
	screenCmd.Flags().Int("limit", yfscreen.DefaultLimit, "maximum results to return (capped at 250)")
	screenCmd.Flags().Int("offset", 0, "pagination offset into the result set")
}

// --- Presets Command ---

var presetsCmd = &cobra.Command{
	Use:   "presets",
	Short: "List the built-in preset screens",
	RunE: func(cmd *cobra.Command, args []string) error {
		presets := yfscreen.ListPresets()
		for _, p := range presets {
			fmt.Printf("  %-32s [%s] %s\n", p.Name, p.SecurityType, p.Description)
		}
		fmt.Printf("\n%d presets\n", len(presets))
		return nil
	},
}

// --- Filters Command ---

var filtersCmd = &cobra.Command{
	Use:   "filters",
	Short: "Show the available filter catalog",
	RunE: func(cmd *cobra.Command, args []string) error {
		reg, err := newRegistry(newLogger())
		if err != nil {
			return err
		}

		ctx, cancel := context.WithTimeout(cmd.Context(), 30*time.Second)
		defer cancel()

		res, err := reg.Fetch(ctx, provider.ModelFilterCatalog, nil)
		if err != nil {
			return err
		}
		return printJSON(res.Data)
	},
}

// --- Docs Command ---

var docsCmd = &cobra.Command{
	Use:   "docs",
	Short: "Show filter documentation with worked examples",
	RunE: func(cmd *cobra.Command, args []string) error {
		return printJSON(yfscreen.FilterDocumentation())
	},
}

// --- Serve Command (API Server) ---

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the HTTP API server",
	RunE: func(cmd *cobra.Command, args []string) error {
		log := newLogger()
		srv := api.NewServer(cfg, log)
		addr := fmt.Sprintf("%s:%d", cfg.API.Host, cfg.API.Port)
		return srv.ListenAndServe(addr)
	},
}
