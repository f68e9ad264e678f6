package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jwhitfield/streetcal/internal/logger"
	"github.com/jwhitfield/streetcal/internal/scraper"
	"github.com/jwhitfield/streetcal/internal/server"
	"github.com/jwhitfield/streetcal/internal/timetable"
)

const (
	ExitSuccess = 0
	ExitError   = 1
)

var (
	flagAddr           string
	flagSuspensionsURL string
	flagTimetableURL   string
	flagVerbose        bool
)

// NewRootCmd creates the root command
func NewRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "streetcal",
		Short: "Serve parking suspensions and school timetables as calendar feeds",
		Long: `streetcal converts upstream web pages into iCalendar feeds.
/calendar.ics scrapes the parking suspensions table for the requested streets;
/tomcal.ics logs in to the timetable provider and extracts lesson events.`,
		RunE: runServe,
	}

	cmd.Flags().StringVar(&flagAddr, "addr", ":8080", "Listen address")
	cmd.Flags().StringVar(&flagSuspensionsURL, "suspensions-url", "", "Upstream suspensions page URL (required)")
	cmd.Flags().StringVar(&flagTimetableURL, "timetable-url", "", "Upstream timetable provider base URL (required)")
	cmd.Flags().BoolVar(&flagVerbose, "verbose", false, "Enable debug logging")

	cmd.MarkFlagRequired("suspensions-url")
	cmd.MarkFlagRequired("timetable-url")

	return cmd
}

// runServe builds the application and blocks serving HTTP.
func runServe(cmd *cobra.Command, args []string) error {
	level := logger.LevelInfo
	if flagVerbose {
		level = logger.LevelDebug
	}
	log := logger.New(level, os.Stdout)
	logger.SetDefault(log)

	cfg := server.Config{
		Addr:           flagAddr,
		SuspensionsURL: flagSuspensionsURL,
		TimetableURL:   flagTimetableURL,
	}

	app := server.New(
		cfg,
		scraper.New(cfg.SuspensionsURL),
		timetable.NewClient(cfg.TimetableURL),
		log,
	)

	log.Info("starting server", logger.Fields{
		"addr":            cfg.Addr,
		"suspensions_url": cfg.SuspensionsURL,
		"timetable_url":   cfg.TimetableURL,
	})

	if err := app.Server().ListenAndServe(); err != nil {
		return fmt.Errorf("serving: %w", err)
	}
	return nil
}

// Execute runs the CLI
func Execute() {
	if err := NewRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(ExitError)
	}
}
