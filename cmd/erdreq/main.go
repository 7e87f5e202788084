package main

import (
	"context"
	"fmt"
	"io"
	"log"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/driftline/erdreq/internal/api"
	"github.com/driftline/erdreq/internal/config"
	"github.com/driftline/erdreq/internal/tui"
)

var (
	// CLI flags
	configFlag  string
	baseURLFlag string
	sourceFlag  string
	debugFlag   bool
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "erdreq",
		Short: "Terminal UI for requesting entity-relationship diagrams",
		Long: `erdreq is a terminal client for the Driftline diagram service.

Pick a data source from your catalog and request an ERD by email.

Configuration:
  1. Environment: set ERD_API_URL and ERD_API_KEY (a .env file is honored)
  2. Config file: ~/.config/erdreq/config.toml holds the source catalog
     and may also set base_url and api_key`,
		RunE: run,
	}

	// Define CLI flags
	rootCmd.Flags().StringVar(&configFlag, "config", "", "Path to the config file. Defaults to ~/.config/erdreq/config.toml.")
	rootCmd.Flags().StringVar(&baseURLFlag, "base-url", "", "Diagram service base URL. Overrides config and environment.")
	rootCmd.Flags().StringVar(&sourceFlag, "source", "", "Source name to request an ERD for. Skips the source picker.")
	rootCmd.Flags().BoolVar(&debugFlag, "debug", false, "Write debug logs to erdreq.log.")

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run(cmd *cobra.Command, args []string) error {
	if debugFlag {
		f, err := tea.LogToFile("erdreq.log", "debug")
		if err != nil {
			return fmt.Errorf("open debug log: %w", err)
		}
		defer f.Close()
	} else {
		// Keep stray log output from corrupting the screen.
		log.SetOutput(io.Discard)
	}

	cfg, err := config.Load(configFlag)
	if err != nil {
		return err
	}
	if baseURLFlag != "" {
		cfg.BaseURL = baseURLFlag
	}
	if err := cfg.Validate(); err != nil {
		return err
	}
	if len(cfg.Sources) == 0 {
		return fmt.Errorf("no sources configured: add [[sources]] entries to %s", config.DefaultPath())
	}

	client := api.NewClient(cfg.BaseURL, cfg.APIKey)

	ctx := context.Background()

	app := tui.NewAppModel(ctx, client, cfg.Sources, sourceFlag)

	p := tea.NewProgram(app, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("program error: %w", err)
	}

	return nil
}
