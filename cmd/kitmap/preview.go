package main

import (
	"context"
	"fmt"
	"os/signal"
	"syscall"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/twilightdev/kitmap/internal/config"
	"github.com/twilightdev/kitmap/internal/server"
	"github.com/twilightdev/kitmap/internal/stats"
	"github.com/twilightdev/kitmap/internal/storage"
	"github.com/twilightdev/kitmap/internal/tui"
)

var (
	previewWeb  bool
	previewPort int
)

var previewCmd = &cobra.Command{
	Use:   "preview",
	Short: "Show recorded usage statistics",
	Long: `Render recorded keyboard usage as a heatmap with statistics.

By default this opens an interactive terminal UI. With --web it serves
an embedded browser dashboard instead, along with a JSON API at
/api/stats and /api/heatmap.`,
	RunE: runPreview,
}

func init() {
	rootCmd.AddCommand(previewCmd)
	previewCmd.Flags().BoolVar(&previewWeb, "web", false, "serve the browser dashboard instead of the terminal UI")
	previewCmd.Flags().IntVar(&previewPort, "port", 0, "dashboard port (default from config, 3456)")
}

func runPreview(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	store, err := storage.Open(cfg.DatabasePath)
	if err != nil {
		return fmt.Errorf("opening database: %w", err)
	}
	defer store.Close()

	if previewWeb {
		snapshot, err := stats.New(store).CalculateAll()
		if err != nil {
			return fmt.Errorf("computing statistics: %w", err)
		}

		port := cfg.ServerPort
		if previewPort != 0 {
			port = previewPort
		}

		ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
		defer stop()

		fmt.Printf("Serving dashboard at http://127.0.0.1:%d (Ctrl+C to stop)\n", port)
		return server.New(snapshot).Run(ctx, port)
	}

	p := tea.NewProgram(tui.New(store), tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("running terminal UI: %w", err)
	}
	return nil
}
