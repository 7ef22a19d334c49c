package main

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/twilightdev/kitmap/internal/config"
	"github.com/twilightdev/kitmap/internal/storage"
)

var resetForce bool

var resetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Delete all recorded data",
	RunE:  runReset,
}

func init() {
	rootCmd.AddCommand(resetCmd)
	resetCmd.Flags().BoolVar(&resetForce, "force", false, "skip the confirmation prompt")
}

func runReset(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	store, err := storage.Open(cfg.DatabasePath)
	if err != nil {
		return fmt.Errorf("opening database: %w", err)
	}
	defer store.Close()

	if !resetForce {
		total, err := store.TotalKeyEvents()
		if err != nil {
			return fmt.Errorf("counting key events: %w", err)
		}

		fmt.Printf("This will delete all recorded data (%d key events). Continue? [y/N] ", total)
		line, _ := bufio.NewReader(os.Stdin).ReadString('\n')
		answer := strings.ToLower(strings.TrimSpace(line))
		if answer != "y" && answer != "yes" {
			fmt.Println("Aborted.")
			return nil
		}
	}

	if err := store.ClearAll(); err != nil {
		return fmt.Errorf("clearing data: %w", err)
	}
	fmt.Println("All recorded data deleted.")
	return nil
}
