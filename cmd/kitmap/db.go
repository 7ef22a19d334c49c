package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/twilightdev/kitmap/internal/config"
)

var dbCmd = &cobra.Command{
	Use:   "db",
	Short: "Print the database path",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load()
		if err != nil {
			return err
		}
		fmt.Println(cfg.DatabasePath)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(dbCmd)
}
