package main

import (
	"fmt"
	"os"
	"os/signal"
	"sort"
	"strconv"
	"strings"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/twilightdev/kitmap/internal/config"
	"github.com/twilightdev/kitmap/internal/listener"
	"github.com/twilightdev/kitmap/internal/logger"
	"github.com/twilightdev/kitmap/internal/storage"
)

var listenCmd = &cobra.Command{
	Use:   "listen",
	Short: "Record keyboard events until interrupted",
	Long: `Capture system-wide keyboard events into the local database.

Each run opens a recording session and stores per-key events,
modifier+key combinations, and periodic typing-speed samples.
Stop with Ctrl+C.

Requires accessibility permissions on macOS.`,
	RunE: runListen,
}

func init() {
	rootCmd.AddCommand(listenCmd)
}

func runListen(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	if !listener.CheckAccessibilityPermissions() {
		fmt.Println("Accessibility permissions are required to capture keyboard events.")
		fmt.Println("Open System Settings > Privacy & Security > Accessibility and add kitmap,")
		fmt.Println("then run this command again.")
		return fmt.Errorf("accessibility permissions not granted")
	}

	store, err := storage.Open(cfg.DatabasePath)
	if err != nil {
		return fmt.Errorf("opening database: %w", err)
	}
	defer store.Close()

	events, err := listener.Start()
	if err != nil {
		return fmt.Errorf("starting capture: %w", err)
	}
	defer listener.Stop()

	sessionID, err := store.StartSession(time.Now())
	if err != nil {
		return fmt.Errorf("starting session: %w", err)
	}

	logger.Infof("Recording to %s", cfg.DatabasePath)
	fmt.Println("Listening for keyboard events. Press Ctrl+C to stop.")

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	ticker := time.NewTicker(cfg.SampleInterval)
	defer ticker.Stop()

	held := make(map[string]bool)
	var totalKeys, sampleKeys int64

	for {
		select {
		case ev := <-events:
			now := time.Now()
			if err := store.RecordKeyEvent(strconv.Itoa(ev.Code), ev.Name, ev.Modifier, now); err != nil {
				logger.Errorf("Failed to record key event: %v", err)
				continue
			}
			totalKeys++

			if ev.Modifier {
				held[ev.Name] = true
				continue
			}
			sampleKeys++
			if len(held) > 0 {
				if err := store.RecordCombo(comboName(held, ev.Name), now); err != nil {
					logger.Errorf("Failed to record combo: %v", err)
				}
				// Modifiers are released before the next plain key
				// arrives, so the held set resets here.
				held = make(map[string]bool)
			}

		case <-ticker.C:
			if sampleKeys > 0 {
				cpm := float64(sampleKeys) / cfg.SampleInterval.Minutes()
				if err := store.RecordTypingSample(cpm, time.Now()); err != nil {
					logger.Errorf("Failed to record typing sample: %v", err)
				}
			}
			sampleKeys = 0

		case <-sigCh:
			fmt.Println("\nStopping.")
			if err := store.EndSession(sessionID, totalKeys, time.Now()); err != nil {
				logger.Errorf("Failed to close session: %v", err)
			}
			logger.Infof("Recorded %d key events this session", totalKeys)
			return nil
		}
	}
}

// comboName renders held modifiers plus the pressed key as a stable
// "+"-joined name, e.g. "MetaLeft+ShiftLeft+KeyS".
func comboName(held map[string]bool, key string) string {
	mods := make([]string, 0, len(held))
	for name := range held {
		mods = append(mods, name)
	}
	sort.Strings(mods)
	return strings.Join(append(mods, key), "+")
}
