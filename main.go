package main

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"cardlot/config"
	"cardlot/inspect"
	"cardlot/layout"
	"cardlot/log"
	"cardlot/resize"
	"cardlot/ui"
)

var (
	version = "0.3.1"

	verboseFlag bool
	cardsFlag   int
	widthFlag   float64
	heightFlag  float64

	rootCmd = &cobra.Command{
		Use:   "cardlot",
		Short: "Cardlot - adaptive card layout engine with a terminal visualizer.",
		RunE: func(cmd *cobra.Command, args []string) error {
			log.Initialize(os.Stderr, verboseFlag)
			if path := log.InitDebugFile(); path != "" {
				defer log.Close()
			}

			cfg := config.LoadConfig()
			if cardsFlag > 0 {
				cfg.DemoCardCount = cardsFlag
			}
			return ui.Run(cfg)
		},
	}

	inspectCmd = &cobra.Command{
		Use:   "inspect",
		Short: "Compute one layout and print the debug snapshot as JSON",
		RunE: func(cmd *cobra.Command, args []string) error {
			log.Initialize(os.Stderr, verboseFlag)

			cfg := config.LoadConfig()
			cards := cfg.DemoCardCount
			if cardsFlag > 0 {
				cards = cardsFlag
			}

			engine := layout.NewEngine()
			source := resize.StaticSource{W: widthFlag, H: heightFlag}
			coord := resize.NewCoordinator(engine, source, cards,
				resize.WithHistorySize(cfg.HistorySize),
				resize.WithMetricsWindow(cfg.MetricsWindow),
			)
			defer coord.Close()
			coord.Flush()

			snap := inspect.Capture(coord)
			if err := snap.WriteJSON(os.Stdout); err != nil {
				return fmt.Errorf("failed to write snapshot: %w", err)
			}
			fmt.Println()
			return nil
		},
	}

	debugCmd = &cobra.Command{
		Use:   "debug",
		Short: "Print debug information like config paths",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := config.LoadConfig()

			configDir, err := config.GetConfigDir()
			if err != nil {
				return fmt.Errorf("failed to get config directory: %w", err)
			}
			configJson, _ := json.MarshalIndent(cfg, "", "  ")

			fmt.Printf("Config: %s\n%s\n", filepath.Join(configDir, config.ConfigFileName), configJson)
			return nil
		},
	}

	versionCmd = &cobra.Command{
		Use:   "version",
		Short: "Print the version number of cardlot",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Printf("cardlot version %s\n", version)
		},
	}
)

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verboseFlag, "verbose", "v", false,
		"Enable debug-level logging")
	rootCmd.Flags().IntVarP(&cardsFlag, "cards", "c", 0,
		"Card count for the visualizer (defaults to config)")

	inspectCmd.Flags().IntVarP(&cardsFlag, "cards", "c", 0,
		"Card count (defaults to config)")
	inspectCmd.Flags().Float64VarP(&widthFlag, "width", "W", 1366,
		"Container width in pixels")
	inspectCmd.Flags().Float64VarP(&heightFlag, "height", "H", 768,
		"Container height in pixels")

	rootCmd.AddCommand(inspectCmd)
	rootCmd.AddCommand(debugCmd)
	rootCmd.AddCommand(versionCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}
