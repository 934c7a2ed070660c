package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"promoreel/pkg/config"
)

var clearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Remove generated packages",
	Long:  `Delete every package zip and caption file from the output directory.`,
	RunE:  runClear,
}

func init() {
	rootCmd.AddCommand(clearCmd)
}

func runClear(cmd *cobra.Command, args []string) error {
	cfg := config.Load()

	count := 0
	for _, pattern := range []string{"package_*.zip", "captions_*.vtt"} {
		matches, err := filepath.Glob(filepath.Join(cfg.Video.OutputDir, pattern))
		if err != nil {
			return err
		}
		for _, match := range matches {
			if err := os.Remove(match); err != nil {
				return fmt.Errorf("remove %s: %w", match, err)
			}
			count++
		}
	}

	fmt.Printf("Removed %d artifact(s)\n", count)
	return nil
}
