package cmd

import (
	"log/slog"

	"github.com/spf13/cobra"

	"promoreel/internal/app"
	"promoreel/pkg/config"
)

var (
	genNiche      string
	genTone       string
	genURL        string
	genBackground string
	genMusic      string
)

var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Generate a single promo package",
	Long:  `Generate one content package from a niche, tone, and landing URL.`,
	RunE:  runGenerate,
}

func init() {
	generateCmd.Flags().StringVarP(&genNiche, "niche", "n", "", "Niche the promo targets")
	generateCmd.Flags().StringVarP(&genTone, "tone", "t", "energetic", "Script tone (energetic, professional, casual, dramatic, friendly)")
	generateCmd.Flags().StringVarP(&genURL, "url", "u", "", "Landing page URL")
	generateCmd.Flags().StringVarP(&genBackground, "background", "b", "abstract", "Background style (abstract, nature, tech, plain)")
	generateCmd.Flags().StringVarP(&genMusic, "music", "m", "", "Optional background music file")
	rootCmd.AddCommand(generateCmd)
}

func runGenerate(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	cfg := config.Load()

	service, err := app.BuildService(ctx, cfg)
	if err != nil {
		return err
	}

	req, err := app.NewRequest(genNiche, genTone, genURL, genBackground)
	if err != nil {
		return err
	}
	req.MusicPath = genMusic

	slog.Info("Generating promo package...", "niche", req.Niche, "tone", req.Tone)

	result, err := service.Generate(ctx, req)
	if err != nil {
		return err
	}

	slog.Info("Package ready",
		"id", result.ID,
		"package", result.PackagePath,
		"captions", result.CaptionsPath,
		"duration", result.Duration,
	)

	return nil
}
