package cmd

import (
	"errors"
	"fmt"
	"time"

	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/huh/spinner"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"promoreel/internal/app"
	"promoreel/internal/auth"
	"promoreel/internal/script"
	"promoreel/pkg/config"
)

var (
	titleStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("212")).MarginBottom(1)
	successStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("42"))
	warnStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("214"))
)

var interactiveCmd = &cobra.Command{
	Use:   "interactive",
	Short: "Generate a package through an interactive form",
	Long:  `Prompt for the niche, tone, URL, and background, then generate the package.`,
	RunE:  runInteractive,
}

func init() {
	rootCmd.AddCommand(interactiveCmd)
}

func runInteractive(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	cfg := config.Load()

	fmt.Println(titleStyle.Render("🎬 Promoreel"))

	gate := auth.NewGate(auth.GateOptions{
		Password:    cfg.AppPassword,
		MaxAttempts: cfg.Auth.MaxAttempts,
		Lockout:     time.Duration(cfg.Auth.LockoutSeconds) * time.Second,
	})
	if err := promptPassword(gate); err != nil {
		return err
	}

	niche, tone, url, background, err := promptRequest()
	if err != nil {
		return err
	}

	service, err := app.BuildService(ctx, cfg)
	if err != nil {
		return err
	}

	req, err := app.NewRequest(niche, tone, url, background)
	if err != nil {
		return err
	}

	var result *app.Result
	var genErr error
	_ = spinner.New().
		Title("Generating promo package").
		Action(func() { result, genErr = service.Generate(ctx, req) }).
		Run()
	if genErr != nil {
		return genErr
	}

	fmt.Println(successStyle.Render("✓ Package ready"))
	fmt.Printf("  Package:  %s\n", result.PackagePath)
	fmt.Printf("  Captions: %s\n", result.CaptionsPath)
	fmt.Printf("  Duration: %.1fs\n", result.Duration)
	return nil
}

func promptPassword(gate *auth.Gate) error {
	if !gate.Enabled() {
		return nil
	}

	for {
		var password string
		if err := huh.NewInput().
			Title("Password").
			EchoMode(huh.EchoModePassword).
			Value(&password).
			Run(); err != nil {
			return err
		}

		err := gate.Check(password)
		switch {
		case err == nil:
			return nil
		case errors.Is(err, auth.ErrLocked):
			return err
		default:
			fmt.Println(warnStyle.Render("Wrong password, try again"))
		}
	}
}

func promptRequest() (niche, tone, url, background string, err error) {
	toneOptions := make([]huh.Option[string], 0, len(script.Tones))
	for _, t := range script.Tones {
		toneOptions = append(toneOptions, huh.NewOption(string(t), string(t)))
	}

	backgroundOptions := make([]huh.Option[string], 0, len(app.Backgrounds))
	for _, b := range app.Backgrounds {
		backgroundOptions = append(backgroundOptions, huh.NewOption(string(b), string(b)))
	}

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Niche").
				Placeholder("Fitness Coaching").
				Value(&niche).
				Validate(required("Niche")),
			huh.NewInput().
				Title("Landing URL").
				Placeholder("https://example.com/offer").
				Value(&url).
				Validate(required("Landing URL")),
			huh.NewSelect[string]().
				Title("Tone").
				Options(toneOptions...).
				Value(&tone),
			huh.NewSelect[string]().
				Title("Background").
				Options(backgroundOptions...).
				Value(&background),
		),
	)

	err = form.Run()
	return niche, tone, url, background, err
}

func required(field string) func(string) error {
	return func(s string) error {
		if s == "" {
			return fmt.Errorf("%s is required", field)
		}
		return nil
	}
}
