package cmd

import (
	"fmt"
	"os"
	"strings"

	"github.com/charmbracelet/huh"
	"github.com/spf13/cobra"
)

var setupCmd = &cobra.Command{
	Use:   "setup",
	Short: "Interactive setup wizard",
	Long:  `Create directories and write the .env file with API keys and the app password.`,
	RunE:  runSetup,
}

func init() {
	rootCmd.AddCommand(setupCmd)
}

func runSetup(cmd *cobra.Command, args []string) error {
	fmt.Println(titleStyle.Render("🎬 Promoreel Setup"))

	if err := createDirectories(); err != nil {
		return fmt.Errorf("creating directories: %w", err)
	}

	if err := configureEnv(); err != nil {
		return fmt.Errorf("configuring environment: %w", err)
	}

	printNextSteps()
	return nil
}

func createDirectories() error {
	dirs := []string{"assets/backgrounds", "assets/fonts", "output"}
	for _, dir := range dirs {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("create %s: %w", dir, err)
		}
	}
	fmt.Println(successStyle.Render("✓ Created directories"))
	return nil
}

func configureEnv() error {
	if _, err := os.Stat(".env"); err == nil {
		var overwrite bool
		if err := huh.NewConfirm().
			Title("Found existing .env file").
			Description("Overwrite?").
			Value(&overwrite).
			Run(); err != nil {
			return err
		}
		if !overwrite {
			fmt.Println(successStyle.Render("Kept existing .env"))
			return nil
		}
	}

	var password, adNetworkID, groqKey, gcsBucket string
	form := huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("App password").
				Description("Leave empty to disable the password gate").
				EchoMode(huh.EchoModePassword).
				Value(&password),
			huh.NewInput().
				Title("Ad network ID").
				Description("Echoed in API responses for monetized embeds").
				Value(&adNetworkID),
			huh.NewInput().
				Title("GROQ API Key").
				Description("Optional, enables LLM hook lines (https://console.groq.com/keys)").
				Value(&groqKey),
			huh.NewInput().
				Title("GCS bucket").
				Description("Optional, serves background clips from Cloud Storage").
				Value(&gcsBucket),
		),
	)
	if err := form.Run(); err != nil {
		return err
	}

	env := map[string]string{
		"APP_PASSWORD":  strings.TrimSpace(password),
		"AD_NETWORK_ID": strings.TrimSpace(adNetworkID),
		"GROQ_API_KEY":  strings.TrimSpace(groqKey),
		"GCS_BUCKET":    strings.TrimSpace(gcsBucket),
	}

	return writeEnvFile(env)
}

func writeEnvFile(env map[string]string) error {
	f, err := os.Create(".env")
	if err != nil {
		return err
	}
	defer func() { _ = f.Close() }()

	order := []string{"APP_PASSWORD", "AD_NETWORK_ID", "GROQ_API_KEY", "GCS_BUCKET"}
	for _, key := range order {
		if val := env[key]; val != "" {
			_, _ = fmt.Fprintf(f, "%s=%s\n", key, val)
		}
	}

	fmt.Println(successStyle.Render("✓ Created .env file"))
	return nil
}

func printNextSteps() {
	fmt.Println()
	fmt.Println(titleStyle.Render("Next steps:"))
	fmt.Println("  1. Add background clips to: assets/backgrounds/ (abstract.mp4, nature.mp4, tech.mp4)")
	fmt.Println("  2. Add a bold TTF font to: assets/fonts/")
	fmt.Println("  3. Run: promoreel interactive")
}
