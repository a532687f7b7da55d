package cli

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/custodia-labs/scout/internal/core/services"
)

var settingsCmd = &cobra.Command{
	Use:   "settings",
	Short: "Manage application settings",
	Long: `View and configure the catalog location, embedding provider, cache
paths and search defaults.

Settings are stored in config.toml inside the config directory.`,
	RunE: runSettingsShow,
}

var settingsShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show current settings",
	RunE:  runSettingsShow,
}

var settingsSetCmd = &cobra.Command{
	Use:   "set [key] [value]",
	Short: "Set a single setting",
	Long: `Set a single setting by its dot-notation key.

Keys:
  catalog.path                    JSONL file or SQLite data directory
  catalog.format                  jsonl | sqlite
  embedding.provider              ollama | openai | none
  embedding.model                 must match the model the cache was built with
  embedding.base_url              API endpoint override
  embedding.api_key               API key (prompted when the value is omitted)
  embedding.requests_per_second   embedding call rate limit
  embedding.burst                 embedding call burst size
  cache.matrix_path               embedding matrix (.npy)
  cache.meta_path                 embedding descriptor (.json)
  search.top_k                    default result count (1-20)
  search.alpha                    default relevance weight (0-1)`,
	Args: cobra.RangeArgs(1, 2),
	RunE: runSettingsSet,
}

func init() {
	settingsCmd.AddCommand(settingsShowCmd)
	settingsCmd.AddCommand(settingsSetCmd)
	rootCmd.AddCommand(settingsCmd)
}

func runSettingsShow(cmd *cobra.Command, _ []string) error {
	settings, err := ensureSettings()
	if err != nil {
		return fmt.Errorf("failed to get settings: %w", err)
	}

	w := cmd.OutOrStdout()
	fmt.Fprintln(w, "Current Settings")
	fmt.Fprintln(w, "================")
	fmt.Fprintln(w)

	fmt.Fprintln(w, "[Catalog]")
	fmt.Fprintf(w, "  Path: %s\n", settings.Catalog.Path)
	fmt.Fprintf(w, "  Format: %s\n", settings.Catalog.Format)
	fmt.Fprintln(w)

	fmt.Fprintln(w, "[Embedding]")
	fmt.Fprintf(w, "  Provider: %s\n", settings.Embedding.Provider.Description())
	fmt.Fprintf(w, "  Model: %s\n", settings.Embedding.Model)
	if settings.Embedding.BaseURL != "" {
		fmt.Fprintf(w, "  Base URL: %s\n", settings.Embedding.BaseURL)
	}
	if settings.Embedding.Provider.RequiresAPIKey() {
		if settings.Embedding.APIKey != "" {
			fmt.Fprintf(w, "  API Key: %s\n", maskAPIKey(settings.Embedding.APIKey))
		} else {
			fmt.Fprintln(w, "  API Key: (not set)")
		}
	}
	fmt.Fprintf(w, "  Rate limit: %.1f req/s (burst %d)\n",
		settings.Embedding.RequestsPerSecond, settings.Embedding.Burst)
	status := "configured"
	if !settings.Embedding.IsConfigured() {
		status = "not configured"
	}
	fmt.Fprintf(w, "  Status: %s\n", status)
	fmt.Fprintln(w)

	fmt.Fprintln(w, "[Cache]")
	fmt.Fprintf(w, "  Matrix: %s\n", settings.Cache.MatrixPath)
	fmt.Fprintf(w, "  Descriptor: %s\n", settings.Cache.MetaPath)
	fmt.Fprintln(w)

	fmt.Fprintln(w, "[Search]")
	fmt.Fprintf(w, "  Top K: %d\n", settings.Search.TopK)
	fmt.Fprintf(w, "  Alpha: %.2f\n", settings.Search.Alpha)
	return nil
}

func runSettingsSet(cmd *cobra.Command, args []string) error {
	if _, err := ensureSettings(); err != nil {
		return err
	}

	key := args[0]
	var value string
	switch {
	case len(args) == 2:
		value = args[1]
	case key == services.KeyEmbedAPIKey:
		fmt.Fprint(cmd.OutOrStdout(), "API key: ")
		value = readPassword()
		fmt.Fprintln(cmd.OutOrStdout())
	default:
		return fmt.Errorf("missing value for %s", key)
	}

	if err := settingsService.Set(key, value); err != nil {
		return err
	}

	shown := value
	if key == services.KeyEmbedAPIKey {
		shown = maskAPIKey(value)
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Set %s = %s\n", key, strings.TrimSpace(shown))
	return nil
}

func maskAPIKey(key string) string {
	if len(key) <= 8 {
		return "****"
	}
	return key[:4] + "..." + key[len(key)-4:]
}

//nolint:errcheck // CLI helper, error ignored for UX
func readPassword() string {
	// Try to read password without echo
	if term.IsTerminal(int(os.Stdin.Fd())) {
		password, err := term.ReadPassword(int(os.Stdin.Fd()))
		if err == nil {
			return string(password)
		}
	}
	// Fallback to regular input
	reader := bufio.NewReader(os.Stdin)
	input, _ := reader.ReadString('\n')
	return strings.TrimSpace(input)
}
