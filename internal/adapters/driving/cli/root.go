// Package cli provides the cobra command tree for zeroentropy-mcp.
package cli

import (
	"context"
	"errors"
	"fmt"
	"io/fs"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/custodia-labs/zeroentropy-mcp/internal/adapters/driven/config/file"
	"github.com/custodia-labs/zeroentropy-mcp/internal/core/domain"
	"github.com/custodia-labs/zeroentropy-mcp/internal/core/services"
	"github.com/custodia-labs/zeroentropy-mcp/internal/logger"
)

// version is set at build time via SetVersion.
var version = "dev"

// settings holds the resolved configuration for the running command.
var settings *domain.Settings

var rootCmd = &cobra.Command{
	Use:   "zeroentropy-mcp",
	Short: "MCP server for the ZeroEntropy document search API",
	Long: `zeroentropy-mcp exposes the ZeroEntropy collections, documents, queries,
reranking and indexing status APIs as Model Context Protocol tools.

Configuration is read from ~/.zeroentropy-mcp/config.toml, then from the
environment (ZEROENTROPY_API_KEY, ZEROENTROPY_BASE_URL, optionally loaded
from a .env file in the working directory), then from flags.`,
	SilenceUsage:      true,
	SilenceErrors:     true,
	PersistentPreRunE: loadSettings,
}

func init() {
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "Enable debug logging on stderr")
	rootCmd.PersistentFlags().String("config-dir", "", "Configuration directory (default ~/.zeroentropy-mcp)")
}

// SetVersion sets the version reported by the version command.
func SetVersion(v string) {
	version = v
}

// Execute runs the root command.
func Execute(ctx context.Context) error {
	return rootCmd.ExecuteContext(ctx)
}

// loadSettings resolves settings before any subcommand runs.
// Precedence: config file, then environment, then flags.
func loadSettings(cmd *cobra.Command, _ []string) error {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("loading .env: %w", err)
	}

	configDir, err := cmd.Flags().GetString("config-dir")
	if err != nil {
		return fmt.Errorf("getting config-dir flag: %w", err)
	}
	store, err := file.NewConfigStore(configDir)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	resolved, err := services.NewSettingsService(store, nil).Get()
	if err != nil {
		return fmt.Errorf("loading config %s: %w", store.Path(), err)
	}

	if cmd.Flags().Changed("verbose") {
		resolved.Verbose, _ = cmd.Flags().GetBool("verbose")
	}
	logger.SetVerbose(resolved.Verbose)
	logger.Debug("settings loaded",
		"config", store.Path(),
		"base_url", resolved.BaseURL,
		"timeout", resolved.Timeout,
		"requests_per_second", resolved.RequestsPerSecond,
		"api_key_set", resolved.APIKey != "")

	settings = resolved
	return nil
}

// FormatError renders a fatal error for stderr. Missing credentials get a
// hint about development mode.
func FormatError(err error) string {
	msg := fmt.Sprintf("Error: %v\n", err)
	if errors.Is(err, domain.ErrMissingAPIKey) {
		msg += "Set ZEROENTROPY_API_KEY, or start with --dev to serve without a backend " +
			"(every tool will report that the client is not configured).\n"
	}
	return msg
}
