package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/zeroentropy-mcp/internal/adapters/driven/storage/memory"
	"github.com/custodia-labs/zeroentropy-mcp/internal/adapters/driven/zeroentropy"
	"github.com/custodia-labs/zeroentropy-mcp/internal/adapters/driving/mcp"
	"github.com/custodia-labs/zeroentropy-mcp/internal/core/domain"
	"github.com/custodia-labs/zeroentropy-mcp/internal/core/ports/driven"
	"github.com/custodia-labs/zeroentropy-mcp/internal/core/services"
	"github.com/custodia-labs/zeroentropy-mcp/internal/logger"
)

var mcpCmd = &cobra.Command{
	Use:   "mcp",
	Short: "MCP server commands",
	Long:  `Commands for the Model Context Protocol (MCP) server integration.`,
}

var mcpServeCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the MCP server",
	Long: `Start the Model Context Protocol server for AI assistant integration.

By default, the server communicates over stdio using JSON-RPC and can be
used with Claude Desktop and other MCP-compatible AI assistants.

Use --port to start an HTTP server instead, which enables:
  - Testing with MCP Inspector web UI
  - Remote access via HTTP

Use --dev to start without ZEROENTROPY_API_KEY: the tools are listed but
every call reports that the client is not configured.

Use --in-memory to serve a local sandbox backend that keeps collections in
process memory and is discarded on exit.

Examples:
  # Stdio mode (default, for Claude Desktop)
  zeroentropy-mcp mcp serve

  # HTTP mode (for MCP Inspector, remote access)
  zeroentropy-mcp mcp serve --port 8080

Claude Desktop configuration (claude_desktop_config.json):
  {
    "mcpServers": {
      "zeroentropy": {
        "command": "/path/to/zeroentropy-mcp",
        "args": ["mcp", "serve"],
        "env": {"ZEROENTROPY_API_KEY": "..."}
      }
    }
  }`,
	RunE: runMCPServe,
}

var mcpToolsCmd = &cobra.Command{
	Use:   "tools",
	Short: "List the tools the MCP server exposes",
	RunE:  runMCPTools,
}

func init() {
	mcpServeCmd.Flags().IntP("port", "p", 0, "HTTP port (0 = use stdio)")
	mcpServeCmd.Flags().Bool("dev", false, "Serve without an API key; every tool reports that it is not configured")
	mcpServeCmd.Flags().Bool("in-memory", false, "Serve an in-process sandbox backend instead of the hosted API")
	mcpCmd.AddCommand(mcpServeCmd)
	mcpCmd.AddCommand(mcpToolsCmd)
	rootCmd.AddCommand(mcpCmd)
}

// backendOptions selects the backend behind the services.
type backendOptions struct {
	Dev      bool
	InMemory bool
}

// newBackend builds the backend for the given settings.
// A nil backend with a nil error means development mode.
func newBackend(s *domain.Settings, opts backendOptions) (driven.Backend, error) {
	if opts.InMemory {
		logger.Info("serving in-memory sandbox backend")
		return memory.NewBackend(), nil
	}
	if s.APIKey == "" {
		if opts.Dev {
			logger.Warn("development mode: no API key, every tool call will fail with a configuration error")
			return nil, nil
		}
		return nil, domain.ErrMissingAPIKey
	}

	client, err := zeroentropy.New(zeroentropy.Config{
		APIKey:            s.APIKey,
		BaseURL:           s.BaseURL,
		Timeout:           s.Timeout,
		RequestsPerSecond: s.RequestsPerSecond,
		UserAgent:         zeroentropy.DefaultUserAgent + "/" + version,
	})
	if err != nil {
		return nil, err
	}
	return client, nil
}

// newPorts wires services over backend into MCP ports.
func newPorts(backend driven.Backend) *mcp.Ports {
	set := services.NewSet(backend)
	return &mcp.Ports{
		Collections: set.Collections,
		Documents:   set.Documents,
		Queries:     set.Queries,
		Models:      set.Models,
		Status:      set.Status,
	}
}

func runMCPServe(cmd *cobra.Command, _ []string) error {
	port, err := cmd.Flags().GetInt("port")
	if err != nil {
		return fmt.Errorf("getting port flag: %w", err)
	}
	dev, err := cmd.Flags().GetBool("dev")
	if err != nil {
		return fmt.Errorf("getting dev flag: %w", err)
	}
	inMemory, err := cmd.Flags().GetBool("in-memory")
	if err != nil {
		return fmt.Errorf("getting in-memory flag: %w", err)
	}

	backend, err := newBackend(settings, backendOptions{Dev: dev, InMemory: inMemory})
	if err != nil {
		return err
	}

	server, err := mcp.NewServer(newPorts(backend))
	if err != nil {
		return err
	}

	logger.Section("MCP Server")
	if port > 0 {
		addr := fmt.Sprintf(":%d", port)
		fmt.Fprintf(cmd.OutOrStdout(), "MCP server listening on http://localhost%s\n", addr)
		return server.RunHTTP(cmd.Context(), addr)
	}

	logger.Debug("serving MCP over stdio")
	return server.Run(cmd.Context())
}

func runMCPTools(cmd *cobra.Command, _ []string) error {
	// Listing never calls the backend, so no credentials are needed.
	server, err := mcp.NewServer(newPorts(nil))
	if err != nil {
		return err
	}

	var b strings.Builder
	b.WriteString(styles.Title.Render(fmt.Sprintf("%s MCP tools (%d)", mcp.ServerName, len(server.Tools()))))
	b.WriteString("\n")
	for _, tool := range server.Tools() {
		b.WriteString(styles.Name.Render(tool.Name))
		b.WriteString(" ")
		b.WriteString(toolAccess(tool.Annotations.ReadOnlyHint, tool.Annotations.DestructiveHint))
		b.WriteString("\n")
		b.WriteString(styles.Description.Render(tool.Description))
		b.WriteString("\n")
	}

	fmt.Fprint(cmd.OutOrStdout(), b.String())
	return nil
}

// toolAccess labels a tool by its side effects.
func toolAccess(readOnly bool, destructive *bool) string {
	switch {
	case readOnly:
		return styles.ReadOnly.Render("[read-only]")
	case destructive != nil && *destructive:
		return styles.Destructive.Render("[destructive]")
	default:
		return styles.Write.Render("[write]")
	}
}
