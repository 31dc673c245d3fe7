package mcp

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/custodia-labs/zeroentropy-mcp/internal/logger"
)

// Version is the MCP server version.
const Version = "0.1.0"

// ServerName is the implementation name announced to clients.
const ServerName = "zeroentropy"

const instructions = `Tools for the ZeroEntropy document search API.
Create a collection, add documents to it, wait until get_indexing_status reports them
indexed, then query with search_top_documents, search_top_pages or search_top_snippets.
Metadata filters use $eq, $ne, $gt, $gte, $lt, $lte on string attributes and $in, $nin on
attributes whose key starts with "list:".
Failed calls return the backend's error detail prefixed by its category, for example
"not found: Collection not found", "conflict: ...", "invalid input: ..." or "rate limited: ...".
Other backend failures read "zeroentropy: API error <status>: <detail>".`

// Server is the MCP server for ZeroEntropy.
type Server struct {
	ports  *Ports
	server *mcp.Server
	tools  []*mcp.Tool
}

// NewServer creates a new MCP server with the given ports.
func NewServer(ports *Ports) (*Server, error) {
	if ports == nil {
		return nil, fmt.Errorf("validating ports: %w", ErrMissingCollectionService)
	}
	if err := ports.Validate(); err != nil {
		return nil, fmt.Errorf("validating ports: %w", err)
	}

	impl := &mcp.Implementation{
		Name:    ServerName,
		Version: Version,
	}

	s := &Server{
		ports: ports,
		server: mcp.NewServer(impl, &mcp.ServerOptions{
			Instructions: instructions,
			Logger:       logger.Logger(),
		}),
	}

	s.server.AddReceivingMiddleware(logRequests)
	s.registerTools()
	s.registerResources()

	return s, nil
}

// Tools returns the registered tool descriptors in registration order.
func (s *Server) Tools() []*mcp.Tool {
	out := make([]*mcp.Tool, len(s.tools))
	copy(out, s.tools)
	return out
}

// Run starts the MCP server over stdio.
// It blocks until the context is cancelled or an error occurs.
func (s *Server) Run(ctx context.Context) error {
	return s.server.Run(ctx, &mcp.StdioTransport{})
}

// Connect serves a single session over the given transport.
// It is used by tests and embedders that bring their own transport.
func (s *Server) Connect(ctx context.Context, t mcp.Transport) (*mcp.ServerSession, error) {
	return s.server.Connect(ctx, t, nil)
}

// Handler returns the streamable HTTP handler for the server.
func (s *Server) Handler() http.Handler {
	return mcp.NewStreamableHTTPHandler(func(_ *http.Request) *mcp.Server {
		return s.server
	}, nil)
}

// RunHTTP starts the MCP server over HTTP on the specified address.
// It blocks until the context is cancelled or an error occurs.
func (s *Server) RunHTTP(ctx context.Context, addr string) error {
	httpServer := &http.Server{
		Addr:              addr,
		Handler:           s.Handler(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	// Graceful shutdown when context is cancelled
	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		httpServer.Shutdown(shutdownCtx) //nolint:errcheck
	}()

	err := httpServer.ListenAndServe()
	if errors.Is(err, http.ErrServerClosed) {
		return nil
	}
	return err
}

// logRequests logs every incoming MCP method at debug level.
func logRequests(next mcp.MethodHandler) mcp.MethodHandler {
	return func(ctx context.Context, method string, req mcp.Request) (mcp.Result, error) {
		start := time.Now()
		result, err := next(ctx, method, req)
		if err != nil {
			logger.Error("mcp request failed", err, "method", method, "duration", time.Since(start))
			return result, err
		}
		if res, ok := result.(*mcp.CallToolResult); ok && res.IsError {
			logger.Debug("mcp tool error", "method", method, "duration", time.Since(start))
			return result, err
		}
		logger.Debug("mcp request", "method", method, "duration", time.Since(start))
		return result, err
	}
}
