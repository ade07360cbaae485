// Package mcpserver exposes the Semantic Scholar adapter as MCP tools.
//
// Each tool maps one-to-one onto an adapter operation; registration order is
// fixed and mirrored by Tools for discovery.
package mcpserver

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/rs/zerolog"

	"github.com/helixir/semanticscholar-mcp/internal/observability"
	"github.com/helixir/semanticscholar-mcp/internal/scholar"
)

// serverName is the MCP implementation name reported to clients.
const serverName = "semanticscholar"

// Server hosts the Semantic Scholar tools over the MCP protocol.
type Server struct {
	scholar   *scholar.Client
	logger    zerolog.Logger
	metrics   *observability.Metrics
	mcp       *mcp.Server
	toolNames []string
}

// New creates a new MCP server wrapping the given adapter. If metrics is
// nil, tool invocations are not recorded.
func New(client *scholar.Client, logger zerolog.Logger, metrics *observability.Metrics, version string) *Server {
	s := &Server{
		scholar: client,
		logger:  logger.With().Str("component", "mcpserver").Logger(),
		metrics: metrics,
		mcp: mcp.NewServer(&mcp.Implementation{
			Name:    serverName,
			Version: version,
		}, nil),
	}
	s.registerTools()
	return s
}

// Run serves MCP requests over the given transport until ctx is cancelled
// or the client disconnects.
func (s *Server) Run(ctx context.Context, transport mcp.Transport) error {
	return s.mcp.Run(ctx, transport)
}

// Tools returns the names of the exposed tools in registration order.
func (s *Server) Tools() []string {
	names := make([]string, len(s.toolNames))
	copy(names, s.toolNames)
	return names
}

// addTool registers one typed tool handler, wrapping it with request-id
// logging and metrics.
func addTool[In any](s *Server, name, description string, fn func(context.Context, In) (any, error)) {
	mcp.AddTool(s.mcp, &mcp.Tool{
		Name:        name,
		Description: description,
	}, func(ctx context.Context, req *mcp.CallToolRequest, in In) (*mcp.CallToolResult, any, error) {
		logger := observability.WithToolContext(s.logger, name, uuid.New().String())
		start := time.Now()

		out, err := fn(ctx, in)
		elapsed := time.Since(start)

		if err != nil {
			if s.metrics != nil {
				s.metrics.RecordToolCall(name, "error", elapsed.Seconds())
			}
			logger.Error().Err(err).Dur("duration", elapsed).Msg("tool call failed")
			return nil, nil, err
		}

		if s.metrics != nil {
			s.metrics.RecordToolCall(name, "ok", elapsed.Seconds())
		}
		logger.Debug().Dur("duration", elapsed).Msg("tool call completed")
		return nil, out, nil
	})
	s.toolNames = append(s.toolNames, name)
}
