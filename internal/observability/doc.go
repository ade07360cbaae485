// Package observability provides structured logging and Prometheus metrics
// for the Semantic Scholar MCP server.
package observability
