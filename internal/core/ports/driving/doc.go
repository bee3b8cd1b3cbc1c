// Package driving defines what the shells (CLI, TUI, MCP) may ask of
// the core: managing notes and reading or changing settings.
// Implementations live in internal/core/services.
package driving
