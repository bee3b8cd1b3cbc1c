// Package services implements the driving ports on top of the driven
// stores. Input validation and defaults live here so the CLI, TUI and
// MCP shells behave the same way.
package services
