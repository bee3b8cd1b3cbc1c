package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/jotter/internal/adapters/driving/mcp"
	"github.com/custodia-labs/jotter/internal/logger"
)

var mcpCmd = &cobra.Command{
	Use:   "mcp",
	Short: "MCP server commands",
	Long:  `Commands for the Model Context Protocol (MCP) server integration.`,
}

var mcpServeCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the MCP server",
	Long: `Start the Model Context Protocol server so AI assistants can read
and write your notes.

By default, the server communicates over stdio using JSON-RPC.
Use --port to start an HTTP server instead, which enables:
  - Testing with MCP Inspector web UI
  - Remote access via HTTP

Tools:     list_notes, create_note, update_note, delete_note
Resources: jotter://notes, jotter://notes/{noteId}

Examples:
  # Stdio mode (default)
  jotter mcp serve

  # HTTP mode (for MCP Inspector, remote access)
  jotter mcp serve --port 8080

Client configuration:
  {
    "mcpServers": {
      "jotter": {
        "command": "/path/to/jotter",
        "args": ["mcp", "serve"]
      }
    }
  }`,
	Args: cobra.NoArgs,
	RunE: runMCPServe,
}

func init() {
	mcpServeCmd.Flags().IntP("port", "p", 0, "HTTP port (0 = use stdio)")
	mcpCmd.AddCommand(mcpServeCmd)
	rootCmd.AddCommand(mcpCmd)
}

func runMCPServe(cmd *cobra.Command, _ []string) error {
	port, err := cmd.Flags().GetInt("port")
	if err != nil {
		return fmt.Errorf("getting port flag: %w", err)
	}

	notes, err := noteService(cmd)
	if err != nil {
		return err
	}

	logger.Section("MCP server")
	server, err := mcp.NewServer(&mcp.Ports{Notes: notes})
	if err != nil {
		return err
	}

	if port > 0 {
		addr := fmt.Sprintf(":%d", port)
		fmt.Fprintf(cmd.OutOrStdout(), "MCP server listening on http://localhost%s\n", addr)
		return server.RunHTTP(commandContext(cmd), addr)
	}

	return server.Run(commandContext(cmd))
}
