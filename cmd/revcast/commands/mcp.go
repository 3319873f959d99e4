package commands

import (
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"revcast/internal/mcptool"
)

var mcpCmd = &cobra.Command{
	Use:   "mcp",
	Short: "Serve the simulation as an MCP tool over stdio",
	Run: func(cmd *cobra.Command, args []string) {
		log.Info().Msg("MCP tool server starting stdio loop")
		server := mcptool.NewServer(cfg)
		if err := server.Serve(); err != nil {
			log.Fatal().Err(err).Msg("MCP server exited with error")
		}
	},
}

func init() {
	rootCmd.AddCommand(mcpCmd)
}
