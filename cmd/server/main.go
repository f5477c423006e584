// Package main is the entry point for the WFRP MCP server
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "warhammer-mcp",
	Short: "WFRP NPC generation MCP server",
	Long:  `warhammer-mcp exposes WFRP 4e NPC generation, session storage and characteristic tests as MCP tools.`,
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.AddCommand(serverCmd)
	rootCmd.AddCommand(generateCmd)
}
