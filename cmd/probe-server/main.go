package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

// Set via ldflags at build time.
var version = "dev"

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:          "probe-server",
	Short:        "MCP server exposing an HTTP liveness probe tool",
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().String("config", "", "Path to probe-server.yaml")

	rootCmd.Version = version
	rootCmd.SetVersionTemplate(fmt.Sprintf("probe-server version %s\n", version))

	rootCmd.AddCommand(newServeCmd())
	rootCmd.AddCommand(newCheckCmd())
}
