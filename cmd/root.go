package cmd

import (
	"os"

	"github.com/spf13/cobra"
)

// rootCmd represents the base command for the calgate application
var rootCmd = &cobra.Command{
	Use:   "calgate",
	Short: "A thin gateway to Google Calendar",
	Long: `calgate exposes Google Calendar event operations (create, get, list,
update, delete) through two front ends:

  - An MCP (Model Context Protocol) server for AI assistants
  - A REST API for plain HTTP clients

Credentials are read from the environment; a service-account key takes
precedence over an OAuth2 refresh-token configuration.`,
	SilenceUsage: true,
}

// version will be set by main
var version = "dev"

// SetVersion sets the version for the root command
func SetVersion(v string) {
	version = v
	rootCmd.Version = v
}

// Execute is the main entry point for the CLI application
func Execute() {
	rootCmd.SetVersionTemplate(`{{printf "calgate version %s\n" .Version}}`)

	// If no subcommand is provided, run the serve command by default
	if len(os.Args) == 1 {
		os.Args = append(os.Args, "serve")
	}

	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.AddCommand(newServeCmd())
	rootCmd.AddCommand(newRestCmd())
	rootCmd.AddCommand(newVersionCmd())
}
