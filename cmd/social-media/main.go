// Command social-media runs the social media API.
//
//	social-media serve [--migrate]
//	social-media migrate
//
// Configuration is read from SOCIAL_* environment variables and an optional
// .env file in the working directory.
package main

import (
	"os"

	"github.com/spf13/cobra"
)

func main() {
	if err := newRootCommand().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:          "social-media",
		Short:        "Social media API: accounts and messages over HTTP",
		SilenceUsage: true,
	}

	root.AddCommand(newServeCommand(), newMigrateCommand())

	return root
}
