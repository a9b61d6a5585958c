package main

import (
	"os"

	"github.com/spf13/cobra"
)

var cmdDispatcher = &cobra.Command{
	Use:          "dispatcher",
	Short:        "webhook dispatch and delivery engine",
	SilenceUsage: true,
	RunE: func(c *cobra.Command, args []string) error {
		return c.Help()
	},
}

type rootOptions struct {
	config string
}

var rootOpts rootOptions

func init() {
	flags := cmdDispatcher.PersistentFlags()

	flags.StringVar(&rootOpts.config, "config", "", "config file path (defaults to ./config.yaml, env WHD_* overrides)")
}

func main() {
	if err := cmdDispatcher.Execute(); err != nil {
		os.Exit(1)
	}
}
