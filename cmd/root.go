package cmd

import (
	"github.com/spf13/cobra"
)

var rootCmd = newRootCmd()

func newRootCmd() *cobra.Command {
	return &cobra.Command{
		Use:           "gitversion",
		Short:         "Derive a build version from git metadata",
		Long:          `gitversion computes {tag}[-{commits}][-dirty] for the current build from the nearest git tag.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}
}

func Execute() error {
	return rootCmd.Execute()
}
