package cmd

import (
	"fmt"
	"strings"

	"github.com/bluecolored/gitversion/pkg/version"
	"github.com/spf13/cobra"
)

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print gitversion's own build information",
		RunE: func(cmd *cobra.Command, _ []string) error {
			info := version.Info()
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Version:\t%s\n", version.Summary())
			fmt.Fprintf(out, "Commit:\t%s\n", safeValue(info.Commit, "unknown"))
			fmt.Fprintf(out, "Built:\t%s\n", safeValue(info.BuildDate, "unknown"))
			return nil
		},
	}
}

func safeValue(value, fallback string) string {
	trimmed := strings.TrimSpace(value)
	if trimmed == "" {
		return fallback
	}
	return trimmed
}
