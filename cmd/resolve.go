package cmd

import (
	"bytes"
	"fmt"
	"time"

	"github.com/bluecolored/gitversion/internal/config"
	"github.com/bluecolored/gitversion/internal/domain"
	"github.com/spf13/cobra"
)

type resolveFlags struct {
	dir       string
	backend   string
	timeout   time.Duration
	format    string
	output    string
	group     string
	artifact  string
	tagPrefix string
	laxStderr bool
	logLevel  string
}

func NewResolveCmd(load func() (*config.Config, error)) *cobra.Command {
	var flags resolveFlags
	cmd := &cobra.Command{
		Use:   "resolve",
		Short: "Resolve the build version from the git working directory",
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := load()
			if err != nil {
				return err
			}
			flags.apply(cmd, cfg)
			if err := cfg.Validate(); err != nil {
				return fmt.Errorf("invalid flags: %w", err)
			}
			c, err := newContainer(cfg, cmd.ErrOrStderr())
			if err != nil {
				return err
			}
			defer func() { _ = c.logger.Sync() }()
			version, err := c.resolveVersionUseCase().Execute(cmd.Context())
			if err != nil {
				return err
			}
			format, err := domain.ParseOutputFormat(cfg.Format)
			if err != nil {
				return err
			}
			coords := domain.NewCoordinates(cfg.Group, cfg.Artifact, version)
			var buf bytes.Buffer
			if err := c.renderSvc.Render(&buf, coords, format); err != nil {
				return err
			}
			if cfg.Output != "" {
				if err := c.fileRepo.Write(cmd.Context(), cfg.Output, buf.Bytes()); err != nil {
					return fmt.Errorf("failed to write %s: %w", cfg.Output, err)
				}
			}
			_, err = cmd.OutOrStdout().Write(buf.Bytes())
			return err
		},
	}
	cmd.Flags().StringVar(&flags.dir, "dir", ".", "Git working directory")
	cmd.Flags().StringVar(&flags.backend, "backend", config.BackendExec, "VCS backend (exec or gogit)")
	cmd.Flags().DurationVar(&flags.timeout, "timeout", 10*time.Second, "Timeout for each git command")
	cmd.Flags().StringVar(&flags.format, "format", string(domain.FormatText), "Output format (text, json, yaml, properties, table)")
	cmd.Flags().StringVar(&flags.output, "output", "", "Also write the output to this file")
	cmd.Flags().StringVar(&flags.group, "group", "", "Publishing group identifier")
	cmd.Flags().StringVar(&flags.artifact, "artifact", "", "Publishing artifact identifier")
	cmd.Flags().StringVar(&flags.tagPrefix, "tag-prefix", "v", "Prefix stripped from the tag")
	cmd.Flags().BoolVar(&flags.laxStderr, "lax-stderr", false, "Only fail on non-zero exit codes; log stderr as warnings")
	cmd.Flags().StringVar(&flags.logLevel, "log-level", "info", "Diagnostic log level")
	return cmd
}

// apply overrides config values with flags set on the command line.
func (f *resolveFlags) apply(cmd *cobra.Command, cfg *config.Config) {
	changed := cmd.Flags().Changed
	if changed("dir") {
		cfg.WorkDir = f.dir
	}
	if changed("backend") {
		cfg.Backend = f.backend
	}
	if changed("timeout") {
		cfg.CommandTimeout = f.timeout
	}
	if changed("format") {
		cfg.Format = f.format
	}
	if changed("output") {
		cfg.Output = f.output
	}
	if changed("group") {
		cfg.Group = f.group
	}
	if changed("artifact") {
		cfg.Artifact = f.artifact
	}
	if changed("tag-prefix") {
		cfg.TagPrefix = f.tagPrefix
	}
	if changed("lax-stderr") {
		cfg.StrictStderr = !f.laxStderr
	}
	if changed("log-level") {
		cfg.LogLevel = f.logLevel
	}
}
