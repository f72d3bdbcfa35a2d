package cmd

import (
	"fmt"
	"io"

	"github.com/bluecolored/gitversion/internal/config"
	"github.com/bluecolored/gitversion/internal/logging"
	"github.com/bluecolored/gitversion/internal/repository"
	"github.com/bluecolored/gitversion/internal/service"
	"github.com/bluecolored/gitversion/internal/usecase"
	"github.com/spf13/afero"
	"go.uber.org/zap"
)

// container holds all the dependencies for the application.

type container struct {
	cfg *config.Config

	logger    *zap.Logger
	vcs       repository.VcsQuery
	fileRepo  repository.VersionFileRepository
	renderSvc service.RenderService
}

// newContainer creates a new container with all the dependencies.
func newContainer(cfg *config.Config, logOut io.Writer) (*container, error) {
	logger, err := logging.New(logOut, cfg.LogLevel)
	if err != nil {
		return nil, err
	}
	vcs, err := newVcs(cfg, logger)
	if err != nil {
		return nil, err
	}
	return &container{
		cfg:       cfg,
		logger:    logger,
		vcs:       vcs,
		fileRepo:  repository.NewVersionFileRepository(afero.NewOsFs()),
		renderSvc: service.NewRenderService(),
	}, nil
}

func newVcs(cfg *config.Config, logger *zap.Logger) (repository.VcsQuery, error) {
	switch cfg.Backend {
	case config.BackendExec:
		runner := repository.NewCommandRunner(cfg.CommandTimeout)
		return repository.NewExecVcs(runner, cfg.WorkDir, cfg.StrictStderr, logger), nil
	case config.BackendGoGit:
		return repository.NewGoGitVcs(cfg.WorkDir)
	default:
		return nil, fmt.Errorf("unknown backend: %s", cfg.Backend)
	}
}

func (c *container) resolveVersionUseCase() *usecase.ResolveVersionUseCase {
	return &usecase.ResolveVersionUseCase{
		Vcs:       c.vcs,
		TagPrefix: c.cfg.TagPrefix,
		Logger:    c.logger,
	}
}

// InitCommands initializes all commands with their dependencies
func InitCommands() error {
	rootCmd.AddCommand(NewResolveCmd(config.LoadConfig))
	rootCmd.AddCommand(newVersionCmd())
	return nil
}
