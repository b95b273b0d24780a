package cmd

import (
	"go.uber.org/zap"

	"droscher.com/MyWhiskies/configs"
	"droscher.com/MyWhiskies/pkg/repository"
)

type MigrateCmd struct {
	ConfigFile string `default:".MyWhiskies.toml" help:"Path to config file" short:"c"`
}

func (m *MigrateCmd) Run(ctx *Context) error {
	logger := batchLogger(ctx.Debug)
	defer logger.Sync() //nolint:errcheck // we don't care about logger sync errors

	conf, err := configs.GetConfig(m.ConfigFile, logger)
	if err != nil {
		logger.Error("error loading config", zap.Error(err))

		return err
	}

	repo, err := repository.Open(conf, logger)
	if err != nil {
		logger.Error("error connecting to database", zap.Error(err))

		return err
	}
	defer repo.Close()

	if err := repo.Migrate(); err != nil {
		logger.Error("migration failed", zap.Error(err))

		return err
	}

	logger.Info("database migrated")

	return nil
}
