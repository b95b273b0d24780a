package cmd

import (
	"context"

	"go.uber.org/zap"

	"droscher.com/MyWhiskies/configs"
	"droscher.com/MyWhiskies/pkg/defaults"
	"droscher.com/MyWhiskies/pkg/repository"
)

type SeedDistilleriesCmd struct {
	ConfigFile string `default:".MyWhiskies.toml" help:"Path to config file" short:"c"`
	Username   string `help:"User to add the distilleries to" required:""`
}

func (s *SeedDistilleriesCmd) Run(ctx *Context) error {
	logger := batchLogger(ctx.Debug)
	defer logger.Sync() //nolint:errcheck // we don't care about logger sync errors

	conf, err := configs.GetConfig(s.ConfigFile, logger)
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

	background := context.Background()

	user, err := repo.GetUserByName(background, s.Username)
	if err != nil {
		logger.Error("error finding user", zap.String("username", s.Username), zap.Error(err))

		return err
	}

	added, err := defaults.Seed(background, repo, user)
	if err != nil {
		logger.Error("error adding distilleries", zap.Error(err))

		return err
	}

	logger.Info("distilleries added", zap.String("username", user.Username), zap.Int("added", added))

	return nil
}
