package cmd

import (
	"context"

	"go.uber.org/zap"

	"droscher.com/MyWhiskies/configs"
	"droscher.com/MyWhiskies/pkg/images"
	"droscher.com/MyWhiskies/pkg/repository"
)

type CleanImagesCmd struct {
	ConfigFile string `default:".MyWhiskies.toml" help:"Path to config file" short:"c"`
	Confirm    bool   `help:"Delete the orphaned images instead of only listing them"`
}

func (c *CleanImagesCmd) Run(ctx *Context) error {
	logger := batchLogger(ctx.Debug)
	defer logger.Sync() //nolint:errcheck // we don't care about logger sync errors

	conf, err := configs.GetConfig(c.ConfigFile, logger)
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

	store, _, err := openStore(background, conf.Images)
	if err != nil {
		logger.Error("error opening image store", zap.Error(err))

		return err
	}

	report, err := images.NewCleaner(repo, store, images.NewKeys(conf.Images), logger).Run(background, c.Confirm)
	if err != nil {
		logger.Error("image cleanup failed", zap.Int("deleted", report.Deleted), zap.Error(err))

		return err
	}

	for _, key := range report.Orphans {
		logger.Info("orphaned image", zap.String("key", key))
	}

	logger.Info("image cleanup finished",
		zap.Int("scanned", report.Scanned), zap.Int("orphans", len(report.Orphans)),
		zap.Int("deleted", report.Deleted), zap.Bool("dry_run", report.DryRun))

	return nil
}
