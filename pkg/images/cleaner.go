package images

import (
	"context"
	"slices"

	"go.uber.org/multierr"
	"go.uber.org/zap"
)

// deleteBatchSize matches the per-request key limit of S3 DeleteObjects.
const deleteBatchSize = 1000

type BottleIDSource interface {
	GetBottleIDs(ctx context.Context) ([]uint, error)
}

type Report struct {
	Scanned int
	Orphans []string
	Deleted int
	DryRun  bool
}

// Cleaner finds stored image objects whose bottle no longer exists.
type Cleaner struct {
	bottles BottleIDSource
	store   ObjectStore
	keys    Keys
	logger  *zap.Logger
}

func NewCleaner(bottles BottleIDSource, store ObjectStore, keys Keys, logger *zap.Logger) *Cleaner {
	return &Cleaner{bottles: bottles, store: store, keys: keys, logger: logger}
}

// Run reports orphaned objects and deletes them only when confirm is set.
// Keys that do not follow the image naming scheme are left alone.
func (c *Cleaner) Run(ctx context.Context, confirm bool) (Report, error) {
	report := Report{DryRun: !confirm}

	ids, err := c.bottles.GetBottleIDs(ctx)
	if err != nil {
		return report, err
	}

	known := make(map[uint]struct{}, len(ids))
	for _, id := range ids {
		known[id] = struct{}{}
	}

	keys, err := c.store.List(ctx, c.keys.ListPrefix())
	if err != nil {
		return report, err
	}

	report.Scanned = len(keys)

	for _, key := range keys {
		bottleID, _, ok := c.keys.Parse(key)
		if !ok {
			c.logger.Debug("skipping unrecognised key", zap.String("key", key))

			continue
		}

		if _, exists := known[bottleID]; !exists {
			report.Orphans = append(report.Orphans, key)
		}
	}

	c.logger.Info("orphaned images found", zap.Int("scanned", report.Scanned),
		zap.Int("orphans", len(report.Orphans)), zap.Bool("dry_run", report.DryRun))

	if !confirm {
		return report, nil
	}

	var errs error

	for batch := range slices.Chunk(report.Orphans, deleteBatchSize) {
		if err := c.store.Delete(ctx, batch...); err != nil {
			errs = multierr.Append(errs, err)

			continue
		}

		report.Deleted += len(batch)
	}

	return report, errs
}
