// Package images keeps the pictures of a bottle in the object store in step
// with its BottleImage rows.
package images

import (
	"context"
	"fmt"
	"io"
	"slices"
	"strings"

	"go.uber.org/zap"

	"droscher.com/MyWhiskies/configs"
	"droscher.com/MyWhiskies/pkg/model"
)

type ImageRepository interface {
	GetBottleImages(ctx context.Context, bottleID uint) ([]model.BottleImage, error)
	AddBottleImage(ctx context.Context, bottleID uint, sequence int) (*model.BottleImage, error)
	RemoveBottleImages(ctx context.Context, bottleID uint, removed []int, moves []model.SequenceMove, apply func(model.SequenceMove) error) error
}

type Manager struct {
	repo      ImageRepository
	store     ObjectStore
	processor *Processor
	keys      Keys
	baseURL   string
	logger    *zap.Logger
}

func NewManager(repo ImageRepository, store ObjectStore, conf configs.Images, logger *zap.Logger) *Manager {
	return &Manager{
		repo:      repo,
		store:     store,
		processor: NewProcessor(conf),
		keys:      NewKeys(conf),
		baseURL:   PublicBaseURL(conf),
		logger:    logger,
	}
}

func NewKeys(conf configs.Images) Keys {
	return Keys{Prefix: strings.Trim(conf.Prefix, "/"), Extension: conf.Extension()}
}

// PublicBaseURL is where browsers fetch stored images from.
func PublicBaseURL(conf configs.Images) string {
	if conf.BaseURL != "" {
		return strings.TrimSuffix(conf.BaseURL, "/")
	}

	if conf.Driver == "s3" && conf.Endpoint == "" {
		return fmt.Sprintf("https://%s.s3.%s.amazonaws.com", conf.Bucket, conf.Region)
	}

	return "/images"
}

// URLs lists the public URLs of a bottle's images in sequence order.
func (m *Manager) URLs(bottle *model.Bottle) []string {
	images := slices.Clone(bottle.Images)
	slices.SortFunc(images, func(a, b model.BottleImage) int { return a.Sequence - b.Sequence })

	urls := make([]string, 0, len(images))
	for _, image := range images {
		urls = append(urls, m.URL(bottle.ID, image.Sequence))
	}

	return urls
}

func (m *Manager) URL(bottleID uint, sequence int) string {
	return m.baseURL + "/" + m.keys.Key(bottleID, sequence)
}

// AddImages stores each upload in the next free slot. It reports false if
// there are more uploads than free slots or if any upload fails; uploads
// stored before the failure are kept.
func (m *Manager) AddImages(ctx context.Context, bottleID uint, uploads []io.Reader) bool {
	if len(uploads) == 0 {
		return true
	}

	existing, err := m.repo.GetBottleImages(ctx, bottleID)
	if err != nil {
		m.logger.Error("error loading bottle images", zap.Uint("bottle_id", bottleID), zap.Error(err))

		return false
	}

	free := freeSlots(existing)
	if len(uploads) > len(free) {
		m.logger.Warn("too many images for bottle", zap.Uint("bottle_id", bottleID),
			zap.Int("uploads", len(uploads)), zap.Int("free", len(free)))

		return false
	}

	for i, upload := range uploads {
		if !m.addImage(ctx, bottleID, free[i], upload) {
			return false
		}
	}

	return true
}

func (m *Manager) addImage(ctx context.Context, bottleID uint, sequence int, upload io.Reader) bool {
	logger := m.logger.With(zap.Uint("bottle_id", bottleID), zap.Int("sequence", sequence))

	data, err := m.processor.Process(upload)
	if err != nil {
		logger.Warn("error processing image", zap.Error(err))

		return false
	}

	key := m.keys.Key(bottleID, sequence)
	if err := m.store.Put(ctx, key, data, m.processor.ContentType()); err != nil {
		logger.Error("error storing image", zap.String("key", key), zap.Error(err))

		return false
	}

	if _, err := m.repo.AddBottleImage(ctx, bottleID, sequence); err != nil {
		logger.Error("error recording image", zap.Error(err))
		m.deleteQuietly(ctx, key)

		return false
	}

	return true
}

// RemoveImages deletes the selected slots and renumbers the remaining
// images to 1..N. The row deletes and renumbering commit together; removed
// objects are only deleted after the commit. If any step fails the rows roll
// back and the objects are restored, leaving the original set in place.
func (m *Manager) RemoveImages(ctx context.Context, bottleID uint, sequences []int) bool {
	logger := m.logger.With(zap.Uint("bottle_id", bottleID))

	existing, err := m.repo.GetBottleImages(ctx, bottleID)
	if err != nil {
		logger.Error("error loading bottle images", zap.Error(err))

		return false
	}

	var occupied, removed, remaining []int

	for _, image := range existing {
		occupied = append(occupied, image.Sequence)

		if slices.Contains(sequences, image.Sequence) {
			removed = append(removed, image.Sequence)
		} else {
			remaining = append(remaining, image.Sequence)
		}
	}

	if len(removed) == 0 {
		return true
	}

	slices.Sort(remaining)
	moves := compaction(remaining)

	held, ok := m.hold(ctx, bottleID, removed, moves)
	if !ok {
		return false
	}

	var applied []model.SequenceMove

	err = m.repo.RemoveBottleImages(ctx, bottleID, removed, moves, func(move model.SequenceMove) error {
		if err := m.store.Copy(ctx, m.keys.Key(bottleID, move.From), m.keys.Key(bottleID, move.To)); err != nil {
			return err
		}

		applied = append(applied, move)

		return nil
	})
	if err != nil {
		logger.Error("error removing images", zap.Ints("sequences", removed), zap.Error(err))
		m.restore(ctx, bottleID, occupied, applied, held)

		return false
	}

	var stale []int

	for _, sequence := range occupied {
		if sequence > len(remaining) {
			stale = append(stale, sequence)
		}
	}

	m.deleteQuietly(ctx, append(m.keysFor(bottleID, stale), m.heldKeys(bottleID, held)...)...)

	return true
}

// hold copies aside removed images that a move is about to overwrite.
func (m *Manager) hold(ctx context.Context, bottleID uint, removed []int, moves []model.SequenceMove) ([]int, bool) {
	var held []int

	for _, move := range moves {
		if !slices.Contains(removed, move.To) {
			continue
		}

		if err := m.store.Copy(ctx, m.keys.Key(bottleID, move.To), m.keys.Held(bottleID, move.To)); err != nil {
			m.logger.Error("error holding image", zap.Uint("bottle_id", bottleID),
				zap.Int("sequence", move.To), zap.Error(err))
			m.deleteQuietly(ctx, m.heldKeys(bottleID, held)...)

			return nil, false
		}

		held = append(held, move.To)
	}

	return held, true
}

// restore undoes copied moves in reverse order, puts held images back and
// clears slots that were not occupied before.
func (m *Manager) restore(ctx context.Context, bottleID uint, occupied []int, applied []model.SequenceMove, held []int) {
	logger := m.logger.With(zap.Uint("bottle_id", bottleID))

	var vacated []int

	for _, move := range slices.Backward(applied) {
		if err := m.store.Copy(ctx, m.keys.Key(bottleID, move.To), m.keys.Key(bottleID, move.From)); err != nil {
			logger.Error("error restoring image", zap.Int("sequence", move.From), zap.Error(err))
		}

		if !slices.Contains(occupied, move.To) {
			vacated = append(vacated, move.To)
		}
	}

	for _, sequence := range held {
		if err := m.store.Copy(ctx, m.keys.Held(bottleID, sequence), m.keys.Key(bottleID, sequence)); err != nil {
			logger.Error("error restoring held image", zap.Int("sequence", sequence), zap.Error(err))
		}
	}

	m.deleteQuietly(ctx, append(m.keysFor(bottleID, vacated), m.heldKeys(bottleID, held)...)...)
}

// DeleteAll removes every image object of a bottle. The rows go with the
// bottle.
func (m *Manager) DeleteAll(ctx context.Context, bottleID uint) bool {
	sequences := make([]int, 0, model.MaxBottleImages)
	for sequence := 1; sequence <= model.MaxBottleImages; sequence++ {
		sequences = append(sequences, sequence)
	}

	if err := m.store.Delete(ctx, m.keysFor(bottleID, sequences)...); err != nil {
		m.logger.Error("error deleting bottle images", zap.Uint("bottle_id", bottleID), zap.Error(err))

		return false
	}

	return true
}

func (m *Manager) keysFor(bottleID uint, sequences []int) []string {
	keys := make([]string, 0, len(sequences))
	for _, sequence := range sequences {
		keys = append(keys, m.keys.Key(bottleID, sequence))
	}

	return keys
}

func (m *Manager) heldKeys(bottleID uint, sequences []int) []string {
	keys := make([]string, 0, len(sequences))
	for _, sequence := range sequences {
		keys = append(keys, m.keys.Held(bottleID, sequence))
	}

	return keys
}

func (m *Manager) deleteQuietly(ctx context.Context, keys ...string) {
	if len(keys) == 0 {
		return
	}

	if err := m.store.Delete(ctx, keys...); err != nil {
		m.logger.Warn("error deleting images", zap.Strings("keys", keys), zap.Error(err))
	}
}

func freeSlots(existing []model.BottleImage) []int {
	var free []int

	for sequence := 1; sequence <= model.MaxBottleImages; sequence++ {
		used := slices.ContainsFunc(existing, func(image model.BottleImage) bool {
			return image.Sequence == sequence
		})
		if !used {
			free = append(free, sequence)
		}
	}

	return free
}

// compaction lists the moves that pack sorted sequences into 1..N.
func compaction(sorted []int) []model.SequenceMove {
	var moves []model.SequenceMove

	for i, sequence := range sorted {
		if sequence != i+1 {
			moves = append(moves, model.SequenceMove{From: sequence, To: i + 1})
		}
	}

	return moves
}
