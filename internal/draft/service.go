package draft

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/sithum-sy/hireme-client/internal/common"
	"github.com/sithum-sy/hireme-client/internal/config"

	"github.com/google/uuid"
	"github.com/gosimple/slug"
	"go.uber.org/zap"
)

// Service is the draft store the form layer talks to. Persistence failures
// never reach the caller: saving reports a boolean, loading degrades to
// "no draft", clearing is best effort. Everything noteworthy is logged.
type Service struct {
	repo      Repository
	keyPrefix string
	maxAge    time.Duration
	logger    *zap.Logger
	now       func() time.Time
}

// NewService creates a new draft service.
func NewService(repo Repository, cfg *config.Config, logger *zap.Logger) *Service {
	maxAge := cfg.DraftMaxAge
	if maxAge <= 0 {
		maxAge = 24 * time.Hour
	}
	return &Service{
		repo:      repo,
		keyPrefix: cfg.DraftKeyPrefix,
		maxAge:    maxAge,
		logger:    logger.Named("DraftStore"),
		now:       time.Now,
	}
}

// Key builds the composite storage key for a (user, section) pair. Section
// names are slugged so arbitrary display names stay key-safe.
func (s *Service) Key(userID uuid.UUID, section string) string {
	return s.keyPrefix + userID.String() + "_" + slug.Make(section)
}

// Save persists the current form values as the one draft for (user, section),
// overwriting any previous draft. Returns whether the write succeeded.
func (s *Service) Save(ctx context.Context, userID uuid.UUID, section string, data map[string]interface{}) bool {
	payload, err := json.Marshal(data)
	if err != nil {
		s.logger.Error("Failed to serialize draft data",
			zap.String("userID", userID.String()), zap.String("section", section), zap.Error(err))
		return false
	}

	d := &Draft{
		Key:       s.Key(userID, section),
		UserID:    userID,
		Section:   slug.Make(section),
		Data:      payload,
		Timestamp: s.now(),
		Version:   CurrentVersion,
	}

	if err := s.repo.Upsert(ctx, d); err != nil {
		s.logger.Error("Failed to save draft",
			zap.String("key", d.Key), zap.Error(err))
		return false
	}

	s.logger.Debug("Draft saved", zap.String("key", d.Key), zap.Int("bytes", len(payload)))
	return true
}

// Load returns the saved values for (user, section), or nil when no usable
// draft exists. A draft older than the max age is invisible and removed as a
// side effect; a malformed or version-mismatched draft is treated the same way.
func (s *Service) Load(ctx context.Context, userID uuid.UUID, section string) map[string]interface{} {
	d, err := s.repo.FindByUserAndSection(ctx, userID, slug.Make(section))
	if err != nil {
		if !errors.Is(err, common.ErrNotFound) {
			s.logger.Error("Failed to load draft",
				zap.String("userID", userID.String()), zap.String("section", section), zap.Error(err))
		}
		return nil
	}

	if d.Version != CurrentVersion {
		s.logger.Warn("Discarding draft with unknown version",
			zap.String("key", d.Key), zap.String("version", d.Version))
		s.Clear(ctx, userID, section)
		return nil
	}

	if d.ExpiredAt(s.now(), s.maxAge) {
		s.logger.Info("Discarding expired draft",
			zap.String("key", d.Key), zap.Time("savedAt", d.Timestamp))
		s.Clear(ctx, userID, section)
		return nil
	}

	var data map[string]interface{}
	if err := json.Unmarshal(d.Data, &data); err != nil {
		s.logger.Warn("Discarding malformed draft", zap.String("key", d.Key), zap.Error(err))
		s.Clear(ctx, userID, section)
		return nil
	}

	return data
}

// Clear removes the draft for (user, section). Best effort.
func (s *Service) Clear(ctx context.Context, userID uuid.UUID, section string) {
	if err := s.repo.Delete(ctx, userID, slug.Make(section)); err != nil {
		s.logger.Error("Failed to clear draft",
			zap.String("userID", userID.String()), zap.String("section", section), zap.Error(err))
	}
}

// ClearAll removes every draft the user owns. Best effort; called on logout
// and after account-wide resets.
func (s *Service) ClearAll(ctx context.Context, userID uuid.UUID) {
	if err := s.repo.DeleteAllForUser(ctx, userID); err != nil {
		s.logger.Error("Failed to clear user drafts",
			zap.String("userID", userID.String()), zap.Error(err))
	}
}

// PurgeExpired deletes every draft past the max age. Used by the sweeper job.
func (s *Service) PurgeExpired(ctx context.Context) (int64, error) {
	return s.repo.DeleteOlderThan(ctx, s.now().Add(-s.maxAge))
}
