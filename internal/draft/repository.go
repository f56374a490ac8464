package draft

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/sithum-sy/hireme-client/internal/common"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// Repository defines the interface for draft persistence.
type Repository interface {
	Upsert(ctx context.Context, draft *Draft) error
	FindByUserAndSection(ctx context.Context, userID uuid.UUID, section string) (*Draft, error)
	Delete(ctx context.Context, userID uuid.UUID, section string) error
	DeleteAllForUser(ctx context.Context, userID uuid.UUID) error
	DeleteOlderThan(ctx context.Context, cutoff time.Time) (int64, error)
}

type gormRepository struct {
	db *gorm.DB
}

// NewGORMRepository creates a new GORM draft repository and migrates the table.
func NewGORMRepository(db *gorm.DB) (Repository, error) {
	if err := db.AutoMigrate(&Draft{}); err != nil {
		return nil, fmt.Errorf("failed to migrate drafts table: %w", err)
	}
	return &gormRepository{db: db}, nil
}

// Upsert writes the draft, replacing any existing row for the same key.
// One draft per (user, section): saving overwrites, never appends.
func (r *gormRepository) Upsert(ctx context.Context, draft *Draft) error {
	err := r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "key"}},
		UpdateAll: true,
	}).Create(draft).Error
	if err != nil {
		return fmt.Errorf("failed to upsert draft %s: %w", draft.Key, err)
	}
	return nil
}

func (r *gormRepository) FindByUserAndSection(ctx context.Context, userID uuid.UUID, section string) (*Draft, error) {
	var d Draft
	err := r.db.WithContext(ctx).
		Where("user_id = ? AND section = ?", userID, section).
		First(&d).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, common.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find draft for user %s section %s: %w", userID, section, err)
	}
	return &d, nil
}

func (r *gormRepository) Delete(ctx context.Context, userID uuid.UUID, section string) error {
	err := r.db.WithContext(ctx).
		Where("user_id = ? AND section = ?", userID, section).
		Delete(&Draft{}).Error
	if err != nil {
		return fmt.Errorf("failed to delete draft for user %s section %s: %w", userID, section, err)
	}
	return nil
}

func (r *gormRepository) DeleteAllForUser(ctx context.Context, userID uuid.UUID) error {
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Delete(&Draft{}).Error
	if err != nil {
		return fmt.Errorf("failed to delete drafts for user %s: %w", userID, err)
	}
	return nil
}

// DeleteOlderThan removes every draft saved before the cutoff and returns the
// number of rows removed. Used by the expiry sweeper.
func (r *gormRepository) DeleteOlderThan(ctx context.Context, cutoff time.Time) (int64, error) {
	res := r.db.WithContext(ctx).
		Where("timestamp < ?", cutoff).
		Delete(&Draft{})
	if res.Error != nil {
		return 0, fmt.Errorf("failed to purge expired drafts: %w", res.Error)
	}
	return res.RowsAffected, nil
}
