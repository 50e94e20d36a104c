package repository

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"scraty/internal/model"
)

type StoryRepository struct {
	db *gorm.DB
}

type StoryRepositoryInterface interface {
	Create(ctx context.Context, story *model.Story) error
	Update(ctx context.Context, story *model.Story) error
	GetActiveByID(ctx context.Context, id uuid.UUID) (*model.Story, error)
	SoftDelete(ctx context.Context, id uuid.UUID) error
	ListActive(ctx context.Context) ([]model.Story, error)
}

var _ StoryRepositoryInterface = (*StoryRepository)(nil)

func NewStoryRepository(db *gorm.DB) *StoryRepository {
	return &StoryRepository{db: db}
}

func (r *StoryRepository) Create(ctx context.Context, story *model.Story) error {
	return r.db.WithContext(ctx).Omit(clause.Associations).Create(story).Error
}

func (r *StoryRepository) Update(ctx context.Context, story *model.Story) error {
	result := r.db.WithContext(ctx).Omit(clause.Associations).Save(story)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrStoryNotFound
	}
	return nil
}

// GetActiveByID retrieves a story by its ID, skipping soft-deleted ones
func (r *StoryRepository) GetActiveByID(ctx context.Context, id uuid.UUID) (*model.Story, error) {
	var story model.Story
	result := r.db.WithContext(ctx).First(&story, "id = ? AND done = ?", id, false)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, ErrStoryNotFound
		}
		return nil, result.Error
	}
	return &story, nil
}

// SoftDelete marks an active story as done. Already-done stories are
// filtered out of the lookup, so a second delete reports not found.
func (r *StoryRepository) SoftDelete(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Model(&model.Story{}).
		Where("id = ? AND done = ?", id, false).
		Update("done", true)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrStoryNotFound
	}
	return nil
}

// ListActive retrieves all non-done stories with their non-done cards and
// each card's assigned user in a single query chain.
func (r *StoryRepository) ListActive(ctx context.Context) ([]model.Story, error) {
	var stories []model.Story
	result := r.db.WithContext(ctx).
		Preload("Cards", func(db *gorm.DB) *gorm.DB {
			return db.Where("done = ?", false).Order("id")
		}).
		Preload("Cards.User").
		Where("done = ?", false).
		Order("id").
		Find(&stories)
	if result.Error != nil {
		return nil, result.Error
	}
	return stories, nil
}
