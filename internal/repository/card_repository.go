package repository

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"scraty/internal/model"
)

type CardRepository struct {
	db *gorm.DB
}

type CardRepositoryInterface interface {
	Create(ctx context.Context, card *model.Card) error
	Update(ctx context.Context, card *model.Card) error
	GetActiveByID(ctx context.Context, id uuid.UUID) (*model.Card, error)
	SoftDelete(ctx context.Context, id uuid.UUID) error
	Move(ctx context.Context, cardID, storyID uuid.UUID, status model.Status) (*model.Card, error)
}

var _ CardRepositoryInterface = (*CardRepository)(nil)

func NewCardRepository(db *gorm.DB) *CardRepository {
	return &CardRepository{db: db}
}

// Create adds a new card to the database
func (r *CardRepository) Create(ctx context.Context, card *model.Card) error {
	return r.db.WithContext(ctx).Omit(clause.Associations).Create(card).Error
}

// Update saves an existing card
func (r *CardRepository) Update(ctx context.Context, card *model.Card) error {
	result := r.db.WithContext(ctx).Omit(clause.Associations).Save(card)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrCardNotFound
	}
	return nil
}

// GetActiveByID retrieves a card by its ID with its assigned user,
// skipping soft-deleted cards
func (r *CardRepository) GetActiveByID(ctx context.Context, id uuid.UUID) (*model.Card, error) {
	var card model.Card
	result := r.db.WithContext(ctx).
		Preload("User").
		First(&card, "id = ? AND done = ?", id, false)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, ErrCardNotFound
		}
		return nil, result.Error
	}
	return &card, nil
}

// SoftDelete marks an active card as done
func (r *CardRepository) SoftDelete(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Model(&model.Card{}).
		Where("id = ? AND done = ?", id, false).
		Update("done", true)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrCardNotFound
	}
	return nil
}

// Move reassigns a card's story and status in one transaction. Both the
// card and the target story must exist and be active.
func (r *CardRepository) Move(ctx context.Context, cardID, storyID uuid.UUID, status model.Status) (*model.Card, error) {
	var card model.Card
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Preload("User").First(&card, "id = ? AND done = ?", cardID, false).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrCardNotFound
			}
			return err
		}

		var story model.Story
		if err := tx.First(&story, "id = ? AND done = ?", storyID, false).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrStoryNotFound
			}
			return err
		}

		card.StoryID = storyID
		card.Status = status
		return tx.Omit(clause.Associations).Save(&card).Error
	})
	if err != nil {
		return nil, err
	}
	return &card, nil
}
