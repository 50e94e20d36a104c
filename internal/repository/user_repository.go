package repository

import (
	"context"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"scraty/internal/model"
)

type UserRepository struct {
	db *gorm.DB
}

type UserRepositoryInterface interface {
	GetOrCreate(ctx context.Context, name string) (*model.User, error)
	List(ctx context.Context) ([]model.User, error)
	Upsert(ctx context.Context, user *model.User) error
	Delete(ctx context.Context, name string) error
}

var _ UserRepositoryInterface = (*UserRepository)(nil)

func NewUserRepository(db *gorm.DB) *UserRepository {
	return &UserRepository{db: db}
}

// GetOrCreate resolves a user by name, creating one with a blank color on
// first reference.
func (r *UserRepository) GetOrCreate(ctx context.Context, name string) (*model.User, error) {
	var user model.User
	err := r.db.WithContext(ctx).
		Where(model.User{Name: name}).
		FirstOrCreate(&user).Error
	if err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *UserRepository) List(ctx context.Context) ([]model.User, error) {
	var users []model.User
	err := r.db.WithContext(ctx).Order("name").Find(&users).Error
	if err != nil {
		return nil, err
	}
	return users, nil
}

// Upsert inserts a user or updates the color of an existing one.
func (r *UserRepository) Upsert(ctx context.Context, user *model.User) error {
	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "name"}},
			DoUpdates: clause.AssignmentColumns([]string{"color"}),
		}).
		Create(user).Error
}

// Delete removes a user row. Cards referencing the user keep their rows;
// the foreign key clears the assignment.
func (r *UserRepository) Delete(ctx context.Context, name string) error {
	result := r.db.WithContext(ctx).Delete(&model.User{}, "name = ?", name)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrUserNotFound
	}
	return nil
}
