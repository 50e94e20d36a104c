package service

import (
	"context"
	"errors"
	"fmt"
	"regexp"
	"strings"

	"scraty/internal/model"
	"scraty/internal/repository"
)

var hexColor = regexp.MustCompile(`^[0-9a-fA-F]{6}$`)

// UserEdit is one row of the roster form: an upsert, or a delete when
// the flag is set.
type UserEdit struct {
	Name   string
	Color  string
	Delete bool
}

type UserService struct {
	users repository.UserRepositoryInterface
}

func NewUserService(users repository.UserRepositoryInterface) *UserService {
	return &UserService{users: users}
}

func (s *UserService) List(ctx context.Context) ([]model.User, error) {
	return s.users.List(ctx)
}

// BulkSave applies the roster form in one pass: every edit is validated
// before anything is written. Deleting a user clears the assignment on
// their cards via the foreign key, not the cards themselves.
func (s *UserService) BulkSave(ctx context.Context, edits []UserEdit) error {
	errs := make(map[string]string)
	for i, edit := range edits {
		if strings.TrimSpace(edit.Name) == "" {
			errs[fmt.Sprintf("%d.name", i)] = "this field is required"
		}
		if edit.Color != "" && !hexColor.MatchString(edit.Color) {
			errs[fmt.Sprintf("%d.color", i)] = "enter six hex digits"
		}
	}
	if len(errs) > 0 {
		return &ValidationError{Fields: errs}
	}

	for _, edit := range edits {
		name := strings.TrimSpace(edit.Name)
		if edit.Delete {
			err := s.users.Delete(ctx, name)
			if err != nil && !errors.Is(err, repository.ErrUserNotFound) {
				return err
			}
			continue
		}
		if err := s.users.Upsert(ctx, &model.User{Name: name, Color: edit.Color}); err != nil {
			return err
		}
	}
	return nil
}
